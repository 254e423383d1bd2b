package bloom

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func drawFilter(t *rapid.T, label string, h *Hasher[string]) (*Filter[string], []string) {
	elems := rapid.SliceOfN(rapid.String(), 0, 50).Draw(t, label)
	f, err := New(200, 0.01, WithHasher(h))
	require.NoError(t, err)
	require.NoError(t, f.AddAll(elems...))
	return f, elems
}

func TestFilterProperties(t *testing.T) {
	t.Parallel()

	// Everything added is reported present until the filter is cleared.
	t.Run("no_false_negatives", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			f, elems := drawFilter(t, "elems", XXHash)
			for _, e := range elems {
				ok, err := f.Contains(e)
				require.NoError(t, err)
				require.True(t, ok, "lost %q", e)
			}
		})
	})

	t.Run("subset_laws", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a, _ := drawFilter(t, "a", Murmur3)
			b, _ := drawFilter(t, "b", Murmur3)

			u, err := a.Union(b)
			require.NoError(t, err)
			i, err := a.Intersection(b)
			require.NoError(t, err)

			for _, ok := range []func() (bool, error){
				func() (bool, error) { return u.IsSuperset(a) },
				func() (bool, error) { return u.IsSuperset(b) },
				func() (bool, error) { return i.IsSubset(a) },
				func() (bool, error) { return i.IsSubset(b) },
			} {
				got, err := ok()
				require.NoError(t, err)
				require.True(t, got)
			}
		})
	})

	t.Run("idempotent_with_self", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a, _ := drawFilter(t, "a", SHA256)

			u, err := a.Union(a)
			require.NoError(t, err)
			eq, err := u.Equal(a)
			require.NoError(t, err)
			require.True(t, eq)

			i, err := a.Intersection(a)
			require.NoError(t, err)
			eq, err = i.Equal(a)
			require.NoError(t, err)
			require.True(t, eq)
		})
	})

	t.Run("persistence_round_trip", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a, _ := drawFilter(t, "a", SHA256)

			data, err := a.MarshalBinary()
			require.NoError(t, err)
			got, err := LoadBytes(data, SHA256)
			require.NoError(t, err)

			require.Equal(t, a.K(), got.K())
			require.Equal(t, a.Bytes(), got.Bytes())
		})
	})

	t.Run("clear_empties", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			a, _ := drawFilter(t, "a", XXHash)
			size, k := a.SizeInBits(), a.K()
			a.Clear()
			require.True(t, a.IsEmpty())
			require.Equal(t, size, a.SizeInBits())
			require.Equal(t, k, a.K())
		})
	})
}
