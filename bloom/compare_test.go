package bloom

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckCompatible(t *testing.T) {
	base, err := New(1000, 0.01, WithHasher(SHA256))
	require.NoError(t, err)

	otherK := base.Copy()
	otherK.k++

	otherSize, err := New(2000, 0.01, WithHasher(SHA256))
	require.NoError(t, err)
	require.Equal(t, base.K(), otherSize.K())

	// Same code, different identity.
	sha256Again, err := NewHasher(sha256String)
	require.NoError(t, err)
	otherHash, err := New(1000, 0.01, WithHasher(sha256Again))
	require.NoError(t, err)

	builtin, err := New[string](1000, 0.01)
	require.NoError(t, err)

	for name, other := range map[string]*Filter[string]{
		"k":       otherK,
		"size":    otherSize,
		"hash":    otherHash,
		"builtin": builtin,
	} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, base.Add("x"))
			snapshot := base.Copy()

			require.ErrorIs(t, CheckCompatible(base, other), ErrIncompatibleFilters)
			require.ErrorIs(t, CheckCompatible(other, base), ErrIncompatibleFilters)

			_, err := base.Or(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)
			_, err = base.And(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)
			require.ErrorIs(t, base.OrInPlace(other), ErrIncompatibleFilters)
			require.ErrorIs(t, base.AndInPlace(other), ErrIncompatibleFilters)
			require.ErrorIs(t, base.Update(other), ErrIncompatibleFilters)
			require.ErrorIs(t, base.IntersectionUpdate(other), ErrIncompatibleFilters)
			_, err = base.Union(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)
			_, err = base.Intersection(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)

			_, err = base.Equal(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)
			_, err = base.NotEqual(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)
			_, err = base.IsSubset(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)
			_, err = base.IsSuperset(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)
			_, err = base.IsStrictSubset(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)
			_, err = base.IsStrictSuperset(other)
			require.ErrorIs(t, err, ErrIncompatibleFilters)

			// nothing was modified
			require.True(t, mustEqual(t, base, snapshot))
		})
	}
}

func TestCheckCompatibleAccepts(t *testing.T) {
	a, err := New[string](1000, 0.01)
	require.NoError(t, err)
	b, err := New(1000, 0.01, WithHasher(DefaultHasher[string]()))
	require.NoError(t, err)
	require.NoError(t, CheckCompatible(a, b))

	c, err := New(1000, 0.01, WithHasher(Murmur3))
	require.NoError(t, err)
	d, err := New(1000, 0.01, WithHasher(Murmur3))
	require.NoError(t, err)
	require.NoError(t, CheckCompatible(c, d))

	require.ErrorIs(t, CheckCompatible(c, nil), ErrInvalidArgument)
}

func TestSubsetAgainstElements(t *testing.T) {
	f, err := New(1000, 0.0001, WithHasher(SHA256))
	require.NoError(t, err)
	require.NoError(t, f.AddAll("a", "b"))

	for _, tt := range []struct {
		name string
		op   func() (bool, error)
		want bool
	}{
		{"superset of part", func() (bool, error) { return f.IsSuperset(Items("a")) }, true},
		{"superset of same", func() (bool, error) { return f.IsSuperset(Items("b", "a")) }, true},
		{"superset of more", func() (bool, error) { return f.IsSuperset(Items("a", "zzz")) }, false},
		{"subset of more", func() (bool, error) { return f.IsSubset(Items("a", "b", "c")) }, true},
		{"subset of less", func() (bool, error) { return f.IsSubset(Items("a")) }, false},
		{"empty stream", func() (bool, error) { return f.IsSuperset(Items[string]()) }, true},
	} {
		got, err := tt.op()
		require.NoError(t, err, tt.name)
		require.Equal(t, tt.want, got, tt.name)
	}
}

func TestIntersectionWithStreams(t *testing.T) {
	f, err := New(1_000_000, 0.0001, WithHasher(SHA256))
	require.NoError(t, err)
	require.NoError(t, f.AddAll("a", "b", "c"))

	// Each stream operand is intersected in turn, the scratch filter is
	// cleared in between.
	got, err := f.Intersection(Items("a", "b", "x"), Items("b", "c", "y"))
	require.NoError(t, err)

	want, err := New(1_000_000, 0.0001, WithHasher(SHA256))
	require.NoError(t, err)
	require.NoError(t, want.Add("b"))
	require.True(t, mustEqual(t, got, want))

	// f is unchanged by the copying form
	require.True(t, mustContain(t, f, "a"))
	require.True(t, mustContain(t, f, "c"))
}

func TestUnionMixesFiltersAndStreams(t *testing.T) {
	a, err := New(1000, 0.0001, WithHasher(XXHash))
	require.NoError(t, err)
	b, err := New(1000, 0.0001, WithHasher(XXHash))
	require.NoError(t, err)
	require.NoError(t, a.Add("a"))
	require.NoError(t, b.Add("b"))

	u, err := a.Union(b, Items("c"), Seq(slices.Values([]string{"d"})))
	require.NoError(t, err)
	for _, v := range []string{"a", "b", "c", "d"} {
		require.True(t, mustContain(t, u, v), v)
	}
	require.False(t, mustContain(t, a, "b"))

	sup, err := u.IsSuperset(a)
	require.NoError(t, err)
	require.True(t, sup)
	sup, err = u.IsSuperset(b)
	require.NoError(t, err)
	require.True(t, sup)
}
