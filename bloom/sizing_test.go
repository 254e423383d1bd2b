package bloom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParams(t *testing.T) {
	tests := []struct {
		n        uint64
		p        float64
		wantBits uint64
		wantK    uint64
	}{
		{1000, 0.01, 9585, 6},
		{100, 0.01, 958, 6},
		{27000, 0.0317, 193960, 4},
		{1_000_000, 0.01, 9585058, 6},
		{10, 0.1, 47, 3},
		{500, 0.05, 3117, 4},
		// k truncates to zero for very loose rates.
		{1140, 0.999, 2, 0},
	}
	for _, tt := range tests {
		bits, k, err := Params(tt.n, tt.p)
		require.NoError(t, err)
		require.Equal(t, tt.wantBits, bits, "n=%d p=%g", tt.n, tt.p)
		require.Equal(t, tt.wantK, k, "n=%d p=%g", tt.n, tt.p)
	}
}

func TestParamsRejectsBadInputs(t *testing.T) {
	for _, p := range []float64{0, 1, -0.5, 1.5, math.NaN(), math.Inf(1)} {
		_, _, err := Params(100, p)
		require.ErrorIs(t, err, ErrInvalidArgument, "p=%g", p)
	}
	_, _, err := Params(0, 0.01)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParamsOverflow(t *testing.T) {
	_, _, err := Params(^uint64(0), 1e-300)
	require.ErrorIs(t, err, ErrSizeTooLarge)
}
