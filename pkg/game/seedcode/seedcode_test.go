package seedcode

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rigterw/PCG/pkg/engine/errors"
)

func TestEncodeDecode(t *testing.T) {
	for _, seed := range []int64{1, 5, 42, -1, 1 << 40, math.MaxInt64, math.MinInt64} {
		code := Encode(seed)
		assert.NotEmpty(t, code)

		got, err := Decode(code)
		require.NoError(t, err, "seed %d", seed)
		assert.Equal(t, seed, got)
	}
}

func TestEncode_Distinct(t *testing.T) {
	assert.NotEqual(t, Encode(1), Encode(2))
	assert.Equal(t, Encode(7), Encode(7))
}

func TestDecode_Invalid(t *testing.T) {
	tests := []struct {
		name string
		code string
	}{
		{"empty", ""},
		{"not base58", "0OIl"},
		{"too long", "zzzzzzzzzzzzzzzzzzzz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.code)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}
