package utils

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDecimal(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"Int", 250, "250"},
		{"Int64", int64(50), "50"},
		{"Uint32", uint32(7), "7"},
		{"String", "124", "124"},
		{"StringFraction", "19.90", "19.9"},
		{"StringPadded", "  3.5 ", "3.5"},
		{"Bytes", []byte("0.30"), "0.3"},
		{"Float", 0.1, "0.1"},
		{"Decimal", decimal.RequireFromString("12.345"), "12.345"},
		{"Scientific", "1.5e2", "150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToDecimal(tt.in)
			require.NoError(t, err)
			assert.True(t, decimal.RequireFromString(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestToDecimal_Errors(t *testing.T) {
	_, err := ToDecimal(nil)
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = ToDecimal("   ")
	assert.ErrorIs(t, err, ErrEmptyValue)

	_, err = ToDecimal("R$ 10")
	assert.Error(t, err)

	_, err = ToDecimal(true)
	assert.Error(t, err)
}

func TestToString(t *testing.T) {
	assert.Equal(t, "abc", ToString("abc"))
	assert.Equal(t, "abc", ToString([]byte("abc")))
	assert.Equal(t, "42", ToString(42))
	assert.Equal(t, "1.5", ToString(decimal.RequireFromString("1.50")))
}
