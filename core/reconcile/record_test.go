package reconcile

import (
	"testing"

	"catalog-reconciler/core/match"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name      string
		row       RawRow
		wantDesc  string
		wantPrice string
	}{
		{"IntPrice", RawRow{"desc", 123}, "desc", "123"},
		{"StringPrice", RawRow{"desc", "19.90"}, "desc", "19.9"},
		{"DecimalPrice", RawRow{"desc", decimal.RequireFromString("0.10")}, "desc", "0.1"},
		{"ExtraFields", RawRow{"desc", "5", "ignored"}, "desc", "5"},
		{"NumericDescription", RawRow{42, "5"}, "42", "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := ParseRecord(tt.row)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDesc, r.Description)
			assert.True(t, decimal.RequireFromString(tt.wantPrice).Equal(r.Price), "got %s", r.Price)
		})
	}
}

func TestParseRecord_Malformed(t *testing.T) {
	tests := []struct {
		name string
		row  RawRow
	}{
		{"Empty", RawRow{}},
		{"OneField", RawRow{"desc"}},
		{"NilDescription", RawRow{nil, "10"}},
		{"NilPrice", RawRow{"desc", nil}},
		{"TextPrice", RawRow{"desc", "cheap"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRecord(tt.row)
			assert.ErrorIs(t, err, ErrMalformedRow)
		})
	}
}

func TestIsSameProduct_IgnoresPrice(t *testing.T) {
	m, err := match.NewMatcher(match.DefaultConfig())
	require.NoError(t, err)

	for _, d := range []string{"AVON LUCK FOR HIM DEO PARFUM", "COLÔNIA", ""} {
		a := Record{Description: d, Price: decimal.NewFromInt(1)}
		b := Record{Description: d, Price: decimal.RequireFromString("999.99")}
		assert.True(t, IsSameProduct(m, a, b), "description %q", d)
	}
}

func TestIsSameProduct_Diacritics(t *testing.T) {
	m, err := match.NewMatcher(match.DefaultConfig())
	require.NoError(t, err)

	a := Record{Description: "COLÔNIA DESODORANTE AVON 015 LONDON", Price: decimal.NewFromInt(134)}
	b := Record{Description: "cOlONiIâ DEZODORRANTE AVÃO 015 LONDON", Price: decimal.NewFromInt(123)}
	assert.True(t, IsSameProduct(m, a, b))

	c := Record{Description: "COLÔNIA DESODORANTE MUSK MARINE", Price: decimal.NewFromInt(123)}
	d := Record{Description: "COLÔNIA DESODORANTE MUSK FRESH", Price: decimal.NewFromInt(134)}
	assert.False(t, IsSameProduct(m, c, d))
}
