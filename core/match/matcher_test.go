package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T, threshold int) *Matcher {
	t.Helper()
	m, err := NewMatcher(Config{Threshold: threshold, CacheSize: DefaultCacheSize})
	require.NoError(t, err)
	return m
}

func TestMatcher_Equivalent(t *testing.T) {
	m := newTestMatcher(t, DefaultThreshold)

	assert.True(t, m.Equivalent(
		"COLÔNIA DESODORANTE AVON 015 LONDON",
		"cOlONiIâ DEZODORRANTE AVÃO 015 LONDON",
	))
	assert.False(t, m.Equivalent(
		"COLÔNIA DESODORANTE MUSK MARINE",
		"COLÔNIA DESODORANTE MUSK FRESH",
	))
}

func TestMatcher_ScrambledLettersBelowThreshold(t *testing.T) {
	m := newTestMatcher(t, DefaultThreshold)

	pairs := [][2]string{
		{"COLÔNIA DESODORANTE AVON 300 KM/H MAX TURBO", "COLÔNIA DESODORANTE AVON 300 KM/ HMAX TURBO"},
		{"SABONETE LÍQUIDO DOVE ORIGINAL", "SABOENTE LIQUIOD DOVE ROIGINAL"},
	}
	for _, p := range pairs {
		assert.False(t, m.Equivalent(p[0], p[1]), "pair %q", p)
		assert.False(t, m.Equivalent(p[1], p[0]), "pair %q", p)
	}
}

func TestMatcher_SameDescription(t *testing.T) {
	m := newTestMatcher(t, DefaultThreshold)

	for _, d := range []string{"", "AVON", "東京", "COLÔNIA DESODORANTE AVON 300 KM/H MAX TURBO"} {
		assert.True(t, m.Equivalent(d, d), "description %q", d)
	}
}

func TestMatcher_NotTransitive(t *testing.T) {
	m := newTestMatcher(t, DefaultThreshold)

	a := "abcdefghijklmnopqrst"
	b := "abcdefghijklmnopqrxy"
	c := "abcdefghijklmnopwxyz"

	assert.True(t, m.Equivalent(a, b))
	assert.True(t, m.Equivalent(b, c))
	assert.False(t, m.Equivalent(a, c))
}

func TestMatcher_Threshold(t *testing.T) {
	strict := newTestMatcher(t, 95)
	assert.False(t, strict.Equivalent(
		"COLÔNIA DESODORANTE AVON 015 LONDON",
		"cOlONiIâ DEZODORRANTE AVÃO 015 LONDON",
	))

	loose := newTestMatcher(t, 80)
	assert.True(t, loose.Equivalent(
		"COLÔNIA DESODORANTE MUSK MARINE",
		"COLÔNIA DESODORANTE MUSK FRESH",
	))
}

func TestMatcher_Explain(t *testing.T) {
	m := newTestMatcher(t, DefaultThreshold)

	e := m.Explain("AVON LUCK FOR HIM DEO PARFUM", "AVÃO luck for him deo parfum")
	assert.Equal(t, "avon luck for him deo parfum", e.NormalizedA)
	assert.Equal(t, "avao luck for him deo parfum", e.NormalizedB)
	assert.Equal(t, 96, e.Score)
	assert.Equal(t, DefaultThreshold, e.Threshold)
	assert.True(t, e.Equivalent)
}

func TestNewMatcher_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"NegativeThreshold", Config{Threshold: -1}},
		{"ThresholdAbove100", Config{Threshold: 101}},
		{"NegativeCache", Config{Threshold: 90, CacheSize: -5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMatcher(tt.cfg)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
