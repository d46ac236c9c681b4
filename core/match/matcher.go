package match

import "strings"

// Matcher decides whether two descriptions denote the same product.
type Matcher struct {
	threshold int
	scorer    *Scorer
}

// NewMatcher builds a matcher from the given policy.
func NewMatcher(cfg Config) (*Matcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scorer, err := NewScorer(cfg.CacheSize)
	if err != nil {
		return nil, err
	}
	return &Matcher{threshold: cfg.Threshold, scorer: scorer}, nil
}

// Threshold returns the minimum score for equivalence.
func (m *Matcher) Threshold() int {
	return m.threshold
}

// Scorer exposes the underlying scorer.
func (m *Matcher) Scorer() *Scorer {
	return m.scorer
}

// Score returns the similarity of two raw descriptions after lower-casing and
// normalization.
func (m *Matcher) Score(a, b string) int {
	return m.scorer.Score(canonical(a), canonical(b))
}

// Equivalent reports whether two raw descriptions reach the threshold.
func (m *Matcher) Equivalent(a, b string) bool {
	return m.Score(a, b) >= m.threshold
}

// Explanation describes how a pair of descriptions was scored.
type Explanation struct {
	A           string `json:"a"`
	B           string `json:"b"`
	NormalizedA string `json:"normalized_a"`
	NormalizedB string `json:"normalized_b"`
	Score       int    `json:"score"`
	Threshold   int    `json:"threshold"`
	Equivalent  bool   `json:"equivalent"`
}

// Explain scores a pair and reports the intermediate forms.
func (m *Matcher) Explain(a, b string) Explanation {
	na, nb := canonical(a), canonical(b)
	score := m.scorer.Score(na, nb)
	return Explanation{
		A:           a,
		B:           b,
		NormalizedA: na,
		NormalizedB: nb,
		Score:       score,
		Threshold:   m.threshold,
		Equivalent:  score >= m.threshold,
	}
}

func canonical(description string) string {
	return Normalize(strings.ToLower(description))
}
