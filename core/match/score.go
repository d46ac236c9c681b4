package match

import (
	"math"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pmezard/go-difflib/difflib"
)

// MaxScore is the score of two descriptions whose sorted tokens are identical.
const MaxScore = 100

// pairKey identifies an unordered pair of inputs.
type pairKey struct {
	a, b string
}

func newPairKey(a, b string) pairKey {
	if b < a {
		a, b = b, a
	}
	return pairKey{a: a, b: b}
}

// Scorer computes token-sorted similarity ratios and memoizes recent results.
// It is safe for concurrent use.
type Scorer struct {
	cache *lru.Cache[pairKey, int]
}

// NewScorer creates a scorer keeping up to cacheSize results.
// A cacheSize of zero disables memoization.
func NewScorer(cacheSize int) (*Scorer, error) {
	s := &Scorer{}
	if cacheSize > 0 {
		cache, err := lru.New[pairKey, int](cacheSize)
		if err != nil {
			return nil, err
		}
		s.cache = cache
	}
	return s, nil
}

// Score returns the similarity of a and b in [0, MaxScore].
func (s *Scorer) Score(a, b string) int {
	if s.cache == nil {
		return TokenSortRatio(a, b)
	}

	key := newPairKey(a, b)
	if score, ok := s.cache.Get(key); ok {
		return score
	}
	score := TokenSortRatio(a, b)
	s.cache.Add(key, score)
	return score
}

// Cached reports how many pairs are currently memoized.
func (s *Scorer) Cached() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.Len()
}

// TokenSortRatio sorts the whitespace-separated tokens of both inputs and
// compares the rejoined strings with Ratio.
func TokenSortRatio(a, b string) int {
	return Ratio(sortTokens(a), sortTokens(b))
}

// Ratio returns 100 * 2M / T rounded half to even, where M counts the
// characters in the matching blocks found by a difflib sequence matcher and
// T is the combined length. Block matching depends on argument order, so both
// orders are scored and the lower ratio is kept.
func Ratio(a, b string) int {
	if a == "" && b == "" {
		return MaxScore
	}
	ra, rb := strings.Split(a, ""), strings.Split(b, "")
	ratio := min(
		difflib.NewMatcher(ra, rb).Ratio(),
		difflib.NewMatcher(rb, ra).Ratio(),
	)
	return int(math.RoundToEven(MaxScore * ratio))
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}
