// Package match implements description matching for catalog reconciliation.
//
// Matching happens in three steps:
//
//  1. Normalize: descriptions are decomposed (NFKD), stripped of everything
//     outside ASCII and lower-cased, so "COLÔNIA" and "colonia" compare equal.
//  2. Score: the normalized forms are tokenized on whitespace, the tokens are
//     sorted and rejoined, and the two canonical strings are compared with an
//     difflib matching-block ratio (100 * 2M / T). Word order never affects
//     the score.
//  3. Threshold: two descriptions are equivalent when the score reaches the
//     configured threshold (90 by default).
//
// Equivalence is a pairwise relation on scores. It is symmetric but not
// transitive: A≈B and B≈C do not imply A≈C.
//
// # Usage
//
//	m, err := match.NewMatcher(match.Config{Threshold: 90, CacheSize: 50})
//	if m.Equivalent("COLÔNIA DESODORANTE", "colonia dezodorante") {
//	    // same product
//	}
package match
