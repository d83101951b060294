package resolve

import (
	"github.com/pmezard/go-difflib/difflib"
)

// CloseMatch returns the candidate most similar to query whose similarity ratio
// (2*M/T over characters) is at least cutoff. Equal ratios go to the larger string so
// the pick does not depend on candidate order.
func CloseMatch(query string, candidates []string, cutoff float64) (string, float64, bool) {
	var (
		best      string
		bestRatio float64
		found     bool
	)
	m := difflib.NewMatcher(nil, chars(query))
	for _, c := range candidates {
		m.SetSeq1(chars(c))
		if m.RealQuickRatio() < cutoff || m.QuickRatio() < cutoff {
			continue
		}
		r := m.Ratio()
		if r < cutoff {
			continue
		}
		if !found || r > bestRatio || (r == bestRatio && c > best) {
			best, bestRatio, found = c, r, true
		}
	}
	return best, bestRatio, found
}

// Ratio is the sequence-matcher similarity of a and b in [0, 1].
func Ratio(a, b string) float64 {
	return difflib.NewMatcher(chars(a), chars(b)).Ratio()
}

func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
