package analyzer

import (
	"fmt"
	"regexp"
	"sort"
)

// evaluate scores each candidate by the number of corpus texts containing at
// least one match (per-text presence, not per-occurrence count), deduplicates
// by evaluated pattern keeping the first-generated label, and sorts by
// descending success rate. The sort is stable, so equal rates retain
// generation order.
//
// Template candidates are compiled with (?is); word candidates get (?i)
// unless declared case-sensitive. Candidates that fail to compile are
// skipped rather than aborting the ranking.
func evaluate(cands []Candidate, texts []string, templateMode bool) []Result {
	total := len(texts)
	results := make([]Result, 0, len(cands))
	seen := make(map[string]bool, len(cands))

	for _, c := range cands {
		pattern := flaggedPattern(c, templateMode)
		if seen[pattern] {
			continue
		}
		seen[pattern] = true

		re, err := regexp.Compile(pattern)
		if err != nil {
			continue
		}

		successes := 0
		for _, text := range texts {
			if re.MatchString(text) {
				successes++
			}
		}
		rate := float64(successes) / float64(total) * 100

		results = append(results, Result{
			Regex:    pattern,
			Strategy: c.Strategy,
			Rating:   fmt.Sprintf("%.2f%%", rate),
			Matches:  fmt.Sprintf("%d/%d", successes, total),
			rate:     rate,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].rate > results[j].rate
	})
	return results
}

// flaggedPattern prepends the inline flags the candidate is evaluated with,
// making the returned pattern self-contained for downstream compilation.
func flaggedPattern(c Candidate, templateMode bool) string {
	switch {
	case templateMode:
		return "(?is)" + c.Pattern
	case !c.CaseSensitive:
		return "(?i)" + c.Pattern
	default:
		return c.Pattern
	}
}
