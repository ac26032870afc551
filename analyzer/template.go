package analyzer

import (
	"regexp"
	"strings"
)

// markerPattern matches a [name]-style placeholder, non-greedy so adjacent
// markers split correctly.
var markerPattern = regexp.MustCompile(`\[.*?\]`)

// Segment is one piece of a decomposed template: either literal text or a
// [marker] placeholder denoting a capture point.
type Segment struct {
	Text        string // literal text, or the raw marker including brackets
	Placeholder bool
}

// DecomposeTemplate splits a template into its ordered literal and placeholder
// segments. A valid template yields at least two segments, at least one of
// them a placeholder; otherwise ErrInvalidTemplate is returned. A bare
// marker such as "[x]" is invalid because it carries no context to anchor on.
func DecomposeTemplate(template string) ([]Segment, error) {
	var segs []Segment
	last := 0
	for _, loc := range markerPattern.FindAllStringIndex(template, -1) {
		if lit := template[last:loc[0]]; lit != "" {
			segs = append(segs, Segment{Text: lit})
		}
		segs = append(segs, Segment{Text: template[loc[0]:loc[1]], Placeholder: true})
		last = loc[1]
	}
	if lit := template[last:]; lit != "" {
		segs = append(segs, Segment{Text: lit})
	}

	hasPlaceholder := false
	for _, s := range segs {
		if s.Placeholder {
			hasPlaceholder = true
			break
		}
	}
	if len(segs) < 2 || !hasPlaceholder {
		return nil, ErrInvalidTemplate
	}
	return segs, nil
}

// TemplateAnalyzer ranks extraction strategies derived from one template
// against one example corpus. Instances are cheap and single-use; the ranked
// list is memoized only for BestPattern.
type TemplateAnalyzer struct {
	template string
	segments []Segment
	texts    []string

	ranked []Result // memo for BestPattern
	done   bool
}

// NewTemplateAnalyzer validates and decomposes the template. It returns
// ErrEmptyInput when template or texts are empty, or ErrInvalidTemplate when
// decomposition fails.
func NewTemplateAnalyzer(template string, texts []string) (*TemplateAnalyzer, error) {
	if template == "" || len(texts) == 0 {
		return nil, ErrEmptyInput
	}
	segs, err := DecomposeTemplate(template)
	if err != nil {
		return nil, err
	}
	return &TemplateAnalyzer{
		template: template,
		segments: segs,
		texts:    texts,
	}, nil
}

// Rank evaluates every template strategy against the corpus and returns them
// ordered by descending success rate. Template patterns are always scored
// case-insensitively with dot-matches-newline, so multi-line extracted text
// does not break the match.
func (a *TemplateAnalyzer) Rank() []Result {
	return evaluate(templateCandidates(a.segments), a.texts, true)
}

// BestPattern returns the highest-ranked pattern, computing and memoizing the
// ranked list on first call. Returns "" when no strategy survived.
func (a *TemplateAnalyzer) BestPattern() string {
	if !a.done {
		a.ranked = a.Rank()
		a.done = true
	}
	if len(a.ranked) == 0 {
		return ""
	}
	return a.ranked[0].Regex
}

// templateCandidates builds the candidate set from decomposed segments.
// Placeholders map to a lazy capture group, literals to their escaped trimmed
// text; whitespace-only literals are dropped. All parts are joined with \s*
// to tolerate OCR-style inconsistent spacing.
func templateCandidates(segs []Segment) []Candidate {
	parts := make([]string, 0, len(segs))
	kept := make([]Segment, 0, len(segs))
	for _, s := range segs {
		if s.Placeholder {
			parts = append(parts, "(.+?)")
			kept = append(kept, s)
			continue
		}
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, regexp.QuoteMeta(t))
			kept = append(kept, s)
		}
	}
	if len(parts) == 0 {
		return nil
	}

	join := func(ps []string) string { return strings.Join(ps, `\s*`) }

	cands := []Candidate{{
		Strategy: "Contexto Completo",
		Pattern:  join(parts),
	}}

	// Start-anchored: drop the trailing literal, tolerating unseen text after
	// the captures.
	if !kept[len(kept)-1].Placeholder && len(kept) > 2 {
		cands = append(cands, Candidate{
			Strategy: "Ancorado no Início",
			Pattern:  join(parts[:len(parts)-1]),
		})
	}

	// End-anchored: symmetric, drop the leading literal.
	if !kept[0].Placeholder && len(kept) > 2 {
		cands = append(cands, Candidate{
			Strategy: "Ancorado no Fim",
			Pattern:  join(parts[1:]),
		})
	}

	// Minimal context: only the span from the first to the last placeholder.
	// Without a literal inside the span the pattern degenerates to adjacent
	// capture groups, so it is only added when some anchor survives.
	first, last := -1, -1
	for i, s := range kept {
		if s.Placeholder {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first != -1 && last > first {
		hasLiteral := false
		for _, s := range kept[first : last+1] {
			if !s.Placeholder {
				hasLiteral = true
				break
			}
		}
		if hasLiteral {
			cands = append(cands, Candidate{
				Strategy: "Contexto Mínimo (entre marcadores)",
				Pattern:  join(parts[first : last+1]),
			})
		}
	}

	return cands
}
