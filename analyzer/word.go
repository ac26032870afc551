package analyzer

import (
	"fmt"
	"regexp"
	"strings"
)

// WordAnalyzer ranks extraction strategies for one target keyword against one
// example corpus. Instances are cheap and single-use; the ranked list is
// memoized only for BestPattern.
type WordAnalyzer struct {
	word   string
	texts  []string
	window int

	ranked []Result // memo for BestPattern
	done   bool
}

// NewWordAnalyzer returns ErrEmptyInput when word or texts are empty. A
// window <= 0 selects DefaultContextWindow.
func NewWordAnalyzer(word string, texts []string, window int) (*WordAnalyzer, error) {
	if word == "" || len(texts) == 0 {
		return nil, ErrEmptyInput
	}
	if window <= 0 {
		window = DefaultContextWindow
	}
	return &WordAnalyzer{
		word:   word,
		texts:  texts,
		window: window,
	}, nil
}

// Rank evaluates every keyword strategy against the corpus and returns them
// ordered by descending success rate. Each candidate is scored with its own
// declared case sensitivity.
func (a *WordAnalyzer) Rank() []Result {
	return evaluate(wordCandidates(a.word, a.texts, a.window), a.texts, false)
}

// BestPattern returns the highest-ranked pattern, computing and memoizing the
// ranked list on first call. When nothing survived evaluation it falls back
// to the plain word-boundary pattern.
func (a *WordAnalyzer) BestPattern() string {
	if !a.done {
		a.ranked = a.Rank()
		a.done = true
	}
	if len(a.ranked) == 0 {
		return FallbackWordPattern(a.word)
	}
	return a.ranked[0].Regex
}

// FallbackWordPattern is the deterministic pattern used when analysis cannot
// run: the escaped keyword between word boundaries.
func FallbackWordPattern(word string) string {
	return `\b` + regexp.QuoteMeta(word) + `\b`
}

// wordCandidates builds the keyword candidate set, from the most generic
// strategies to the ones anchored on learned context. Literal anchors are
// joined to the word with \s* to tolerate OCR-style inconsistent spacing.
func wordCandidates(word string, texts []string, window int) []Candidate {
	escaped := regexp.QuoteMeta(word)
	bounded := `\b` + escaped + `\b`

	cands := []Candidate{
		{
			Strategy: "Borda de Palavra Simples (ignora maiúsculas/minúsculas)",
			Pattern:  bounded,
		},
		{
			Strategy:      "Correspondência Exata (sensível a maiúsculas/minúsculas)",
			Pattern:       bounded,
			CaseSensitive: true,
		},
	}

	prefixes, suffixes := neighborChars(word, texts)

	if len(prefixes) > 0 {
		p := mostCommon(prefixes)
		cands = append(cands, Candidate{
			Strategy: fmt.Sprintf("Precedido pelo caractere mais comum ('%s')", p),
			Pattern:  regexp.QuoteMeta(p) + `\s*` + escaped + `\b`,
		})
	}

	if len(suffixes) > 0 {
		s := mostCommon(suffixes)
		cands = append(cands, Candidate{
			Strategy: fmt.Sprintf("Seguido pelo caractere mais comum ('%s')", s),
			Pattern:  `\b` + escaped + `\s*` + regexp.QuoteMeta(s),
		})
	}

	if len(prefixes) > 0 && len(suffixes) > 0 {
		p, s := mostCommon(prefixes), mostCommon(suffixes)
		cands = append(cands, Candidate{
			Strategy: fmt.Sprintf("Cercado pelos caracteres mais comuns ('%s' e '%s')", p, s),
			Pattern:  regexp.QuoteMeta(p) + `\s*` + escaped + `\s*` + regexp.QuoteMeta(s),
		})
	}

	// Learned optimal context: the longest prefix and suffix shared by every
	// observed occurrence window.
	if pairs := surroundingContexts(word, texts, window); len(pairs) > 0 {
		ps := make([]string, len(pairs))
		ss := make([]string, len(pairs))
		for i, c := range pairs {
			ps[i] = c.prefix
			ss[i] = c.suffix
		}
		cp := strings.TrimSpace(commonPrefix(ps))
		cs := strings.TrimSpace(commonSuffix(ss))
		if cp != "" || cs != "" {
			var parts []string
			for _, part := range []string{cp, word, cs} {
				if part != "" {
					parts = append(parts, regexp.QuoteMeta(part))
				}
			}
			cands = append(cands, Candidate{
				Strategy: "Contexto Otimizado (aprendido dos exemplos)",
				Pattern:  strings.Join(parts, `\s*`),
			})
		}
	}

	return cands
}
