package analyzer

import "strings"

// BestForWords analyzes one keyword or a batch of keywords and returns the
// best-scoring pattern for each. A keyword that cannot be analyzed (empty
// keyword, empty corpus) degrades to the plain word-boundary fallback instead
// of failing the call; only invalid Input is an error.
func (e *Engine) BestForWords(in Input, texts []string) (PatternOutput, error) {
	switch in.kind {
	case inputOne:
		return PatternOutput{Single: e.bestWord(in.single, texts)}, nil
	case inputMany:
		out := make(map[string]string, len(in.batch))
		for _, word := range in.batch {
			out[word] = e.bestWord(word, texts)
		}
		return PatternOutput{Batch: out, IsBatch: true}, nil
	default:
		return PatternOutput{}, ErrUnsupportedInput
	}
}

// BestForTemplates analyzes one template or a batch of templates and returns
// the best-scoring pattern for each. An invalid template yields "" for that
// item only; only invalid Input is an error.
func (e *Engine) BestForTemplates(in Input, texts []string) (PatternOutput, error) {
	switch in.kind {
	case inputOne:
		return PatternOutput{Single: e.bestTemplate(in.single, texts)}, nil
	case inputMany:
		out := make(map[string]string, len(in.batch))
		for _, tpl := range in.batch {
			out[tpl] = e.bestTemplate(tpl, texts)
		}
		return PatternOutput{Batch: out, IsBatch: true}, nil
	default:
		return PatternOutput{}, ErrUnsupportedInput
	}
}

// Rank analyzes one item or a batch of items and returns the full ranked
// strategy list for each. An item containing both "[" and "]" takes the
// template path, anything else the keyword path. A failing item yields a
// single error-tagged entry; a batch with an empty corpus yields an empty
// list per item. Only invalid Input is an error.
func (e *Engine) Rank(in Input, texts []string) (RankOutput, error) {
	switch in.kind {
	case inputOne:
		return RankOutput{Single: e.rankItem(in.single, texts)}, nil
	case inputMany:
		out := make(map[string][]Result, len(in.batch))
		for _, item := range in.batch {
			if len(texts) == 0 {
				out[item] = []Result{}
				continue
			}
			out[item] = e.rankItem(item, texts)
		}
		return RankOutput{Batch: out, IsBatch: true}, nil
	default:
		return RankOutput{}, ErrUnsupportedInput
	}
}

func (e *Engine) bestWord(word string, texts []string) string {
	a, err := NewWordAnalyzer(word, texts, e.cfg.ContextWindow)
	if err != nil {
		e.logger.Debug("word analysis fallback", "word", word, "error", err)
		return FallbackWordPattern(word)
	}
	return a.BestPattern()
}

func (e *Engine) bestTemplate(template string, texts []string) string {
	a, err := NewTemplateAnalyzer(template, texts)
	if err != nil {
		e.logger.Debug("template analysis failed", "template", template, "error", err)
		return ""
	}
	return a.BestPattern()
}

func (e *Engine) rankItem(item string, texts []string) []Result {
	if strings.Contains(item, "[") && strings.Contains(item, "]") {
		a, err := NewTemplateAnalyzer(item, texts)
		if err != nil {
			return []Result{{Error: err.Error()}}
		}
		return a.Rank()
	}
	a, err := NewWordAnalyzer(item, texts, e.cfg.ContextWindow)
	if err != nil {
		return []Result{{Error: err.Error()}}
	}
	return a.Rank()
}
