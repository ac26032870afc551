// Package analyzer synthesizes and ranks regular-expression extraction
// strategies from example texts.
//
// Given a target keyword or a bracketed template (e.g. "Processo nº [numero]"),
// the engine generates several structurally distinct candidate patterns, scores
// each one against the supplied example corpus, and returns them ordered by
// empirical success rate. Keyword candidates range from a plain word-boundary
// match to context learned from the characters and substrings observed around
// each occurrence; template candidates trade anchoring strictness for
// tolerance of unseen surrounding text.
//
// The engine is synchronous and stateless across calls: every invocation
// allocates fresh intermediate structures, and nothing is cached beyond the
// per-analyzer best-pattern memo.
//
// Usage:
//
//	eng := analyzer.New(analyzer.Config{})
//	out, err := eng.Rank(analyzer.One("despacho"), texts)
package analyzer

import "log/slog"

// Engine is the regex strategy analysis engine.
type Engine struct {
	cfg    Config
	logger *slog.Logger
}

// New creates an Engine with the given configuration.
func New(cfg Config) *Engine {
	cfg.defaults()
	return &Engine{
		cfg:    cfg,
		logger: cfg.Logger,
	}
}
