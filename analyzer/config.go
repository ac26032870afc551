package analyzer

import "log/slog"

// DefaultContextWindow is the number of characters captured on each side of a
// keyword occurrence when learning surrounding context.
const DefaultContextWindow = 30

// Config configures the analysis engine.
type Config struct {
	// ContextWindow is the surrounding-context capture size in characters
	// (default: 30).
	ContextWindow int `json:"context_window" yaml:"context_window"`

	// Logger for debug messages.
	Logger *slog.Logger `json:"-" yaml:"-"`
}

func (c *Config) defaults() {
	if c.ContextWindow <= 0 {
		c.ContextWindow = DefaultContextWindow
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
}
