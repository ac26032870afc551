package analyzer

import "errors"

// ErrInvalidTemplate is returned when a template has no [marker] placeholder
// or no surrounding context to anchor on.
var ErrInvalidTemplate = errors.New("analyzer: template must contain at least one [marker] and adjacent context")

// ErrEmptyInput is returned when the target item or the example corpus is empty.
var ErrEmptyInput = errors.New("analyzer: item and example texts must not be empty")

// ErrUnsupportedInput is returned when the top-level input is neither a single
// item nor a batch of items.
var ErrUnsupportedInput = errors.New("analyzer: input must be a string or a list of strings")
