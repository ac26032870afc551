package analyzer

import (
	"encoding/json"
	"strings"
)

// Candidate is one generated regular expression proposed as an extraction
// pattern, before evaluation.
type Candidate struct {
	Strategy      string // human-readable strategy name
	Pattern       string // regex source, without inline flags
	CaseSensitive bool
}

// Result is the outcome of scoring one candidate against the corpus.
//
// The JSON field names (regex, estrategia, rating_sucesso, matches) are the
// wire contract of the upstream despacho-processing pipeline and must not be
// renamed. Regex carries the inline flags it was evaluated with, so compiling
// it reproduces the scored behavior exactly.
type Result struct {
	Regex    string `json:"regex"`
	Strategy string `json:"estrategia"`
	Rating   string `json:"rating_sucesso"` // "NN.NN%"
	Matches  string `json:"matches"`        // "successes/total"
	Error    string `json:"error,omitempty"`

	rate float64 // numeric rating, ordering key
}

// Rate returns the numeric success rate in percent.
func (r Result) Rate() float64 { return r.rate }

type inputKind int

const (
	inputNone inputKind = iota
	inputOne
	inputMany
)

// Input selects between a single item and an ordered batch of items.
// The zero value is invalid; build with One or Many.
type Input struct {
	single string
	batch  []string
	kind   inputKind
}

// One wraps a single keyword or template.
func One(item string) Input { return Input{single: item, kind: inputOne} }

// Many wraps an ordered batch of keywords or templates.
func Many(items []string) Input { return Input{batch: items, kind: inputMany} }

// DecodeInput interprets a raw JSON value as Input: a JSON string becomes
// One, a JSON array of strings becomes Many. Anything else, including a
// literal null or an array with non-string elements, is ErrUnsupportedInput.
func DecodeInput(raw json.RawMessage) (Input, error) {
	if isNull(raw) {
		return Input{}, ErrUnsupportedInput
	}
	var one string
	if err := json.Unmarshal(raw, &one); err == nil {
		return One(one), nil
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return Input{}, ErrUnsupportedInput
	}
	many := make([]string, len(elems))
	for i, e := range elems {
		// Unmarshal leaves the string zero-valued for a null element, so
		// null needs its own check.
		if isNull(e) {
			return Input{}, ErrUnsupportedInput
		}
		if err := json.Unmarshal(e, &many[i]); err != nil {
			return Input{}, ErrUnsupportedInput
		}
	}
	return Many(many), nil
}

func isNull(raw json.RawMessage) bool {
	s := strings.TrimSpace(string(raw))
	return s == "" || s == "null"
}

// PatternOutput is the result of a best-pattern call: a single pattern for
// One input, or an item→pattern mapping for Many input.
type PatternOutput struct {
	Single  string
	Batch   map[string]string
	IsBatch bool
}

// MarshalJSON renders a bare string for single input and an object keyed by
// item for batch input, preserving the upstream wire shape.
func (o PatternOutput) MarshalJSON() ([]byte, error) {
	if o.IsBatch {
		return json.Marshal(o.Batch)
	}
	return json.Marshal(o.Single)
}

// RankOutput is the result of a rank call: one ranked list for One input, or
// an item→ranked-list mapping for Many input.
type RankOutput struct {
	Single  []Result
	Batch   map[string][]Result
	IsBatch bool
}

// MarshalJSON renders a bare list for single input and an object keyed by
// item for batch input.
func (o RankOutput) MarshalJSON() ([]byte, error) {
	if o.IsBatch {
		return json.Marshal(o.Batch)
	}
	return json.Marshal(o.Single)
}
