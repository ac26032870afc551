package trace

import (
	"context"
	"encoding/json"
	"time"
	"unicode/utf8"

	"github.com/hazyhaar/rxrank/kit"
)

// maxInputLen caps the stored copy of a request payload.
const maxInputLen = 512

// Middleware returns a kit.Middleware that records one trace entry per
// endpoint invocation through the global recorder. The tool name and trace
// ID are read from the context (set by kit.RegisterMCPTool and the HTTP
// trace-ID middleware respectively).
func Middleware() kit.Middleware {
	return func(next kit.Endpoint) kit.Endpoint {
		return func(ctx context.Context, req any) (any, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			e := &Entry{
				TraceID:    kit.GetTraceID(ctx),
				Tool:       kit.GetTool(ctx),
				Input:      encodeInput(req),
				DurationUs: time.Since(start).Microseconds(),
				Timestamp:  time.Now().UnixMicro(),
			}
			if err != nil {
				e.Error = err.Error()
			}
			Record(e)

			return resp, err
		}
	}
}

func encodeInput(req any) string {
	if req == nil {
		return ""
	}
	data, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	if len(data) > maxInputLen {
		// Back off to a rune boundary so the stored copy stays valid UTF-8.
		n := maxInputLen
		for n > 0 && !utf8.RuneStart(data[n]) {
			n--
		}
		data = data[:n]
	}
	return string(data)
}
