// Package trace records regex analysis calls for inspection and debugging.
//
// Every tool invocation (regex_words, regex_context, regex_rank) produces one
// Entry: which tool ran, a truncated copy of its input, how long scoring
// took, and whether it failed. Entries are persisted asynchronously so
// recording never blocks an analysis call.
//
// Two backends implement Recorder: Store writes to a local SQLite table, and
// RemoteStore POSTs batches to a collector endpoint (used when rxrank runs as
// an MCP stdio tool next to an HTTP daemon).
//
//	db, _ := dbopen.Open("db/traces.db", dbopen.WithMkdirAll())
//	store := trace.NewStore(db)
//	store.Init()
//	trace.SetStore(store)
//
// Trace IDs are read from context via kit.GetTraceID for request correlation.
package trace

import "sync"

// Entry is a single analysis trace record.
type Entry struct {
	TraceID    string `json:"trace_id"`        // correlation with HTTP/MCP request
	Tool       string `json:"tool"`            // regex_words, regex_context, regex_rank
	Input      string `json:"input"`           // JSON-encoded request, truncated
	DurationUs int64  `json:"duration_us"`     // microseconds
	Error      string `json:"error,omitempty"` // empty on success
	Timestamp  int64  `json:"timestamp"`       // unix microseconds
}

// Recorder is the interface for trace persistence backends.
// Store (local SQLite) and RemoteStore (HTTP POST) both implement it.
type Recorder interface {
	RecordAsync(e *Entry)
	Close() error
}

// global recorder (nil = tracing disabled)
var (
	globalStore Recorder
	storeMu     sync.RWMutex
)

// SetStore sets the global trace recorder. Pass nil to disable tracing.
func SetStore(s Recorder) {
	storeMu.Lock()
	globalStore = s
	storeMu.Unlock()
}

func getStore() Recorder {
	storeMu.RLock()
	defer storeMu.RUnlock()
	return globalStore
}

// Record queues an entry on the global recorder, if one is set.
func Record(e *Entry) {
	if s := getStore(); s != nil {
		s.RecordAsync(e)
	}
}
