package main

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hazyhaar/rxrank/analyzer"
	"github.com/hazyhaar/rxrank/kit"
	"github.com/hazyhaar/rxrank/trace"
)

// newRouter builds the HTTP surface: health, the three analysis routes, the
// trace query route and the internal trace ingest endpoint. The analysis
// routes mirror the MCP tool contracts, Portuguese field names included.
func newRouter(eng *analyzer.Engine, store *trace.Store, apiToken string) http.Handler {
	r := chi.NewRouter()
	r.Use(traceID)

	chain := kit.Chain(trace.Middleware())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, map[string]string{"status": "ok"})
	})

	// Trace ingest stays outside token auth: the stdio-mode pusher on the
	// same host sends no credentials.
	r.Post("/api/internal/traces", trace.IngestHandler(store))

	r.Group(func(g chi.Router) {
		if apiToken != "" {
			g.Use(requireToken(apiToken))
		}

		g.Post("/api/words", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Words json.RawMessage `json:"palavra_ou_palavras"`
				Texts []string        `json:"textos"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, 400, err)
				return
			}
			ctx := kit.WithTool(r.Context(), "regex_words")
			resp, err := chain(func(_ context.Context, _ any) (any, error) {
				in, err := analyzer.DecodeInput(body.Words)
				if err != nil {
					return nil, err
				}
				return eng.BestForWords(in, body.Texts)
			})(ctx, body)
			if err != nil {
				writeError(w, 400, err)
				return
			}
			writeJSON(w, 200, resp)
		})

		g.Post("/api/context", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Templates json.RawMessage `json:"template_ou_templates"`
				Texts     []string        `json:"textos"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, 400, err)
				return
			}
			ctx := kit.WithTool(r.Context(), "regex_context")
			resp, err := chain(func(_ context.Context, _ any) (any, error) {
				in, err := analyzer.DecodeInput(body.Templates)
				if err != nil {
					return nil, err
				}
				return eng.BestForTemplates(in, body.Texts)
			})(ctx, body)
			if err != nil {
				writeError(w, 400, err)
				return
			}
			writeJSON(w, 200, resp)
		})

		g.Post("/api/rank", func(w http.ResponseWriter, r *http.Request) {
			var body struct {
				Items json.RawMessage `json:"item_ou_itens"`
				Texts []string        `json:"textos"`
			}
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				writeError(w, 400, err)
				return
			}
			ctx := kit.WithTool(r.Context(), "regex_rank")
			resp, err := chain(func(_ context.Context, _ any) (any, error) {
				in, err := analyzer.DecodeInput(body.Items)
				if err != nil {
					return nil, err
				}
				return eng.Rank(in, body.Texts)
			})(ctx, body)
			if err != nil {
				writeError(w, 400, err)
				return
			}
			writeJSON(w, 200, resp)
		})

		g.Get("/api/traces", func(w http.ResponseWriter, r *http.Request) {
			entries, err := store.Recent(r.Context(), queryInt(r, "limit", 100))
			if err != nil {
				writeError(w, 500, err)
				return
			}
			if entries == nil {
				entries = []*trace.Entry{}
			}
			writeJSON(w, 200, entries)
		})
	})

	return r
}

// traceID assigns every request a trace ID, propagated through the kit
// context and echoed in the X-Trace-ID response header.
func traceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Trace-ID")
		if id == "" {
			id = uuid.NewString()
		}
		ctx := kit.WithTraceID(r.Context(), id)
		ctx = kit.WithTransport(ctx, "http")
		w.Header().Set("X-Trace-ID", id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func requireToken(token string) func(http.Handler) http.Handler {
	expect := []byte(token)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			if subtle.ConstantTimeCompare([]byte(got), expect) != 1 {
				writeError(w, 401, errors.New("invalid or missing bearer token"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// --- Helpers ---

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

func queryInt(r *http.Request, key string, def int) int {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
