// CLAUDE:SUMMARY MCP tool registration for the analyzer — regex_words, regex_context, regex_rank with polymorphic item schemas.
package analyzer

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/hazyhaar/rxrank/kit"
)

// RegisterMCP registers the regex analysis tools on an MCP server. Optional
// middlewares wrap every tool endpoint (outermost first).
func (e *Engine) RegisterMCP(srv *mcp.Server, mws ...kit.Middleware) {
	wrap := func(ep kit.Endpoint) kit.Endpoint {
		if len(mws) == 0 {
			return ep
		}
		return kit.Chain(mws...)(ep)
	}
	e.registerWordsTool(srv, wrap)
	e.registerContextTool(srv, wrap)
	e.registerRankTool(srv, wrap)
}

func inputSchema(properties map[string]any, required []string) map[string]any {
	s := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		s["required"] = required
	}
	return s
}

// itemsSchema accepts either one string or a list of strings, matching the
// polymorphic contract of the upstream tool surface.
func itemsSchema(desc string) map[string]any {
	return map[string]any{
		"anyOf": []any{
			map[string]any{"type": "string"},
			map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		},
		"description": desc,
	}
}

func textsSchema() map[string]any {
	return map[string]any{
		"type":        "array",
		"items":       map[string]any{"type": "string"},
		"description": "Example texts the candidate patterns are scored against",
	}
}

// --- regex_words ---

type wordsReq struct {
	Words json.RawMessage `json:"palavra_ou_palavras"`
	Texts []string        `json:"textos"`
}

func (e *Engine) registerWordsTool(srv *mcp.Server, wrap func(kit.Endpoint) kit.Endpoint) {
	tool := &mcp.Tool{
		Name:        "regex_words",
		Description: "Analyze one or more keywords against example texts and return the best extraction regex for each.",
		InputSchema: inputSchema(map[string]any{
			"palavra_ou_palavras": itemsSchema("Target keyword, or list of keywords"),
			"textos":              textsSchema(),
		}, []string{"palavra_ou_palavras", "textos"}),
	}

	endpoint := wrap(func(_ context.Context, req any) (any, error) {
		r := req.(*wordsReq)
		in, err := DecodeInput(r.Words)
		if err != nil {
			return nil, err
		}
		return e.BestForWords(in, r.Texts)
	})

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r wordsReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- regex_context ---

type contextReq struct {
	Templates json.RawMessage `json:"template_ou_templates"`
	Texts     []string        `json:"textos"`
}

func (e *Engine) registerContextTool(srv *mcp.Server, wrap func(kit.Endpoint) kit.Endpoint) {
	tool := &mcp.Tool{
		Name:        "regex_context",
		Description: "Analyze one or more [marker] templates against example texts and return the best extraction regex for each.",
		InputSchema: inputSchema(map[string]any{
			"template_ou_templates": itemsSchema("Template with [marker] placeholders, or list of templates"),
			"textos":                textsSchema(),
		}, []string{"template_ou_templates", "textos"}),
	}

	endpoint := wrap(func(_ context.Context, req any) (any, error) {
		r := req.(*contextReq)
		in, err := DecodeInput(r.Templates)
		if err != nil {
			return nil, err
		}
		return e.BestForTemplates(in, r.Texts)
	})

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r contextReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}

// --- regex_rank ---

type rankReq struct {
	Items json.RawMessage `json:"item_ou_itens"`
	Texts []string        `json:"textos"`
}

func (e *Engine) registerRankTool(srv *mcp.Server, wrap func(kit.Endpoint) kit.Endpoint) {
	tool := &mcp.Tool{
		Name:        "regex_rank",
		Description: "Analyze one or more items (keyword or [marker] template) and return the full ranked strategy list for each.",
		InputSchema: inputSchema(map[string]any{
			"item_ou_itens": itemsSchema("Keyword or template, or list of either"),
			"textos":        textsSchema(),
		}, []string{"item_ou_itens", "textos"}),
	}

	endpoint := wrap(func(_ context.Context, req any) (any, error) {
		r := req.(*rankReq)
		in, err := DecodeInput(r.Items)
		if err != nil {
			return nil, err
		}
		return e.Rank(in, r.Texts)
	})

	decode := func(req *mcp.CallToolRequest) (*kit.MCPDecodeResult, error) {
		var r rankReq
		if err := json.Unmarshal(req.Params.Arguments, &r); err != nil {
			return nil, err
		}
		return &kit.MCPDecodeResult{Request: &r}, nil
	}

	kit.RegisterMCPTool(srv, tool, endpoint, decode)
}
