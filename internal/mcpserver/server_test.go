package mcpserver

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/starford/scoop/internal/dialogue"
	"github.com/starford/scoop/internal/qaservice"
	"github.com/starford/scoop/internal/render"
	"github.com/starford/scoop/internal/testutil"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	store, _ := testutil.Store(t)
	engine := dialogue.New(store, dialogue.WithLogger(testutil.Logger()))
	return New(qaservice.NewService(engine, store), "test", testutil.Logger())
}

func callTool(t *testing.T, srv *Server, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	ctx := context.Background()
	req := mcp.CallToolRequest{}
	req.Method = "tools/call"
	req.Params.Name = name
	req.Params.Arguments = args

	handlers := map[string]func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error){
		"ask":                srv.ask,
		"list_topics":        srv.listTopics,
		"get_definition":     srv.getDefinition,
		"teach":              srv.teach,
		"search_definitions": srv.searchDefinitions,
	}
	h, ok := handlers[name]
	if !ok {
		t.Fatalf("unknown tool: %s", name)
	}
	result, err := h(ctx, req)
	if err != nil {
		t.Fatalf("tool %s error: %v", name, err)
	}
	return result
}

func resultText(r *mcp.CallToolResult) string {
	if len(r.Content) > 0 {
		if tc, ok := r.Content[0].(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

func TestAsk(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "ask", map[string]any{"message": "hello", "style": "plain"})
	if got := resultText(r); got != render.DefaultPlain.Greeting {
		t.Errorf("ask = %q", got)
	}

	r = callTool(t, srv, "ask", map[string]any{})
	if !r.IsError {
		t.Error("expected error for missing message")
	}
}

func TestListTopics(t *testing.T) {
	srv := testServer(t)
	lines := strings.Split(resultText(callTool(t, srv, "list_topics", nil)), "\n")
	if len(lines) != 30 || lines[0] != "401k" {
		t.Errorf("topics = %v", lines)
	}
}

func TestTeachAndGetDefinition(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "teach", map[string]any{"topic": "Gamma", "definition": "an option Greek"})
	if r.IsError || resultText(r) != "learned: gamma" {
		t.Fatalf("teach = %q", resultText(r))
	}

	r = callTool(t, srv, "get_definition", map[string]any{"topic": "gamma"})
	if got := resultText(r); !strings.HasPrefix(got, "an option Greek ") {
		t.Errorf("definition = %q", got)
	}
}

func TestTeachInvalid(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "teach", map[string]any{"topic": "???", "definition": "x"})
	if !r.IsError {
		t.Error("expected error for invalid topic")
	}
	r = callTool(t, srv, "teach", map[string]any{"topic": "gamma"})
	if !r.IsError {
		t.Error("expected error for missing definition")
	}
}

func TestGetDefinitionMissing(t *testing.T) {
	srv := testServer(t)
	r := callTool(t, srv, "get_definition", map[string]any{"topic": "gamma"})
	if !r.IsError || !strings.Contains(resultText(r), "unknown topic") {
		t.Errorf("missing topic = %q", resultText(r))
	}
}

func TestSearchDefinitions(t *testing.T) {
	srv := testServer(t)

	r := callTool(t, srv, "search_definitions", map[string]any{"query": "fund", "limit": float64(2)})
	var hits []qaservice.SearchHit
	if err := json.Unmarshal([]byte(resultText(r)), &hits); err != nil {
		t.Fatalf("decode: %v (%q)", err, resultText(r))
	}
	if len(hits) != 2 {
		t.Errorf("hits = %d, want 2", len(hits))
	}
}

