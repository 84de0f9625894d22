// Package mcpserver exposes the Scoop question-answering tools over MCP
// (Model Context Protocol) stdio transport.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/starford/scoop/internal/apperr"
	"github.com/starford/scoop/internal/qaservice"
)

// Server wraps the MCP server with Scoop tools.
type Server struct {
	mcp    *server.MCPServer
	svc    *qaservice.Service
	logger *slog.Logger
}

// New creates a new MCP server with all Scoop tools registered.
func New(svc *qaservice.Service, version string, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{svc: svc, logger: logger}

	s.mcp = server.NewMCPServer(
		"Scoop",
		version,
		server.WithToolCapabilities(false),
	)

	s.mcp.AddTool(mcp.NewTool("ask",
		mcp.WithDescription("Ask a financial-terminology question, greet, say goodbye, or teach a definition "+
			"with 'Learn that [topic] is [definition]'. Returns the rendered reply."),
		mcp.WithString("message", mcp.Required(), mcp.Description("The user's message")),
		mcp.WithString("style", mcp.Description("Response style: plain or themed (default themed)")),
	), s.ask)

	s.mcp.AddTool(mcp.NewTool("list_topics",
		mcp.WithDescription("List every known financial topic, alphabetically."),
	), s.listTopics)

	s.mcp.AddTool(mcp.NewTool("get_definition",
		mcp.WithDescription("Return the stored definition of a topic without any styling."),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Topic name, e.g. 'compound interest'")),
		mcp.WithString("style", mcp.Description("plain or themed (default themed)")),
	), s.getDefinition)

	s.mcp.AddTool(mcp.NewTool("teach",
		mcp.WithDescription("Store a new definition for a topic. Existing topics are overwritten."),
		mcp.WithString("topic", mcp.Required(), mcp.Description("Topic: letters, digits and spaces")),
		mcp.WithString("definition", mcp.Required(), mcp.Description("Definition text")),
	), s.teach)

	s.mcp.AddTool(mcp.NewTool("search_definitions",
		mcp.WithDescription("Search topic names and definitions."),
		mcp.WithString("query", mcp.Required(), mcp.Description("Search query string")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results (default 20)")),
	), s.searchDefinitions)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcp)
}

// MCPServer returns the underlying server for testing.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcp
}

// call tags a tool invocation with a correlation id for the logs.
func (s *Server) call(tool string) *slog.Logger {
	l := s.logger.With(slog.String("tool", tool), slog.String("call_id", uuid.NewString()))
	l.Debug("mcp: tool called")
	return l
}

func (s *Server) ask(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.call("ask")
	message, err := req.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(s.svc.Ask(ctx, message, req.GetString("style", ""))), nil
}

func (s *Server) listTopics(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.call("list_topics")
	return mcp.NewToolResultText(strings.Join(s.svc.Topics(ctx), "\n")), nil
}

func (s *Server) getDefinition(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := s.call("get_definition")
	topic, err := req.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detail, err := s.svc.Definition(ctx, topic, req.GetString("style", ""))
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			return mcp.NewToolResultError(fmt.Sprintf("unknown topic: %s", topic)), nil
		}
		log.Error("mcp: get_definition failed", slog.String("error", err.Error()))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(detail.Definition), nil
}

func (s *Server) teach(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	log := s.call("teach")
	topic, err := req.RequireString("topic")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	definition, err := req.RequireString("definition")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	detail, err := s.svc.Teach(ctx, topic, definition)
	if err != nil {
		log.Warn("mcp: teach rejected", slog.String("error", err.Error()))
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("learned: %s", detail.Topic)), nil
}

func (s *Server) searchDefinitions(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.call("search_definitions")
	query, err := req.RequireString("query")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	hits, err := s.svc.Search(ctx, query, req.GetInt("limit", qaservice.DefaultSearchLimit))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	out, _ := json.MarshalIndent(hits, "", "  ")
	return mcp.NewToolResultText(string(out)), nil
}
