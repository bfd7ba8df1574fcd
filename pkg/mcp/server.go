// Package mcp exposes the chat engine as an MCP tool so agent clients
// can ask company questions through the same pipeline as the CLI and
// web surfaces.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/softerio/chatbot-engine/pkg/chat"
	"github.com/softerio/chatbot-engine/pkg/models"
)

// Server wraps the mcp-go MCPServer.
type Server struct {
	mcp    *server.MCPServer
	logger *zap.Logger
}

// NewServer creates an MCP server with the ask_company tool registered.
func NewServer(name, version string, engine *chat.Engine, logger *zap.Logger) *Server {
	mcpServer := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(true),
	)

	s := &Server{
		mcp:    mcpServer,
		logger: logger.Named("mcp"),
	}
	s.registerAskCompanyTool(engine)

	return s
}

// NewStreamableHTTPServer creates the HTTP transport for this MCP
// server. The surrounding mux routes /mcp to it.
func (s *Server) NewStreamableHTTPServer() *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(
		s.mcp,
		server.WithStateLess(true),
	)
}

// askCompanyResult is the JSON payload returned by the tool.
type askCompanyResult struct {
	Answer   string `json:"answer"`
	Language string `json:"language"`
	Source   string `json:"source"`
}

func (s *Server) registerAskCompanyTool(engine *chat.Engine) {
	tool := mcp.NewTool(
		"ask_company",
		mcp.WithDescription(
			"Ask a question about the company: name, background, services, or contact information. "+
				"Supports English and Urdu; by default the language is auto-detected from the message. "+
				"Always returns an answer - a curated one when the question matches the knowledge base, "+
				"otherwise a generated or default response.",
		),
		mcp.WithString(
			"message",
			mcp.Required(),
			mcp.Description("The question to ask, in English or Urdu"),
		),
		mcp.WithString(
			"language",
			mcp.Description("Optional: 'english', 'urdu', or 'auto' (default)"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithOpenWorldHintAnnotation(false),
	)

	s.mcp.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		message, err := req.RequireString("message")
		if err != nil {
			return nil, err
		}

		locale := models.LocaleAuto
		if lang := req.GetString("language", ""); lang != "" {
			locale, err = models.ParseLocale(lang)
			if err != nil {
				return mcp.NewToolResultError("language must be 'english', 'urdu', or 'auto'"), nil
			}
		}

		// Each tool call is its own session; MCP clients carry no
		// conversation state here.
		sess := chat.NewSession()
		sess.SetLocale(locale)

		answer := engine.Respond(ctx, message, sess)

		s.logger.Debug("ask_company answered",
			zap.String("language", string(answer.Locale)),
			zap.String("source", string(answer.Source)))

		jsonResult, err := json.Marshal(askCompanyResult{
			Answer:   answer.Text,
			Language: string(answer.Locale),
			Source:   string(answer.Source),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result: %w", err)
		}

		return mcp.NewToolResultText(string(jsonResult)), nil
	})
}
