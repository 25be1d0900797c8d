// Package mcpserver exposes the highlight pipeline's operations as MCP
// tools, so agent hosts can search documents and pull query-relevant
// highlights without holding whole documents in context.
package mcpserver

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/sevigo/highlighter/pipeline"
)

const (
	// ServerName is the MCP server name.
	ServerName = "highlighter"
	// ServerVersion is the current server version.
	ServerVersion = "1.0.0"
)

// Server wraps the MCP server with the pipeline it serves.
type Server struct {
	mcp      *server.MCPServer
	pipeline *pipeline.Pipeline
	logger   *slog.Logger
}

// NewServer creates an MCP server over the given pipeline.
func NewServer(p *pipeline.Pipeline, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		mcp:      server.NewMCPServer(ServerName, ServerVersion),
		pipeline: p,
		logger:   logger.With("component", "mcp_server"),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	s.mcp.AddTool(searchFilesTool(), s.handleSearchFiles)
	s.mcp.AddTool(fileTextTool(), s.handleFileText)
	s.mcp.AddTool(fileHighlightsTool(), s.handleFileHighlights)
	s.mcp.AddTool(locateFolderTool(), s.handleLocateFolder)
	s.mcp.AddTool(listFolderTool(), s.handleListFolder)
}

// Serve starts the MCP server on stdio and blocks until shutdown.
func (s *Server) Serve(_ context.Context) error {
	s.logger.Info("serving MCP on stdio")
	return server.ServeStdio(s.mcp)
}
