package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// MCP error codes.
const (
	ErrorCodeInvalidParams = -32602 // Invalid method parameters
)

// handleSearchFiles handles the search_files tool invocation.
func (s *Server) handleSearchFiles(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, missingParam("query")
	}
	extensions := stringSlice(args, "file_extensions")
	ancestors := stringSlice(args, "ancestor_folder_ids")

	out := s.pipeline.SearchFiles(ctx, query, extensions, ancestors)
	return mcp.NewToolResultText(out), nil
}

// handleFileText handles the get_file_text tool invocation.
func (s *Server) handleFileText(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	fileID, ok := args["file_id"].(string)
	if !ok || fileID == "" {
		return nil, missingParam("file_id")
	}

	return mcp.NewToolResultText(s.pipeline.FileText(ctx, fileID)), nil
}

// handleFileHighlights handles the get_highlights_from_file tool invocation.
func (s *Server) handleFileHighlights(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	fileID, ok := args["file_id"].(string)
	if !ok || fileID == "" {
		return nil, missingParam("file_id")
	}
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, missingParam("query")
	}
	maxHighlights := getIntDefault(args, "max_highlights", 5)

	out := s.pipeline.FileHighlights(ctx, fileID, query, maxHighlights)
	return mcp.NewToolResultText(out), nil
}

// handleLocateFolder handles the locate_folder tool invocation.
func (s *Server) handleLocateFolder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	name, ok := args["folder_name"].(string)
	if !ok || name == "" {
		return nil, missingParam("folder_name")
	}

	return mcp.NewToolResultText(s.pipeline.LocateFolder(ctx, name)), nil
}

// handleListFolder handles the list_folder tool invocation.
func (s *Server) handleListFolder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args, ok := request.Params.Arguments.(map[string]interface{})
	if !ok {
		return nil, newMCPError(ErrorCodeInvalidParams, "invalid arguments", nil)
	}

	folderID, ok := args["folder_id"].(string)
	if !ok || folderID == "" {
		return nil, missingParam("folder_id")
	}
	recursive := getBoolDefault(args, "recursive", false)

	return mcp.NewToolResultText(s.pipeline.ListFolder(ctx, folderID, recursive)), nil
}

// MCPError represents an MCP protocol error.
type MCPError struct {
	Code    int
	Message string
	Data    interface{}
}

func (e *MCPError) Error() string {
	return fmt.Sprintf("MCP error %d: %s", e.Code, e.Message)
}

func newMCPError(code int, message string, data interface{}) error {
	return &MCPError{Code: code, Message: message, Data: data}
}

func missingParam(name string) error {
	return newMCPError(ErrorCodeInvalidParams, name+" parameter is required", map[string]interface{}{
		"param":  name,
		"reason": "missing or empty",
	})
}

// stringSlice extracts an optional array-of-strings parameter.
func stringSlice(args map[string]interface{}, key string) []string {
	raw, ok := args[key].([]interface{})
	if !ok {
		return nil
	}
	var out []string
	for _, v := range raw {
		if s, ok := v.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// getBoolDefault extracts a boolean parameter with a default value.
func getBoolDefault(args map[string]interface{}, key string, defaultValue bool) bool {
	if val, ok := args[key].(bool); ok {
		return val
	}
	return defaultValue
}

// getIntDefault extracts an integer parameter with a default value.
func getIntDefault(args map[string]interface{}, key string, defaultValue int) int {
	if val, ok := args[key].(float64); ok {
		return int(val)
	}
	if val, ok := args[key].(int); ok {
		return val
	}
	return defaultValue
}
