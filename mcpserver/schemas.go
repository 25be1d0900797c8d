package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// searchFilesTool returns the tool definition for search_files.
func searchFilesTool() mcp.Tool {
	return mcp.Tool{
		Name:        "search_files",
		Description: "Search the document store for files matching a query",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"query": map[string]interface{}{
					"type":        "string",
					"description": "Name fragment to search for",
				},
				"file_extensions": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional file extensions to restrict the search to, e.g. *.pdf",
				},
				"ancestor_folder_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Optional folder IDs to search under",
				},
			},
			Required: []string{"query"},
		},
	}
}

// fileTextTool returns the tool definition for get_file_text.
func fileTextTool() mcp.Tool {
	return mcp.Tool{
		Name:        "get_file_text",
		Description: "Read the extracted plain text of a file in the document store",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the file to read",
				},
			},
			Required: []string{"file_id"},
		},
	}
}

// fileHighlightsTool returns the tool definition for get_highlights_from_file.
func fileHighlightsTool() mcp.Tool {
	return mcp.Tool{
		Name: "get_highlights_from_file",
		Description: "Extract text from a file, chunk it, and return the most " +
			"query-relevant highlights. Preferred for large files.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"file_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the file to analyze",
				},
				"query": map[string]interface{}{
					"type":        "string",
					"description": "What information to look for",
				},
				"max_highlights": map[string]interface{}{
					"type":        "integer",
					"description": "Maximum number of highlights to return",
					"default":     5,
				},
			},
			Required: []string{"file_id", "query"},
		},
	}
}

// locateFolderTool returns the tool definition for locate_folder.
func locateFolderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "locate_folder",
		Description: "Locate a folder in the document store by its name",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"folder_name": map[string]interface{}{
					"type":        "string",
					"description": "Name of the folder to locate",
				},
			},
			Required: []string{"folder_name"},
		},
	}
}

// listFolderTool returns the tool definition for list_folder.
func listFolderTool() mcp.Tool {
	return mcp.Tool{
		Name:        "list_folder",
		Description: "List the content of a folder as JSON",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"folder_id": map[string]interface{}{
					"type":        "string",
					"description": "ID of the folder to list",
				},
				"recursive": map[string]interface{}{
					"type":        "boolean",
					"description": "If true, list the content recursively",
					"default":     false,
				},
			},
			Required: []string{"folder_id"},
		},
	}
}
