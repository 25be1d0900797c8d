// Package schema defines the shared data types and collaborator interfaces
// used across the highlighter pipeline.
package schema

import "context"

// Highlight is a relevance-scored text fragment returned by the ranking
// service. ChunkIndex is the position of the fragment in the chunk sequence
// that was sent for ranking, or -1 when the service did not report one.
type Highlight struct {
	Text       string
	Relevance  float64
	ChunkIndex int
}

// FileInfo describes a document held by a DocumentStore.
type FileInfo struct {
	ID          string
	Name        string
	Description string
}

// Entry is a single item of a folder listing.
type Entry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description,omitempty"`
}

// Chunker splits text into ordered, length-bounded fragments whose
// concatenation reproduces the input exactly.
type Chunker interface {
	Chunk(text string) []string
}

// Ranker scores text fragments against a query. Implementations fail soft:
// any transport or protocol fault yields an empty result, never an error.
type Ranker interface {
	// Highlights ranks a single text against the query.
	Highlights(ctx context.Context, text, query string, maxHighlights int) []Highlight

	// HighlightsFromChunks ranks a sequence of chunks against the query,
	// requesting up to topN results ordered by the service.
	HighlightsFromChunks(ctx context.Context, chunks []string, query string, topN int) []Highlight
}

// DocumentStore is the document storage and search collaborator. Retry and
// authentication semantics are the implementation's concern.
type DocumentStore interface {
	// FileInfo resolves metadata (most importantly the display name) for a file.
	FileInfo(ctx context.Context, fileID string) (FileInfo, error)

	// FileText returns the extracted plain text of a file.
	FileText(ctx context.Context, fileID string) (string, error)

	// FileContent returns the raw bytes of a file.
	FileContent(ctx context.Context, fileID string) ([]byte, error)

	// Search finds files matching the query, optionally restricted to the
	// given file extensions and ancestor folders.
	Search(ctx context.Context, query string, extensions, ancestorFolderIDs []string) ([]FileInfo, error)

	// ListFolder lists the entries of a folder, optionally recursively.
	ListFolder(ctx context.Context, folderID string, recursive bool) ([]Entry, error)

	// LocateFolder finds folders by name.
	LocateFolder(ctx context.Context, name string) ([]FileInfo, error)
}
