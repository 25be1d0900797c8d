// Package pipeline wires document extraction, chunking, and relevance
// ranking into string-result operations. Every operation returns a plain
// text outcome, success or failure alike: the caller is a tool-invocation
// layer that renders strings, not structured errors.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sevigo/highlighter/chunking"
	"github.com/sevigo/highlighter/extract"
	"github.com/sevigo/highlighter/highlights"
	"github.com/sevigo/highlighter/schema"
)

// Pipeline produces document highlights and related document operations on
// top of a document store and a ranking service.
type Pipeline struct {
	store   schema.DocumentStore
	ranker  schema.Ranker
	chunker schema.Chunker
	pdf     *extract.PDF
	logger  *slog.Logger
	topN    int
}

// New creates a pipeline over the given collaborators.
func New(store schema.DocumentStore, ranker schema.Ranker, opts ...Option) *Pipeline {
	o := options{
		chunker: chunking.NewTiered(),
		logger:  slog.Default(),
		topN:    highlights.DefaultTopN,
	}
	for _, opt := range opts {
		opt(&o)
	}

	logger := o.logger.With("component", "pipeline")
	return &Pipeline{
		store:   store,
		ranker:  ranker,
		chunker: o.chunker,
		pdf:     extract.NewPDF(logger),
		logger:  logger,
		topN:    o.topN,
	}
}

// FileHighlights extracts a document's text, chunks it, ranks the chunks
// against the query, and renders up to maxHighlights results as a numbered
// list. Failures come back as descriptive strings naming the document.
func (p *Pipeline) FileHighlights(ctx context.Context, fileID, query string, maxHighlights int) string {
	info, err := p.store.FileInfo(ctx, fileID)
	if err != nil {
		p.logger.Error("failed to resolve file", "file_id", fileID, "error", err)
		return fmt.Sprintf("Error getting highlights from file (ID: %s): %v", fileID, err)
	}
	name := info.Name
	p.logger.Debug("processing file", "name", name, "file_id", fileID)

	text := p.extractText(ctx, fileID, name)
	if text == "" {
		p.logger.Error("failed to extract text", "name", name, "file_id", fileID)
		return fmt.Sprintf("Failed to extract text from file %s (ID: %s).", name, fileID)
	}
	p.logger.Debug("extracted text", "name", name, "chars", len(text))

	chunks := p.chunker.Chunk(text)
	p.logger.Debug("created chunks", "name", name, "count", len(chunks))

	results := p.ranker.HighlightsFromChunks(ctx, chunks, query, p.topN)
	if maxHighlights < 0 {
		maxHighlights = 0
	}
	if len(results) > maxHighlights {
		results = results[:maxHighlights]
	}
	p.logger.Debug("received highlights", "name", name, "count", len(results))

	if len(results) == 0 {
		return fmt.Sprintf("No relevant highlights found in file %s (ID: %s) for query: %s", name, fileID, query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Highlights from %s (ID: %s) for query: %s\n\n", name, fileID, query)
	for i, h := range results {
		fmt.Fprintf(&b, "%d. %s\n", i+1, h.Text)
	}
	return b.String()
}

// extractText picks the extraction path by extension sniffing on the display
// name: PDFs go through the PDF extractor on raw content, everything else
// through the store's own text extraction. Extraction faults surface as
// empty text, not as errors.
func (p *Pipeline) extractText(ctx context.Context, fileID, name string) string {
	if strings.HasSuffix(strings.ToLower(name), ".pdf") {
		p.logger.Debug("extracting text from PDF file", "name", name)
		content, err := p.store.FileContent(ctx, fileID)
		if err != nil {
			p.logger.Error("failed to fetch PDF content", "name", name, "error", err)
			return ""
		}
		text, err := p.pdf.Bytes(content)
		if err != nil {
			p.logger.Error("PDF text extraction failed", "name", name, "error", err)
			return ""
		}
		return text
	}

	p.logger.Debug("extracting text from non-PDF file", "name", name)
	text, err := p.store.FileText(ctx, fileID)
	if err != nil {
		p.logger.Error("text extraction failed", "name", name, "error", err)
		return ""
	}
	return text
}

// SearchFiles finds files matching the query and renders one line per hit.
func (p *Pipeline) SearchFiles(ctx context.Context, query string, extensions, ancestorFolderIDs []string) string {
	results, err := p.store.Search(ctx, query, extensions, ancestorFolderIDs)
	if err != nil {
		p.logger.Error("search failed", "query", query, "error", err)
		return fmt.Sprintf("Error searching files: %v", err)
	}

	lines := make([]string, 0, len(results))
	for _, f := range results {
		line := fmt.Sprintf("%s (id:%s)", f.Name, f.ID)
		if f.Description != "" {
			line += " " + f.Description
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// FileText returns the extracted plain text of a document.
func (p *Pipeline) FileText(ctx context.Context, fileID string) string {
	text, err := p.store.FileText(ctx, fileID)
	if err != nil {
		p.logger.Error("failed to read file", "file_id", fileID, "error", err)
		return fmt.Sprintf("Error reading file (ID: %s): %v", fileID, err)
	}
	return text
}

// LocateFolder finds folders by name and renders one line per hit.
func (p *Pipeline) LocateFolder(ctx context.Context, name string) string {
	results, err := p.store.LocateFolder(ctx, name)
	if err != nil {
		p.logger.Error("failed to locate folder", "name", name, "error", err)
		return fmt.Sprintf("Error locating folder %s: %v", name, err)
	}

	lines := make([]string, 0, len(results))
	for _, f := range results {
		lines = append(lines, fmt.Sprintf("%s (id:%s)", f.Name, f.ID))
	}
	return strings.Join(lines, "\n")
}

// ListFolder lists a folder's entries as a JSON array.
func (p *Pipeline) ListFolder(ctx context.Context, folderID string, recursive bool) string {
	entries, err := p.store.ListFolder(ctx, folderID, recursive)
	if err != nil {
		p.logger.Error("failed to list folder", "folder_id", folderID, "error", err)
		return fmt.Sprintf("Error listing folder (ID: %s): %v", folderID, err)
	}
	if entries == nil {
		entries = []schema.Entry{}
	}

	data, err := json.Marshal(entries)
	if err != nil {
		p.logger.Error("failed to encode folder listing", "folder_id", folderID, "error", err)
		return fmt.Sprintf("Error listing folder (ID: %s): %v", folderID, err)
	}
	return string(data)
}
