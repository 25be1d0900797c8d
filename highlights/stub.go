package highlights

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sevigo/highlighter/schema"
)

// Stub is a schema.Ranker that never touches the network. It returns fixed,
// clearly labeled simulated highlights and is selected at construction time
// when no API key is configured.
type Stub struct {
	logger *slog.Logger
}

var _ schema.Ranker = (*Stub)(nil)

// NewStub creates a stub ranker.
func NewStub(logger *slog.Logger) *Stub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stub{logger: logger.With("component", "highlights_stub")}
}

func (s *Stub) Highlights(_ context.Context, text, query string, _ int) []schema.Highlight {
	if strings.TrimSpace(text) == "" || strings.TrimSpace(query) == "" {
		return nil
	}
	s.logger.Warn("using simulated highlights due to missing API key")
	return []schema.Highlight{{
		Text:       fmt.Sprintf("Simulated highlight for query: %s", query),
		Relevance:  0.95,
		ChunkIndex: -1,
	}}
}

func (s *Stub) HighlightsFromChunks(_ context.Context, chunks []string, query string, _ int) []schema.Highlight {
	if len(chunks) == 0 || strings.TrimSpace(query) == "" {
		return nil
	}
	s.logger.Warn("using simulated highlights due to missing API key")

	n := min(5, len(chunks))
	highlights := make([]schema.Highlight, 0, n)
	for i := range n {
		highlights = append(highlights, schema.Highlight{
			Text:       fmt.Sprintf("Simulated highlight for query: %s (chunk %d)", query, i),
			Relevance:  0.95 - float64(i)*0.05,
			ChunkIndex: i,
		})
	}
	return highlights
}
