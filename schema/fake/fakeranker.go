// Package fake provides test doubles for schema interfaces.
package fake

import (
	"context"

	"github.com/sevigo/highlighter/schema"
)

// Ranker returns canned highlights and records the last call.
type Ranker struct {
	HighlightsToReturn []schema.Highlight

	LastText   string
	LastChunks []string
	LastQuery  string
	LastTopN   int
}

var _ schema.Ranker = (*Ranker)(nil)

func NewRanker() *Ranker {
	return &Ranker{}
}

func (r *Ranker) Highlights(_ context.Context, text, query string, maxHighlights int) []schema.Highlight {
	r.LastText = text
	r.LastQuery = query
	r.LastTopN = maxHighlights
	return r.HighlightsToReturn
}

func (r *Ranker) HighlightsFromChunks(_ context.Context, chunks []string, query string, topN int) []schema.Highlight {
	r.LastChunks = chunks
	r.LastQuery = query
	r.LastTopN = topN
	return r.HighlightsToReturn
}
