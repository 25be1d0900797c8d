package pipeline

import (
	"log/slog"

	"github.com/sevigo/highlighter/schema"
)

type options struct {
	chunker schema.Chunker
	logger  *slog.Logger
	topN    int
}

// Option defines a function type for configuring the pipeline.
type Option func(*options)

// WithChunker substitutes the chunking strategy.
func WithChunker(chunker schema.Chunker) Option {
	return func(o *options) {
		if chunker != nil {
			o.chunker = chunker
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithTopN sets how many results are requested from the ranking service per
// call. It is deliberately larger than the final highlight cap so truncation
// has room to work with.
func WithTopN(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.topN = n
		}
	}
}
