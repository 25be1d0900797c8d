package chunking

// DefaultMaxChunkSize is the size bound applied when none is configured.
const DefaultMaxChunkSize = 500

// options holds configuration settings for a chunker.
type options struct {
	maxChunkSize int
}

// Option is a function type for configuring a chunker.
type Option func(*options)

// WithMaxChunkSize sets the maximum chunk size, including the trailing
// delimiter. Values below 1 are ignored.
func WithMaxChunkSize(size int) Option {
	return func(o *options) {
		if size > 0 {
			o.maxChunkSize = size
		}
	}
}
