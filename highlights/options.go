package highlights

import (
	"log/slog"
	"net/http"
	"time"
)

// DefaultBaseURL is the production endpoint of the highlights service.
const DefaultBaseURL = "https://api.highlights.mk1.ai"

const (
	defaultTextTimeout  = 30 * time.Second
	defaultChunkTimeout = 60 * time.Second
)

type options struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	logger       *slog.Logger
	textTimeout  time.Duration
	chunkTimeout time.Duration
}

// Option defines a function type for configuring the client.
type Option func(*options)

func defaultOptions() *options {
	return &options{
		baseURL:      DefaultBaseURL,
		logger:       slog.Default(),
		textTimeout:  defaultTextTimeout,
		chunkTimeout: defaultChunkTimeout,
	}
}

// WithBaseURL overrides the service endpoint.
func WithBaseURL(url string) Option {
	return func(o *options) {
		if url != "" {
			o.baseURL = url
		}
	}
}

// WithAPIKey sets the API key sent with each request.
func WithAPIKey(key string) Option {
	return func(o *options) {
		o.apiKey = key
	}
}

// WithHTTPClient allows providing a custom http.Client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
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

// WithTimeouts sets the per-call deadlines for the single-text and
// multi-chunk ranking calls.
func WithTimeouts(text, chunks time.Duration) Option {
	return func(o *options) {
		if text > 0 {
			o.textTimeout = text
		}
		if chunks > 0 {
			o.chunkTimeout = chunks
		}
	}
}
