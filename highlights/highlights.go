// Package highlights provides clients for the external relevance-ranking
// service. The live client performs the HTTP calls; the stub client stands in
// when no API key is configured, so consumers always receive a well-formed
// response shape. Both fail soft: any fault yields an empty result.
package highlights

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/sevigo/highlighter/schema"
)

// placeholderAPIKey is the unconfigured template value and is treated as no
// key at all.
const placeholderAPIKey = "your_highlights_api_key_here"

// DefaultTopN is the number of results requested from the service when the
// caller does not say otherwise.
const DefaultTopN = 10

// searchRequest matches the JSON structure of the service's /search endpoint.
type searchRequest struct {
	Query     string   `json:"query"`
	ChunkTxts []string `json:"chunk_txts"`
	TopN      int      `json:"top_n"`
	TrueOrder bool     `json:"true_order"`
}

// searchResponse matches the JSON structure of the /search response. Fields
// are pointers so that missing required fields are detectable and the call
// can fail closed instead of fabricating zero values.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ChunkTxt      *string  `json:"chunk_txt"`
	ChunkScore    *float64 `json:"chunk_score"`
	OriginalIndex *int     `json:"original_index"`
}

// Client calls the live highlights service. It implements schema.Ranker.
type Client struct {
	http *resty.Client
	opts *options
}

var _ schema.Ranker = (*Client)(nil)

// New builds a schema.Ranker from the options. When no usable API key is
// configured it returns a Stub, so misconfiguration degrades to clearly
// labeled simulated output instead of failing hard.
func New(opts ...Option) schema.Ranker {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.apiKey == "" || o.apiKey == placeholderAPIKey {
		o.logger.Warn("highlights API key is not set, using simulated highlights")
		return NewStub(o.logger)
	}
	return newClient(o)
}

// NewClient creates a live client regardless of key configuration.
func NewClient(opts ...Option) *Client {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return newClient(o)
}

func newClient(o *options) *Client {
	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetBaseURL(o.baseURL)
	rc.SetHeader("Content-Type", "application/json")
	rc.SetHeader("X-API-Key", o.apiKey)

	o.logger = o.logger.With("component", "highlights_client")

	return &Client{http: rc, opts: o}
}

// Highlights ranks a single text against the query. Empty input, transport
// faults, non-200 responses, and malformed payloads all yield an empty slice.
func (c *Client) Highlights(ctx context.Context, text, query string, maxHighlights int) []schema.Highlight {
	if strings.TrimSpace(text) == "" {
		c.opts.logger.Warn("empty text provided to Highlights")
		return nil
	}
	if strings.TrimSpace(query) == "" {
		c.opts.logger.Warn("empty query provided to Highlights")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.textTimeout)
	defer cancel()

	results := c.search(ctx, searchRequest{
		Query:     query,
		ChunkTxts: []string{text},
		TopN:      maxHighlights,
		TrueOrder: true,
	})

	// The single-text call's results omit original_index.
	highlights := make([]schema.Highlight, 0, len(results))
	for _, res := range results {
		if res.ChunkTxt == nil || res.ChunkScore == nil {
			c.opts.logger.Warn("highlights result is missing required fields")
			return nil
		}
		highlights = append(highlights, schema.Highlight{
			Text:       *res.ChunkTxt,
			Relevance:  *res.ChunkScore,
			ChunkIndex: -1,
		})
	}
	return highlights
}

// HighlightsFromChunks ranks a chunk sequence against the query, requesting
// up to topN results in the service's true order.
func (c *Client) HighlightsFromChunks(ctx context.Context, chunks []string, query string, topN int) []schema.Highlight {
	if len(chunks) == 0 {
		c.opts.logger.Warn("empty chunks provided to HighlightsFromChunks")
		return nil
	}
	if strings.TrimSpace(query) == "" {
		c.opts.logger.Warn("empty query provided to HighlightsFromChunks")
		return nil
	}
	if topN <= 0 {
		topN = DefaultTopN
	}

	ctx, cancel := context.WithTimeout(ctx, c.opts.chunkTimeout)
	defer cancel()

	results := c.search(ctx, searchRequest{
		Query:     query,
		ChunkTxts: chunks,
		TopN:      topN,
		TrueOrder: true,
	})

	highlights := make([]schema.Highlight, 0, len(results))
	for _, res := range results {
		if res.ChunkTxt == nil || res.ChunkScore == nil || res.OriginalIndex == nil {
			c.opts.logger.Warn("highlights result is missing required fields")
			return nil
		}
		highlights = append(highlights, schema.Highlight{
			Text:       *res.ChunkTxt,
			Relevance:  *res.ChunkScore,
			ChunkIndex: *res.OriginalIndex,
		})
	}
	return highlights
}

// search performs one POST /search call and returns the raw results, or nil
// on any fault. The service orders results itself; callers do not re-sort.
func (c *Client) search(ctx context.Context, payload searchRequest) []searchResult {
	requestID := uuid.NewString()
	logger := c.opts.logger.With("request_id", requestID)

	logger.Debug("sending request to highlights service",
		"query", payload.Query, "chunks", len(payload.ChunkTxts), "top_n", payload.TopN)

	var result searchResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&result).
		Post("/search")
	if err != nil {
		logger.Error("highlights request failed", "error", err)
		return nil
	}
	if resp.StatusCode() != http.StatusOK {
		logger.Error("highlights service returned non-200 status",
			"status", resp.StatusCode(), "body", string(resp.Body()))
		return nil
	}

	if len(result.Results) == 0 {
		logger.Warn("no results returned from highlights service")
		return nil
	}

	logger.Debug("received highlights", "count", len(result.Results))
	return result.Results
}
