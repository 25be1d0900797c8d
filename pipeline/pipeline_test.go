package pipeline_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/highlighter/pipeline"
	"github.com/sevigo/highlighter/schema"
	fakeranker "github.com/sevigo/highlighter/schema/fake"
	fakestore "github.com/sevigo/highlighter/store/fake"
	"github.com/sevigo/highlighter/testutil"
)

func TestPipeline_FileHighlights(t *testing.T) {
	ctx := context.Background()

	t.Run("Success renders numbered list", func(t *testing.T) {
		st := fakestore.NewStore()
		st.AddFile("42", "report.txt", "Revenue grew. Costs fell. Margins improved across the board.")

		ranker := fakeranker.NewRanker()
		ranker.HighlightsToReturn = []schema.Highlight{
			{Text: "Revenue grew.", Relevance: 0.9, ChunkIndex: 0},
			{Text: "Margins improved across the board.", Relevance: 0.8, ChunkIndex: 1},
		}

		logger, _ := testutil.NewTestLogger(t)
		p := pipeline.New(st, ranker, pipeline.WithLogger(logger))

		out := p.FileHighlights(ctx, "42", "how did revenue do", 5)
		assert.Equal(t,
			"Highlights from report.txt (ID: 42) for query: how did revenue do\n\n"+
				"1. Revenue grew.\n"+
				"2. Margins improved across the board.\n",
			out)

		assert.Equal(t, "how did revenue do", ranker.LastQuery)
		assert.Equal(t, 10, ranker.LastTopN)
		require.NotEmpty(t, ranker.LastChunks)
		assert.Equal(t,
			"Revenue grew. Costs fell. Margins improved across the board.",
			strings.Join(ranker.LastChunks, ""))
	})

	t.Run("Truncates to max highlights", func(t *testing.T) {
		st := fakestore.NewStore()
		st.AddFile("1", "doc.txt", "some text")

		ranker := fakeranker.NewRanker()
		ranker.HighlightsToReturn = []schema.Highlight{
			{Text: "a"}, {Text: "b"}, {Text: "c"},
		}

		logger, _ := testutil.NewTestLogger(t)
		p := pipeline.New(st, ranker, pipeline.WithLogger(logger))

		out := p.FileHighlights(ctx, "1", "q", 2)
		assert.Contains(t, out, "1. a\n")
		assert.Contains(t, out, "2. b\n")
		assert.NotContains(t, out, "3. c")
	})

	t.Run("Zero max highlights reports none found", func(t *testing.T) {
		st := fakestore.NewStore()
		st.AddFile("1", "doc.txt", "some text")

		ranker := fakeranker.NewRanker()
		ranker.HighlightsToReturn = []schema.Highlight{{Text: "a"}}

		logger, _ := testutil.NewTestLogger(t)
		p := pipeline.New(st, ranker, pipeline.WithLogger(logger))

		out := p.FileHighlights(ctx, "1", "q", 0)
		assert.Equal(t, "No relevant highlights found in file doc.txt (ID: 1) for query: q", out)
	})

	t.Run("Empty ranker result reports none found", func(t *testing.T) {
		st := fakestore.NewStore()
		st.AddFile("1", "doc.txt", "some text")

		logger, _ := testutil.NewTestLogger(t)
		p := pipeline.New(st, fakeranker.NewRanker(), pipeline.WithLogger(logger))

		out := p.FileHighlights(ctx, "1", "anything", 5)
		assert.Equal(t, "No relevant highlights found in file doc.txt (ID: 1) for query: anything", out)
	})

	t.Run("Empty text reports extraction failure", func(t *testing.T) {
		st := fakestore.NewStore()
		st.AddFile("9", "empty.txt", "")

		logger, _ := testutil.NewTestLogger(t)
		p := pipeline.New(st, fakeranker.NewRanker(), pipeline.WithLogger(logger))

		out := p.FileHighlights(ctx, "9", "q", 5)
		assert.Equal(t, "Failed to extract text from file empty.txt (ID: 9).", out)
	})

	t.Run("Store fault becomes error string", func(t *testing.T) {
		st := fakestore.NewStore()
		st.ErrToReturn = errors.New("store unreachable")

		logger, _ := testutil.NewTestLogger(t)
		p := pipeline.New(st, fakeranker.NewRanker(), pipeline.WithLogger(logger))

		out := p.FileHighlights(ctx, "7", "q", 5)
		assert.Equal(t, "Error getting highlights from file (ID: 7): store unreachable", out)
	})

	t.Run("Custom chunker is used", func(t *testing.T) {
		st := fakestore.NewStore()
		st.AddFile("1", "doc.txt", "abc def")

		ranker := fakeranker.NewRanker()
		logger, _ := testutil.NewTestLogger(t)
		p := pipeline.New(st, ranker,
			pipeline.WithLogger(logger),
			pipeline.WithChunker(chunkerFunc(func(text string) []string {
				return []string{text}
			})),
			pipeline.WithTopN(3),
		)

		p.FileHighlights(ctx, "1", "q", 5)
		assert.Equal(t, []string{"abc def"}, ranker.LastChunks)
		assert.Equal(t, 3, ranker.LastTopN)
	})
}

func TestPipeline_SearchFiles(t *testing.T) {
	ctx := context.Background()
	logger, _ := testutil.NewTestLogger(t)

	t.Run("Renders lines with descriptions", func(t *testing.T) {
		st := fakestore.NewStore()
		st.SearchResults = []schema.FileInfo{
			{ID: "1", Name: "a.pdf", Description: "annual report"},
			{ID: "2", Name: "b.txt"},
		}
		p := pipeline.New(st, fakeranker.NewRanker(), pipeline.WithLogger(logger))

		out := p.SearchFiles(ctx, "report", nil, nil)
		assert.Equal(t, "a.pdf (id:1) annual report\nb.txt (id:2)", out)
	})

	t.Run("Error becomes string", func(t *testing.T) {
		st := fakestore.NewStore()
		st.ErrToReturn = errors.New("boom")
		p := pipeline.New(st, fakeranker.NewRanker(), pipeline.WithLogger(logger))

		assert.Equal(t, "Error searching files: boom", p.SearchFiles(ctx, "q", nil, nil))
	})
}

func TestPipeline_FileText(t *testing.T) {
	ctx := context.Background()
	logger, _ := testutil.NewTestLogger(t)

	st := fakestore.NewStore()
	st.AddFile("1", "a.txt", "the content")
	p := pipeline.New(st, fakeranker.NewRanker(), pipeline.WithLogger(logger))

	assert.Equal(t, "the content", p.FileText(ctx, "1"))
	assert.Contains(t, p.FileText(ctx, "missing"), "Error reading file (ID: missing)")
}

func TestPipeline_Folders(t *testing.T) {
	ctx := context.Background()
	logger, _ := testutil.NewTestLogger(t)

	t.Run("Locate", func(t *testing.T) {
		st := fakestore.NewStore()
		st.Folders = []schema.FileInfo{{ID: "f1", Name: "reports"}}
		p := pipeline.New(st, fakeranker.NewRanker(), pipeline.WithLogger(logger))

		assert.Equal(t, "reports (id:f1)", p.LocateFolder(ctx, "reports"))
	})

	t.Run("List as JSON", func(t *testing.T) {
		st := fakestore.NewStore()
		st.Entries = []schema.Entry{{ID: "1", Name: "a.txt", Type: "file"}}
		p := pipeline.New(st, fakeranker.NewRanker(), pipeline.WithLogger(logger))

		out := p.ListFolder(ctx, "f1", false)
		assert.JSONEq(t, `[{"id":"1","name":"a.txt","type":"file"}]`, out)
	})

	t.Run("List empty folder", func(t *testing.T) {
		st := fakestore.NewStore()
		p := pipeline.New(st, fakeranker.NewRanker(), pipeline.WithLogger(logger))

		assert.Equal(t, "[]", p.ListFolder(ctx, "f1", false))
	})
}

// chunkerFunc adapts a function to schema.Chunker.
type chunkerFunc func(string) []string

func (f chunkerFunc) Chunk(text string) []string { return f(text) }
