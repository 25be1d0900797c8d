package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/highlighter/schema"
	"github.com/sevigo/highlighter/store"
	"github.com/sevigo/highlighter/testutil"
)

func newTestStore(t *testing.T) *store.FSStore {
	t.Helper()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "reports", "archive"), 0o755))
	write := func(rel, content string) {
		require.NoError(t, os.WriteFile(filepath.Join(root, rel), []byte(content), 0o644))
	}
	write("notes.txt", "plain\ttext  with\n\nwhitespace")
	write("reports/summary.md", "# Summary\n\nThe quarterly numbers improved.")
	write("reports/archive/old.txt", "archived content")

	logger, _ := testutil.NewTestLogger(t)
	s, err := store.NewFS(root, store.WithLogger(logger))
	require.NoError(t, err)
	return s
}

func TestNewFS(t *testing.T) {
	t.Run("Missing root", func(t *testing.T) {
		_, err := store.NewFS(filepath.Join(t.TempDir(), "missing"))
		assert.Error(t, err)
	})

	t.Run("Root is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "f.txt")
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		_, err := store.NewFS(path)
		assert.Error(t, err)
	})
}

func TestFSStore_FileInfo(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	info, err := s.FileInfo(ctx, "reports/summary.md")
	require.NoError(t, err)
	assert.Equal(t, "summary.md", info.Name)
	assert.Equal(t, "reports/summary.md", info.ID)
	assert.Equal(t, "Summary", info.Description)

	info, err = s.FileInfo(ctx, "reports/archive/old.txt")
	require.NoError(t, err)
	assert.Equal(t, "Old", info.Description)

	_, err = s.FileInfo(ctx, "missing.txt")
	assert.ErrorIs(t, err, schema.ErrNotFound)

	_, err = s.FileInfo(ctx, "../escape.txt")
	assert.ErrorIs(t, err, schema.ErrNotFound)
}

func TestFSStore_FileText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("Plain text is normalized", func(t *testing.T) {
		text, err := s.FileText(ctx, "notes.txt")
		require.NoError(t, err)
		assert.Equal(t, "plain text with whitespace", text)
	})

	t.Run("Markdown is stripped", func(t *testing.T) {
		text, err := s.FileText(ctx, "reports/summary.md")
		require.NoError(t, err)
		assert.Equal(t, "Summary\n\nThe quarterly numbers improved.", text)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := s.FileText(ctx, "reports/none.md")
		assert.ErrorIs(t, err, schema.ErrNotFound)
	})
}

func TestFSStore_Search(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("By name", func(t *testing.T) {
		results, err := s.Search(ctx, "summary", nil, nil)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "reports/summary.md", results[0].ID)
	})

	t.Run("Extension filter", func(t *testing.T) {
		results, err := s.Search(ctx, "", []string{"*.txt"}, nil)
		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("Ancestor folder", func(t *testing.T) {
		results, err := s.Search(ctx, "old", nil, []string{"reports"})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "reports/archive/old.txt", results[0].ID)
	})

	t.Run("No match", func(t *testing.T) {
		results, err := s.Search(ctx, "nonexistent", nil, nil)
		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestFSStore_ListFolder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	t.Run("Flat", func(t *testing.T) {
		entries, err := s.ListFolder(ctx, "reports", false)
		require.NoError(t, err)
		require.Len(t, entries, 2)

		types := map[string]string{}
		for _, e := range entries {
			types[e.Name] = e.Type
		}
		assert.Equal(t, "folder", types["archive"])
		assert.Equal(t, "file", types["summary.md"])
	})

	t.Run("Recursive", func(t *testing.T) {
		entries, err := s.ListFolder(ctx, "reports", true)
		require.NoError(t, err)
		assert.Len(t, entries, 3)
	})

	t.Run("Root by empty ID", func(t *testing.T) {
		entries, err := s.ListFolder(ctx, "", false)
		require.NoError(t, err)
		assert.NotEmpty(t, entries)
	})
}

func TestFSStore_LocateFolder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	results, err := s.LocateFolder(ctx, "Archive")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "reports/archive", results[0].ID)

	results, err = s.LocateFolder(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, results)
}
