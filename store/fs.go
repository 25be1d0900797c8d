// Package store provides document-store collaborators for the highlight
// pipeline. FSStore serves documents from a local directory tree; remote
// stores plug in behind schema.DocumentStore.
package store

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sevigo/highlighter/extract"
	"github.com/sevigo/highlighter/schema"
)

// FSStore is a schema.DocumentStore rooted at a directory. Document IDs are
// slash-separated paths relative to the root.
type FSStore struct {
	root   string
	pdf    *extract.PDF
	md     *extract.Markdown
	logger *slog.Logger
}

var _ schema.DocumentStore = (*FSStore)(nil)

// Option configures an FSStore.
type Option func(*FSStore)

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *FSStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewFS creates a store rooted at the given directory.
func NewFS(root string, opts ...Option) (*FSStore, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("store root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("store root %s is not a directory", root)
	}

	s := &FSStore{
		root:   root,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "fs_store")
	s.pdf = extract.NewPDF(s.logger)
	s.md = extract.NewMarkdown(s.logger)
	return s, nil
}

// resolve maps a document ID onto a path under the root. IDs escaping the
// root are rejected as not found.
func (s *FSStore) resolve(id string) (string, error) {
	if id == "" {
		return "", schema.ErrNotFound
	}
	rel := filepath.Clean(filepath.FromSlash(id))
	if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", schema.ErrNotFound
	}
	return filepath.Join(s.root, rel), nil
}

func (s *FSStore) FileInfo(ctx context.Context, fileID string) (schema.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return schema.FileInfo{}, err
	}

	path, err := s.resolve(fileID)
	if err != nil {
		return schema.FileInfo{}, err
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return schema.FileInfo{}, fmt.Errorf("file %s: %w", fileID, schema.ErrNotFound)
	}
	return schema.FileInfo{ID: fileID, Name: info.Name(), Description: s.displayTitle(path)}, nil
}

// displayTitle derives a human-readable title for a document. Markdown
// documents prefer their first level-1 heading.
func (s *FSStore) displayTitle(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		if data, err := os.ReadFile(path); err == nil {
			return s.md.Title(string(data), path)
		}
	}
	return extract.TitleFromFilename(path)
}

// FileText extracts plain text from a document, selecting the extraction
// path by file extension.
func (s *FSStore) FileText(ctx context.Context, fileID string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.resolve(fileID)
	if err != nil {
		return "", err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return s.pdf.File(path)
	case ".md", ".markdown":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("file %s: %w", fileID, schema.ErrNotFound)
		}
		return s.md.Text(string(data)), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("file %s: %w", fileID, schema.ErrNotFound)
		}
		return extract.Normalize(string(data)), nil
	}
}

func (s *FSStore) FileContent(ctx context.Context, fileID string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.resolve(fileID)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("file %s: %w", fileID, schema.ErrNotFound)
	}
	return data, nil
}

// Search matches file names containing the query, case-insensitively,
// optionally restricted to extensions and ancestor folders.
func (s *FSStore) Search(ctx context.Context, query string, extensions, ancestorFolderIDs []string) ([]schema.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	exts := normalizeExtensions(extensions)

	roots := []string{""}
	if len(ancestorFolderIDs) > 0 {
		roots = ancestorFolderIDs
	}

	var results []schema.FileInfo
	for _, folder := range roots {
		base, err := s.resolve(firstNonEmpty(folder, "."))
		if err != nil {
			continue
		}
		err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return err
			}
			name := d.Name()
			if needle != "" && !strings.Contains(strings.ToLower(name), needle) {
				return nil
			}
			if len(exts) > 0 && !matchesExtension(name, exts) {
				return nil
			}
			rel, err := filepath.Rel(s.root, path)
			if err != nil {
				return err
			}
			results = append(results, schema.FileInfo{ID: filepath.ToSlash(rel), Name: name})
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("search walk failed: %w", err)
		}
	}

	s.logger.Debug("search finished", "query", query, "results", len(results))
	return results, nil
}

func (s *FSStore) ListFolder(ctx context.Context, folderID string, recursive bool) ([]schema.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	base, err := s.resolve(firstNonEmpty(folderID, "."))
	if err != nil {
		return nil, err
	}

	var entries []schema.Entry
	if recursive {
		err = filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
			if err != nil || path == base {
				return err
			}
			entries = append(entries, s.entryFor(path, d.IsDir()))
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("folder %s: %w", folderID, err)
		}
		return entries, nil
	}

	dirEntries, err := os.ReadDir(base)
	if err != nil {
		return nil, fmt.Errorf("folder %s: %w", folderID, schema.ErrNotFound)
	}
	for _, d := range dirEntries {
		entries = append(entries, s.entryFor(filepath.Join(base, d.Name()), d.IsDir()))
	}
	return entries, nil
}

func (s *FSStore) LocateFolder(ctx context.Context, name string) ([]schema.FileInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var results []schema.FileInfo
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || !d.IsDir() || path == s.root {
			return err
		}
		if !strings.EqualFold(d.Name(), name) {
			return nil
		}
		rel, err := filepath.Rel(s.root, path)
		if err != nil {
			return err
		}
		results = append(results, schema.FileInfo{ID: filepath.ToSlash(rel), Name: d.Name()})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("locate folder %s: %w", name, err)
	}
	return results, nil
}

func (s *FSStore) entryFor(path string, isDir bool) schema.Entry {
	rel, err := filepath.Rel(s.root, path)
	if err != nil {
		rel = path
	}
	entryType := "file"
	if isDir {
		entryType = "folder"
	}
	return schema.Entry{
		ID:   filepath.ToSlash(rel),
		Name: filepath.Base(path),
		Type: entryType,
	}
}

// normalizeExtensions accepts both "*.pdf" and ".pdf" spellings.
func normalizeExtensions(extensions []string) []string {
	var exts []string
	for _, e := range extensions {
		e = strings.ToLower(strings.TrimPrefix(e, "*"))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		exts = append(exts, e)
	}
	return exts
}

func matchesExtension(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		if ext == e {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
