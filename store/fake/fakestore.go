// Package fake provides a scripted schema.DocumentStore for tests.
package fake

import (
	"context"
	"fmt"

	"github.com/sevigo/highlighter/schema"
)

// Store returns canned data and can be forced to fail. The zero value is
// usable; NewStore initializes the maps for convenience.
type Store struct {
	Infos   map[string]schema.FileInfo
	Texts   map[string]string
	Content map[string][]byte

	SearchResults []schema.FileInfo
	Folders       []schema.FileInfo
	Entries       []schema.Entry

	// ErrToReturn, when set, is returned by every call.
	ErrToReturn error
}

var _ schema.DocumentStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		Infos:   make(map[string]schema.FileInfo),
		Texts:   make(map[string]string),
		Content: make(map[string][]byte),
	}
}

// AddFile registers a file with its extracted text.
func (s *Store) AddFile(id, name, text string) {
	s.Infos[id] = schema.FileInfo{ID: id, Name: name}
	s.Texts[id] = text
}

func (s *Store) FileInfo(_ context.Context, fileID string) (schema.FileInfo, error) {
	if s.ErrToReturn != nil {
		return schema.FileInfo{}, s.ErrToReturn
	}
	info, ok := s.Infos[fileID]
	if !ok {
		return schema.FileInfo{}, fmt.Errorf("file %s: %w", fileID, schema.ErrNotFound)
	}
	return info, nil
}

func (s *Store) FileText(_ context.Context, fileID string) (string, error) {
	if s.ErrToReturn != nil {
		return "", s.ErrToReturn
	}
	text, ok := s.Texts[fileID]
	if !ok {
		return "", fmt.Errorf("file %s: %w", fileID, schema.ErrNotFound)
	}
	return text, nil
}

func (s *Store) FileContent(_ context.Context, fileID string) ([]byte, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}
	content, ok := s.Content[fileID]
	if !ok {
		return nil, fmt.Errorf("file %s: %w", fileID, schema.ErrNotFound)
	}
	return content, nil
}

func (s *Store) Search(_ context.Context, _ string, _, _ []string) ([]schema.FileInfo, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}
	return s.SearchResults, nil
}

func (s *Store) ListFolder(_ context.Context, _ string, _ bool) ([]schema.Entry, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}
	return s.Entries, nil
}

func (s *Store) LocateFolder(_ context.Context, _ string) ([]schema.FileInfo, error) {
	if s.ErrToReturn != nil {
		return nil, s.ErrToReturn
	}
	return s.Folders, nil
}
