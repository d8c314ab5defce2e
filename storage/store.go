// Package storage persists one JSON document per database name in a flat
// data directory. Every write is a whole-document overwrite; there is no
// partial I/O and no locking at this layer.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const fileExt = ".json"

// DiskStore reads and writes database documents under a single directory.
// The directory is created on first write if it does not exist.
type DiskStore struct {
	dir string
}

// NewDiskStore returns a store rooted at dir.
func NewDiskStore(dir string) *DiskStore {
	return &DiskStore{dir: dir}
}

// Path returns the backing file path for a database name.
func (s *DiskStore) Path(name string) string {
	return filepath.Join(s.dir, name+fileExt)
}

// Exists reports whether a document exists for the database name.
func (s *DiskStore) Exists(name string) bool {
	_, err := os.Stat(s.Path(name))
	return err == nil
}

// Read loads and decodes the document for the database name. It returns
// ErrNotFound when no file exists and a CorruptDocumentError when the
// stored bytes do not parse.
func (s *DiskStore) Read(name string) (*Document, error) {
	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("database %q: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("read database %q: %w", name, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &CorruptDocumentError{Name: name, Err: err}
	}
	if doc.Tables == nil {
		doc.Tables = make(map[string]map[string]string)
	}
	if doc.Rows == nil {
		doc.Rows = make(map[string][]map[string]any)
	}

	return &doc, nil
}

// Write serializes the full document and overwrites the backing file in
// one shot, creating the data directory if needed.
func (s *DiskStore) Write(name string, doc *Document) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data directory %q: %w", s.dir, err)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode database %q: %w", name, err)
	}

	if err := os.WriteFile(s.Path(name), data, 0o644); err != nil {
		return fmt.Errorf("write database %q: %w", name, err)
	}
	return nil
}
