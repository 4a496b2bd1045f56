package kbsource

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

// DataFileName is the file looked up inside a custom data directory.
const DataFileName = "qa-database.json"

// FileSource reads entries from a JSON file on disk.
type FileSource struct {
	label string
	path  string
}

// NewFileSource reads path directly.
func NewFileSource(label, path string) *FileSource {
	return &FileSource{label: label, path: path}
}

// NewDataDirSource reads qa-database.json from dir. An empty dir never matches.
func NewDataDirSource(dir string) *FileSource {
	if dir == "" {
		return &FileSource{label: "data_dir"}
	}
	return &FileSource{label: "data_dir", path: filepath.Join(dir, DataFileName)}
}

// Name implements faq.Source.
func (s *FileSource) Name() string {
	return s.label
}

// Load implements faq.Source.
func (s *FileSource) Load(_ context.Context) ([]faq.Entry, error) {
	if s.path == "" {
		return nil, ErrNotFound
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", s.path, ErrNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return decodeEntries(data)
}

var _ faq.Source = (*FileSource)(nil)
