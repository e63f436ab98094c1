package benchmark

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	benchErrors "polybench/internal/errors"
)

// FileStore is a Sink keeping the run history in one JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path is the history file location.
func (s *FileStore) Path() string {
	return s.path
}

// Save appends run to the history file.
func (s *FileStore) Save(run Run) (string, error) {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", benchErrors.NewSinkError(dir, fmt.Errorf("failed to create directory: %w", err))
	}

	runs, err := s.LoadAll()
	if err != nil {
		return "", benchErrors.NewSinkError(s.path, err)
	}

	runs = append(runs, run)

	data, err := json.MarshalIndent(runs, "", "  ")
	if err != nil {
		return "", benchErrors.NewSinkError(s.path, fmt.Errorf("failed to marshal runs: %w", err))
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return "", benchErrors.NewSinkError(s.path, err)
	}
	return s.path, nil
}

// LoadAll returns every saved run, oldest first. A missing file is an
// empty history.
func (s *FileStore) LoadAll() ([]Run, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []Run{}, nil
		}
		return nil, err
	}

	var runs []Run
	if len(data) == 0 {
		return []Run{}, nil
	}

	if err := json.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal runs: %w", err)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})

	return runs, nil
}
