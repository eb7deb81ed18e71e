package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/countdown/pkg/domain"
	"gopkg.in/yaml.v3"
)

// record is the on-disk document.
type record struct {
	Date int64 `json:"date" yaml:"date"`
}

// Store implements ports.DateStore using the local filesystem.
// The date is kept as epoch milliseconds in a JSON (default) or YAML file,
// chosen by extension.
type Store struct {
	Path string
}

// New creates a new Store at the given path.
// If path is empty, it defaults to ".countdown/date.json".
func New(path string) *Store {
	if path == "" {
		path = filepath.Join(".countdown", "date.json")
	}
	return &Store{Path: path}
}

func (s *Store) isYAML() bool {
	ext := strings.ToLower(filepath.Ext(s.Path))
	return ext == ".yaml" || ext == ".yml"
}

// Get reads the persisted date.
func (s *Store) Get(ctx context.Context) (time.Time, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return time.Time{}, domain.ErrDateNotFound
		}
		return time.Time{}, fmt.Errorf("failed to read date file: %w", err)
	}

	var rec record
	if s.isYAML() {
		err = yaml.Unmarshal(data, &rec)
	} else {
		err = json.Unmarshal(data, &rec)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date file: %w", err)
	}

	return time.UnixMilli(rec.Date), nil
}

// Set persists the date atomically.
// It writes to a temporary file first, syncs via fsync, and then renames it to the destination.
func (s *Store) Set(ctx context.Context, date time.Time) error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to ensure date directory: %w", err)
	}

	rec := record{Date: date.UnixMilli()}
	var (
		data []byte
		err  error
	)
	if s.isYAML() {
		data, err = yaml.Marshal(rec)
	} else {
		data, err = json.MarshalIndent(rec, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("failed to marshal date: %w", err)
	}

	// Same directory, so the rename stays on one filesystem.
	tmpFile, err := os.CreateTemp(dir, "tmp-date-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath) // no-op once renamed
	}()

	if _, err := tmpFile.Write(data); err != nil {
		return fmt.Errorf("failed to write to temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to fsync temp file: %w", err)
	}
	// Cannot rename an open file on Windows.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// Remove deletes the date file.
func (s *Store) Remove(ctx context.Context) error {
	err := os.Remove(s.Path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete date file: %w", err)
	}
	return nil
}
