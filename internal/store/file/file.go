package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mcsclean/bookingd/internal/domain"
)

// document is the on-disk shape of the booking collection.
type document struct {
	Bookings []domain.Booking `json:"bookings"`
}

// Store persists bookings as a single pretty-printed JSON file.
type Store struct {
	path string
}

// New creates a file store, ensuring the data directory and an empty
// document exist so the first Load never fails on a fresh deployment.
func New(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		s := &Store{path: path}
		if err := s.write(document{Bookings: []domain.Booking{}}); err != nil {
			return nil, fmt.Errorf("failed to initialize data file: %w", err)
		}
		return s, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat data file: %w", err)
	}

	return &Store{path: path}, nil
}

// Load reads the entire booking collection.
func (s *Store) Load(_ context.Context) ([]domain.Booking, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}

	return doc.Bookings, nil
}

// Save replaces the entire booking collection.
func (s *Store) Save(_ context.Context, bookings []domain.Booking) error {
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return s.write(document{Bookings: bookings})
}

// write performs an atomic replace: marshal to a temp file in the same
// directory, then rename over the target. A crashed save never leaves a
// half-written document behind.
func (s *Store) write(doc document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "bookings-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to replace data file: %w", err)
	}
	return nil
}
