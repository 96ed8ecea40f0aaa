// Package jsonstore implements the durable store contract: a single JSON
// document per file, read fully at startup and fully rewritten on every
// save. Saves go through an atomic temp-file-then-rename replace so a crash
// never leaves a truncated document.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/taskkeeper/internal/filex"
)

// ErrMalformed marks an unreadable or syntactically invalid store document.
// Loading such a store is a fatal startup condition; callers must not
// continue with partial state.
var ErrMalformed = errors.New("malformed store")

type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads the document into dst. An absent file is not an error: dst is
// left untouched and the caller starts empty. Any read or decode failure is
// reported wrapped in ErrMalformed.
func (s *Store) Load(ctx context.Context, dst any) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: read %s: %w", ErrMalformed, s.path, err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("%w: decode %s: %w", ErrMalformed, s.path, err)
	}

	return nil
}

// Save serializes doc and atomically replaces the store file. The write is
// complete before Save returns; a failure means the previous document is
// still intact on disk.
func (s *Store) Save(ctx context.Context, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", s.path, err)
	}

	if err := filex.ReplaceFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}

	return nil
}
