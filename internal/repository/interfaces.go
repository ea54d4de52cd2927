package repository

import (
	"context"
	"errors"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrCorruptSlot is returned when the persisted library slot holds
// unparseable JSON. Callers are expected to log it and fall back to an
// empty list rather than fail.
var ErrCorruptSlot = errors.New("corrupt library slot")

// LibraryRepo stores the saved-prompt list as a single slot: the whole
// list is read at startup and rewritten wholesale on every mutation.
type LibraryRepo interface {
	// Load reads the full saved-prompt list. An absent slot yields an
	// empty list and no error.
	Load(ctx context.Context) ([]domain.SavedPrompt, error)
	// Store rewrites the full saved-prompt list.
	Store(ctx context.Context, prompts []domain.SavedPrompt) error
}
