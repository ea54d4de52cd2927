package service

import (
	"context"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
)

// LibraryService manages the saved-prompt library. The in-memory list is
// the source of truth for the running session; persistence is mirrored
// best-effort on every mutation.
type LibraryService interface {
	// List returns saved prompts, newest first.
	List(ctx context.Context) []domain.SavedPrompt
	// Get returns the saved prompt with the given id.
	Get(ctx context.Context, id string) (*domain.SavedPrompt, error)
	// Save snapshots a generated prompt under a required title.
	Save(ctx context.Context, title, notes string, tab domain.TabType, prompt string) (*domain.SavedPrompt, error)
	// Delete removes a saved prompt by id.
	Delete(ctx context.Context, id string) error
}
