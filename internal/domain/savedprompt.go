package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SavedPrompt is a persisted snapshot of one generated prompt.
// Immutable once created; the only lifecycle operation is deletion.
type SavedPrompt struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	TabType   TabType `json:"tabType"`
	Prompt    string  `json:"prompt"`
	Notes     string  `json:"notes"`
	CreatedAt string  `json:"createdAt"`
}

// NewSavedPrompt stamps a fresh id and creation time.
func NewSavedPrompt(title, notes string, tab TabType, prompt string, now time.Time) SavedPrompt {
	return SavedPrompt{
		ID:        uuid.New().String(),
		Title:     title,
		TabType:   tab,
		Prompt:    prompt,
		Notes:     notes,
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

// Validate checks the save-dialog boundary rules.
func (p *SavedPrompt) Validate() error {
	if strings.TrimSpace(p.Title) == "" {
		return fmt.Errorf("saved prompt: title is required")
	}
	if p.Prompt == "" {
		return fmt.Errorf("saved prompt: prompt text is empty")
	}
	return nil
}

// CreatedTime parses the RFC3339 creation timestamp, zero time on failure.
func (p *SavedPrompt) CreatedTime() time.Time {
	t, err := time.Parse(time.RFC3339, p.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}
