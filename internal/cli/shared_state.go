package cli

import "github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Form is the live session state every form writes into and the
	// generator reads from.
	Form *domain.FormState

	// LastPrompt is the most recently generated or loaded prompt text.
	LastPrompt string
	// LastPromptTab records which category produced LastPrompt.
	LastPromptTab domain.TabType

	// Terminal dimensions
	Width  int
	Height int
}

// ContentHeight returns the available height for view content,
// accounting for the header (2 lines: tab bar + separator) and the
// status bar (2 lines: separator + hints).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
