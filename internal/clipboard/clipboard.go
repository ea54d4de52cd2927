// Package clipboard wraps the system clipboard behind a small interface
// so callers and tests do not depend on a real clipboard being present.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer places text on a clipboard.
type Writer interface {
	Write(text string) error
}

// System writes to the OS clipboard.
type System struct{}

func (System) Write(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Noop discards writes. Used when no clipboard is available.
type Noop struct{}

func (Noop) Write(string) error { return nil }
