package cli

import (
	"github.com/spf13/cobra"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/clipboard"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/service"
)

// App holds references to everything CLI commands and TUI views need.
type App struct {
	Library   service.LibraryService
	Clipboard clipboard.Writer

	// InitialState seeds a fresh session (defaults plus config overlay).
	InitialState *domain.FormState

	// IsInteractive reports whether stdin is a terminal, gating the
	// TUI-by-default entrypoint.
	IsInteractive func() bool
}

func (a *App) initialState() *domain.FormState {
	if a.InitialState != nil {
		s := *a.InitialState
		return &s
	}
	return domain.DefaultFormState()
}

// NewRootCmd creates the top-level "palette" command and registers all
// subcommands against the provided App. Running it with no subcommand
// on a terminal starts the TUI.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "palette",
		Short: "Build structured AI prompts for coursework tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return RunTUI(app)
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newGenerateCmd(app),
		newLibraryCmd(app),
	)

	return root
}
