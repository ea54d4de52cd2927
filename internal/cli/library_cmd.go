package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/cli/formatter"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/repository"
)

func newLibraryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Manage saved prompts",
	}

	cmd.AddCommand(
		newLibraryListCmd(app),
		newLibraryShowCmd(app),
		newLibraryDeleteCmd(app),
	)

	return cmd
}

// resolveSavedPromptID matches an exact ID first, then a unique ID prefix.
func resolveSavedPromptID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("saved prompt ID is required")
	}

	prompts := app.Library.List(ctx)

	for _, p := range prompts {
		if p.ID == input {
			return p.ID, nil
		}
	}

	var matches []string
	for _, p := range prompts {
		if strings.HasPrefix(p.ID, input) {
			matches = append(matches, p.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("saved prompt not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("saved prompt ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

func newLibraryListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved prompts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			prompts := app.Library.List(context.Background())
			if len(prompts) == 0 {
				fmt.Println("No saved prompts.")
				return nil
			}
			fmt.Printf("%s\n", formatSavedPromptList(prompts))
			return nil
		},
	}
}

func newLibraryShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Print a saved prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSavedPromptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			p, err := app.Library.Get(ctx, id)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatSavedPromptDetail(p))
			return nil
		},
	}
}

func newLibraryDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a saved prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveSavedPromptID(ctx, app, args[0])
			if err != nil {
				return err
			}
			if err := app.Library.Delete(ctx, id); err != nil {
				if errors.Is(err, repository.ErrNotFound) {
					return fmt.Errorf("saved prompt not found: %s", id)
				}
				return err
			}
			fmt.Printf("Deleted saved prompt %s\n", id)
			return nil
		},
	}
}

func formatSavedPromptList(prompts []domain.SavedPrompt) string {
	var b strings.Builder
	b.WriteString(formatter.Header("Saved Prompts"))
	b.WriteString("\n")

	for _, p := range prompts {
		shortID := p.ID
		if len(shortID) > 8 {
			shortID = shortID[:8]
		}
		line := fmt.Sprintf("  %s  %s  %s  %s",
			formatter.StyleYellow.Render(shortID),
			formatter.StyleBlue.Render(formatter.TabLabel(p.TabType)),
			formatter.Bold(formatter.Truncate(p.Title, 36)),
			formatter.Dim(formatter.HumanTimestamp(p.CreatedTime())),
		)
		b.WriteString(line)
		b.WriteString("\n")
		if p.Notes != "" {
			b.WriteString("            " + formatter.Dim(formatter.Truncate(p.Notes, 60)) + "\n")
		}
	}

	return b.String()
}

func formatSavedPromptDetail(p *domain.SavedPrompt) string {
	var b strings.Builder
	b.WriteString(formatter.Header(p.Title))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Category:"), formatter.TabLabel(p.TabType)))
	b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Saved:"), p.CreatedAt))
	if p.Notes != "" {
		b.WriteString(fmt.Sprintf("  %s %s\n", formatter.Dim("Notes:"), p.Notes))
	}
	b.WriteString("\n")
	b.WriteString(p.Prompt)
	return b.String()
}
