package main

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/cli"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/clipboard"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/config"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/db"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/domain"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/repository"
	"github.com/classprojectsecond-jpg/campus-prompt-palette/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dbPath, err := db.DefaultPath()
	if err != nil {
		return fmt.Errorf("resolving database path: %w", err)
	}

	database, err := db.Open(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("PALETTE_DEBUG") != "" {
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}

	libraryRepo := repository.NewSQLiteLibraryRepo(database)
	librarySvc := service.NewLibraryService(libraryRepo, observer)

	// Session defaults: baked-in values overlaid with the config file.
	state := domain.DefaultFormState()
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: ignoring config: %v\n", err)
	}
	config.Apply(cfg, state)

	app := &cli.App{
		Library:      librarySvc,
		Clipboard:    clipboard.System{},
		InitialState: state,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
