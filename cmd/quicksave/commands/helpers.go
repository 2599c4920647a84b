package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/quicksave/quicksave/internal/errors"
	"github.com/quicksave/quicksave/internal/logging"
	"github.com/quicksave/quicksave/internal/registry"
	"github.com/quicksave/quicksave/internal/snapshot"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// commandLogger returns the logger carried by the command's context,
// falling back to the default logger when none was attached.
func commandLogger(cmd *cobra.Command) *slog.Logger {
	ctx := cmd.Context()
	if ctx == nil {
		return slog.Default()
	}
	return logging.FromContext(ctx)
}

// newRegistry builds the registry at the default per-user location,
// logging through the command's context logger.
func newRegistry(cmd *cobra.Command) *registry.Registry {
	return registry.New("", registry.WithLogger(commandLogger(cmd)))
}

// newSnapshotManager builds a snapshot manager wired to the command's
// context logger.
func newSnapshotManager(cmd *cobra.Command) *snapshot.Manager {
	return snapshot.NewManager(snapshot.WithLogger(commandLogger(cmd)))
}

// notFoundError maps a registry miss to a user-facing exit error.
func notFoundError(err error) error {
	return errors.NewUserError(err, "Run 'quicksave list' to see registered games")
}

// pickGame resolves a game interactively with a fuzzy finder over the
// registry. It requires a TTY; scripted callers must pass the game name.
func pickGame(reg *registry.Registry) (*registry.GameEntry, error) {
	if !logging.IsTTY(os.Stdout) {
		return nil, errors.NewUserError(
			errors.New("game name required"),
			"Pass a game name or alias, or run interactively")
	}

	games, err := reg.All()
	if err != nil {
		return nil, errors.Wrap(err, "loading registry")
	}
	if len(games) == 0 {
		return nil, errors.NewUserError(
			errors.New("no games registered"),
			"Register one with: quicksave register -n NAME -s SAVE_DIR -b BACKUP_DIR")
	}

	entries := make([]registry.GameEntry, 0, len(games))
	for _, entry := range games {
		entries = append(entries, entry)
	}

	idx, err := fuzzyfinder.Find(
		entries,
		func(i int) string {
			return entries[i].Name
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			return fmt.Sprintf("Name: %s\nSave dir: %s\nBackup dir: %s\nAliases: %v",
				e.Name, e.SaveDir, e.BackupDir, e.Aliases)
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, errors.NewUserError(errors.New("no game selected"), "")
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}

	return &entries[idx], nil
}
