package commands

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/quicksave/quicksave/internal/errors"
	"github.com/quicksave/quicksave/internal/registry"
	"github.com/quicksave/quicksave/internal/snapshot"
)

var saveTag string

func init() {
	saveCmd.Flags().StringVarP(&saveTag, "tag", "t", "", "optional tag appended to the snapshot name")
	rootCmd.AddCommand(saveCmd)
}

var saveCmd = &cobra.Command{
	Use:   "save [GAME]",
	Short: "Save a snapshot of a registered game",
	Long: `Snapshot a game's save directory into its backup destination.

GAME is a registered name or alias. When GAME is omitted and the session is
interactive, a fuzzy finder picks from the registry. The snapshot is named
from the current local time, plus the tag if one is given:

  <save-dir>_<YYYY-MM-DD_HH-MM-SS>[_<tag>].zip`,
	Example: `  # Snapshot by alias
  quicksave save sky

  # Tag the snapshot
  quicksave save Skyrim -t boss-fight

  # Pick the game interactively
  quicksave save`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSave,
}

func runSave(cmd *cobra.Command, args []string) error {
	return runSaveWithWriter(cmd, os.Stdout, args, time.Now())
}

func runSaveWithWriter(cmd *cobra.Command, w io.Writer, args []string, now time.Time) error {
	reg := newRegistry(cmd)

	var entry *registry.GameEntry
	var err error
	if len(args) == 1 {
		entry, err = reg.Resolve(args[0])
		if err != nil {
			if errors.Is(err, registry.ErrNotFound) {
				return notFoundError(err)
			}
			return errors.Wrap(err, "resolving game")
		}
	} else {
		entry, err = pickGame(reg)
		if err != nil {
			return err
		}
	}

	mgr := newSnapshotManager(cmd)
	if err := mgr.VerifyDirectories(entry.SaveDir, entry.BackupDir); err != nil {
		if errors.Is(err, snapshot.ErrSaveDirMissing) {
			return errors.NewUserError(err, "The game's save directory has moved or been deleted")
		}
		return errors.NewSystemError(err, "Check the backup destination and permissions")
	}

	name := snapshot.SnapshotName(now, saveTag)
	archivePath, err := mgr.CreateBackup(entry.SaveDir, entry.BackupDir, name)
	if err != nil {
		return errors.NewSystemError(errors.Wrapf(err, "saving snapshot of %q", entry.Name), "")
	}

	fmt.Fprintf(w, "%s✓ Saved snapshot of %q%s\n", colorGreen, entry.Name, colorReset)
	fmt.Fprintf(w, "  %s\n", archivePath)
	return nil
}
