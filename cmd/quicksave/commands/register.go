package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quicksave/quicksave/internal/errors"
	"github.com/quicksave/quicksave/internal/registry"
	"github.com/quicksave/quicksave/internal/snapshot"
)

// Package-level flag variables for the register command.
var (
	registerName      string
	registerSaveDir   string
	registerBackupDir string
	registerAliases   []string
)

func init() {
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "name of the game")
	registerCmd.Flags().StringVarP(&registerSaveDir, "save-dir", "s", "", "path to the save directory")
	registerCmd.Flags().StringVarP(&registerBackupDir, "backup-dir", "b", "", "path to the backup directory (or s3://bucket/prefix)")
	registerCmd.Flags().StringArrayVarP(&registerAliases, "alias", "a", nil, "alias for the game (repeatable)")
	_ = registerCmd.MarkFlagRequired("name")
	_ = registerCmd.MarkFlagRequired("save-dir")
	_ = registerCmd.MarkFlagRequired("backup-dir")
	rootCmd.AddCommand(registerCmd)
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Register a game save directory",
	Long: `Register a game: a save directory paired with a backup destination.

The save directory must already exist. A local backup directory is created
if absent. Registering a name that already exists overwrites the previous
entry. Aliases can be used interchangeably with the name everywhere a game
is looked up and must be unique across the whole registry.`,
	Example: `  # Register with an alias
  quicksave register -n Skyrim -s ~/saves/skyrim -b ~/backups -a sky

  # Several aliases
  quicksave register -n "Fallout 4" -s ~/saves/fo4 -b ~/backups -a fo4 -a fallout`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func runRegister(cmd *cobra.Command, _ []string) error {
	return registerGame(cmd, os.Stdout, registry.GameEntry{
		Name:      registerName,
		SaveDir:   registerSaveDir,
		BackupDir: registerBackupDir,
		Aliases:   registerAliases,
	})
}

// registerGame verifies directories before touching the registry, so a
// failed verification leaves the document unchanged.
func registerGame(cmd *cobra.Command, w io.Writer, entry registry.GameEntry) error {
	mgr := newSnapshotManager(cmd)
	if err := mgr.VerifyDirectories(entry.SaveDir, entry.BackupDir); err != nil {
		if errors.Is(err, snapshot.ErrSaveDirMissing) {
			return errors.NewUserError(err, "Check the --save-dir path")
		}
		return errors.NewSystemError(err, "Check the --backup-dir path and permissions")
	}

	reg := newRegistry(cmd)

	games, err := reg.All()
	if err != nil {
		return errors.Wrap(err, "loading registry")
	}
	_, overwrote := games[entry.Name]

	if err := reg.Add(entry); err != nil {
		if errors.Is(err, registry.ErrAliasInUse) {
			return errors.NewUserError(err, "Pick a different alias or remove the other game first")
		}
		return errors.Wrap(err, "registering game")
	}

	if overwrote {
		fmt.Fprintf(w, "%s✓ Replaced %q%s\n", colorYellow, entry.Name, colorReset)
	} else {
		fmt.Fprintf(w, "%s✓ Registered %q%s\n", colorGreen, entry.Name, colorReset)
	}
	fmt.Fprintf(w, "  Save dir:   %s\n", entry.SaveDir)
	fmt.Fprintf(w, "  Backup dir: %s\n", entry.BackupDir)
	if len(entry.Aliases) > 0 {
		fmt.Fprintf(w, "  Aliases:    %s\n", strings.Join(entry.Aliases, ", "))
	}

	return nil
}
