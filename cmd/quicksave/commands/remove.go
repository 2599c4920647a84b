package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quicksave/quicksave/internal/errors"
	"github.com/quicksave/quicksave/internal/registry"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove GAME",
	Short: "Remove a game from the registry",
	Long: `Remove a game from the registry by name or alias.

Only the registry entry is deleted. Existing snapshot archives in the
backup directory are left untouched.`,
	Example: `  quicksave remove Skyrim
  quicksave remove sky`,
	Args: cobra.ExactArgs(1),
	RunE: runRemove,
}

func runRemove(cmd *cobra.Command, args []string) error {
	return runRemoveWithWriter(cmd, os.Stdout, args[0])
}

func runRemoveWithWriter(cmd *cobra.Command, w io.Writer, nameOrAlias string) error {
	reg := newRegistry(cmd)

	// Resolve first so the message can name the primary entry even when
	// the caller passed an alias.
	entry, err := reg.Resolve(nameOrAlias)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			return notFoundError(err)
		}
		return errors.Wrap(err, "resolving game")
	}

	if err := reg.Remove(entry.Name); err != nil {
		return errors.Wrapf(err, "removing %q", entry.Name)
	}

	fmt.Fprintf(w, "%s✓ Removed %q%s\n", colorGreen, entry.Name, colorReset)
	return nil
}
