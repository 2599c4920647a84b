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
	rootCmd.AddCommand(aliasCmd)
}

var aliasCmd = &cobra.Command{
	Use:   "alias NAME ALIAS",
	Short: "Add an alias to a registered game",
	Long: `Add an alias to an existing game.

NAME must be the game's primary name, not another alias. The alias becomes
usable everywhere a game is looked up. Adding an alias the game already has
is a no-op; an alias used by another game is rejected.`,
	Example: `  quicksave alias Skyrim sky
  quicksave save sky`,
	Args: cobra.ExactArgs(2),
	RunE: runAlias,
}

func runAlias(cmd *cobra.Command, args []string) error {
	return runAliasWithWriter(cmd, os.Stdout, args[0], args[1])
}

func runAliasWithWriter(cmd *cobra.Command, w io.Writer, name, alias string) error {
	reg := newRegistry(cmd)

	if err := reg.AddAlias(name, alias); err != nil {
		switch {
		case errors.Is(err, registry.ErrNotFound):
			return errors.NewUserError(err, "The target must be a primary game name; run 'quicksave list'")
		case errors.Is(err, registry.ErrAliasInUse):
			return errors.NewUserError(err, "Pick a different alias")
		default:
			return errors.Wrap(err, "adding alias")
		}
	}

	fmt.Fprintf(w, "%s✓ %q now also answers to %q%s\n", colorGreen, name, alias, colorReset)
	return nil
}
