package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"

	"github.com/quicksave/quicksave/internal/errors"
	"github.com/quicksave/quicksave/internal/registry"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered games",
	Long:  `List every game in the registry with its save directory, backup destination, and aliases.`,
	Example: `  # List registered games
  quicksave list

  # Output as JSON
  quicksave list --json`,
	Args: cobra.NoArgs,
	RunE: runList,
}

// gameJSON represents a registered game in JSON output format.
type gameJSON struct {
	Name      string   `json:"name"`
	SaveDir   string   `json:"save_dir"`
	BackupDir string   `json:"backup_dir"`
	Aliases   []string `json:"aliases,omitempty"`
}

func runList(cmd *cobra.Command, _ []string) error {
	return runListWithWriter(cmd, os.Stdout)
}

func runListWithWriter(cmd *cobra.Command, w io.Writer) error {
	games, err := newRegistry(cmd).All()
	if err != nil {
		return errors.Wrap(err, "loading registry")
	}

	if listJSON {
		return outputListJSON(w, games)
	}
	return outputListTabular(w, games)
}

func outputListJSON(w io.Writer, games map[string]registry.GameEntry) error {
	output := make([]gameJSON, 0, len(games))
	names := maps.Keys(games)
	slices.Sort(names)
	for _, name := range names {
		entry := games[name]
		output = append(output, gameJSON{
			Name:      name,
			SaveDir:   entry.SaveDir,
			BackupDir: entry.BackupDir,
			Aliases:   entry.Aliases,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(output), "encoding output")
}

func outputListTabular(w io.Writer, games map[string]registry.GameEntry) error {
	if len(games) == 0 {
		fmt.Fprintln(w, "No games registered.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Register one with:")
		fmt.Fprintln(w, "  quicksave register -n NAME -s SAVE_DIR -b BACKUP_DIR")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sSAVE DIR%s\t%sBACKUP DIR%s\t%sALIASES%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	names := maps.Keys(games)
	slices.Sort(names)
	for _, name := range names {
		entry := games[name]
		aliases := strings.Join(entry.Aliases, ", ")
		if aliases == "" {
			aliases = "-"
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s%s%s\n",
			colorGreen, name, colorReset,
			entry.SaveDir,
			entry.BackupDir,
			colorGray, aliases, colorReset)
	}

	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}
