package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/quicksave/quicksave/internal/errors"
	"github.com/quicksave/quicksave/internal/registry"
	"github.com/quicksave/quicksave/internal/snapshot"
)

var showJSON bool

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show [GAME]",
	Short: "List saved snapshots for a game",
	Long: `List the snapshots stored in a game's backup directory, newest first.

GAME is a registered name or alias. When GAME is omitted and the session is
interactive, a fuzzy finder picks from the registry. Snapshot history is
derived from the backup directory's listing; files that do not follow the
snapshot naming scheme are ignored.`,
	Example: `  # Show snapshots by name or alias
  quicksave show Skyrim
  quicksave show sky

  # Output as JSON
  quicksave show sky --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

// snapshotJSON represents one snapshot in JSON output format.
type snapshotJSON struct {
	Filename  string `json:"filename"`
	Timestamp string `json:"timestamp"`
	Tag       string `json:"tag,omitempty"`
}

func runShow(cmd *cobra.Command, args []string) error {
	return runShowWithWriter(cmd, os.Stdout, args)
}

func runShowWithWriter(cmd *cobra.Command, w io.Writer, args []string) error {
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
	snapshots, err := mgr.ListSnapshots(entry.BackupDir, snapshot.SourceBase(entry.SaveDir))
	if err != nil {
		return errors.Wrapf(err, "listing snapshots for %q", entry.Name)
	}

	if showJSON {
		return outputShowJSON(w, snapshots)
	}
	return outputShowTabular(w, entry, snapshots)
}

func outputShowJSON(w io.Writer, snapshots []snapshot.Snapshot) error {
	output := make([]snapshotJSON, len(snapshots))
	for i, s := range snapshots {
		output[i] = snapshotJSON{
			Filename:  s.Filename,
			Timestamp: s.Timestamp,
			Tag:       s.Tag,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(output), "encoding output")
}

func outputShowTabular(w io.Writer, entry *registry.GameEntry, snapshots []snapshot.Snapshot) error {
	fmt.Fprintf(w, "%sSnapshots for %s%s\n", colorCyan+colorBold, entry.Name, colorReset)

	if len(snapshots) == 0 {
		fmt.Fprintf(w, "  %s(no snapshots yet)%s\n", colorGray, colorReset)
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  %sTIMESTAMP%s\t%sTAG%s\n",
		colorBold, colorReset,
		colorBold, colorReset)

	for _, s := range snapshots {
		tag := s.Tag
		if tag == "" {
			tag = "-"
		}
		fmt.Fprintf(tw, "  %s%s%s\t%s\n",
			colorGreen, s.Timestamp, colorReset, tag)
	}

	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}
