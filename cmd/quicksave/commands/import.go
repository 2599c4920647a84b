package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/quicksave/quicksave/internal/errors"
	"github.com/quicksave/quicksave/internal/registry"
	"github.com/quicksave/quicksave/pkg/fileutil"
)

func init() {
	rootCmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Register games in bulk from a manifest file",
	Long: `Register several games at once from a TOML or YAML manifest.

The format is chosen by file extension (.toml, .yaml, .yml). Each entry
carries the same fields as the register command:

  [[games]]
  name = "Skyrim"
  save_dir = "/saves/skyrim"
  backup_dir = "/backups"
  aliases = ["sky"]

Entries whose save directory does not exist are skipped and reported;
the rest are registered normally (existing names are overwritten).`,
	Example: `  quicksave import games.toml
  quicksave import games.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

// manifest is the shape of an import file.
type manifest struct {
	Games []manifestGame `toml:"games" yaml:"games"`
}

type manifestGame struct {
	Name      string   `toml:"name" yaml:"name"`
	SaveDir   string   `toml:"save_dir" yaml:"save_dir"`
	BackupDir string   `toml:"backup_dir" yaml:"backup_dir"`
	Aliases   []string `toml:"aliases" yaml:"aliases"`
}

func runImport(cmd *cobra.Command, args []string) error {
	return runImportWithWriter(cmd, os.Stdout, args[0])
}

func runImportWithWriter(cmd *cobra.Command, w io.Writer, path string) error {
	m, err := loadManifest(path)
	if err != nil {
		return err
	}
	if len(m.Games) == 0 {
		fmt.Fprintln(w, "Manifest contains no games.")
		return nil
	}

	imported := 0
	for _, g := range m.Games {
		entry := registry.GameEntry{
			Name:      g.Name,
			SaveDir:   g.SaveDir,
			BackupDir: g.BackupDir,
			Aliases:   g.Aliases,
		}

		if err := registerGame(cmd, w, entry); err != nil {
			// Report and keep going; one bad entry should not abort the rest.
			fmt.Fprintf(w, "%s✗ Skipped %q: %s%s\n", colorYellow, g.Name, err, colorReset)
			continue
		}
		imported++
	}

	fmt.Fprintf(w, "\nImported %d of %d games.\n", imported, len(m.Games))
	return nil
}

// loadManifest reads and decodes a manifest, picking the codec by extension.
func loadManifest(path string) (*manifest, error) {
	data, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, errors.NewUserError(errors.Wrap(err, "reading manifest"), "Check the manifest path")
	}

	var m manifest
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, &m); err != nil {
			return nil, errors.NewUserError(errors.Wrap(err, "parsing TOML manifest"), "")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &m); err != nil {
			return nil, errors.NewUserError(errors.Wrap(err, "parsing YAML manifest"), "")
		}
	default:
		return nil, errors.NewUserError(
			errors.Newf("unsupported manifest format %q", filepath.Ext(path)),
			"Use a .toml, .yaml, or .yml file")
	}

	return &m, nil
}
