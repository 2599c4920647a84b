package commands

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/quicksave/quicksave/internal/logging"
)

// testCommand returns a command carrying a test logger in its context,
// with the registry redirected to a per-test config dir.
func testCommand(t *testing.T) *cobra.Command {
	t.Helper()
	t.Setenv("QUICKSAVE_CONFIG_DIR", t.TempDir())

	c := &cobra.Command{}
	c.SetContext(logging.NewContext(context.Background(), logging.ForTest(t)))
	return c
}

// makeSaveDir creates a save directory with one file in it.
func makeSaveDir(t *testing.T, name string) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "save.dat"), []byte("data"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}
