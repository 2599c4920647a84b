package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestImportCommand_Metadata(t *testing.T) {
	if !strings.HasPrefix(importCmd.Use, "import") {
		t.Errorf("Use = %q, want import prefix", importCmd.Use)
	}
}

func TestRunImport_TOML(t *testing.T) {
	c := testCommand(t)
	saveDir := makeSaveDir(t, "skyrim")
	backupDir := t.TempDir()

	content := fmt.Sprintf(`
[[games]]
name = "Skyrim"
save_dir = %q
backup_dir = %q
aliases = ["sky"]

[[games]]
name = "Ghost"
save_dir = "/does/not/exist"
backup_dir = %q
`, saveDir, backupDir, backupDir)

	path := filepath.Join(t.TempDir(), "games.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runImportWithWriter(c, &buf, path); err != nil {
		t.Fatalf("runImportWithWriter() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Imported 1 of 2 games") {
		t.Errorf("output should report partial import: %q", out)
	}
	if !strings.Contains(out, "Skipped") {
		t.Errorf("output should report the skipped entry: %q", out)
	}

	// Only the valid entry landed in the registry.
	games, err := newRegistry(c).All()
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 1 {
		t.Fatalf("registry has %d entries, want 1", len(games))
	}
	if _, ok := games["Skyrim"]; !ok {
		t.Error("Skyrim should be registered")
	}
}

func TestRunImport_YAML(t *testing.T) {
	c := testCommand(t)
	saveDir := makeSaveDir(t, "fallout")
	backupDir := t.TempDir()

	content := fmt.Sprintf("games:\n  - name: Fallout\n    save_dir: %s\n    backup_dir: %s\n    aliases: [fo4]\n", saveDir, backupDir)

	path := filepath.Join(t.TempDir(), "games.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runImportWithWriter(c, &buf, path); err != nil {
		t.Fatalf("runImportWithWriter() error = %v", err)
	}

	entry, err := newRegistry(c).Resolve("fo4")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if entry.Name != "Fallout" {
		t.Errorf("Name = %q, want Fallout", entry.Name)
	}
}

func TestLoadManifest_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.ini")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := loadManifest(path); err == nil {
		t.Error("expected error for unsupported manifest format")
	}
}
