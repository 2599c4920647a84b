package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quicksave/quicksave/internal/errors"
	"github.com/quicksave/quicksave/internal/registry"
	"github.com/quicksave/quicksave/internal/snapshot"
)

func TestRegisterCommand_Metadata(t *testing.T) {
	if registerCmd.Use != "register" {
		t.Errorf("Use = %q, want %q", registerCmd.Use, "register")
	}

	for _, flag := range []string{"name", "save-dir", "backup-dir", "alias"} {
		if registerCmd.Flags().Lookup(flag) == nil {
			t.Errorf("--%s flag should be defined", flag)
		}
	}
}

func TestRegisterGame(t *testing.T) {
	c := testCommand(t)
	saveDir := makeSaveDir(t, "skyrim")
	backupDir := t.TempDir()

	var buf bytes.Buffer
	err := registerGame(c, &buf, registry.GameEntry{
		Name:      "Skyrim",
		SaveDir:   saveDir,
		BackupDir: backupDir,
		Aliases:   []string{"sky"},
	})
	if err != nil {
		t.Fatalf("registerGame() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Registered") || !strings.Contains(out, "Skyrim") {
		t.Errorf("output missing confirmation: %q", out)
	}

	// The entry is resolvable by alias afterwards.
	entry, err := newRegistry(c).Resolve("sky")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if entry.SaveDir != saveDir {
		t.Errorf("SaveDir = %q, want %q", entry.SaveDir, saveDir)
	}
}

func TestRegisterGame_MissingSaveDirLeavesRegistryUntouched(t *testing.T) {
	c := testCommand(t)

	var buf bytes.Buffer
	err := registerGame(c, &buf, registry.GameEntry{
		Name:      "Ghost",
		SaveDir:   "/does/not/exist",
		BackupDir: t.TempDir(),
	})
	if !errors.Is(err, snapshot.ErrSaveDirMissing) {
		t.Fatalf("error = %v, want ErrSaveDirMissing", err)
	}

	games, err := newRegistry(c).All()
	if err != nil {
		t.Fatal(err)
	}
	if len(games) != 0 {
		t.Errorf("registry should be empty, got %d entries", len(games))
	}
}

func TestRegisterGame_OverwriteNoted(t *testing.T) {
	c := testCommand(t)
	saveDir := makeSaveDir(t, "skyrim")
	backupDir := t.TempDir()

	entry := registry.GameEntry{Name: "Skyrim", SaveDir: saveDir, BackupDir: backupDir}

	var first bytes.Buffer
	if err := registerGame(c, &first, entry); err != nil {
		t.Fatal(err)
	}

	var second bytes.Buffer
	if err := registerGame(c, &second, entry); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(second.String(), "Replaced") {
		t.Errorf("second registration should note the overwrite: %q", second.String())
	}
}
