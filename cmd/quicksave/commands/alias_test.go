package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/quicksave/quicksave/internal/errors"
	"github.com/quicksave/quicksave/internal/registry"
)

func TestRunAlias(t *testing.T) {
	c := testCommand(t)
	reg := newRegistry(c)

	if err := reg.Add(registry.GameEntry{
		Name:      "Skyrim",
		SaveDir:   makeSaveDir(t, "skyrim"),
		BackupDir: t.TempDir(),
	}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runAliasWithWriter(c, &buf, "Skyrim", "sky"); err != nil {
		t.Fatalf("runAliasWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "sky") {
		t.Errorf("output should mention the alias: %q", buf.String())
	}

	entry, err := reg.Resolve("sky")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if entry.Name != "Skyrim" {
		t.Errorf("alias resolves to %q, want Skyrim", entry.Name)
	}
}

func TestRunAlias_UnknownGame(t *testing.T) {
	c := testCommand(t)

	var buf bytes.Buffer
	err := runAliasWithWriter(c, &buf, "Ghost", "gh")
	if !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRunRemove_ByAlias(t *testing.T) {
	c := testCommand(t)
	reg := newRegistry(c)

	if err := reg.Add(registry.GameEntry{
		Name:      "Skyrim",
		SaveDir:   makeSaveDir(t, "skyrim"),
		BackupDir: t.TempDir(),
		Aliases:   []string{"sky"},
	}); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := runRemoveWithWriter(c, &buf, "sky"); err != nil {
		t.Fatalf("runRemoveWithWriter() error = %v", err)
	}

	// The message names the primary entry, not the alias.
	if !strings.Contains(buf.String(), "Skyrim") {
		t.Errorf("output should name the removed game: %q", buf.String())
	}

	if _, err := reg.Resolve("Skyrim"); !errors.Is(err, registry.ErrNotFound) {
		t.Error("game should be gone after remove")
	}
}

func TestRunRemove_UnknownGame(t *testing.T) {
	c := testCommand(t)

	var buf bytes.Buffer
	err := runRemoveWithWriter(c, &buf, "nope")
	if !errors.Is(err, registry.ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}
