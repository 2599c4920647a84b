package paths

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("QUICKSAVE_CONFIG_DIR", dir)

	if got := ConfigDir(); got != dir {
		t.Errorf("ConfigDir() = %q, want %q", got, dir)
	}

	want := filepath.Join(dir, RegistryFileName)
	if got := RegistryFile(); got != want {
		t.Errorf("RegistryFile() = %q, want %q", got, want)
	}
}

func TestConfigDir_Default(t *testing.T) {
	t.Setenv("QUICKSAVE_CONFIG_DIR", "")

	got := ConfigDir()
	if filepath.Base(got) != AppName {
		t.Errorf("ConfigDir() = %q, want basename %q", got, AppName)
	}
}

func TestEnsureDir(t *testing.T) {
	base := t.TempDir()
	nested := filepath.Join(base, "a", "b", "c")

	if err := EnsureDir(nested, 0); err != nil {
		t.Fatalf("EnsureDir() error: %v", err)
	}

	info, err := os.Stat(nested)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}

	// Idempotent
	if err := EnsureDir(nested, 0); err != nil {
		t.Errorf("EnsureDir() second call error: %v", err)
	}
}
