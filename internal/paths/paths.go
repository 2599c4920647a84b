// Package paths resolves per-user filesystem locations for quicksave.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// AppName is the directory name used under the XDG config home.
const AppName = "quicksave"

// RegistryFileName is the name of the persisted registry document.
const RegistryFileName = "quicksave.yaml"

// ErrHomeDirNotFound indicates the user's home directory could not be determined.
var ErrHomeDirNotFound = errors.New("home directory not found")

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// Note: It returns an empty string on error. Use ResolveHome for error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// ConfigDir returns the quicksave configuration directory.
// Returns: <ConfigHome>/quicksave/
//
// The QUICKSAVE_CONFIG_DIR environment variable overrides the default,
// which keeps tests and scripted use away from the user's real registry.
// If no platform config home can be resolved, ~/.quicksave is used.
func ConfigDir() string {
	if dir := os.Getenv("QUICKSAVE_CONFIG_DIR"); dir != "" {
		return dir
	}
	if home := ConfigHome(); home != "" {
		return filepath.Join(home, AppName)
	}
	return filepath.Join(Home(), "."+AppName)
}

// RegistryFile returns the path to the persisted registry document.
// Returns: <ConfigDir>/quicksave.yaml
func RegistryFile() string {
	return filepath.Join(ConfigDir(), RegistryFileName)
}
