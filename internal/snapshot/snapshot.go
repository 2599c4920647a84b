package snapshot

import (
	"log/slog"
	"os"

	"github.com/cockroachdb/errors"
)

// Manager handles snapshot creation, discovery, and directory verification
// for a game's save directory and backup destination.
type Manager struct {
	logger *slog.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithLogger sets the logger used for informational messages.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a snapshot Manager with the given options.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// VerifyDirectories checks that the save directory exists and that the
// backup destination is usable. A missing save directory is an error with
// no side effects; a missing local backup directory is created, parents
// included. Remote destinations are only validated syntactically.
func (m *Manager) VerifyDirectories(saveDir, backupDir string) error {
	if _, err := os.Stat(saveDir); err != nil {
		if os.IsNotExist(err) {
			return errors.WithDetailf(ErrSaveDirMissing, "save directory %q does not exist", saveDir)
		}
		return errors.Wrapf(err, "checking save directory %s", saveDir)
	}

	return newBackend(backupDir, m.logger).Verify()
}

// CreateBackup archives sourceDir into the backup destination under the name
// <base(sourceDir)>_<snapshotName>.zip and returns the archive path. For
// remote destinations the archive is staged locally and the intended remote
// path is returned; no transfer occurs.
func (m *Manager) CreateBackup(sourceDir, backupDir, snapshotName string) (string, error) {
	archiveName := ArchiveName(sourceDir, snapshotName)
	return newBackend(backupDir, m.logger).Create(sourceDir, archiveName)
}

// ListSnapshots returns the snapshots stored for sourceBase at the backup
// destination, sorted newest first. A missing local backup directory and
// any remote destination both yield an empty list.
func (m *Manager) ListSnapshots(backupDir, sourceBase string) ([]Snapshot, error) {
	return newBackend(backupDir, m.logger).List(sourceBase)
}
