package snapshot

import (
	"archive/zip"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quicksave/quicksave/internal/logging"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	return NewManager(WithLogger(logging.ForTest(t)))
}

// writeTree creates files (with parent dirs) under root.
func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

// archivePaths returns the entry names stored in a zip file.
func archivePaths(t *testing.T, archivePath string) []string {
	t.Helper()
	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer zr.Close()

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}

func TestVerifyDirectories(t *testing.T) {
	m := newTestManager(t)
	saveDir := t.TempDir()

	t.Run("missing save dir", func(t *testing.T) {
		err := m.VerifyDirectories(filepath.Join(saveDir, "nope"), t.TempDir())
		assert.ErrorIs(t, err, ErrSaveDirMissing)
	})

	t.Run("creates missing backup dir with parents", func(t *testing.T) {
		backupDir := filepath.Join(t.TempDir(), "a", "b", "backups")
		require.NoError(t, m.VerifyDirectories(saveDir, backupDir))

		info, err := os.Stat(backupDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("remote descriptor is validated syntactically only", func(t *testing.T) {
		assert.NoError(t, m.VerifyDirectories(saveDir, "s3://bucket/saves"))
		assert.ErrorIs(t, m.VerifyDirectories(saveDir, "s3://"), ErrInvalidRemote)
	})
}

func TestCreateBackup_ArchiveMatchesTree(t *testing.T) {
	m := newTestManager(t)

	saveDir := filepath.Join(t.TempDir(), "skyrim")
	writeTree(t, saveDir, map[string]string{
		"quicksave.ess":          "save data",
		"profiles/main/opts.ini": "options",
		"profiles/alt/opts.ini":  "other options",
	})
	backupDir := t.TempDir()

	archivePath, err := m.CreateBackup(saveDir, backupDir, "2025-06-02_08-15-22")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(backupDir, "skyrim_2025-06-02_08-15-22.zip"), archivePath)

	got := archivePaths(t, archivePath)
	assert.ElementsMatch(t, []string{
		"quicksave.ess",
		"profiles/main/opts.ini",
		"profiles/alt/opts.ini",
	}, got)
}

func TestCreateBackup_UsesDeflate(t *testing.T) {
	m := newTestManager(t)

	saveDir := filepath.Join(t.TempDir(), "skyrim")
	writeTree(t, saveDir, map[string]string{
		"save.ess": strings.Repeat("compressible ", 512),
	})

	archivePath, err := m.CreateBackup(saveDir, t.TempDir(), "2025-06-02_08-15-22")
	require.NoError(t, err)

	zr, err := zip.OpenReader(archivePath)
	require.NoError(t, err)
	defer zr.Close()

	require.Len(t, zr.File, 1)
	assert.Equal(t, uint16(zip.Deflate), zr.File[0].Method)
	assert.Less(t, zr.File[0].CompressedSize64, zr.File[0].UncompressedSize64)
}

func TestCreateBackup_RemoteReturnsIntendedPath(t *testing.T) {
	m := newTestManager(t)

	saveDir := filepath.Join(t.TempDir(), "skyrim")
	writeTree(t, saveDir, map[string]string{"save.ess": "data"})

	got, err := m.CreateBackup(saveDir, "s3://bucket/saves", "2025-06-02_08-15-22")
	require.NoError(t, err)
	assert.Equal(t, "s3://bucket/saves/skyrim_2025-06-02_08-15-22.zip", got)
}

func TestCreateBackup_RemoteStagesArchiveLocally(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("TMPDIR", tmp)

	m := newTestManager(t)
	saveDir := filepath.Join(t.TempDir(), "skyrim")
	writeTree(t, saveDir, map[string]string{"save.ess": "data"})

	_, err := m.CreateBackup(saveDir, "s3://bucket/saves", "2025-06-02_08-15-22")
	require.NoError(t, err)

	// The archive lands in the staging dir under its proper filename.
	matches, err := filepath.Glob(filepath.Join(tmp, "quicksave-stage-*", "skyrim_2025-06-02_08-15-22.zip"))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Contains(t, archivePaths(t, matches[0]), "save.ess")
}

func TestListSnapshots(t *testing.T) {
	m := newTestManager(t)
	backupDir := t.TempDir()

	for _, name := range []string{
		"skyrim_2025-06-01_12-30-45.zip",
		"skyrim_2025-06-04_19-45-10_before-final-quest.zip",
		"skyrim_2025-06-02_08-15-22_boss-fight.zip",
		"skyrim_malformed.zip",              // too few components, skipped
		"fallout_2025-06-03_10-00-00.zip",   // different game, skipped
		"skyrim_2025-06-05_09-00-00.tar.gz", // wrong extension, skipped
	} {
		require.NoError(t, os.WriteFile(filepath.Join(backupDir, name), []byte("x"), 0o644))
	}

	snapshots, err := m.ListSnapshots(backupDir, "skyrim")
	require.NoError(t, err)
	require.Len(t, snapshots, 3)

	// Newest first.
	assert.Equal(t, "2025-06-04_19-45-10", snapshots[0].Timestamp)
	assert.Equal(t, "before-final-quest", snapshots[0].Tag)
	assert.Equal(t, "2025-06-02_08-15-22", snapshots[1].Timestamp)
	assert.Equal(t, "boss-fight", snapshots[1].Tag)
	assert.Equal(t, "2025-06-01_12-30-45", snapshots[2].Timestamp)
	assert.Empty(t, snapshots[2].Tag)
}

func TestListSnapshots_MissingDirIsEmpty(t *testing.T) {
	m := newTestManager(t)

	snapshots, err := m.ListSnapshots(filepath.Join(t.TempDir(), "nope"), "skyrim")
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

func TestListSnapshots_RemoteIsEmpty(t *testing.T) {
	m := newTestManager(t)

	snapshots, err := m.ListSnapshots("s3://bucket/saves", "skyrim")
	require.NoError(t, err)
	assert.Empty(t, snapshots)
}

// Frozen-clock end to end: save with a tag, then the snapshot shows up in
// the listing with that timestamp and tag.
func TestSaveThenShow_FrozenClock(t *testing.T) {
	m := newTestManager(t)

	saveDir := filepath.Join(t.TempDir(), "skyrim")
	writeTree(t, saveDir, map[string]string{"save.ess": "data"})
	backupDir := t.TempDir()

	frozen := time.Date(2025, 6, 2, 8, 15, 22, 0, time.Local)
	name := SnapshotName(frozen, "boss-fight")

	archivePath, err := m.CreateBackup(saveDir, backupDir, name)
	require.NoError(t, err)
	assert.Equal(t, "skyrim_2025-06-02_08-15-22_boss-fight.zip", filepath.Base(archivePath))

	snapshots, err := m.ListSnapshots(backupDir, SourceBase(saveDir))
	require.NoError(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, "2025-06-02_08-15-22", snapshots[0].Timestamp)
	assert.Equal(t, "boss-fight", snapshots[0].Tag)
}
