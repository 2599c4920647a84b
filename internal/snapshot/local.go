package snapshot

import (
	"archive/zip"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// localBackend stores snapshot archives in a directory on the local filesystem.
type localBackend struct {
	dir string
}

// Verify creates the backup directory (including parents) if it is absent.
func (b *localBackend) Verify() error {
	if err := os.MkdirAll(b.dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating backup directory %s", b.dir)
	}
	return nil
}

// Create writes a zip archive of sourceDir into the backup directory.
// A partially written archive is removed on failure.
func (b *localBackend) Create(sourceDir, archiveName string) (string, error) {
	archivePath := filepath.Join(b.dir, archiveName)

	if err := writeArchive(archivePath, sourceDir); err != nil {
		os.Remove(archivePath)
		return "", err
	}

	return archivePath, nil
}

// List scans the direct children of the backup directory for archives
// belonging to sourceBase and returns them newest first. A missing backup
// directory yields an empty list, not an error. Filenames that do not parse
// are skipped.
func (b *localBackend) List(sourceBase string) ([]Snapshot, error) {
	entries, err := os.ReadDir(b.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "reading backup directory")
	}

	var snapshots []Snapshot
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s, ok := ParseArchiveName(entry.Name(), sourceBase); ok {
			snapshots = append(snapshots, s)
		}
	}

	// Newest first. Lexicographic comparison is chronological because the
	// timestamp format is zero-padded and fixed-width.
	slices.SortFunc(snapshots, func(a, b Snapshot) int {
		return strings.Compare(b.Timestamp, a.Timestamp)
	})

	return snapshots, nil
}

// writeArchive walks sourceDir recursively and writes every regular file
// into a deflate-compressed zip at archivePath, under its forward-slash
// relative path so archives stay portable across platforms.
func writeArchive(archivePath, sourceDir string) (err error) {
	f, err := os.Create(archivePath)
	if err != nil {
		return errors.Wrap(err, "creating archive file")
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = errors.Wrap(closeErr, "closing archive file")
		}
	}()

	zw := zip.NewWriter(f)

	walkErr := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}

		relPath, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return errors.Wrapf(err, "resolving %s", path)
		}

		w, err := zw.Create(filepath.ToSlash(relPath))
		if err != nil {
			return errors.Wrapf(err, "adding %s to archive", relPath)
		}

		src, err := os.Open(path)
		if err != nil {
			return errors.Wrapf(err, "opening %s", path)
		}
		defer src.Close()

		if _, err := io.Copy(w, src); err != nil {
			return errors.Wrapf(err, "writing %s to archive", relPath)
		}
		return nil
	})
	if walkErr != nil {
		zw.Close()
		return errors.Wrap(walkErr, "walking save directory")
	}

	if err := zw.Close(); err != nil {
		return errors.Wrap(err, "finalizing archive")
	}
	return nil
}
