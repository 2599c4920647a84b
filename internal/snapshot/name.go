package snapshot

import (
	"path/filepath"
	"strings"
	"time"
)

// Timestamp formats t in the snapshot filename layout.
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}

// SnapshotName composes the caller-supplied portion of an archive name:
// the timestamp alone, or timestamp_tag when a tag is given.
func SnapshotName(t time.Time, tag string) string {
	name := Timestamp(t)
	if tag != "" {
		name += "_" + tag
	}
	return name
}

// SourceBase returns the base name of a save directory, the prefix under
// which its snapshots are stored.
func SourceBase(sourceDir string) string {
	return filepath.Base(filepath.Clean(sourceDir))
}

// ArchiveName composes the full archive filename for a snapshot of sourceDir.
func ArchiveName(sourceDir, snapshotName string) string {
	return SourceBase(sourceDir) + "_" + snapshotName + Ext
}

// ParseArchiveName recovers a Snapshot from an archive filename belonging to
// sourceBase. It reports false for filenames that do not carry the
// <sourceBase>_ prefix, the archive extension, or at least the two timestamp
// components; callers skip those silently.
func ParseArchiveName(filename, sourceBase string) (Snapshot, bool) {
	prefix := sourceBase + "_"
	if !strings.HasPrefix(filename, prefix) || !strings.HasSuffix(filename, Ext) {
		return Snapshot{}, false
	}

	rest := strings.TrimSuffix(strings.TrimPrefix(filename, prefix), Ext)
	parts := strings.Split(rest, "_")
	if len(parts) < 2 {
		return Snapshot{}, false
	}

	s := Snapshot{
		Filename:  filename,
		Timestamp: parts[0] + "_" + parts[1],
	}
	if len(parts) > 2 {
		s.Tag = strings.Join(parts[2:], "_")
	}
	return s, true
}
