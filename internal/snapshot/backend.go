package snapshot

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
)

// RemoteScheme prefixes backup destinations that name a remote storage target.
const RemoteScheme = "s3://"

// Backend is one backup destination. Implementations exist for local
// directories and for remote descriptors; the remote one accepts descriptors
// syntactically but performs no transfers.
type Backend interface {
	// Verify ensures the destination is usable, creating it when that
	// makes sense for the backend.
	Verify() error

	// Create archives sourceDir into archiveName at the destination and
	// returns the path of the resulting archive.
	Create(sourceDir, archiveName string) (string, error)

	// List returns the snapshots stored for sourceBase, newest first.
	List(sourceBase string) ([]Snapshot, error)
}

// IsRemote reports whether a backup destination is a remote descriptor.
func IsRemote(dest string) bool {
	return strings.HasPrefix(dest, RemoteScheme)
}

// Remote is a parsed remote-location descriptor.
type Remote struct {
	Bucket string
	Prefix string
}

// ParseRemote decomposes an s3://bucket/prefix descriptor.
// The bucket must be non-empty; the prefix is optional.
func ParseRemote(dest string) (Remote, error) {
	if !IsRemote(dest) {
		return Remote{}, errors.WithDetailf(ErrInvalidRemote, "%q does not start with %s", dest, RemoteScheme)
	}

	rest := strings.TrimPrefix(dest, RemoteScheme)
	bucket, prefix, _ := strings.Cut(rest, "/")
	if bucket == "" {
		return Remote{}, errors.WithDetailf(ErrInvalidRemote, "%q has an empty bucket", dest)
	}

	return Remote{
		Bucket: bucket,
		Prefix: strings.Trim(prefix, "/"),
	}, nil
}

// newBackend selects the backend for a backup destination.
func newBackend(dest string, logger *slog.Logger) Backend {
	if IsRemote(dest) {
		return &remoteBackend{dest: dest, logger: logger}
	}
	return &localBackend{dir: dest}
}
