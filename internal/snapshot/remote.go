package snapshot

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// remoteBackend accepts s3://bucket/prefix destinations syntactically but
// performs no network transfers. Archives are staged into a local temporary
// directory and the intended remote path is reported; existence checks and
// listing do no real work. Each unimplemented operation says so in the log
// rather than pretending success.
type remoteBackend struct {
	dest   string
	logger *slog.Logger
}

// Verify validates the descriptor shape only. Whether the bucket exists or
// is writable is never checked.
func (b *remoteBackend) Verify() error {
	remote, err := ParseRemote(b.dest)
	if err != nil {
		return err
	}
	b.logger.Info("remote destination accepted syntactically; existence and permissions are not checked",
		"bucket", remote.Bucket, "prefix", remote.Prefix)
	return nil
}

// Create stages the archive into a local temporary directory and returns the
// intended remote path. No upload happens.
func (b *remoteBackend) Create(sourceDir, archiveName string) (string, error) {
	if _, err := ParseRemote(b.dest); err != nil {
		return "", err
	}

	stageDir, err := os.MkdirTemp("", "quicksave-stage-*")
	if err != nil {
		return "", err
	}

	stagePath := filepath.Join(stageDir, archiveName)
	if err := writeArchive(stagePath, sourceDir); err != nil {
		os.RemoveAll(stageDir)
		return "", err
	}

	remotePath := strings.TrimRight(b.dest, "/") + "/" + archiveName
	b.logger.Info("remote upload is not implemented; archive staged locally",
		"staged", stagePath, "destination", remotePath)

	return remotePath, nil
}

// List returns nothing: remote listing is not implemented.
func (b *remoteBackend) List(sourceBase string) ([]Snapshot, error) {
	b.logger.Info("remote snapshot listing is not implemented", "destination", b.dest)
	return nil, nil
}
