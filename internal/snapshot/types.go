package snapshot

import (
	"github.com/cockroachdb/errors"
)

// Ext is the archive file extension for snapshots.
const Ext = ".zip"

// TimestampLayout is the snapshot timestamp format embedded in filenames.
// Zero-padded and fixed-width, so lexicographic order equals chronological order.
const TimestampLayout = "2006-01-02_15-04-05"

// Sentinel errors for snapshot operations.
var (
	// ErrSaveDirMissing indicates the source save directory does not exist.
	ErrSaveDirMissing = errors.New("save directory does not exist")

	// ErrInvalidRemote indicates a remote destination descriptor that does not
	// decompose into a non-empty bucket plus optional prefix.
	ErrInvalidRemote = errors.New("invalid remote destination")
)

// Snapshot is one point-in-time archive of a save directory, derived
// entirely from its filename. Deleting the file deletes the snapshot;
// no record exists anywhere else.
type Snapshot struct {
	// Filename is the literal archive name within the backup directory.
	Filename string

	// Timestamp is the two underscore-joined components YYYY-MM-DD_HH-MM-SS.
	Timestamp string

	// Tag is the optional free-text remainder. It may itself contain
	// underscores. Empty when the snapshot was taken without a tag.
	Tag string
}
