// Package snapshot creates and discovers point-in-time archives of game
// save directories.
//
// A snapshot is a deflate-compressed zip holding every regular file of the
// save directory under its forward-slash relative path. Snapshot identity is
// encoded entirely in the filename:
//
//	<base(saveDir)>_<YYYY-MM-DD_HH-MM-SS>[_<tag>].zip
//
// The timestamp is always two underscore-joined components; anything beyond
// them is the tag, which may itself contain underscores. Listing a backup
// directory parses this scheme back out and orders snapshots newest first,
// relying on the zero-padded fixed-width timestamp so lexicographic order is
// chronological.
//
// Backup destinations are polymorphic: a plain path selects the local
// backend, while an s3://bucket/prefix descriptor selects the remote one.
// Remote support is a placeholder — descriptors are validated syntactically,
// creation stages the archive into a temp directory and reports the intended
// remote path, and listing returns nothing. Each of these says so in the log
// instead of pretending success.
package snapshot
