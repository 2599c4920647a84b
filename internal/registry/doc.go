// Package registry persists the collection of registered games.
//
// The registry is a single YAML document holding a schema version and a
// mapping from game name to entry (save directory, backup destination,
// aliases). It lives at an OS-appropriate per-user config location and is
// rewritten in full, atomically, after every mutation.
//
// Lookup accepts either a primary name or an alias; aliases are unique
// across the whole registry and are rejected at write time when they would
// collide with another entry's name or alias.
//
// A missing document is initialized with an empty mapping. A corrupt
// document is recovered read-only: the registry starts from an empty
// mapping in memory, logs a warning, and never overwrites the broken file.
package registry
