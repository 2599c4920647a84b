package registry

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/cockroachdb/errors"
	"golang.org/x/exp/maps"
	"gopkg.in/yaml.v3"

	"github.com/quicksave/quicksave/internal/paths"
	"github.com/quicksave/quicksave/pkg/fileutil"
)

// Version is the registry document schema version.
const Version = "0.1.0"

// Sentinel errors for registry operations.
var (
	// ErrNotFound indicates no entry matched the given name or alias.
	ErrNotFound = errors.New("game not found")

	// ErrAliasInUse indicates an alias collides with another entry's name or alias.
	ErrAliasInUse = errors.New("alias already in use")

	// ErrMissingName indicates a required name field is missing.
	ErrMissingName = errors.New("name is required")

	// ErrMissingDir indicates a required directory field is missing.
	ErrMissingDir = errors.New("save and backup directories are required")
)

// GameEntry is one registered game: a save directory paired with a backup
// destination, plus any lookup aliases. The backup destination is either a
// local path or a remote descriptor such as s3://bucket/prefix.
type GameEntry struct {
	// Name is the unique, case-sensitive primary key.
	// It is the map key in the document and not persisted inside the entry.
	Name string `yaml:"-"`

	SaveDir   string   `yaml:"save_dir"`
	BackupDir string   `yaml:"backup_dir"`
	Aliases   []string `yaml:"aliases,omitempty"`
}

// Document is the persisted registry: a schema version plus the mapping
// from game name to entry. Map iteration order is unspecified.
type Document struct {
	Version string               `yaml:"version"`
	Games   map[string]GameEntry `yaml:"games"`
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for load-time warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.logger = logger
	}
}

// Registry manages the persisted collection of registered games.
// Every mutating operation rewrites the whole document synchronously;
// there is no cross-process locking (last writer wins).
type Registry struct {
	path   string // Path to the registry document
	logger *slog.Logger
}

// New creates a Registry backed by the document at path.
// If path is empty, the default per-user location is used.
func New(path string, opts ...Option) *Registry {
	if path == "" {
		path = paths.RegistryFile()
	}
	r := &Registry{
		path:   path,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Path returns the location of the registry document.
func (r *Registry) Path() string {
	return r.path
}

// Load reads the registry document.
//
// A missing file is initialized: the default empty document is written to
// disk and returned. An unparseable file is recovered read-only: a warning
// is logged and the default document is returned in memory without touching
// the broken file.
//
// Decoding goes through yaml.v3, the same codec as the write path. Game
// names are map keys and must round-trip byte for byte; a case-folding
// decoder would corrupt them.
func (r *Registry) Load() (*Document, error) {
	if _, err := os.Stat(r.path); os.IsNotExist(err) {
		doc := defaultDocument()
		if err := r.save(doc); err != nil {
			return nil, errors.Wrap(err, "initializing registry")
		}
		return doc, nil
	}

	data, err := fileutil.ReadFileWithLimit(r.path)
	if err != nil {
		r.logger.Warn("registry document is unreadable, starting from an empty registry",
			"path", r.path, "error", err)
		return defaultDocument(), nil
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		r.logger.Warn("registry document has an unexpected shape, starting from an empty registry",
			"path", r.path, "error", err)
		return defaultDocument(), nil
	}

	if doc.Version == "" {
		doc.Version = Version
	}
	if doc.Games == nil {
		doc.Games = make(map[string]GameEntry)
	}
	for name, entry := range doc.Games {
		entry.Name = name
		doc.Games[name] = entry
	}

	return &doc, nil
}

// All returns every registered game, keyed by primary name.
func (r *Registry) All() (map[string]GameEntry, error) {
	doc, err := r.Load()
	if err != nil {
		return nil, err
	}
	return doc.Games, nil
}

// Resolve finds an entry by primary name or alias.
//
// An exact primary-name match wins. On a miss, entries are scanned for an
// exact alias match in sorted primary-name order, so resolution stays
// deterministic even if a document written by another tool contains a
// duplicate alias. Returns ErrNotFound if nothing matches.
func (r *Registry) Resolve(nameOrAlias string) (*GameEntry, error) {
	doc, err := r.Load()
	if err != nil {
		return nil, err
	}
	return resolve(doc, nameOrAlias)
}

func resolve(doc *Document, nameOrAlias string) (*GameEntry, error) {
	if entry, ok := doc.Games[nameOrAlias]; ok {
		return &entry, nil
	}

	names := maps.Keys(doc.Games)
	slices.Sort(names)
	for _, name := range names {
		entry := doc.Games[name]
		if slices.Contains(entry.Aliases, nameOrAlias) {
			return &entry, nil
		}
	}

	return nil, errors.WithDetailf(ErrNotFound, "no game named or aliased %q", nameOrAlias)
}

// Add inserts a game, overwriting any existing entry with the same name.
// Aliases equal to the entry's own name are dropped; aliases colliding with
// another entry's name or alias are rejected with ErrAliasInUse.
// The document is persisted before Add returns.
func (r *Registry) Add(entry GameEntry) error {
	if entry.Name == "" {
		return ErrMissingName
	}
	if entry.SaveDir == "" || entry.BackupDir == "" {
		return ErrMissingDir
	}

	doc, err := r.Load()
	if err != nil {
		return err
	}

	entry.Aliases = slices.DeleteFunc(slices.Clone(entry.Aliases), func(a string) bool {
		return a == entry.Name
	})
	for _, alias := range entry.Aliases {
		if holder, taken := aliasHolder(doc, alias, entry.Name); taken {
			return errors.WithDetailf(ErrAliasInUse, "alias %q already belongs to %q", alias, holder)
		}
	}

	doc.Games[entry.Name] = entry
	return r.save(doc)
}

// AddAlias appends an alias to an existing entry.
//
// The target must be a primary name, not an alias. Adding an alias the entry
// already has is a no-op (nothing is persisted). An alias that collides with
// another entry's name or alias is rejected with ErrAliasInUse.
func (r *Registry) AddAlias(name, alias string) error {
	if name == "" || alias == "" {
		return ErrMissingName
	}

	doc, err := r.Load()
	if err != nil {
		return err
	}

	entry, ok := doc.Games[name]
	if !ok {
		return errors.WithDetailf(ErrNotFound, "no game named %q", name)
	}

	if slices.Contains(entry.Aliases, alias) {
		return nil
	}

	if holder, taken := aliasHolder(doc, alias, ""); taken {
		return errors.WithDetailf(ErrAliasInUse, "alias %q already belongs to %q", alias, holder)
	}

	entry.Aliases = append(entry.Aliases, alias)
	doc.Games[name] = entry
	return r.save(doc)
}

// Update replaces the entry matched by nameOrAlias. When an alias matches,
// the replacement is stored under the entry's primary name, not the alias.
// Returns ErrNotFound if nothing matches.
func (r *Registry) Update(nameOrAlias string, entry GameEntry) error {
	doc, err := r.Load()
	if err != nil {
		return err
	}

	existing, err := resolve(doc, nameOrAlias)
	if err != nil {
		return err
	}

	entry.Name = existing.Name
	doc.Games[existing.Name] = entry
	return r.save(doc)
}

// Remove deletes the entry matched by nameOrAlias (primary name or alias).
// Returns ErrNotFound if nothing matches.
func (r *Registry) Remove(nameOrAlias string) error {
	doc, err := r.Load()
	if err != nil {
		return err
	}

	existing, err := resolve(doc, nameOrAlias)
	if err != nil {
		return err
	}

	delete(doc.Games, existing.Name)
	return r.save(doc)
}

// aliasHolder reports whether alias collides with any primary name, or with
// an alias of any entry other than exclude. Returns the holding entry's name.
func aliasHolder(doc *Document, alias, exclude string) (string, bool) {
	if _, ok := doc.Games[alias]; ok {
		return alias, true
	}
	for name, entry := range doc.Games {
		if name == exclude {
			continue
		}
		if slices.Contains(entry.Aliases, alias) {
			return name, true
		}
	}
	return "", false
}

func defaultDocument() *Document {
	return &Document{
		Version: Version,
		Games:   make(map[string]GameEntry),
	}
}

// save persists the whole document atomically.
func (r *Registry) save(doc *Document) error {
	if err := paths.EnsureDir(filepath.Dir(r.path), 0o755); err != nil {
		return errors.Wrap(err, "creating registry directory")
	}
	return fileutil.AtomicWriteYAML(r.path, doc)
}
