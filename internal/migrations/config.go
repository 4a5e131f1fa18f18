package migrations

import (
	"fmt"
	"slices"
	"strings"

	"neomigrate-cli/internal/interfaces"
)

// Location prefixes understood by resource checkers. Locations without a
// prefix are treated as classpath resources.
const (
	PrefixClasspath  = "classpath"
	PrefixFilesystem = "file"
)

// DefaultLocation is the well-known scan root used when no locations are configured
const DefaultLocation = "classpath:neo4j/migrations"

// TransactionMode is the granularity at which migration statements are committed
type TransactionMode string

const (
	// TransactionModePerMigration runs all statements of a migration in one
	// transaction. May need more memory, but either the migration is applied
	// as a whole or not at all.
	TransactionModePerMigration TransactionMode = "PER_MIGRATION"

	// TransactionModePerStatement runs each statement in a separate
	// transaction. May leave the database in an inconsistent state when one
	// statement fails.
	TransactionModePerStatement TransactionMode = "PER_STATEMENT"
)

// ParseTransactionMode maps a raw setting value to a TransactionMode.
// The empty string maps to the default mode; anything else unknown is a
// binding error to be reported by the caller.
func ParseTransactionMode(value string) (TransactionMode, error) {
	switch TransactionMode(strings.ToUpper(strings.TrimSpace(value))) {
	case "", TransactionModePerMigration:
		return TransactionModePerMigration, nil
	case TransactionModePerStatement:
		return TransactionModePerStatement, nil
	}
	return "", fmt.Errorf("invalid transaction mode: %q (must be %s or %s)",
		value, TransactionModePerMigration, TransactionModePerStatement)
}

// Options collects the optional settings for one migration run setup. The
// zero value is valid: every unset field falls back to a documented default
// in NewConfig. A nil slice means "not configured" and picks up the default;
// an explicitly empty slice stays empty.
type Options struct {
	PackagesToScan  []string
	LocationsToScan []string
	TransactionMode TransactionMode
	Database        string
	InstalledBy     string
}

// Config is the fully resolved, immutable configuration for one migration
// run setup. It is safe to share across goroutines without synchronization;
// a new run requires a new instance.
type Config struct {
	packagesToScan  []string
	locationsToScan []string
	transactionMode TransactionMode
	database        string
	installedBy     string
}

// NewConfig resolves opts against the documented defaults:
//
//   - packages to scan: empty
//   - locations to scan: a single entry, DefaultLocation
//   - transaction mode: TransactionModePerMigration
//   - database: empty, meaning the default database
//   - installed by: whatever the identity provider reports
//
// NewConfig is the single source of truth for defaulting and never fails;
// whether the result is actually usable is decided separately by
// ValidateLocations.
func NewConfig(opts Options, identity interfaces.IdentityProvider) Config {
	cfg := Config{
		packagesToScan:  slices.Clone(opts.PackagesToScan),
		locationsToScan: slices.Clone(opts.LocationsToScan),
		transactionMode: opts.TransactionMode,
		database:        strings.TrimSpace(opts.Database),
		installedBy:     opts.InstalledBy,
	}
	if cfg.packagesToScan == nil {
		cfg.packagesToScan = []string{}
	}
	if cfg.locationsToScan == nil {
		cfg.locationsToScan = []string{DefaultLocation}
	}
	if cfg.transactionMode == "" {
		cfg.transactionMode = TransactionModePerMigration
	}
	if cfg.installedBy == "" && identity != nil {
		cfg.installedBy = identity.CurrentUser()
	}
	return cfg
}

// DefaultConfig returns the configuration with every setting at its default
func DefaultConfig(identity interfaces.IdentityProvider) Config {
	return NewConfig(Options{}, identity)
}

// PackagesToScan returns the configured packages in insertion order.
// Never nil.
func (c Config) PackagesToScan() []string {
	return slices.Clone(c.packagesToScan)
}

// LocationsToScan returns the configured locations in insertion order.
// Never nil.
func (c Config) LocationsToScan() []string {
	return slices.Clone(c.locationsToScan)
}

// TransactionMode returns the configured transaction granularity
func (c Config) TransactionMode() TransactionMode {
	return c.transactionMode
}

// Database returns the target database. Empty means the default database.
func (c Config) Database() string {
	return c.database
}

// InstalledBy returns the identity recorded against applied migrations
func (c Config) InstalledBy() string {
	return c.installedBy
}

// HasPlacesToLookForMigrations reports whether at least one package or
// location is configured
func (c Config) HasPlacesToLookForMigrations() bool {
	return len(c.packagesToScan) > 0 || len(c.locationsToScan) > 0
}

// Equal reports whether two configurations are interchangeable: all five
// settings must match. Value semantics, not identity.
func (c Config) Equal(other Config) bool {
	return slices.Equal(c.packagesToScan, other.packagesToScan) &&
		slices.Equal(c.locationsToScan, other.locationsToScan) &&
		c.transactionMode == other.transactionMode &&
		c.database == other.database &&
		c.installedBy == other.installedBy
}

// ParseLocation splits a location string into its prefix and path. Locations
// without a recognized prefix are treated as classpath-relative.
func ParseLocation(location string) (prefix string, path string) {
	before, after, found := strings.Cut(location, ":")
	if found {
		switch strings.ToLower(strings.TrimSpace(before)) {
		case PrefixFilesystem:
			return PrefixFilesystem, strings.TrimSpace(after)
		case PrefixClasspath:
			return PrefixClasspath, strings.TrimSpace(after)
		}
	}
	return PrefixClasspath, strings.TrimSpace(location)
}
