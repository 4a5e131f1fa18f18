package interfaces

// Config represents the raw migration setup configuration as bound from the
// config file, environment and flags, before defaulting and resolution
type Config struct {
	PackagesToScan  []string `toml:"packages_to_scan"`
	LocationsToScan []string `toml:"locations_to_scan"`
	TransactionMode string   `toml:"transaction_mode"`
	Database        string   `toml:"database"`
	InstalledBy     string   `toml:"installed_by"`
	CheckLocations  bool     `toml:"check_locations"`
	Classpath       []string `toml:"classpath"`
}

// ConfigManager handles configuration loading and resolution
type ConfigManager interface {
	// Load loads configuration from the specified path
	Load(path string) (*Config, error)

	// Resolve applies precedence rules (flags > env > config > defaults)
	Resolve() (*Config, error)

	// Validate validates the raw configuration values
	Validate(config *Config) error
}
