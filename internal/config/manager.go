package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"neomigrate-cli/internal/interfaces"
	"neomigrate-cli/internal/migrations"
)

// Manager implements the ConfigManager interface
type Manager struct {
	v     *viper.Viper
	flags map[string]interface{} // Store flag values for precedence
}

// NewManager creates a new configuration manager
func NewManager() *Manager {
	v := viper.New()
	v.SetConfigType("toml")
	v.SetEnvPrefix("NEOMIGRATE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set defaults
	setDefaults(v)

	return &Manager{
		v:     v,
		flags: make(map[string]interface{}),
	}
}

// SetConfigPath sets the configuration file path
func (m *Manager) SetConfigPath(path string) {
	if path != "" {
		m.v.SetConfigFile(expandPath(path))
	}
}

// setDefaults sets the operator-surface defaults. The logical defaults for
// the five migration settings live in migrations.NewConfig; only the
// collaborator settings default here.
func setDefaults(v *viper.Viper) {
	v.SetDefault("check_locations", true)
	v.SetDefault("classpath", []string{"."})
}

// Load loads configuration from the specified path
func (m *Manager) Load(path string) (*interfaces.Config, error) {
	if path == "" {
		// Use default config path
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, ".config", "neomigrate", "config.toml")
	}

	// Expand tilde in path
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Check if config file exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		// Config file doesn't exist, use defaults
		return m.getConfigFromViper(), nil
	}

	m.v.SetConfigFile(path)

	if err := m.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return m.getConfigFromViper(), nil
}

// SetFlag sets a flag value for precedence resolution
func (m *Manager) SetFlag(key string, value interface{}) {
	m.flags[key] = value
}

// Resolve applies precedence rules (flags > env > config > defaults)
func (m *Manager) Resolve() (*interfaces.Config, error) {
	config := m.getConfigFromViper()

	// Apply flag overrides (highest precedence)
	m.applyFlagOverrides(config)

	return config, nil
}

// applyFlagOverrides applies flag values over the configuration
func (m *Manager) applyFlagOverrides(config *interfaces.Config) {
	if val, exists := m.flags["packages_to_scan"]; exists && val != nil {
		if list, ok := val.([]string); ok {
			config.PackagesToScan = list
		}
	}

	if val, exists := m.flags["locations_to_scan"]; exists && val != nil {
		if list, ok := val.([]string); ok {
			config.LocationsToScan = list
		}
	}

	if val, exists := m.flags["transaction_mode"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			config.TransactionMode = str
		}
	}

	if val, exists := m.flags["database"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			config.Database = str
		}
	}

	if val, exists := m.flags["installed_by"]; exists && val != nil {
		if str, ok := val.(string); ok && str != "" {
			config.InstalledBy = str
		}
	}

	if val, exists := m.flags["check_locations"]; exists && val != nil {
		if b, ok := val.(bool); ok {
			config.CheckLocations = b
		}
	}

	if val, exists := m.flags["classpath"]; exists && val != nil {
		if list, ok := val.([]string); ok && len(list) > 0 {
			config.Classpath = expandPaths(list)
		}
	}
}

// Validate validates the raw configuration values. Defaulting itself never
// fails; this catches binding mistakes before resolution.
func (m *Manager) Validate(config *interfaces.Config) error {
	if config == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if _, err := migrations.ParseTransactionMode(config.TransactionMode); err != nil {
		return err
	}

	return nil
}

// getConfigFromViper converts viper configuration to Config struct
// This handles env > config > defaults precedence (flags are applied separately)
func (m *Manager) getConfigFromViper() *interfaces.Config {
	return &interfaces.Config{
		PackagesToScan:  m.v.GetStringSlice("packages_to_scan"),
		LocationsToScan: m.v.GetStringSlice("locations_to_scan"),
		TransactionMode: m.v.GetString("transaction_mode"),
		Database:        m.v.GetString("database"),
		InstalledBy:     m.v.GetString("installed_by"),
		CheckLocations:  m.v.GetBool("check_locations"),
		Classpath:       expandPaths(m.v.GetStringSlice("classpath")),
	}
}

// expandPaths expands ~ in every path of the list
func expandPaths(paths []string) []string {
	expanded := make([]string, 0, len(paths))
	for _, path := range paths {
		expanded = append(expanded, expandPath(path))
	}
	return expanded
}

// expandPath expands ~ to user home directory
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path // Return original path if we can't get home dir
	}

	return filepath.Join(homeDir, path[2:])
}
