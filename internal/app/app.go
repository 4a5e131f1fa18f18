package app

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"neomigrate-cli/internal/config"
	"neomigrate-cli/internal/identity"
	"neomigrate-cli/internal/interactive"
	"neomigrate-cli/internal/interfaces"
	"neomigrate-cli/internal/migrations"
	"neomigrate-cli/internal/resource"
	"neomigrate-cli/internal/scaffold"
	"neomigrate-cli/pkg/models"
)

// Validate resolves the configuration for the request and runs the
// pre-flight location check against the local filesystem
func Validate(request *models.SetupRequest) error {
	cfg, raw, err := resolveConfig(request)
	if err != nil {
		return err
	}

	checker := resource.NewDirChecker(raw.Classpath...)
	if err := migrations.ValidateLocations(cfg, checker, raw.CheckLocations); err != nil {
		return err
	}

	if raw.CheckLocations {
		fmt.Println("Configuration is valid.")
	} else {
		fmt.Println("Configuration accepted without pre-flight checks (check_locations is off).")
	}
	return nil
}

// Info prints the resolved configuration as an aligned table
func Info(request *models.SetupRequest) error {
	cfg, raw, err := resolveConfig(request)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SETTING\tVALUE")
	fmt.Fprintln(w, "-------\t-----")
	fmt.Fprintf(w, "packages to scan\t%s\n", formatList(cfg.PackagesToScan()))
	fmt.Fprintf(w, "locations to scan\t%s\n", formatList(cfg.LocationsToScan()))
	fmt.Fprintf(w, "transaction mode\t%s\n", cfg.TransactionMode())
	fmt.Fprintf(w, "database\t%s\n", formatDatabase(cfg.Database()))
	fmt.Fprintf(w, "installed by\t%s\n", cfg.InstalledBy())
	fmt.Fprintf(w, "check locations\t%t\n", raw.CheckLocations)
	fmt.Fprintf(w, "classpath\t%s\n", formatList(raw.Classpath))

	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// Init writes a starter config file, collecting values interactively unless
// prompts are disabled
func Init(request *models.SetupRequest, prompts bool, force bool) error {
	manager := config.NewManager()
	if _, err := manager.Load(request.ConfigPath); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	applyRequestFlags(manager, request)

	raw, err := manager.Resolve()
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}
	if len(raw.LocationsToScan) == 0 {
		raw.LocationsToScan = []string{migrations.DefaultLocation}
	}
	if raw.TransactionMode == "" {
		raw.TransactionMode = string(migrations.TransactionModePerMigration)
	}

	prompter := interactive.NewPrompter()
	if prompts {
		raw, err = prompter.CollectSetup(raw)
		if err != nil {
			return fmt.Errorf("failed to collect setup: %w", err)
		}
	}
	if err := manager.Validate(raw); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	path := request.ConfigPath
	if path == "" {
		if path, err = defaultConfigPath(); err != nil {
			return err
		}
	}

	if _, err := os.Stat(path); err == nil && !force {
		if !prompts {
			return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
		}
		overwrite, err := prompter.ConfirmOverwrite(path)
		if err != nil {
			return fmt.Errorf("user cancelled operation: %w", err)
		}
		if !overwrite {
			fmt.Println("Keeping the existing config file.")
			return nil
		}
	}

	if err := scaffold.Write(path, raw); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	fmt.Printf("Wrote %s\n", path)
	return nil
}

// resolveConfig loads, resolves and defaults the configuration for a request
func resolveConfig(request *models.SetupRequest) (migrations.Config, *interfaces.Config, error) {
	manager := config.NewManager()

	if _, err := manager.Load(request.ConfigPath); err != nil {
		return migrations.Config{}, nil, fmt.Errorf("configuration error: %w", err)
	}

	applyRequestFlags(manager, request)

	raw, err := manager.Resolve()
	if err != nil {
		return migrations.Config{}, nil, fmt.Errorf("configuration error: %w", err)
	}
	if err := manager.Validate(raw); err != nil {
		return migrations.Config{}, nil, fmt.Errorf("configuration error: %w", err)
	}

	// Validated above, cannot fail here
	mode, _ := migrations.ParseTransactionMode(raw.TransactionMode)

	cfg := migrations.NewConfig(migrations.Options{
		PackagesToScan:  raw.PackagesToScan,
		LocationsToScan: raw.LocationsToScan,
		TransactionMode: mode,
		Database:        raw.Database,
		InstalledBy:     raw.InstalledBy,
	}, identity.System())

	return cfg, raw, nil
}

// applyRequestFlags forwards the explicitly given command line settings to
// the manager for precedence resolution
func applyRequestFlags(manager *config.Manager, request *models.SetupRequest) {
	if request.PackagesRequested {
		manager.SetFlag("packages_to_scan", request.PackagesToScan)
	}
	if request.LocationsRequested {
		manager.SetFlag("locations_to_scan", request.LocationsToScan)
	}
	if request.TransactionModeRequested {
		manager.SetFlag("transaction_mode", request.TransactionMode)
	}
	if request.DatabaseRequested {
		manager.SetFlag("database", request.Database)
	}
	if request.InstalledByRequested {
		manager.SetFlag("installed_by", request.InstalledBy)
	}
	if request.CheckLocationsRequested {
		manager.SetFlag("check_locations", request.CheckLocations)
	}
	if request.ClasspathRequested {
		manager.SetFlag("classpath", request.Classpath)
	}
}

// defaultConfigPath returns the default config file location
func defaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "neomigrate", "config.toml"), nil
}

// formatList renders a string list for the info table
func formatList(list []string) string {
	if len(list) == 0 {
		return "(none)"
	}
	return strings.Join(list, ", ")
}

// formatDatabase renders the database setting for the info table
func formatDatabase(database string) string {
	if database == "" {
		return "(default)"
	}
	return database
}
