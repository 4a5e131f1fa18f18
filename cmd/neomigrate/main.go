package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"neomigrate-cli/internal/app"
	"neomigrate-cli/internal/migrations"
	"neomigrate-cli/pkg/models"
)

// Build-time variables injected via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	date      = "unknown"
	goVersion = runtime.Version()
)

var rootCmd = &cobra.Command{
	Use:   "neomigrate",
	Short: "Resolve and validate the configuration of a Neo4j migration run",
	Long: `Neomigrate resolves the configuration that drives a database migration run:
which packages and locations are scanned for migrations, at which transaction
granularity they are applied, against which database, and under which
installed-by identity.

Settings are read from the config file (default ~/.config/neomigrate/config.toml),
NEOMIGRATE_* environment variables and command line flags, in increasing order
of precedence. Running without a subcommand validates the resolved
configuration, the same as 'neomigrate validate'.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Check if version flag is set
		if versionFlag, _ := cmd.Flags().GetBool("version"); versionFlag {
			versionCmd.Run(cmd, args)
			return nil
		}

		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Validate(request)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  "Print detailed version information including build version, commit, date, and platform details.",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("neomigrate version %s\n", version)
		fmt.Printf("  commit: %s\n", commit)
		fmt.Printf("  built: %s\n", date)
		fmt.Printf("  go version: %s\n", goVersion)
		fmt.Printf("  platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the migration setup",
	Long: `Resolve the configuration and verify that at least one discovery path for
migrations is viable. With --check-locations=false any configuration is
accepted without probing the filesystem.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Validate(request)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the resolved configuration",
	Long:  "Show every setting after defaults, config file, environment and flags have been applied.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		return app.Info(request)
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter config file",
	Long: `Write a commented config file with the current settings. By default the
values are collected interactively; use --yes to take them from flags,
environment and an existing config file without prompting.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildRequestFromFlags(cmd)
		if err != nil {
			return fmt.Errorf("invalid arguments: %w", err)
		}

		noPrompts, err := cmd.Flags().GetBool("yes")
		if err != nil {
			return fmt.Errorf("invalid yes flag: %w", err)
		}

		force, err := cmd.Flags().GetBool("force")
		if err != nil {
			return fmt.Errorf("invalid force flag: %w", err)
		}

		return app.Init(request, !noPrompts, force)
	},
}

func init() {
	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(initCmd)

	// Add command specific flags
	initCmd.Flags().BoolP("yes", "y", false, "noninteractive mode - use resolved values without prompts")
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing config file without asking")

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file path (default ~/.config/neomigrate/config.toml)")
	rootCmd.PersistentFlags().StringSliceP("package", "p", []string{}, "packages to scan for class based migrations")
	rootCmd.PersistentFlags().StringSliceP("location", "l", []string{}, "locations to scan, optionally prefixed with classpath: or file:")
	rootCmd.PersistentFlags().StringP("transaction-mode", "t", "", "transaction granularity (PER_MIGRATION or PER_STATEMENT)")
	rootCmd.PersistentFlags().StringP("database", "d", "", "target database (empty for the default database)")
	rootCmd.PersistentFlags().String("installed-by", "", "identity recorded against applied migrations (default current OS user)")
	rootCmd.PersistentFlags().Bool("check-locations", true, "verify that at least one scan root exists")
	rootCmd.PersistentFlags().StringSlice("classpath", []string{}, "directories classpath: locations are resolved against")

	// Main command flags
	rootCmd.Flags().BoolP("version", "v", false, "print version information")
}

// buildRequestFromFlags constructs a SetupRequest from command flags
func buildRequestFromFlags(cmd *cobra.Command) (*models.SetupRequest, error) {
	request := models.NewSetupRequest()

	// Extract flags
	var err error

	if request.ConfigPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, fmt.Errorf("invalid config flag: %w", err)
	}

	if request.PackagesToScan, err = cmd.Flags().GetStringSlice("package"); err != nil {
		return nil, fmt.Errorf("invalid package flag: %w", err)
	}
	request.PackagesRequested = cmd.Flags().Changed("package")

	if request.LocationsToScan, err = cmd.Flags().GetStringSlice("location"); err != nil {
		return nil, fmt.Errorf("invalid location flag: %w", err)
	}
	request.LocationsRequested = cmd.Flags().Changed("location")

	if request.TransactionMode, err = cmd.Flags().GetString("transaction-mode"); err != nil {
		return nil, fmt.Errorf("invalid transaction-mode flag: %w", err)
	}
	request.TransactionModeRequested = cmd.Flags().Changed("transaction-mode")

	if request.Database, err = cmd.Flags().GetString("database"); err != nil {
		return nil, fmt.Errorf("invalid database flag: %w", err)
	}
	request.DatabaseRequested = cmd.Flags().Changed("database")

	if request.InstalledBy, err = cmd.Flags().GetString("installed-by"); err != nil {
		return nil, fmt.Errorf("invalid installed-by flag: %w", err)
	}
	request.InstalledByRequested = cmd.Flags().Changed("installed-by")

	if request.CheckLocations, err = cmd.Flags().GetBool("check-locations"); err != nil {
		return nil, fmt.Errorf("invalid check-locations flag: %w", err)
	}
	request.CheckLocationsRequested = cmd.Flags().Changed("check-locations")

	if request.Classpath, err = cmd.Flags().GetStringSlice("classpath"); err != nil {
		return nil, fmt.Errorf("invalid classpath flag: %w", err)
	}
	request.ClasspathRequested = cmd.Flags().Changed("classpath")

	return request, nil
}

func main() {
	// Disable usage on error to show only our custom error messages
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		var validationErr *migrations.ValidationError
		if errors.As(err, &validationErr) && validationErr.Guidance != "" {
			fmt.Fprintf(os.Stderr, "\nSuggestion: %s\n", validationErr.Guidance)
		}

		os.Exit(1)
	}
}
