package interactive

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"neomigrate-cli/internal/interfaces"
	"neomigrate-cli/internal/migrations"
)

// Prompter handles interactive collection of migration setup values
type Prompter struct{}

// NewPrompter creates a new interactive prompter
func NewPrompter() *Prompter {
	return &Prompter{}
}

// CollectSetup asks for each setting, offering the current values as defaults
func (p *Prompter) CollectSetup(defaults *interfaces.Config) (*interfaces.Config, error) {
	result := *defaults

	var locations string
	if err := survey.AskOne(&survey.Input{
		Message: "Locations to scan (comma separated):",
		Default: strings.Join(defaults.LocationsToScan, ", "),
		Help:    "Scan roots for migration scripts, optionally prefixed with classpath: or file:",
	}, &locations); err != nil {
		return nil, err
	}
	result.LocationsToScan = splitList(locations)

	var packages string
	if err := survey.AskOne(&survey.Input{
		Message: "Packages to scan (comma separated, empty for none):",
		Default: strings.Join(defaults.PackagesToScan, ", "),
		Help:    "Namespaces scanned for class based migrations",
	}, &packages); err != nil {
		return nil, err
	}
	result.PackagesToScan = splitList(packages)

	mode := defaults.TransactionMode
	if mode == "" {
		mode = string(migrations.TransactionModePerMigration)
	}
	if err := survey.AskOne(&survey.Select{
		Message: "Transaction mode:",
		Options: []string{
			string(migrations.TransactionModePerMigration),
			string(migrations.TransactionModePerStatement),
		},
		Default: mode,
		Help:    "PER_MIGRATION commits a migration as a whole, PER_STATEMENT commits every statement separately",
	}, &result.TransactionMode); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Target database (empty for the default database):",
		Default: defaults.Database,
	}, &result.Database); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Installed by (empty for the current OS user):",
		Default: defaults.InstalledBy,
	}, &result.InstalledBy); err != nil {
		return nil, err
	}

	if err := survey.AskOne(&survey.Confirm{
		Message: "Verify that a scan root exists before running migrations?",
		Default: defaults.CheckLocations,
	}, &result.CheckLocations); err != nil {
		return nil, err
	}

	return &result, nil
}

// ConfirmOverwrite asks before replacing an existing config file
func (p *Prompter) ConfirmOverwrite(path string) (bool, error) {
	overwrite := false
	err := survey.AskOne(&survey.Confirm{
		Message: fmt.Sprintf("Config file %s already exists. Overwrite?", path),
		Default: false,
	}, &overwrite)
	return overwrite, err
}

// splitList splits a comma separated answer into trimmed, non-empty entries
func splitList(answer string) []string {
	parts := strings.Split(answer, ",")
	list := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			list = append(list, trimmed)
		}
	}
	return list
}
