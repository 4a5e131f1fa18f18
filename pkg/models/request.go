package models

// SetupRequest represents the raw inputs for one migration run setup
type SetupRequest struct {
	ConfigPath      string
	PackagesToScan  []string
	LocationsToScan []string
	TransactionMode string
	Database        string
	InstalledBy     string
	CheckLocations  bool
	Classpath       []string

	// Track which settings were explicitly given on the command line, so
	// unset flags do not mask config file or environment values.
	PackagesRequested        bool
	LocationsRequested       bool
	TransactionModeRequested bool
	DatabaseRequested        bool
	InstalledByRequested     bool
	CheckLocationsRequested  bool
	ClasspathRequested       bool
}

// NewSetupRequest creates a request with the command line defaults applied
func NewSetupRequest() *SetupRequest {
	return &SetupRequest{
		PackagesToScan:  []string{},
		LocationsToScan: []string{},
		Classpath:       []string{},
		CheckLocations:  true,
	}
}
