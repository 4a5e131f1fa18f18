package migrations

import "errors"

// Fixed validation failure reasons. Downstream tooling matches on the exact
// wording, so these are part of the contract and must not be reworded.
const (
	reasonNothingConfigured = "Neither locations nor packages to scan are configured."
	reasonNoLocationExists  = "No package to scan is configured and none of the configured locations exists."
)

// ErrUnusableConfig is the category for configurations under which no
// migrations could ever be discovered
var ErrUnusableConfig = errors.New("unusable migrations configuration")

// ValidationError reports a configuration defect that prevents any migration
// from being discovered. It is terminal and non-retryable: re-running
// validation over the same static configuration cannot change the outcome.
type ValidationError struct {
	Reason   string
	Guidance string
}

// Error returns the fixed reason verbatim
func (e *ValidationError) Error() string {
	return e.Reason
}

// Is matches the ErrUnusableConfig category for errors.Is
func (e *ValidationError) Is(target error) bool {
	return target == ErrUnusableConfig
}

func newNothingConfiguredError() *ValidationError {
	return &ValidationError{
		Reason: reasonNothingConfigured,
		Guidance: "Configure at least one package with --package or one location with --location, " +
			"or set packages_to_scan / locations_to_scan in the config file.",
	}
}

func newNoLocationExistsError() *ValidationError {
	return &ValidationError{
		Reason: reasonNoLocationExists,
		Guidance: "Create one of the configured scan roots or point --location at an existing one. " +
			"Locations may be prefixed with classpath: or file:; unprefixed locations are " +
			"resolved against the classpath search roots.",
	}
}
