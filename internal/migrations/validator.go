package migrations

import "neomigrate-cli/internal/interfaces"

// ValidateLocations decides whether cfg offers at least one viable discovery
// path for migrations.
//
// With checkLocations false the caller has opted out of pre-flight checking
// and any configuration is accepted, including a completely empty one.
//
// Otherwise an empty configuration is rejected before any resource lookup,
// and a configuration with at least one package is accepted without probing
// any location. When only locations are configured they are probed strictly
// in the order given, one at a time; the first existing location accepts the
// configuration and the remaining ones are not probed. Given the same inputs
// and the same existence answers, the outcome and the probed locations are
// identical across runs.
func ValidateLocations(cfg Config, checker interfaces.ResourceChecker, checkLocations bool) error {
	if !checkLocations {
		return nil
	}

	if !cfg.HasPlacesToLookForMigrations() {
		return newNothingConfiguredError()
	}

	// Package based discovery is assumed resolvable at this stage; the
	// actual scan happens elsewhere.
	if len(cfg.packagesToScan) > 0 {
		return nil
	}

	for _, location := range cfg.locationsToScan {
		if checker.Exists(location) {
			return nil
		}
	}
	return newNoLocationExistsError()
}
