package migrations

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"neomigrate-cli/internal/identity"
)

// recordingChecker answers existence probes from a fixed map and records
// every probed location in order.
type recordingChecker struct {
	exists map[string]bool
	probed []string
}

func (c *recordingChecker) Exists(location string) bool {
	c.probed = append(c.probed, location)
	return c.exists[location]
}

func TestValidateLocations_LenientModeAcceptsAnything(t *testing.T) {
	checker := &recordingChecker{}

	// Even a completely empty configuration passes without a single probe
	cfg := NewConfig(Options{
		PackagesToScan:  []string{},
		LocationsToScan: []string{},
	}, identity.Fixed("someone"))

	if err := ValidateLocations(cfg, checker, false); err != nil {
		t.Errorf("ValidateLocations() in lenient mode failed: %v", err)
	}
	if len(checker.probed) != 0 {
		t.Errorf("lenient mode probed locations: %v", checker.probed)
	}
}

func TestValidateLocations_NothingConfigured(t *testing.T) {
	checker := &recordingChecker{}

	cfg := NewConfig(Options{
		PackagesToScan:  []string{},
		LocationsToScan: []string{},
	}, identity.Fixed("someone"))

	err := ValidateLocations(cfg, checker, true)
	if err == nil {
		t.Fatal("expected validation to fail for an empty configuration")
	}
	if err.Error() != "Neither locations nor packages to scan are configured." {
		t.Errorf("unexpected reason: %q", err.Error())
	}
	if !errors.Is(err, ErrUnusableConfig) {
		t.Errorf("error does not match ErrUnusableConfig: %v", err)
	}
	// The empty configuration is a configuration error, not a resource
	// existence error, and must be reported without any lookup.
	if len(checker.probed) != 0 {
		t.Errorf("empty configuration probed locations: %v", checker.probed)
	}
}

func TestValidateLocations_PackagesAreSufficient(t *testing.T) {
	checker := &recordingChecker{}

	cfg := NewConfig(Options{
		PackagesToScan:  []string{"migrations.manual"},
		LocationsToScan: []string{},
	}, identity.Fixed("someone"))

	if err := ValidateLocations(cfg, checker, true); err != nil {
		t.Errorf("ValidateLocations() failed with a package configured: %v", err)
	}
	if len(checker.probed) != 0 {
		t.Errorf("package based configuration probed locations: %v", checker.probed)
	}
}

func TestValidateLocations_FirstExistingLocationShortCircuits(t *testing.T) {
	checker := &recordingChecker{exists: map[string]bool{
		"file:a": false,
		"file:b": true,
		"file:c": true,
	}}

	cfg := NewConfig(Options{
		PackagesToScan:  []string{},
		LocationsToScan: []string{"file:a", "file:b", "file:c"},
	}, identity.Fixed("someone"))

	if err := ValidateLocations(cfg, checker, true); err != nil {
		t.Fatalf("ValidateLocations() failed: %v", err)
	}

	// file:a is probed before file:b, and file:c is never probed
	if diff := cmp.Diff([]string{"file:a", "file:b"}, checker.probed); diff != "" {
		t.Errorf("probe sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateLocations_NoLocationExists(t *testing.T) {
	checker := &recordingChecker{exists: map[string]bool{}}

	cfg := NewConfig(Options{
		PackagesToScan:  []string{},
		LocationsToScan: []string{"file:a"},
	}, identity.Fixed("someone"))

	err := ValidateLocations(cfg, checker, true)
	if err == nil {
		t.Fatal("expected validation to fail when no location exists")
	}
	if err.Error() != "No package to scan is configured and none of the configured locations exists." {
		t.Errorf("unexpected reason: %q", err.Error())
	}
	if !errors.Is(err, ErrUnusableConfig) {
		t.Errorf("error does not match ErrUnusableConfig: %v", err)
	}
	if diff := cmp.Diff([]string{"file:a"}, checker.probed); diff != "" {
		t.Errorf("probe sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateLocations_DefaultConfigDependsOnDefaultLocation(t *testing.T) {
	cfg := DefaultConfig(identity.Fixed("someone"))

	t.Run("default location exists", func(t *testing.T) {
		checker := &recordingChecker{exists: map[string]bool{DefaultLocation: true}}
		if err := ValidateLocations(cfg, checker, true); err != nil {
			t.Errorf("ValidateLocations() failed: %v", err)
		}
	})

	t.Run("default location missing", func(t *testing.T) {
		checker := &recordingChecker{}
		err := ValidateLocations(cfg, checker, true)
		if !errors.Is(err, ErrUnusableConfig) {
			t.Errorf("expected ErrUnusableConfig, got %v", err)
		}
	})
}

func TestValidateLocations_Idempotent(t *testing.T) {
	cfg := NewConfig(Options{
		PackagesToScan:  []string{},
		LocationsToScan: []string{"file:a", "file:b"},
	}, identity.Fixed("someone"))

	first := &recordingChecker{exists: map[string]bool{"file:b": true}}
	second := &recordingChecker{exists: map[string]bool{"file:b": true}}

	errFirst := ValidateLocations(cfg, first, true)
	errSecond := ValidateLocations(cfg, second, true)

	if (errFirst == nil) != (errSecond == nil) {
		t.Errorf("outcomes differ across runs: %v vs %v", errFirst, errSecond)
	}
	if diff := cmp.Diff(first.probed, second.probed); diff != "" {
		t.Errorf("probe sequences differ across runs (-first +second):\n%s", diff)
	}
}
