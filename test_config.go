package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"neomigrate-cli/internal/config"
	"neomigrate-cli/internal/identity"
	"neomigrate-cli/internal/interfaces"
	"neomigrate-cli/internal/migrations"
)

func main() {
	fmt.Println("Testing Neomigrate Configuration System")
	fmt.Println("=======================================")

	// Create a test config file
	homeDir, _ := os.UserHomeDir()
	configDir := filepath.Join(homeDir, ".config", "neomigrate")
	os.MkdirAll(configDir, 0755)

	configPath := filepath.Join(configDir, "test-config.toml")
	testConfig := `
packages_to_scan = ["migrations.manual"]
locations_to_scan = ["file:/opt/migrations", "classpath:extra"]
transaction_mode = "PER_STATEMENT"
database = "movies"
installed_by = "release-bot"
check_locations = true
classpath = ["resources"]
`

	err := os.WriteFile(configPath, []byte(testConfig), 0644)
	if err != nil {
		log.Fatalf("Failed to create test config: %v", err)
	}
	defer os.Remove(configPath)

	// Test 1: Load config from file
	fmt.Println("\n1. Testing config file loading:")
	manager := config.NewManager()
	cfg, err := manager.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Printf("   Packages: %v\n", cfg.PackagesToScan)
	fmt.Printf("   Locations: %v\n", cfg.LocationsToScan)
	fmt.Printf("   Transaction Mode: %s\n", cfg.TransactionMode)
	fmt.Printf("   Database: %s\n", cfg.Database)

	// Test 2: Environment variable precedence
	fmt.Println("\n2. Testing environment variable precedence:")
	os.Setenv("NEOMIGRATE_DATABASE", "people")
	os.Setenv("NEOMIGRATE_TRANSACTION_MODE", "PER_MIGRATION")
	defer func() {
		os.Unsetenv("NEOMIGRATE_DATABASE")
		os.Unsetenv("NEOMIGRATE_TRANSACTION_MODE")
	}()

	manager2 := config.NewManager()
	cfg2, err := manager2.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	fmt.Printf("   Database (env override): %s\n", cfg2.Database)
	fmt.Printf("   Transaction Mode (env override): %s\n", cfg2.TransactionMode)
	fmt.Printf("   Installed By (from config): %s\n", cfg2.InstalledBy)

	// Test 3: Flag precedence
	fmt.Println("\n3. Testing flag precedence:")
	manager3 := config.NewManager()
	manager3.Load(configPath)
	manager3.SetFlag("database", "products")
	manager3.SetFlag("locations_to_scan", []string{"classpath:neo4j/migrations"})

	cfg3, err := manager3.Resolve()
	if err != nil {
		log.Fatalf("Failed to resolve config: %v", err)
	}

	fmt.Printf("   Database (flag override): %s\n", cfg3.Database)
	fmt.Printf("   Locations (flag override): %v\n", cfg3.LocationsToScan)
	fmt.Printf("   Transaction Mode (from env): %s\n", cfg3.TransactionMode)

	// Test 4: Binding validation
	fmt.Println("\n4. Testing validation:")
	err = manager3.Validate(cfg3)
	if err != nil {
		fmt.Printf("   Validation failed: %v\n", err)
	} else {
		fmt.Printf("   ✓ Configuration is valid\n")
	}

	// Test 5: Invalid config
	fmt.Println("\n5. Testing invalid configuration:")
	invalidCfg := *cfg3
	invalidCfg.TransactionMode = "PER_BATCH"

	err = manager3.Validate(&invalidCfg)
	if err != nil {
		fmt.Printf("   ✓ Validation correctly caught errors: %v\n", err)
	} else {
		fmt.Printf("   ✗ Validation should have failed\n")
	}

	// Test 6: Core resolution and the pre-flight check
	fmt.Println("\n6. Testing core resolution and location validation:")
	resolved := migrations.NewConfig(migrations.Options{}, identity.System())
	fmt.Printf("   Default locations: %v\n", resolved.LocationsToScan())
	fmt.Printf("   Default transaction mode: %s\n", resolved.TransactionMode())
	fmt.Printf("   Installed by: %s\n", resolved.InstalledBy())

	noneExists := interfaces.ResourceCheckerFunc(func(string) bool { return false })
	err = migrations.ValidateLocations(resolved, noneExists, true)
	if err != nil {
		fmt.Printf("   ✓ Pre-flight check correctly rejected missing locations: %v\n", err)
	} else {
		fmt.Printf("   ✗ Pre-flight check should have failed\n")
	}

	fmt.Println("\n✓ Configuration system test completed successfully!")
}
