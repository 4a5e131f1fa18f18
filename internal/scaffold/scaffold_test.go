package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"neomigrate-cli/internal/config"
	"neomigrate-cli/internal/interfaces"
)

func TestRender(t *testing.T) {
	cfg := &interfaces.Config{
		PackagesToScan:  []string{"migrations.manual"},
		LocationsToScan: []string{"classpath:neo4j/migrations", "file:/opt/migrations"},
		TransactionMode: "PER_STATEMENT",
		Database:        "movies",
		InstalledBy:     "release-bot",
		CheckLocations:  true,
		Classpath:       []string{"."},
	}

	content, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	for _, want := range []string{
		`packages_to_scan = ["migrations.manual"]`,
		`locations_to_scan = ["classpath:neo4j/migrations", "file:/opt/migrations"]`,
		`transaction_mode = "PER_STATEMENT"`,
		`database = "movies"`,
		`installed_by = "release-bot"`,
		`check_locations = true`,
		`classpath = ["."]`,
	} {
		if !strings.Contains(content, want) {
			t.Errorf("rendered config missing %q:\n%s", want, content)
		}
	}
}

func TestRender_OptionalSettingsCommentedOut(t *testing.T) {
	cfg := &interfaces.Config{
		LocationsToScan: []string{"classpath:neo4j/migrations"},
		CheckLocations:  true,
		Classpath:       []string{"."},
	}

	content, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render() failed: %v", err)
	}

	if !strings.Contains(content, `# database =`) {
		t.Errorf("rendered config should comment out the unset database:\n%s", content)
	}
	if !strings.Contains(content, `# installed_by =`) {
		t.Errorf("rendered config should comment out the unset installed_by:\n%s", content)
	}
	// An unset transaction mode still gets the documented default written
	if !strings.Contains(content, `transaction_mode = "PER_MIGRATION"`) {
		t.Errorf("rendered config missing the default transaction mode:\n%s", content)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "nested", "config.toml")

	cfg := &interfaces.Config{
		PackagesToScan:  []string{"migrations.manual"},
		LocationsToScan: []string{"file:/opt/migrations"},
		TransactionMode: "PER_STATEMENT",
		Database:        "movies",
		InstalledBy:     "release-bot",
		CheckLocations:  false,
		Classpath:       []string{"resources"},
	}

	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write() failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Write() did not create %s: %v", path, err)
	}

	// The written file must load back to the same settings
	loaded, err := config.NewManager().Load(path)
	if err != nil {
		t.Fatalf("failed to load written config: %v", err)
	}

	if diff := cmp.Diff(cfg, loaded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}
