// Package scaffold renders the starter configuration file written by the
// init command.
package scaffold

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"neomigrate-cli/internal/interfaces"
)

const configTemplate = `# neomigrate configuration
#
# Every value can be overridden with a NEOMIGRATE_* environment variable or
# the matching command line flag.

# Namespaces scanned for class based migrations. Empty by default.
packages_to_scan = [{{ range $i, $p := .PackagesToScan }}{{ if $i }}, {{ end }}{{ $p | quote }}{{ end }}]

# Scan roots for migration scripts. Entries may be prefixed with classpath:
# or file:; unprefixed entries are treated as classpath resources.
locations_to_scan = [{{ range $i, $l := .LocationsToScan }}{{ if $i }}, {{ end }}{{ $l | quote }}{{ end }}]

# PER_MIGRATION commits a migration as a whole, PER_STATEMENT commits every
# statement separately.
transaction_mode = {{ .TransactionMode | default "PER_MIGRATION" | quote }}

{{ if .Database -}}
database = {{ .Database | quote }}
{{- else -}}
# database = "neo4j"        # empty means the default database
{{- end }}

{{ if .InstalledBy -}}
installed_by = {{ .InstalledBy | quote }}
{{- else -}}
# installed_by = "ci-bot"   # empty means the current OS user
{{- end }}

# Verify before a run that at least one scan root exists.
check_locations = {{ .CheckLocations }}

# Directories classpath: locations are resolved against, in order.
classpath = [{{ range $i, $d := .Classpath }}{{ if $i }}, {{ end }}{{ $d | quote }}{{ end }}]
`

// Render produces the config file content for the given settings
func Render(cfg *interfaces.Config) (string, error) {
	tmpl, err := template.New("config").Funcs(sprig.TxtFuncMap()).Parse(configTemplate)
	if err != nil {
		return "", fmt.Errorf("failed to parse config template: %w", err)
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, cfg); err != nil {
		return "", fmt.Errorf("failed to render config template: %w", err)
	}
	return buf.String(), nil
}

// Write renders cfg and writes it to path, creating parent directories as needed
func Write(path string, cfg *interfaces.Config) error {
	content, err := Render(cfg)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory %s: %w", dir, err)
		}
	}

	return os.WriteFile(path, []byte(content), 0644)
}
