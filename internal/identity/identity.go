// Package identity provides the identity providers used to default the
// installed-by setting.
package identity

import (
	"os"
	"os/user"

	"neomigrate-cli/internal/interfaces"
)

// System returns an IdentityProvider backed by the operating system user database
func System() interfaces.IdentityProvider {
	return systemProvider{}
}

type systemProvider struct{}

// CurrentUser resolves the current OS user, falling back to the USER or
// USERNAME environment variables when the user database is unavailable
// (static binaries, minimal containers).
func (systemProvider) CurrentUser() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	return os.Getenv("USERNAME")
}

// Fixed returns an IdentityProvider that always reports name. It keeps
// defaulting deterministic in tests.
func Fixed(name string) interfaces.IdentityProvider {
	return fixedProvider(name)
}

type fixedProvider string

// CurrentUser returns the fixed name
func (p fixedProvider) CurrentUser() string {
	return string(p)
}
