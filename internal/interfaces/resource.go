package interfaces

// ResourceChecker reports whether a scan location resolves to an existing
// resource. Implementations own the interpretation of the classpath: and
// file: prefixes and any timeout policy for slow lookups.
type ResourceChecker interface {
	// Exists reports whether the given location exists
	Exists(location string) bool
}

// ResourceCheckerFunc adapts a plain function to the ResourceChecker interface
type ResourceCheckerFunc func(location string) bool

// Exists calls f(location)
func (f ResourceCheckerFunc) Exists(location string) bool {
	return f(location)
}

// IdentityProvider supplies the identity recorded as installed-by when none
// is configured explicitly
type IdentityProvider interface {
	// CurrentUser returns the identity of the current user
	CurrentUser() string
}
