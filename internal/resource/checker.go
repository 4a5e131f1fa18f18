// Package resource implements the resource existence checks used during the
// pre-flight validation of scan locations.
package resource

import (
	"io/fs"
	"os"
	"strings"

	"neomigrate-cli/internal/migrations"
)

// Checker resolves classpath: and file: locations against the local
// filesystem. file: locations are checked as absolute or working-directory
// relative paths; classpath: locations are resolved against an ordered list
// of search roots, the way a classpath lookup walks its entries.
type Checker struct {
	searchRoots []fs.FS
}

// NewChecker creates a checker with the given classpath search roots.
// Without any root, classpath locations never resolve.
func NewChecker(searchRoots ...fs.FS) *Checker {
	return &Checker{searchRoots: searchRoots}
}

// NewDirChecker creates a checker whose classpath search roots are the given
// directories, in order
func NewDirChecker(dirs ...string) *Checker {
	roots := make([]fs.FS, 0, len(dirs))
	for _, dir := range dirs {
		roots = append(roots, os.DirFS(dir))
	}
	return NewChecker(roots...)
}

// Exists reports whether the location resolves to an existing file or
// directory. Unprefixed locations are treated as classpath resources.
func (c *Checker) Exists(location string) bool {
	prefix, path := migrations.ParseLocation(location)
	if prefix == migrations.PrefixFilesystem {
		_, err := os.Stat(path)
		return err == nil
	}

	path = normalizeClasspath(path)
	for _, root := range c.searchRoots {
		if _, err := fs.Stat(root, path); err == nil {
			return true
		}
	}
	return false
}

// normalizeClasspath turns a classpath entry into a valid io/fs path
func normalizeClasspath(path string) string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "."
	}
	return path
}
