// Package genfs provides the filesystem capability used by the generator:
// a small read/write/exists driver interface with an OS implementation, an
// in-memory implementation for tests, and a copy-on-write overlay for dry
// runs.
package genfs

// Driver is the filesystem seam between the generator and its effects.
// The generator never touches the OS directly.
type Driver interface {
	// ReadFile returns the full content of the file at path.
	ReadFile(path string) (string, error)

	// WriteFile writes content to path, creating parent directories as
	// needed.
	WriteFile(path string, content string) error

	// Exists reports whether path exists.
	Exists(path string) bool

	// Glob returns the paths matching the pattern.
	Glob(pattern string) ([]string, error)
}
