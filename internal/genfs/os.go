package genfs

import (
	"os"
	"path/filepath"

	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
)

// OS is the Driver backed by the real filesystem. A non-empty root
// re-anchors relative paths, so a whole generation run can be pointed at a
// different working directory.
type OS struct {
	root string
}

// NewOS creates an OS driver. root may be empty to resolve paths against
// the process working directory.
func NewOS(root string) *OS {
	return &OS{root: root}
}

func (d *OS) resolve(path string) string {
	if d.root == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(d.root, path)
}

func (d *OS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(d.resolve(path))
	if err != nil {
		return "", generrors.Wrap(err, generrors.CategoryFileSystem, generrors.SeverityFatal, "read file").
			WithContext("path", path)
	}
	return string(data), nil
}

func (d *OS) WriteFile(path string, content string) error {
	full := d.resolve(path)
	if dir := filepath.Dir(full); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return generrors.Wrap(err, generrors.CategoryFileSystem, generrors.SeverityFatal, "create parent directory").
				WithContext("path", path)
		}
	}
	if err := os.WriteFile(full, []byte(content), 0o600); err != nil {
		return generrors.Wrap(err, generrors.CategoryFileSystem, generrors.SeverityFatal, "write file").
			WithContext("path", path)
	}
	return nil
}

func (d *OS) Exists(path string) bool {
	_, err := os.Stat(d.resolve(path))
	return err == nil
}

func (d *OS) Glob(pattern string) ([]string, error) {
	matches, err := filepath.Glob(d.resolve(pattern))
	if err != nil {
		return nil, generrors.Wrap(err, generrors.CategorySchema, generrors.SeverityFatal, "invalid glob pattern").
			WithContext("pattern", pattern)
	}
	return matches, nil
}
