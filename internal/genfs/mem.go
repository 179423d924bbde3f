package genfs

import (
	"path"
	"sort"
	"sync"

	generrors "git.home.luguber.info/inful/scaffgen/internal/errors"
)

// Mem is a map-backed Driver for tests.
type Mem struct {
	mu    sync.RWMutex
	files map[string]string
}

// NewMem creates an empty in-memory driver.
func NewMem() *Mem {
	return &Mem{files: make(map[string]string)}
}

// Seed pre-populates a file, overwriting any previous content.
func (d *Mem) Seed(p, content string) *Mem {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[p] = content
	return d
}

func (d *Mem) ReadFile(p string) (string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	content, ok := d.files[p]
	if !ok {
		return "", generrors.Newf(generrors.CategoryFileSystem, generrors.SeverityFatal, "read file: %s does not exist", p)
	}
	return content, nil
}

func (d *Mem) WriteFile(p, content string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.files[p] = content
	return nil
}

func (d *Mem) Exists(p string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.files[p]
	return ok
}

func (d *Mem) Glob(pattern string) ([]string, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var matches []string
	for p := range d.files {
		ok, err := path.Match(pattern, p)
		if err != nil {
			return nil, generrors.Wrap(err, generrors.CategorySchema, generrors.SeverityFatal, "invalid glob pattern").
				WithContext("pattern", pattern)
		}
		if ok {
			matches = append(matches, p)
		}
	}
	sort.Strings(matches)
	return matches, nil
}

// Files returns a copy of the current file map, for assertions.
func (d *Mem) Files() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.files))
	for p, content := range d.files {
		out[p] = content
	}
	return out
}
