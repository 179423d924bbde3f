package genfs

import "sync"

// Overlay layers an in-memory write buffer over a base driver. Reads fall
// through to the base until a path has been written; writes never reach the
// base. Dry-run generation uses an Overlay over the OS driver so the full
// pipeline runs against real file contents without touching disk.
type Overlay struct {
	base Driver

	mu      sync.RWMutex
	written map[string]string
}

// NewOverlay creates an Overlay over base.
func NewOverlay(base Driver) *Overlay {
	return &Overlay{base: base, written: make(map[string]string)}
}

func (d *Overlay) ReadFile(path string) (string, error) {
	d.mu.RLock()
	content, ok := d.written[path]
	d.mu.RUnlock()
	if ok {
		return content, nil
	}
	return d.base.ReadFile(path)
}

func (d *Overlay) WriteFile(path, content string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.written[path] = content
	return nil
}

func (d *Overlay) Exists(path string) bool {
	d.mu.RLock()
	_, ok := d.written[path]
	d.mu.RUnlock()
	return ok || d.base.Exists(path)
}

// Glob only consults the base driver; buffered writes are invisible to
// glob checks, matching the on-disk state a real run would have seen.
func (d *Overlay) Glob(pattern string) ([]string, error) {
	return d.base.Glob(pattern)
}

// Written returns the paths and contents buffered so far.
func (d *Overlay) Written() map[string]string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make(map[string]string, len(d.written))
	for path, content := range d.written {
		out[path] = content
	}
	return out
}
