package history

import (
	"fmt"
	"path/filepath"
)

// Supported slot backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// OpenSlot creates the slot for backend under dir. The returned close func is never nil.
func OpenSlot(backend, dir string) (Slot, func() error, error) {
	noop := func() error { return nil }

	switch backend {
	case "", BackendFile:
		slot, err := NewFileSlot(filepath.Join(dir, "storage"))
		if err != nil {
			return nil, noop, err
		}
		return slot, noop, nil
	case BackendSQLite:
		slot, err := NewSQLiteSlot(filepath.Join(dir, "storage.db"))
		if err != nil {
			return nil, noop, err
		}
		return slot, slot.Close, nil
	case BackendMemory:
		return NewMemorySlot(), noop, nil
	}
	return nil, noop, fmt.Errorf("unknown history backend %q", backend)
}
