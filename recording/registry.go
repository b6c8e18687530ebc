package recording

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// ErrUnknownBackend is returned by NewBackend for unregistered names.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// BackendFactory creates a new backend instance.
type BackendFactory func() Backend

var (
	registryMu sync.RWMutex
	backends   = make(map[string]BackendFactory)
)

// Register makes a backend available under name, which is matched
// case-insensitively. It is called from init() in backend packages:
//
//	func init() {
//		recording.Register("svg", func() recording.Backend { return New() })
//	}
//
// Register panics if factory is nil or the name is already taken.
func Register(name string, factory BackendFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("recording: Register factory is nil")
	}
	key := normalizeName(name)
	if _, dup := backends[key]; dup {
		panic("recording: Register called twice for " + key)
	}
	backends[key] = factory
}

// Unregister removes a backend from the registry. Used by tests.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, normalizeName(name))
}

// NewBackend creates a new backend instance by name.
func NewBackend(name string) (Backend, error) {
	registryMu.RLock()
	factory, ok := backends[normalizeName(name)]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return factory(), nil
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[normalizeName(name)]
	return ok
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
