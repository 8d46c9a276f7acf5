package group

import (
	"fmt"
	"sync"
)

// Backend names. The portable backend is registered by the edwards
// package; a native-code backend may register itself under Native at
// process start.
const (
	Portable = "portable"
	Native   = "native"
)

var (
	backendMu sync.RWMutex
	backends  = make(map[string]Group)
	active    Group
)

// Register makes a backend available under the given name. The first
// registered backend becomes active. Registration is a process-start
// setup step; it must not race with engine operations.
func Register(name string, g Group) {
	backendMu.Lock()
	defer backendMu.Unlock()
	backends[name] = g
	if active == nil {
		active = g
	}
}

// Use switches the engine to the named backend. If the backend is not
// registered it returns ErrBackendUnavailable and the previously active
// backend stays in effect.
func Use(name string) error {
	backendMu.Lock()
	defer backendMu.Unlock()
	g, ok := backends[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrBackendUnavailable, name)
	}
	active = g
	return nil
}

// ForcePortable switches to the portable backend and reports whether
// the switch succeeded.
func ForcePortable() bool {
	return Use(Portable) == nil
}

// Active returns the backend currently in use. It panics if no backend
// has been registered; importing the edwards package guarantees one.
func Active() Group {
	backendMu.RLock()
	defer backendMu.RUnlock()
	if active == nil {
		panic("group: no backend registered")
	}
	return active
}
