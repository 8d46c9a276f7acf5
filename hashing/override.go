package hashing

import (
	"fmt"
	"sync"
)

// Canonical hash function names accepted by RegisterOverride.
const (
	NameFastHash = "cn_fast_hash"

	NameSlowHashV0 = "cn_slow_hash_v0"
	NameSlowHashV1 = "cn_slow_hash_v1"
	NameSlowHashV2 = "cn_slow_hash_v2"

	NameLiteSlowHashV0 = "cn_lite_slow_hash_v0"
	NameLiteSlowHashV1 = "cn_lite_slow_hash_v1"
	NameLiteSlowHashV2 = "cn_lite_slow_hash_v2"

	NameDarkSlowHashV0 = "cn_dark_slow_hash_v0"
	NameDarkSlowHashV1 = "cn_dark_slow_hash_v1"
	NameDarkSlowHashV2 = "cn_dark_slow_hash_v2"

	NameTurtleSlowHashV0 = "cn_turtle_slow_hash_v0"
	NameTurtleSlowHashV1 = "cn_turtle_slow_hash_v1"
	NameTurtleSlowHashV2 = "cn_turtle_slow_hash_v2"

	NameChukwaSlowHash   = "chukwa_slow_hash"
	NameChukwaSlowHashV2 = "chukwa_slow_hash_v2"
)

// OverrideFunc is an externally supplied hash implementation. It is
// validated only by its output shape; correctness is the installer's
// responsibility.
type OverrideFunc func(data []byte) Hash

var knownNames = map[string]struct{}{
	NameFastHash:         {},
	NameSlowHashV0:       {},
	NameSlowHashV1:       {},
	NameSlowHashV2:       {},
	NameLiteSlowHashV0:   {},
	NameLiteSlowHashV1:   {},
	NameLiteSlowHashV2:   {},
	NameDarkSlowHashV0:   {},
	NameDarkSlowHashV1:   {},
	NameDarkSlowHashV2:   {},
	NameTurtleSlowHashV0: {},
	NameTurtleSlowHashV1: {},
	NameTurtleSlowHashV2: {},
	NameChukwaSlowHash:   {},
	NameChukwaSlowHashV2: {},
}

var (
	overrideMu sync.RWMutex
	overrides  = make(map[string]OverrideFunc)
)

// RegisterOverride installs an externally supplied implementation for
// the named hash function. Once installed, the public entry point for
// that name dispatches to the override. Installation is a one-time,
// single-threaded setup step: registering an unknown name, a nil
// function, or a name that already has an override fails.
func RegisterOverride(name string, fn OverrideFunc) error {
	if fn == nil {
		return fmt.Errorf("hashing: nil override for %q", name)
	}
	if _, ok := knownNames[name]; !ok {
		return fmt.Errorf("hashing: unknown hash function %q", name)
	}
	overrideMu.Lock()
	defer overrideMu.Unlock()
	if _, ok := overrides[name]; ok {
		return fmt.Errorf("hashing: override for %q already registered", name)
	}
	overrides[name] = fn
	return nil
}

func override(name string) (OverrideFunc, bool) {
	overrideMu.RLock()
	defer overrideMu.RUnlock()
	fn, ok := overrides[name]
	return fn, ok
}
