// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import (
	"sync"

	"github.com/viktorfejes/VRI/types"
)

var (
	backendsMu sync.RWMutex
	backends   = make(map[types.Backend]Backend)
)

// RegisterBackend makes a fully-constructed Backend available by its
// variant. Safe for concurrent use. A package's init() typically calls
// this once for a backend that has no construction cost worth deferring.
func RegisterBackend(b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()
	backends[b.Variant()] = b
}

// GetBackend returns a previously registered backend by variant.
func GetBackend(v types.Backend) (Backend, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	b, ok := backends[v]
	return b, ok
}

// AvailableBackends returns the variants currently registered, in no
// particular order.
func AvailableBackends() []types.Backend {
	backendsMu.RLock()
	defer backendsMu.RUnlock()
	out := make([]types.Backend, 0, len(backends))
	for v := range backends {
		out = append(out, v)
	}
	return out
}

// BackendFactory lazily constructs a Backend, returning an error if the
// backend's native dependencies (a driver, a dynamic library) are not
// present on this machine (spec.md §4.2: "fails with Unsupported if no
// API is available").
type BackendFactory func() (Backend, error)

var (
	factoriesMu sync.RWMutex
	factories   = make(map[types.Backend]BackendFactory)
)

// RegisterBackendFactory registers a lazy constructor for a backend
// variant. Unlike RegisterBackend, the backend is not constructed (and so
// cannot fail) until CreateBackend or ProbeBackend is called.
func RegisterBackendFactory(v types.Backend, f BackendFactory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	factories[v] = f
}

// CreateBackend constructs the backend registered for v, or
// ErrBackendNotFound if nothing is registered.
func CreateBackend(v types.Backend) (Backend, error) {
	factoriesMu.RLock()
	f, ok := factories[v]
	factoriesMu.RUnlock()
	if !ok {
		return nil, ErrBackendNotFound
	}
	return f()
}

// ProbeBackend reports whether v's factory can currently construct a
// working backend, without keeping the result around. SelectBestBackend
// does not call it; it calls CreateBackend directly.
func ProbeBackend(v types.Backend) bool {
	b, err := CreateBackend(v)
	return err == nil && b != nil
}

// backendPriority is the fallback order SelectBestBackend walks, richest
// capability query first (spec.md §4.2: "prefers an adapter source that
// returns richest capability data... and falls back to a DXGI-like
// query"). Vulkan/Metal are listed for when a second backend is
// registered; today only BackendCtx has a factory.
var backendPriority = []types.Backend{
	types.BackendVulkan,
	types.BackendMetal,
	types.BackendCtx,
}

// SelectBestBackend returns the first available backend in priority order,
// or ErrUnsupported if none probe successfully.
func SelectBestBackend() (Backend, error) {
	for _, v := range backendPriority {
		if b, err := CreateBackend(v); err == nil {
			return b, nil
		}
	}
	return nil, ErrUnsupported
}
