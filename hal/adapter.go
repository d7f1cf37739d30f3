// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import (
	"sort"
	"sync"

	"github.com/viktorfejes/VRI/types"
)

// EnumeratorSource distinguishes the native API a GPU-discovery query is
// made through. Enumeration is independent of which backend a Device is
// later opened against: the original's vri_adapters_enumerate lists GPUs
// through whichever native API answers the richest query, while
// vri_device_create separately picks the backend to actually drive one of
// the listed adapters (spec.md §4.2 vs §4.3).
type EnumeratorSource uint8

const (
	// SourceVulkanLike is preferred: a richer capability query.
	SourceVulkanLike EnumeratorSource = iota
	// SourceDXGILike is the fallback source.
	SourceDXGILike
)

// EnumeratorFunc lists up to limit adapters (limit<=0 means "no limit")
// through one native API, or returns ErrUnsupported if that API is not
// available on this machine.
type EnumeratorFunc func(limit int) ([]types.AdapterInfo, error)

var (
	enumeratorsMu sync.RWMutex
	enumerators   = make(map[EnumeratorSource]EnumeratorFunc)
)

// RegisterEnumerator installs an adapter-listing function for one native
// API source. A backend package calls this from its init (or an explicit
// Init) to make its enumeration available to the core-level
// EnumerateAdapters regardless of whether a Device is ever opened against
// it.
func RegisterEnumerator(source EnumeratorSource, fn EnumeratorFunc) {
	enumeratorsMu.Lock()
	defer enumeratorsMu.Unlock()
	enumerators[source] = fn
}

// EnumerateAdapters lists physical GPUs, preferring SourceVulkanLike and
// falling back to SourceDXGILike (spec.md §4.2). Returns ErrUnsupported if
// no enumerator is registered or every registered enumerator itself
// returns ErrUnsupported. The result is sorted by SortAdapters.
func EnumerateAdapters(limit int) ([]types.AdapterInfo, error) {
	enumeratorsMu.RLock()
	vulkan, hasVulkan := enumerators[SourceVulkanLike]
	dxgi, hasDXGI := enumerators[SourceDXGILike]
	enumeratorsMu.RUnlock()

	if hasVulkan {
		if list, err := vulkan(limit); err == nil {
			return SortAdapters(list), nil
		}
	}
	if hasDXGI {
		if list, err := dxgi(limit); err == nil {
			return SortAdapters(list), nil
		}
	}
	return nil, ErrUnsupported
}

// Adapter sort-key bit layout, ported verbatim from the original's
// src/core/vri.c (TYPE_SHIFT/VRAM_SHIFT/VENDOR_MASK/VRAM_MASK): a 64-bit
// key packs is_discrete into the top bit tested, VRAM into a wide middle
// field, and the vendor into a low nibble, so the comparator collapses to
// a single uint64 compare.
const (
	adapterTypeShift   = 60
	adapterVRAMShift   = 4
	adapterVendorMask  = 0xF
	adapterVRAMMask    = (uint64(1)<<adapterTypeShift - 1) >> adapterVRAMShift << adapterVRAMShift
)

func adapterSortKey(a types.AdapterInfo) uint64 {
	var key uint64
	if a.Type == types.GPUTypeDiscrete {
		key |= 1 << adapterTypeShift
	}
	key |= (a.VRAMBytes << adapterVRAMShift) & adapterVRAMMask
	key |= uint64(a.Vendor) & adapterVendorMask
	return key
}

// SortAdapters returns a new slice ordered descending by the packed
// (discrete, VRAM, vendor) score (spec.md §4.2, §8 scenario 5).
func SortAdapters(in []types.AdapterInfo) []types.AdapterInfo {
	out := make([]types.AdapterInfo, len(in))
	copy(out, in)
	sort.SliceStable(out, func(i, j int) bool {
		return adapterSortKey(out[i]) > adapterSortKey(out[j])
	})
	return out
}
