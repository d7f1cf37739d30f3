// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// AdapterInfo describes one enumerated physical GPU (spec.md §4.2).
type AdapterInfo = types.AdapterInfo

// EnumerateAdapters lists up to limit physical GPUs (limit<=0 means "no
// limit"), sorted descending by the packed (discrete, VRAM, vendor) score.
// This is independent of which backend a Device is later opened against
// (spec.md §4.2 vs §4.3): a backend's enumerator registers itself via its
// init function, and this always tries the richest capability source
// first (spec.md §4.2).
func EnumerateAdapters(limit int) ([]AdapterInfo, error) {
	list, err := hal.EnumerateAdapters(limit)
	return list, wrap(err)
}
