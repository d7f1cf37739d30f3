// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import (
	"testing"

	"github.com/viktorfejes/VRI/types"
)

// TestSortAdaptersScenario is spec.md §8 scenario 5 verbatim.
func TestSortAdaptersScenario(t *testing.T) {
	a := types.AdapterInfo{DeviceID: 1, Vendor: types.VendorIntel, Type: types.GPUTypeIntegrated, VRAMBytes: 8 << 30}
	b := types.AdapterInfo{DeviceID: 2, Vendor: types.VendorAMD, Type: types.GPUTypeDiscrete, VRAMBytes: 4 << 30}
	c := types.AdapterInfo{DeviceID: 3, Vendor: types.VendorNVIDIA, Type: types.GPUTypeDiscrete, VRAMBytes: 8 << 30}

	got := SortAdapters([]types.AdapterInfo{a, b, c})
	if len(got) != 3 {
		t.Fatalf("expected 3 adapters, got %d", len(got))
	}
	if got[0].DeviceID != c.DeviceID || got[1].DeviceID != b.DeviceID || got[2].DeviceID != a.DeviceID {
		t.Fatalf("expected order C, B, A; got %d, %d, %d", got[0].DeviceID, got[1].DeviceID, got[2].DeviceID)
	}
}

func TestSortAdaptersIsStableAndNonMutating(t *testing.T) {
	in := []types.AdapterInfo{
		{DeviceID: 1, Type: types.GPUTypeDiscrete, VRAMBytes: 1},
		{DeviceID: 2, Type: types.GPUTypeDiscrete, VRAMBytes: 1},
	}
	out := SortAdapters(in)
	if in[0].DeviceID != 1 || in[1].DeviceID != 2 {
		t.Fatal("SortAdapters mutated its input")
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d adapters, got %d", len(in), len(out))
	}
	if out[0].DeviceID != 1 || out[1].DeviceID != 2 {
		t.Fatalf("expected equal-key adapters to keep their input order; got %d, %d", out[0].DeviceID, out[1].DeviceID)
	}
}

func TestEnumerateAdaptersNoSourcesRegistered(t *testing.T) {
	enumeratorsMu.Lock()
	saved := enumerators
	enumerators = make(map[EnumeratorSource]EnumeratorFunc)
	enumeratorsMu.Unlock()
	defer func() {
		enumeratorsMu.Lock()
		enumerators = saved
		enumeratorsMu.Unlock()
	}()

	if _, err := EnumerateAdapters(0); err != ErrUnsupported {
		t.Fatalf("expected ErrUnsupported with no enumerators registered, got %v", err)
	}
}
