// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"testing"

	"github.com/viktorfejes/VRI/types"
)

func TestFormatRoundtrip(t *testing.T) {
	for f := range formatTable {
		nf, ok := formatToNative(f)
		if !ok {
			t.Fatalf("formatToNative(%s): not found", f)
		}
		got, ok := nativeToFormat(nf)
		if !ok {
			t.Fatalf("nativeToFormat(%v): not found", nf)
		}
		if got != f {
			t.Fatalf("roundtrip mismatch: %s -> %v -> %s", f, nf, got)
		}
	}
}

func TestFormatToNativeRejectsUndefined(t *testing.T) {
	if _, ok := formatToNative(types.FormatUndefined); ok {
		t.Fatal("expected FormatUndefined to have no backend mapping")
	}
}

func TestTextureByteSizeScalesWithDimensions(t *testing.T) {
	small := textureByteSize(types.TextureDesc{Format: types.FormatR8G8B8A8Unorm, Width: 4, Height: 4, Depth: 1, LayerCount: 1})
	large := textureByteSize(types.TextureDesc{Format: types.FormatR8G8B8A8Unorm, Width: 8, Height: 8, Depth: 1, LayerCount: 1})
	if large != small*4 {
		t.Fatalf("expected doubling width and height to quadruple size: small=%d large=%d", small, large)
	}
}

func TestColorSpaceFallback(t *testing.T) {
	d, err := newDevice(types.DeviceDesc{}, types.AdapterInfo{LUID: 1})
	if err != nil {
		t.Fatalf("newDevice: %v", err)
	}
	if got := d.colorSpaceToNative(types.ColorSpace(200)); got != colorSpaceTable[types.ColorSpaceSRGBNonlinear] {
		t.Fatalf("expected unmapped color space to fall back to SRGBNonlinear, got %d", got)
	}
}
