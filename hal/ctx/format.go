// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import "github.com/viktorfejes/VRI/types"

// nativeFormat stands in for the backend's real format enum (DXGI_FORMAT
// on the original D3D11 backend). ctx has no real driver to hand this to,
// so the value only needs to round-trip; the bit layout is arbitrary.
type nativeFormat uint32

// formatTable is seeded from vri_d3d11_common.h, which upstream only
// populates for R8G8B8A8_UNORM, and extended here (SPEC_FULL.md §4.7) to
// every format the module's color/depth scenarios need.
var formatTable = map[types.Format]nativeFormat{
	types.FormatR8G8B8A8Unorm:     1,
	types.FormatR8G8B8A8UnormSRGB: 2,
	types.FormatB8G8R8A8Unorm:     3,
	types.FormatB8G8R8A8UnormSRGB: 4,
	types.FormatR16G16B16A16Float: 5,
	types.FormatR32G32B32A32Float: 6,
	types.FormatD24UnormS8Uint:    7,
	types.FormatD32Float:         8,
}

var formatBytesPerTexel = map[types.Format]uintptr{
	types.FormatR8G8B8A8Unorm:     4,
	types.FormatR8G8B8A8UnormSRGB: 4,
	types.FormatB8G8R8A8Unorm:     4,
	types.FormatB8G8R8A8UnormSRGB: 4,
	types.FormatR16G16B16A16Float: 8,
	types.FormatR32G32B32A32Float: 16,
	types.FormatD24UnormS8Uint:    4,
	types.FormatD32Float:         4,
}

// formatToNative maps a public Format to its backend representation,
// ok=false for Undefined or anything never seeded (spec.md §4.7).
func formatToNative(f types.Format) (nativeFormat, bool) {
	nf, ok := formatTable[f]
	return nf, ok
}

// nativeToFormat is the inverse mapping, exercised by the roundtrip
// property test (spec.md §8).
func nativeToFormat(nf nativeFormat) (types.Format, bool) {
	for f, v := range formatTable {
		if v == nf {
			return f, true
		}
	}
	return types.FormatUndefined, false
}

// textureByteSize computes the linear size of desc's base mip level times
// its layer count — enough for the allocation-callback accounting hook
// (SPEC_FULL.md §3), not a tiled/compressed-aware layout calculator.
func textureByteSize(desc types.TextureDesc) uintptr {
	bpt, ok := formatBytesPerTexel[desc.Format]
	if !ok {
		bpt = 4
	}
	depth := desc.Depth
	if depth == 0 {
		depth = 1
	}
	layers := desc.LayerCount
	if layers == 0 {
		layers = 1
	}
	return uintptr(desc.Width) * uintptr(desc.Height) * uintptr(depth) * uintptr(layers) * bpt
}

// colorSpaceTable is ported from vri_to_dxgi_color_space[], which upstream
// only special-cases a handful of entries; every types.ColorSpace value is
// given an explicit native code here (SPEC_FULL.md §4.7).
var colorSpaceTable = map[types.ColorSpace]uint32{
	types.ColorSpaceSRGBNonlinear:      0,
	types.ColorSpaceSRGBLinear:         1,
	types.ColorSpaceBT709Nonlinear:     2,
	types.ColorSpaceBT709Linear:        3,
	types.ColorSpaceP3Nonlinear:        4,
	types.ColorSpaceP3Linear:           5,
	types.ColorSpaceBT2020Nonlinear:    6,
	types.ColorSpaceBT2020Linear:       7,
	types.ColorSpaceHDR10ST2084:        8,
	types.ColorSpaceHDR10HLG:           9,
	types.ColorSpaceExtendedSRGBLinear: 10,
}

// colorSpaceToNative looks up cs, warning and falling back to
// SRGBNonlinear for anything unmapped (spec.md §4.7: "warn + pick the
// closest").
func (d *Device) colorSpaceToNative(cs types.ColorSpace) uint32 {
	if v, ok := colorSpaceTable[cs]; ok {
		return v
	}
	d.emit(types.MessageSeverityWarning, "unmapped color space, falling back to SRGB nonlinear")
	return colorSpaceTable[types.ColorSpaceSRGBNonlinear]
}
