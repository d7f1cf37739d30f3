// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build !windows

package ctx

// NativeAvailable always reports false off Windows: ctx's real-driver
// probe targets dxgi.dll/d3d11.dll, which only exist on Windows. The
// software model still works everywhere; this only gates whether a caller
// should expect a genuine D3D11 device behind it.
func NativeAvailable() (bool, error) { return false, nil }
