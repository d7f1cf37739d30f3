// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

//go:build windows

package ctx

import (
	"fmt"
	"sync"

	"github.com/go-webgpu/goffi/ffi"
)

// nativeProbe checks whether dxgi.dll and d3d11.dll are present and export
// the entry points a real D3D11 backend would need
// (CreateDXGIFactory1, D3D11CreateDevice), using the same
// ffi.LoadLibrary/ffi.GetSymbol pattern hal/vulkan/vk/loader.go uses for
// vkGetInstanceProcAddr. This is a presence probe only — ctx's actual
// device/queue/pipeline logic is a software model, not a COM caller, for
// the reasons given in SPEC_FULL.md's DOMAIN STACK section.
var (
	probeOnce   sync.Once
	probeResult bool
	probeErr    error
)

// NativeAvailable reports whether this machine exposes the DXGI/D3D11
// exports a real backend build would bind against.
func NativeAvailable() (bool, error) {
	probeOnce.Do(func() {
		probeResult, probeErr = doProbe()
	})
	return probeResult, probeErr
}

func doProbe() (bool, error) {
	dxgi, err := ffi.LoadLibrary("dxgi.dll")
	if err != nil {
		return false, fmt.Errorf("ctx: dxgi.dll not available: %w", err)
	}
	if _, err := ffi.GetSymbol(dxgi, "CreateDXGIFactory1"); err != nil {
		return false, fmt.Errorf("ctx: CreateDXGIFactory1 not exported: %w", err)
	}

	d3d11, err := ffi.LoadLibrary("d3d11.dll")
	if err != nil {
		return false, fmt.Errorf("ctx: d3d11.dll not available: %w", err)
	}
	if _, err := ffi.GetSymbol(d3d11, "D3D11CreateDevice"); err != nil {
		return false, fmt.Errorf("ctx: D3D11CreateDevice not exported: %w", err)
	}

	return true, nil
}
