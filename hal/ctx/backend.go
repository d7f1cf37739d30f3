// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"fmt"
	"sync/atomic"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

func init() {
	hal.RegisterBackendFactory(types.BackendCtx, func() (hal.Backend, error) {
		return New(), nil
	})
	hal.RegisterEnumerator(hal.SourceDXGILike, func(limit int) ([]types.AdapterInfo, error) {
		return New().EnumerateAdapters(limit)
	})
}

// Backend is the ctx (D3D11-style) backend.
type Backend struct {
	nextLUID atomic.Uint64

	// Adapters is the adapter list EnumerateAdapters sorts and OpenDevice
	// searches by LUID. New fills it with one synthetic adapter; a caller
	// may replace it to present a controlled set without real hardware.
	Adapters []types.AdapterInfo
}

// New constructs a ctx backend with a single synthetic adapter, standing
// in for "ask DXGI for the one GPU this machine has" without a real DXGI
// call (see probe_windows.go for the real-driver presence probe).
func New() *Backend {
	return &Backend{
		Adapters: []types.AdapterInfo{
			{
				LUID:      0x1,
				DeviceID:  0,
				Vendor:    types.VendorUnknown,
				Type:      types.GPUTypeDiscrete,
				VRAMBytes: 4 << 30,
				QueueCounts: [types.QueueTypeCount]uint32{
					types.QueueTypeGraphics: 1,
					types.QueueTypeCompute:  1,
					types.QueueTypeTransfer: 1,
				},
			},
		},
	}
}

// Variant identifies this backend.
func (b *Backend) Variant() types.Backend { return types.BackendCtx }

// EnumerateAdapters returns up to limit adapters, sorted per spec.md §4.2.
func (b *Backend) EnumerateAdapters(limit int) ([]types.AdapterInfo, error) {
	list := hal.SortAdapters(b.Adapters)
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

// OpenDevice creates a logical device bound to desc.AdapterLUID
// (spec.md §4.3).
func (b *Backend) OpenDevice(desc types.DeviceDesc) (hal.Device, error) {
	var adapter *types.AdapterInfo
	for i := range b.Adapters {
		if b.Adapters[i].LUID == desc.AdapterLUID {
			adapter = &b.Adapters[i]
			break
		}
	}
	if adapter == nil {
		return nil, fmt.Errorf("ctx: no adapter with LUID %#x: %w", desc.AdapterLUID, hal.ErrUnsupported)
	}
	return newDevice(desc, *adapter)
}
