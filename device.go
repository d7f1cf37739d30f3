// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"fmt"
	"sync"
	"time"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/internal/objtrack"
	"github.com/viktorfejes/VRI/types"
)

// objectBase is the "base" half of spec.md §3's base+backend-tail handle
// model: the owning Device and this object's registry id. It has no type
// tag field; the wrapper's Go type identifies the object kind, and the
// registry records an objtrack.ObjectType per id. The backend's opaque
// tail is held as a plain hal.X interface field alongside this base.
type objectBase struct {
	device *Device
	id     uint64
}

// Device is a logical GPU device: the root of every other VRI resource.
// All Device methods are safe for concurrent use from multiple goroutines
// (spec.md §5) except where individually documented otherwise.
type Device struct {
	objectBase
	backend hal.Device
	variant types.Backend
	info    types.AdapterInfo

	registry *objtrack.Registry

	allocMu    sync.Mutex
	allocBytes uint64
	allocCount uint64
}

// CreateDevice opens a logical device against desc.Backend, resolving
// desc.AdapterLUID through that backend's adapter list (spec.md §4.3).
// If desc.Backend is types.BackendNone, the best available backend is
// selected via hal.SelectBestBackend.
func CreateDevice(desc types.DeviceDesc) (*Device, error) {
	var (
		b   hal.Backend
		err error
	)
	if desc.Backend == types.BackendNone {
		b, err = hal.SelectBestBackend()
	} else {
		b, err = hal.CreateBackend(desc.Backend)
	}
	if err != nil {
		return nil, wrap(err)
	}

	if desc.AdapterLUID == 0 {
		adapters, aerr := b.EnumerateAdapters(1)
		if aerr != nil || len(adapters) == 0 {
			return nil, wrap(fmt.Errorf("vri: no adapters available for backend %s: %w", b.Variant(), hal.ErrUnsupported))
		}
		desc.AdapterLUID = adapters[0].LUID
	}

	registry := objtrack.NewRegistry(!desc.DisableLiveObjectTracking)
	d := &Device{variant: b.Variant(), registry: registry}

	// Wrap the caller's allocation callback (or the default) so
	// AllocationStats reflects every call the backend makes through it,
	// without the backend itself needing to know about root-level
	// accounting (spec.md §3's allocation-callback note).
	userAlloc := types.DefaultAllocationCallback()
	if desc.AllocationCallback != nil {
		userAlloc = *desc.AllocationCallback
	}
	tracked := types.AllocationCallback{
		Allocate: func(size, alignment uintptr) error {
			if err := userAlloc.Allocate(size, alignment); err != nil {
				return err
			}
			d.allocMu.Lock()
			d.allocBytes += uint64(size)
			d.allocCount++
			d.allocMu.Unlock()
			return nil
		},
		Free: func(size, alignment uintptr) {
			userAlloc.Free(size, alignment)
			d.allocMu.Lock()
			if d.allocBytes >= uint64(size) {
				d.allocBytes -= uint64(size)
			}
			if d.allocCount > 0 {
				d.allocCount--
			}
			d.allocMu.Unlock()
		},
	}
	desc.AllocationCallback = &tracked

	backendDevice, err := b.OpenDevice(desc)
	if err != nil {
		return nil, wrap(err)
	}
	d.backend = backendDevice
	d.device = d
	d.id = registry.Track(objtrack.ObjectDevice)
	return d, nil
}

// Backend returns the backend variant this device was opened against.
func (d *Device) Backend() types.Backend { return d.variant }

// AllocationStats reports the accounting totals the allocation-callback
// pair has observed. This is bookkeeping metadata only: Go's garbage
// collector owns the actual backing memory for every resource (spec.md
// §3's allocation-callback note, resolved in DESIGN.md).
func (d *Device) AllocationStats() (bytes, count uint64) {
	d.allocMu.Lock()
	defer d.allocMu.Unlock()
	return d.allocBytes, d.allocCount
}

// Queue returns queue index of type t, or nil if out of range (spec.md
// §4.3: "silently yield a null handle"). Queues are device-owned — there
// is no CreateQueue/Destroy pair, so unlike every other handle type a
// Queue is not separately entered into the live-object registry; it lives
// and dies with the Device that vends it.
func (d *Device) Queue(t types.QueueType, index int) *Queue {
	q, ok := d.backend.Queue(t, index)
	if !ok {
		return nil
	}
	base := objectBase{device: d}
	return &Queue{objectBase: base, backend: q}
}

// LiveObjectCount returns the number of objects currently tracked in the
// live-object registry (spec.md §9's leak-triage ledger), 0 when live-
// object tracking is disabled or nothing is outstanding.
func (d *Device) LiveObjectCount() int {
	return len(d.registry.Live())
}

// CreateCommandPool allocates a command-buffer pool per desc (spec.md §3/§4.5).
func (d *Device) CreateCommandPool(desc types.CommandPoolDesc) (*CommandPool, error) {
	p, err := d.backend.CreateCommandPool(desc)
	if err != nil {
		return nil, wrap(err)
	}
	base := objectBase{device: d, id: d.registry.Track(objtrack.ObjectCommandPool)}
	return &CommandPool{objectBase: base, backend: p}, nil
}

// CreateFence creates a timeline fence starting at initialValue (spec.md §4.4).
func (d *Device) CreateFence(initialValue uint64) (*Fence, error) {
	f, err := d.backend.CreateFence(initialValue)
	if err != nil {
		return nil, wrap(err)
	}
	base := objectBase{device: d, id: d.registry.Track(objtrack.ObjectFence)}
	return &Fence{objectBase: base, backend: f}, nil
}

// CreateBuffer creates a linear GPU-visible buffer (SPEC_FULL.md
// Supplemented Features #1).
func (d *Device) CreateBuffer(desc types.BufferDesc) (*Buffer, error) {
	b, err := d.backend.CreateBuffer(desc)
	if err != nil {
		return nil, wrap(err)
	}
	base := objectBase{device: d, id: d.registry.Track(objtrack.ObjectBuffer)}
	return &Buffer{objectBase: base, backend: b}, nil
}

// CreateTexture creates a texture resource (spec.md §4.7).
func (d *Device) CreateTexture(desc types.TextureDesc) (*Texture, error) {
	t, err := d.backend.CreateTexture(desc)
	if err != nil {
		return nil, wrap(err)
	}
	base := objectBase{device: d, id: d.registry.Track(objtrack.ObjectTexture)}
	return &Texture{objectBase: base, backend: t}, nil
}

// CreateShaderModule stores opaque shader bytecode, never interpreted by
// the core (spec.md §3).
func (d *Device) CreateShaderModule(desc types.ShaderModuleDesc) (*ShaderModule, error) {
	m, err := d.backend.CreateShaderModule(desc)
	if err != nil {
		return nil, wrap(err)
	}
	base := objectBase{device: d, id: d.registry.Track(objtrack.ObjectShaderModule)}
	return &ShaderModule{objectBase: base, backend: m}, nil
}

// CreateGraphicsPipeline builds a graphics pipeline's sub-state eagerly and
// fallibly (spec.md §4.6).
func (d *Device) CreateGraphicsPipeline(desc types.GraphicsPipelineDesc) (*Pipeline, error) {
	p, err := d.backend.CreateGraphicsPipeline(desc)
	if err != nil {
		return nil, wrap(err)
	}
	base := objectBase{device: d, id: d.registry.Track(objtrack.ObjectPipeline)}
	return &Pipeline{objectBase: base, backend: p}, nil
}

// CreateComputePipeline builds a compute pipeline's single shader slot
// (spec.md §4.6).
func (d *Device) CreateComputePipeline(desc types.ComputePipelineDesc) (*Pipeline, error) {
	p, err := d.backend.CreateComputePipeline(desc)
	if err != nil {
		return nil, wrap(err)
	}
	base := objectBase{device: d, id: d.registry.Track(objtrack.ObjectPipeline)}
	return &Pipeline{objectBase: base, backend: p}, nil
}

// CreateSwapchain binds a swapchain to desc.Window (spec.md §4.8).
func (d *Device) CreateSwapchain(desc types.SwapchainDesc) (*Swapchain, error) {
	s, err := d.backend.CreateSwapchain(desc)
	if err != nil {
		return nil, wrap(err)
	}
	base := objectBase{device: d, id: d.registry.Track(objtrack.ObjectSwapchain)}
	return &Swapchain{objectBase: base, backend: s}, nil
}

// Wait blocks until fence reaches value or timeout elapses.
func (d *Device) Wait(f *Fence, value uint64, timeout time.Duration) (bool, error) {
	ok, err := d.backend.Wait(f.backend, value, timeout)
	return ok, wrap(err)
}

// WaitMany blocks until either all (waitAll) or any (!waitAll) of fences
// reach their target values, or timeout elapses (spec.md §4.4).
func (d *Device) WaitMany(fences []*Fence, values []uint64, waitAll bool, timeout time.Duration) (bool, error) {
	backendFences := make([]hal.Fence, len(fences))
	for i, f := range fences {
		backendFences[i] = f.backend
	}
	ok, err := d.backend.WaitMany(backendFences, values, waitAll, timeout)
	return ok, wrap(err)
}

// ReportLiveObjects dumps the live-object registry for leak triage
// (spec.md §6, §9).
func (d *Device) ReportLiveObjects() string {
	return d.registry.Report()
}

// Destroy releases the device. Every resource created from it must already
// be destroyed (spec.md §3).
func (d *Device) Destroy() {
	d.backend.Destroy()
	d.registry.Untrack(d.id)
}
