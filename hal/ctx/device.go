// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"fmt"
	"sync"
	"time"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// Device is the ctx backend's logical device. Queue-set creation,
// CreateCommandPool, CreateBuffer and CreateTexture call
// desc.AllocationCallback's Allocate; CreateFence, CreateShaderModule,
// the pipeline constructors, CreateSwapchain and CreateTextureFromNative
// do not, and no Destroy method calls Free.
type Device struct {
	desc    types.DeviceDesc
	adapter types.AdapterInfo
	alloc   types.AllocationCallback
	debug   types.DebugCallback

	validation *validationLayer

	mu     sync.Mutex
	queues map[types.QueueType][]*Queue
	lost   bool
}

func newDevice(desc types.DeviceDesc, adapter types.AdapterInfo) (*Device, error) {
	alloc := types.DefaultAllocationCallback()
	if desc.AllocationCallback != nil {
		alloc = *desc.AllocationCallback
	}
	debugCB := desc.DebugCallback
	if debugCB == nil {
		debugCB = types.DefaultDebugCallback()
	}

	d := &Device{
		desc:    desc,
		adapter: adapter,
		alloc:   alloc,
		debug:   debugCB,
		queues:  make(map[types.QueueType][]*Queue),
	}

	hal.Logger().Info("ctx: device opened", "luid", fmt.Sprintf("%#x", adapter.LUID), "vendor", adapter.Vendor)

	if desc.EnableAPIValidation {
		// Mirrors the original's ID3D11InfoQueue setup: WARN-and-up,
		// no break-on-error, a bounded message ring (vri_d3d11_device.c).
		d.validation = newValidationLayer(1024)
		d.emit(types.MessageSeverityInfo, "validation layer attached")
	}

	for _, req := range desc.Queues {
		if req.Count > types.MaxQueuesPerType {
			d.rollback()
			return nil, fmt.Errorf("ctx: queue count %d exceeds max %d: %w", req.Count, types.MaxQueuesPerType, hal.ErrInvalidAPIUsage)
		}
		if err := d.alloc.Allocate(0, 0); err != nil {
			d.rollback()
			return nil, fmt.Errorf("ctx: %w: %v", hal.ErrDeviceOutOfMemory, err)
		}
		for i := uint32(0); i < req.Count; i++ {
			d.queues[req.Type] = append(d.queues[req.Type], newQueue(d, req.Type))
		}
	}

	return d, nil
}

func (d *Device) rollback() {
	for t, qs := range d.queues {
		_ = t
		for range qs {
			d.alloc.Free(0, 0)
		}
	}
}

func (d *Device) emit(sev types.MessageSeverity, msg string) {
	if d.validation != nil {
		d.validation.record(sev, msg)
	}
	d.debug(sev, msg)

	switch sev {
	case types.MessageSeverityFatal, types.MessageSeverityError:
		hal.Logger().Error("ctx: " + msg)
	case types.MessageSeverityWarning:
		hal.Logger().Warn("ctx: " + msg)
	case types.MessageSeverityInfo:
		hal.Logger().Info("ctx: " + msg)
	default:
		hal.Logger().Debug("ctx: " + msg)
	}
}

// Queue returns queue index of type t, or (nil, false) out of range
// (spec.md §4.3).
func (d *Device) Queue(t types.QueueType, index int) (hal.Queue, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	qs := d.queues[t]
	if index < 0 || index >= len(qs) {
		return nil, false
	}
	return qs[index], true
}

// CreateCommandPool allocates a pool for desc.QueueType, carrying desc.Flags
// (resettable/transient) per spec.md §3/§4.5.
func (d *Device) CreateCommandPool(desc types.CommandPoolDesc) (hal.CommandPool, error) {
	if d.lost {
		return nil, hal.ErrDeviceLost
	}
	if err := d.alloc.Allocate(0, 0); err != nil {
		return nil, hal.ErrDeviceOutOfMemory
	}
	return newCommandPool(d, desc), nil
}

// CreateFence creates a timeline fence starting at initialValue (spec.md §4.4).
func (d *Device) CreateFence(initialValue uint64) (hal.Fence, error) {
	if d.lost {
		return nil, hal.ErrDeviceLost
	}
	return newFence(initialValue), nil
}

// CreateBuffer creates a linear buffer resource.
func (d *Device) CreateBuffer(desc types.BufferDesc) (hal.Buffer, error) {
	if d.lost {
		return nil, hal.ErrDeviceLost
	}
	if err := d.alloc.Allocate(uintptr(desc.Size), 16); err != nil {
		return nil, hal.ErrDeviceOutOfMemory
	}
	return newBuffer(d, desc), nil
}

// CreateTexture validates desc and creates a texture (spec.md §4.7).
func (d *Device) CreateTexture(desc types.TextureDesc) (hal.Texture, error) {
	if d.lost {
		return nil, hal.ErrDeviceLost
	}
	if desc.Width == 0 || desc.Height == 0 {
		return nil, hal.ErrZeroArea
	}
	if _, ok := formatToNative(desc.Format); !ok {
		return nil, fmt.Errorf("ctx: format %s has no backend mapping: %w", desc.Format, hal.ErrUnsupported)
	}
	if err := d.alloc.Allocate(textureByteSize(desc), 16); err != nil {
		return nil, hal.ErrDeviceOutOfMemory
	}
	return &Texture{device: d, desc: desc}, nil
}

// CreateTextureFromNative wraps a backend-owned resource (a swapchain
// back-buffer) without a fresh allocation (spec.md §4.7).
func (d *Device) CreateTextureFromNative(native any, desc types.TextureDesc) (hal.Texture, error) {
	return &Texture{device: d, desc: desc, native: native}, nil
}

// CreateShaderModule stores opaque bytecode (spec.md §3: never interpreted).
func (d *Device) CreateShaderModule(desc types.ShaderModuleDesc) (hal.ShaderModule, error) {
	if d.lost {
		return nil, hal.ErrDeviceLost
	}
	return &ShaderModule{stage: desc.Stage, code: desc.Code, entry: desc.EntryPoint}, nil
}

// CreateGraphicsPipeline builds a graphics pipeline's sub-state eagerly and
// fallibly (spec.md §4.6).
func (d *Device) CreateGraphicsPipeline(desc types.GraphicsPipelineDesc) (hal.Pipeline, error) {
	if d.lost {
		return nil, hal.ErrDeviceLost
	}
	return createGraphicsPipeline(desc)
}

// CreateComputePipeline builds a compute pipeline's single shader slot
// (spec.md §4.6).
func (d *Device) CreateComputePipeline(desc types.ComputePipelineDesc) (hal.Pipeline, error) {
	if d.lost {
		return nil, hal.ErrDeviceLost
	}
	return createComputePipeline(desc)
}

// CreateSwapchain binds a single-drawable-image swapchain to desc.Window
// (spec.md §4.8).
func (d *Device) CreateSwapchain(desc types.SwapchainDesc) (hal.Swapchain, error) {
	if d.lost {
		return nil, hal.ErrDeviceLost
	}
	if desc.Width == 0 || desc.Height == 0 {
		return nil, hal.ErrZeroArea
	}
	d.colorSpaceToNative(desc.ColorSpace)
	return newSwapchain(d, desc), nil
}

// Destroy releases the device. Resources created from it must already be
// destroyed (spec.md §3).
func (d *Device) Destroy() {
	d.lost = true
}

// Wait blocks until fence reaches value or timeout elapses.
func (d *Device) Wait(fence hal.Fence, value uint64, timeout time.Duration) (bool, error) {
	return fence.Wait(value, timeout)
}

// WaitMany blocks until either all (waitAll) or any (!waitAll) of fences
// reach their target values, or timeout elapses (spec.md §4.4).
func (d *Device) WaitMany(fences []hal.Fence, values []uint64, waitAll bool, timeout time.Duration) (bool, error) {
	return waitMany(fences, values, waitAll, timeout)
}
