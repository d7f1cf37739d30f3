// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package hal is the backend contract every VRI backend implements: the
// vtables of spec.md §4.1 realized as Go interfaces. The root vri package
// never talks to a backend's concrete type; it only ever holds a hal.X
// value, so "populate the vtable at Device creation" becomes "the backend
// returns a value satisfying the interface".
package hal

import (
	"time"

	"github.com/viktorfejes/VRI/types"
)

// Backend identifies a graphics backend implementation and is the entry
// point into it: adapter enumeration and device creation both begin here,
// mirroring the original's free-standing vri_adapters_enumerate/
// vri_device_create functions rather than wgpu's layered Instance/Adapter
// split (the original has no Instance object).
type Backend interface {
	// Variant returns the backend type identifier.
	Variant() types.Backend

	// EnumerateAdapters fills up to limit adapter descriptors, sorted
	// descending by the packed (discrete, VRAM, vendor) score (spec.md §4.2).
	// limit <= 0 means "no limit".
	EnumerateAdapters(limit int) ([]types.AdapterInfo, error)

	// OpenDevice creates a logical device bound to the adapter named by
	// desc.AdapterLUID (spec.md §4.3).
	OpenDevice(desc types.DeviceDesc) (Device, error)
}

// Device is a logical GPU device: the root of every other resource.
type Device interface {
	// Queue returns the queue at index for the given type, or (nil, false)
	// if index is out of range (spec.md §4.3: "silently yield a null handle").
	Queue(t types.QueueType, index int) (Queue, bool)

	CreateCommandPool(desc types.CommandPoolDesc) (CommandPool, error)

	CreateFence(initialValue uint64) (Fence, error)

	CreateBuffer(desc types.BufferDesc) (Buffer, error)

	CreateTexture(desc types.TextureDesc) (Texture, error)
	// CreateTextureFromNative wraps a backend-owned resource (a swapchain
	// back-buffer) as a Texture without allocating new backend storage
	// (spec.md §4.7: "internal create_from_native_resource path").
	CreateTextureFromNative(native any, desc types.TextureDesc) (Texture, error)

	CreateShaderModule(desc types.ShaderModuleDesc) (ShaderModule, error)

	CreateGraphicsPipeline(desc types.GraphicsPipelineDesc) (Pipeline, error)
	CreateComputePipeline(desc types.ComputePipelineDesc) (Pipeline, error)

	CreateSwapchain(desc types.SwapchainDesc) (Swapchain, error)

	// Wait blocks until fence reaches value or timeout elapses.
	// Equivalent to WaitMany([]Fence{fence}, []uint64{value}, true, timeout).
	Wait(fence Fence, value uint64, timeout time.Duration) (bool, error)
	WaitMany(fences []Fence, values []uint64, waitAll bool, timeout time.Duration) (bool, error)

	// Destroy releases the native device. All resources created from it
	// must be destroyed first.
	Destroy()
}

// Queue handles command submission and presentation for one queue family.
type Queue interface {
	Type() types.QueueType

	// Submit enqueues each SubmitInfo's three phases — wait, execute,
	// signal — strictly ordered across phases (spec.md §4.9).
	Submit(submits []SubmitInfo) error

	// Present CPU-waits every wait fence, presents each swapchain, and
	// applies post-present signals (spec.md §4.8).
	Present(desc PresentInfo) (types.Result, []types.Result, error)

	// WaitIdle blocks until all previously submitted work on this queue is
	// visible to completed fence values (spec.md §4.9).
	WaitIdle() error
}

// SubmitInfo is one submission within a Submit call (spec.md §4.9).
type SubmitInfo struct {
	WaitFences     []Fence
	WaitValues     []uint64
	CommandBuffers []CommandBuffer
	SignalFences   []Fence
	SignalValues   []uint64
}

// PresentInfo is one Present call (spec.md §4.8).
type PresentInfo struct {
	WaitFences     []Fence
	WaitValues     []uint64
	Swapchains     []Swapchain
	SignalFences   []Fence
	SignalValues   []uint64
}

// Fence is the single synchronization primitive the core exposes
// (spec.md §4.4): a monotonically increasing 64-bit completed value.
type Fence interface {
	GetValue() uint64
	// SignalCPU sets completed = max(completed, value) and wakes waiters.
	// value must be strictly greater than the current completed value.
	SignalCPU(value uint64) error
	// SignalGPU behaves like SignalCPU but is the path used when a queue
	// operation (not the application directly) performs the signal.
	SignalGPU(value uint64) error
	Wait(value uint64, timeout time.Duration) (bool, error)
	Destroy()
}

// CommandBufferState is the 4-state lifecycle from spec.md §4.5.
type CommandBufferState uint8

const (
	CommandBufferInitial CommandBufferState = iota
	CommandBufferRecording
	CommandBufferExecutable
	CommandBufferPending
)

func (s CommandBufferState) String() string {
	switch s {
	case CommandBufferInitial:
		return "Initial"
	case CommandBufferRecording:
		return "Recording"
	case CommandBufferExecutable:
		return "Executable"
	case CommandBufferPending:
		return "Pending"
	default:
		return "Unknown"
	}
}

// CommandPool allocates CommandBuffers of one queue type (spec.md §4.5).
type CommandPool interface {
	QueueType() types.QueueType
	Flags() types.CommandPoolFlags
	AllocateCommandBuffers(count int) ([]CommandBuffer, error)
	FreeCommandBuffer(cb CommandBuffer)
	// Reset releases all allocations owned by the pool. On backends with
	// no pool concept this is a bookkeeping no-op (spec.md §4.5).
	Reset() error
	Destroy()
}

// CommandBuffer is a recording stream with the state machine of spec.md §4.5.
type CommandBuffer interface {
	State() CommandBufferState
	Begin() error
	End() error
	Reset() error

	// BindPipeline applies the redundant-state-change filter of spec.md §4.6.
	BindPipeline(p Pipeline) error

	CopyBuffer(src, dst Buffer, region types.BufferCopyRegion) error

	Destroy()
}

// Pipeline is an immutable bound-together bundle of shader stages and
// fixed-function state (spec.md §3, §4.6).
type Pipeline interface {
	IsCompute() bool
	Destroy()
}

// ShaderModule is opaque bytecode plus an entry point and stage tag.
type ShaderModule interface {
	Stage() types.ShaderStage
	Destroy()
}

// Buffer is a linear GPU-visible allocation (SPEC_FULL.md Supplemented Features #1).
type Buffer interface {
	Map() ([]byte, error)
	Unmap() error
	Destroy()
}

// Texture is a semantic image resource (spec.md §3, §4.7).
type Texture interface {
	Desc() types.TextureDesc
	Destroy()
}

// Swapchain is bound to a native window surface and owns N back-buffer
// textures (spec.md §3, §4.8).
type Swapchain interface {
	// AcquireTexture returns the next drawable texture and its index.
	// On single-image backends index is always 0 and the call never
	// blocks (spec.md §4.8, and SPEC_FULL.md's resolution of the
	// corresponding Open Question).
	AcquireTexture(fence Fence, signalValue uint64) (tex Texture, index uint32, err error)
	Flags() types.SwapchainFlags
	// WaitFrameLatency blocks until a frame-in-flight slot is free, the
	// application-facing counterpart of the native frame-latency-waitable
	// handle (spec.md §4.8 step 5). On a swapchain created without
	// SwapchainFlagWaitable it returns (true, nil) immediately. A
	// negative timeout waits indefinitely.
	WaitFrameLatency(timeout time.Duration) (bool, error)
	Destroy()
}
