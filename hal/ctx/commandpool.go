// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"sync"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// CommandPool allocates deferred-context-backed command buffers of one
// queue type. D3D11 deferred contexts need no pool to reclaim memory from
// (src/backends/d3d11/vri_d3d11_command_pool.c's reset is a stub), so
// Reset here only forgets which buffers it allocated; it does not
// invalidate buffers still in use, matching the original.
type CommandPool struct {
	device    *Device
	queueType types.QueueType
	flags     types.CommandPoolFlags

	mu      sync.Mutex
	buffers map[*CommandBuffer]struct{}
}

func newCommandPool(d *Device, desc types.CommandPoolDesc) *CommandPool {
	return &CommandPool{device: d, queueType: desc.QueueType, flags: desc.Flags, buffers: make(map[*CommandBuffer]struct{})}
}

// QueueType returns the queue family this pool allocates buffers for.
func (p *CommandPool) QueueType() types.QueueType { return p.queueType }

// Flags returns the reset/transient flags this pool was created with
// (spec.md §3).
func (p *CommandPool) Flags() types.CommandPoolFlags { return p.flags }

// AllocateCommandBuffers allocates count command buffers, all starting in
// the Initial state (spec.md §4.5).
func (p *CommandPool) AllocateCommandBuffers(count int) ([]hal.CommandBuffer, error) {
	out := make([]hal.CommandBuffer, 0, count)
	p.mu.Lock()
	defer p.mu.Unlock()
	for i := 0; i < count; i++ {
		cb := newCommandBuffer(p)
		p.buffers[cb] = struct{}{}
		out = append(out, cb)
	}
	return out, nil
}

// FreeCommandBuffer releases a single command buffer back to the pool.
func (p *CommandPool) FreeCommandBuffer(cb hal.CommandBuffer) {
	ccb, ok := cb.(*CommandBuffer)
	if !ok {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.buffers, ccb)
}

// Reset forgets every buffer this pool tracks; it does not transition
// Pending buffers, matching the original and spec.md §9's Open Question
// resolution ("the spec declares it the caller's responsibility").
func (p *CommandPool) Reset() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.buffers = make(map[*CommandBuffer]struct{})
	return nil
}

// Destroy releases the pool's bookkeeping. Buffers already handed out
// remain valid until individually destroyed.
func (p *CommandPool) Destroy() {}
