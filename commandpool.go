// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/internal/objtrack"
	"github.com/viktorfejes/VRI/types"
)

// CommandPool allocates CommandBuffers of one queue type (spec.md §4.5).
type CommandPool struct {
	objectBase
	backend hal.CommandPool
}

// QueueType returns the queue family this pool allocates buffers for.
func (p *CommandPool) QueueType() types.QueueType { return p.backend.QueueType() }

// Flags returns the reset/transient flags this pool was created with.
func (p *CommandPool) Flags() types.CommandPoolFlags { return p.backend.Flags() }

// AllocateCommandBuffers allocates count command buffers, all starting in
// the Initial state.
func (p *CommandPool) AllocateCommandBuffers(count int) ([]*CommandBuffer, error) {
	backendBufs, err := p.backend.AllocateCommandBuffers(count)
	if err != nil {
		return nil, wrap(err)
	}
	out := make([]*CommandBuffer, len(backendBufs))
	for i, b := range backendBufs {
		base := objectBase{device: p.device, id: p.device.registry.Track(objtrack.ObjectCommandBuffer)}
		out[i] = &CommandBuffer{objectBase: base, backend: b, pool: p}
	}
	return out, nil
}

// FreeCommandBuffer releases a single command buffer back to the pool.
func (p *CommandPool) FreeCommandBuffer(cb *CommandBuffer) {
	p.backend.FreeCommandBuffer(cb.backend)
	p.device.registry.Untrack(cb.id)
}

// Reset releases all allocations owned by the pool. On backends with no
// pool concept this is a bookkeeping no-op (spec.md §4.5).
func (p *CommandPool) Reset() error {
	return wrap(p.backend.Reset())
}

// Destroy releases the pool.
func (p *CommandPool) Destroy() {
	p.backend.Destroy()
	p.device.registry.Untrack(p.id)
}
