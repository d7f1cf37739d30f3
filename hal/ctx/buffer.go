// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"fmt"
	"sync"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// Buffer is a linear GPU-visible allocation (SPEC_FULL.md Supplemented
// Features #1, ported from the original's buffer_create/buffer_map/
// buffer_unmap). There is no suballocator here — each Buffer owns its own
// backing slice, matching the original's one-resource-per-VriBuffer model.
type Buffer struct {
	device *Device
	desc   types.BufferDesc

	mu     sync.Mutex
	backing []byte
	mapped  bool
}

func newBuffer(d *Device, desc types.BufferDesc) *Buffer {
	return &Buffer{device: d, desc: desc, backing: make([]byte, desc.Size)}
}

// Map returns the buffer's backing memory for CPU access. Only
// Upload/Readback-memory-type buffers are mappable on real hardware; ctx
// does not enforce that distinction since it has no device-local memory of
// its own to distinguish from (SPEC_FULL.md §3's allocation-callback note
// applies here too: this is Go-GC-owned memory, not a mapped device range).
func (b *Buffer) Map() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mapped {
		return nil, fmt.Errorf("ctx: buffer already mapped: %w", hal.ErrInvalidAPIUsage)
	}
	b.mapped = true
	return b.backing, nil
}

// Unmap releases the mapping obtained from Map.
func (b *Buffer) Unmap() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.mapped {
		return fmt.Errorf("ctx: buffer not mapped: %w", hal.ErrInvalidAPIUsage)
	}
	b.mapped = false
	return nil
}

func (b *Buffer) Destroy() {}
