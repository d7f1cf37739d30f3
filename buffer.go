// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import "github.com/viktorfejes/VRI/hal"

// Buffer is a linear GPU-visible allocation (SPEC_FULL.md Supplemented
// Features #1).
type Buffer struct {
	objectBase
	backend hal.Buffer
}

// Map returns the buffer's backing memory for CPU access.
func (b *Buffer) Map() ([]byte, error) {
	data, err := b.backend.Map()
	return data, wrap(err)
}

// Unmap releases the mapping obtained from Map.
func (b *Buffer) Unmap() error { return wrap(b.backend.Unmap()) }

// Destroy releases the buffer.
func (b *Buffer) Destroy() {
	b.backend.Destroy()
	b.device.registry.Untrack(b.id)
}
