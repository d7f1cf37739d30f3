// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// CommandBuffer is a recording stream with the 4-state lifecycle of
// spec.md §4.5: Initial -> Recording -> Executable -> Pending. A command
// buffer has a single owning goroutine between Begin and End; concurrent
// use from two goroutines at once is a caller error (spec.md §5).
type CommandBuffer struct {
	objectBase
	backend hal.CommandBuffer
	pool    *CommandPool
}

// State returns the current lifecycle state.
func (cb *CommandBuffer) State() hal.CommandBufferState { return cb.backend.State() }

// Begin transitions Initial|Executable -> Recording.
func (cb *CommandBuffer) Begin() error { return wrap(cb.backend.Begin()) }

// End finalizes the recording, transitioning Recording -> Executable.
func (cb *CommandBuffer) End() error { return wrap(cb.backend.End()) }

// Reset returns the buffer to Initial from any state, except that a
// Pending buffer can be reset only if its pool has CommandPoolFlagResettable.
func (cb *CommandBuffer) Reset() error { return wrap(cb.backend.Reset()) }

// BindPipeline applies the redundant-state-change filter of spec.md §4.6:
// only the sub-slots that differ from the previously bound pipeline on
// this command buffer are actually emitted to the backend.
func (cb *CommandBuffer) BindPipeline(p *Pipeline) error {
	return wrap(cb.backend.BindPipeline(p.backend))
}

// CopyBuffer records a buffer-to-buffer copy (SPEC_FULL.md Supplemented
// Features #1).
func (cb *CommandBuffer) CopyBuffer(src, dst *Buffer, region types.BufferCopyRegion) error {
	return wrap(cb.backend.CopyBuffer(src.backend, dst.backend, region))
}

// Destroy releases the command buffer back to its pool.
func (cb *CommandBuffer) Destroy() {
	cb.pool.FreeCommandBuffer(cb)
}
