// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"fmt"
	"sync"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// recordedOp is one entry in a finished command list, the software
// stand-in for the D3D11 ID3D11CommandList a deferred context produces at
// End (vri_d3d11_command_buffer.c:d3d11_command_buffer_end).
type recordedOp struct {
	kind   string
	pipe   *Pipeline
	binds  []bindOp
	copyOp *copyBufferOp
}

type copyBufferOp struct {
	src, dst *Buffer
	region   types.BufferCopyRegion
}

// CommandBuffer is a deferred-context-backed recording stream with the
// 4-state lifecycle of spec.md §4.5.
type CommandBuffer struct {
	pool *CommandPool

	mu             sync.Mutex
	state          hal.CommandBufferState
	boundPipeline  *Pipeline
	recorded       []recordedOp
	finishedList   []recordedOp
}

func newCommandBuffer(pool *CommandPool) *CommandBuffer {
	return &CommandBuffer{pool: pool, state: hal.CommandBufferInitial}
}

// State returns the current lifecycle state.
func (cb *CommandBuffer) State() hal.CommandBufferState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Begin transitions Initial|Executable -> Recording. Pending -> Recording
// is additionally allowed when the owning pool carries
// CommandPoolFlagResettable (spec.md §4.5's state table: "Pending ->
// reset/begin | allowed only if the pool has the resettable flag"), and
// rejected otherwise (vri_d3d11_command_buffer.c:d3d11_command_buffer_begin).
func (cb *CommandBuffer) Begin() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	switch cb.state {
	case hal.CommandBufferInitial, hal.CommandBufferExecutable:
	case hal.CommandBufferPending:
		if cb.pool.Flags()&types.CommandPoolFlagResettable == 0 {
			return fmt.Errorf("ctx: begin from Pending requires a resettable pool: %w", hal.ErrInvalidAPIUsage)
		}
	default:
		return fmt.Errorf("ctx: begin from state %s: %w", cb.state, hal.ErrInvalidAPIUsage)
	}
	cb.state = hal.CommandBufferRecording
	cb.boundPipeline = nil
	cb.recorded = cb.recorded[:0]
	return nil
}

// End finalizes the recorded list, transitioning Recording -> Executable
// (d3d11_command_buffer_end).
func (cb *CommandBuffer) End() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != hal.CommandBufferRecording {
		return fmt.Errorf("ctx: end from state %s: %w", cb.state, hal.ErrInvalidAPIUsage)
	}
	cb.finishedList = append([]recordedOp(nil), cb.recorded...)
	cb.state = hal.CommandBufferExecutable
	return nil
}

// Reset releases the recorded list and returns to Initial from any state
// (spec.md §4.5: "any -> reset"), except Pending, which requires the
// owning pool to carry CommandPoolFlagResettable — the same gate Begin
// applies. Idempotent on an already-Initial buffer (spec.md §8).
func (cb *CommandBuffer) Reset() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == hal.CommandBufferPending && cb.pool.Flags()&types.CommandPoolFlagResettable == 0 {
		return fmt.Errorf("ctx: reset from Pending requires a resettable pool: %w", hal.ErrInvalidAPIUsage)
	}
	cb.state = hal.CommandBufferInitial
	cb.boundPipeline = nil
	cb.recorded = nil
	cb.finishedList = nil
	return nil
}

// BindPipeline applies the redundant-state-change filter and records the
// emitted ops (spec.md §4.6).
func (cb *CommandBuffer) BindPipeline(p hal.Pipeline) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != hal.CommandBufferRecording {
		return fmt.Errorf("ctx: bind_pipeline outside Recording (state %s): %w", cb.state, hal.ErrInvalidAPIUsage)
	}
	np, ok := p.(*Pipeline)
	if !ok || np == nil {
		return fmt.Errorf("ctx: bind_pipeline: not a ctx pipeline: %w", hal.ErrInvalidAPIUsage)
	}
	ops := diffPipelineBind(cb.boundPipeline, np)
	cb.recorded = append(cb.recorded, recordedOp{kind: "bind_pipeline", pipe: np, binds: ops})
	cb.boundPipeline = np
	return nil
}

// CopyBuffer records a staging-to-target buffer copy
// (SPEC_FULL.md Supplemented Features #1, ported from the original's
// cmd_copy_buffer).
func (cb *CommandBuffer) CopyBuffer(src, dst hal.Buffer, region types.BufferCopyRegion) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state != hal.CommandBufferRecording {
		return fmt.Errorf("ctx: copy_buffer outside Recording (state %s): %w", cb.state, hal.ErrInvalidAPIUsage)
	}
	s, ok1 := src.(*Buffer)
	d, ok2 := dst.(*Buffer)
	if !ok1 || !ok2 {
		return fmt.Errorf("ctx: copy_buffer: not a ctx buffer: %w", hal.ErrInvalidAPIUsage)
	}
	cb.recorded = append(cb.recorded, recordedOp{kind: "copy_buffer", copyOp: &copyBufferOp{src: s, dst: d, region: region}})
	return nil
}

// Destroy removes the buffer from its pool's bookkeeping.
func (cb *CommandBuffer) Destroy() {
	cb.pool.FreeCommandBuffer(cb)
}

// finished returns the frozen op list produced by End, used by Queue.Submit.
func (cb *CommandBuffer) finished() []recordedOp {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.finishedList
}

// markPending is advisory bookkeeping only (spec.md §4.5: "Pending...
// advisory only; the core need not track completion").
func (cb *CommandBuffer) markPending() {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == hal.CommandBufferExecutable {
		cb.state = hal.CommandBufferPending
	}
}
