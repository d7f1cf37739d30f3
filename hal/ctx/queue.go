// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"fmt"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// Queue executes submissions for one queue family. There is no hardware
// execution here: "executing" a command buffer means walking its frozen
// op list, performing recorded buffer copies on the buffers' backing
// memory; recorded bind ops have no effect beyond being recorded. Ported
// in structure from vri_d3d11_queue.c:d3d11_queue_submit.
type Queue struct {
	device *Device
	typ    types.QueueType
}

func newQueue(d *Device, t types.QueueType) *Queue {
	return &Queue{device: d, typ: t}
}

// Type returns the queue family this queue belongs to.
func (q *Queue) Type() types.QueueType { return q.typ }

// Submit applies each SubmitInfo's three phases in order — wait, execute,
// signal — unordered within a phase, strictly ordered across phases
// (spec.md §4.9).
func (q *Queue) Submit(submits []hal.SubmitInfo) error {
	for _, s := range submits {
		if len(s.WaitFences) != len(s.WaitValues) {
			return fmt.Errorf("ctx: submit wait fences/values length mismatch: %w", hal.ErrInvalidAPIUsage)
		}
		if len(s.SignalFences) != len(s.SignalValues) {
			return fmt.Errorf("ctx: submit signal fences/values length mismatch: %w", hal.ErrInvalidAPIUsage)
		}

		// Phase 1: wait. Unordered within the phase — a poll-based wait-all
		// satisfies that without needing real concurrency here.
		if ok, err := waitMany(s.WaitFences, s.WaitValues, true, -1); err != nil {
			return err
		} else if !ok {
			return fmt.Errorf("ctx: submit wait phase did not complete: %w", hal.ErrTimeout)
		}

		// Phase 2: execute. Each command buffer's frozen ops are applied in
		// submission order; buffers move to the advisory Pending state.
		for _, cb := range s.CommandBuffers {
			ccb, ok := cb.(*CommandBuffer)
			if !ok {
				return fmt.Errorf("ctx: submit: not a ctx command buffer: %w", hal.ErrInvalidAPIUsage)
			}
			if ccb.State() != hal.CommandBufferExecutable {
				return fmt.Errorf("ctx: submit: command buffer not Executable: %w", hal.ErrInvalidAPIUsage)
			}
			applyRecordedOps(ccb.finished())
			ccb.markPending()
		}

		// Phase 3: signal.
		for i, f := range s.SignalFences {
			if err := f.SignalGPU(s.SignalValues[i]); err != nil {
				return err
			}
		}
	}
	hal.Logger().Debug("ctx: Submit", "queue", q.typ, "submit_count", len(submits))
	return nil
}

// applyRecordedOps is the software execution step: each recorded
// copy_buffer op copies region.Size bytes from the source buffer's
// backing slice into the destination's. Every other op kind is skipped.
func applyRecordedOps(ops []recordedOp) {
	for _, op := range ops {
		if op.kind == "copy_buffer" && op.copyOp != nil {
			c := op.copyOp
			c.dst.mu.Lock()
			c.src.mu.Lock()
			n := copy(c.dst.backing[c.region.DstOffset:], c.src.backing[c.region.SrcOffset:c.region.SrcOffset+c.region.Size])
			_ = n
			c.src.mu.Unlock()
			c.dst.mu.Unlock()
		}
	}
}

// Present CPU-waits every wait fence, presents each swapchain, and applies
// the clamped post-present signal set, ported from
// vri_d3d11_queue.c:d3d11_queue_present.
func (q *Queue) Present(desc hal.PresentInfo) (types.Result, []types.Result, error) {
	if len(desc.WaitFences) != len(desc.WaitValues) {
		return types.ResultInvalidAPIUsage, nil, fmt.Errorf("ctx: present wait fences/values length mismatch: %w", hal.ErrInvalidAPIUsage)
	}
	if _, err := waitMany(desc.WaitFences, desc.WaitValues, true, -1); err != nil {
		return types.ResultSystemFailure, nil, err
	}

	perSwapchain := make([]types.Result, len(desc.Swapchains))
	overall := types.ResultSuccess
	for i, sc := range desc.Swapchains {
		ccs, ok := sc.(*Swapchain)
		if !ok {
			perSwapchain[i] = types.ResultSystemFailure
			overall = types.ResultSystemFailure
			continue
		}
		r := ccs.doPresent()
		perSwapchain[i] = r
		if types.IsError(r) || (r != types.ResultSuccess && overall == types.ResultSuccess) {
			overall = r
		}
	}

	// min(signalFenceCount, swapchainCount): only that many post-present
	// signals fire, one per presented swapchain, ported verbatim from the
	// original's clamp.
	signalCount := len(desc.SignalFences)
	if len(desc.Swapchains) < signalCount {
		signalCount = len(desc.Swapchains)
	}
	for i := 0; i < signalCount; i++ {
		if err := desc.SignalFences[i].SignalGPU(desc.SignalValues[i]); err != nil {
			return types.ResultSystemFailure, perSwapchain, err
		}
	}

	return overall, perSwapchain, nil
}

// WaitIdle signals a scratch fence then CPU-waits it, the recipe spec.md
// §4.9 prescribes for backends without a literal "flush the immediate
// context" primitive — used unconditionally here since ctx has no such
// primitive at all (SPEC_FULL.md §4.9).
func (q *Queue) WaitIdle() error {
	f := newFence(0)
	if err := f.SignalCPU(1); err != nil {
		return err
	}
	ok, err := f.Wait(1, -1)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("ctx: wait_idle scratch fence did not signal: %w", hal.ErrTimeout)
	}
	return nil
}
