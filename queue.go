// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// Queue handles command submission and presentation for one queue family
// (spec.md §4.9). Submit/Present/WaitIdle on a single Queue are
// caller-serialized: the core holds no internal per-queue mutex (spec.md §5).
type Queue struct {
	objectBase
	backend hal.Queue
}

// Type returns the queue family this queue belongs to.
func (q *Queue) Type() types.QueueType { return q.backend.Type() }

// SubmitInfo is one submission within a Submit call (spec.md §4.9).
type SubmitInfo struct {
	Wait           []FenceWait
	CommandBuffers []*CommandBuffer
	Signal         []FenceWait
}

// FenceWait pairs a fence with the target value it is waited on or
// signaled to; SubmitInfo and PresentInfo use it for both their Wait and
// Signal lists.
type FenceWait struct {
	Fence *Fence
	Value uint64
}

// Submit enqueues each SubmitInfo's three phases — wait, execute, signal —
// strictly ordered across phases, unordered within a phase (spec.md §4.9).
func (q *Queue) Submit(submits []SubmitInfo) error {
	backendSubmits := make([]hal.SubmitInfo, len(submits))
	for i, s := range submits {
		bs := hal.SubmitInfo{
			CommandBuffers: make([]hal.CommandBuffer, len(s.CommandBuffers)),
		}
		for _, fw := range s.Wait {
			bs.WaitFences = append(bs.WaitFences, fw.Fence.backend)
			bs.WaitValues = append(bs.WaitValues, fw.Value)
		}
		for j, cb := range s.CommandBuffers {
			bs.CommandBuffers[j] = cb.backend
		}
		for _, fw := range s.Signal {
			bs.SignalFences = append(bs.SignalFences, fw.Fence.backend)
			bs.SignalValues = append(bs.SignalValues, fw.Value)
		}
		backendSubmits[i] = bs
	}
	return wrap(q.backend.Submit(backendSubmits))
}

// PresentInfo is one Present call (spec.md §4.8).
type PresentInfo struct {
	Wait       []FenceWait
	Swapchains []*Swapchain
	Signal     []FenceWait
}

// Present CPU-waits every wait fence, presents each swapchain, and applies
// the clamped post-present signal set. The overall Result and a per-
// swapchain Result slice are both returned so a caller can tell which
// swapchain in a multi-swapchain present needs recreation (spec.md §4.8).
func (q *Queue) Present(desc PresentInfo) (types.Result, []types.Result, error) {
	bp := hal.PresentInfo{
		Swapchains: make([]hal.Swapchain, len(desc.Swapchains)),
	}
	for _, fw := range desc.Wait {
		bp.WaitFences = append(bp.WaitFences, fw.Fence.backend)
		bp.WaitValues = append(bp.WaitValues, fw.Value)
	}
	for i, sc := range desc.Swapchains {
		bp.Swapchains[i] = sc.backend
	}
	for _, fw := range desc.Signal {
		bp.SignalFences = append(bp.SignalFences, fw.Fence.backend)
		bp.SignalValues = append(bp.SignalValues, fw.Value)
	}
	overall, per, err := q.backend.Present(bp)
	return overall, per, wrap(err)
}

// WaitIdle blocks until all previously submitted work on this queue is
// visible to completed fence values (spec.md §4.9).
func (q *Queue) WaitIdle() error {
	return wrap(q.backend.WaitIdle())
}
