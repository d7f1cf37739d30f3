// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"testing"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

func newTestCommandBuffer(t *testing.T) *CommandBuffer {
	t.Helper()
	d, err := newDevice(types.DeviceDesc{}, types.AdapterInfo{LUID: 1})
	if err != nil {
		t.Fatalf("newDevice: %v", err)
	}
	pool := newCommandPool(d, types.CommandPoolDesc{QueueType: types.QueueTypeGraphics})
	return newCommandBuffer(pool)
}

func newResettableTestCommandBuffer(t *testing.T) *CommandBuffer {
	t.Helper()
	d, err := newDevice(types.DeviceDesc{}, types.AdapterInfo{LUID: 1})
	if err != nil {
		t.Fatalf("newDevice: %v", err)
	}
	pool := newCommandPool(d, types.CommandPoolDesc{QueueType: types.QueueTypeGraphics, Flags: types.CommandPoolFlagResettable})
	return newCommandBuffer(pool)
}

// TestCommandBufferStateMachineRejection is spec.md §8 scenario 3 verbatim.
func TestCommandBufferStateMachineRejection(t *testing.T) {
	cb := newTestCommandBuffer(t)

	if err := cb.End(); err == nil {
		t.Fatal("expected End from Initial to fail")
	}
	if cb.State() != hal.CommandBufferInitial {
		t.Fatalf("state changed after rejected End: %s", cb.State())
	}

	if err := cb.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := cb.Begin(); err == nil {
		t.Fatal("expected second consecutive Begin (Recording -> Recording) to fail")
	}
}

func TestCommandBufferResetIdempotentFromInitial(t *testing.T) {
	cb := newTestCommandBuffer(t)
	if err := cb.Reset(); err != nil {
		t.Fatalf("Reset on an already-Initial buffer must succeed: %v", err)
	}
	if cb.State() != hal.CommandBufferInitial {
		t.Fatalf("expected Initial after Reset, got %s", cb.State())
	}
}

func TestCommandBufferFullLifecycle(t *testing.T) {
	cb := newTestCommandBuffer(t)

	if err := cb.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if cb.State() != hal.CommandBufferRecording {
		t.Fatalf("expected Recording, got %s", cb.State())
	}
	if err := cb.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if cb.State() != hal.CommandBufferExecutable {
		t.Fatalf("expected Executable, got %s", cb.State())
	}

	cb.markPending()
	if cb.State() != hal.CommandBufferPending {
		t.Fatalf("expected Pending, got %s", cb.State())
	}
}

// TestCommandBufferPendingResetRequiresResettablePool is spec.md §4.5's
// state table: "Pending -> reset/begin | allowed only if the pool has the
// resettable flag".
func TestCommandBufferPendingResetRequiresResettablePool(t *testing.T) {
	cb := newTestCommandBuffer(t)
	if err := cb.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := cb.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	cb.markPending()

	if err := cb.Reset(); err == nil {
		t.Fatal("expected Reset from Pending on a non-resettable pool to fail")
	}
	if err := cb.Begin(); err == nil {
		t.Fatal("expected Begin from Pending on a non-resettable pool to fail")
	}
	if cb.State() != hal.CommandBufferPending {
		t.Fatalf("state must not change after rejected transitions, got %s", cb.State())
	}
}

func TestCommandBufferPendingResetAllowedWithResettablePool(t *testing.T) {
	cb := newResettableTestCommandBuffer(t)
	if err := cb.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := cb.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	cb.markPending()

	if err := cb.Reset(); err != nil {
		t.Fatalf("expected Reset from Pending on a resettable pool to succeed: %v", err)
	}
	if cb.State() != hal.CommandBufferInitial {
		t.Fatalf("expected Initial after Reset, got %s", cb.State())
	}
}

func TestCommandBufferBindPipelineOutsideRecordingFails(t *testing.T) {
	cb := newTestCommandBuffer(t)
	p, err := createComputePipeline(types.ComputePipelineDesc{ComputeShader: &types.ShaderModuleDesc{Stage: types.ShaderStageCompute}})
	if err != nil {
		t.Fatalf("createComputePipeline: %v", err)
	}
	if err := cb.BindPipeline(p); err == nil {
		t.Fatal("expected BindPipeline outside Recording to fail")
	}
}
