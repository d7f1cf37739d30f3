// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri_test

import (
	"testing"
	"time"

	vri "github.com/viktorfejes/VRI"
	"github.com/viktorfejes/VRI/hal/ctx"
	"github.com/viktorfejes/VRI/types"
)

// Scenarios 3 (state-machine rejection), 4 (pipeline redundant bind), and
// 5 (adapter sort) are exercised directly against the ctx backend and the
// hal package in hal/ctx/commandbuffer_test.go, hal/ctx/pipeline_test.go,
// and hal/adapter_test.go. This file covers the three that need a full
// device: the triangle frame loop, the timeline wait timeout, and the
// occluded-present recovery.

func newTestDevice(t *testing.T) *vri.Device {
	t.Helper()
	d, err := vri.CreateDevice(types.DeviceDesc{
		Backend: types.BackendCtx,
		Queues: []types.QueueRequest{
			{Type: types.QueueTypeGraphics, Count: 1},
			{Type: types.QueueTypeCompute, Count: 1},
		},
	})
	if err != nil {
		t.Fatalf("CreateDevice: %v", err)
	}
	return d
}

// TestTriangleFrameLoop is spec.md §8 scenario 1.
func TestTriangleFrameLoop(t *testing.T) {
	d := newTestDevice(t)

	sc, err := d.CreateSwapchain(types.SwapchainDesc{
		Width: 1024, Height: 720,
		TextureCount: 2,
		Flags:        types.SwapchainFlagVSync,
	})
	if err != nil {
		t.Fatalf("CreateSwapchain: %v", err)
	}

	pool, err := d.CreateCommandPool(types.CommandPoolDesc{QueueType: types.QueueTypeGraphics, Flags: types.CommandPoolFlagResettable})
	if err != nil {
		t.Fatalf("CreateCommandPool: %v", err)
	}
	cbs, err := pool.AllocateCommandBuffers(2)
	if err != nil {
		t.Fatalf("AllocateCommandBuffers: %v", err)
	}

	frameFence, err := d.CreateFence(0)
	if err != nil {
		t.Fatalf("CreateFence(frame): %v", err)
	}
	imageAvailable, err := d.CreateFence(0)
	if err != nil {
		t.Fatalf("CreateFence(image_available): %v", err)
	}

	queue := d.Queue(types.QueueTypeGraphics, 0)
	if queue == nil {
		t.Fatal("expected a graphics queue at index 0")
	}

	var acquireCounter, frameCompleteCounter uint64
	for frameNumber := 0; frameNumber < 5; frameNumber++ {
		if frameNumber >= 2 {
			ok, err := frameFence.Wait(uint64(frameNumber-1), time.Second)
			if err != nil {
				t.Fatalf("frame %d: wait: %v", frameNumber, err)
			}
			if !ok {
				t.Fatalf("frame %d: frame fence wait did not complete", frameNumber)
			}
		}

		acquireCounter++
		_, _, err := sc.AcquireTexture(imageAvailable, acquireCounter)
		if err != nil {
			t.Fatalf("frame %d: AcquireTexture: %v", frameNumber, err)
		}

		cb := cbs[frameNumber%len(cbs)]
		if err := cb.Begin(); err != nil {
			t.Fatalf("frame %d: Begin: %v", frameNumber, err)
		}
		if err := cb.End(); err != nil {
			t.Fatalf("frame %d: End: %v", frameNumber, err)
		}

		frameCompleteCounter++
		if err := queue.Submit([]vri.SubmitInfo{{
			Wait:           []vri.FenceWait{{Fence: imageAvailable, Value: acquireCounter}},
			CommandBuffers: []*vri.CommandBuffer{cb},
			Signal:         []vri.FenceWait{{Fence: frameFence, Value: frameCompleteCounter}},
		}}); err != nil {
			t.Fatalf("frame %d: Submit: %v", frameNumber, err)
		}

		_, _, err = queue.Present(vri.PresentInfo{
			Wait:       []vri.FenceWait{{Fence: frameFence, Value: frameCompleteCounter}},
			Swapchains: []*vri.Swapchain{sc},
		})
		if err != nil {
			t.Fatalf("frame %d: Present: %v", frameNumber, err)
		}
	}

	if frameFence.GetValue() < 4 {
		t.Fatalf("expected frame fence >= 4 after the loop, got %d", frameFence.GetValue())
	}

	frameFence.Destroy()
	imageAvailable.Destroy()
	for _, cb := range cbs {
		cb.Destroy()
	}
	pool.Destroy()
	sc.Destroy()
	d.Destroy()

	if n := d.LiveObjectCount(); n != 0 {
		t.Fatalf("expected no live objects after destroying everything, got %d: %s", n, d.ReportLiveObjects())
	}
}

// TestTimelineWaitTimeout is spec.md §8 scenario 2.
func TestTimelineWaitTimeout(t *testing.T) {
	d := newTestDevice(t)
	defer d.Destroy()

	f, err := d.CreateFence(0)
	if err != nil {
		t.Fatalf("CreateFence: %v", err)
	}
	defer f.Destroy()

	ok, err := f.Wait(5, 10*time.Millisecond)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if ok {
		t.Fatal("expected Wait to time out before the fence reaches 5")
	}

	if err := f.SignalCPU(5); err != nil {
		t.Fatalf("SignalCPU: %v", err)
	}
	ok, err = f.Wait(5, -1)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !ok {
		t.Fatal("expected Wait to succeed once the fence reached 5")
	}
}

// TestOccludedPresentRecovers is spec.md §8 scenario 6.
func TestOccludedPresentRecovers(t *testing.T) {
	d := newTestDevice(t)
	defer d.Destroy()

	sc, err := d.CreateSwapchain(types.SwapchainDesc{Width: 640, Height: 480, TextureCount: 2})
	if err != nil {
		t.Fatalf("CreateSwapchain: %v", err)
	}
	defer sc.Destroy()

	queue := d.Queue(types.QueueTypeGraphics, 0)
	if queue == nil {
		t.Fatal("expected a graphics queue at index 0")
	}

	backendSwapchain := swapchainBackend(t, sc)
	backendSwapchain.SetPresentFault(func() (bool, bool) { return false, true })

	overall, per, err := queue.Present(vri.PresentInfo{Swapchains: []*vri.Swapchain{sc}})
	if err != nil {
		t.Fatalf("Present: %v", err)
	}
	if overall != types.ResultSuboptimal {
		t.Fatalf("expected Suboptimal while occluded, got %s", overall)
	}
	if len(per) != 1 || per[0] != types.ResultSuboptimal {
		t.Fatalf("expected per-swapchain Suboptimal, got %v", per)
	}

	backendSwapchain.SetPresentFault(nil)
	overall, _, err = queue.Present(vri.PresentInfo{Swapchains: []*vri.Swapchain{sc}})
	if err != nil {
		t.Fatalf("Present after recovery: %v", err)
	}
	if overall != types.ResultSuccess {
		t.Fatalf("expected Success once no longer occluded, got %s", overall)
	}
}

// swapchainBackend reaches into the root Swapchain wrapper to fetch its
// ctx.Swapchain for fault injection; vri's public API has no such hook
// because real backends have no reason to expose it.
func swapchainBackend(t *testing.T, sc *vri.Swapchain) *ctx.Swapchain {
	t.Helper()
	b, ok := vri.SwapchainBackendForTest(sc).(*ctx.Swapchain)
	if !ok {
		t.Fatal("expected the ctx backend's swapchain")
	}
	return b
}
