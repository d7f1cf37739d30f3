// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"testing"
	"time"

	"github.com/viktorfejes/VRI/types"
)

func TestWaitFrameLatencyImmediateWithoutWaitableFlag(t *testing.T) {
	d, err := newDevice(types.DeviceDesc{}, types.AdapterInfo{LUID: 1})
	if err != nil {
		t.Fatalf("newDevice: %v", err)
	}
	sc := newSwapchain(d, types.SwapchainDesc{Width: 1, Height: 1, TextureCount: 2})

	for i := 0; i < 5; i++ {
		ok, err := sc.WaitFrameLatency(0)
		if err != nil {
			t.Fatalf("WaitFrameLatency: %v", err)
		}
		if !ok {
			t.Fatal("expected a non-waitable swapchain to never block")
		}
	}
}

func TestWaitFrameLatencyBoundsInFlightFrames(t *testing.T) {
	d, err := newDevice(types.DeviceDesc{}, types.AdapterInfo{LUID: 1})
	if err != nil {
		t.Fatalf("newDevice: %v", err)
	}
	sc := newSwapchain(d, types.SwapchainDesc{
		Width: 1, Height: 1, TextureCount: 2,
		Flags:          types.SwapchainFlagWaitable,
		FramesInFlight: 2,
	})

	for i := 0; i < 2; i++ {
		ok, err := sc.WaitFrameLatency(time.Millisecond)
		if err != nil {
			t.Fatalf("WaitFrameLatency %d: %v", i, err)
		}
		if !ok {
			t.Fatalf("WaitFrameLatency %d: expected a free slot", i)
		}
	}

	ok, err := sc.WaitFrameLatency(5 * time.Millisecond)
	if err != nil {
		t.Fatalf("WaitFrameLatency: %v", err)
	}
	if ok {
		t.Fatal("expected WaitFrameLatency to time out once frames_in_flight slots are exhausted")
	}

	if got := sc.doPresent(); got != types.ResultSuccess {
		t.Fatalf("doPresent: %s", got)
	}

	ok, err = sc.WaitFrameLatency(5 * time.Millisecond)
	if err != nil {
		t.Fatalf("WaitFrameLatency after present: %v", err)
	}
	if !ok {
		t.Fatal("expected present to free a frame-in-flight slot")
	}
}
