// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"time"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// Swapchain is a single-drawable-image swapchain: image_index is always 0
// and AcquireTexture never blocks, ported from
// vri_d3d11_swapchain.c:swapchain_acquire_next_image (spec.md §4.8, and
// the resolution of its accompanying Open Question).
type Swapchain struct {
	device *Device
	desc   types.SwapchainDesc
	image  *Texture

	// waitable stands in for the real backend's frame-latency-waitable
	// HANDLE (vri_d3d11_swapchain.c:93-104,
	// SetMaximumFrameLatency/GetFrameLatencyWaitableObject), present only
	// when desc.Flags has SwapchainFlagWaitable. It is a counting
	// semaphore of capacity desc.FramesInFlight: WaitFrameLatency
	// consumes a slot, doPresent returns one, bounding how many frames
	// the application can have in flight at once.
	waitable chan struct{}

	// forcePresentFault lets tests simulate a native present outcome other
	// than success (spec.md §8 scenario 6: "force the native present to
	// return the occluded status"). nil means "always succeeds", the
	// behavior every real present call has in this software backend.
	forcePresentFault func() (deviceRemoved, occluded bool)
}

func newSwapchain(d *Device, desc types.SwapchainDesc) *Swapchain {
	format := types.FormatB8G8R8A8Unorm
	if desc.Format == types.SwapchainFormatRec709_16BitLinear {
		format = types.FormatR16G16B16A16Float
	}
	td := types.TextureDesc{
		Type:       types.TextureType2D,
		Format:     format,
		Width:      desc.Width,
		Height:     desc.Height,
		Depth:      1,
		Usage:      types.TextureUsageColorAttachment,
		LayerCount: 1,
		MipCount:   1,
	}

	s := &Swapchain{
		device: d,
		desc:   desc,
		image:  &Texture{device: d, desc: td, native: "swapchain-backbuffer"},
	}

	if desc.Flags&types.SwapchainFlagWaitable != 0 {
		// SetMaximumFrameLatency(frames_in_flight); GetFrameLatencyWaitableObject().
		framesInFlight := desc.FramesInFlight
		if framesInFlight == 0 {
			framesInFlight = 1
		}
		s.waitable = make(chan struct{}, framesInFlight)
		for i := uint8(0); i < framesInFlight; i++ {
			s.waitable <- struct{}{}
		}
	}

	return s
}

// WaitFrameLatency blocks until a frame-in-flight slot is available, the
// Go stand-in for waiting on the native frame-latency-waitable handle. On
// a non-waitable swapchain (desc.Flags has no SwapchainFlagWaitable) it
// returns immediately: the original instead configures device-level frame
// latency for that case (vri_d3d11_swapchain.c:105-117), which has no
// caller-visible handle to wait on. A negative timeout waits indefinitely.
func (s *Swapchain) WaitFrameLatency(timeout time.Duration) (bool, error) {
	if s.waitable == nil {
		return true, nil
	}
	if timeout < 0 {
		<-s.waitable
		return true, nil
	}
	select {
	case <-s.waitable:
		return true, nil
	case <-time.After(timeout):
		return false, nil
	}
}

// AcquireTexture returns the single drawable image, signaling fence
// immediately since there is no present engine to wait on (spec.md §4.8).
func (s *Swapchain) AcquireTexture(fence hal.Fence, signalValue uint64) (hal.Texture, uint32, error) {
	if fence != nil {
		if err := fence.SignalGPU(signalValue); err != nil {
			return nil, 0, err
		}
	}
	return s.image, 0, nil
}

// Flags returns the presentation behavior flags the swapchain was created
// with (VSync/Waitable/AllowTearing), unchanged. No flag records host-driven
// fullscreen transitions, and this backend makes no window association
// call (the original's MakeWindowAssociation(DXGI_MWA_NO_ALT_ENTER)).
func (s *Swapchain) Flags() types.SwapchainFlags { return s.desc.Flags }

func (s *Swapchain) Destroy() {}

// SetPresentFault installs a test-only hook controlling the simulated
// native present outcome. Pass nil to restore normal (always-success)
// behavior. Not part of the hal.Swapchain contract.
func (s *Swapchain) SetPresentFault(fn func() (deviceRemoved, occluded bool)) {
	s.forcePresentFault = fn
}

// doPresent maps a simulated backend present outcome to the spec's result
// taxonomy, ported from vri_d3d11_swapchain.c:d3d11_swapchain_present. The
// swapchain remains usable after Suboptimal or Success (spec.md §8
// scenario 6); only DeviceRemoved would invalidate it, and this software
// model never produces that on its own.
func (s *Swapchain) doPresent() types.Result {
	s.releaseFrameLatency()

	if s.forcePresentFault == nil {
		return types.ResultSuccess
	}
	deviceRemoved, occluded := s.forcePresentFault()
	switch {
	case deviceRemoved:
		return types.ResultDeviceRemoved
	case occluded:
		return types.ResultSuboptimal
	default:
		return types.ResultSuccess
	}
}

// releaseFrameLatency returns a frame-in-flight slot once this present
// has handed the backbuffer back, the point at which the real
// waitable-object's count would be incremented by the driver.
func (s *Swapchain) releaseFrameLatency() {
	if s.waitable == nil {
		return
	}
	select {
	case s.waitable <- struct{}{}:
	default:
	}
}
