// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"time"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/internal/objtrack"
	"github.com/viktorfejes/VRI/types"
)

// Swapchain is bound to a native window surface. This module's single
// back-buffer model means image_index is always 0 and AcquireTexture
// never blocks (spec.md §4.8 and its accompanying Open Question).
type Swapchain struct {
	objectBase
	backend hal.Swapchain

	// image wraps the swapchain's single owned back-buffer. It is tracked
	// once, lazily, and handed back unchanged on every AcquireTexture call
	// rather than minted fresh each frame — there is exactly one backend
	// hal.Texture behind it for the swapchain's lifetime.
	image *Texture
}

// AcquireTexture returns the next drawable texture and its index. fence,
// if non-nil, is signaled to signalValue once the texture is ready —
// immediately, on this single-image backend. The returned *Texture is the
// swapchain's one owned back-buffer: callers must not Destroy it directly,
// it is released when the swapchain itself is destroyed.
func (s *Swapchain) AcquireTexture(fence *Fence, signalValue uint64) (*Texture, uint32, error) {
	var bf hal.Fence
	if fence != nil {
		bf = fence.backend
	}
	tex, index, err := s.backend.AcquireTexture(bf, signalValue)
	if err != nil {
		return nil, 0, wrap(err)
	}
	if s.image == nil {
		base := objectBase{device: s.device, id: s.device.registry.Track(objtrack.ObjectTexture)}
		s.image = &Texture{objectBase: base, backend: tex}
	}
	return s.image, index, nil
}

// Flags returns the presentation behavior flags the swapchain was created
// with (VSync/Waitable/AllowTearing).
func (s *Swapchain) Flags() types.SwapchainFlags { return s.backend.Flags() }

// WaitFrameLatency blocks until a frame-in-flight slot is free. Intended
// to be called once per frame before recording, mirroring how an
// application waits on the native frame-latency-waitable handle when the
// swapchain was created with SwapchainFlagWaitable (spec.md §4.8 step 5).
// On a non-waitable swapchain it returns immediately.
func (s *Swapchain) WaitFrameLatency(timeout time.Duration) (bool, error) {
	ok, err := s.backend.WaitFrameLatency(timeout)
	return ok, wrap(err)
}

// Destroy releases the swapchain and its owned back-buffer.
func (s *Swapchain) Destroy() {
	s.backend.Destroy()
	if s.image != nil {
		s.device.registry.Untrack(s.image.id)
		s.image = nil
	}
	s.device.registry.Untrack(s.id)
}
