// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package vri is a thin cross-backend rendering hardware interface: a
// handle-based object model with per-object dispatch, a timeline-fence
// synchronization primitive, a record/execute/signal command pipeline,
// and a single-drawable-image swapchain/present loop.
//
// vri never talks to a backend directly. Every exported type here wraps a
// value from the hal package (the dispatch table a backend implements) and
// adds the bookkeeping the core owns on top of any backend: the live-object
// registry, allocation-callback accounting, and the numeric Result/error
// mapping of spec.md §7.
//
// A backend registers itself through a blank import:
//
//	import _ "github.com/viktorfejes/VRI/hal/ctx"
//
// CreateDevice then resolves types.DeviceDesc.Backend against whatever
// backends have been imported this way, or picks the best available one
// if Backend is types.BackendNone.
package vri
