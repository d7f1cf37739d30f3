// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"time"

	"github.com/viktorfejes/VRI/hal"
)

// Fence is the single synchronization primitive the core exposes: a
// monotonically increasing 64-bit completed value (spec.md §4.4). Fence
// operations are safe for concurrent calls from any goroutine.
type Fence struct {
	objectBase
	backend hal.Fence
}

// GetValue observes the completed value.
func (f *Fence) GetValue() uint64 { return f.backend.GetValue() }

// SignalCPU sets completed = value, which must be strictly greater than
// the current completed value, and wakes any waiters it satisfies.
// Violating strict increase is reported as ErrInvalidAPIUsage (spec.md §4.4).
func (f *Fence) SignalCPU(value uint64) error { return wrap(f.backend.SignalCPU(value)) }

// SignalGPU behaves like SignalCPU but is the path a queue operation
// (rather than the application directly) uses to perform the signal.
func (f *Fence) SignalGPU(value uint64) error { return wrap(f.backend.SignalGPU(value)) }

// Wait blocks until the fence reaches value or timeout elapses. A
// negative timeout waits indefinitely.
func (f *Fence) Wait(value uint64, timeout time.Duration) (bool, error) {
	ok, err := f.backend.Wait(value, timeout)
	return ok, wrap(err)
}

// Destroy releases the fence.
func (f *Fence) Destroy() {
	f.backend.Destroy()
	f.device.registry.Untrack(f.id)
}
