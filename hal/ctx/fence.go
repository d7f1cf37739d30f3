// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"container/heap"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/viktorfejes/VRI/hal"
)

// swapchainInternalFence is the Go counterpart of the original's
// VRI_SWAPCHAIN_SEMAPHORE sentinel value (vri_d3d11_fence.c). Nothing in
// this package passes it to newFence or compares against it:
// Swapchain.AcquireTexture signals the caller's fence directly.
const swapchainInternalFence = ^uint64(0)

type waiter struct {
	target uint64
	ch     chan struct{}
	index  int
}

// waiterHeap is a min-heap by target value so SignalCPU/SignalGPU only
// wakes the waiters whose target has actually been reached, rather than
// broadcasting to everyone on every signal (spec.md §4.4: "wake waiters
// ≤ value").
type waiterHeap []*waiter

func (h waiterHeap) Len() int            { return len(h) }
func (h waiterHeap) Less(i, j int) bool  { return h[i].target < h[j].target }
func (h waiterHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i]; h[i].index = i; h[j].index = j }
func (h *waiterHeap) Push(x any)         { w := x.(*waiter); w.index = len(*h); *h = append(*h, w) }
func (h *waiterHeap) Pop() any {
	old := *h
	n := len(old)
	w := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return w
}

// Fence is the ctx backend's timeline fence (spec.md §4.4). completed is
// the single atomic 64-bit monotonic counter; waiters holds everyone
// currently blocked in Wait, woken individually as completed advances,
// mirroring how a native timeline fence (ID3D11Fence) pairs a counter
// with per-target OS events rather than one global condition variable.
type Fence struct {
	completed atomic.Uint64

	mu      sync.Mutex
	waiters waiterHeap
}

func newFence(initial uint64) *Fence {
	f := &Fence{}
	f.completed.Store(initial)
	return f
}

// GetValue observes the completed value (spec.md §4.4).
func (f *Fence) GetValue() uint64 { return f.completed.Load() }

func (f *Fence) signal(value uint64) error {
	for {
		cur := f.completed.Load()
		if value <= cur {
			return fmt.Errorf("ctx: fence signal %d not strictly greater than current %d: %w", value, cur, hal.ErrInvalidAPIUsage)
		}
		if f.completed.CompareAndSwap(cur, value) {
			break
		}
	}
	f.wake(value)
	return nil
}

// SignalCPU performs a CPU-initiated signal (spec.md §4.4).
func (f *Fence) SignalCPU(value uint64) error { return f.signal(value) }

// SignalGPU performs a queue-initiated signal; identical semantics to
// SignalCPU in this software backend since there is no real device
// timeline to enqueue onto.
func (f *Fence) SignalGPU(value uint64) error { return f.signal(value) }

func (f *Fence) wake(completed uint64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for f.waiters.Len() > 0 && f.waiters[0].target <= completed {
		w := heap.Pop(&f.waiters).(*waiter)
		close(w.ch)
	}
}

// Wait blocks until completed >= value or timeout elapses
// (timeout < 0 means infinite, matching timeout_ns == u64::MAX).
func (f *Fence) Wait(value uint64, timeout time.Duration) (bool, error) {
	if f.completed.Load() >= value {
		return true, nil
	}
	ch := make(chan struct{})
	w := &waiter{target: value, ch: ch}
	f.mu.Lock()
	if f.completed.Load() >= value {
		f.mu.Unlock()
		return true, nil
	}
	heap.Push(&f.waiters, w)
	f.mu.Unlock()

	if timeout < 0 {
		<-ch
		return true, nil
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case <-ch:
		return true, nil
	case <-timer.C:
		return f.completed.Load() >= value, nil
	}
}

// Destroy is a no-op: the Fence holds no OS resources directly, since
// Wait parks on a plain Go channel rather than an OS event.
func (f *Fence) Destroy() {}

// waitMany implements spec.md §4.4's wait(fences[], values[], wait_all, timeout).
func waitMany(fences []hal.Fence, values []uint64, waitAll bool, timeout time.Duration) (bool, error) {
	if len(fences) != len(values) {
		return false, fmt.Errorf("ctx: fences/values length mismatch: %w", hal.ErrInvalidAPIUsage)
	}
	if len(fences) == 0 {
		return true, nil
	}

	deadline := time.Now().Add(timeout)
	infinite := timeout < 0

	poll := func() bool {
		satisfied := 0
		for i, f := range fences {
			if f.GetValue() >= values[i] {
				satisfied++
				if !waitAll {
					return true
				}
			}
		}
		return waitAll && satisfied == len(fences)
	}

	if poll() {
		return true, nil
	}

	const pollInterval = 500 * time.Microsecond
	for {
		if !infinite && time.Now().After(deadline) {
			return poll(), nil
		}
		remaining := pollInterval
		if !infinite {
			if left := time.Until(deadline); left < remaining {
				remaining = left
			}
		}
		if remaining <= 0 {
			return poll(), nil
		}
		time.Sleep(remaining)
		if poll() {
			return true, nil
		}
	}
}
