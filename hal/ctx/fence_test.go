// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"testing"
	"time"

	"github.com/viktorfejes/VRI/hal"
)

func asFences(fs ...*Fence) []hal.Fence {
	out := make([]hal.Fence, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}

func TestFenceMonotonicity(t *testing.T) {
	f := newFence(0)
	values := []uint64{1, 5, 10, 100}
	var last uint64
	for _, v := range values {
		if err := f.SignalCPU(v); err != nil {
			t.Fatalf("SignalCPU(%d): %v", v, err)
		}
		got := f.GetValue()
		if got < last {
			t.Fatalf("fence value decreased: %d -> %d", last, got)
		}
		last = got
	}
}

func TestFenceStrictIncreaseRequired(t *testing.T) {
	f := newFence(5)
	if err := f.SignalCPU(5); err == nil {
		t.Fatal("expected error signaling a non-increasing value")
	}
	if err := f.SignalCPU(3); err == nil {
		t.Fatal("expected error signaling a decreasing value")
	}
	if f.GetValue() != 5 {
		t.Fatalf("fence value changed after rejected signal: %d", f.GetValue())
	}
}

func TestFenceWaitTimeout(t *testing.T) {
	f := newFence(0)
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
	ok, err = f.Wait(5, time.Second)
	if err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if !ok {
		t.Fatal("expected Wait to succeed once the fence reached 5")
	}
}

func TestFenceWaitWakesOnlySatisfiedTargets(t *testing.T) {
	f := newFence(0)
	done := make(chan bool, 1)
	go func() {
		ok, _ := f.Wait(10, time.Second)
		done <- ok
	}()

	time.Sleep(10 * time.Millisecond)
	if err := f.SignalCPU(5); err != nil {
		t.Fatalf("SignalCPU(5): %v", err)
	}
	select {
	case <-done:
		t.Fatal("waiter for 10 woke up on a signal to 5")
	case <-time.After(20 * time.Millisecond):
	}

	if err := f.SignalCPU(10); err != nil {
		t.Fatalf("SignalCPU(10): %v", err)
	}
	select {
	case ok := <-done:
		if !ok {
			t.Fatal("waiter for 10 reported failure after reaching 10")
		}
	case <-time.After(time.Second):
		t.Fatal("waiter for 10 never woke after reaching 10")
	}
}

func TestWaitManyAllVsAny(t *testing.T) {
	a := newFence(0)
	b := newFence(0)

	if ok, _ := waitMany(asFences(a, b), []uint64{1, 1}, true, 20*time.Millisecond); ok {
		t.Fatal("wait_all should not be satisfied before either fence signals")
	}

	if err := a.SignalCPU(1); err != nil {
		t.Fatal(err)
	}
	if ok, _ := waitMany(asFences(a, b), []uint64{1, 1}, false, time.Second); !ok {
		t.Fatal("wait_any should be satisfied once one fence reaches its target")
	}
	if ok, _ := waitMany(asFences(a, b), []uint64{1, 1}, true, 20*time.Millisecond); ok {
		t.Fatal("wait_all should still not be satisfied")
	}

	if err := b.SignalCPU(1); err != nil {
		t.Fatal(err)
	}
	if ok, _ := waitMany(asFences(a, b), []uint64{1, 1}, true, time.Second); !ok {
		t.Fatal("wait_all should be satisfied once both fences reach their targets")
	}
}
