// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package hal

import "errors"

// ErrBackendNotFound is returned when a requested backend variant has no
// registered factory. Callers should fall back to SelectBestBackend or a
// backend they know was registered.
var ErrBackendNotFound = errors.New("hal: backend not registered")

// ErrDeviceOutOfMemory is returned when the allocation callback returns an
// error or the native API reports an out-of-memory condition. It maps to
// types.ResultOutOfMemory at the vri layer.
var ErrDeviceOutOfMemory = errors.New("hal: device out of memory")

// ErrDeviceLost is returned once a device has been marked removed; every
// further operation on that device must keep returning it (spec.md §7).
var ErrDeviceLost = errors.New("hal: device lost")

// ErrInvalidAPIUsage is returned when the caller violated a documented
// contract: an illegal command-buffer state transition, a non-increasing
// fence signal, an input-layout request with no vertex shader, and so on.
// The call that returns it is a no-op beyond that (spec.md §7).
var ErrInvalidAPIUsage = errors.New("hal: invalid API usage")

// ErrUnsupported is returned when the backend cannot satisfy the request:
// no adapter enumerator or backend available, no adapter with the
// requested LUID, a texture format with no backend mapping. Callers
// should try a different backend or lower their expectations (spec.md §7).
var ErrUnsupported = errors.New("hal: unsupported")

// ErrSurfaceLost names a swapchain surface that can no longer be presented
// to (the window was destroyed out from under it). The ctx backend never
// returns it.
var ErrSurfaceLost = errors.New("hal: surface lost")

// ErrSurfaceOutdated names a surface whose configuration no longer matches
// the window (e.g. a resize). The ctx backend never returns it; the vri
// layer maps it to types.ResultSuboptimal.
var ErrSurfaceOutdated = errors.New("hal: surface outdated")

// ErrTimeout is returned by Queue.Submit and Queue.WaitIdle when a wait
// they perform does not complete. Fence.Wait and WaitMany do not return
// it: they report an elapsed deadline as (false, nil).
var ErrTimeout = errors.New("hal: wait timed out")

// ErrZeroArea is returned by CreateSwapchain / CreateTexture when width or
// height is zero; every backend rejects this identically rather than
// letting a native API fail in backend-specific ways.
var ErrZeroArea = errors.New("hal: zero-area resource")
