// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

// Package ctx is VRI's primary backend: an immediate-context device
// driving deferred contexts for command recording, modeled on the
// original project's D3D11 backend (src/backends/d3d11 in
// _examples/original_source). It implements the full hal contract in
// software — no cgo, no real COM calls — so the core's contract (object
// lifecycles, the timeline fence, the three-phase submit, the pipeline
// bind filter, the single-image swapchain) can be exercised and tested
// without a GPU, the same role hal/noop plays for the teacher.
//
// A thin probe (probe_windows.go) uses goffi to resolve dxgi.dll/d3d11.dll
// exports and reports whether a real Windows D3D11 driver is present;
// nothing in this package's device/queue/fence logic depends on that
// probe succeeding.
package ctx
