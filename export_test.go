// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import "github.com/viktorfejes/VRI/hal"

// SwapchainBackendForTest exposes a Swapchain's backend implementation so
// external tests can reach backend-only test hooks (e.g. ctx.Swapchain's
// present-fault injector) without the public API carrying them.
func SwapchainBackendForTest(s *Swapchain) hal.Swapchain { return s.backend }
