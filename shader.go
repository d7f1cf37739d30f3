// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import (
	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// ShaderModule wraps opaque shader bytecode. The core never interprets
// it (spec.md §3): ShaderModule only forwards the bytes a backend was
// given at creation.
type ShaderModule struct {
	objectBase
	backend hal.ShaderModule
}

// Stage reports the shader stage this module was created for.
func (s *ShaderModule) Stage() types.ShaderStage { return s.backend.Stage() }

// Destroy releases the shader module.
func (s *ShaderModule) Destroy() {
	s.backend.Destroy()
	s.device.registry.Untrack(s.id)
}
