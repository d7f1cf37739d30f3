// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import "github.com/viktorfejes/VRI/types"

// ShaderModule wraps opaque bytecode. The core never interprets it
// (spec.md §3, §4.6) — ctx only forwards the bytes to whichever stage
// slot references them.
type ShaderModule struct {
	stage types.ShaderStage
	code  []byte
	entry string
}

// Stage reports the shader stage this module was created for.
func (s *ShaderModule) Stage() types.ShaderStage { return s.stage }

func (s *ShaderModule) Destroy() {}
