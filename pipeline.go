// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package vri

import "github.com/viktorfejes/VRI/hal"

// Pipeline is an immutable bundle of shader stages and fixed-function
// state (spec.md §3, §4.6). Sub-state is built eagerly and fallibly at
// creation; nothing about a Pipeline changes after CreateGraphicsPipeline
// or CreateComputePipeline returns it.
type Pipeline struct {
	objectBase
	backend hal.Pipeline
}

// IsCompute reports whether this is a compute pipeline.
func (p *Pipeline) IsCompute() bool { return p.backend.IsCompute() }

// Destroy releases the pipeline.
func (p *Pipeline) Destroy() {
	p.backend.Destroy()
	p.device.registry.Untrack(p.id)
}
