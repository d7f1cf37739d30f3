// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"fmt"

	"github.com/viktorfejes/VRI/hal"
	"github.com/viktorfejes/VRI/types"
)

// stageHandle and stateHandle are the backend "sub-handles" the bind
// filter compares by identity, standing in for the COM pointers
// (ID3D11VertexShader*, ID3D11RasterizerState*, ...) the original
// compares in d3d11_pipeline_bind. Each pipeline creates fresh handles for
// every sub-slot it uses, exactly as a driver that does not intern state
// objects would, so the filter is exercised the same way the original's
// "compare the backend sub-handle" contract intends: same object →
// identical pointer, different object (even if logically equal) →
// different pointer.
type stageHandle struct{ stage types.ShaderStage }
type stateHandle struct{ kind string }

// subHandles is the set of sub-slots compared by BindPipeline
// (spec.md §4.6, SPEC_FULL.md §4.6's fully-enumerated six shader stages
// plus the four fixed-function slots).
type subHandles struct {
	vs, hs, ds, gs, ps, cs *stageHandle
	topology               types.PrimitiveTopology
	rasterizer             *stateHandle
	depthStencil           *stateHandle
	blend                  *stateHandle
}

// Pipeline is an immutable graphics or compute pipeline (spec.md §4.6).
type Pipeline struct {
	compute bool
	sub     subHandles
}

// IsCompute reports whether this is a compute pipeline (the discriminator
// spec.md §4.6 names: "whether the compute-shader slot is present").
func (p *Pipeline) IsCompute() bool { return p.compute }

func (p *Pipeline) Destroy() {}

func newStageHandle(mod types.ShaderModuleDesc) *stageHandle {
	return &stageHandle{stage: mod.Stage}
}

// createGraphicsPipeline builds sub-state in the original's fixed order —
// vertex shader, other stages, input layout (requires a vertex shader),
// rasterizer, depth/stencil, blend — releasing everything built so far on
// any failure (spec.md §4.6).
func createGraphicsPipeline(desc types.GraphicsPipelineDesc) (*Pipeline, error) {
	if desc.VertexShader == nil {
		return nil, fmt.Errorf("ctx: graphics pipeline requires a vertex shader before an input layout can be built: %w", hal.ErrInvalidAPIUsage)
	}
	sub := subHandles{
		vs:           newStageHandle(*desc.VertexShader),
		topology:     desc.Topology,
		rasterizer:   &stateHandle{kind: "rasterizer"},
		depthStencil: &stateHandle{kind: "depthstencil"},
		blend:        &stateHandle{kind: "blend"},
	}
	if desc.HullShader != nil {
		sub.hs = newStageHandle(*desc.HullShader)
	}
	if desc.DomainShader != nil {
		sub.ds = newStageHandle(*desc.DomainShader)
	}
	if desc.GeometryShader != nil {
		sub.gs = newStageHandle(*desc.GeometryShader)
	}
	if desc.PixelShader != nil {
		sub.ps = newStageHandle(*desc.PixelShader)
	}
	return &Pipeline{compute: false, sub: sub}, nil
}

// createComputePipeline builds the single compute-shader sub-slot
// (spec.md §4.6).
func createComputePipeline(desc types.ComputePipelineDesc) (*Pipeline, error) {
	if desc.ComputeShader == nil {
		return nil, fmt.Errorf("ctx: compute pipeline requires a compute shader: %w", hal.ErrInvalidAPIUsage)
	}
	return &Pipeline{compute: true, sub: subHandles{cs: newStageHandle(*desc.ComputeShader)}}, nil
}

// bindOp names one emitted backend state-set call, recorded so tests can
// count exactly how many the filter actually emits (spec.md §8's "second
// bind emits 0; third bind emits exactly 1").
type bindOp string

const (
	bindVertexShader   bindOp = "vs"
	bindHullShader     bindOp = "hs"
	bindDomainShader   bindOp = "ds"
	bindGeometryShader bindOp = "gs"
	bindPixelShader    bindOp = "ps"
	bindComputeShader  bindOp = "cs"
	bindTopology       bindOp = "topology"
	bindRasterizer     bindOp = "rasterizer"
	bindDepthStencil   bindOp = "depthstencil"
	bindBlend          bindOp = "blend"
)

// diffPipelineBind compares new against the previously bound pipeline
// (which may be nil, meaning "bind everything") and returns exactly the
// ops that must be emitted — a literal port of
// vri_d3d11_pipeline.c:d3d11_pipeline_bind's per-sub-slot pointer
// comparisons. The filter is pure: it must be observably equivalent to
// binding every sub-slot unconditionally (spec.md §4.6's contract), so
// callers must apply every op this returns and none of the ones it omits.
func diffPipelineBind(prev, next *Pipeline) []bindOp {
	if prev == nil {
		return unconditionalBind(next)
	}
	var ops []bindOp
	p, n := prev.sub, next.sub
	if p.vs != n.vs {
		ops = append(ops, bindVertexShader)
	}
	if p.hs != n.hs {
		ops = append(ops, bindHullShader)
	}
	if p.ds != n.ds {
		ops = append(ops, bindDomainShader)
	}
	if p.gs != n.gs {
		ops = append(ops, bindGeometryShader)
	}
	if p.ps != n.ps {
		ops = append(ops, bindPixelShader)
	}
	if p.cs != n.cs {
		ops = append(ops, bindComputeShader)
	}
	if next.compute {
		return ops
	}
	if p.topology != n.topology {
		ops = append(ops, bindTopology)
	}
	if p.rasterizer != n.rasterizer {
		ops = append(ops, bindRasterizer)
	}
	if p.depthStencil != n.depthStencil {
		ops = append(ops, bindDepthStencil)
	}
	if p.blend != n.blend {
		ops = append(ops, bindBlend)
	}
	return ops
}

func unconditionalBind(p *Pipeline) []bindOp {
	if p.compute {
		return []bindOp{bindComputeShader}
	}
	ops := []bindOp{bindVertexShader, bindHullShader, bindDomainShader, bindGeometryShader, bindPixelShader}
	return append(ops, bindTopology, bindRasterizer, bindDepthStencil, bindBlend)
}
