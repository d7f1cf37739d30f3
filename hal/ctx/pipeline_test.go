// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ctx

import (
	"testing"

	"github.com/viktorfejes/VRI/types"
)

// TestPipelineRedundantBind is spec.md §8 scenario 4 verbatim: bind P1,
// then P1 again, then P2 (differing only in pixel shader). First bind
// emits N ops, second emits 0, third emits exactly 1 (pixel shader).
func TestPipelineRedundantBind(t *testing.T) {
	p1, err := createGraphicsPipeline(types.GraphicsPipelineDesc{
		VertexShader: &types.ShaderModuleDesc{Stage: types.ShaderStageVertex},
		PixelShader:  &types.ShaderModuleDesc{Stage: types.ShaderStagePixel},
	})
	if err != nil {
		t.Fatalf("createGraphicsPipeline(p1): %v", err)
	}

	firstOps := diffPipelineBind(nil, p1)
	if len(firstOps) == 0 {
		t.Fatal("first bind must emit at least one op")
	}

	secondOps := diffPipelineBind(p1, p1)
	if len(secondOps) != 0 {
		t.Fatalf("rebinding the identical pipeline must emit zero ops, got %v", secondOps)
	}

	p2, err := createGraphicsPipeline(types.GraphicsPipelineDesc{
		VertexShader: &types.ShaderModuleDesc{Stage: types.ShaderStageVertex},
		PixelShader:  &types.ShaderModuleDesc{Stage: types.ShaderStagePixel},
	})
	if err != nil {
		t.Fatalf("createGraphicsPipeline(p2): %v", err)
	}
	// createGraphicsPipeline gives every pipeline fresh sub-handles, so
	// share every sub-handle except the pixel shader's to make p2 differ
	// from p1 only in its pixel-shader sub-handle.
	p2.sub.vs = p1.sub.vs
	p2.sub.rasterizer = p1.sub.rasterizer
	p2.sub.depthStencil = p1.sub.depthStencil
	p2.sub.blend = p1.sub.blend

	thirdOps := diffPipelineBind(p1, p2)
	if len(thirdOps) != 1 || thirdOps[0] != bindPixelShader {
		t.Fatalf("expected exactly one pixel-shader bind, got %v", thirdOps)
	}
}

func TestPipelineBindFilterComputeFirstBind(t *testing.T) {
	cp, err := createComputePipeline(types.ComputePipelineDesc{
		ComputeShader: &types.ShaderModuleDesc{Stage: types.ShaderStageCompute},
	})
	if err != nil {
		t.Fatalf("createComputePipeline: %v", err)
	}
	ops := diffPipelineBind(nil, cp)
	if len(ops) != 1 || ops[0] != bindComputeShader {
		t.Fatalf("first bind of a compute pipeline must emit exactly [bindComputeShader], got %v", ops)
	}
}

func TestGraphicsPipelineRequiresVertexShader(t *testing.T) {
	if _, err := createGraphicsPipeline(types.GraphicsPipelineDesc{}); err == nil {
		t.Fatal("expected an error creating a graphics pipeline with no vertex shader")
	}
}

func TestComputePipelineRequiresComputeShader(t *testing.T) {
	if _, err := createComputePipeline(types.ComputePipelineDesc{}); err == nil {
		t.Fatal("expected an error creating a compute pipeline with no compute shader")
	}
}
