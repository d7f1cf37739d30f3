package types

import "fmt"

// ShaderStage identifies one stage of the graphics pipeline, or the single
// compute stage. Pipeline.go's sub-slot comparison set (SPEC_FULL.md §4.6)
// is exactly these six stages plus the four non-shader sub-slots below.
type ShaderStage uint8

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageHull
	ShaderStageDomain
	ShaderStageGeometry
	ShaderStagePixel
	ShaderStageCompute
)

func (s ShaderStage) String() string {
	switch s {
	case ShaderStageVertex:
		return "Vertex"
	case ShaderStageHull:
		return "Hull"
	case ShaderStageDomain:
		return "Domain"
	case ShaderStageGeometry:
		return "Geometry"
	case ShaderStagePixel:
		return "Pixel"
	case ShaderStageCompute:
		return "Compute"
	default:
		return fmt.Sprintf("ShaderStage(%d)", uint8(s))
	}
}

// ShaderModuleDesc describes opaque shader bytecode (spec.md §3: "Opaque
// bytecode + entry point + stage tag"). The core never interprets Code.
type ShaderModuleDesc struct {
	Stage      ShaderStage
	Code       []byte
	EntryPoint string
}

// PrimitiveTopology selects how vertices assemble into primitives.
type PrimitiveTopology uint8

const (
	PrimitiveTopologyTriangleList PrimitiveTopology = iota
	PrimitiveTopologyTriangleStrip
	PrimitiveTopologyLineList
	PrimitiveTopologyLineStrip
	PrimitiveTopologyPointList
)

// CullMode selects which triangle winding is discarded.
type CullMode uint8

const (
	CullModeNone CullMode = iota
	CullModeFront
	CullModeBack
)

// FillMode selects solid or wireframe rasterization.
type FillMode uint8

const (
	FillModeSolid FillMode = iota
	FillModeWireframe
)

// RasterizerDesc configures the fixed-function rasterizer sub-slot.
type RasterizerDesc struct {
	Cull            CullMode
	Fill            FillMode
	FrontCounterCCW bool
	DepthBias       int32
}

// CompareFunction selects a depth/stencil comparison test.
type CompareFunction uint8

const (
	CompareFunctionNever CompareFunction = iota
	CompareFunctionLess
	CompareFunctionEqual
	CompareFunctionLessEqual
	CompareFunctionGreater
	CompareFunctionNotEqual
	CompareFunctionGreaterEqual
	CompareFunctionAlways
)

// StencilOp selects the stencil-buffer update operation.
type StencilOp uint8

const (
	StencilOpKeep StencilOp = iota
	StencilOpZero
	StencilOpReplace
	StencilOpIncrementClamp
	StencilOpDecrementClamp
	StencilOpInvert
	StencilOpIncrementWrap
	StencilOpDecrementWrap
)

// DepthStencilDesc configures the fixed-function depth/stencil sub-slot.
type DepthStencilDesc struct {
	DepthTestEnable  bool
	DepthWriteEnable bool
	DepthCompare     CompareFunction
	StencilEnable    bool
	StencilReadMask  uint8
	StencilWriteMask uint8
	StencilFailOp    StencilOp
	StencilPassOp    StencilOp
}

// BlendFactor selects a source/destination blend multiplicand.
type BlendFactor uint8

const (
	BlendFactorZero BlendFactor = iota
	BlendFactorOne
	BlendFactorSrcAlpha
	BlendFactorOneMinusSrcAlpha
	BlendFactorDstAlpha
	BlendFactorOneMinusDstAlpha
)

// BlendOp selects the blend combine operator.
type BlendOp uint8

const (
	BlendOpAdd BlendOp = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

// BlendDesc configures the fixed-function blend sub-slot for one render target.
type BlendDesc struct {
	Enable       bool
	SrcColor     BlendFactor
	DstColor     BlendFactor
	ColorOp      BlendOp
	SrcAlpha     BlendFactor
	DstAlpha     BlendFactor
	AlphaOp      BlendOp
	WriteMaskRGBA uint8
}

// GraphicsPipelineDesc describes an immutable graphics pipeline (spec.md §3, §4.6).
// Sub-states are built in this field order, matching the original's fixed
// creation order: vertex shader, other stages, input layout (implied by
// VertexShader), rasterizer, depth/stencil, blend.
type GraphicsPipelineDesc struct {
	VertexShader   *ShaderModuleDesc
	HullShader     *ShaderModuleDesc
	DomainShader   *ShaderModuleDesc
	GeometryShader *ShaderModuleDesc
	PixelShader    *ShaderModuleDesc
	Topology       PrimitiveTopology
	Rasterizer     RasterizerDesc
	DepthStencil   DepthStencilDesc
	Blend          BlendDesc
}

// ComputePipelineDesc describes an immutable compute pipeline (spec.md §4.6).
type ComputePipelineDesc struct {
	ComputeShader *ShaderModuleDesc
}
