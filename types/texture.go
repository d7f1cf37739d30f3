package types

import "fmt"

// TextureType is the dimensionality of a texture.
type TextureType uint8

const (
	TextureType1D TextureType = iota
	TextureType2D
	TextureType3D
	TextureTypeCube
)

func (t TextureType) String() string {
	switch t {
	case TextureType1D:
		return "1D"
	case TextureType2D:
		return "2D"
	case TextureType3D:
		return "3D"
	case TextureTypeCube:
		return "Cube"
	default:
		return fmt.Sprintf("TextureType(%d)", uint8(t))
	}
}

// TextureUsage is an OR-mask of the ways a texture may be bound.
type TextureUsage uint32

const (
	TextureUsageNone TextureUsage = 0
	// TextureUsageShaderResource allows sampling the texture in a shader.
	TextureUsageShaderResource TextureUsage = 1 << 0
	// TextureUsageShaderResourceStorage allows unordered read/write access in a shader.
	TextureUsageShaderResourceStorage TextureUsage = 1 << 1
	// TextureUsageColorAttachment allows binding as a render-target.
	TextureUsageColorAttachment TextureUsage = 1 << 2
	// TextureUsageDepthStencilAttachment allows binding as a depth/stencil target.
	TextureUsageDepthStencilAttachment TextureUsage = 1 << 3
	// TextureUsageShadingRateAttachment allows binding as a variable-rate-shading image.
	TextureUsageShadingRateAttachment TextureUsage = 1 << 4
)

// Format is the pixel format of a texture. The zero value is invalid.
//
// The set below is deliberately small: spec.md only requires a roundtrip
// mapping through a backend's typeless/typed pair, not full format
// coverage. It covers the triangle scenario's color + depth needs plus a
// couple of extra formats so the roundtrip property test exercises more
// than one table row.
type Format uint32

const (
	FormatUndefined Format = iota
	FormatR8G8B8A8Unorm
	FormatR8G8B8A8UnormSRGB
	FormatB8G8R8A8Unorm
	FormatB8G8R8A8UnormSRGB
	FormatR16G16B16A16Float
	FormatR32G32B32A32Float
	FormatD24UnormS8Uint
	FormatD32Float
	FormatCount
)

func (f Format) String() string {
	switch f {
	case FormatR8G8B8A8Unorm:
		return "R8G8B8A8Unorm"
	case FormatR8G8B8A8UnormSRGB:
		return "R8G8B8A8UnormSRGB"
	case FormatB8G8R8A8Unorm:
		return "B8G8R8A8Unorm"
	case FormatB8G8R8A8UnormSRGB:
		return "B8G8R8A8UnormSRGB"
	case FormatR16G16B16A16Float:
		return "R16G16B16A16Float"
	case FormatR32G32B32A32Float:
		return "R32G32B32A32Float"
	case FormatD24UnormS8Uint:
		return "D24UnormS8Uint"
	case FormatD32Float:
		return "D32Float"
	default:
		return "Undefined"
	}
}

// ColorSpace is the transfer function / gamut a swapchain or texture is interpreted in.
type ColorSpace uint8

const (
	ColorSpaceSRGBNonlinear ColorSpace = iota
	ColorSpaceSRGBLinear
	ColorSpaceBT709Nonlinear
	ColorSpaceBT709Linear
	ColorSpaceP3Nonlinear
	ColorSpaceP3Linear
	ColorSpaceBT2020Nonlinear
	ColorSpaceBT2020Linear
	ColorSpaceHDR10ST2084
	ColorSpaceHDR10HLG
	ColorSpaceExtendedSRGBLinear
	ColorSpaceCount
)

func (c ColorSpace) String() string {
	switch c {
	case ColorSpaceSRGBNonlinear:
		return "SRGBNonlinear"
	case ColorSpaceSRGBLinear:
		return "SRGBLinear"
	case ColorSpaceBT709Nonlinear:
		return "BT709Nonlinear"
	case ColorSpaceBT709Linear:
		return "BT709Linear"
	case ColorSpaceP3Nonlinear:
		return "P3Nonlinear"
	case ColorSpaceP3Linear:
		return "P3Linear"
	case ColorSpaceBT2020Nonlinear:
		return "BT2020Nonlinear"
	case ColorSpaceBT2020Linear:
		return "BT2020Linear"
	case ColorSpaceHDR10ST2084:
		return "HDR10ST2084"
	case ColorSpaceHDR10HLG:
		return "HDR10HLG"
	case ColorSpaceExtendedSRGBLinear:
		return "ExtendedSRGBLinear"
	default:
		return fmt.Sprintf("ColorSpace(%d)", uint8(c))
	}
}

// SwapchainFlags is an OR-mask of swapchain presentation behaviors.
type SwapchainFlags uint32

const (
	SwapchainFlagNone SwapchainFlags = 0
	// SwapchainFlagVSync waits for vertical blank before presenting (sync_interval=1).
	SwapchainFlagVSync SwapchainFlags = 1 << 0
	// SwapchainFlagWaitable configures a frame-latency waitable object capped at frames-in-flight.
	SwapchainFlagWaitable SwapchainFlags = 1 << 1
	// SwapchainFlagAllowTearing permits the present engine to tear when VSync is off.
	SwapchainFlagAllowTearing SwapchainFlags = 1 << 2
)

// TextureDesc is the semantic description of a texture (spec.md §3, §4.7).
type TextureDesc struct {
	Type        TextureType
	Format      Format
	Width       uint32
	Height      uint32
	Depth       uint32
	Usage       TextureUsage
	SampleCount uint32
	MipCount    uint32
	LayerCount  uint32
}
