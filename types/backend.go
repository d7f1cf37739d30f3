// Package types holds the value vocabulary shared between the public vri
// package and the hal contract: backend/vendor/format enums, descriptor
// structs, and small bit-flag types. Keeping them in their own package
// (rather than in hal or vri directly) lets both depend on the same
// definitions without an import cycle, the same split gogpu/wgpu uses
// between its top-level package and its types package.
package types

import "fmt"

// Backend identifies a concrete graphics API implementation.
type Backend uint8

const (
	// BackendNone is the invalid/unselected backend.
	BackendNone Backend = iota
	// BackendCtx is the primary backend: an immediate-context device
	// driving deferred contexts for recording, modeled on a D3D11-style driver.
	BackendCtx
	// BackendVulkan is a planned explicit-submission backend. Not implemented;
	// present so the registration contract (hal.RegisterBackendFactory) has
	// a second value to select among.
	BackendVulkan
	// BackendMetal is a planned explicit-submission backend. Not implemented.
	BackendMetal
)

// String returns the backend's name.
func (b Backend) String() string {
	switch b {
	case BackendNone:
		return "None"
	case BackendCtx:
		return "Ctx"
	case BackendVulkan:
		return "Vulkan"
	case BackendMetal:
		return "Metal"
	default:
		return fmt.Sprintf("Backend(%d)", uint8(b))
	}
}

// Vendor identifies the GPU silicon vendor, derived from a PCI vendor id.
type Vendor uint8

const (
	VendorUnknown Vendor = iota
	VendorIntel
	VendorAMD
	VendorNVIDIA
)

func (v Vendor) String() string {
	switch v {
	case VendorIntel:
		return "Intel"
	case VendorAMD:
		return "AMD"
	case VendorNVIDIA:
		return "NVIDIA"
	default:
		return "Unknown"
	}
}

// VendorFromPCIID maps a PCI vendor id to a Vendor. Unknown ids map to VendorUnknown.
func VendorFromPCIID(id uint32) Vendor {
	switch id {
	case 0x10DE:
		return VendorNVIDIA
	case 0x1002:
		return VendorAMD
	case 0x8086:
		return VendorIntel
	default:
		return VendorUnknown
	}
}

// GPUType distinguishes discrete from integrated GPUs.
type GPUType uint8

const (
	GPUTypeUnknown GPUType = iota
	GPUTypeIntegrated
	GPUTypeDiscrete
)

func (t GPUType) String() string {
	switch t {
	case GPUTypeIntegrated:
		return "Integrated"
	case GPUTypeDiscrete:
		return "Discrete"
	default:
		return "Unknown"
	}
}

// QueueType selects which hardware queue family an operation targets.
type QueueType uint8

const (
	QueueTypeGraphics QueueType = iota
	QueueTypeCompute
	QueueTypeTransfer
	QueueTypeCount
)

func (t QueueType) String() string {
	switch t {
	case QueueTypeGraphics:
		return "Graphics"
	case QueueTypeCompute:
		return "Compute"
	case QueueTypeTransfer:
		return "Transfer"
	default:
		return fmt.Sprintf("QueueType(%d)", uint8(t))
	}
}

// MemoryType selects the CPU-visibility/residency policy for a resource.
type MemoryType uint8

const (
	// MemoryTypeGPUOnly has no CPU access (D3D11 DEFAULT usage).
	MemoryTypeGPUOnly MemoryType = iota
	// MemoryTypeUpload is CPU-write, GPU-read (D3D11 DYNAMIC usage).
	MemoryTypeUpload
	// MemoryTypeReadback is CPU-read, GPU-write (D3D11 STAGING usage).
	MemoryTypeReadback
)

func (m MemoryType) String() string {
	switch m {
	case MemoryTypeGPUOnly:
		return "GPUOnly"
	case MemoryTypeUpload:
		return "Upload"
	case MemoryTypeReadback:
		return "Readback"
	default:
		return fmt.Sprintf("MemoryType(%d)", uint8(m))
	}
}
