package types

// AdapterInfo describes one enumerated physical GPU (spec.md §4.2).
// QueueCounts is supplemented from the original's VriAdapterDesc —
// spec.md's own Device prose expects per-type queue counts even though
// the §4.2 field list omits them (see SPEC_FULL.md §4.2).
type AdapterInfo struct {
	LUID               uint64
	DeviceID           uint32
	Vendor             Vendor
	Type               GPUType
	VRAMBytes          uint64
	SharedSystemMemory uint64
	QueueCounts        [QueueTypeCount]uint32
}

// QueueRequest asks CreateDevice to materialize Count queues of Type,
// bounded at MaxQueuesPerType (spec.md §3: "bounded, e.g., ≤4 per type").
type QueueRequest struct {
	Type  QueueType
	Count uint32
}

// MaxQueuesPerType is the per-type queue-set bound from spec.md §3.
const MaxQueuesPerType = 4

// DeviceDesc configures CreateDevice (spec.md §4.3).
type DeviceDesc struct {
	Backend             Backend
	AdapterLUID         uint64
	Queues              []QueueRequest
	AllocationCallback  *AllocationCallback
	DebugCallback       DebugCallback
	EnableAPIValidation bool
	// DisableLiveObjectTracking turns off the per-device live-object
	// registry (spec.md §9). Tracking defaults on (the zero DeviceDesc
	// tracks) because Go has no release/debug build distinction for a
	// library the way the original's compile-time flag assumes — see
	// DESIGN.md.
	DisableLiveObjectTracking bool
}

// CommandPoolFlags configures a pool's reset behavior (spec.md §3:
// "Carries reset flags (resettable buffers; transient)").
type CommandPoolFlags uint32

const (
	CommandPoolFlagNone CommandPoolFlags = 0
	// CommandPoolFlagResettable permits a command buffer allocated from
	// this pool to Reset or Begin directly out of Pending (spec.md
	// §4.5's state table: "Pending -> reset/begin | allowed only if the
	// pool has the resettable flag"). Without it, Reset and Begin on a
	// Pending buffer return ErrInvalidAPIUsage; nothing moves a buffer out
	// of Pending on completion, so such a buffer stays Pending.
	CommandPoolFlagResettable CommandPoolFlags = 1 << 0
	// CommandPoolFlagTransient hints that buffers from this pool are
	// short-lived, matching the original's transient pool flag. It is
	// bookkeeping only; the backend allocates identically either way.
	CommandPoolFlagTransient CommandPoolFlags = 1 << 1
)

// CommandPoolDesc configures CreateCommandPool (spec.md §3/§4.5).
type CommandPoolDesc struct {
	QueueType QueueType
	Flags     CommandPoolFlags
}

// SwapchainFormat is the small closed set of formats a swapchain itself
// may be created with (distinct from the general texture Format table),
// ported from the original's vri_swapchain_format_t.
type SwapchainFormat uint8

const (
	SwapchainFormatRec709_8BitSRGB SwapchainFormat = iota
	SwapchainFormatRec709_16BitLinear
	SwapchainFormatCount
)

// SwapchainDesc configures CreateSwapchain (spec.md §4.8).
type SwapchainDesc struct {
	Window          WindowHandle
	Width           uint32
	Height          uint32
	Format          SwapchainFormat
	ColorSpace      ColorSpace
	Flags           SwapchainFlags
	TextureCount    uint8
	FramesInFlight  uint8
}
