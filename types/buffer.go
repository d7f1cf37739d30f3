package types

// BufferUsage names the binding point a buffer is created for.
// Supplemented from the original's vri_buffer_usage_t (SPEC_FULL.md,
// Supplemented Features #1) — not part of spec.md's Data Model, but
// present in the original core interface table and needed to record the
// triangle scenario's vertex data.
type BufferUsage uint8

const (
	BufferUsageVertex BufferUsage = iota
	BufferUsageIndex
)

// BufferDesc describes a buffer resource.
type BufferDesc struct {
	Size       uint64
	Usage      BufferUsage
	MemoryType MemoryType
}

// BufferCopyRegion describes one CopyBuffer range, ported from the
// original's vri_buffer_copy_region_t.
type BufferCopyRegion struct {
	SrcOffset uint64
	DstOffset uint64
	Size      uint64
}
