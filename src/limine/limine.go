// Package limine describes the Limine boot protocol structures the kernel
// consumes: the base revision tag, the framebuffer request and the memory
// map request.
//
// The layouts match the C ABI of the protocol. The bootloader finds requests
// by their magic identifiers and fills in the Response pointers before
// jumping to the kernel; placing the request variables in the .requests
// section is the linker script's job.
package limine

import "unsafe"

// Common magic shared by every request identifier.
const (
	CommonMagic0 uint64 = 0xc7b1dd30df4c8b88
	CommonMagic1 uint64 = 0x0a82e883a194f07b
)

// BaseRevision asks the bootloader for a protocol revision. A loader that
// supports it sets the last element to 0.
type BaseRevision [3]uint64

// NewBaseRevision requests revision rev.
func NewBaseRevision(rev uint64) BaseRevision {
	return BaseRevision{0xf9562b2d5c95a6c8, 0x6a7b384944536bdc, rev}
}

func (b *BaseRevision) Supported() bool {
	return b[2] == 0
}

// MarkSupported is what a loader does to acknowledge the revision.
func (b *BaseRevision) MarkSupported() {
	b[2] = 0
}

// RequestsStartMarker and RequestsEndMarker delimit the request section.
var (
	RequestsStartMarker = [4]uint64{0xf6b8f4b39de7d1ae, 0xfab91a6940fcb9cf, 0x785c6ed015d3e316, 0x181e920a7852b9d9}
	RequestsEndMarker   = [2]uint64{0xadc0e0531bb10d03, 0x9572709f31764c62}
)

// Memory models reported in Framebuffer.MemoryModel.
const MemoryModelRGB = 1

// Framebuffer is one linear framebuffer reported by the bootloader.
type Framebuffer struct {
	Address        unsafe.Pointer
	Width          uint64
	Height         uint64
	Pitch          uint64
	BPP            uint16
	MemoryModel    uint8
	RedMaskSize    uint8
	RedMaskShift   uint8
	GreenMaskSize  uint8
	GreenMaskShift uint8
	BlueMaskSize   uint8
	BlueMaskShift  uint8
	_              [7]uint8
	EDIDSize       uint64
	EDID           unsafe.Pointer
}

// IsXRGB8888 reports whether the framebuffer uses 32 bit 0x00RRGGBB pixels,
// the only layout the console draws into.
func (f *Framebuffer) IsXRGB8888() bool {
	return f.BPP == 32 && f.MemoryModel == MemoryModelRGB &&
		f.RedMaskShift == 16 && f.GreenMaskShift == 8 && f.BlueMaskShift == 0
}

type FramebufferResponse struct {
	Revision         uint64
	FramebufferCount uint64
	framebuffers     unsafe.Pointer // **Framebuffer
}

// Framebuffers returns the reported framebuffers. A nil response has none.
func (r *FramebufferResponse) Framebuffers() []*Framebuffer {
	if r == nil || r.FramebufferCount == 0 || r.framebuffers == nil {
		return nil
	}
	return unsafe.Slice((**Framebuffer)(r.framebuffers), r.FramebufferCount)
}

// NewFramebufferResponse builds a response the way a loader would. The
// boot simulator and tests use it.
func NewFramebufferResponse(fbs []*Framebuffer) *FramebufferResponse {
	r := &FramebufferResponse{FramebufferCount: uint64(len(fbs))}
	if len(fbs) > 0 {
		r.framebuffers = unsafe.Pointer(&fbs[0])
	}
	return r
}

type FramebufferRequest struct {
	ID       [4]uint64
	Revision uint64
	Response *FramebufferResponse
}

func NewFramebufferRequest() FramebufferRequest {
	return FramebufferRequest{ID: [4]uint64{CommonMagic0, CommonMagic1, 0x9d5827dcd881dd75, 0xa3148604f6fab11b}}
}

// MemmapEntry is one physical memory region. Type holds a memmap.Type code.
type MemmapEntry struct {
	Base   uint64
	Length uint64
	Type   uint64
}

type MemmapResponse struct {
	Revision   uint64
	EntryCount uint64
	entries    unsafe.Pointer // **MemmapEntry
}

// Entries returns the reported regions in loader order.
func (r *MemmapResponse) Entries() []*MemmapEntry {
	if r == nil || r.EntryCount == 0 || r.entries == nil {
		return nil
	}
	return unsafe.Slice((**MemmapEntry)(r.entries), r.EntryCount)
}

func NewMemmapResponse(entries []*MemmapEntry) *MemmapResponse {
	r := &MemmapResponse{EntryCount: uint64(len(entries))}
	if len(entries) > 0 {
		r.entries = unsafe.Pointer(&entries[0])
	}
	return r
}

type MemmapRequest struct {
	ID       [4]uint64
	Revision uint64
	Response *MemmapResponse
}

func NewMemmapRequest() MemmapRequest {
	return MemmapRequest{ID: [4]uint64{CommonMagic0, CommonMagic1, 0x67cf3d9d378a806f, 0xe304acdfc50c3c62}}
}
