// Package framebuffer writes pixels into a linear 32 bits per pixel
// framebuffer handed over by the bootloader.
package framebuffer

import (
	"sync/atomic"
	"unsafe"
)

// BytesPerPixel is the only supported pixel size (XRGB8888).
const BytesPerPixel = 4

// Framebuffer describes linear pixel memory owned by the bootloader.
// Pixel (x, y) lives at Buf + y*Pitch + x*4.
type Framebuffer struct {
	Buf    unsafe.Pointer // Base of pixel memory
	Width  uint32         // Width in pixels
	Height uint32         // Height in pixels
	Pitch  uint32         // Bytes per scanline

	// backing keeps host-allocated memory reachable. Nil for real hardware.
	backing []uint32
}

// New wraps pixel memory at buf. The caller guarantees that buf spans at
// least pitch*height bytes and that pitch is a multiple of 4.
func New(buf unsafe.Pointer, width, height, pitch uint32) *Framebuffer {
	return &Framebuffer{
		Buf:    buf,
		Width:  width,
		Height: height,
		Pitch:  pitch,
	}
}

// Alloc returns a framebuffer backed by ordinary Go memory. It is used by the
// boot simulator and by tests. A pitch of 0 selects width*4.
func Alloc(width, height, pitch uint32) *Framebuffer {
	if pitch == 0 {
		pitch = width * BytesPerPixel
	}
	words := (uint64(pitch)*uint64(height) + 3) / 4
	if words == 0 {
		words = 1
	}
	backing := make([]uint32, words)

	fb := New(unsafe.Pointer(&backing[0]), width, height, pitch)
	fb.backing = backing
	return fb
}

// Size is the number of bytes spanned by the framebuffer.
func (fb *Framebuffer) Size() uint64 {
	return uint64(fb.Pitch) * uint64(fb.Height)
}

// Contains reports whether (x, y) is on screen.
//
//go:nosplit
func (fb *Framebuffer) Contains(x, y uint32) bool {
	return x < fb.Width && y < fb.Height
}

//go:nosplit
func (fb *Framebuffer) pixel(x, y uint32) *uint32 {
	byteOffset := uintptr(y)*uintptr(fb.Pitch) + uintptr(x)*BytesPerPixel
	return (*uint32)(unsafe.Add(fb.Buf, byteOffset))
}

// WritePixel stores color at (x, y). Off-screen coordinates are ignored.
// The store goes through sync/atomic so the compiler can neither elide nor
// merge it, which is what device memory needs.
//
//go:nosplit
func (fb *Framebuffer) WritePixel(x, y, color uint32) {
	if !fb.Contains(x, y) {
		return
	}
	atomic.StoreUint32(fb.pixel(x, y), color)
}

// At reads the pixel at (x, y), or 0 when off screen. Kernel code never
// reads the framebuffer back; this exists for host tools and tests.
func (fb *Framebuffer) At(x, y uint32) uint32 {
	if !fb.Contains(x, y) {
		return 0
	}
	return atomic.LoadUint32(fb.pixel(x, y))
}

// Fill sets the rectangle (x, y, width, height) to color, clipped to the
// screen.
func (fb *Framebuffer) Fill(x, y, width, height, color uint32) {
	endX := clampEnd(x, width, fb.Width)
	endY := clampEnd(y, height, fb.Height)
	for py := y; py < endY; py++ {
		for px := x; px < endX; px++ {
			atomic.StoreUint32(fb.pixel(px, py), color)
		}
	}
}

func clampEnd(start, length, limit uint32) uint32 {
	end := uint64(start) + uint64(length)
	if end > uint64(limit) {
		return limit
	}
	return uint32(end)
}

// Clear fills the whole framebuffer with color.
func (fb *Framebuffer) Clear(color uint32) {
	fb.Fill(0, 0, fb.Width, fb.Height, color)
}
