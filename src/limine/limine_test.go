package limine

import (
	"testing"
	"unsafe"
)

func TestFramebufferLayout(t *testing.T) {
	// struct limine_framebuffer is 64 bytes with edid_size at offset 48.
	if got := unsafe.Sizeof(Framebuffer{}); got != 64 {
		t.Errorf("Sizeof(Framebuffer) = %d, want 64", got)
	}
	if got := unsafe.Offsetof(Framebuffer{}.EDIDSize); got != 48 {
		t.Errorf("Offsetof(EDIDSize) = %d, want 48", got)
	}
	if got := unsafe.Sizeof(MemmapEntry{}); got != 24 {
		t.Errorf("Sizeof(MemmapEntry) = %d, want 24", got)
	}
}

func TestBaseRevision(t *testing.T) {
	b := NewBaseRevision(3)
	if b.Supported() {
		t.Error("Supported() = true before the loader acknowledged it")
	}
	b.MarkSupported()
	if !b.Supported() {
		t.Error("Supported() = false after MarkSupported()")
	}
}

func TestNilResponses(t *testing.T) {
	var fr *FramebufferResponse
	if fbs := fr.Framebuffers(); fbs != nil {
		t.Errorf("nil response Framebuffers() = %v, want nil", fbs)
	}
	var mr *MemmapResponse
	if es := mr.Entries(); es != nil {
		t.Errorf("nil response Entries() = %v, want nil", es)
	}
	if fbs := NewFramebufferResponse(nil).Framebuffers(); len(fbs) != 0 {
		t.Errorf("empty response has %d framebuffers", len(fbs))
	}
}

func TestResponsesRoundTrip(t *testing.T) {
	fb := &Framebuffer{Width: 640, Height: 480, Pitch: 2560, BPP: 32}
	got := NewFramebufferResponse([]*Framebuffer{fb}).Framebuffers()
	if len(got) != 1 || got[0] != fb {
		t.Fatalf("Framebuffers() = %v, want [%p]", got, fb)
	}

	entries := []*MemmapEntry{
		{Base: 0, Length: 0x1000, Type: 0},
		{Base: 0x1000, Length: 0x1000, Type: 1},
	}
	es := NewMemmapResponse(entries).Entries()
	if len(es) != 2 || es[1].Base != 0x1000 || es[1].Type != 1 {
		t.Errorf("Entries() = %v", es)
	}
}

func TestIsXRGB8888(t *testing.T) {
	fb := Framebuffer{BPP: 32, MemoryModel: MemoryModelRGB, RedMaskShift: 16, GreenMaskShift: 8}
	if !fb.IsXRGB8888() {
		t.Error("IsXRGB8888() = false for a 32 bpp RGB framebuffer")
	}
	fb.BPP = 16
	if fb.IsXRGB8888() {
		t.Error("IsXRGB8888() = true for 16 bpp")
	}
}

func TestRequestIDs(t *testing.T) {
	fr := NewFramebufferRequest()
	mr := NewMemmapRequest()
	if fr.ID[0] != CommonMagic0 || mr.ID[1] != CommonMagic1 {
		t.Error("request IDs do not start with the common magic")
	}
	if fr.ID == mr.ID {
		t.Error("framebuffer and memmap requests share an ID")
	}
}
