package bootsim

import (
	"github.com/Haranmes/Ramen-os/src/framebuffer"
	"github.com/Haranmes/Ramen-os/src/kernel"
	"github.com/Haranmes/Ramen-os/src/klog"
	"github.com/Haranmes/Ramen-os/src/limine"
)

// Machine is one simulated boot.
type Machine struct {
	Profile *Profile
	// Framebuffer is nil when the profile has no display.
	Framebuffer *framebuffer.Framebuffer
	Kernel      *kernel.Kernel
	// Halts counts calls to the halt hook. A completed boot halts once.
	Halts int

	revision limine.BaseRevision
	fbReq    limine.FramebufferRequest
	mmReq    limine.MemmapRequest
	lfb      limine.Framebuffer
	entries  []*limine.MemmapEntry
}

// New prepares the loader side of a boot from p, which must be valid.
func New(p *Profile) *Machine {
	m := &Machine{
		Profile:  p,
		revision: limine.NewBaseRevision(kernel.RequestedRevision),
		fbReq:    limine.NewFramebufferRequest(),
		mmReq:    limine.NewMemmapRequest(),
	}
	if p.Revision >= kernel.RequestedRevision {
		m.revision.MarkSupported()
	}

	if !p.NoFramebuffer {
		d := p.Display
		m.Framebuffer = framebuffer.Alloc(d.Width, d.Height, d.Pitch)
		m.lfb = limine.Framebuffer{
			Address:     m.Framebuffer.Buf,
			Width:       uint64(d.Width),
			Height:      uint64(d.Height),
			Pitch:       uint64(m.Framebuffer.Pitch),
			BPP:         d.BPP,
			MemoryModel: limine.MemoryModelRGB,
		}
		if d.BPP == 32 {
			m.lfb.RedMaskSize, m.lfb.RedMaskShift = 8, 16
			m.lfb.GreenMaskSize, m.lfb.GreenMaskShift = 8, 8
			m.lfb.BlueMaskSize, m.lfb.BlueMaskShift = 8, 0
		}
		m.fbReq.Response = limine.NewFramebufferResponse([]*limine.Framebuffer{&m.lfb})
	}

	for _, r := range p.Memory {
		m.entries = append(m.entries, &limine.MemmapEntry{Base: r.Base, Length: r.Length, Type: uint64(r.Type)})
	}
	m.mmReq.Response = limine.NewMemmapResponse(m.entries)
	return m
}

// Boot runs the kernel entry with serial as the serial sink. It returns
// once the kernel halts.
func (m *Machine) Boot(serial klog.Sink) *kernel.Kernel {
	m.Kernel = kernel.Kmain(&kernel.Machine{
		Revision:    &m.revision,
		Framebuffer: &m.fbReq,
		Memmap:      &m.mmReq,
		Serial:      serial,
		Log:         klog.Config{Level: m.Profile.Log.Level, Debug: m.Profile.Log.Debug},
		Colors:      m.Profile.Display.ColorScheme(),
		Font:        kernel.FontPSF,
		Halt:        func() { m.Halts++ },
	})
	return m.Kernel
}
