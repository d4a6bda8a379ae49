// Package kernel is the boot entry point: it takes the framebuffer and the
// memory map handed over by the Limine loader, brings up the text console
// and the diagnostics facade, reports the memory map and halts.
package kernel

import (
	_ "embed"

	"github.com/Haranmes/Ramen-os/src/console"
	"github.com/Haranmes/Ramen-os/src/framebuffer"
	"github.com/Haranmes/Ramen-os/src/klog"
	"github.com/Haranmes/Ramen-os/src/limine"
)

// FontPSF is the built-in 8x16 console font.
//
//go:embed font.psf
var FontPSF []byte

// Banner is drawn at (BannerX, BannerY) before any diagnostics.
const (
	Banner  = "Hello Limine!\nFrom Go [<3]"
	BannerX = 10
	BannerY = 10
)

// RequestedRevision is the protocol base revision the kernel is written
// against.
const RequestedRevision = 3

// Requests read by the loader. The linker script places them between the
// request markers.
var (
	BaseRevision       = limine.NewBaseRevision(RequestedRevision)
	FramebufferRequest = limine.NewFramebufferRequest()
	MemmapRequest      = limine.NewMemmapRequest()
)

// Machine is everything Kmain takes from the platform. Zero fields fall back
// to the built-in defaults.
type Machine struct {
	Revision    *limine.BaseRevision
	Framebuffer *limine.FramebufferRequest
	Memmap      *limine.MemmapRequest

	// Serial receives every diagnostic line, before and after the console
	// exists. Optional.
	Serial klog.Sink

	Log    klog.Config
	Colors framebuffer.ColorScheme
	Font   []byte

	// Halt stops the CPU. On hardware it never returns.
	Halt func()
}

// DefaultMachine reads the package level requests, logs to the platform
// UART if there is one and halts for good.
func DefaultMachine() *Machine {
	return &Machine{
		Revision:    &BaseRevision,
		Framebuffer: &FramebufferRequest,
		Memmap:      &MemmapRequest,
		Serial:      platformSerial(),
		Log:         klog.DefaultConfig(),
		Colors:      framebuffer.MidnightColorScheme,
		Font:        FontPSF,
		Halt:        cpuHalt,
	}
}

// Kernel is the state Kmain builds up during boot.
type Kernel struct {
	m       *Machine
	log     *klog.Logger
	fb      *framebuffer.Framebuffer
	console *console.RenderContext
}

// Log returns the diagnostics facade.
func (k *Kernel) Log() *klog.Logger { return k.log }

// Console returns the text console, or nil when no usable framebuffer was
// handed over.
func (k *Kernel) Console() *console.RenderContext { return k.console }

// Kmain runs the boot sequence on m and ends in m.Halt. It returns the
// kernel state only where Halt returns, i.e. on a host.
func Kmain(m *Machine) *Kernel {
	if m == nil {
		m = DefaultMachine()
	}
	if m.Halt == nil {
		m.Halt = cpuHalt
	}
	if m.Font == nil {
		m.Font = FontPSF
	}

	k := &Kernel{m: m, log: klog.New(m.Log)}
	k.log.AddSink(m.Serial)

	if m.Revision == nil || !m.Revision.Supported() {
		k.log.Fatalf("loader does not support base revision %d", RequestedRevision)
		k.halt()
		return k
	}

	if err := k.initConsole(); err != nil {
		k.Panic(err.Error())
		return k
	}

	k.reportFramebuffer()
	k.reportMemoryMap()
	k.log.Infof("boot complete, halting")
	k.halt()
	return k
}

func (k *Kernel) halt() {
	k.m.Halt()
}

// Panic reports msg at panic level and halts. It is the terminal path for
// unrecoverable boot errors.
func (k *Kernel) Panic(msg string) {
	k.log.Output(2, klog.LevelPanic, "%s", msg)
	k.halt()
}
