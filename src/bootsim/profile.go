// Package bootsim runs the kernel entry on a host. It plays the part of
// the loader: it allocates a framebuffer, fills in the boot protocol
// responses from a machine profile, calls kernel.Kmain and keeps the
// resulting screen for inspection.
package bootsim

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/Haranmes/Ramen-os/src/framebuffer"
	"github.com/Haranmes/Ramen-os/src/klog"
	"github.com/Haranmes/Ramen-os/src/memmap"
)

// Limits on the simulated display.
const (
	MaxWidth  = 7680
	MaxHeight = 4320
)

// Display describes the framebuffer the loader hands over.
type Display struct {
	Width  uint32 `toml:"width"`
	Height uint32 `toml:"height"`
	// Pitch in bytes. Zero means Width*4.
	Pitch  uint32 `toml:"pitch"`
	BPP    uint16 `toml:"bpp"`
	Scheme string `toml:"scheme"`
}

// Region is one memory map entry.
type Region struct {
	Base   uint64      `toml:"base"`
	Length uint64      `toml:"length"`
	Type   memmap.Type `toml:"type"`
}

type Log struct {
	Level klog.Level `toml:"level"`
	Debug bool       `toml:"debug"`
}

// Profile is a simulated machine.
type Profile struct {
	Name string `toml:"name"`
	// Revision is the newest base revision the simulated loader supports.
	Revision uint64 `toml:"revision"`
	// NoFramebuffer boots without a display.
	NoFramebuffer bool     `toml:"no_framebuffer"`
	Display       Display  `toml:"display"`
	Log           Log      `toml:"log"`
	Memory        []Region `toml:"memory"`
}

// DefaultProfile resembles QEMU's q35 machine with 128 MiB and a 1024x768
// display.
func DefaultProfile() *Profile {
	return &Profile{
		Name:     "qemu-q35",
		Revision: 3,
		Display: Display{
			Width:  1024,
			Height: 768,
			BPP:    32,
			Scheme: "midnight",
		},
		Log: Log{Level: klog.LevelTrace, Debug: klog.DebugBuild},
		Memory: []Region{
			{Base: 0x0, Length: 0x9fc00, Type: memmap.Usable},
			{Base: 0x9fc00, Length: 0x400, Type: memmap.Reserved},
			{Base: 0xf0000, Length: 0x10000, Type: memmap.Reserved},
			{Base: 0x100000, Length: 0x7ee0000, Type: memmap.Usable},
			{Base: 0x7fe0000, Length: 0x10000, Type: memmap.ACPIReclaimable},
			{Base: 0x7ff0000, Length: 0x10000, Type: memmap.Reserved},
			{Base: 0x80000000, Length: 0x300000, Type: memmap.Framebuffer},
			{Base: 0xb0000000, Length: 0x10000000, Type: memmap.Reserved},
		},
	}
}

// Schemes lists the color schemes a profile may name.
var Schemes = map[string]framebuffer.ColorScheme{
	"default":  framebuffer.DefaultColorScheme,
	"midnight": framebuffer.MidnightColorScheme,
}

// ColorScheme returns the scheme the display names, defaulting to midnight.
func (d Display) ColorScheme() framebuffer.ColorScheme {
	if s, ok := Schemes[d.Scheme]; ok {
		return s
	}
	return framebuffer.MidnightColorScheme
}

// Validate fills defaults and checks the profile is bootable.
func (p *Profile) Validate() error {
	if p.Revision == 0 {
		p.Revision = 3
	}
	if p.NoFramebuffer {
		return p.validateMemory()
	}

	d := &p.Display
	if d.Width == 0 || d.Height == 0 || d.Width > MaxWidth || d.Height > MaxHeight {
		return fmt.Errorf("display %dx%d out of range (1x1 to %dx%d)", d.Width, d.Height, MaxWidth, MaxHeight)
	}
	if d.Pitch == 0 {
		d.Pitch = d.Width * 4
	}
	if d.Pitch < d.Width*4 || d.Pitch%4 != 0 {
		return fmt.Errorf("pitch %d invalid for width %d", d.Pitch, d.Width)
	}
	if d.BPP == 0 {
		d.BPP = 32
	}
	switch d.BPP {
	case 16, 24, 32:
	default:
		return fmt.Errorf("bpp %d not supported (16, 24 or 32)", d.BPP)
	}
	if d.Scheme == "" {
		d.Scheme = "midnight"
	}
	if _, ok := Schemes[d.Scheme]; !ok {
		return fmt.Errorf("unknown color scheme %q", d.Scheme)
	}
	return p.validateMemory()
}

func (p *Profile) validateMemory() error {
	for i, r := range p.Memory {
		if r.Length == 0 {
			return fmt.Errorf("memory[%d]: zero length", i)
		}
		if r.Base+r.Length < r.Base {
			return fmt.Errorf("memory[%d]: %#x+%#x overflows", i, r.Base, r.Length)
		}
	}
	return nil
}

// Decode parses a TOML profile. Unknown keys are errors.
func Decode(r io.Reader) (*Profile, error) {
	var p Profile
	dec := toml.NewDecoder(r).DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	return &p, nil
}

// Load reads, parses, and validates a TOML profile.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(bytes.NewReader(data))
}

// Encode writes p as TOML.
func (p *Profile) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(p)
}
