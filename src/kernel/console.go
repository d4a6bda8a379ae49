package kernel

import (
	"errors"

	"github.com/Haranmes/Ramen-os/src/console"
	"github.com/Haranmes/Ramen-os/src/framebuffer"
	"github.com/Haranmes/Ramen-os/src/limine"
	"github.com/Haranmes/Ramen-os/src/psf"
)

// ErrBadFont is reported when the console font fails to parse.
var ErrBadFont = errors.New("console font is not a valid PSF1 font")

// firstFramebuffer returns the first framebuffer the loader reported, or nil.
func (k *Kernel) firstFramebuffer() *limine.Framebuffer {
	if k.m.Framebuffer == nil {
		return nil
	}
	fbs := k.m.Framebuffer.Response.Framebuffers()
	if len(fbs) == 0 {
		return nil
	}
	return fbs[0]
}

// initConsole draws the banner and attaches the console to the logger.
// Without a usable framebuffer the kernel continues on the serial sink
// alone; a bad font is the only error.
func (k *Kernel) initConsole() error {
	lfb := k.firstFramebuffer()
	if lfb == nil {
		k.log.Warnf("no framebuffer, diagnostics go to serial only")
		return nil
	}
	if !lfb.IsXRGB8888() {
		k.log.Warnf("framebuffer is %d bpp model %d, not XRGB8888", lfb.BPP, lfb.MemoryModel)
		return nil
	}

	font, ok := psf.Load(k.m.Font)
	if !ok {
		return ErrBadFont
	}

	k.fb = framebuffer.New(lfb.Address, uint32(lfb.Width), uint32(lfb.Height), uint32(lfb.Pitch))
	colors := console.FromScheme(k.m.Colors)
	k.fb.Clear(colors.Background)

	_, y := console.DrawText(k.fb, font, Banner, BannerX, BannerY, colors)

	k.console = console.NewRenderContext(k.fb, font, colors)
	k.console.MoveTo(BannerX, y+2*font.Height)
	k.log.AddSink(k.console)
	return nil
}
