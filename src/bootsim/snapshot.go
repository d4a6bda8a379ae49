package bootsim

import (
	"errors"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/Haranmes/Ramen-os/src/framebuffer"
)

// Bezel is the frame drawn around a snapshot, in pixels.
const Bezel = 24

// ErrNoFramebuffer is returned when a snapshot is asked of a headless
// machine.
var ErrNoFramebuffer = errors.New("machine has no framebuffer")

// Image copies the XRGB8888 framebuffer into an RGBA image.
func Image(fb *framebuffer.Framebuffer) *image.RGBA {
	w, h := int(fb.Width), int(fb.Height)
	im := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := im.Pix[y*im.Stride:]
		for x := 0; x < w; x++ {
			r, g, b := framebuffer.RGB(fb.At(uint32(x), uint32(y)))
			i := x * 4
			row[i+0] = r
			row[i+1] = g
			row[i+2] = b
			row[i+3] = 0xFF
		}
	}
	return im
}

// Snapshot renders the screen inside a monitor bezel.
func (m *Machine) Snapshot() (*gg.Context, error) {
	if m.Framebuffer == nil {
		return nil, ErrNoFramebuffer
	}
	screen := Image(m.Framebuffer)
	w := float64(screen.Bounds().Dx() + 2*Bezel)
	h := float64(screen.Bounds().Dy() + 2*Bezel)

	dc := gg.NewContext(int(w), int(h))
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.Clear()
	dc.SetRGB(0.22, 0.22, 0.24)
	dc.DrawRoundedRectangle(2, 2, w-4, h-4, Bezel/2)
	dc.Fill()
	dc.DrawImage(screen, Bezel, Bezel)
	return dc, nil
}

// WritePNG encodes the snapshot as PNG.
func (m *Machine) WritePNG(w io.Writer) error {
	dc, err := m.Snapshot()
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// SavePNG writes the snapshot to path.
func (m *Machine) SavePNG(path string) error {
	dc, err := m.Snapshot()
	if err != nil {
		return err
	}
	return dc.SavePNG(path)
}
