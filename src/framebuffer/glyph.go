package framebuffer

import "github.com/Haranmes/Ramen-os/src/psf"

// DrawChar renders glyph ch of font with its top-left corner at pixel
// (x, y). Set bits are drawn in fg, clear bits in bg.
//
// A glyph the font does not contain draws nothing. Pixels falling outside
// the screen are skipped one by one, so a glyph straddling the edge is
// partially drawn.
//
//go:nosplit
func (fb *Framebuffer) DrawChar(font *psf.Font, ch byte, x, y, fg, bg uint32) {
	glyph, ok := font.Glyph(ch)
	if !ok {
		return
	}

	// Font bitmap format: MSB (bit 7) = leftmost pixel
	for row := 0; row < len(glyph); row++ {
		py := y + uint32(row)
		if py < y {
			return // coordinate overflow
		}
		rowByte := glyph[row]
		for col := uint32(0); col < psf.GlyphWidth; col++ {
			px := x + col
			if px < x {
				break
			}
			color := bg
			if rowByte&(1<<(7-col)) != 0 {
				color = fg
			}
			fb.WritePixel(px, py, color)
		}
	}
}
