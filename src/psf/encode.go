package psf

import (
	"errors"
	"fmt"
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var ErrGlyphTooTall = errors.New("psf: face line height exceeds glyph height")

// Encode rasterises the first 256 code points of face into a PSF1 blob with
// glyphs of the given height. The face is centered in the 8 pixel cell
// horizontally and in the height vertically; code points the face does not
// provide are left blank. Any coverage of at least 50% sets a pixel.
func Encode(face font.Face, height int) ([]byte, error) {
	if height <= 0 || height > 255 {
		return nil, fmt.Errorf("Encode: glyph height %d out of range 1-255", height)
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := ascent + metrics.Descent.Ceil()
	if lineHeight > height {
		return nil, fmt.Errorf("Encode: %w (%d > %d)", ErrGlyphTooTall, lineHeight, height)
	}

	advance := GlyphWidth
	if a, ok := face.GlyphAdvance('M'); ok && a.Ceil() <= GlyphWidth {
		advance = a.Ceil()
	}

	dot := fixed.P((GlyphWidth-advance+1)/2, (height-lineHeight+1)/2+ascent)

	out := make([]byte, HeaderSize+256*height)
	out[0] = Magic0
	out[1] = Magic1
	out[2] = 0
	out[3] = byte(height)

	cell := image.NewAlpha(image.Rect(0, 0, GlyphWidth, height))
	for ch := 0; ch < 256; ch++ {
		dr, mask, maskp, _, ok := face.Glyph(dot, rune(ch))
		if !ok {
			continue
		}

		clear(cell.Pix)
		draw.DrawMask(cell, dr, image.Opaque, image.Point{}, mask, maskp, draw.Over)

		glyph := out[HeaderSize+ch*height : HeaderSize+(ch+1)*height]
		for row := 0; row < height; row++ {
			var bits byte
			for col := 0; col < GlyphWidth; col++ {
				if cell.AlphaAt(col, row).A >= 0x80 {
					bits |= 1 << uint(7-col)
				}
			}
			glyph[row] = bits
		}
	}

	return out, nil
}
