// Package psf loads PC Screen Font version 1 (PSF1) bitmap fonts.
//
// A PSF1 file is a 4 byte header followed by the glyph bitmaps:
//
//	offset 0-1: magic 0x36 0x04
//	offset 2:   mode flags (bit 0: 512 glyphs instead of 256)
//	offset 3:   glyph height in bytes (one byte per 8 pixel row)
//	offset 4-:  glyph data, Height bytes per glyph
//
// Glyphs are always 8 pixels wide. Bit 7 of each row byte is the leftmost pixel.
package psf

const (
	Magic0 = 0x36
	Magic1 = 0x04

	// HeaderSize is the number of bytes preceding the glyph bitmaps.
	HeaderSize = 4

	// GlyphWidth is the fixed width of every PSF1 glyph in pixels.
	GlyphWidth = 8

	// Mode512 marks a font that carries 512 glyphs.
	Mode512 = 0x01
)

// Font is a parsed PSF1 font. Glyphs borrows the slice passed to Load; nothing
// is copied, so the caller must keep the backing data alive and unmodified.
type Font struct {
	Mode   byte
	Height uint32
	Glyphs []byte
}

// Load parses a PSF1 blob. It only validates the magic and the header length.
// The glyph table is not checked against 256*Height here: a truncated font is
// accepted and Glyph reports the missing characters instead.
func Load(data []byte) (*Font, bool) {
	if len(data) < HeaderSize || data[0] != Magic0 || data[1] != Magic1 {
		return nil, false
	}

	return &Font{
		Mode:   data[2],
		Height: uint32(data[3]),
		Glyphs: data[HeaderSize:],
	}, true
}

// NumGlyphs is the glyph count announced by the header mode byte.
func (f *Font) NumGlyphs() int {
	if f.Mode&Mode512 != 0 {
		return 512
	}
	return 256
}

// Glyph returns the Height row bytes of ch, or false when the glyph table is
// too short to hold it.
//
//go:nosplit
func (f *Font) Glyph(ch byte) ([]byte, bool) {
	offset := uint64(ch) * uint64(f.Height)
	end := offset + uint64(f.Height)
	if end > uint64(len(f.Glyphs)) {
		return nil, false
	}
	return f.Glyphs[offset:end], true
}
