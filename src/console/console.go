// Package console draws text onto the boot framebuffer.
//
// Text is treated as a sequence of bytes drawn with a monospace 8 pixel PSF1
// font. '\n' moves down one glyph row and back to the starting column. A
// '[' ... ']' span, brackets included, is drawn in the highlight color.
// There is no escape for a literal bracket and spans do not nest: every
// bracket simply flips the highlight state.
package console

import (
	"github.com/Haranmes/Ramen-os/src/framebuffer"
	"github.com/Haranmes/Ramen-os/src/psf"
)

// Colors selects how text is drawn. When HasHighlight is false, bracketed
// spans fall back to Foreground.
type Colors struct {
	Foreground   uint32
	Background   uint32
	Highlight    uint32
	HasHighlight bool
}

// Plain returns colors without a highlight.
func Plain(fg, bg uint32) Colors {
	return Colors{Foreground: fg, Background: bg}
}

// WithHighlight returns a copy of c that draws bracketed spans in color.
func (c Colors) WithHighlight(color uint32) Colors {
	c.Highlight = color
	c.HasHighlight = true
	return c
}

// FromScheme builds highlighted colors from a framebuffer color scheme.
func FromScheme(s framebuffer.ColorScheme) Colors {
	return Plain(s.Text, s.Background).WithHighlight(s.Highlight)
}

func (c Colors) span(highlighted bool) uint32 {
	if highlighted && c.HasHighlight {
		return c.Highlight
	}
	return c.Foreground
}

// DrawText draws text with its top-left corner at (x, y) and returns the
// pixel position following the last character.
func DrawText(fb *framebuffer.Framebuffer, font *psf.Font, text string, x, y uint32, colors Colors) (uint32, uint32) {
	cursorX, cursorY := x, y
	highlighted := false

	for i := 0; i < len(text); i++ {
		ch := text[i]
		switch ch {
		case '\n':
			cursorX = x
			cursorY += font.Height
			continue
		case '[':
			highlighted = !highlighted
		}

		fb.DrawChar(font, ch, cursorX, cursorY, colors.span(highlighted), colors.Background)
		cursorX += psf.GlyphWidth

		if ch == ']' {
			highlighted = !highlighted
		}
	}

	return cursorX, cursorY
}
