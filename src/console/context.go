package console

import (
	"fmt"

	"github.com/Haranmes/Ramen-os/src/fmtbuf"
	"github.com/Haranmes/Ramen-os/src/framebuffer"
	"github.com/Haranmes/Ramen-os/src/psf"
)

// RenderContext owns the cursor of one framebuffer. Every Println starts at
// the left margin of the current line and moves the cursor down exactly one
// glyph row afterwards, whatever newlines the message contains.
//
// A RenderContext is not safe for concurrent use. Boot code runs on a single
// CPU with interrupts off; anything that prints from more than one context
// must serialize access to it first.
type RenderContext struct {
	fb     *framebuffer.Framebuffer
	font   *psf.Font
	colors Colors

	margin uint32
	x, y   uint32
}

// NewRenderContext starts the cursor at (0, 0).
func NewRenderContext(fb *framebuffer.Framebuffer, font *psf.Font, colors Colors) *RenderContext {
	return &RenderContext{fb: fb, font: font, colors: colors}
}

// Cursor returns the pixel position the next line starts at.
func (r *RenderContext) Cursor() (x, y uint32) { return r.x, r.y }

// MoveTo places the cursor and makes x the left margin.
func (r *RenderContext) MoveTo(x, y uint32) {
	r.margin = x
	r.x, r.y = x, y
}

// Colors returns the default colors of the context.
func (r *RenderContext) Colors() Colors { return r.colors }

// Font returns the font the context draws with.
func (r *RenderContext) Font() *psf.Font { return r.font }

// Print draws text at the cursor with the given colors and advances one line.
func (r *RenderContext) Print(text string, colors Colors) {
	DrawText(r.fb, r.font, text, r.x, r.y, colors)
	r.x = r.margin
	r.y += r.font.Height
}

// Println draws text in the default colors.
func (r *RenderContext) Println(text string) {
	r.Print(text, r.colors)
}

// Printf formats into a bounded buffer and prints the result in the default
// colors. A message longer than fmtbuf.Capacity is dropped, the cursor does
// not move, and fmtbuf.ErrOverflow is returned.
func (r *RenderContext) Printf(format string, args ...any) error {
	var buf fmtbuf.Buffer
	if _, err := fmt.Fprintf(&buf, format, args...); err != nil {
		return err
	}
	r.Println(buf.String())
	return nil
}

// WriteLine prints line with color as foreground, keeping the default
// background and highlight. It lets the context act as a log sink.
func (r *RenderContext) WriteLine(color uint32, line string) {
	colors := r.colors
	colors.Foreground = color
	r.Print(line, colors)
}
