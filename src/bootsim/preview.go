package bootsim

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Haranmes/Ramen-os/src/framebuffer"
)

// upperHalf draws the top pixel as foreground and the bottom one as
// background, giving two pixel rows per terminal row.
const upperHalf = '▀'

// previewScale is the number of framebuffer pixels per preview pixel needed
// to fit a width x height framebuffer into cols x rows cells.
func previewScale(width, height uint32, cols, rows int) uint32 {
	if cols <= 0 || rows <= 0 {
		return 0
	}
	sx := (width + uint32(cols) - 1) / uint32(cols)
	sy := (height + uint32(2*rows) - 1) / uint32(2*rows)
	return max(sx, sy, 1)
}

func cellColor(c uint32) tcell.Color {
	r, g, b := framebuffer.RGB(c)
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// Preview draws a nearest-neighbour downscale of fb onto screen and shows
// it. Cells past the scaled image are cleared.
func Preview(screen tcell.Screen, fb *framebuffer.Framebuffer) {
	cols, rows := screen.Size()
	scale := previewScale(fb.Width, fb.Height, cols, rows)
	if scale == 0 {
		return
	}

	screen.Clear()
	for row := 0; row < rows; row++ {
		top := uint32(2*row) * scale
		bottom := top + scale
		if top >= fb.Height {
			break
		}
		for col := 0; col < cols; col++ {
			x := uint32(col) * scale
			if x >= fb.Width {
				break
			}
			style := tcell.StyleDefault.Foreground(cellColor(fb.At(x, top)))
			if bottom < fb.Height {
				style = style.Background(cellColor(fb.At(x, bottom)))
			}
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	screen.Show()
}

// RunPreview shows fb until a key is pressed or the terminal is closed.
func RunPreview(screen tcell.Screen, fb *framebuffer.Framebuffer) {
	Preview(screen, fb)
	for {
		switch screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			Preview(screen, fb)
		case *tcell.EventKey:
			return
		}
	}
}
