package serial

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Console mirrors diagnostic lines to a host stream, standing in for the
// serial port when the kernel runs under the boot simulator. When Color is
// set each line is wrapped in a 24-bit ANSI foreground escape.
type Console struct {
	w     io.Writer
	Color bool
}

// NewWriter writes plain or colored lines to w.
func NewWriter(w io.Writer, color bool) *Console {
	return &Console{w: w, Color: color}
}

// NewConsole writes to f and enables color only if f is a terminal.
func NewConsole(f *os.File) *Console {
	return NewWriter(f, term.IsTerminal(int(f.Fd())))
}

// WriteLine writes line and a newline. Write errors are ignored: the
// transport is best effort.
func (c *Console) WriteLine(color uint32, line string) {
	if c.Color {
		r, g, b := uint8(color>>16), uint8(color>>8), uint8(color)
		fmt.Fprintf(c.w, "\x1b[38;2;%d;%d;%dm%s\x1b[0m\n", r, g, b, line)
		return
	}
	io.WriteString(c.w, line+"\n")
}
