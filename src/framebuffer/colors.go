package framebuffer

// Color values in XRGB8888 format (0x00RRGGBB). The top byte is never
// interpreted as alpha.

const (
	Black   uint32 = 0x00000000
	White   uint32 = 0x00FFFFFF
	Red     uint32 = 0x00EE4B2B // Error text
	Green   uint32 = 0x0000CC00
	Yellow  uint32 = 0x00FFFF00
	Blue    uint32 = 0x000066CC
	Crimson uint32 = 0x00CC0000
	Scarlet uint32 = 0x00FF0000

	// Soft ANSI palette (Dracula-like), used for highlights
	AnsiBrightGreen  uint32 = 0x00B8F171
	AnsiBrightYellow uint32 = 0x00FFE580
	AnsiBrightBlue   uint32 = 0x0080BAFF
	AnsiBrightCyan   uint32 = 0x0078FFFF

	MidnightBlue uint32 = 0x00191B70 // RGB(25, 27, 112)
)

// ColorScheme groups the colors the boot console draws with.
type ColorScheme struct {
	Background uint32
	Text       uint32
	Error      uint32
	Highlight  uint32
}

// DefaultColorScheme is white on black with cyan highlights.
var DefaultColorScheme = ColorScheme{
	Background: Black,
	Text:       White,
	Error:      Red,
	Highlight:  AnsiBrightCyan,
}

// MidnightColorScheme is bright green on midnight blue.
var MidnightColorScheme = ColorScheme{
	Background: MidnightBlue,
	Text:       AnsiBrightGreen,
	Error:      Red,
	Highlight:  AnsiBrightYellow,
}

// RGB splits a XRGB8888 value into its channels.
func RGB(color uint32) (r, g, b uint8) {
	return uint8(color >> 16), uint8(color >> 8), uint8(color)
}
