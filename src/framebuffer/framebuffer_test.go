package framebuffer

import (
	"testing"

	"github.com/Haranmes/Ramen-os/src/psf"
)

const (
	fg uint32 = 0x00FFFFFF
	bg uint32 = 0x00102030
	// sentinel marks pixels nothing should have touched
	sentinel uint32 = 0x00ABCDEF
)

// testFont has a height of 2. Glyph 'A' is a checkerboard, glyph 'B' is
// fully lit, and the table stops after 'B'.
func testFont(t *testing.T) *psf.Font {
	t.Helper()
	const height = 2
	data := make([]byte, psf.HeaderSize+('B'+1)*height)
	data[0], data[1], data[3] = psf.Magic0, psf.Magic1, height
	glyphs := data[psf.HeaderSize:]
	glyphs['A'*height] = 0xAA
	glyphs['A'*height+1] = 0x55
	glyphs['B'*height] = 0xFF
	glyphs['B'*height+1] = 0xFF

	f, ok := psf.Load(data)
	if !ok {
		t.Fatal("psf.Load() rejected the test font")
	}
	return f
}

func TestWritePixel(t *testing.T) {
	fb := Alloc(4, 3, 0)
	fb.WritePixel(3, 2, fg)
	if got := fb.At(3, 2); got != fg {
		t.Errorf("At(3, 2) = %#x, want %#x", got, fg)
	}

	// Off screen writes are dropped without touching neighbours.
	fb.Clear(sentinel)
	fb.WritePixel(4, 0, fg)
	fb.WritePixel(0, 3, fg)
	for y := uint32(0); y < 3; y++ {
		for x := uint32(0); x < 4; x++ {
			if got := fb.At(x, y); got != sentinel {
				t.Errorf("At(%d, %d) = %#x after off-screen write, want %#x", x, y, got, sentinel)
			}
		}
	}
}

func TestWritePixelHonorsPitch(t *testing.T) {
	// 3 pixels wide, but 5 pixels of memory per scanline.
	fb := Alloc(3, 2, 5*BytesPerPixel)
	fb.WritePixel(0, 1, fg)

	words := fb.backing
	if words[5] != fg {
		t.Errorf("word 5 = %#x, want %#x (row 1 starts at pitch)", words[5], fg)
	}
	if words[3] != 0 {
		t.Errorf("word 3 = %#x, want 0 (padding of row 0)", words[3])
	}
}

func TestDrawChar(t *testing.T) {
	font := testFont(t)
	fb := Alloc(16, 4, 0)
	fb.Clear(sentinel)

	fb.DrawChar(font, 'A', 2, 1, fg, bg)

	for row := uint32(0); row < 2; row++ {
		for col := uint32(0); col < 8; col++ {
			lit := (row+col)%2 == 0 // 0xAA then 0x55
			want := bg
			if lit {
				want = fg
			}
			if got := fb.At(2+col, 1+row); got != want {
				t.Errorf("pixel (%d, %d) = %#x, want %#x", col, row, got, want)
			}
		}
	}

	// Outside the glyph box nothing changes.
	for _, p := range [][2]uint32{{1, 1}, {10, 1}, {2, 0}, {2, 3}} {
		if got := fb.At(p[0], p[1]); got != sentinel {
			t.Errorf("At(%d, %d) = %#x, want untouched", p[0], p[1], got)
		}
	}
}

func TestDrawCharIdempotent(t *testing.T) {
	font := testFont(t)
	once := Alloc(12, 4, 0)
	twice := Alloc(12, 4, 0)

	once.DrawChar(font, 'A', 3, 1, fg, bg)
	twice.DrawChar(font, 'A', 3, 1, fg, bg)
	twice.DrawChar(font, 'A', 3, 1, fg, bg)

	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 12; x++ {
			if once.At(x, y) != twice.At(x, y) {
				t.Fatalf("pixel (%d, %d) differs: once %#x, twice %#x", x, y, once.At(x, y), twice.At(x, y))
			}
		}
	}
}

func TestDrawCharClipsPerPixel(t *testing.T) {
	font := testFont(t)
	// Row padding is poisoned so stray writes past Width would be seen.
	fb := Alloc(5, 3, 8*BytesPerPixel)
	for i := range fb.backing {
		fb.backing[i] = sentinel
	}

	fb.DrawChar(font, 'B', 2, 2, fg, bg)

	for y := uint32(0); y < 3; y++ {
		for x := uint32(0); x < 5; x++ {
			want := sentinel
			if x >= 2 && y == 2 {
				want = fg
			}
			if got := fb.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
	for i, w := range fb.backing {
		x := uint32(i) % 8
		if x >= 5 && w != sentinel {
			t.Errorf("padding word %d = %#x, want untouched", i, w)
		}
	}
}

func TestDrawCharOutOfRangeGlyph(t *testing.T) {
	font := testFont(t)
	fb := Alloc(8, 2, 0)
	fb.Clear(sentinel)

	fb.DrawChar(font, 'C', 0, 0, fg, bg) // table ends after 'B'
	fb.DrawChar(font, 0xFF, 0, 0, fg, bg)

	for y := uint32(0); y < 2; y++ {
		for x := uint32(0); x < 8; x++ {
			if got := fb.At(x, y); got != sentinel {
				t.Fatalf("At(%d, %d) = %#x, want untouched", x, y, got)
			}
		}
	}
}

func TestFillClips(t *testing.T) {
	fb := Alloc(4, 4, 0)
	fb.Fill(2, 2, 10, 10, fg)

	for y := uint32(0); y < 4; y++ {
		for x := uint32(0); x < 4; x++ {
			want := uint32(0)
			if x >= 2 && y >= 2 {
				want = fg
			}
			if got := fb.At(x, y); got != want {
				t.Errorf("At(%d, %d) = %#x, want %#x", x, y, got, want)
			}
		}
	}
}

func TestRGB(t *testing.T) {
	r, g, b := RGB(0x00123456)
	if r != 0x12 || g != 0x34 || b != 0x56 {
		t.Errorf("RGB() = %#x %#x %#x, want 0x12 0x34 0x56", r, g, b)
	}
}
