// Command psfgen rasterizes a bitmap font into a PSF1 console font.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/zachomedia/go-bdf"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/Haranmes/Ramen-os/src/psf"
)

func loadFace(bdfPath string) (font.Face, error) {
	if bdfPath == "" {
		return basicfont.Face7x13, nil
	}
	data, err := os.ReadFile(bdfPath)
	if err != nil {
		return nil, err
	}
	f, err := bdf.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", bdfPath, err)
	}
	return f.NewFace(), nil
}

func main() {
	bdfPath := flag.String("bdf", "", "BDF font to convert (default: built-in 7x13)")
	height := flag.Int("height", 16, "glyph height in pixels (1-255)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: psfgen [-bdf font.bdf] [-height n] <output.psf>\n")
		fmt.Fprintf(os.Stderr, "Writes a 256 glyph PSF1 font, 8 pixels wide\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}
	outputPath := flag.Arg(0)

	face, err := loadFace(*bdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading font: %v\n", err)
		os.Exit(1)
	}

	data, err := psf.Encode(face, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding font: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outputPath, err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d glyphs (8x%d) to %s, %d bytes\n", 256, *height, outputPath, len(data))
}
