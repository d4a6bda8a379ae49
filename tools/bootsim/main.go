// Command bootsim boots the kernel against a simulated loader and shows
// what it drew.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/Haranmes/Ramen-os/src/bootsim"
	"github.com/Haranmes/Ramen-os/src/serial"
)

func main() {
	configPath := flag.String("config", "", "machine profile (TOML); default is a QEMU-like machine")
	pngPath := flag.String("png", "", "write a screenshot of the framebuffer to this file")
	preview := flag.Bool("preview", false, "show the framebuffer in the terminal until a key is pressed")
	dumpConfig := flag.Bool("dump-config", false, "print the default profile and exit")
	flag.Parse()

	if *dumpConfig {
		if err := bootsim.DefaultProfile().Encode(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error encoding profile: %v\n", err)
			os.Exit(1)
		}
		return
	}

	profile := bootsim.DefaultProfile()
	if *configPath != "" {
		p, err := bootsim.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", *configPath, err)
			os.Exit(1)
		}
		profile = p
	} else if err := profile.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in default profile: %v\n", err)
		os.Exit(1)
	}

	m := bootsim.New(profile)
	m.Boot(serial.NewConsole(os.Stdout))
	if m.Halts == 0 {
		fmt.Fprintf(os.Stderr, "kernel returned without halting\n")
		os.Exit(1)
	}

	if *pngPath != "" {
		if err := m.SavePNG(*pngPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", *pngPath, err)
			os.Exit(1)
		}
	}

	if *preview && m.Framebuffer != nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening terminal: %v\n", err)
			os.Exit(1)
		}
		if err := screen.Init(); err != nil {
			fmt.Fprintf(os.Stderr, "Error initializing terminal: %v\n", err)
			os.Exit(1)
		}
		bootsim.RunPreview(screen, m.Framebuffer)
		screen.Fini()
	}
}
