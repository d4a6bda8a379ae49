// Package klog is the boot-time leveled diagnostics facade. A message is
// formatted once into a bounded buffer and handed to every sink (the
// framebuffer console, a serial line) as a single line.
package klog

import (
	"fmt"
	"strings"
)

// Level is the severity of a message. Levels are ordered.
type Level uint8

const (
	LevelNone Level = iota
	LevelTrace
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
	LevelPanic
)

// LocationPolicy says when a level annotates messages with file:line.
type LocationPolicy uint8

const (
	LocationNever LocationPolicy = iota
	LocationAlways
	// LocationDebug annotates only in debug configuration.
	LocationDebug
)

// Style is the fixed presentation of a level.
type Style struct {
	Label    string
	Color    uint32 // XRGB8888
	Location LocationPolicy
}

var styles = [...]Style{
	LevelNone:  {Label: "NONE", Color: 0xffffff, Location: LocationNever},
	LevelTrace: {Label: "TRACE", Color: 0x00cc00, Location: LocationNever},
	LevelDebug: {Label: "DEBUG", Color: 0xff0000, Location: LocationNever},
	LevelInfo:  {Label: "INFO", Color: 0xffff00, Location: LocationNever},
	LevelWarn:  {Label: "WARN ", Color: 0xff0000, Location: LocationDebug},
	LevelError: {Label: "ERROR", Color: 0xcc0000, Location: LocationAlways},
	LevelFatal: {Label: "FATAL", Color: 0xcc0000, Location: LocationAlways},
	LevelPanic: {Label: "PANIC", Color: 0x0066cc, Location: LocationAlways},
}

// Style returns the label, color and location policy of l. Out of range
// levels are styled like LevelPanic.
func (l Level) Style() Style {
	if int(l) < len(styles) {
		return styles[l]
	}
	return styles[LevelPanic]
}

// ShowLocation resolves the location policy of l for a configuration.
func (l Level) ShowLocation(debug bool) bool {
	switch l.Style().Location {
	case LocationAlways:
		return true
	case LocationDebug:
		return debug
	default:
		return false
	}
}

func (l Level) String() string {
	return strings.TrimSpace(l.Style().Label)
}

// ParseLevel accepts a level name in any case.
func ParseLevel(s string) (Level, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for l := range styles {
		if strings.TrimSpace(styles[l].Label) == want {
			return Level(l), nil
		}
	}
	return LevelNone, fmt.Errorf("ParseLevel: unknown level %q", s)
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(strings.ToLower(l.String())), nil
}

func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
