// Package memmap labels the physical memory regions reported by the
// bootloader.
package memmap

import (
	"fmt"
	"strconv"
	"strings"
)

// Type is a Limine memory map entry type code.
type Type uint64

const (
	Usable                Type = 0
	Reserved              Type = 1
	ACPIReclaimable       Type = 2
	ACPINVS               Type = 3
	BadMemory             Type = 4
	BootloaderReclaimable Type = 5
	ExecutableAndModules  Type = 6
	Framebuffer           Type = 7
)

// UnknownLabel is reported for any code the protocol does not define.
const UnknownLabel = "Unknown"

var labels = [...]string{
	Usable:                "Usable",
	Reserved:              "Reserved",
	ACPIReclaimable:       "ACPI Reclaimable",
	ACPINVS:               "ACPI NVS",
	BadMemory:             "Bad Memory",
	BootloaderReclaimable: "Bootloader Reclaimable",
	ExecutableAndModules:  "Executable and Modules",
	Framebuffer:           "Framebuffer",
}

// Classify returns the human readable label of a type code.
func Classify(t Type) string {
	if uint64(t) < uint64(len(labels)) {
		return labels[t]
	}
	return UnknownLabel
}

func (t Type) String() string { return Classify(t) }

// MarshalText writes the label, or the numeric code for unknown types so
// that it round-trips.
func (t Type) MarshalText() ([]byte, error) {
	if uint64(t) < uint64(len(labels)) {
		return []byte(labels[t]), nil
	}
	return []byte(strconv.FormatUint(uint64(t), 10)), nil
}

// UnmarshalText accepts a label (case insensitive, spaces or underscores) or
// a numeric code.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := ParseType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseType parses a label such as "usable", "ACPI NVS" or
// "bootloader_reclaimable", or a decimal/hex type code.
func ParseType(s string) (Type, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "_", " "))
	for code, label := range labels {
		if strings.ToLower(label) == norm {
			return Type(code), nil
		}
	}
	if n, err := strconv.ParseUint(norm, 0, 64); err == nil {
		return Type(n), nil
	}
	return 0, fmt.Errorf("ParseType: unknown memory type %q", s)
}

// Entry is one region of the memory map.
type Entry struct {
	Base   uint64
	Length uint64
	Type   Type
}

// End is the first address past the region.
func (e Entry) End() uint64 { return e.Base + e.Length }

func (e Entry) String() string {
	return fmt.Sprintf("%#016x-%#016x %s", e.Base, e.End(), Classify(e.Type))
}

// Summary accumulates the size of each region type.
type Summary struct {
	Regions int
	Bytes   map[Type]uint64
}

// Summarize totals the entries per type.
func Summarize(entries []Entry) Summary {
	s := Summary{Bytes: make(map[Type]uint64)}
	for _, e := range entries {
		s.Regions++
		s.Bytes[e.Type] += e.Length
	}
	return s
}

// Usable is the number of bytes free for the kernel to use.
func (s Summary) Usable() uint64 { return s.Bytes[Usable] }

// Total is the sum of all region lengths.
func (s Summary) Total() uint64 {
	var total uint64
	for _, n := range s.Bytes {
		total += n
	}
	return total
}
