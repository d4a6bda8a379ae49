package memmap

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Usable, "Usable"},
		{Reserved, "Reserved"},
		{ACPIReclaimable, "ACPI Reclaimable"},
		{ACPINVS, "ACPI NVS"},
		{BadMemory, "Bad Memory"},
		{BootloaderReclaimable, "Bootloader Reclaimable"},
		{ExecutableAndModules, "Executable and Modules"},
		{Framebuffer, "Framebuffer"},
		{8, "Unknown"},
		{9999, "Unknown"},
		{^Type(0), "Unknown"},
	}

	for _, tt := range tests {
		if got := Classify(tt.typ); got != tt.want {
			t.Errorf("Classify(%d) = %q, want %q", uint64(tt.typ), got, tt.want)
		}
	}
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{in: "usable", want: Usable},
		{in: "ACPI NVS", want: ACPINVS},
		{in: "bootloader_reclaimable", want: BootloaderReclaimable},
		{in: " Executable and Modules ", want: ExecutableAndModules},
		{in: "7", want: Framebuffer},
		{in: "0x2", want: ACPIReclaimable},
		{in: "9999", want: 9999},
		{in: "swap", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseType(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseType(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseType(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTypeTextRoundTrip(t *testing.T) {
	for _, typ := range []Type{Usable, BadMemory, Framebuffer, 42} {
		text, err := typ.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%d) error = %v", typ, err)
		}
		var back Type
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q) error = %v", text, err)
		}
		if back != typ {
			t.Errorf("round trip of %d gave %d via %q", typ, back, text)
		}
	}
}

func TestEntryString(t *testing.T) {
	e := Entry{Base: 0x100000, Length: 0x7ee0000, Type: Usable}
	want := "0x0000000000100000-0x0000000007fe0000 Usable"
	if got := e.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize([]Entry{
		{Base: 0, Length: 0x9fc00, Type: Usable},
		{Base: 0x9fc00, Length: 0x400, Type: Reserved},
		{Base: 0x100000, Length: 0x100000, Type: Usable},
		{Base: 0xfd000000, Length: 0x300000, Type: Framebuffer},
	})

	if s.Regions != 4 {
		t.Errorf("Regions = %d, want 4", s.Regions)
	}
	if got, want := s.Usable(), uint64(0x9fc00+0x100000); got != want {
		t.Errorf("Usable() = %#x, want %#x", got, want)
	}
	if got, want := s.Total(), uint64(0x9fc00+0x400+0x100000+0x300000); got != want {
		t.Errorf("Total() = %#x, want %#x", got, want)
	}
}
