package fmtbuf

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestWrite(t *testing.T) {
	var b Buffer
	if n, err := b.Write([]byte("hello")); err != nil || n != 5 {
		t.Fatalf("Write() = %d, %v, want 5, nil", n, err)
	}
	if n, err := b.WriteString(", world"); err != nil || n != 7 {
		t.Fatalf("WriteString() = %d, %v, want 7, nil", n, err)
	}
	if err := b.WriteByte('!'); err != nil {
		t.Fatalf("WriteByte() error = %v", err)
	}
	if got := b.String(); got != "hello, world!" {
		t.Errorf("String() = %q, want %q", got, "hello, world!")
	}
	if b.Len() != 13 {
		t.Errorf("Len() = %d, want 13", b.Len())
	}
	if b.Cap() != Capacity {
		t.Errorf("Cap() = %d, want %d", b.Cap(), Capacity)
	}
}

func TestWriteOverflowIsAtomic(t *testing.T) {
	tests := []struct {
		name    string
		prefill int
		write   int
		wantErr bool
	}{
		{name: "exactly full", prefill: 0, write: Capacity, wantErr: false},
		{name: "one past capacity", prefill: 0, write: Capacity + 1, wantErr: true},
		{name: "fills remaining", prefill: 500, write: 12, wantErr: false},
		{name: "overflows remaining", prefill: 500, write: 13, wantErr: true},
		{name: "write to full buffer", prefill: Capacity, write: 1, wantErr: true},
		{name: "empty write to full buffer", prefill: Capacity, write: 0, wantErr: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b Buffer
			if _, err := b.WriteString(strings.Repeat("a", tt.prefill)); err != nil {
				t.Fatalf("prefill: %v", err)
			}
			before := b.String()

			n, err := b.WriteString(strings.Repeat("b", tt.write))
			if (err != nil) != tt.wantErr {
				t.Fatalf("WriteString() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				if b.Len() != tt.prefill+tt.write {
					t.Errorf("Len() = %d, want %d", b.Len(), tt.prefill+tt.write)
				}
				return
			}
			if !errors.Is(err, ErrOverflow) {
				t.Errorf("WriteString() error = %v, want ErrOverflow", err)
			}
			if n != 0 {
				t.Errorf("WriteString() n = %d on overflow, want 0", n)
			}
			if b.Len() != tt.prefill {
				t.Errorf("Len() = %d after failed write, want %d", b.Len(), tt.prefill)
			}
			if b.String() != before {
				t.Error("buffer contents changed after failed write")
			}
		})
	}
}

func TestWriteByteOverflow(t *testing.T) {
	var b Buffer
	b.WriteString(strings.Repeat("x", Capacity))
	if err := b.WriteByte('y'); !errors.Is(err, ErrOverflow) {
		t.Errorf("WriteByte() on full buffer error = %v, want ErrOverflow", err)
	}
	if b.Len() != Capacity {
		t.Errorf("Len() = %d, want %d", b.Len(), Capacity)
	}
}

func TestFprintf(t *testing.T) {
	var b Buffer
	if _, err := fmt.Fprintf(&b, "[%s] %d regions", "INFO", 7); err != nil {
		t.Fatalf("Fprintf() error = %v", err)
	}
	if got := b.String(); got != "[INFO] 7 regions" {
		t.Errorf("String() = %q", got)
	}

	// A formatted message that does not fit is rejected as a whole.
	_, err := fmt.Fprintf(&b, " %s", strings.Repeat("z", Capacity))
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("Fprintf() error = %v, want ErrOverflow", err)
	}
	if got := b.String(); got != "[INFO] 7 regions" {
		t.Errorf("String() = %q after failed Fprintf", got)
	}
}

func TestStringInvalidUTF8(t *testing.T) {
	var b Buffer
	b.Write([]byte{'o', 'k', 0xff, 0xfe})
	if got := b.String(); got != InvalidText {
		t.Errorf("String() = %q, want %q", got, InvalidText)
	}
	if len(b.Bytes()) != 4 {
		t.Errorf("Bytes() len = %d, want 4", len(b.Bytes()))
	}
}

func TestReset(t *testing.T) {
	var b Buffer
	b.WriteString("abc")
	b.Reset()
	if b.Len() != 0 || b.String() != "" {
		t.Errorf("after Reset() Len() = %d, String() = %q", b.Len(), b.String())
	}
}
