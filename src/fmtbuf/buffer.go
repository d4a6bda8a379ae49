// Package fmtbuf provides a fixed-capacity write target for fmt so a
// diagnostic line can be formatted without growing a heap buffer.
package fmtbuf

import (
	"errors"
	"unicode/utf8"
)

// Capacity is the largest message, in bytes, a Buffer holds.
const Capacity = 512

// InvalidText is returned by String when the buffer does not hold UTF-8.
const InvalidText = "<utf8-error>"

var ErrOverflow = errors.New("fmtbuf: message exceeds buffer capacity")

// Buffer is a fixed array plus a length. The zero value is empty and ready to
// use. Writes are all or nothing: a write that does not fit leaves the
// buffer exactly as it was.
type Buffer struct {
	buf [Capacity]byte
	n   int
}

// Write appends p. It fails with ErrOverflow, writing nothing, if p does not
// fit in the remaining space.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(p) > Capacity-b.n {
		return 0, ErrOverflow
	}
	b.n += copy(b.buf[b.n:], p)
	return len(p), nil
}

// WriteString is Write for strings; fmt and io.WriteString use it when present.
func (b *Buffer) WriteString(s string) (int, error) {
	if len(s) > Capacity-b.n {
		return 0, ErrOverflow
	}
	b.n += copy(b.buf[b.n:], s)
	return len(s), nil
}

// WriteByte appends a single byte.
func (b *Buffer) WriteByte(c byte) error {
	if b.n == Capacity {
		return ErrOverflow
	}
	b.buf[b.n] = c
	b.n++
	return nil
}

// Bytes returns the written bytes. The slice aliases the buffer.
func (b *Buffer) Bytes() []byte { return b.buf[:b.n] }

// String returns the written bytes as text, or InvalidText if they are not
// valid UTF-8.
func (b *Buffer) String() string {
	if !utf8.Valid(b.buf[:b.n]) {
		return InvalidText
	}
	return string(b.buf[:b.n])
}

func (b *Buffer) Len() int { return b.n }

func (b *Buffer) Cap() int { return Capacity }

// Reset empties the buffer for reuse.
func (b *Buffer) Reset() { b.n = 0 }
