// Package serial provides the line transports the boot diagnostics are
// mirrored to: an ARM PL011 UART driven through MMIO, and a host writer.
package serial

import (
	"sync/atomic"
	"unsafe"
)

// PL011 register offsets from the UART base.
const (
	UART_DR   = 0x00 // Data register
	UART_FR   = 0x18 // Flag register
	UART_IBRD = 0x24
	UART_FBRD = 0x28
	UART_LCRH = 0x2C
	UART_CR   = 0x30
	UART_ICR  = 0x44

	// RegisterSpan is the number of bytes covering the registers above.
	RegisterSpan = 0x48
)

// Flag register bits.
const (
	FR_BUSY = 1 << 3
	FR_RXFE = 1 << 4 // Receive FIFO empty
	FR_TXFF = 1 << 5 // Transmit FIFO full
)

// Well-known UART base addresses.
const (
	QEMU_VIRT_UART_BASE uintptr = 0x09000000
	RPI4_UART0_BASE     uintptr = 0xFE201000
)

// PL011 is a polled PL011 UART. Register accesses are 32 bit and go through
// sync/atomic so they are never cached in a register or reordered.
type PL011 struct {
	base unsafe.Pointer
}

// NewPL011 drives the UART whose registers start at base. The address must
// be mapped (identity mapped at boot).
func NewPL011(base unsafe.Pointer) *PL011 {
	return &PL011{base: base}
}

func (u *PL011) reg(offset uintptr) *uint32 {
	return (*uint32)(unsafe.Add(u.base, offset))
}

func (u *PL011) read(offset uintptr) uint32 {
	return atomic.LoadUint32(u.reg(offset))
}

func (u *PL011) write(offset uintptr, v uint32) {
	atomic.StoreUint32(u.reg(offset), v)
}

// Init programs 8N1 with FIFOs for a 24 MHz reference clock at 115200 baud,
// the configuration QEMU's virt machine and the Pi firmware expect.
func (u *PL011) Init() {
	u.write(UART_CR, 0)      // disable while configuring
	u.write(UART_ICR, 0x7FF) // clear pending interrupts
	u.write(UART_IBRD, 13)   // 24000000 / (16 * 115200) = 13.02
	u.write(UART_FBRD, 1)    // round(0.02 * 64)
	u.write(UART_LCRH, lineControl8N1)
	u.write(UART_CR, controlTXRX)
}

// WriteByte spins until the transmit FIFO has room, then sends c.
//
//go:nosplit
func (u *PL011) WriteByte(c byte) error {
	for u.read(UART_FR)&FR_TXFF != 0 {
	}
	u.write(UART_DR, uint32(c))
	return nil
}

// Write sends p, expanding "\n" to "\r\n" for terminals.
func (u *PL011) Write(p []byte) (int, error) {
	for _, c := range p {
		if c == '\n' {
			u.WriteByte('\r')
		}
		u.WriteByte(c)
	}
	return len(p), nil
}

// ReadByte blocks until a byte arrives.
func (u *PL011) ReadByte() (byte, error) {
	for u.read(UART_FR)&FR_RXFE != 0 {
	}
	return byte(u.read(UART_DR)), nil
}

// WriteLine sends line followed by a newline. Color is ignored: the UART
// carries plain text.
func (u *PL011) WriteLine(_ uint32, line string) {
	for i := 0; i < len(line); i++ {
		if line[i] == '\n' {
			u.WriteByte('\r')
		}
		u.WriteByte(line[i])
	}
	u.WriteByte('\r')
	u.WriteByte('\n')
}
