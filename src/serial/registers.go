package serial

import "github.com/Haranmes/Ramen-os/src/bitfield"

// LineControl is the UARTLCR_H register.
type LineControl struct {
	SendBreak   bool  `bitfield:",1"`
	Parity      bool  `bitfield:",1"`
	EvenParity  bool  `bitfield:",1"`
	TwoStopBits bool  `bitfield:",1"`
	FIFOEnable  bool  `bitfield:",1"`
	WordLength  uint8 `bitfield:",2"` // 0b11 is 8 bits
	StickParity bool  `bitfield:",1"`
}

// Control is the UARTCR register.
type Control struct {
	Enable      bool    `bitfield:",1"`
	SIREnable   bool    `bitfield:",1"`
	SIRLowPower bool    `bitfield:",1"`
	_           [0]byte `bitfield:",4"`
	Loopback    bool    `bitfield:",1"`
	TXEnable    bool    `bitfield:",1"`
	RXEnable    bool    `bitfield:",1"`
	RTS         bool    `bitfield:",1"`
	_           [0]byte `bitfield:",1"`
	RTSEnable   bool    `bitfield:",1"`
	CTSEnable   bool    `bitfield:",1"`
}

// Flags is the UARTFR register.
type Flags struct {
	CTS          bool `bitfield:",1"`
	DSR          bool `bitfield:",1"`
	DCD          bool `bitfield:",1"`
	Busy         bool `bitfield:",1"`
	RXFIFOEmpty  bool `bitfield:",1"`
	TXFIFOFull   bool `bitfield:",1"`
	RXFIFOFull   bool `bitfield:",1"`
	TXFIFOEmpty  bool `bitfield:",1"`
	RingIndicate bool `bitfield:",1"`
}

// Register values programmed by Init.
var (
	lineControl8N1 = uint32(bitfield.MustPack(LineControl{FIFOEnable: true, WordLength: 0b11}, 8))
	controlTXRX    = uint32(bitfield.MustPack(Control{Enable: true, TXEnable: true, RXEnable: true}, 16))
)

// Flags decodes the flag register.
func (u *PL011) Flags() Flags {
	var f Flags
	bitfield.Unpack(uint64(u.read(UART_FR)), &f)
	return f
}
