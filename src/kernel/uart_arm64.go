//go:build arm64

package kernel

import (
	"unsafe"

	"github.com/Haranmes/Ramen-os/src/klog"
	"github.com/Haranmes/Ramen-os/src/serial"
)

// platformSerial brings up the PL011 on QEMU's virt machine. The loader
// identity maps the device region.
func platformSerial() klog.Sink {
	uart := serial.NewPL011(unsafe.Pointer(serial.QEMU_VIRT_UART_BASE))
	uart.Init()
	return uart
}
