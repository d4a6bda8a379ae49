//go:build !arm64

package kernel

import "github.com/Haranmes/Ramen-os/src/klog"

// platformSerial returns nil where no UART driver exists; the console is
// the only sink.
func platformSerial() klog.Sink { return nil }
