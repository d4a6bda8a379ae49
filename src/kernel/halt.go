package kernel

// cpuHalt parks the CPU. Interrupts are still disabled from the loader, so
// nothing wakes it.
//
//go:nosplit
func cpuHalt() {
	for {
	}
}
