package kernel

import (
	"github.com/Haranmes/Ramen-os/src/memmap"
)

func (k *Kernel) reportFramebuffer() {
	if k.fb == nil {
		return
	}
	k.log.Infof("framebuffer %dx%d pitch %d at %p", k.fb.Width, k.fb.Height, k.fb.Pitch, k.fb.Buf)
}

// MemoryMap converts the loader's memory map response.
func (k *Kernel) MemoryMap() []memmap.Entry {
	if k.m.Memmap == nil {
		return nil
	}
	raw := k.m.Memmap.Response.Entries()
	entries := make([]memmap.Entry, 0, len(raw))
	for _, e := range raw {
		entries = append(entries, memmap.Entry{Base: e.Base, Length: e.Length, Type: memmap.Type(e.Type)})
	}
	return entries
}

// reportMemoryMap logs one line per region with its classification in
// brackets, then a usable memory summary.
func (k *Kernel) reportMemoryMap() {
	entries := k.MemoryMap()
	if len(entries) == 0 {
		k.log.Warnf("no memory map from loader")
		return
	}

	k.log.Infof("memory map, %d entries:", len(entries))
	for _, e := range entries {
		k.log.Infof("%#016x-%#016x %10d KiB [%s]", e.Base, e.End(), e.Length/1024, memmap.Classify(e.Type))
	}

	s := memmap.Summarize(entries)
	k.log.Infof("usable memory: [%d MiB] of %d MiB in %d regions", s.Usable()>>20, s.Total()>>20, s.Regions)
}
