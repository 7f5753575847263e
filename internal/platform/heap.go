package platform

import (
	"math"
	"runtime"
)

// FreeHeap reports heap bytes reserved by the runtime but not in use.
func (c *Chip) FreeHeap() uint32 {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	if ms.HeapSys <= ms.HeapInuse {
		return 0
	}
	free := ms.HeapSys - ms.HeapInuse
	if free > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(free)
}
