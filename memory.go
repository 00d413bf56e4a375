//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"github.com/obinnaokechukwu/ampgo/internal/bindings"
)

// MemoryPoolKind identifies one of the engine memory pools.
type MemoryPoolKind int32

// Memory pools matching am_memory_pool_kind.
const (
	MemoryPoolAmplimix MemoryPoolKind = iota
	MemoryPoolSoundData
	MemoryPoolEngine
	MemoryPoolFiltering
	MemoryPoolCodec
	MemoryPoolIO
	MemoryPoolDefault
)

// MemoryManagerInitialized reports whether the engine memory manager is
// initialized. Boot initializes it with the default allocator.
func MemoryManagerInitialized() bool {
	if !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.MemoryManagerIsInitialized())
}

// TotalReservedMemory returns the total number of bytes currently reserved
// by the engine memory manager.
func TotalReservedMemory() uint64 {
	if !bindings.IsLoaded() {
		return 0
	}
	return uint64(bindings.MemoryManagerTotalReserved())
}

// MemoryPoolName returns the display name of a memory pool.
func MemoryPoolName(pool MemoryPoolKind) string {
	if !bindings.IsLoaded() {
		return ""
	}
	return takeString(bindings.MemoryManagerPoolName(int32(pool)))
}

// InspectMemoryLeaks returns the engine's memory leak report. The report
// is empty when nothing leaked.
func InspectMemoryLeaks() string {
	if !bindings.IsLoaded() {
		return ""
	}
	return takeString(bindings.MemoryManagerInspectLeaks())
}
