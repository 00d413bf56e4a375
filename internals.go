//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"unsafe"

	"github.com/obinnaokechukwu/ampgo/internal/bindings"
)

func toBool(v uint32) bool {
	return v != 0
}

func fromBool(b bool) uint32 {
	if b {
		return 1
	}
	return 0
}

// goString copies a NUL-terminated C string into a Go string.
func goString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	var buf []byte
	for i := uintptr(0); ; i++ {
		b := *(*byte)(unsafe.Pointer(ptr + i))
		if b == 0 {
			break
		}
		buf = append(buf, b)
	}
	return string(buf)
}

// cString returns a NUL-terminated byte buffer for handing a Go string to
// the native side. The caller must keep the buffer reachable for as long as
// the native side may read it.
func cString(s string) []byte {
	buf := make([]byte, len(s)+1)
	copy(buf, s)
	return buf
}

// takeString copies an engine-allocated string and releases the C allocation
// through am_memory_free_str.
func takeString(ptr uintptr) string {
	if ptr == 0 {
		return ""
	}
	s := goString(ptr)
	if bindings.MemoryFreeStr != nil {
		bindings.MemoryFreeStr(ptr)
	}
	return s
}
