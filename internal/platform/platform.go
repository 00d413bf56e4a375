//go:build !ios && !android && (amd64 || arm64)

// Package platform answers what the current OS/arch can do for ampgo and how
// shared libraries are named on it.
package platform

import (
	"runtime"
	"unsafe"
)

// SupportsStructByValue indicates whether purego can pass and return small
// structs by value on this platform. Several Amplitude C API functions return
// am_vec3/am_quaternion by value; those bindings require Darwin amd64/arm64.
const SupportsStructByValue = runtime.GOOS == "darwin" &&
	(runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64")

// Is64Bit indicates whether the platform is 64-bit. ampgo only supports
// 64-bit platforms due to purego limitations.
const Is64Bit = unsafe.Sizeof(uintptr(0)) == 8

// LibraryExtension is the shared library file extension on this platform.
var LibraryExtension string

// LibraryPrefix is the shared library name prefix on this platform.
var LibraryPrefix string

func init() {
	switch runtime.GOOS {
	case "darwin":
		LibraryExtension = ".dylib"
		LibraryPrefix = "lib"
	case "windows":
		LibraryExtension = ".dll"
		LibraryPrefix = ""
	default: // linux, freebsd, etc.
		LibraryExtension = ".so"
		LibraryPrefix = "lib"
	}
}

// FormatLibraryName returns the platform-specific filename for a library.
// The Amplitude SDK ships a single unversioned library on every platform.
//
// Examples:
//   - Linux:   FormatLibraryName("Amplitude") -> "libAmplitude.so"
//   - macOS:   FormatLibraryName("Amplitude") -> "libAmplitude.dylib"
//   - Windows: FormatLibraryName("Amplitude") -> "Amplitude.dll"
func FormatLibraryName(name string) string {
	return LibraryPrefix + name + LibraryExtension
}

// GOOS returns the current operating system.
func GOOS() string {
	return runtime.GOOS
}

// GOARCH returns the current architecture.
func GOARCH() string {
	return runtime.GOARCH
}
