//go:build !ios && !android && (amd64 || arm64)

// Package ampgo provides CGO-free Go bindings to the Amplitude Audio SDK
// C API using purego.
//
// Call Init before any other function; it loads the Amplitude shared library
// and boots the engine's C binding layer. Call Shutdown during an orderly
// teardown once no Amplitude objects are in use.
//
// Objects that cross the boundary in the Go->C direction (custom filesystems,
// codecs, pool tasks, event callback state) are kept alive in a process-wide
// handle table and referenced from C by opaque handles; see the Close/Destroy
// methods on those types for when the table releases them.
package ampgo

import (
	"sync/atomic"

	"github.com/obinnaokechukwu/ampgo/internal/bindings"
	"github.com/obinnaokechukwu/ampgo/internal/handles"
)

var initialized atomic.Bool

// Init loads the Amplitude library and boots the C binding layer.
// It is safe to call multiple times.
func Init() error {
	if err := bindings.Load(); err != nil {
		return err
	}
	if !initialized.CompareAndSwap(false, true) {
		return nil
	}
	bindings.Boot()
	return nil
}

// Shutdown tears down the C binding layer and drops every bridged Go object.
// The caller must guarantee no Amplitude calls are in flight. Safe to call
// multiple times; only the first call after Init does anything.
func Shutdown() {
	if !initialized.CompareAndSwap(true, false) {
		return
	}
	bindings.Shutdown()
	handles.Default().Clear()
}

// IsInitialized reports whether the engine binding layer is booted, on both
// the Go and C sides.
func IsInitialized() bool {
	if !initialized.Load() || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.IsInitialized())
}

// IsLoaded returns true if the Amplitude library has been successfully loaded.
func IsLoaded() bool {
	return bindings.IsLoaded()
}

// BridgedObjectCount returns the number of Go objects currently held for the
// C side. Useful for leak diagnostics in tests.
func BridgedObjectCount() int {
	return handles.Default().Len()
}

// LibraryPath returns the path of the Amplitude library that would be used,
// for diagnostics.
func LibraryPath() (string, error) {
	path, err := bindings.FindLibrary("Amplitude")
	if err != nil {
		return bindings.FindLibrary("amplitude_c")
	}
	return path, nil
}
