//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"errors"

	"github.com/obinnaokechukwu/ampgo/internal/bindings"
	"github.com/obinnaokechukwu/ampgo/internal/handles"
)

// Common errors
var (
	// ErrNotLoaded indicates the Amplitude library is not loaded.
	ErrNotLoaded = errors.New("ampgo: Amplitude library not loaded")

	// ErrNotInitialized indicates Init has not been called.
	ErrNotInitialized = errors.New("ampgo: engine not initialized")

	// ErrClosed indicates the resource has been closed or destroyed.
	ErrClosed = errors.New("ampgo: resource is closed")

	// ErrInvalidHandle indicates a nil or stale native handle.
	ErrInvalidHandle = errors.New("ampgo: invalid handle")

	// ErrUnsupportedPlatform indicates the operation needs struct-by-value
	// FFI support, which purego only provides on darwin amd64/arm64.
	ErrUnsupportedPlatform = errors.New("ampgo: operation not supported on this platform")

	// ErrCodecNotFound indicates no codec is registered under the given name.
	ErrCodecNotFound = errors.New("ampgo: codec not found")
)

// Registration errors re-exported from the handle table.
var (
	// ErrNilObject is returned when a nil object is registered for bridging.
	ErrNilObject = handles.ErrNilObject

	// ErrTypeConflict is returned when the same object is bridged under two
	// different types.
	ErrTypeConflict = handles.ErrTypeConflict
)

// ErrLibraryNotFound is returned when the Amplitude library cannot be found
// on the search paths.
var ErrLibraryNotFound = bindings.ErrLibraryNotFound
