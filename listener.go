//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"github.com/obinnaokechukwu/ampgo/internal/bindings"
)

// Listener is one point of audition in the world. The zero Listener is
// invalid.
type Listener struct {
	ptr uintptr
}

// ListenerFromRaw wraps a raw am_listener_handle obtained from engine-side
// code.
func ListenerFromRaw(raw uintptr) Listener {
	return Listener{ptr: raw}
}

// Raw returns the underlying am_listener_handle.
func (l Listener) Raw() uintptr {
	return l.ptr
}

// Valid reports whether the listener references a live engine object.
func (l Listener) Valid() bool {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.ListenerIsValid(l.ptr))
}

// ID returns the listener identifier.
func (l Listener) ID() uint64 {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.ListenerGetID(l.ptr)
}

// SetDirectivity sets the directivity and sharpness of the listener's
// hearing shape.
func (l Listener) SetDirectivity(directivity, sharpness float32) {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ListenerSetDirectivity(l.ptr, directivity, sharpness)
}

// Directivity returns the directivity of the listener's hearing shape.
func (l Listener) Directivity() float32 {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.ListenerGetDirectivity(l.ptr)
}

// DirectivitySharpness returns the sharpness of the listener's hearing
// shape.
func (l Listener) DirectivitySharpness() float32 {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.ListenerGetDirectivitySharp(l.ptr)
}

// Velocity returns the listener velocity, derived by the engine from
// location updates.
func (l Listener) Velocity() (Vec3, error) {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.ListenerGetVelocity == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.ListenerGetVelocity(l.ptr), nil
}

// Location returns the listener location.
func (l Listener) Location() (Vec3, error) {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.ListenerGetLocation == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.ListenerGetLocation(l.ptr), nil
}

// SetLocation sets the listener location.
func (l Listener) SetLocation(location Vec3) error {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.ListenerSetLocation == nil {
		return ErrUnsupportedPlatform
	}
	bindings.ListenerSetLocation(l.ptr, location)
	return nil
}

// Orientation returns the listener orientation.
func (l Listener) Orientation() (Quaternion, error) {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return Quaternion{}, ErrNotLoaded
	}
	if bindings.ListenerGetOrientation == nil {
		return Quaternion{}, ErrUnsupportedPlatform
	}
	return bindings.ListenerGetOrientation(l.ptr), nil
}

// SetOrientation sets the listener orientation.
func (l Listener) SetOrientation(orientation Quaternion) error {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.ListenerSetOrientation == nil {
		return ErrUnsupportedPlatform
	}
	bindings.ListenerSetOrientation(l.ptr, orientation)
	return nil
}

// Direction returns the forward vector of the listener.
func (l Listener) Direction() (Vec3, error) {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.ListenerGetDirection == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.ListenerGetDirection(l.ptr), nil
}

// Up returns the up vector of the listener.
func (l Listener) Up() (Vec3, error) {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.ListenerGetUp == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.ListenerGetUp(l.ptr), nil
}

// InverseMatrix returns the inverse transform matrix of the listener.
func (l Listener) InverseMatrix() (Mat4, error) {
	if l.ptr == 0 || !bindings.IsLoaded() {
		return Mat4{}, ErrNotLoaded
	}
	if bindings.ListenerGetInverseMatrix == nil {
		return Mat4{}, ErrUnsupportedPlatform
	}
	return bindings.ListenerGetInverseMatrix(l.ptr), nil
}
