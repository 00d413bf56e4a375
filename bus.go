//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"github.com/obinnaokechukwu/ampgo/internal/bindings"
)

// Bus is a mixing bus of the running engine. The zero Bus is invalid.
//
// A Bus does not own the underlying engine object; it is a view over a
// native handle obtained from engine-side code, valid for as long as the
// engine keeps the bus alive.
type Bus struct {
	ptr uintptr
}

// BusFromRaw wraps a raw am_bus_handle obtained from engine-side code.
func BusFromRaw(raw uintptr) Bus {
	return Bus{ptr: raw}
}

// Raw returns the underlying am_bus_handle.
func (b Bus) Raw() uintptr {
	return b.ptr
}

// Valid reports whether the bus references a live engine object.
func (b Bus) Valid() bool {
	if b.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.BusIsValid(b.ptr))
}

// ID returns the bus identifier.
func (b Bus) ID() uint64 {
	if b.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.BusGetID(b.ptr)
}

// Name returns the bus name.
func (b Bus) Name() string {
	if b.ptr == 0 || !bindings.IsLoaded() {
		return ""
	}
	return takeString(bindings.BusGetName(b.ptr))
}

// Gain returns the user-set gain of the bus.
func (b Bus) Gain() float32 {
	if b.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.BusGetGain(b.ptr)
}

// SetGain sets the gain of the bus.
func (b Bus) SetGain(gain float32) {
	if b.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.BusSetGain(b.ptr, gain)
}

// FadeTo fades the bus gain to targetGain over duration, in milliseconds.
func (b Bus) FadeTo(targetGain float32, duration float64) {
	if b.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.BusFadeTo(b.ptr, targetGain, duration)
}

// FinalGain returns the gain after mixing, ducking and fades are applied.
func (b Bus) FinalGain() float32 {
	if b.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.BusGetFinalGain(b.ptr)
}

// SetMute mutes or unmutes the bus.
func (b Bus) SetMute(mute bool) {
	if b.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.BusSetMute(b.ptr, fromBool(mute))
}

// Muted reports whether the bus is muted.
func (b Bus) Muted() bool {
	if b.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.BusIsMuted(b.ptr))
}
