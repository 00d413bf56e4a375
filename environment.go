//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"github.com/obinnaokechukwu/ampgo/internal/bindings"
)

// Environment is a spatial region applying an effect to the sounds playing
// inside it. The zero Environment is invalid.
type Environment struct {
	ptr uintptr
}

// EnvironmentFromRaw wraps a raw am_environment_handle obtained from
// engine-side code.
func EnvironmentFromRaw(raw uintptr) Environment {
	return Environment{ptr: raw}
}

// Raw returns the underlying am_environment_handle.
func (e Environment) Raw() uintptr {
	return e.ptr
}

// Valid reports whether the environment references a live engine object.
func (e Environment) Valid() bool {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.EnvironmentIsValid(e.ptr))
}

// ID returns the environment identifier.
func (e Environment) ID() uint64 {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EnvironmentGetID(e.ptr)
}

// SetZone sets the zone shape of the environment from a raw am_zone_handle.
func (e Environment) SetZone(zone uintptr) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.EnvironmentSetZone(e.ptr, zone)
}

// Zone returns the raw am_zone_handle of the environment's zone.
func (e Environment) Zone() uintptr {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EnvironmentGetZone(e.ptr)
}

// SetEffect sets the environment effect from a raw am_effect_handle.
func (e Environment) SetEffect(effect uintptr) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.EnvironmentSetEffect(e.ptr, effect)
}

// SetEffectByID sets the environment effect by asset identifier.
func (e Environment) SetEffectByID(effect uint64) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.EnvironmentSetEffectByID(e.ptr, effect)
}

// SetEffectByName sets the environment effect by asset name.
func (e Environment) SetEffectByName(name string) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.EnvironmentSetEffectByName(e.ptr, name)
}

// Effect returns the raw am_effect_handle of the environment's effect.
func (e Environment) Effect() uintptr {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EnvironmentGetEffect(e.ptr)
}

// FactorForEntity returns the environment factor computed for the given
// entity.
func (e Environment) FactorForEntity(entity Entity) float32 {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EnvironmentGetFactorForEntity(e.ptr, entity.ptr)
}

// FactorForLocation returns the environment factor computed for a world
// location.
func (e Environment) FactorForLocation(location Vec3) (float32, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0, ErrNotLoaded
	}
	if bindings.EnvironmentGetFactorForLocation == nil {
		return 0, ErrUnsupportedPlatform
	}
	return bindings.EnvironmentGetFactorForLocation(e.ptr, location), nil
}

// Location returns the environment location.
func (e Environment) Location() (Vec3, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.EnvironmentGetLocation == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.EnvironmentGetLocation(e.ptr), nil
}

// SetLocation sets the environment location.
func (e Environment) SetLocation(location Vec3) error {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.EnvironmentSetLocation == nil {
		return ErrUnsupportedPlatform
	}
	bindings.EnvironmentSetLocation(e.ptr, location)
	return nil
}

// Orientation returns the environment orientation.
func (e Environment) Orientation() (Quaternion, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return Quaternion{}, ErrNotLoaded
	}
	if bindings.EnvironmentGetOrientation == nil {
		return Quaternion{}, ErrUnsupportedPlatform
	}
	return bindings.EnvironmentGetOrientation(e.ptr), nil
}

// SetOrientation sets the environment orientation.
func (e Environment) SetOrientation(orientation Quaternion) error {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.EnvironmentSetOrientation == nil {
		return ErrUnsupportedPlatform
	}
	bindings.EnvironmentSetOrientation(e.ptr, orientation)
	return nil
}

// Direction returns the forward vector of the environment.
func (e Environment) Direction() (Vec3, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.EnvironmentGetDirection == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.EnvironmentGetDirection(e.ptr), nil
}

// Up returns the up vector of the environment.
func (e Environment) Up() (Vec3, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.EnvironmentGetUp == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.EnvironmentGetUp(e.ptr), nil
}
