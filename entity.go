//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"github.com/obinnaokechukwu/ampgo/internal/bindings"
)

// Entity is a game object emitting sound in the world. The zero Entity is
// invalid.
type Entity struct {
	ptr uintptr
}

// EntityFromRaw wraps a raw am_entity_handle obtained from engine-side code.
func EntityFromRaw(raw uintptr) Entity {
	return Entity{ptr: raw}
}

// Raw returns the underlying am_entity_handle.
func (e Entity) Raw() uintptr {
	return e.ptr
}

// Valid reports whether the entity references a live engine object.
func (e Entity) Valid() bool {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.EntityIsValid(e.ptr))
}

// ID returns the entity identifier.
func (e Entity) ID() uint64 {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EntityGetID(e.ptr)
}

// SetObstruction sets how much the entity's direct sound path is blocked,
// in [0, 1].
func (e Entity) SetObstruction(obstruction float32) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.EntitySetObstruction(e.ptr, obstruction)
}

// Obstruction returns the current obstruction amount.
func (e Entity) Obstruction() float32 {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EntityGetObstruction(e.ptr)
}

// SetOcclusion sets how much the entity is occluded, in [0, 1].
func (e Entity) SetOcclusion(occlusion float32) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.EntitySetOcclusion(e.ptr, occlusion)
}

// Occlusion returns the current occlusion amount.
func (e Entity) Occlusion() float32 {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EntityGetOcclusion(e.ptr)
}

// SetDirectivity sets the directivity and sharpness of the entity's sound
// emission shape.
func (e Entity) SetDirectivity(directivity, sharpness float32) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.EntitySetDirectivity(e.ptr, directivity, sharpness)
}

// Directivity returns the directivity of the entity's sound emission shape.
func (e Entity) Directivity() float32 {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EntityGetDirectivity(e.ptr)
}

// DirectivitySharpness returns the sharpness of the entity's sound emission
// shape.
func (e Entity) DirectivitySharpness() float32 {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EntityGetDirectivitySharp(e.ptr)
}

// SetEnvironmentFactor sets the factor applied to this entity inside the
// given environment.
func (e Entity) SetEnvironmentFactor(environment uint64, factor float32) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.EntitySetEnvironmentFactor(e.ptr, environment, factor)
}

// EnvironmentFactor returns the factor applied to this entity inside the
// given environment.
func (e Entity) EnvironmentFactor(environment uint64) float32 {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EntityGetEnvironmentFactor(e.ptr, environment)
}

// ActiveChannelCount returns how many channels are currently playing on the
// entity.
func (e Entity) ActiveChannelCount() uint64 {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.EntityGetActiveChannelCount(e.ptr)
}

// Velocity returns the entity velocity, derived by the engine from location
// updates.
func (e Entity) Velocity() (Vec3, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.EntityGetVelocity == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.EntityGetVelocity(e.ptr), nil
}

// Location returns the entity location.
func (e Entity) Location() (Vec3, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.EntityGetLocation == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.EntityGetLocation(e.ptr), nil
}

// SetLocation sets the entity location.
func (e Entity) SetLocation(location Vec3) error {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.EntitySetLocation == nil {
		return ErrUnsupportedPlatform
	}
	bindings.EntitySetLocation(e.ptr, location)
	return nil
}

// Orientation returns the entity orientation.
func (e Entity) Orientation() (Quaternion, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return Quaternion{}, ErrNotLoaded
	}
	if bindings.EntityGetOrientation == nil {
		return Quaternion{}, ErrUnsupportedPlatform
	}
	return bindings.EntityGetOrientation(e.ptr), nil
}

// SetOrientation sets the entity orientation.
func (e Entity) SetOrientation(orientation Quaternion) error {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.EntitySetOrientation == nil {
		return ErrUnsupportedPlatform
	}
	bindings.EntitySetOrientation(e.ptr, orientation)
	return nil
}

// Direction returns the forward vector of the entity.
func (e Entity) Direction() (Vec3, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.EntityGetDirection == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.EntityGetDirection(e.ptr), nil
}

// Up returns the up vector of the entity.
func (e Entity) Up() (Vec3, error) {
	if e.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.EntityGetUp == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.EntityGetUp(e.ptr), nil
}
