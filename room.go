//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"github.com/obinnaokechukwu/ampgo/internal/bindings"
)

// Room is an acoustic room applying reflections and reverberation to the
// sounds playing inside it. The zero Room is invalid.
type Room struct {
	ptr uintptr
}

// RoomFromRaw wraps a raw am_room_handle obtained from engine-side code.
func RoomFromRaw(raw uintptr) Room {
	return Room{ptr: raw}
}

// Raw returns the underlying am_room_handle.
func (r Room) Raw() uintptr {
	return r.ptr
}

// Valid reports whether the room references a live engine object.
func (r Room) Valid() bool {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.RoomIsValid(r.ptr))
}

// ID returns the room identifier.
func (r Room) ID() uint64 {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.RoomGetID(r.ptr)
}

// SetGain sets the room gain.
func (r Room) SetGain(gain float32) {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.RoomSetGain(r.ptr, gain)
}

// Gain returns the room gain.
func (r Room) Gain() float32 {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.RoomGetGain(r.ptr)
}

// Volume returns the volume of the room shape, in cubic meters.
func (r Room) Volume() float32 {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.RoomGetVolume(r.ptr)
}

// SurfaceArea returns the surface area of the given wall, in square meters.
func (r Room) SurfaceArea(wall RoomWall) float32 {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.RoomGetSurfaceArea(r.ptr, int32(wall))
}

// SetShape sets the room shape from a raw am_box_shape_handle.
func (r Room) SetShape(shape uintptr) {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.RoomSetShape(r.ptr, shape)
}

// Shape returns the raw am_box_shape_handle of the room shape.
func (r Room) Shape() uintptr {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.RoomGetShape(r.ptr)
}

// SetWallMaterial sets the acoustic material of one wall.
func (r Room) SetWallMaterial(wall RoomWall, material WallMaterial) error {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.RoomSetWallMaterial == nil {
		return ErrUnsupportedPlatform
	}
	bindings.RoomSetWallMaterial(r.ptr, int32(wall), wireWallMaterial(material))
	return nil
}

// SetWallMaterials sets the acoustic material of each of the six walls in
// one call.
func (r Room) SetWallMaterials(left, right, floor, ceiling, front, back WallMaterial) error {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.RoomSetWallMaterials == nil {
		return ErrUnsupportedPlatform
	}
	bindings.RoomSetWallMaterials(r.ptr,
		wireWallMaterial(left), wireWallMaterial(right),
		wireWallMaterial(floor), wireWallMaterial(ceiling),
		wireWallMaterial(front), wireWallMaterial(back))
	return nil
}

// SetAllWallMaterials sets the acoustic material of every wall at once.
func (r Room) SetAllWallMaterials(material WallMaterial) error {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.RoomSetAllWallMaterials == nil {
		return ErrUnsupportedPlatform
	}
	bindings.RoomSetAllWallMaterials(r.ptr, wireWallMaterial(material))
	return nil
}

// WallMaterialOf returns the acoustic material of one wall.
func (r Room) WallMaterialOf(wall RoomWall) (WallMaterial, error) {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return WallMaterial{}, ErrNotLoaded
	}
	if bindings.RoomGetWallMaterial == nil {
		return WallMaterial{}, ErrUnsupportedPlatform
	}
	return goWallMaterial(bindings.RoomGetWallMaterial(r.ptr, int32(wall))), nil
}

// Location returns the room location.
func (r Room) Location() (Vec3, error) {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.RoomGetLocation == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.RoomGetLocation(r.ptr), nil
}

// SetLocation sets the room location.
func (r Room) SetLocation(location Vec3) error {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.RoomSetLocation == nil {
		return ErrUnsupportedPlatform
	}
	bindings.RoomSetLocation(r.ptr, location)
	return nil
}

// Orientation returns the room orientation.
func (r Room) Orientation() (Quaternion, error) {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return Quaternion{}, ErrNotLoaded
	}
	if bindings.RoomGetOrientation == nil {
		return Quaternion{}, ErrUnsupportedPlatform
	}
	return bindings.RoomGetOrientation(r.ptr), nil
}

// SetOrientation sets the room orientation.
func (r Room) SetOrientation(orientation Quaternion) error {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.RoomSetOrientation == nil {
		return ErrUnsupportedPlatform
	}
	bindings.RoomSetOrientation(r.ptr, orientation)
	return nil
}

// Direction returns the forward vector of the room.
func (r Room) Direction() (Vec3, error) {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.RoomGetDirection == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.RoomGetDirection(r.ptr), nil
}

// Up returns the up vector of the room.
func (r Room) Up() (Vec3, error) {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.RoomGetUp == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.RoomGetUp(r.ptr), nil
}

// Dimensions returns the dimensions of the room shape.
func (r Room) Dimensions() (Vec3, error) {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return Vec3{}, ErrNotLoaded
	}
	if bindings.RoomGetDimensions == nil {
		return Vec3{}, ErrUnsupportedPlatform
	}
	return bindings.RoomGetDimensions(r.ptr), nil
}

// SetDimensions sets the dimensions of the room shape.
func (r Room) SetDimensions(dimensions Vec3) error {
	if r.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if bindings.RoomSetDimensions == nil {
		return ErrUnsupportedPlatform
	}
	bindings.RoomSetDimensions(r.ptr, dimensions)
	return nil
}

// NewWallMaterial returns a wall material with the engine's default
// absorption coefficients.
func NewWallMaterial() (WallMaterial, error) {
	if !bindings.IsLoaded() {
		return WallMaterial{}, ErrNotLoaded
	}
	if bindings.RoomWallMaterialCreate == nil {
		return WallMaterial{}, ErrUnsupportedPlatform
	}
	return goWallMaterial(bindings.RoomWallMaterialCreate()), nil
}

// NewWallMaterialOfType returns a predefined wall material.
func NewWallMaterialOfType(kind WallMaterialType) (WallMaterial, error) {
	if !bindings.IsLoaded() {
		return WallMaterial{}, ErrNotLoaded
	}
	if bindings.RoomWallMaterialCreateWithType == nil {
		return WallMaterial{}, ErrUnsupportedPlatform
	}
	return goWallMaterial(bindings.RoomWallMaterialCreateWithType(int32(kind))), nil
}

func wireWallMaterial(m WallMaterial) bindings.RoomWallMaterial {
	return bindings.RoomWallMaterial{
		Type:                   int32(m.Type),
		AbsorptionCoefficients: m.Absorption,
	}
}

func goWallMaterial(m bindings.RoomWallMaterial) WallMaterial {
	return WallMaterial{
		Type:       WallMaterialType(m.Type),
		Absorption: m.AbsorptionCoefficients,
	}
}
