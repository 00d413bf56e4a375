// Package amath defines the geometric value types exchanged with the
// Amplitude C API: vectors, quaternions and matrices.
//
// The layouts match the am_vec2/am_vec3/am_vec4/am_quaternion/am_mat4 C
// structs exactly, so values can cross the FFI boundary by value where the
// platform allows it.
package amath

// Vec2 is a two-component float vector (am_vec2).
type Vec2 struct {
	X, Y float32
}

// Vec3 is a three-component float vector (am_vec3).
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a four-component float vector (am_vec4).
type Vec4 struct {
	X, Y, Z, W float32
}

// Quaternion is a rotation in WXYZ order (am_quaternion).
type Quaternion struct {
	W, X, Y, Z float32
}

// IdentityQuaternion returns the no-rotation quaternion.
func IdentityQuaternion() Quaternion {
	return Quaternion{W: 1}
}

// Mat4 is a column-major 4x4 float matrix (am_mat4).
type Mat4 struct {
	Data [16]float32
}

// Identity returns the identity matrix.
func Identity() Mat4 {
	var m Mat4
	m.Data[0] = 1
	m.Data[5] = 1
	m.Data[10] = 1
	m.Data[15] = 1
	return m
}
