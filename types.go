//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"github.com/obinnaokechukwu/ampgo/amath"
)

// Re-export the geometric value types for convenience.
type (
	// Vec2 is a two-component float vector.
	Vec2 = amath.Vec2

	// Vec3 is a three-component float vector.
	Vec3 = amath.Vec3

	// Vec4 is a four-component float vector.
	Vec4 = amath.Vec4

	// Quaternion is a rotation in WXYZ order.
	Quaternion = amath.Quaternion

	// Mat4 is a column-major 4x4 float matrix.
	Mat4 = amath.Mat4
)

// PlaybackState describes what a channel is currently doing.
type PlaybackState int32

// Playback states matching am_channel_playback_state.
const (
	PlaybackStateStopped        PlaybackState = 0
	PlaybackStatePlaying        PlaybackState = 1
	PlaybackStateFadingIn       PlaybackState = 2
	PlaybackStateFadingOut      PlaybackState = 3
	PlaybackStateSwitchingState PlaybackState = 4
	PlaybackStatePaused         PlaybackState = 5
)

// String returns the string representation of the playback state.
func (s PlaybackState) String() string {
	switch s {
	case PlaybackStateStopped:
		return "stopped"
	case PlaybackStatePlaying:
		return "playing"
	case PlaybackStateFadingIn:
		return "fading_in"
	case PlaybackStateFadingOut:
		return "fading_out"
	case PlaybackStateSwitchingState:
		return "switching_state"
	case PlaybackStatePaused:
		return "paused"
	default:
		return "unknown"
	}
}

// ChannelEvent identifies a channel lifecycle event.
type ChannelEvent uint8

// Channel events matching am_channel_event.
const (
	ChannelEventBegin  ChannelEvent = 0
	ChannelEventEnd    ChannelEvent = 1
	ChannelEventResume ChannelEvent = 2
	ChannelEventPause  ChannelEvent = 3
	ChannelEventStop   ChannelEvent = 4
	ChannelEventLoop   ChannelEvent = 5
)

// String returns the string representation of the channel event.
func (e ChannelEvent) String() string {
	switch e {
	case ChannelEventBegin:
		return "begin"
	case ChannelEventEnd:
		return "end"
	case ChannelEventResume:
		return "resume"
	case ChannelEventPause:
		return "pause"
	case ChannelEventStop:
		return "stop"
	case ChannelEventLoop:
		return "loop"
	default:
		return "unknown"
	}
}

// FileType identifies a file implementation kind.
type FileType uint8

// File types matching am_file_type.
const (
	FileTypeUnknown     FileType = 0
	FileTypeCustom      FileType = 1
	FileTypeDisk        FileType = 2
	FileTypeMemory      FileType = 3
	FileTypePackageItem FileType = 4
)

// FilesystemType identifies a filesystem implementation kind.
type FilesystemType uint8

// Filesystem types matching am_filesystem_type.
const (
	FilesystemTypeUnknown FilesystemType = 0
	FilesystemTypeCustom  FilesystemType = 1
	FilesystemTypeDisk    FilesystemType = 2
	FilesystemTypePackage FilesystemType = 3
)

// FileOpenMode selects how a file is opened.
type FileOpenMode uint8

// Open modes matching am_file_open_mode.
const (
	FileOpenModeRead       FileOpenMode = 0
	FileOpenModeWrite      FileOpenMode = 1
	FileOpenModeAppend     FileOpenMode = 2
	FileOpenModeReadWrite  FileOpenMode = 3
	FileOpenModeReadAppend FileOpenMode = 4
)

// FileSeekOrigin selects the reference point for a seek.
type FileSeekOrigin uint8

// Seek origins matching am_file_seek_origin.
const (
	FileSeekOriginStart   FileSeekOrigin = 0
	FileSeekOriginCurrent FileSeekOrigin = 1
	FileSeekOriginEnd     FileSeekOrigin = 2
)

// SampleFormat identifies the sample representation of decoded audio.
type SampleFormat int32

// Sample formats matching am_audio_sample_format.
const (
	SampleFormatFloat32 SampleFormat = 0
	SampleFormatInt16   SampleFormat = 1
	SampleFormatUnknown SampleFormat = 2
)

// SoundFormat describes the shape of a decoded or encoded audio stream.
// The layout matches am_sound_format so it can cross the boundary by pointer.
type SoundFormat struct {
	SampleRate    uint32
	NumChannels   uint16
	_             [2]byte
	BitsPerSample uint32
	FramesCount   uint64
	FrameSize     uint32
	SampleType    SampleFormat
}

// RoomWall identifies one wall of a room.
type RoomWall int32

// Room walls matching am_room_wall.
const (
	RoomWallLeft    RoomWall = 0
	RoomWallRight   RoomWall = 1
	RoomWallFloor   RoomWall = 2
	RoomWallCeiling RoomWall = 3
	RoomWallFront   RoomWall = 4
	RoomWallBack    RoomWall = 5
	RoomWallInvalid RoomWall = 6
)

// WallMaterialType identifies a predefined acoustic wall material.
type WallMaterialType int32

// Wall material types matching am_room_wall_material_type.
const (
	WallMaterialTransparent       WallMaterialType = 0
	WallMaterialAcousticTile      WallMaterialType = 1
	WallMaterialCarpetOnConcrete  WallMaterialType = 2
	WallMaterialHeavyDrapes       WallMaterialType = 3
	WallMaterialGypsumBoard       WallMaterialType = 4
	WallMaterialConcreteUnpainted WallMaterialType = 5
	WallMaterialWood              WallMaterialType = 6
	WallMaterialBrickPainted      WallMaterialType = 7
	WallMaterialFoamPanel         WallMaterialType = 8
	WallMaterialGlass             WallMaterialType = 9
	WallMaterialPlasterSmooth     WallMaterialType = 10
	WallMaterialMetal             WallMaterialType = 11
	WallMaterialMarble            WallMaterialType = 12
	WallMaterialWaterSurface      WallMaterialType = 13
	WallMaterialIceSurface        WallMaterialType = 14
	WallMaterialCustom            WallMaterialType = 15
)

// WallMaterial is an acoustic material applied to room walls, with one
// absorption coefficient per frequency band.
type WallMaterial struct {
	Type       WallMaterialType
	Absorption [9]float32
}
