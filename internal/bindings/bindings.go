//go:build !ios && !android && (amd64 || arm64)

// Package bindings loads the Amplitude Audio SDK C library and registers
// every am_* function binding used by ampgo through purego.
//
// Handles are carried as uintptr. Functions whose C signature passes or
// returns a struct by value (vectors, quaternions, am_file_handle,
// am_filesystem_handle) are only registered on platforms where purego
// supports struct passage; elsewhere their function variables stay nil and
// the wrapper layer reports the operation as unsupported.
//
// Strings cross the boundary as Go strings: purego copies them with a
// terminating NUL. Amplitude's am_oschar is a plain char on every platform
// ampgo supports; Windows wide-string paths are not supported.
package bindings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/ampgo/amath"
	"github.com/obinnaokechukwu/ampgo/internal/platform"
)

// ErrNotLoaded is returned when Amplitude functions are called before Load().
var ErrNotLoaded = errors.New("ampgo: Amplitude library not loaded; call ampgo.Init() first")

// ErrLibraryNotFound is returned when the Amplitude library cannot be found.
var ErrLibraryNotFound = errors.New("ampgo: Amplitude library not found")

var (
	libAmplitude uintptr

	loaded   bool
	loadOnce sync.Once
	loadErr  error

	extraSearchPaths []string
)

// SetSearchPaths adds library directories consulted right after the
// AMPLITUDE_LIBRARY_PATH environment variable. Call before Load.
func SetSearchPaths(paths []string) {
	extraSearchPaths = append([]string(nil), paths...)
}

// FileHandle mirrors am_file_handle: a tagged opaque file pointer.
type FileHandle struct {
	Type   uint8
	_      [7]byte
	Handle uintptr
}

// FilesystemHandle mirrors am_filesystem_handle.
type FilesystemHandle struct {
	Type   uint8
	_      [7]byte
	Handle uintptr
}

// FilesystemConfig mirrors am_filesystem_config.
type FilesystemConfig struct {
	Type     uint8
	_        [7]byte
	UserData uintptr
	VTable   uintptr
}

// FileConfig mirrors am_file_config.
type FileConfig struct {
	Type     uint8
	_        [7]byte
	UserData uintptr
	VTable   uintptr
}

// CodecConfig mirrors am_codec_config. Every field is pointer sized, so
// the nested decoder and encoder blocks flatten without padding.
type CodecConfig struct {
	Name            uintptr
	UserData        uintptr
	VTable          uintptr
	DecoderVTable   uintptr
	DecoderUserData uintptr
	EncoderVTable   uintptr
	EncoderUserData uintptr
}

// RoomWallMaterial mirrors am_room_wall_material.
type RoomWallMaterial struct {
	Type                   int32
	AbsorptionCoefficients [9]float32
}

// Function bindings, registered by Load. Grouped by the C header that
// declares them.
var (
	// amplitude_boot.h
	Boot          func()
	Shutdown      func()
	IsInitialized func() uint32

	// amplitude_bus.h
	BusIsValid      func(bus uintptr) uint32
	BusGetID        func(bus uintptr) uint64
	BusGetName      func(bus uintptr) uintptr
	BusSetGain      func(bus uintptr, gain float32)
	BusGetGain      func(bus uintptr) float32
	BusFadeTo       func(bus uintptr, gain float32, duration float64)
	BusGetFinalGain func(bus uintptr) float32
	BusSetMute      func(bus uintptr, mute uint32)
	BusIsMuted      func(bus uintptr) uint32

	// amplitude_channel.h
	ChannelIsValid          func(ch uintptr) uint32
	ChannelGetID            func(ch uintptr) uint64
	ChannelPlaying          func(ch uintptr) uint32
	ChannelStop             func(ch uintptr)
	ChannelStopTimeout      func(ch uintptr, duration float64)
	ChannelPause            func(ch uintptr)
	ChannelPauseTimeout     func(ch uintptr, duration float64)
	ChannelResume           func(ch uintptr)
	ChannelResumeTimeout    func(ch uintptr, duration float64)
	ChannelGetGain          func(ch uintptr) float32
	ChannelSetGain          func(ch uintptr, gain float32)
	ChannelGetPlaybackState func(ch uintptr) int32
	ChannelGetEntity        func(ch uintptr) uintptr
	ChannelGetListener      func(ch uintptr) uintptr
	ChannelGetRoom          func(ch uintptr) uintptr
	ChannelOnEvent          func(ch uintptr, event uint8, callback uintptr, userData uintptr)

	// amplitude_entity.h
	EntityIsValid               func(e uintptr) uint32
	EntityGetID                 func(e uintptr) uint64
	EntitySetObstruction        func(e uintptr, obstruction float32)
	EntityGetObstruction        func(e uintptr) float32
	EntitySetOcclusion          func(e uintptr, occlusion float32)
	EntityGetOcclusion          func(e uintptr) float32
	EntitySetDirectivity        func(e uintptr, directivity, sharpness float32)
	EntityGetDirectivity        func(e uintptr) float32
	EntityGetDirectivitySharp   func(e uintptr) float32
	EntitySetEnvironmentFactor  func(e uintptr, env uint64, factor float32)
	EntityGetEnvironmentFactor  func(e uintptr, env uint64) float32
	EntityGetActiveChannelCount func(e uintptr) uint64

	// amplitude_listener.h
	ListenerIsValid             func(l uintptr) uint32
	ListenerGetID               func(l uintptr) uint64
	ListenerSetDirectivity      func(l uintptr, directivity, sharpness float32)
	ListenerGetDirectivity      func(l uintptr) float32
	ListenerGetDirectivitySharp func(l uintptr) float32

	// amplitude_environment.h
	EnvironmentIsValid            func(e uintptr) uint32
	EnvironmentGetID              func(e uintptr) uint64
	EnvironmentSetZone            func(e uintptr, zone uintptr)
	EnvironmentGetZone            func(e uintptr) uintptr
	EnvironmentSetEffect          func(e uintptr, effect uintptr)
	EnvironmentSetEffectByID      func(e uintptr, effect uint64)
	EnvironmentSetEffectByName    func(e uintptr, name string)
	EnvironmentGetEffect          func(e uintptr) uintptr
	EnvironmentGetFactorForEntity func(e uintptr, entity uintptr) float32

	// amplitude_room.h
	RoomIsValid        func(r uintptr) uint32
	RoomGetID          func(r uintptr) uint64
	RoomSetGain        func(r uintptr, gain float32)
	RoomGetGain        func(r uintptr) float32
	RoomGetVolume      func(r uintptr) float32
	RoomGetSurfaceArea func(r uintptr, direction int32) float32
	RoomSetShape       func(r uintptr, shape uintptr)
	RoomGetShape       func(r uintptr) uintptr

	// amplitude_codec.h
	CodecRegister               func(config unsafe.Pointer)
	CodecUnregister             func(name string)
	CodecFind                   func(name string) uintptr
	CodecGetName                func(codec uintptr) uintptr
	CodecDecoderCreate          func(codecName string) uintptr
	CodecDecoderCreateFromCodec func(codec uintptr) uintptr
	CodecDecoderDestroy         func(decoder uintptr)
	CodecDecoderClose           func(decoder uintptr) uint32
	CodecDecoderGetFormat       func(decoder uintptr, format unsafe.Pointer) uint32
	CodecDecoderLoad            func(decoder uintptr, out unsafe.Pointer) uint64
	CodecDecoderStream          func(decoder uintptr, out unsafe.Pointer, bufferOffset, seekOffset, length uint64) uint64
	CodecDecoderSeek            func(decoder uintptr, offset uint64) uint32
	CodecEncoderCreate          func(codecName string) uintptr
	CodecEncoderCreateFromCodec func(codec uintptr) uintptr
	CodecEncoderDestroy         func(encoder uintptr)
	CodecEncoderClose           func(encoder uintptr) uint32
	CodecEncoderSetFormat       func(encoder uintptr, format unsafe.Pointer)
	CodecEncoderWrite           func(encoder uintptr, in unsafe.Pointer, offset, length uint64) uint64

	// amplitude_memory.h
	MemoryManagerInitialize    func(config unsafe.Pointer)
	MemoryManagerDeinitialize  func()
	MemoryManagerIsInitialized func() uint32
	MemoryManagerTotalReserved func() uintptr
	MemoryManagerPoolName      func(pool int32) uintptr
	MemoryManagerInspectLeaks  func() uintptr
	MemoryFreeStr              func(str uintptr)

	// amplitude_thread.h
	ThreadCreate  func(proc uintptr, param uintptr) uintptr
	ThreadSleep   func(ms int32)
	ThreadWait    func(thread uintptr)
	ThreadRelease func(thread uintptr)
	ThreadGetID   func() uint64

	ThreadPoolCreate           func(threadCount uint32) uintptr
	ThreadPoolDestroy          func(pool uintptr)
	ThreadPoolAddTask          func(pool uintptr, task uintptr)
	ThreadPoolAddTaskAwaitable func(pool uintptr, task uintptr)
	ThreadPoolGetThreadCount   func(pool uintptr) uint32
	ThreadPoolIsRunning        func(pool uintptr) uint32
	ThreadPoolHasTasks         func(pool uintptr) uint32

	ThreadPoolTaskCreate            func(proc uintptr, param uintptr) uintptr
	ThreadPoolTaskDestroy           func(task uintptr)
	ThreadPoolTaskGetReady          func(task uintptr) uint32
	ThreadPoolTaskSetReady          func(task uintptr)
	ThreadPoolTaskAwaitableCreate   func(proc uintptr, param uintptr) uintptr
	ThreadPoolTaskAwaitableDestroy  func(task uintptr)
	ThreadPoolTaskAwaitableGetReady func(task uintptr) uint32
	ThreadPoolTaskAwaitableSetReady func(task uintptr)
	ThreadPoolTaskAwaitableAwait    func(task uintptr)
	ThreadPoolTaskAwaitableAwaitFor func(task uintptr, ms uint64)
)

// Struct-passing bindings, registered only where purego supports struct
// passage (see platform.SupportsStructByValue). Nil elsewhere.
var (
	ChannelGetLocation func(ch uintptr) amath.Vec3
	ChannelSetLocation func(ch uintptr, location amath.Vec3)

	EntityGetVelocity    func(e uintptr) amath.Vec3
	EntityGetLocation    func(e uintptr) amath.Vec3
	EntitySetLocation    func(e uintptr, location amath.Vec3)
	EntityGetOrientation func(e uintptr) amath.Quaternion
	EntitySetOrientation func(e uintptr, orientation amath.Quaternion)
	EntityGetDirection   func(e uintptr) amath.Vec3
	EntityGetUp          func(e uintptr) amath.Vec3

	ListenerGetVelocity      func(l uintptr) amath.Vec3
	ListenerGetLocation      func(l uintptr) amath.Vec3
	ListenerSetLocation      func(l uintptr, location amath.Vec3)
	ListenerGetOrientation   func(l uintptr) amath.Quaternion
	ListenerSetOrientation   func(l uintptr, orientation amath.Quaternion)
	ListenerGetDirection     func(l uintptr) amath.Vec3
	ListenerGetUp            func(l uintptr) amath.Vec3
	ListenerGetInverseMatrix func(l uintptr) amath.Mat4

	EnvironmentGetLocation          func(e uintptr) amath.Vec3
	EnvironmentSetLocation          func(e uintptr, location amath.Vec3)
	EnvironmentGetOrientation       func(e uintptr) amath.Quaternion
	EnvironmentSetOrientation       func(e uintptr, orientation amath.Quaternion)
	EnvironmentGetDirection         func(e uintptr) amath.Vec3
	EnvironmentGetUp                func(e uintptr) amath.Vec3
	EnvironmentGetFactorForLocation func(e uintptr, location amath.Vec3) float32

	RoomGetLocation    func(r uintptr) amath.Vec3
	RoomSetLocation    func(r uintptr, location amath.Vec3)
	RoomGetOrientation func(r uintptr) amath.Quaternion
	RoomSetOrientation func(r uintptr, orientation amath.Quaternion)
	RoomGetDirection   func(r uintptr) amath.Vec3
	RoomGetUp          func(r uintptr) amath.Vec3
	RoomGetDimensions  func(r uintptr) amath.Vec3
	RoomSetDimensions  func(r uintptr, dimensions amath.Vec3)

	RoomSetWallMaterial            func(r uintptr, wall int32, material RoomWallMaterial)
	RoomSetWallMaterials           func(r uintptr, left, right, floor, ceiling, front, back RoomWallMaterial)
	RoomSetAllWallMaterials        func(r uintptr, material RoomWallMaterial)
	RoomGetWallMaterial            func(r uintptr, wall int32) RoomWallMaterial
	RoomWallMaterialCreate         func() RoomWallMaterial
	RoomWallMaterialCreateWithType func(kind int32) RoomWallMaterial

	FilesystemConfigInitCustom  func() FilesystemConfig
	FilesystemConfigInitDisk    func() FilesystemConfig
	FilesystemConfigInitPackage func() FilesystemConfig

	FilesystemCreate               func(config *FilesystemConfig) FilesystemHandle
	FilesystemDestroy              func(fs FilesystemHandle)
	FilesystemSetBasePath          func(fs FilesystemHandle, basePath string)
	FilesystemGetBasePath          func(fs FilesystemHandle) uintptr
	FilesystemResolvePath          func(fs FilesystemHandle, path string) uintptr
	FilesystemExists               func(fs FilesystemHandle, path string) uint32
	FilesystemIsDirectory          func(fs FilesystemHandle, path string) uint32
	FilesystemJoin                 func(fs FilesystemHandle, parts unsafe.Pointer, count uintptr) uintptr
	FilesystemOpenFile             func(fs FilesystemHandle, path string, mode uint8) FileHandle
	FilesystemStartOpen            func(fs FilesystemHandle)
	FilesystemTryFinalizeOpen      func(fs FilesystemHandle) uint32
	FilesystemStartClose           func(fs FilesystemHandle)
	FilesystemTryFinalizeClose     func(fs FilesystemHandle) uint32
	FilesystemPackageSetFilesystem func(fs FilesystemHandle, internal *FilesystemConfig)

	FileConfigInitCustom func() FileConfig
	FileConfigInitDisk   func() FileConfig
	FileConfigInitMemory func() FileConfig

	FileCreate      func(config *FileConfig) FileHandle
	FileDestroy     func(f FileHandle)
	FileGetPath     func(f FileHandle) uintptr
	FileRead8       func(f FileHandle) uint8
	FileRead16      func(f FileHandle) uint16
	FileRead32      func(f FileHandle) uint32
	FileRead64      func(f FileHandle) uint64
	FileReadString  func(f FileHandle) uintptr
	FileWrite8      func(f FileHandle, value uint8) uintptr
	FileWrite16     func(f FileHandle, value uint16) uintptr
	FileWrite32     func(f FileHandle, value uint32) uintptr
	FileWrite64     func(f FileHandle, value uint64) uintptr
	FileWriteString func(f FileHandle, value string) uintptr
	FileEOF         func(f FileHandle) uint32
	FileRead        func(f FileHandle, dst unsafe.Pointer, bytes uintptr) uintptr
	FileWrite       func(f FileHandle, src unsafe.Pointer, bytes uintptr) uintptr
	FileLength      func(f FileHandle) uintptr
	FileSeek        func(f FileHandle, offset uintptr, origin uint8)
	FilePosition    func(f FileHandle) uintptr
	FileGetPtr      func(f FileHandle) uintptr
	FileIsValid     func(f FileHandle) uint32
	FileClose       func(f FileHandle)

	CodecFindForFile   func(file FileHandle) uintptr
	CodecCanHandleFile func(codec uintptr, file FileHandle) uint32
	CodecDecoderOpen   func(decoder uintptr, file FileHandle) uint32
	CodecEncoderOpen   func(encoder uintptr, file FileHandle) uint32
)

// IsLoaded returns true if the Amplitude library has been successfully loaded.
func IsLoaded() bool {
	return loaded
}

// Lib returns the raw library handle, or 0 before Load.
func Lib() uintptr {
	return libAmplitude
}

// Load loads the Amplitude library and registers all function bindings.
// Safe to call multiple times; subsequent calls are no-ops.
func Load() error {
	loadOnce.Do(func() {
		loadErr = doLoad()
		if loadErr == nil {
			loaded = true
		}
	})
	return loadErr
}

func doLoad() error {
	var err error
	libAmplitude, err = loadLibrary("Amplitude")
	if err != nil {
		// Some distributions ship the C binding under its own name.
		libAmplitude, err = loadLibrary("amplitude_c")
	}
	if err != nil {
		return fmt.Errorf("loading Amplitude: %w", err)
	}

	registerFuncs()
	if platform.SupportsStructByValue {
		registerStructFuncs()
	}
	return nil
}

func registerFuncs() {
	lib := libAmplitude

	purego.RegisterLibFunc(&Boot, lib, "am_boot")
	purego.RegisterLibFunc(&Shutdown, lib, "am_shutdown")
	purego.RegisterLibFunc(&IsInitialized, lib, "am_is_initialized")

	purego.RegisterLibFunc(&BusIsValid, lib, "am_bus_is_valid")
	purego.RegisterLibFunc(&BusGetID, lib, "am_bus_get_id")
	purego.RegisterLibFunc(&BusGetName, lib, "am_bus_get_name")
	purego.RegisterLibFunc(&BusSetGain, lib, "am_bus_set_gain")
	purego.RegisterLibFunc(&BusGetGain, lib, "am_bus_get_gain")
	purego.RegisterLibFunc(&BusFadeTo, lib, "am_bus_fade_to")
	purego.RegisterLibFunc(&BusGetFinalGain, lib, "am_bus_get_final_gain")
	purego.RegisterLibFunc(&BusSetMute, lib, "am_bus_set_mute")
	purego.RegisterLibFunc(&BusIsMuted, lib, "am_bus_is_muted")

	purego.RegisterLibFunc(&ChannelIsValid, lib, "am_channel_is_valid")
	purego.RegisterLibFunc(&ChannelGetID, lib, "am_channel_get_id")
	purego.RegisterLibFunc(&ChannelPlaying, lib, "am_channel_playing")
	purego.RegisterLibFunc(&ChannelStop, lib, "am_channel_stop")
	purego.RegisterLibFunc(&ChannelStopTimeout, lib, "am_channel_stop_timeout")
	purego.RegisterLibFunc(&ChannelPause, lib, "am_channel_pause")
	purego.RegisterLibFunc(&ChannelPauseTimeout, lib, "am_channel_pause_timeout")
	purego.RegisterLibFunc(&ChannelResume, lib, "am_channel_resume")
	purego.RegisterLibFunc(&ChannelResumeTimeout, lib, "am_channel_resume_timeout")
	purego.RegisterLibFunc(&ChannelGetGain, lib, "am_channel_get_gain")
	purego.RegisterLibFunc(&ChannelSetGain, lib, "am_channel_set_gain")
	purego.RegisterLibFunc(&ChannelGetPlaybackState, lib, "am_channel_get_playback_state")
	purego.RegisterLibFunc(&ChannelGetEntity, lib, "am_channel_get_entity")
	purego.RegisterLibFunc(&ChannelGetListener, lib, "am_channel_get_listener")
	purego.RegisterLibFunc(&ChannelGetRoom, lib, "am_channel_get_room")
	purego.RegisterLibFunc(&ChannelOnEvent, lib, "am_channel_on_event")

	purego.RegisterLibFunc(&EntityIsValid, lib, "am_entity_is_valid")
	purego.RegisterLibFunc(&EntityGetID, lib, "am_entity_get_id")
	purego.RegisterLibFunc(&EntitySetObstruction, lib, "am_entity_set_obstruction")
	purego.RegisterLibFunc(&EntityGetObstruction, lib, "am_entity_get_obstruction")
	purego.RegisterLibFunc(&EntitySetOcclusion, lib, "am_entity_set_occlusion")
	purego.RegisterLibFunc(&EntityGetOcclusion, lib, "am_entity_get_occlusion")
	purego.RegisterLibFunc(&EntitySetDirectivity, lib, "am_entity_set_directivity")
	purego.RegisterLibFunc(&EntityGetDirectivity, lib, "am_entity_get_directivity")
	purego.RegisterLibFunc(&EntityGetDirectivitySharp, lib, "am_entity_get_directivity_sharpness")
	purego.RegisterLibFunc(&EntitySetEnvironmentFactor, lib, "am_entity_set_environment_factor")
	purego.RegisterLibFunc(&EntityGetEnvironmentFactor, lib, "am_entity_get_environment_factor")
	purego.RegisterLibFunc(&EntityGetActiveChannelCount, lib, "am_entity_get_active_channel_count")

	purego.RegisterLibFunc(&ListenerIsValid, lib, "am_listener_is_valid")
	purego.RegisterLibFunc(&ListenerGetID, lib, "am_listener_get_id")
	purego.RegisterLibFunc(&ListenerSetDirectivity, lib, "am_listener_set_directivity")
	purego.RegisterLibFunc(&ListenerGetDirectivity, lib, "am_listener_get_directivity")
	purego.RegisterLibFunc(&ListenerGetDirectivitySharp, lib, "am_listener_get_directivity_sharpness")

	purego.RegisterLibFunc(&EnvironmentIsValid, lib, "am_environment_is_valid")
	purego.RegisterLibFunc(&EnvironmentGetID, lib, "am_environment_get_id")
	purego.RegisterLibFunc(&EnvironmentSetZone, lib, "am_environment_set_zone")
	purego.RegisterLibFunc(&EnvironmentGetZone, lib, "am_environment_get_zone")
	purego.RegisterLibFunc(&EnvironmentSetEffect, lib, "am_environment_set_effect")
	purego.RegisterLibFunc(&EnvironmentSetEffectByID, lib, "am_environment_set_effect_by_id")
	purego.RegisterLibFunc(&EnvironmentSetEffectByName, lib, "am_environment_set_effect_by_name")
	purego.RegisterLibFunc(&EnvironmentGetEffect, lib, "am_environment_get_effect")
	purego.RegisterLibFunc(&EnvironmentGetFactorForEntity, lib, "am_environment_get_factor_for_entity")

	purego.RegisterLibFunc(&RoomIsValid, lib, "am_room_is_valid")
	purego.RegisterLibFunc(&RoomGetID, lib, "am_room_get_id")
	purego.RegisterLibFunc(&RoomSetGain, lib, "am_room_set_gain")
	purego.RegisterLibFunc(&RoomGetGain, lib, "am_room_get_gain")
	purego.RegisterLibFunc(&RoomGetVolume, lib, "am_room_get_volume")
	purego.RegisterLibFunc(&RoomGetSurfaceArea, lib, "am_room_get_surface_area")
	purego.RegisterLibFunc(&RoomSetShape, lib, "am_room_set_shape")
	purego.RegisterLibFunc(&RoomGetShape, lib, "am_room_get_shape")

	purego.RegisterLibFunc(&CodecRegister, lib, "am_codec_register")
	purego.RegisterLibFunc(&CodecUnregister, lib, "am_codec_unregister")
	purego.RegisterLibFunc(&CodecFind, lib, "am_codec_find")
	purego.RegisterLibFunc(&CodecGetName, lib, "am_codec_get_name")
	purego.RegisterLibFunc(&CodecDecoderCreate, lib, "am_codec_decoder_create")
	purego.RegisterLibFunc(&CodecDecoderCreateFromCodec, lib, "am_codec_decoder_create_from_codec")
	purego.RegisterLibFunc(&CodecDecoderDestroy, lib, "am_codec_decoder_destroy")
	purego.RegisterLibFunc(&CodecDecoderClose, lib, "am_codec_decoder_close")
	purego.RegisterLibFunc(&CodecDecoderGetFormat, lib, "am_codec_decoder_get_format")
	purego.RegisterLibFunc(&CodecDecoderLoad, lib, "am_codec_decoder_load")
	purego.RegisterLibFunc(&CodecDecoderStream, lib, "am_codec_decoder_stream")
	purego.RegisterLibFunc(&CodecDecoderSeek, lib, "am_codec_decoder_seek")
	purego.RegisterLibFunc(&CodecEncoderCreate, lib, "am_codec_encoder_create")
	purego.RegisterLibFunc(&CodecEncoderCreateFromCodec, lib, "am_codec_encoder_create_from_codec")
	purego.RegisterLibFunc(&CodecEncoderDestroy, lib, "am_codec_encoder_destroy")
	purego.RegisterLibFunc(&CodecEncoderClose, lib, "am_codec_encoder_close")
	purego.RegisterLibFunc(&CodecEncoderSetFormat, lib, "am_codec_encoder_set_format")
	purego.RegisterLibFunc(&CodecEncoderWrite, lib, "am_codec_encoder_write")

	purego.RegisterLibFunc(&MemoryManagerInitialize, lib, "am_memory_manager_initialize")
	purego.RegisterLibFunc(&MemoryManagerDeinitialize, lib, "am_memory_manager_deinitialize")
	purego.RegisterLibFunc(&MemoryManagerIsInitialized, lib, "am_memory_manager_is_initialized")
	purego.RegisterLibFunc(&MemoryManagerTotalReserved, lib, "am_memory_manager_total_reserved_memory_size")
	purego.RegisterLibFunc(&MemoryManagerPoolName, lib, "am_memory_manager_get_memory_pool_name")
	purego.RegisterLibFunc(&MemoryManagerInspectLeaks, lib, "am_memory_manager_inspect_memory_leaks")
	purego.RegisterLibFunc(&MemoryFreeStr, lib, "am_memory_free_str")

	purego.RegisterLibFunc(&ThreadCreate, lib, "am_thread_create")
	purego.RegisterLibFunc(&ThreadSleep, lib, "am_thread_sleep")
	purego.RegisterLibFunc(&ThreadWait, lib, "am_thread_wait")
	purego.RegisterLibFunc(&ThreadRelease, lib, "am_thread_release")
	purego.RegisterLibFunc(&ThreadGetID, lib, "am_thread_get_id")
	purego.RegisterLibFunc(&ThreadPoolCreate, lib, "am_thread_pool_create")
	purego.RegisterLibFunc(&ThreadPoolDestroy, lib, "am_thread_pool_destroy")
	purego.RegisterLibFunc(&ThreadPoolAddTask, lib, "am_thread_pool_add_task")
	purego.RegisterLibFunc(&ThreadPoolAddTaskAwaitable, lib, "am_thread_pool_add_task_awaitable")
	purego.RegisterLibFunc(&ThreadPoolGetThreadCount, lib, "am_thread_pool_get_thread_count")
	purego.RegisterLibFunc(&ThreadPoolIsRunning, lib, "am_thread_pool_is_running")
	purego.RegisterLibFunc(&ThreadPoolHasTasks, lib, "am_thread_pool_has_tasks")
	purego.RegisterLibFunc(&ThreadPoolTaskCreate, lib, "am_thread_pool_task_create")
	purego.RegisterLibFunc(&ThreadPoolTaskDestroy, lib, "am_thread_pool_task_destroy")
	purego.RegisterLibFunc(&ThreadPoolTaskGetReady, lib, "am_thread_pool_task_get_ready")
	purego.RegisterLibFunc(&ThreadPoolTaskSetReady, lib, "am_thread_pool_task_set_ready")
	purego.RegisterLibFunc(&ThreadPoolTaskAwaitableCreate, lib, "am_thread_pool_task_awaitable_create")
	purego.RegisterLibFunc(&ThreadPoolTaskAwaitableDestroy, lib, "am_thread_pool_task_awaitable_destroy")
	purego.RegisterLibFunc(&ThreadPoolTaskAwaitableGetReady, lib, "am_thread_pool_task_awaitable_get_ready")
	purego.RegisterLibFunc(&ThreadPoolTaskAwaitableSetReady, lib, "am_thread_pool_task_awaitable_set_ready")
	purego.RegisterLibFunc(&ThreadPoolTaskAwaitableAwait, lib, "am_thread_pool_task_awaitable_await")
	purego.RegisterLibFunc(&ThreadPoolTaskAwaitableAwaitFor, lib, "am_thread_pool_task_awaitable_await_for")
}

func registerStructFuncs() {
	lib := libAmplitude

	purego.RegisterLibFunc(&ChannelGetLocation, lib, "am_channel_get_location")
	purego.RegisterLibFunc(&ChannelSetLocation, lib, "am_channel_set_location")

	purego.RegisterLibFunc(&EntityGetVelocity, lib, "am_entity_get_velocity")
	purego.RegisterLibFunc(&EntityGetLocation, lib, "am_entity_get_location")
	purego.RegisterLibFunc(&EntitySetLocation, lib, "am_entity_set_location")
	purego.RegisterLibFunc(&EntityGetOrientation, lib, "am_entity_get_orientation")
	purego.RegisterLibFunc(&EntitySetOrientation, lib, "am_entity_set_orientation")
	purego.RegisterLibFunc(&EntityGetDirection, lib, "am_entity_get_direction")
	purego.RegisterLibFunc(&EntityGetUp, lib, "am_entity_get_up")

	purego.RegisterLibFunc(&ListenerGetVelocity, lib, "am_listener_get_velocity")
	purego.RegisterLibFunc(&ListenerGetLocation, lib, "am_listener_get_location")
	purego.RegisterLibFunc(&ListenerSetLocation, lib, "am_listener_set_location")
	purego.RegisterLibFunc(&ListenerGetOrientation, lib, "am_listener_get_orientation")
	purego.RegisterLibFunc(&ListenerSetOrientation, lib, "am_listener_set_orientation")
	purego.RegisterLibFunc(&ListenerGetDirection, lib, "am_listener_get_direction")
	purego.RegisterLibFunc(&ListenerGetUp, lib, "am_listener_get_up")
	purego.RegisterLibFunc(&ListenerGetInverseMatrix, lib, "am_listener_get_inverse_matrix")

	purego.RegisterLibFunc(&EnvironmentGetLocation, lib, "am_environment_get_location")
	purego.RegisterLibFunc(&EnvironmentSetLocation, lib, "am_environment_set_location")
	purego.RegisterLibFunc(&EnvironmentGetOrientation, lib, "am_environment_get_orientation")
	purego.RegisterLibFunc(&EnvironmentSetOrientation, lib, "am_environment_set_orientation")
	purego.RegisterLibFunc(&EnvironmentGetDirection, lib, "am_environment_get_direction")
	purego.RegisterLibFunc(&EnvironmentGetUp, lib, "am_environment_get_up")
	purego.RegisterLibFunc(&EnvironmentGetFactorForLocation, lib, "am_environment_get_factor_for_location")

	purego.RegisterLibFunc(&RoomGetLocation, lib, "am_room_get_location")
	purego.RegisterLibFunc(&RoomSetLocation, lib, "am_room_set_location")
	purego.RegisterLibFunc(&RoomGetOrientation, lib, "am_room_get_orientation")
	purego.RegisterLibFunc(&RoomSetOrientation, lib, "am_room_set_orientation")
	purego.RegisterLibFunc(&RoomGetDirection, lib, "am_room_get_direction")
	purego.RegisterLibFunc(&RoomGetUp, lib, "am_room_get_up")
	purego.RegisterLibFunc(&RoomGetDimensions, lib, "am_room_get_dimensions")
	purego.RegisterLibFunc(&RoomSetDimensions, lib, "am_room_set_dimensions")

	purego.RegisterLibFunc(&RoomSetWallMaterial, lib, "am_room_set_wall_material")
	purego.RegisterLibFunc(&RoomSetWallMaterials, lib, "am_room_set_wall_materials")
	purego.RegisterLibFunc(&RoomSetAllWallMaterials, lib, "am_room_set_all_wall_materials")
	purego.RegisterLibFunc(&RoomGetWallMaterial, lib, "am_room_get_wall_material")
	purego.RegisterLibFunc(&RoomWallMaterialCreate, lib, "am_room_wall_material_create")
	purego.RegisterLibFunc(&RoomWallMaterialCreateWithType, lib, "am_room_wall_material_create_with_type")

	purego.RegisterLibFunc(&FilesystemConfigInitCustom, lib, "am_filesystem_config_init_custom")
	purego.RegisterLibFunc(&FilesystemConfigInitDisk, lib, "am_filesystem_config_init_disk")
	purego.RegisterLibFunc(&FilesystemConfigInitPackage, lib, "am_filesystem_config_init_package")

	purego.RegisterLibFunc(&FilesystemCreate, lib, "am_filesystem_create")
	purego.RegisterLibFunc(&FilesystemDestroy, lib, "am_filesystem_destroy")
	purego.RegisterLibFunc(&FilesystemSetBasePath, lib, "am_filesystem_set_base_path")
	purego.RegisterLibFunc(&FilesystemGetBasePath, lib, "am_filesystem_get_base_path")
	purego.RegisterLibFunc(&FilesystemResolvePath, lib, "am_filesystem_resolve_path")
	purego.RegisterLibFunc(&FilesystemExists, lib, "am_filesystem_exists")
	purego.RegisterLibFunc(&FilesystemIsDirectory, lib, "am_filesystem_is_directory")
	purego.RegisterLibFunc(&FilesystemJoin, lib, "am_filesystem_join")
	purego.RegisterLibFunc(&FilesystemOpenFile, lib, "am_filesystem_open_file")
	purego.RegisterLibFunc(&FilesystemStartOpen, lib, "am_filesystem_start_open")
	purego.RegisterLibFunc(&FilesystemTryFinalizeOpen, lib, "am_filesystem_try_finalize_open")
	purego.RegisterLibFunc(&FilesystemStartClose, lib, "am_filesystem_start_close")
	purego.RegisterLibFunc(&FilesystemTryFinalizeClose, lib, "am_filesystem_try_finalize_close")
	purego.RegisterLibFunc(&FilesystemPackageSetFilesystem, lib, "am_filesystem_package_set_filesystem")

	purego.RegisterLibFunc(&FileConfigInitCustom, lib, "am_file_config_init_custom")
	purego.RegisterLibFunc(&FileConfigInitDisk, lib, "am_file_config_init_disk")
	purego.RegisterLibFunc(&FileConfigInitMemory, lib, "am_file_config_init_memory")

	purego.RegisterLibFunc(&FileCreate, lib, "am_file_create")
	purego.RegisterLibFunc(&FileDestroy, lib, "am_file_destroy")
	purego.RegisterLibFunc(&FileGetPath, lib, "am_file_get_path")
	purego.RegisterLibFunc(&FileRead8, lib, "am_file_read8")
	purego.RegisterLibFunc(&FileRead16, lib, "am_file_read16")
	purego.RegisterLibFunc(&FileRead32, lib, "am_file_read32")
	purego.RegisterLibFunc(&FileRead64, lib, "am_file_read64")
	purego.RegisterLibFunc(&FileReadString, lib, "am_file_read_string")
	purego.RegisterLibFunc(&FileWrite8, lib, "am_file_write8")
	purego.RegisterLibFunc(&FileWrite16, lib, "am_file_write16")
	purego.RegisterLibFunc(&FileWrite32, lib, "am_file_write32")
	purego.RegisterLibFunc(&FileWrite64, lib, "am_file_write64")
	purego.RegisterLibFunc(&FileWriteString, lib, "am_file_write_string")
	purego.RegisterLibFunc(&FileEOF, lib, "am_file_eof")
	purego.RegisterLibFunc(&FileRead, lib, "am_file_read")
	purego.RegisterLibFunc(&FileWrite, lib, "am_file_write")
	purego.RegisterLibFunc(&FileLength, lib, "am_file_length")
	purego.RegisterLibFunc(&FileSeek, lib, "am_file_seek")
	purego.RegisterLibFunc(&FilePosition, lib, "am_file_position")
	purego.RegisterLibFunc(&FileGetPtr, lib, "am_file_get_ptr")
	purego.RegisterLibFunc(&FileIsValid, lib, "am_file_is_valid")
	purego.RegisterLibFunc(&FileClose, lib, "am_file_close")

	purego.RegisterLibFunc(&CodecFindForFile, lib, "am_codec_find_for_file")
	purego.RegisterLibFunc(&CodecCanHandleFile, lib, "am_codec_can_handle_file")
	purego.RegisterLibFunc(&CodecDecoderOpen, lib, "am_codec_decoder_open")
	purego.RegisterLibFunc(&CodecEncoderOpen, lib, "am_codec_encoder_open")
}

// loadLibrary attempts to load a library from the search paths, falling
// back to the system resolver.
func loadLibrary(name string) (uintptr, error) {
	libName := platform.FormatLibraryName(name)

	for _, searchPath := range LibrarySearchPaths() {
		lib, err := tryOpen(filepath.Join(searchPath, libName))
		if err == nil {
			return lib, nil
		}
	}

	// Let the system resolver have a try.
	lib, err := tryOpen(libName)
	if err == nil {
		return lib, nil
	}

	return 0, fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

func tryOpen(path string) (uintptr, error) {
	lib, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	if err != nil {
		return 0, err
	}
	return lib, nil
}

// FindLibrary searches for the Amplitude library and returns its full path.
// Useful for diagnostics.
func FindLibrary(name string) (string, error) {
	libName := platform.FormatLibraryName(name)
	for _, searchPath := range LibrarySearchPaths() {
		fullPath := filepath.Join(searchPath, libName)
		if _, err := os.Stat(fullPath); err == nil {
			return fullPath, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrLibraryNotFound, name)
}

// LibrarySearchPaths returns platform-specific library search paths.
// AMPLITUDE_LIBRARY_PATH takes precedence everywhere.
func LibrarySearchPaths() []string {
	var paths []string

	if amPath := os.Getenv("AMPLITUDE_LIBRARY_PATH"); amPath != "" {
		paths = append(paths, filepath.SplitList(amPath)...)
	}
	paths = append(paths, extraSearchPaths...)

	switch runtime.GOOS {
	case "linux":
		if ldPath := os.Getenv("LD_LIBRARY_PATH"); ldPath != "" {
			paths = append(paths, filepath.SplitList(ldPath)...)
		}
		paths = append(paths,
			"/usr/lib/x86_64-linux-gnu",
			"/usr/lib/aarch64-linux-gnu",
			"/usr/local/lib",
			"/usr/lib",
			"/lib/x86_64-linux-gnu",
			"/lib",
		)

	case "darwin":
		if dyldPath := os.Getenv("DYLD_LIBRARY_PATH"); dyldPath != "" {
			paths = append(paths, filepath.SplitList(dyldPath)...)
		}
		paths = append(paths,
			"/opt/homebrew/lib", // Apple Silicon
			"/usr/local/lib",    // Intel
		)

	case "windows":
		if winPath := os.Getenv("PATH"); winPath != "" {
			paths = append(paths, filepath.SplitList(winPath)...)
		}
	}

	// SDK installations keep libraries under AM_SDK_PATH/lib.
	if sdkPath := os.Getenv("AM_SDK_PATH"); sdkPath != "" {
		paths = append(paths, filepath.Join(sdkPath, "lib"))
	}

	return paths
}
