//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"sync"
	"unsafe"

	"github.com/ebitengine/purego"
	"go.uber.org/zap"

	"github.com/obinnaokechukwu/ampgo/internal/bindings"
	"github.com/obinnaokechukwu/ampgo/internal/handles"
)

// FileSystem is a custom filesystem implementation exposed to the engine.
// Methods run on whichever engine thread performs the I/O.
type FileSystem interface {
	// SetBasePath sets the root all relative paths resolve against.
	SetBasePath(path string)

	// BasePath returns the current base path.
	BasePath() string

	// ResolvePath returns the absolute form of path.
	ResolvePath(path string) string

	// Exists reports whether path exists.
	Exists(path string) bool

	// IsDirectory reports whether path is a directory.
	IsDirectory(path string) bool

	// Join joins path components into a single path.
	Join(parts []string) string

	// OpenFile opens the file at path in the given mode. Returning nil
	// reports the open as failed to the engine.
	//
	// The engine cannot currently receive files opened by a Go
	// filesystem: the native open_file callback returns am_file_handle
	// by value, which Go callbacks cannot express, so every open is
	// reported as failed. Use NewCustomFile to hand individual Go files
	// to the engine instead.
	OpenFile(path string, mode FileOpenMode) File

	// StartOpen begins an asynchronous open of the filesystem.
	StartOpen()

	// TryFinalizeOpen reports whether the asynchronous open completed.
	TryFinalizeOpen() bool

	// StartClose begins an asynchronous close of the filesystem.
	StartClose()

	// TryFinalizeClose reports whether the asynchronous close completed.
	TryFinalizeClose() bool
}

// filesystemState is the per-filesystem record the native vtable
// trampolines resolve their user_data against. The string buffers keep
// returned paths alive for the native caller until the next request.
type filesystemState struct {
	impl        FileSystem
	basePathBuf []byte
	resolveBuf  []byte
	joinBuf     []byte
}

// The filesystem vtable mirrors am_filesystem_vtable: create, destroy,
// set_base_path, get_base_path, resolve_path, exists, is_directory, join,
// open_file, start_open_filesystem, try_finalize_open_filesystem,
// start_close_filesystem, try_finalize_close_filesystem.
var (
	filesystemVTableOnce sync.Once
	filesystemVTable     [13]uintptr
)

func lookupFilesystemState(userData uintptr) *filesystemState {
	state, ok := handles.Lookup[filesystemState](handles.Default(), handles.Handle(userData))
	if !ok {
		return nil
	}
	return state
}

func initFilesystemVTable() {
	filesystemVTableOnce.Do(func() {
		filesystemVTable[0] = purego.NewCallback(func(userData uintptr) uintptr {
			return 0
		})
		filesystemVTable[1] = purego.NewCallback(func(userData uintptr) uintptr {
			if handles.Remove[filesystemState](handles.Default(), handles.Handle(userData)) {
				logger().Debug("custom filesystem released", zap.Uintptr("user_data", userData))
			}
			return 0
		})
		filesystemVTable[2] = purego.NewCallback(func(userData, basePath uintptr) uintptr {
			if state := lookupFilesystemState(userData); state != nil {
				state.impl.SetBasePath(goString(basePath))
			}
			return 0
		})
		filesystemVTable[3] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupFilesystemState(userData)
			if state == nil {
				return 0
			}
			state.basePathBuf = cString(state.impl.BasePath())
			return uintptr(unsafe.Pointer(&state.basePathBuf[0]))
		})
		filesystemVTable[4] = purego.NewCallback(func(userData, path uintptr) uintptr {
			state := lookupFilesystemState(userData)
			if state == nil {
				return 0
			}
			state.resolveBuf = cString(state.impl.ResolvePath(goString(path)))
			return uintptr(unsafe.Pointer(&state.resolveBuf[0]))
		})
		filesystemVTable[5] = purego.NewCallback(func(userData, path uintptr) uintptr {
			state := lookupFilesystemState(userData)
			if state != nil && state.impl.Exists(goString(path)) {
				return 1
			}
			return 0
		})
		filesystemVTable[6] = purego.NewCallback(func(userData, path uintptr) uintptr {
			state := lookupFilesystemState(userData)
			if state != nil && state.impl.IsDirectory(goString(path)) {
				return 1
			}
			return 0
		})
		filesystemVTable[7] = purego.NewCallback(func(userData, paths uintptr, count uint32) uintptr {
			state := lookupFilesystemState(userData)
			if state == nil {
				return 0
			}
			parts := make([]string, 0, count)
			if paths != 0 {
				for _, ptr := range unsafe.Slice((*uintptr)(unsafe.Pointer(paths)), count) {
					parts = append(parts, goString(ptr))
				}
			}
			state.joinBuf = cString(state.impl.Join(parts))
			return uintptr(unsafe.Pointer(&state.joinBuf[0]))
		})
		// The open_file slot must return am_file_handle by value, which
		// purego callbacks cannot express. Report the open as failed with
		// a zero handle; see the OpenFile doc on FileSystem.
		filesystemVTable[8] = purego.NewCallback(func(userData, path, mode uintptr) uintptr {
			if state := lookupFilesystemState(userData); state != nil {
				logger().Warn("custom filesystem cannot serve file opens",
					zap.String("path", goString(path)))
			}
			return 0
		})
		filesystemVTable[9] = purego.NewCallback(func(userData uintptr) uintptr {
			if state := lookupFilesystemState(userData); state != nil {
				state.impl.StartOpen()
			}
			return 0
		})
		filesystemVTable[10] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupFilesystemState(userData)
			if state != nil && state.impl.TryFinalizeOpen() {
				return 1
			}
			return 0
		})
		filesystemVTable[11] = purego.NewCallback(func(userData uintptr) uintptr {
			if state := lookupFilesystemState(userData); state != nil {
				state.impl.StartClose()
			}
			return 0
		})
		filesystemVTable[12] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupFilesystemState(userData)
			if state != nil && state.impl.TryFinalizeClose() {
				return 1
			}
			return 0
		})
	})
}

// NativeFileSystem wraps an am_filesystem_handle of any type.
type NativeFileSystem struct {
	native bindings.FilesystemHandle
	bridge handles.Handle
}

// NewCustomFileSystem exposes a Go FileSystem implementation to the engine.
//
// The implementation stays reachable through the bridge table until the
// native side destroys the filesystem; call Destroy to drop it eagerly.
func NewCustomFileSystem(impl FileSystem) (*NativeFileSystem, error) {
	if impl == nil {
		return nil, ErrNilObject
	}
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	if bindings.FilesystemCreate == nil {
		return nil, ErrUnsupportedPlatform
	}

	initFilesystemVTable()

	state := &filesystemState{impl: impl}
	h, err := handles.Register(handles.Default(), state)
	if err != nil {
		return nil, err
	}

	cfg := bindings.FilesystemConfig{
		Type:     uint8(FilesystemTypeCustom),
		UserData: uintptr(h),
		VTable:   uintptr(unsafe.Pointer(&filesystemVTable[0])),
	}
	native := bindings.FilesystemCreate(&cfg)
	if native.Handle == 0 {
		handles.Remove[filesystemState](handles.Default(), h)
		return nil, ErrInvalidHandle
	}

	logger().Debug("custom filesystem bridged", zap.Uintptr("user_data", uintptr(h)))
	return &NativeFileSystem{native: native, bridge: h}, nil
}

// NewDiskFileSystem creates an engine-provided filesystem backed by the
// host disk.
func NewDiskFileSystem() (*NativeFileSystem, error) {
	return newEngineFilesystem(bindings.FilesystemConfigInitDisk)
}

// NewPackageFileSystem creates an engine-provided filesystem reading from
// an Amplitude package (.ampk) file.
func NewPackageFileSystem() (*NativeFileSystem, error) {
	return newEngineFilesystem(bindings.FilesystemConfigInitPackage)
}

func newEngineFilesystem(initConfig func() bindings.FilesystemConfig) (*NativeFileSystem, error) {
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	if initConfig == nil || bindings.FilesystemCreate == nil {
		return nil, ErrUnsupportedPlatform
	}
	cfg := initConfig()
	native := bindings.FilesystemCreate(&cfg)
	if native.Handle == 0 {
		return nil, ErrInvalidHandle
	}
	return &NativeFileSystem{native: native}, nil
}

// Type returns the filesystem implementation kind.
func (fs *NativeFileSystem) Type() FilesystemType {
	return FilesystemType(fs.native.Type)
}

// SetPlatformFileSystem gives a package filesystem the filesystem it reads
// the package file through. A nil impl selects the engine's disk
// filesystem; a non-nil impl is bridged the same way NewCustomFileSystem
// bridges one, and the engine releases the bridge record when it destroys
// the package filesystem. Returns ErrInvalidHandle when fs is not a
// package filesystem.
func (fs *NativeFileSystem) SetPlatformFileSystem(impl FileSystem) error {
	if !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if fs.native.Handle == 0 || fs.Type() != FilesystemTypePackage {
		return ErrInvalidHandle
	}
	if bindings.FilesystemPackageSetFilesystem == nil {
		return ErrUnsupportedPlatform
	}

	var cfg bindings.FilesystemConfig
	if impl == nil {
		if bindings.FilesystemConfigInitDisk == nil {
			return ErrUnsupportedPlatform
		}
		cfg = bindings.FilesystemConfigInitDisk()
	} else {
		initFilesystemVTable()
		state := &filesystemState{impl: impl}
		h, err := handles.Register(handles.Default(), state)
		if err != nil {
			return err
		}
		cfg = bindings.FilesystemConfig{
			Type:     uint8(FilesystemTypeCustom),
			UserData: uintptr(h),
			VTable:   uintptr(unsafe.Pointer(&filesystemVTable[0])),
		}
	}
	bindings.FilesystemPackageSetFilesystem(fs.native, &cfg)
	return nil
}

// SetBasePath sets the root all relative paths resolve against.
func (fs *NativeFileSystem) SetBasePath(path string) error {
	if fs.native.Handle == 0 || bindings.FilesystemSetBasePath == nil {
		return ErrUnsupportedPlatform
	}
	bindings.FilesystemSetBasePath(fs.native, path)
	return nil
}

// BasePath returns the current base path.
func (fs *NativeFileSystem) BasePath() (string, error) {
	if fs.native.Handle == 0 || bindings.FilesystemGetBasePath == nil {
		return "", ErrUnsupportedPlatform
	}
	return takeString(bindings.FilesystemGetBasePath(fs.native)), nil
}

// ResolvePath returns the absolute form of path.
func (fs *NativeFileSystem) ResolvePath(path string) (string, error) {
	if fs.native.Handle == 0 || bindings.FilesystemResolvePath == nil {
		return "", ErrUnsupportedPlatform
	}
	return takeString(bindings.FilesystemResolvePath(fs.native, path)), nil
}

// Exists reports whether path exists.
func (fs *NativeFileSystem) Exists(path string) bool {
	if fs.native.Handle == 0 || bindings.FilesystemExists == nil {
		return false
	}
	return toBool(bindings.FilesystemExists(fs.native, path))
}

// IsDirectory reports whether path is a directory.
func (fs *NativeFileSystem) IsDirectory(path string) bool {
	if fs.native.Handle == 0 || bindings.FilesystemIsDirectory == nil {
		return false
	}
	return toBool(bindings.FilesystemIsDirectory(fs.native, path))
}

// Join joins path components into a single path.
func (fs *NativeFileSystem) Join(parts []string) (string, error) {
	if fs.native.Handle == 0 || bindings.FilesystemJoin == nil {
		return "", ErrUnsupportedPlatform
	}
	if len(parts) == 0 {
		return "", nil
	}

	// Build a NUL-terminated buffer per part plus the pointer array the
	// native side expects.
	bufs := make([][]byte, len(parts))
	ptrs := make([]uintptr, len(parts))
	for i, part := range parts {
		bufs[i] = cString(part)
		ptrs[i] = uintptr(unsafe.Pointer(&bufs[i][0]))
	}
	return takeString(bindings.FilesystemJoin(fs.native, unsafe.Pointer(&ptrs[0]), uintptr(len(ptrs)))), nil
}

// OpenFile opens the file at path in the given mode.
func (fs *NativeFileSystem) OpenFile(path string, mode FileOpenMode) (*NativeFile, error) {
	if fs.native.Handle == 0 || bindings.FilesystemOpenFile == nil {
		return nil, ErrUnsupportedPlatform
	}
	native := bindings.FilesystemOpenFile(fs.native, path, uint8(mode))
	if native.Handle == 0 {
		return nil, ErrInvalidHandle
	}
	return &NativeFile{native: native}, nil
}

// StartOpen begins an asynchronous open of the filesystem.
func (fs *NativeFileSystem) StartOpen() error {
	if fs.native.Handle == 0 || bindings.FilesystemStartOpen == nil {
		return ErrUnsupportedPlatform
	}
	bindings.FilesystemStartOpen(fs.native)
	return nil
}

// TryFinalizeOpen reports whether the asynchronous open completed.
func (fs *NativeFileSystem) TryFinalizeOpen() bool {
	if fs.native.Handle == 0 || bindings.FilesystemTryFinalizeOpen == nil {
		return false
	}
	return toBool(bindings.FilesystemTryFinalizeOpen(fs.native))
}

// StartClose begins an asynchronous close of the filesystem.
func (fs *NativeFileSystem) StartClose() error {
	if fs.native.Handle == 0 || bindings.FilesystemStartClose == nil {
		return ErrUnsupportedPlatform
	}
	bindings.FilesystemStartClose(fs.native)
	return nil
}

// TryFinalizeClose reports whether the asynchronous close completed.
func (fs *NativeFileSystem) TryFinalizeClose() bool {
	if fs.native.Handle == 0 || bindings.FilesystemTryFinalizeClose == nil {
		return false
	}
	return toBool(bindings.FilesystemTryFinalizeClose(fs.native))
}

// Destroy destroys the native filesystem handle and drops the bridge
// record of a custom filesystem. The handle is unusable afterwards.
func (fs *NativeFileSystem) Destroy() {
	if fs.native.Handle != 0 && bindings.FilesystemDestroy != nil {
		bindings.FilesystemDestroy(fs.native)
	}
	// The native destroy path normally removes the bridge record through
	// the vtable; sweep it here in case the native side never ran.
	if fs.bridge != 0 {
		handles.Remove[filesystemState](handles.Default(), fs.bridge)
		fs.bridge = 0
	}
	fs.native = bindings.FilesystemHandle{}
}
