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

// File is a custom file implementation exposed to the engine. Methods run
// on whichever engine thread performs the I/O.
type File interface {
	// Path returns the path of the file inside its filesystem.
	Path() string

	// EOF reports whether the read cursor is at the end of the file.
	EOF() bool

	// Read reads up to len(p) bytes into p and returns the number of
	// bytes read.
	Read(p []byte) int

	// Write writes len(p) bytes from p and returns the number of bytes
	// written.
	Write(p []byte) int

	// Length returns the total length of the file in bytes.
	Length() uint64

	// Seek moves the cursor to offset relative to origin.
	Seek(offset uint64, origin FileSeekOrigin)

	// Position returns the current cursor position.
	Position() uint64

	// Valid reports whether the file is open and usable.
	Valid() bool

	// Close closes the file.
	Close()
}

// fileState is the per-file record the native vtable trampolines resolve
// their user_data against. pathBuf keeps the last returned path alive for
// the native caller until the next request.
type fileState struct {
	impl    File
	pathBuf []byte
}

// The file vtable mirrors am_file_vtable: create, destroy, get_path, eof,
// read, write, length, seek, position, get_ptr, is_valid, close. It is
// built once and shared by every custom file.
var (
	fileVTableOnce sync.Once
	fileVTable     [12]uintptr
)

func lookupFileState(userData uintptr) *fileState {
	state, ok := handles.Lookup[fileState](handles.Default(), handles.Handle(userData))
	if !ok {
		return nil
	}
	return state
}

func initFileVTable() {
	fileVTableOnce.Do(func() {
		fileVTable[0] = purego.NewCallback(func(userData uintptr) uintptr {
			return 0
		})
		fileVTable[1] = purego.NewCallback(func(userData uintptr) uintptr {
			if handles.Remove[fileState](handles.Default(), handles.Handle(userData)) {
				logger().Debug("custom file released", zap.Uintptr("user_data", userData))
			}
			return 0
		})
		fileVTable[2] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupFileState(userData)
			if state == nil {
				return 0
			}
			state.pathBuf = cString(state.impl.Path())
			return uintptr(unsafe.Pointer(&state.pathBuf[0]))
		})
		fileVTable[3] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupFileState(userData)
			if state == nil || state.impl.EOF() {
				return 1
			}
			return 0
		})
		fileVTable[4] = purego.NewCallback(func(userData, buffer, bytes uintptr) uintptr {
			state := lookupFileState(userData)
			if state == nil || buffer == 0 || bytes == 0 {
				return 0
			}
			p := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), bytes)
			return uintptr(state.impl.Read(p))
		})
		fileVTable[5] = purego.NewCallback(func(userData, buffer, bytes uintptr) uintptr {
			state := lookupFileState(userData)
			if state == nil || buffer == 0 || bytes == 0 {
				return 0
			}
			p := unsafe.Slice((*byte)(unsafe.Pointer(buffer)), bytes)
			return uintptr(state.impl.Write(p))
		})
		fileVTable[6] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupFileState(userData)
			if state == nil {
				return 0
			}
			return uintptr(state.impl.Length())
		})
		fileVTable[7] = purego.NewCallback(func(userData uintptr, offset uint64, origin uintptr) uintptr {
			state := lookupFileState(userData)
			if state != nil {
				state.impl.Seek(offset, FileSeekOrigin(origin))
			}
			return 0
		})
		fileVTable[8] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupFileState(userData)
			if state == nil {
				return 0
			}
			return uintptr(state.impl.Position())
		})
		fileVTable[9] = purego.NewCallback(func(userData uintptr) uintptr {
			// No native pointer behind a Go file.
			return 0
		})
		fileVTable[10] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupFileState(userData)
			if state == nil || !state.impl.Valid() {
				return 0
			}
			return 1
		})
		fileVTable[11] = purego.NewCallback(func(userData uintptr) uintptr {
			state := lookupFileState(userData)
			if state != nil {
				state.impl.Close()
			}
			return 0
		})
	})
}

// fileHandleFromWords rebuilds an am_file_handle received through a native
// callback. purego callbacks cannot take struct parameters, so trampolines
// declare the two register-sized words the 16-byte struct arrives in and
// reassemble it here.
func fileHandleFromWords(fileType, handle uintptr) bindings.FileHandle {
	return bindings.FileHandle{Type: uint8(fileType), Handle: handle}
}

// newCustomFileHandle bridges a Go File into an am_file_handle the engine
// can use. The returned bridge handle keeps the state reachable for the
// vtable trampolines until the native side destroys the file.
func newCustomFileHandle(impl File) (bindings.FileHandle, handles.Handle, error) {
	if impl == nil {
		return bindings.FileHandle{}, 0, ErrNilObject
	}
	if !bindings.IsLoaded() {
		return bindings.FileHandle{}, 0, ErrNotLoaded
	}
	if bindings.FileCreate == nil {
		return bindings.FileHandle{}, 0, ErrUnsupportedPlatform
	}

	initFileVTable()

	state := &fileState{impl: impl}
	h, err := handles.Register(handles.Default(), state)
	if err != nil {
		return bindings.FileHandle{}, 0, err
	}

	cfg := bindings.FileConfig{
		Type:     uint8(FileTypeCustom),
		UserData: uintptr(h),
		VTable:   uintptr(unsafe.Pointer(&fileVTable[0])),
	}
	native := bindings.FileCreate(&cfg)
	if native.Handle == 0 {
		handles.Remove[fileState](handles.Default(), h)
		return bindings.FileHandle{}, 0, ErrInvalidHandle
	}
	return native, h, nil
}

// NativeFile wraps an am_file_handle of any type, custom or engine-owned.
type NativeFile struct {
	native bindings.FileHandle
	bridge handles.Handle
}

// NewCustomFile exposes a Go File implementation to the engine.
//
// The File stays reachable through the bridge table until the native side
// destroys it; call Destroy to drop it eagerly.
func NewCustomFile(impl File) (*NativeFile, error) {
	native, bridge, err := newCustomFileHandle(impl)
	if err != nil {
		return nil, err
	}
	return &NativeFile{native: native, bridge: bridge}, nil
}

// Type returns the file implementation kind.
func (f *NativeFile) Type() FileType {
	return FileType(f.native.Type)
}

// Valid reports whether the file handle is open and usable.
func (f *NativeFile) Valid() bool {
	if f.native.Handle == 0 || bindings.FileIsValid == nil {
		return false
	}
	return toBool(bindings.FileIsValid(f.native))
}

// Path returns the path of the file inside its filesystem.
func (f *NativeFile) Path() (string, error) {
	if f.native.Handle == 0 || bindings.FileGetPath == nil {
		return "", ErrUnsupportedPlatform
	}
	return takeString(bindings.FileGetPath(f.native)), nil
}

// EOF reports whether the read cursor is at the end of the file.
func (f *NativeFile) EOF() bool {
	if f.native.Handle == 0 || bindings.FileEOF == nil {
		return true
	}
	return toBool(bindings.FileEOF(f.native))
}

// Read reads up to len(p) bytes into p.
func (f *NativeFile) Read(p []byte) (int, error) {
	if f.native.Handle == 0 || bindings.FileRead == nil {
		return 0, ErrUnsupportedPlatform
	}
	if len(p) == 0 {
		return 0, nil
	}
	n := bindings.FileRead(f.native, unsafe.Pointer(&p[0]), uintptr(len(p)))
	return int(n), nil
}

// Write writes len(p) bytes from p.
func (f *NativeFile) Write(p []byte) (int, error) {
	if f.native.Handle == 0 || bindings.FileWrite == nil {
		return 0, ErrUnsupportedPlatform
	}
	if len(p) == 0 {
		return 0, nil
	}
	n := bindings.FileWrite(f.native, unsafe.Pointer(&p[0]), uintptr(len(p)))
	return int(n), nil
}

// Length returns the total length of the file in bytes.
func (f *NativeFile) Length() uint64 {
	if f.native.Handle == 0 || bindings.FileLength == nil {
		return 0
	}
	return uint64(bindings.FileLength(f.native))
}

// Seek moves the cursor to offset relative to origin.
func (f *NativeFile) Seek(offset uint64, origin FileSeekOrigin) error {
	if f.native.Handle == 0 || bindings.FileSeek == nil {
		return ErrUnsupportedPlatform
	}
	bindings.FileSeek(f.native, uintptr(offset), uint8(origin))
	return nil
}

// Position returns the current cursor position.
func (f *NativeFile) Position() uint64 {
	if f.native.Handle == 0 || bindings.FilePosition == nil {
		return 0
	}
	return uint64(bindings.FilePosition(f.native))
}

// Close closes the file without destroying the handle.
func (f *NativeFile) Close() error {
	if f.native.Handle == 0 || bindings.FileClose == nil {
		return ErrUnsupportedPlatform
	}
	bindings.FileClose(f.native)
	return nil
}

// Destroy destroys the native file handle and drops the bridge record of a
// custom file. The handle is unusable afterwards.
func (f *NativeFile) Destroy() {
	if f.native.Handle != 0 && bindings.FileDestroy != nil {
		bindings.FileDestroy(f.native)
	}
	// The native destroy path normally removes the bridge record through
	// the vtable; sweep it here in case the native side never ran.
	if f.bridge != 0 {
		handles.Remove[fileState](handles.Default(), f.bridge)
		f.bridge = 0
	}
	f.native = bindings.FileHandle{}
}

// nativeHandle exposes the wire handle to sibling wrappers.
func (f *NativeFile) nativeHandle() bindings.FileHandle {
	return f.native
}
