//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"errors"
	"testing"
)

// requireEngine boots the engine, skipping the test when the Amplitude
// library is not installed on the host.
func requireEngine(t *testing.T) {
	t.Helper()
	if err := Init(); err != nil {
		t.Skipf("Amplitude library not available: %v", err)
	}
}

func TestIsInitializedBeforeInit(t *testing.T) {
	if !IsLoaded() && IsInitialized() {
		t.Error("IsInitialized true before Init")
	}
}

func TestInitShutdown(t *testing.T) {
	requireEngine(t)

	if !IsInitialized() {
		t.Fatal("IsInitialized false after Init")
	}

	// Init is idempotent.
	if err := Init(); err != nil {
		t.Fatalf("second Init: %v", err)
	}

	Shutdown()
	if IsInitialized() {
		t.Error("IsInitialized true after Shutdown")
	}
	if n := BridgedObjectCount(); n != 0 {
		t.Errorf("BridgedObjectCount after Shutdown = %d, want 0", n)
	}

	// Shutdown is idempotent.
	Shutdown()

	// The engine can boot again.
	if err := Init(); err != nil {
		t.Fatalf("re-Init: %v", err)
	}
	Shutdown()
}

func TestShutdownDropsBridgedObjects(t *testing.T) {
	requireEngine(t)
	defer Shutdown()

	task, err := NewPoolTask(func() {})
	if err != nil {
		t.Fatalf("NewPoolTask: %v", err)
	}
	if n := BridgedObjectCount(); n == 0 {
		t.Fatal("BridgedObjectCount = 0 with a live task")
	}

	task.Destroy()
	if n := BridgedObjectCount(); n != 0 {
		t.Errorf("BridgedObjectCount after Destroy = %d, want 0", n)
	}
}

func TestLibraryPathWhenMissing(t *testing.T) {
	if IsLoaded() {
		t.Skip("library installed on host")
	}
	if _, err := LibraryPath(); !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("LibraryPath error = %v, want ErrLibraryNotFound", err)
	}
}

func TestOperationsWithoutEngine(t *testing.T) {
	if IsLoaded() {
		t.Skip("library installed on host")
	}

	if _, err := NewPool(2); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("NewPool error = %v, want ErrNotLoaded", err)
	}
	if _, err := NewPoolTask(func() {}); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("NewPoolTask error = %v, want ErrNotLoaded", err)
	}
	if _, err := RegisterCodec(nil); !errors.Is(err, ErrNilObject) {
		t.Errorf("RegisterCodec(nil) error = %v, want ErrNilObject", err)
	}
	if _, err := NewCustomFileSystem(nil); !errors.Is(err, ErrNilObject) {
		t.Errorf("NewCustomFileSystem(nil) error = %v, want ErrNilObject", err)
	}
	if _, err := FindCodec("WAV"); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("FindCodec error = %v, want ErrNotLoaded", err)
	}

	var bus Bus
	if bus.Valid() {
		t.Error("zero Bus reported valid")
	}
	var ch Channel
	if ch.State() != PlaybackStateStopped {
		t.Error("zero Channel state not stopped")
	}
	if err := ch.On(ChannelEventBegin, func(Channel) {}); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Channel.On error = %v, want ErrNotLoaded", err)
	}
	if e := ch.Entity(); e.Valid() {
		t.Error("zero Channel returned a valid entity")
	}
	if l := ch.Listener(); l.Valid() {
		t.Error("zero Channel returned a valid listener")
	}
	if r := ch.Room(); r.Valid() {
		t.Error("zero Channel returned a valid room")
	}

	var room Room
	var m WallMaterial
	if err := room.SetWallMaterials(m, m, m, m, m, m); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("Room.SetWallMaterials error = %v, want ErrNotLoaded", err)
	}

	var fs NativeFileSystem
	if err := fs.SetPlatformFileSystem(nil); !errors.Is(err, ErrNotLoaded) {
		t.Errorf("SetPlatformFileSystem error = %v, want ErrNotLoaded", err)
	}
}

// Building the callback tables must never panic: purego callbacks cannot
// take or return structs, so every slot is declared over register-sized
// words. The tables need no engine.
func TestCallbackTablesBuild(t *testing.T) {
	initChannelEventCallback()
	initFileVTable()
	initFilesystemVTable()
	initCodecVTables()

	if channelEventPtr == 0 {
		t.Error("channel event callback not built")
	}
	for i, ptr := range fileVTable {
		if ptr == 0 {
			t.Errorf("file vtable slot %d is zero", i)
		}
	}
	for i, ptr := range filesystemVTable {
		if ptr == 0 {
			t.Errorf("filesystem vtable slot %d is zero", i)
		}
	}
	for i, ptr := range codecVTable {
		if ptr == 0 {
			t.Errorf("codec vtable slot %d is zero", i)
		}
	}
	for i, ptr := range decoderVTable {
		if ptr == 0 {
			t.Errorf("decoder vtable slot %d is zero", i)
		}
	}
	for i, ptr := range encoderVTable {
		if ptr == 0 {
			t.Errorf("encoder vtable slot %d is zero", i)
		}
	}
}

func TestFileHandleFromWords(t *testing.T) {
	h := fileHandleFromWords(uintptr(FileTypeCustom), 0xdeadbeef)
	if FileType(h.Type) != FileTypeCustom {
		t.Errorf("Type = %d, want %d", h.Type, FileTypeCustom)
	}
	if h.Handle != 0xdeadbeef {
		t.Errorf("Handle = %#x, want 0xdeadbeef", h.Handle)
	}
}

func TestPoolTaskRuns(t *testing.T) {
	requireEngine(t)
	defer Shutdown()

	pool, err := NewPool(2)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}
	defer pool.Destroy()

	if got := pool.ThreadCount(); got != 2 {
		t.Errorf("ThreadCount = %d, want 2", got)
	}

	done := make(chan struct{})
	task, err := NewAwaitablePoolTask(func() { close(done) })
	if err != nil {
		t.Fatalf("NewAwaitablePoolTask: %v", err)
	}
	defer task.Destroy()

	if err := pool.AddAwaitableTask(task); err != nil {
		t.Fatalf("AddAwaitableTask: %v", err)
	}
	task.Await()

	select {
	case <-done:
	default:
		t.Error("task function did not run")
	}
}
