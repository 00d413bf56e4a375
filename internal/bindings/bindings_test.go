//go:build !ios && !android && (amd64 || arm64)

package bindings

import (
	"errors"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLibrarySearchPathsEnvPrecedence(t *testing.T) {
	t.Setenv("AMPLITUDE_LIBRARY_PATH", filepath.Join("/opt", "amplitude", "lib"))

	paths := LibrarySearchPaths()
	if len(paths) == 0 {
		t.Fatal("LibrarySearchPaths returned no paths")
	}
	if paths[0] != filepath.Join("/opt", "amplitude", "lib") {
		t.Errorf("AMPLITUDE_LIBRARY_PATH should come first, got %q", paths[0])
	}
}

func TestLibrarySearchPathsDefaults(t *testing.T) {
	paths := LibrarySearchPaths()

	switch runtime.GOOS {
	case "linux", "darwin":
		if len(paths) == 0 {
			t.Error("expected default search paths")
		}
	}
}

func TestFindLibraryNotFound(t *testing.T) {
	_, err := FindLibrary("DefinitelyNotAmplitude")
	if !errors.Is(err, ErrLibraryNotFound) {
		t.Errorf("FindLibrary error = %v, want ErrLibraryNotFound", err)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	err1 := Load()
	err2 := Load()
	if (err1 == nil) != (err2 == nil) {
		t.Errorf("Load results differ across calls: %v vs %v", err1, err2)
	}
	if err1 == nil && !IsLoaded() {
		t.Error("IsLoaded false after successful Load")
	}
}
