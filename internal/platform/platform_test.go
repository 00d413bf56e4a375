//go:build !ios && !android && (amd64 || arm64)

package platform

import (
	"runtime"
	"testing"
)

func TestSupportsStructByValue(t *testing.T) {
	if runtime.GOOS == "darwin" && (runtime.GOARCH == "amd64" || runtime.GOARCH == "arm64") {
		if !SupportsStructByValue {
			t.Error("Darwin amd64/arm64 should support struct by value")
		}
	} else {
		if SupportsStructByValue {
			t.Errorf("%s/%s should not support struct by value", runtime.GOOS, runtime.GOARCH)
		}
	}
}

func TestIs64Bit(t *testing.T) {
	if !Is64Bit {
		t.Error("Platform should be 64-bit")
	}
}

func TestFormatLibraryName(t *testing.T) {
	name := FormatLibraryName("Amplitude")

	switch runtime.GOOS {
	case "darwin":
		if name != "libAmplitude.dylib" {
			t.Errorf("name = %q", name)
		}
	case "windows":
		if name != "Amplitude.dll" {
			t.Errorf("name = %q", name)
		}
	default:
		if name != "libAmplitude.so" {
			t.Errorf("name = %q", name)
		}
	}
}

func TestLibraryPrefix(t *testing.T) {
	switch runtime.GOOS {
	case "windows":
		if LibraryPrefix != "" {
			t.Errorf("expected empty prefix on Windows, got %s", LibraryPrefix)
		}
	default:
		if LibraryPrefix != "lib" {
			t.Errorf("expected 'lib' prefix, got %s", LibraryPrefix)
		}
	}
}
