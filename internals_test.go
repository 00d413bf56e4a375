//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"testing"
	"unsafe"
)

func TestBoolConversion(t *testing.T) {
	if !toBool(1) || !toBool(42) {
		t.Error("toBool(non-zero) = false")
	}
	if toBool(0) {
		t.Error("toBool(0) = true")
	}
	if fromBool(true) != 1 || fromBool(false) != 0 {
		t.Error("fromBool mismatch")
	}
}

func TestGoString(t *testing.T) {
	buf := []byte("hello\x00garbage")
	got := goString(uintptr(unsafe.Pointer(&buf[0])))
	if got != "hello" {
		t.Errorf("goString = %q, want %q", got, "hello")
	}

	if got := goString(0); got != "" {
		t.Errorf("goString(0) = %q, want empty", got)
	}
}

func TestCString(t *testing.T) {
	buf := cString("abc")
	if len(buf) != 4 || buf[3] != 0 {
		t.Errorf("cString not NUL terminated: %v", buf)
	}
	if string(buf[:3]) != "abc" {
		t.Errorf("cString content = %q", buf[:3])
	}

	empty := cString("")
	if len(empty) != 1 || empty[0] != 0 {
		t.Errorf("cString(\"\") = %v, want single NUL", empty)
	}
}
