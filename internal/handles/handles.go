// Package handles provides a thread-safe, type-checked handle table for
// bridging Go objects across the Amplitude C API boundary.
//
// The engine keeps opaque pointers to Go objects (filesystem vtables, codec
// instances, pool tasks, event callback state). Go pointers cannot be stored
// in C memory, so each object is registered here and represented outside the
// Go heap by an opaque Handle. The table holds a reference to every registered
// object, keeping it alive until it is removed; callers holding a Handle
// resolve it back with Lookup for the duration of a call.
//
// Every object is registered under its concrete type, and every lookup must
// name that type again. A lookup with the wrong type behaves exactly like a
// lookup of an unknown handle. This is what lets many unrelated object kinds
// share one handle space without the C side ever seeing a Go type.
//
// Handles are minted from a monotonic counter that is never reset, not from
// the object's address. A removed handle therefore never aliases an object
// registered later, even if the allocator reuses the address.
package handles

import (
	"errors"
	"reflect"
	"sync"
	"unsafe"
)

// Handle is an opaque identifier for a registered object. It is sized to
// travel through C as a void* or uintptr. The zero Handle is never issued
// and always resolves as not found.
type Handle uintptr

// ErrNilObject is returned when a nil object is registered.
var ErrNilObject = errors.New("ampgo: cannot register nil object")

// ErrTypeConflict is returned when the same object is registered under two
// different types. Correct callers never trigger this; it indicates the same
// address is being claimed as two incompatible kinds.
var ErrTypeConflict = errors.New("ampgo: object already registered with a different type")

type entry struct {
	value any          // keeps the object alive while registered
	typ   reflect.Type // concrete pointer type captured at Register time
	addr  uintptr      // identity of the underlying object
}

// Table maps handles to live, type-tagged Go objects.
//
// A single RWMutex guards both indexes. Lookup, Has and Contains take the
// lock shared; Register, Remove and Clear take it exclusive. The lock is
// never held across user code.
type Table struct {
	mu      sync.RWMutex
	entries map[Handle]entry
	byAddr  map[uintptr]Handle // identity -> handle, for idempotent Register
	nextID  uintptr            // guarded by mu; never reset, 0 reserved invalid
}

// NewTable returns an empty handle table.
func NewTable() *Table {
	return &Table{
		entries: make(map[Handle]entry),
		byAddr:  make(map[uintptr]Handle),
		nextID:  1,
	}
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide handle table, creating it on first use.
// The binding layer shares this one table; subsystems that can take a *Table
// explicitly should, and reserve Default for the outermost API functions.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}

// Register stores obj in the table and returns its handle.
//
// Registering the same object under the same type again is idempotent and
// returns the original handle without creating a second entry. Registering
// the same object under a different type fails with ErrTypeConflict.
//
// After a successful Register, Lookup with the same type succeeds until a
// matching Remove.
func Register[T any](t *Table, obj *T) (Handle, error) {
	if obj == nil {
		return 0, ErrNilObject
	}

	typ := reflect.TypeOf(obj)
	addr := uintptr(unsafe.Pointer(obj))

	t.mu.Lock()
	defer t.mu.Unlock()

	if h, ok := t.byAddr[addr]; ok {
		if t.entries[h].typ == typ {
			return h, nil
		}
		return 0, ErrTypeConflict
	}

	h := Handle(t.nextID)
	t.nextID++
	t.entries[h] = entry{value: obj, typ: typ, addr: addr}
	t.byAddr[addr] = h
	return h, nil
}

// Lookup resolves a handle back to the registered object.
//
// Returns (nil, false) when the handle is zero, unknown, or registered under
// a different type; the three cases are indistinguishable to the caller.
// Lookup never mutates the table.
func Lookup[T any](t *Table, h Handle) (*T, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	e, ok := t.entries[h]
	t.mu.RUnlock()

	if !ok || e.typ != reflect.TypeOf((*T)(nil)) {
		return nil, false
	}
	return e.value.(*T), true
}

// Remove erases a handle, dropping the table's reference to the object. The
// object survives as long as any other holder references it.
//
// Returns false when the handle is zero, unknown, already removed, or
// registered under a different type. Removing an absent handle is a no-op.
func Remove[T any](t *Table, h Handle) bool {
	if h == 0 {
		return false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[h]
	if !ok || e.typ != reflect.TypeOf((*T)(nil)) {
		return false
	}
	delete(t.entries, h)
	delete(t.byAddr, e.addr)
	return true
}

// Has reports whether h is registered under type T, without handing out a
// reference.
func Has[T any](t *Table, h Handle) bool {
	if h == 0 {
		return false
	}

	t.mu.RLock()
	e, ok := t.entries[h]
	t.mu.RUnlock()

	return ok && e.typ == reflect.TypeOf((*T)(nil))
}

// Contains reports whether h is registered, regardless of type.
func (t *Table) Contains(h Handle) bool {
	if h == 0 {
		return false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()
	_, ok := t.entries[h]
	return ok
}

// Clear drops every entry. Intended for shutdown only: the caller must
// guarantee no concurrent handle operations are in flight. Clearing an empty
// table is a no-op. The handle counter is not reset, so handles from before
// a Clear never resolve again.
func (t *Table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[Handle]entry)
	t.byAddr = make(map[uintptr]Handle)
}

// Len returns the number of live entries. Diagnostic only.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
