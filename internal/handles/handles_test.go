package handles

import (
	"sync"
	"testing"
)

type busState struct {
	ID   uint64
	Name string
}

type channelState struct {
	ID uint64
}

func TestRegisterAndLookup(t *testing.T) {
	tb := NewTable()

	bus := &busState{ID: 7, Name: "master"}
	h, err := Register(tb, bus)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if h == 0 {
		t.Fatal("Register returned zero handle")
	}

	got, ok := Lookup[busState](tb, h)
	if !ok {
		t.Fatal("Lookup failed for freshly registered handle")
	}
	if got != bus {
		t.Errorf("Lookup returned %p, want the registered object %p", got, bus)
	}
	if got.Name != "master" {
		t.Errorf("Lookup returned wrong data: %+v", got)
	}
}

func TestRegisterNil(t *testing.T) {
	tb := NewTable()

	h, err := Register[busState](tb, nil)
	if err != ErrNilObject {
		t.Errorf("Register(nil) error = %v, want ErrNilObject", err)
	}
	if h != 0 {
		t.Errorf("Register(nil) handle = %d, want 0", h)
	}
}

func TestRegisterIdempotent(t *testing.T) {
	tb := NewTable()

	bus := &busState{ID: 1}
	h1, err := Register(tb, bus)
	if err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	h2, err := Register(tb, bus)
	if err != nil {
		t.Fatalf("second Register failed: %v", err)
	}

	if h1 != h2 {
		t.Errorf("re-registering the same object returned %d, want %d", h2, h1)
	}
	if n := tb.Len(); n != 1 {
		t.Errorf("Len() = %d after double Register, want 1", n)
	}
}

func TestRegisterTypeConflict(t *testing.T) {
	tb := NewTable()

	// A struct and its first field share an address but not a type.
	type outer struct {
		inner busState
	}
	o := &outer{}

	if _, err := Register(tb, o); err != nil {
		t.Fatalf("Register(outer) failed: %v", err)
	}
	h, err := Register(tb, &o.inner)
	if err != ErrTypeConflict {
		t.Errorf("Register at same address with different type: err = %v, want ErrTypeConflict", err)
	}
	if h != 0 {
		t.Errorf("conflicting Register returned handle %d, want 0", h)
	}
	if n := tb.Len(); n != 1 {
		t.Errorf("Len() = %d after rejected Register, want 1", n)
	}
}

func TestLookupWrongType(t *testing.T) {
	tb := NewTable()

	h, err := Register(tb, &busState{ID: 3})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if got, ok := Lookup[channelState](tb, h); ok || got != nil {
		t.Error("Lookup with wrong type should report not found")
	}
	if Has[channelState](tb, h) {
		t.Error("Has with wrong type should be false")
	}

	// The same handle still resolves under the registered type.
	if _, ok := Lookup[busState](tb, h); !ok {
		t.Error("Lookup with registered type should still succeed")
	}
	if !Has[busState](tb, h) {
		t.Error("Has with registered type should be true")
	}
}

func TestLookupZeroAndUnknown(t *testing.T) {
	tb := NewTable()

	if _, ok := Lookup[busState](tb, 0); ok {
		t.Error("Lookup(0) should report not found")
	}
	if _, ok := Lookup[busState](tb, 999999); ok {
		t.Error("Lookup of unknown handle should report not found")
	}
	if tb.Contains(0) {
		t.Error("Contains(0) should be false")
	}
	if Has[busState](tb, 0) {
		t.Error("Has(0) should be false")
	}
	if Remove[busState](tb, 0) {
		t.Error("Remove(0) should be false")
	}
}

func TestRemove(t *testing.T) {
	tb := NewTable()

	bus := &busState{ID: 4}
	h, err := Register(tb, bus)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if !Remove[busState](tb, h) {
		t.Fatal("Remove of live handle should succeed")
	}

	if _, ok := Lookup[busState](tb, h); ok {
		t.Error("Lookup after Remove should report not found")
	}
	if Has[busState](tb, h) {
		t.Error("Has after Remove should be false")
	}
	if tb.Contains(h) {
		t.Error("Contains after Remove should be false")
	}
	if Remove[busState](tb, h) {
		t.Error("second Remove should be a no-op returning false")
	}
	if n := tb.Len(); n != 0 {
		t.Errorf("Len() = %d after Remove, want 0", n)
	}
}

func TestRemoveWrongType(t *testing.T) {
	tb := NewTable()

	h, err := Register(tb, &busState{ID: 5})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if Remove[channelState](tb, h) {
		t.Error("Remove with wrong type should fail")
	}
	if !tb.Contains(h) {
		t.Error("entry should survive a wrong-typed Remove")
	}
	if !Remove[busState](tb, h) {
		t.Error("Remove with registered type should succeed")
	}
}

// Removing and re-registering must never resurrect an old handle: the handle
// counter is monotonic, so a stale handle stays dead even when the address of
// its object is reused.
func TestStaleHandleNeverAliases(t *testing.T) {
	tb := NewTable()

	bus := &busState{ID: 6}
	h1, err := Register(tb, bus)
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	Remove[busState](tb, h1)

	// Re-register the very same object: same address, new handle.
	h2, err := Register(tb, bus)
	if err != nil {
		t.Fatalf("re-Register failed: %v", err)
	}
	if h1 == h2 {
		t.Errorf("handle %d was reused after Remove", h1)
	}
	if _, ok := Lookup[busState](tb, h1); ok {
		t.Error("stale handle resolved after re-registration")
	}
	if _, ok := Lookup[busState](tb, h2); !ok {
		t.Error("fresh handle should resolve")
	}
}

func TestClear(t *testing.T) {
	tb := NewTable()

	var hs []Handle
	for i := 0; i < 10; i++ {
		h, err := Register(tb, &busState{ID: uint64(i)})
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		hs = append(hs, h)
	}
	if n := tb.Len(); n != 10 {
		t.Fatalf("Len() = %d, want 10", n)
	}

	tb.Clear()

	if n := tb.Len(); n != 0 {
		t.Errorf("Len() = %d after Clear, want 0", n)
	}
	for _, h := range hs {
		if _, ok := Lookup[busState](tb, h); ok {
			t.Errorf("handle %d resolved after Clear", h)
		}
	}

	// Clear is idempotent.
	tb.Clear()
	if n := tb.Len(); n != 0 {
		t.Errorf("Len() = %d after second Clear, want 0", n)
	}
}

func TestDefaultTableIsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() should return the same table every call")
	}
}

func TestConcurrentReaders(t *testing.T) {
	tb := NewTable()

	const numObjects = 64
	objs := make([]*busState, numObjects)
	hs := make([]Handle, numObjects)
	for i := range objs {
		objs[i] = &busState{ID: uint64(i)}
		h, err := Register(tb, objs[i])
		if err != nil {
			t.Fatalf("Register failed: %v", err)
		}
		hs[i] = h
	}

	const numReaders = 16
	var wg sync.WaitGroup
	wg.Add(numReaders)
	for r := 0; r < numReaders; r++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				i := j % numObjects
				got, ok := Lookup[busState](tb, hs[i])
				if !ok || got != objs[i] {
					t.Errorf("concurrent Lookup of handle %d returned wrong object", hs[i])
					return
				}
				if !Has[busState](tb, hs[i]) {
					t.Errorf("concurrent Has of handle %d failed", hs[i])
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestConcurrentRegister(t *testing.T) {
	tb := NewTable()

	const numGoroutines = 8
	const perGoroutine = 125 // 1000 objects total

	handleSets := make([][]Handle, numGoroutines)
	objSets := make([][]*channelState, numGoroutines)

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				obj := &channelState{ID: uint64(g*perGoroutine + i)}
				h, err := Register(tb, obj)
				if err != nil {
					t.Errorf("concurrent Register failed: %v", err)
					return
				}
				handleSets[g] = append(handleSets[g], h)
				objSets[g] = append(objSets[g], obj)
			}
		}(g)
	}
	wg.Wait()

	if n := tb.Len(); n != numGoroutines*perGoroutine {
		t.Fatalf("Len() = %d, want %d", n, numGoroutines*perGoroutine)
	}

	seen := make(map[Handle]bool)
	for g := 0; g < numGoroutines; g++ {
		for i, h := range handleSets[g] {
			if seen[h] {
				t.Fatalf("handle %d issued twice", h)
			}
			seen[h] = true

			got, ok := Lookup[channelState](tb, h)
			if !ok || got != objSets[g][i] {
				t.Fatalf("handle %d resolved to the wrong object", h)
			}
		}
	}
}

func TestConcurrentMixed(t *testing.T) {
	tb := NewTable()

	const numGoroutines = 8
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := 0; g < numGoroutines; g++ {
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				obj := &busState{ID: uint64(g)}
				h, err := Register(tb, obj)
				if err != nil {
					t.Errorf("Register failed: %v", err)
					return
				}
				if got, ok := Lookup[busState](tb, h); !ok || got != obj {
					t.Errorf("Lookup of own handle failed")
					return
				}
				tb.Contains(h)
				if !Remove[busState](tb, h) {
					t.Errorf("Remove of own handle failed")
					return
				}
			}
		}(g)
	}
	wg.Wait()

	if n := tb.Len(); n != 0 {
		t.Errorf("Len() = %d after balanced register/remove, want 0", n)
	}
}

func BenchmarkLookup(b *testing.B) {
	tb := NewTable()
	h, _ := Register(tb, &busState{ID: 1})

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			Lookup[busState](tb, h)
		}
	})
}

func BenchmarkRegisterRemove(b *testing.B) {
	tb := NewTable()
	obj := &busState{ID: 1}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h, _ := Register(tb, obj)
		Remove[busState](tb, h)
	}
}
