//go:build !ios && !android && (amd64 || arm64)

package ampgo

import (
	"sync"
	"time"

	"github.com/ebitengine/purego"

	"github.com/obinnaokechukwu/ampgo/internal/bindings"
	"github.com/obinnaokechukwu/ampgo/internal/handles"
)

// Sleep suspends the calling engine thread for the given duration.
func Sleep(d time.Duration) {
	if !bindings.IsLoaded() {
		time.Sleep(d)
		return
	}
	bindings.ThreadSleep(int32(d.Milliseconds()))
}

// CurrentThreadID returns the engine identifier of the calling thread.
func CurrentThreadID() uint64 {
	if !bindings.IsLoaded() {
		return 0
	}
	return bindings.ThreadGetID()
}

// taskState holds the Go function a native pool task runs. It stays in the
// bridge table from task creation until the task is destroyed, so the work
// trampoline can always reach it.
type taskState struct {
	fn func()
}

// The work trampolines are shared by every task; the native task param
// carries a handle into the bridge table.
var (
	taskCallbackOnce sync.Once
	taskWorkPtr      uintptr
	awaitableWorkPtr uintptr
)

func initTaskCallbacks() {
	taskCallbackOnce.Do(func() {
		// void proc(am_thread_pool_task_handle task, am_voidptr param)
		taskWorkPtr = purego.NewCallback(func(task, param uintptr) uintptr {
			if state, ok := handles.Lookup[taskState](handles.Default(), handles.Handle(param)); ok && state.fn != nil {
				state.fn()
			}
			return 0
		})
		awaitableWorkPtr = purego.NewCallback(func(task, param uintptr) uintptr {
			if state, ok := handles.Lookup[taskState](handles.Default(), handles.Handle(param)); ok && state.fn != nil {
				state.fn()
			}
			return 0
		})
	})
}

// Pool is an engine thread pool.
type Pool struct {
	ptr uintptr
}

// NewPool creates an engine thread pool with threadCount worker threads.
func NewPool(threadCount uint32) (*Pool, error) {
	if !bindings.IsLoaded() {
		return nil, ErrNotLoaded
	}
	ptr := bindings.ThreadPoolCreate(threadCount)
	if ptr == 0 {
		return nil, ErrInvalidHandle
	}
	return &Pool{ptr: ptr}, nil
}

// ThreadCount returns the number of worker threads in the pool.
func (p *Pool) ThreadCount() uint32 {
	if p.ptr == 0 || !bindings.IsLoaded() {
		return 0
	}
	return bindings.ThreadPoolGetThreadCount(p.ptr)
}

// Running reports whether the pool worker threads are running.
func (p *Pool) Running() bool {
	if p.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.ThreadPoolIsRunning(p.ptr))
}

// HasTasks reports whether the pool has pending tasks.
func (p *Pool) HasTasks() bool {
	if p.ptr == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.ThreadPoolHasTasks(p.ptr))
}

// AddTask schedules a task on the pool.
func (p *Pool) AddTask(t *PoolTask) error {
	if p.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if t == nil || t.native == 0 {
		return ErrInvalidHandle
	}
	bindings.ThreadPoolAddTask(p.ptr, t.native)
	return nil
}

// AddAwaitableTask schedules an awaitable task on the pool.
func (p *Pool) AddAwaitableTask(t *AwaitablePoolTask) error {
	if p.ptr == 0 || !bindings.IsLoaded() {
		return ErrNotLoaded
	}
	if t == nil || t.native == 0 {
		return ErrInvalidHandle
	}
	bindings.ThreadPoolAddTaskAwaitable(p.ptr, t.native)
	return nil
}

// Destroy stops the pool and destroys it. The pool is unusable afterwards.
func (p *Pool) Destroy() {
	if p.ptr != 0 && bindings.IsLoaded() {
		bindings.ThreadPoolDestroy(p.ptr)
	}
	p.ptr = 0
}

// PoolTask is a unit of work scheduled on a Pool. The task function stays
// reachable through the bridge table until Destroy.
type PoolTask struct {
	native uintptr
	bridge handles.Handle
}

// NewPoolTask creates a pool task running fn.
func NewPoolTask(fn func()) (*PoolTask, error) {
	native, bridge, err := newTask(fn, bindings.ThreadPoolTaskCreate, func() uintptr { return taskWorkPtr })
	if err != nil {
		return nil, err
	}
	return &PoolTask{native: native, bridge: bridge}, nil
}

// Ready reports whether the task has been marked ready.
func (t *PoolTask) Ready() bool {
	if t.native == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.ThreadPoolTaskGetReady(t.native))
}

// SetReady marks the task as ready.
func (t *PoolTask) SetReady() {
	if t.native == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ThreadPoolTaskSetReady(t.native)
}

// Destroy releases the native task and drops its bridge record. The task
// is unusable afterwards.
func (t *PoolTask) Destroy() {
	if t.native != 0 && bindings.IsLoaded() {
		bindings.ThreadPoolTaskDestroy(t.native)
	}
	t.native = 0
	if t.bridge != 0 {
		handles.Remove[taskState](handles.Default(), t.bridge)
		t.bridge = 0
	}
}

// AwaitablePoolTask is a pool task that can be waited on.
type AwaitablePoolTask struct {
	native uintptr
	bridge handles.Handle
}

// NewAwaitablePoolTask creates an awaitable pool task running fn.
func NewAwaitablePoolTask(fn func()) (*AwaitablePoolTask, error) {
	native, bridge, err := newTask(fn, bindings.ThreadPoolTaskAwaitableCreate, func() uintptr { return awaitableWorkPtr })
	if err != nil {
		return nil, err
	}
	return &AwaitablePoolTask{native: native, bridge: bridge}, nil
}

// Ready reports whether the task has been marked ready.
func (t *AwaitablePoolTask) Ready() bool {
	if t.native == 0 || !bindings.IsLoaded() {
		return false
	}
	return toBool(bindings.ThreadPoolTaskAwaitableGetReady(t.native))
}

// SetReady marks the task as ready.
func (t *AwaitablePoolTask) SetReady() {
	if t.native == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ThreadPoolTaskAwaitableSetReady(t.native)
}

// Await blocks until the task completes.
func (t *AwaitablePoolTask) Await() {
	if t.native == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ThreadPoolTaskAwaitableAwait(t.native)
}

// AwaitFor blocks until the task completes or the timeout elapses.
func (t *AwaitablePoolTask) AwaitFor(timeout time.Duration) {
	if t.native == 0 || !bindings.IsLoaded() {
		return
	}
	bindings.ThreadPoolTaskAwaitableAwaitFor(t.native, uint64(timeout.Milliseconds()))
}

// Destroy releases the native task and drops its bridge record. The task
// is unusable afterwards.
func (t *AwaitablePoolTask) Destroy() {
	if t.native != 0 && bindings.IsLoaded() {
		bindings.ThreadPoolTaskAwaitableDestroy(t.native)
	}
	t.native = 0
	if t.bridge != 0 {
		handles.Remove[taskState](handles.Default(), t.bridge)
		t.bridge = 0
	}
}

func newTask(fn func(), create func(proc, param uintptr) uintptr, work func() uintptr) (uintptr, handles.Handle, error) {
	if fn == nil {
		return 0, 0, ErrNilObject
	}
	if !bindings.IsLoaded() {
		return 0, 0, ErrNotLoaded
	}

	initTaskCallbacks()

	state := &taskState{fn: fn}
	h, err := handles.Register(handles.Default(), state)
	if err != nil {
		return 0, 0, err
	}

	native := create(work(), uintptr(h))
	if native == 0 {
		handles.Remove[taskState](handles.Default(), h)
		return 0, 0, ErrInvalidHandle
	}
	return native, h, nil
}
