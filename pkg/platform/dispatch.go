// Package platform connects recycler components to the host's UI-thread
// event loop.
//
// Hosts register their event loop once at startup via [RegisterDispatch].
// Components that defer work to the UI thread either call [Dispatch]
// directly or hold a [Queue], which is the injectable form of the same
// contract. [SingleTask] builds the coalescing primitive the viewport
// tracker's debounced re-evaluation relies on.
package platform

import "sync"

var (
	dispatchMu   sync.RWMutex
	dispatchFunc func(callback func())
)

// RegisterDispatch sets the dispatch function used to schedule callbacks on
// the UI thread. This should be called once by the host during initialization,
// before any trackers or binders are constructed.
func RegisterDispatch(fn func(callback func())) {
	dispatchMu.Lock()
	dispatchFunc = fn
	dispatchMu.Unlock()
}

// Dispatch schedules a callback to run on the UI thread.
// Returns true if the callback was successfully scheduled, false if no
// dispatch function is registered or the callback is nil.
func Dispatch(callback func()) bool {
	dispatchMu.RLock()
	fn := dispatchFunc
	dispatchMu.RUnlock()
	if fn == nil || callback == nil {
		return false
	}
	fn(callback)
	return true
}

// Queue posts tasks to the UI thread. It is the injectable handle used
// by components that would otherwise reach for the package-level
// Dispatch, so tests can substitute a deterministic queue.
type Queue interface {
	// Dispatch schedules task on the UI thread, returning false if the
	// queue cannot accept it.
	Dispatch(task func()) bool
}

// mainQueue adapts the registered package-level dispatcher to Queue.
type mainQueue struct{}

func (mainQueue) Dispatch(task func()) bool { return Dispatch(task) }

// Main returns the Queue backed by the dispatcher registered with
// RegisterDispatch.
func Main() Queue { return mainQueue{} }
