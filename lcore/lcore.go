// File: lcore/lcore.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral registry. Thread identity comes from the per-platform
// threadID implementation (lcore_linux.go, lcore_stub.go).

package lcore

import (
	"runtime"
	"sync"

	"github.com/momentics/hioload-pkt/api"
)

var (
	mu       sync.RWMutex
	byThread = make(map[int]uint)
	taken    = make(map[uint]int)
	mainID   = api.LcoreIDAny
)

// Init registers the calling goroutine's thread as the main lcore. It
// locks the goroutine to its OS thread for the lifetime of the worker.
func Init(id uint) error {
	if err := Register(id); err != nil {
		return err
	}
	mu.Lock()
	mainID = id
	mu.Unlock()
	return nil
}

// Register binds the calling goroutine to logical core id. The goroutine
// is locked to its OS thread; the id stays stable until Unregister.
func Register(id uint) error {
	if id >= api.MaxLcore {
		return api.ErrInvalidArgument
	}
	runtime.LockOSThread()
	tid := threadID()
	mu.Lock()
	defer mu.Unlock()
	if _, dup := taken[id]; dup {
		runtime.UnlockOSThread()
		return api.ErrLcoreAlreadyRegistered
	}
	if _, bound := byThread[tid]; bound {
		runtime.UnlockOSThread()
		return api.ErrLcoreAlreadyRegistered
	}
	byThread[tid] = id
	taken[id] = tid
	return nil
}

// Unregister releases the calling thread's logical core binding.
func Unregister() {
	tid := threadID()
	mu.Lock()
	if id, ok := byThread[tid]; ok {
		delete(byThread, tid)
		delete(taken, id)
		if id == mainID {
			mainID = api.LcoreIDAny
		}
	}
	mu.Unlock()
	runtime.UnlockOSThread()
}

// Current returns the calling worker's logical core id. ok is false (and
// the id is api.LcoreIDAny) on threads that never registered.
func Current() (uint, bool) {
	tid := threadID()
	mu.RLock()
	id, ok := byThread[tid]
	mu.RUnlock()
	if !ok {
		return api.LcoreIDAny, false
	}
	return id, true
}

// Main returns the coordinating core chosen at Init, or api.LcoreIDAny
// before Init.
func Main() uint {
	mu.RLock()
	defer mu.RUnlock()
	return mainID
}

// IsMain reports whether the calling worker is the main lcore.
func IsMain() bool {
	id, ok := Current()
	return ok && id == Main()
}

// Count returns the number of registered logical cores.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(taken)
}
