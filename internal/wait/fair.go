// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wait

import "sync"

// FairMutex is a mutual-exclusion lock granting ownership in FIFO order.
//
// Unlock hands the lock to the oldest blocked locker instead of releasing
// it, so a newcomer can never barge ahead of a parked goroutine. The cost
// is a context switch per contended hand-off.
//
// The zero value is an unlocked mutex.
type FairMutex struct {
	mu      sync.Mutex
	locked  bool
	waiters []chan struct{}
}

// Lock acquires m, parking the caller behind earlier lockers.
func (m *FairMutex) Lock() {
	m.mu.Lock()
	if !m.locked {
		m.locked = true
		m.mu.Unlock()
		return
	}
	ch := make(chan struct{})
	m.waiters = append(m.waiters, ch)
	m.mu.Unlock()
	<-ch // ownership handed over by Unlock
}

// TryLock acquires m only if it is free and nobody is queued.
func (m *FairMutex) TryLock() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.locked {
		return false
	}
	m.locked = true
	return true
}

// Waiting returns the number of goroutines queued for m.
func (m *FairMutex) Waiting() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.waiters)
}

// Unlock releases m or passes it to the next queued locker.
// Panics if m is not locked.
func (m *FairMutex) Unlock() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.locked {
		panic("wait: unlock of unlocked FairMutex")
	}
	if len(m.waiters) == 0 {
		m.locked = false
		return
	}
	next := m.waiters[0]
	m.waiters[0] = nil
	m.waiters = m.waiters[1:]
	close(next)
}
