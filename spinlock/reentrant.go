// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spinlock

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
)

// MaxDepth is the deepest nesting a [ReentrantSpinLock] accepts.
const MaxDepth = math.MaxInt32

// ReentrantSpinLock is a busy-waiting lock its owner may acquire repeatedly.
//
// State machine over (owner, depth):
//
//	Unlocked        --acquire(g)-->  Locked(g, 1)
//	Locked(g, d)    --acquire(g)-->  Locked(g, d+1), ErrDepthOverflow at MaxDepth
//	Locked(g, d>1)  --release(g)-->  Locked(g, d-1)
//	Locked(g, 1)    --release(g)-->  Unlocked
//	Locked(x, d)    --acquire(g)-->  fails for g != x
//	Locked(x, d)    --release(g)-->  ErrNotOwner for g != x
//
// Only the owner reads or writes depth, so it needs no atomics: the owner
// slot CAS that hands the lock over also publishes the final depth (zero)
// to the next owner.
//
// The zero value is an unlocked ReentrantSpinLock. A ReentrantSpinLock
// must not be copied after first use.
type ReentrantSpinLock struct {
	_     pad
	owner atomix.Int64 // goroutine id of the holder, noGoroutine when free
	depth int32        // owner-only; 0 iff owner == noGoroutine
	_     [64 - 8 - 4]byte
}

// TryLock acquires l if it is free or already held by the caller.
// Never waits. Panics with an error wrapping [ErrDepthOverflow] if the
// caller already holds l MaxDepth times.
func (l *ReentrantSpinLock) TryLock() bool {
	caller := callerID()
	if l.owner.CompareAndSwapAcqRel(noGoroutine, caller) {
		l.depth = 1
		return true
	}
	// Only the caller itself can have stored its own id, so this check
	// cannot be invalidated by other goroutines.
	if l.owner.LoadRelaxed() != caller {
		return false
	}
	if l.depth == MaxDepth {
		panic(fmt.Errorf("%w: %v", ErrDepthOverflow, l))
	}
	l.depth++
	return true
}

// Lock spins until l is acquired.
func (l *ReentrantSpinLock) Lock() {
	spinLock(l.TryLock)
}

// LockContext spins until l is acquired or ctx is done.
func (l *ReentrantSpinLock) LockContext(ctx context.Context) error {
	return spinContext(ctx, l.TryLock)
}

// TryLockTimeout spins until l is acquired, timeout elapses or ctx is done.
func (l *ReentrantSpinLock) TryLockTimeout(ctx context.Context, timeout time.Duration) (bool, error) {
	return spinTimeout(ctx, timeout, l.TryLock)
}

// Unlock undoes one acquisition and frees l when the depth reaches zero.
// Panics with an error wrapping [ErrNotOwner] if the calling goroutine
// does not hold l; the lock is left untouched.
func (l *ReentrantSpinLock) Unlock() {
	if err := l.Release(); err != nil {
		panic(err)
	}
}

// Release is Unlock returning misuse as an error.
func (l *ReentrantSpinLock) Release() error {
	caller := callerID()
	if l.owner.LoadRelaxed() != caller {
		return fmt.Errorf("%w: goroutine %d tried to unlock %v", ErrNotOwner, caller, l)
	}
	l.depth--
	if l.depth == 0 {
		l.owner.StoreRelease(noGoroutine)
	}
	return nil
}

// NewCond returns ErrCondUnsupported.
func (l *ReentrantSpinLock) NewCond() (*sync.Cond, error) {
	return nil, ErrCondUnsupported
}

// Owner returns the id of the goroutine holding l, or 0 if l is free.
// The result is a snapshot for diagnostics.
func (l *ReentrantSpinLock) Owner() int64 {
	return l.owner.LoadAcquire()
}

// Depth returns the caller's acquisition depth: 0 unless the calling
// goroutine holds l.
func (l *ReentrantSpinLock) Depth() int {
	if l.owner.LoadRelaxed() != callerID() {
		return 0
	}
	return int(l.depth)
}

// String reports the current owner, best effort.
func (l *ReentrantSpinLock) String() string {
	return fmt.Sprintf("ReentrantSpinLock[owner=%d]", l.owner.LoadRelaxed())
}
