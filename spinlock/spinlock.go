// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spinlock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"code.hybscloud.com/atomix"
)

// SpinLock is a non-reentrant busy-waiting mutual exclusion lock.
//
// State machine over the owner slot:
//
//	Unlocked    --TryLock(g)-->  Locked(g)
//	Locked(x)   --TryLock(g)-->  Locked(x), fails for g != x
//	Locked(g)   --Unlock(g)-->   Unlocked
//	Locked(x)   --Unlock(g)-->   Locked(x), ErrNotOwner for g != x
//
// A goroutine calling Lock on a SpinLock it already holds spins forever.
// Use [ReentrantSpinLock] for nested acquisition.
//
// The zero value is an unlocked SpinLock. A SpinLock must not be copied
// after first use.
type SpinLock struct {
	_     pad
	owner atomix.Int64 // goroutine id of the holder, noGoroutine when free
	_     padShort
}

// TryLock acquires l if it is free. Never waits.
func (l *SpinLock) TryLock() bool {
	return l.owner.CompareAndSwapAcqRel(noGoroutine, callerID())
}

// Lock spins until l is acquired.
func (l *SpinLock) Lock() {
	spinLock(l.TryLock)
}

// LockContext spins until l is acquired or ctx is done.
func (l *SpinLock) LockContext(ctx context.Context) error {
	return spinContext(ctx, l.TryLock)
}

// TryLockTimeout spins until l is acquired, timeout elapses or ctx is done.
func (l *SpinLock) TryLockTimeout(ctx context.Context, timeout time.Duration) (bool, error) {
	return spinTimeout(ctx, timeout, l.TryLock)
}

// Unlock releases l. Panics with an error wrapping [ErrNotOwner] if the
// calling goroutine does not hold l; the lock is left untouched.
func (l *SpinLock) Unlock() {
	if err := l.Release(); err != nil {
		panic(err)
	}
}

// Release releases l, or returns an error wrapping [ErrNotOwner] if the
// calling goroutine does not hold it.
func (l *SpinLock) Release() error {
	caller := callerID()
	if !l.owner.CompareAndSwapAcqRel(caller, noGoroutine) {
		return fmt.Errorf("%w: goroutine %d tried to unlock %v", ErrNotOwner, caller, l)
	}
	return nil
}

// NewCond returns ErrCondUnsupported.
func (l *SpinLock) NewCond() (*sync.Cond, error) {
	return nil, ErrCondUnsupported
}

// Owner returns the id of the goroutine holding l, or 0 if l is free.
// The result is a snapshot for diagnostics.
func (l *SpinLock) Owner() int64 {
	return l.owner.LoadAcquire()
}

// String reports the current owner, best effort.
func (l *SpinLock) String() string {
	return fmt.Sprintf("SpinLock[owner=%d]", l.owner.LoadRelaxed())
}

// pad is cache line padding to prevent false sharing.
type pad [64]byte

// padShort is padding to fill cache line after 8-byte field.
type padShort [64 - 8]byte
