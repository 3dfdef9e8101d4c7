// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spinlock

import (
	"context"
	"sync"
	"time"

	"code.hybscloud.com/spin"
	"github.com/petermattis/goid"
)

// Locker is the full acquisition surface shared by both spin locks.
type Locker interface {
	sync.Locker

	// TryLock acquires the lock if it is free, without waiting.
	TryLock() bool

	// LockContext spins until the lock is acquired or ctx is done.
	// Returns ctx.Err() without the lock on cancellation.
	LockContext(ctx context.Context) error

	// TryLockTimeout spins until the lock is acquired, the timeout
	// elapses, or ctx is done. Returns (false, nil) on timeout and
	// (false, ctx.Err()) on cancellation.
	TryLockTimeout(ctx context.Context, timeout time.Duration) (bool, error)

	// Release is Unlock reporting misuse as an error instead of panicking.
	Release() error

	// NewCond always returns ErrCondUnsupported.
	NewCond() (*sync.Cond, error)
}

var (
	_ Locker = (*SpinLock)(nil)
	_ Locker = (*ReentrantSpinLock)(nil)
)

// noGoroutine marks an empty owner slot; goroutine ids start at 1.
const noGoroutine int64 = 0

// callerID returns the id of the calling goroutine.
// Panics if the identity source yields noGoroutine, which would let a CAS
// on a free owner slot succeed without taking the lock.
func callerID() int64 {
	id := goid.Get()
	if id == noGoroutine {
		panic("spinlock: goroutine id unavailable")
	}
	return id
}

// spinLock spins on try until it succeeds.
func spinLock(try func() bool) {
	sw := spin.Wait{}
	for !try() {
		sw.Once()
	}
}

// spinContext spins on try until it succeeds or ctx is done.
func spinContext(ctx context.Context, try func() bool) error {
	sw := spin.Wait{}
	for !try() {
		if err := ctx.Err(); err != nil {
			return err
		}
		sw.Once()
	}
	return nil
}

// spinTimeout spins on try until it succeeds, the monotonic deadline
// passes, or ctx is done.
func spinTimeout(ctx context.Context, timeout time.Duration, try func() bool) (bool, error) {
	deadline := time.Now().Add(timeout)
	sw := spin.Wait{}
	for !try() {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if !time.Now().Before(deadline) {
			return false, nil
		}
		sw.Once()
	}
	return true, nil
}
