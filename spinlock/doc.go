// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package spinlock provides busy-waiting mutual exclusion locks built on a
// single compare-and-swap over an owner slot.
//
// Two variants are available:
//
//   - [SpinLock]: non-reentrant; a second Lock by the owner spins forever
//   - [ReentrantSpinLock]: the owner may nest acquisitions; each Lock must
//     be matched by an Unlock
//
// Both record the owning goroutine, so misuse is detected instead of
// silently corrupting state: Unlock from a goroutine that does not own the
// lock panics with [ErrNotOwner] and leaves the owner unchanged. The Release
// methods report the same condition as an error.
//
// # Quick Start
//
//	var mu spinlock.SpinLock
//
//	mu.Lock()
//	counter++
//	mu.Unlock()
//
// Both locks satisfy [sync.Locker] and the richer [Locker]:
//
//	if mu.TryLock() { ... }                           // never waits
//	err := mu.LockContext(ctx)                        // spins until ctx is done
//	ok, err := mu.TryLockTimeout(ctx, time.Millisecond) // spins until deadline
//
// # When to Spin
//
// A spinning goroutine burns its CPU until the owner releases. Use these
// locks for critical sections of a few instructions on a machine with
// spare cores. Anything that may wait for an unbounded time, such as a
// queue becoming non-empty, belongs on a parking primitive instead.
// For that reason condition variables are not supported: NewCond returns
// [ErrCondUnsupported].
//
// # Memory Ordering
//
// Acquisition is a CAS with acquire-release semantics and release clears
// the owner slot with release ordering, so everything written inside a
// critical section is visible to the next owner. The reentrant depth
// counter is plain memory touched only by the owner; the owner-slot CAS
// publishes it to the next owner.
//
// # Race Detection
//
// Ownership hand-off is published through [code.hybscloud.com/atomix]
// orderings, which Go's race detector cannot observe. Data guarded only by
// a spin lock may be reported as racy under -race. Tests depending on this
// are skipped when [RaceEnabled] is true.
//
// # Dependencies
//
// This package uses [code.hybscloud.com/atomix] for the owner slot,
// [code.hybscloud.com/spin] for CPU pause hints between attempts and
// [github.com/petermattis/goid] for goroutine identity.
package spinlock
