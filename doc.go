// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package pipe provides blocking FIFO channels between goroutines.
//
// A pipe is either bounded (capacity-limited, producers wait while full) or
// unbounded (producers never wait). Each comes in two interchangeable
// synchronization strategies with identical observable behavior:
//
//   - Explicit: one lock and two condition queues (non-empty, non-full).
//     Wake-ups are targeted at a single goroutine whose predicate may now
//     hold. Optionally fair: the lock is handed over in arrival order.
//   - Monitor: one lock and one wait set shared by producers and consumers.
//     Wake-ups are broadcasts and every waiter re-checks its predicate.
//
// # Quick Start
//
// Direct constructors:
//
//	p := pipe.NewBoundedExplicit[Event](1024, false)
//	p := pipe.NewBoundedMonitor[Event](1024)
//	p := pipe.NewUnboundedExplicit[*Request](true)
//	p := pipe.NewUnboundedMonitor[*Request]()
//
// Builder API:
//
//	p := pipe.BuildBounded[Event](pipe.New(1024))             // → BoundedExplicit
//	p := pipe.BuildBounded[Event](pipe.New(1024).Monitor())   // → BoundedMonitor
//	p := pipe.Build[Event](pipe.NewUnbounded().Fair())        // → UnboundedExplicit (fair)
//	p := pipe.Build[Event](pipe.NewUnbounded().Monitor())     // → UnboundedMonitor
//
// # Basic Usage
//
//	p := pipe.NewBoundedExplicit[string](2, false)
//
//	// Blocking insert: waits while full, aborts when ctx is done
//	if err := p.Put(ctx, "a"); err != nil {
//	    return err
//	}
//
//	// Timed insert: gives up with ErrTimeout
//	err := p.PutTimeout(ctx, "b", 100*time.Millisecond)
//	if pipe.IsTimeout(err) {
//	    // still full after 100ms
//	}
//
//	// Blocking removal
//	msg, err := p.Take(ctx)
//
//	// Non-blocking removal: absence is reported, never stored
//	if msg, ok := p.Poll(); ok {
//	    use(msg)
//	}
//
// # Capacity
//
// Bounded pipes hold at most Cap() elements. SetCap changes the bound at
// runtime. Raising it wakes every producer waiting on a full pipe. Lowering
// it below the current length is accepted and evicts nothing: producers
// simply wait until consumers drain below the new bound.
//
//	p := pipe.NewBoundedMonitor[int](1)
//	go p.Put(ctx, 2) // blocks, pipe already holds one element
//	p.SetCap(2)      // producer proceeds without any Take
//
// # Waiting
//
// Blocked goroutines are parked, not spinning. Every wait loops on its
// predicate, so a wake-up that finds the state unchanged puts the goroutine
// back to sleep. Timed operations compute one deadline on entry from the
// monotonic clock; re-waits after a fruitless wake-up use the remaining
// time, not a fresh timeout.
//
// # Error Handling
//
//	pipe.ErrTimeout         // timed operation expired, pipe unchanged
//	pipe.ErrWouldBlock      // TryPut on full / TryTake on empty (from iox)
//	pipe.ErrInvalidCapacity // SetCap with n <= 0
//	pipe.ErrNilElement      // nil pointer, map, chan, func or interface
//	ctx.Err()               // wait cancelled, pipe unchanged
//
// Cancellation is reported by returning ctx.Err() unwrapped; the context
// remains cancelled, so the caller observes the same signal.
//
// For semantic error classification (delegates to iox):
//
//	pipe.IsWouldBlock(err)  // true if pipe full/empty
//	pipe.IsSemantic(err)    // true if control flow signal
//	pipe.IsNonFailure(err)  // true if nil or ErrWouldBlock
//
// # Ordering
//
// Elements are removed in the order their insertions were serialized by
// the pipe's lock; elements from one producer goroutine therefore keep
// their relative order. No order is promised among blocked goroutines
// themselves unless the explicit strategy is built with Fair().
//
// # Dependencies
//
// This package uses [code.hybscloud.com/iox] for semantic errors. Spin
// locks for short critical sections live in package spinlock.
package pipe
