// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wait

import (
	"context"
	"sync"
	"time"
)

// Queue is a FIFO set of goroutines parked on a condition.
//
// The zero value is an empty queue. Queue holds no lock of its own: the
// lock passed to Wait guards it, and Signal, Broadcast and Len require the
// same lock to be held.
type Queue struct {
	head *waiter
	tail *waiter
	n    int
}

type waiter struct {
	ready    chan struct{}
	next     *waiter
	prev     *waiter
	signaled bool // set under the guard before ready is closed
}

// Wait parks the caller until it is signaled, the deadline passes, or ctx
// is done. l must be held on entry; it is released while parked and held
// again on return.
//
// A zero deadline means no deadline. Wait returns nil when woken by a
// signal or by the deadline, and ctx.Err() when cancelled before being
// signaled. A signal that races with cancellation wins, so a wake-up is
// never lost: the caller re-checks its predicate and finds the state that
// the signal announced.
//
// Callers must loop on their predicate; a nil return does not imply the
// predicate holds.
func (q *Queue) Wait(ctx context.Context, l sync.Locker, deadline time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w := &waiter{ready: make(chan struct{})}
	q.push(w)
	l.Unlock()

	var expired <-chan time.Time
	if !deadline.IsZero() {
		t := time.NewTimer(time.Until(deadline))
		defer t.Stop()
		expired = t.C
	}

	var err error
	select {
	case <-w.ready:
	case <-expired:
	case <-ctx.Done():
		err = ctx.Err()
	}

	l.Lock()
	if w.signaled {
		return nil
	}
	q.remove(w)
	return err
}

// Signal wakes the longest-waiting goroutine, if any.
// Reports whether a goroutine was woken.
func (q *Queue) Signal() bool {
	w := q.head
	if w == nil {
		return false
	}
	q.remove(w)
	w.signaled = true
	close(w.ready)
	return true
}

// Broadcast wakes every parked goroutine and returns how many were woken.
func (q *Queue) Broadcast() int {
	n := 0
	for q.Signal() {
		n++
	}
	return n
}

// Len returns the number of parked goroutines.
func (q *Queue) Len() int {
	return q.n
}

func (q *Queue) push(w *waiter) {
	w.prev = q.tail
	if q.tail != nil {
		q.tail.next = w
	} else {
		q.head = w
	}
	q.tail = w
	q.n++
}

func (q *Queue) remove(w *waiter) {
	if w.prev != nil {
		w.prev.next = w.next
	} else {
		q.head = w.next
	}
	if w.next != nil {
		w.next.prev = w.prev
	} else {
		q.tail = w.prev
	}
	w.next, w.prev = nil, nil
	q.n--
}
