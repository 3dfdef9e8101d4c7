// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"context"
	"sync"
	"time"

	"code.hybscloud.com/pipe/internal/wait"
)

// BoundedExplicit is a capacity-bounded pipe guarded by one lock and two
// condition queues.
//
// Consumers park on nonEmpty, producers on nonFull, so every wake-up is
// targeted at a goroutine whose predicate the state change may satisfy:
//   - an insert into an empty pipe wakes one consumer
//   - a removal leaving the pipe below capacity wakes one producer
//   - raising the capacity wakes all producers
//
// With fair set, the lock is a [wait.FairMutex]: blocked goroutines acquire
// it in arrival order, bounding starvation at the price of a hand-off per
// contended unlock. Without it, no ordering among waiters is promised.
type BoundedExplicit[E any] struct {
	mu       sync.Locker
	nonEmpty wait.Queue // consumers waiting for an element
	nonFull  wait.Queue // producers waiting for a free slot
	items    ring[E]
	capacity int
}

// NewBoundedExplicit creates an explicit-lock pipe holding at most capacity
// elements. fair selects FIFO lock hand-off.
// Panics if capacity < 1.
func NewBoundedExplicit[E any](capacity int, fair bool) *BoundedExplicit[E] {
	if capacity < 1 {
		panic("pipe: capacity must be >= 1")
	}
	return &BoundedExplicit[E]{
		mu:       newLocker(fair),
		capacity: capacity,
	}
}

// Put inserts elem, blocking while the pipe is full.
func (p *BoundedExplicit[E]) Put(ctx context.Context, elem E) error {
	if isNil(elem) {
		return ErrNilElement
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.items.len() >= p.capacity {
		if err := p.nonFull.Wait(ctx, p.mu, time.Time{}); err != nil {
			return err
		}
	}
	p.enqueue(elem)
	return nil
}

// PutTimeout inserts elem, waiting at most timeout for a free slot.
func (p *BoundedExplicit[E]) PutTimeout(ctx context.Context, elem E, timeout time.Duration) error {
	if isNil(elem) {
		return ErrNilElement
	}
	deadline := time.Now().Add(timeout)
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.items.len() >= p.capacity {
		if !time.Now().Before(deadline) {
			return ErrTimeout
		}
		if err := p.nonFull.Wait(ctx, p.mu, deadline); err != nil {
			return err
		}
	}
	p.enqueue(elem)
	return nil
}

// TryPut inserts elem if a slot is free.
func (p *BoundedExplicit[E]) TryPut(elem E) error {
	if isNil(elem) {
		return ErrNilElement
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.items.len() >= p.capacity {
		return ErrWouldBlock
	}
	p.enqueue(elem)
	return nil
}

// Take removes the oldest element, blocking while the pipe is empty.
func (p *BoundedExplicit[E]) Take(ctx context.Context) (E, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.items.len() == 0 {
		if err := p.nonEmpty.Wait(ctx, p.mu, time.Time{}); err != nil {
			var zero E
			return zero, err
		}
	}
	return p.dequeue(), nil
}

// PollTimeout removes the oldest element, waiting at most timeout for one.
func (p *BoundedExplicit[E]) PollTimeout(ctx context.Context, timeout time.Duration) (E, error) {
	var zero E
	deadline := time.Now().Add(timeout)
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.items.len() == 0 {
		if !time.Now().Before(deadline) {
			return zero, ErrTimeout
		}
		if err := p.nonEmpty.Wait(ctx, p.mu, deadline); err != nil {
			return zero, err
		}
	}
	return p.dequeue(), nil
}

// Poll removes the oldest element if there is one.
func (p *BoundedExplicit[E]) Poll() (E, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.items.len() == 0 {
		var zero E
		return zero, false
	}
	return p.dequeue(), true
}

// TryTake removes the oldest element if there is one.
func (p *BoundedExplicit[E]) TryTake() (E, error) {
	elem, ok := p.Poll()
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// Len returns the number of queued elements.
func (p *BoundedExplicit[E]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items.len()
}

// Cap returns the capacity bound.
func (p *BoundedExplicit[E]) Cap() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capacity
}

// SetCap changes the capacity bound without evicting anything.
func (p *BoundedExplicit[E]) SetCap(n int) error {
	if n < 1 {
		return ErrInvalidCapacity
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if n > p.capacity {
		p.nonFull.Broadcast()
	}
	p.capacity = n
	return nil
}

// enqueue requires p.mu held and a free slot.
func (p *BoundedExplicit[E]) enqueue(elem E) {
	wasEmpty := p.items.len() == 0
	p.items.push(elem)
	if wasEmpty {
		p.nonEmpty.Signal()
	}
}

// dequeue requires p.mu held and a non-empty pipe.
func (p *BoundedExplicit[E]) dequeue() E {
	elem, _ := p.items.pop()
	if p.items.len() < p.capacity {
		p.nonFull.Signal()
	}
	// Inserts into a non-empty pipe do not signal, so a consumer that
	// leaves elements behind passes the wake-up on.
	if p.items.len() > 0 {
		p.nonEmpty.Signal()
	}
	return elem
}

func newLocker(fair bool) sync.Locker {
	if fair {
		return &wait.FairMutex{}
	}
	return &sync.Mutex{}
}
