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

// BoundedMonitor is a capacity-bounded pipe guarded by a single monitor:
// one mutex and one wait set shared by producers and consumers.
//
// Because the wait set is not partitioned by predicate, a single-waiter
// wake-up could reach a goroutine that cannot proceed while the one that
// could stays parked. Every wake-up is therefore a broadcast, and every
// waiter re-checks its own predicate after waking.
//
// Observable behavior is identical to [BoundedExplicit].
type BoundedMonitor[E any] struct {
	mu       sync.Mutex
	waiters  wait.Queue
	items    ring[E]
	capacity int
}

// NewBoundedMonitor creates a monitor pipe holding at most capacity elements.
// Panics if capacity < 1.
func NewBoundedMonitor[E any](capacity int) *BoundedMonitor[E] {
	if capacity < 1 {
		panic("pipe: capacity must be >= 1")
	}
	return &BoundedMonitor[E]{capacity: capacity}
}

// Put inserts elem, blocking while the pipe is full.
func (p *BoundedMonitor[E]) Put(ctx context.Context, elem E) error {
	return p.put(ctx, elem, time.Time{})
}

// PutTimeout inserts elem, waiting at most timeout for a free slot.
func (p *BoundedMonitor[E]) PutTimeout(ctx context.Context, elem E, timeout time.Duration) error {
	return p.put(ctx, elem, time.Now().Add(timeout))
}

// put waits for a free slot until deadline; a zero deadline waits forever.
func (p *BoundedMonitor[E]) put(ctx context.Context, elem E, deadline time.Time) error {
	if isNil(elem) {
		return ErrNilElement
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.items.len() >= p.capacity {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return ErrTimeout
		}
		if err := p.waiters.Wait(ctx, &p.mu, deadline); err != nil {
			return err
		}
	}
	p.enqueue(elem)
	return nil
}

// TryPut inserts elem if a slot is free.
func (p *BoundedMonitor[E]) TryPut(elem E) error {
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
func (p *BoundedMonitor[E]) Take(ctx context.Context) (E, error) {
	return p.take(ctx, time.Time{})
}

// PollTimeout removes the oldest element, waiting at most timeout for one.
func (p *BoundedMonitor[E]) PollTimeout(ctx context.Context, timeout time.Duration) (E, error) {
	return p.take(ctx, time.Now().Add(timeout))
}

func (p *BoundedMonitor[E]) take(ctx context.Context, deadline time.Time) (E, error) {
	var zero E
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.items.len() == 0 {
		if !deadline.IsZero() && !time.Now().Before(deadline) {
			return zero, ErrTimeout
		}
		if err := p.waiters.Wait(ctx, &p.mu, deadline); err != nil {
			return zero, err
		}
	}
	return p.dequeue(), nil
}

// Poll removes the oldest element if there is one.
func (p *BoundedMonitor[E]) Poll() (E, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.items.len() == 0 {
		var zero E
		return zero, false
	}
	return p.dequeue(), true
}

// TryTake removes the oldest element if there is one.
func (p *BoundedMonitor[E]) TryTake() (E, error) {
	elem, ok := p.Poll()
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// Len returns the number of queued elements.
func (p *BoundedMonitor[E]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items.len()
}

// Cap returns the capacity bound.
func (p *BoundedMonitor[E]) Cap() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.capacity
}

// SetCap changes the capacity bound without evicting anything.
func (p *BoundedMonitor[E]) SetCap(n int) error {
	if n < 1 {
		return ErrInvalidCapacity
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if n > p.capacity {
		p.waiters.Broadcast()
	}
	p.capacity = n
	return nil
}

// enqueue requires p.mu held and a free slot.
func (p *BoundedMonitor[E]) enqueue(elem E) {
	wasEmpty := p.items.len() == 0
	p.items.push(elem)
	if wasEmpty {
		p.waiters.Broadcast()
	}
}

// dequeue requires p.mu held and a non-empty pipe.
func (p *BoundedMonitor[E]) dequeue() E {
	elem, _ := p.items.pop()
	if p.items.len() < p.capacity {
		p.waiters.Broadcast()
	}
	return elem
}
