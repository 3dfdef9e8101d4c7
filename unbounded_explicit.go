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

// UnboundedExplicit is an unbounded pipe guarded by one lock and a single
// condition queue for consumers. Put never blocks.
type UnboundedExplicit[E any] struct {
	mu       sync.Locker
	nonEmpty wait.Queue
	items    ring[E]
}

// NewUnboundedExplicit creates an unbounded explicit-lock pipe.
// fair selects FIFO lock hand-off (see [BoundedExplicit]).
func NewUnboundedExplicit[E any](fair bool) *UnboundedExplicit[E] {
	return &UnboundedExplicit[E]{mu: newLocker(fair)}
}

// Put inserts elem. It never waits, so ctx is not consulted.
func (p *UnboundedExplicit[E]) Put(_ context.Context, elem E) error {
	return p.TryPut(elem)
}

// PutTimeout inserts elem. It never waits, so timeout is irrelevant.
func (p *UnboundedExplicit[E]) PutTimeout(_ context.Context, elem E, _ time.Duration) error {
	return p.TryPut(elem)
}

// TryPut inserts elem.
func (p *UnboundedExplicit[E]) TryPut(elem E) error {
	if isNil(elem) {
		return ErrNilElement
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	wasEmpty := p.items.len() == 0
	p.items.push(elem)
	if wasEmpty {
		p.nonEmpty.Signal()
	}
	return nil
}

// Take removes the oldest element, blocking while the pipe is empty.
func (p *UnboundedExplicit[E]) Take(ctx context.Context) (E, error) {
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
func (p *UnboundedExplicit[E]) PollTimeout(ctx context.Context, timeout time.Duration) (E, error) {
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
func (p *UnboundedExplicit[E]) Poll() (E, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.items.len() == 0 {
		var zero E
		return zero, false
	}
	return p.dequeue(), true
}

// TryTake removes the oldest element if there is one.
func (p *UnboundedExplicit[E]) TryTake() (E, error) {
	elem, ok := p.Poll()
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// Len returns the number of queued elements.
func (p *UnboundedExplicit[E]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items.len()
}

// dequeue requires p.mu held and a non-empty pipe.
func (p *UnboundedExplicit[E]) dequeue() E {
	elem, _ := p.items.pop()
	if p.items.len() > 0 {
		p.nonEmpty.Signal()
	}
	return elem
}
