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

// UnboundedMonitor is an unbounded pipe guarded by a single monitor.
// Only consumers ever wait, yet wake-ups stay broadcasts so the variant
// keeps the monitor discipline of [BoundedMonitor]. Put never blocks.
type UnboundedMonitor[E any] struct {
	mu      sync.Mutex
	waiters wait.Queue
	items   ring[E]
}

// NewUnboundedMonitor creates an unbounded monitor pipe.
func NewUnboundedMonitor[E any]() *UnboundedMonitor[E] {
	return &UnboundedMonitor[E]{}
}

// Put inserts elem. It never waits, so ctx is not consulted.
func (p *UnboundedMonitor[E]) Put(_ context.Context, elem E) error {
	return p.TryPut(elem)
}

// PutTimeout inserts elem. It never waits, so timeout is irrelevant.
func (p *UnboundedMonitor[E]) PutTimeout(_ context.Context, elem E, _ time.Duration) error {
	return p.TryPut(elem)
}

// TryPut inserts elem.
func (p *UnboundedMonitor[E]) TryPut(elem E) error {
	if isNil(elem) {
		return ErrNilElement
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	wasEmpty := p.items.len() == 0
	p.items.push(elem)
	if wasEmpty {
		p.waiters.Broadcast()
	}
	return nil
}

// Take removes the oldest element, blocking while the pipe is empty.
func (p *UnboundedMonitor[E]) Take(ctx context.Context) (E, error) {
	return p.take(ctx, time.Time{})
}

// PollTimeout removes the oldest element, waiting at most timeout for one.
func (p *UnboundedMonitor[E]) PollTimeout(ctx context.Context, timeout time.Duration) (E, error) {
	return p.take(ctx, time.Now().Add(timeout))
}

func (p *UnboundedMonitor[E]) take(ctx context.Context, deadline time.Time) (E, error) {
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
	elem, _ := p.items.pop()
	return elem, nil
}

// Poll removes the oldest element if there is one.
func (p *UnboundedMonitor[E]) Poll() (E, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items.pop()
}

// TryTake removes the oldest element if there is one.
func (p *UnboundedMonitor[E]) TryTake() (E, error) {
	elem, ok := p.Poll()
	if !ok {
		return elem, ErrWouldBlock
	}
	return elem, nil
}

// Len returns the number of queued elements.
func (p *UnboundedMonitor[E]) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.items.len()
}
