// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"context"
	"time"
)

// Pipe is a thread-safe FIFO channel between goroutines.
//
// Elements leave the pipe in the order their insertions were serialized.
// Blocking operations park the calling goroutine (no spinning) and honor
// ctx: a cancelled wait returns ctx.Err() and leaves the pipe exactly as it
// was. The context stays cancelled, so the caller still observes the signal.
//
// Example:
//
//	p := pipe.NewBoundedExplicit[string](16, false)
//
//	// Producer
//	if err := p.Put(ctx, "hello"); err != nil {
//	    return err // ctx cancelled
//	}
//
//	// Consumer
//	msg, err := p.Take(ctx)
type Pipe[E any] interface {
	Producer[E]
	Consumer[E]

	// Len returns the number of elements currently held.
	Len() int
}

// Producer is the inserting side of a pipe.
type Producer[E any] interface {
	// Put inserts elem, blocking while the pipe is full.
	// Returns ErrNilElement for a nil elem, ctx.Err() if cancelled while
	// waiting. Never drops elements.
	Put(ctx context.Context, elem E) error

	// PutTimeout is Put bounded by timeout. Returns ErrTimeout when the
	// pipe stays full for the whole timeout; a timeout <= 0 tries once.
	PutTimeout(ctx context.Context, elem E, timeout time.Duration) error

	// TryPut inserts elem without blocking.
	// Returns ErrWouldBlock if the pipe is full.
	TryPut(elem E) error
}

// Consumer is the removing side of a pipe.
type Consumer[E any] interface {
	// Take removes and returns the oldest element, blocking while the
	// pipe is empty. Returns ctx.Err() if cancelled while waiting.
	Take(ctx context.Context) (E, error)

	// PollTimeout is Take bounded by timeout.
	// Returns (zero-value, ErrTimeout) if nothing arrives in time.
	PollTimeout(ctx context.Context, timeout time.Duration) (E, error)

	// Poll removes and returns the oldest element if present.
	// Never blocks; reports false when the pipe is empty.
	Poll() (E, bool)

	// TryTake is Poll in the error style of [Producer.TryPut].
	// Returns (zero-value, ErrWouldBlock) if the pipe is empty.
	TryTake() (E, error)
}

// BoundedPipe is a Pipe with an adjustable capacity bound.
type BoundedPipe[E any] interface {
	Pipe[E]

	// Cap returns the current capacity bound.
	Cap() int

	// SetCap changes the capacity bound. Returns ErrInvalidCapacity for
	// n <= 0. Raising the bound wakes every producer blocked on a full
	// pipe. Lowering it below Len is accepted; nothing is evicted and
	// producers block until consumers drain below the new bound.
	SetCap(n int) error
}
