// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

// Options configures pipe creation and strategy selection.
type Options struct {
	// Capacity bound; 0 means unbounded
	capacity int

	// Synchronization strategy
	monitor bool // Single monitor instead of lock + two condition queues
	fair    bool // FIFO lock hand-off (explicit strategy only)
}

// Builder creates pipes with fluent configuration.
//
// The builder selects the implementation from the capacity and the
// strategy hints.
//
// Example:
//
//	// Bounded, explicit lock with two condition queues (default)
//	p := pipe.BuildBounded[Event](pipe.New(1024))
//
//	// Bounded, fair lock hand-off
//	p := pipe.BuildBounded[Event](pipe.New(1024).Fair())
//
//	// Unbounded monitor pipe
//	p := pipe.Build[Event](pipe.NewUnbounded().Monitor())
type Builder struct {
	opts Options
}

// New creates a builder for a bounded pipe with the given capacity.
//
// Unlike ring-buffer queues the capacity is exact and may be changed later
// with [BoundedPipe.SetCap].
//
// Panics if capacity < 1.
func New(capacity int) *Builder {
	if capacity < 1 {
		panic("pipe: capacity must be >= 1")
	}
	return &Builder{opts: Options{capacity: capacity}}
}

// NewUnbounded creates a builder for an unbounded pipe.
func NewUnbounded() *Builder {
	return &Builder{}
}

// Monitor selects the single-monitor strategy: one lock, one shared wait
// set, broadcast wake-ups.
func (b *Builder) Monitor() *Builder {
	b.opts.monitor = true
	return b
}

// Fair makes the explicit-lock strategy grant its lock in arrival order.
//
//	true:  blocked goroutines acquire the lock FIFO
//	false: no ordering guarantee among blocked goroutines
//
// The monitor strategy ignores Fair().
func (b *Builder) Fair() *Builder {
	b.opts.fair = true
	return b
}

// Bounded reports whether the builder creates bounded pipes.
func (b *Builder) Bounded() bool {
	return b.opts.capacity > 0
}

// Build creates a Pipe[E] with automatic implementation selection.
//
// Implementation selection:
//
//	capacity > 0 + Monitor() → BoundedMonitor
//	capacity > 0             → BoundedExplicit
//	unbounded    + Monitor() → UnboundedMonitor
//	unbounded                → UnboundedExplicit
//
// For the capacity API use [BuildBounded].
func Build[E any](b *Builder) Pipe[E] {
	switch {
	case b.Bounded() && b.opts.monitor:
		return NewBoundedMonitor[E](b.opts.capacity)
	case b.Bounded():
		return NewBoundedExplicit[E](b.opts.capacity, b.opts.fair)
	case b.opts.monitor:
		return NewUnboundedMonitor[E]()
	default:
		return NewUnboundedExplicit[E](b.opts.fair)
	}
}

// BuildBounded creates a BoundedPipe[E].
// Panics if the builder was created with NewUnbounded.
func BuildBounded[E any](b *Builder) BoundedPipe[E] {
	if !b.Bounded() {
		panic("pipe: BuildBounded requires New(capacity)")
	}
	if b.opts.monitor {
		return NewBoundedMonitor[E](b.opts.capacity)
	}
	return NewBoundedExplicit[E](b.opts.capacity, b.opts.fair)
}

var (
	_ BoundedPipe[int] = (*BoundedExplicit[int])(nil)
	_ BoundedPipe[int] = (*BoundedMonitor[int])(nil)
	_ Pipe[int]        = (*UnboundedExplicit[int])(nil)
	_ Pipe[int]        = (*UnboundedMonitor[int])(nil)
)
