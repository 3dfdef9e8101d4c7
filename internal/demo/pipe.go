// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package demo runs the producer/consumer and shared-counter workloads
// behind the playground commands.
package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/pipe"
)

// PipeConfig describes a producer/consumer run.
type PipeConfig struct {
	Producers int           // number of producing goroutines
	Messages  int           // messages sent by each producer
	Capacity  int           // pipe bound, 0 for an unbounded pipe
	Monitor   bool          // use the monitor strategy
	Fair      bool          // FIFO lock hand-off for the explicit strategy
	MaxSleep  time.Duration // upper bound of the random pause before each send
}

// DefaultPipeConfig returns ten producers sending ten messages each through
// a pipe bounded to two elements.
func DefaultPipeConfig() PipeConfig {
	return PipeConfig{
		Producers: 10,
		Messages:  10,
		Capacity:  2,
		MaxSleep:  10 * time.Millisecond,
	}
}

func (c PipeConfig) validate() error {
	switch {
	case c.Producers < 1:
		return fmt.Errorf("producers must be >= 1, got %d", c.Producers)
	case c.Messages < 0:
		return fmt.Errorf("messages must be >= 0, got %d", c.Messages)
	case c.Capacity < 0:
		return fmt.Errorf("capacity must be >= 0, got %d", c.Capacity)
	case c.MaxSleep < 0:
		return fmt.Errorf("max sleep must be >= 0, got %v", c.MaxSleep)
	}
	return nil
}

func (c PipeConfig) builder() *pipe.Builder {
	var b *pipe.Builder
	if c.Capacity > 0 {
		b = pipe.New(c.Capacity)
	} else {
		b = pipe.NewUnbounded()
	}
	if c.Monitor {
		b = b.Monitor()
	}
	if c.Fair {
		b = b.Fair()
	}
	return b
}

// RunPipe starts the producers and a single consumer. Once every producer
// has finished, the consumer is cancelled through its context and whatever
// is still buffered is drained. Returns the number of messages received.
func RunPipe(ctx context.Context, cfg PipeConfig) (int, error) {
	if err := cfg.validate(); err != nil {
		return 0, err
	}
	p := pipe.Build[string](cfg.builder())

	consumerCtx, stopConsumer := context.WithCancel(ctx)
	defer stopConsumer()

	received := 0
	consumerDone := make(chan error, 1)
	go func() {
		consumerDone <- consume(consumerCtx, p, &received)
	}()

	g, gCtx := errgroup.WithContext(ctx)
	for id := range cfg.Producers {
		g.Go(func() error {
			return produce(gCtx, p, id, cfg)
		})
	}
	perr := g.Wait()

	stopConsumer()
	cerr := <-consumerDone
	if perr != nil {
		return received, perr
	}
	return received, cerr
}

func produce(ctx context.Context, p pipe.Producer[string], id int, cfg PipeConfig) error {
	slog.Debug("producer started", "producer", id)
	for n := range cfg.Messages {
		msg := fmt.Sprintf("message #%d from %d", n, id)
		if cfg.MaxSleep > 0 {
			select {
			case <-time.After(rand.N(cfg.MaxSleep)):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		slog.Debug("sending", "message", msg)
		if err := p.Put(ctx, msg); err != nil {
			return fmt.Errorf("producer %d: %w", id, err)
		}
	}
	slog.Debug("producer finished", "producer", id)
	return nil
}

func consume(ctx context.Context, p pipe.Consumer[string], received *int) error {
	for {
		msg, err := p.Take(ctx)
		if err != nil {
			if !errors.Is(err, context.Canceled) {
				return err
			}
			break
		}
		*received++
		slog.Debug("received", "message", msg)
	}
	slog.Debug("consumer requested to finish")
	for {
		msg, ok := p.Poll()
		if !ok {
			return nil
		}
		*received++
		slog.Debug("received", "message", msg, "drained", true)
	}
}
