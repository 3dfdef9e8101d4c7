// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"code.hybscloud.com/pipe/spinlock"
)

// SpinLockConfig describes a shared-counter run.
type SpinLockConfig struct {
	Goroutines int  // number of incrementing goroutines
	Target     int  // goroutine i stops once the counter reaches Target+i
	Reentrant  bool // use ReentrantSpinLock and acquire it twice per step
}

// DefaultSpinLockConfig returns three goroutines counting to one million.
func DefaultSpinLockConfig() SpinLockConfig {
	return SpinLockConfig{Goroutines: 3, Target: 1_000_000}
}

// RunSpinLock lets every goroutine increment a shared counter under the
// lock until its own target is reached. The result is Target+Goroutines-1
// unless an update was lost.
func RunSpinLock(ctx context.Context, cfg SpinLockConfig) (int, error) {
	if cfg.Goroutines < 1 {
		return 0, fmt.Errorf("goroutines must be >= 1, got %d", cfg.Goroutines)
	}
	if cfg.Target < 0 {
		return 0, fmt.Errorf("target must be >= 0, got %d", cfg.Target)
	}

	var lock spinlock.Locker = &spinlock.SpinLock{}
	depth := 1
	if cfg.Reentrant {
		lock = &spinlock.ReentrantSpinLock{}
		depth = 2
	}

	shared := 0
	g, gCtx := errgroup.WithContext(ctx)
	for i := range cfg.Goroutines {
		target := cfg.Target + i
		g.Go(func() error {
			for {
				if err := acquire(gCtx, lock, depth); err != nil {
					return err
				}
				done := target <= shared
				if !done {
					shared++
				}
				for range depth {
					lock.Unlock()
				}
				if done {
					slog.Debug("goroutine finished", "goroutine", i, "target", target)
					return nil
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	return shared, nil
}

func acquire(ctx context.Context, l spinlock.Locker, depth int) error {
	for n := range depth {
		if err := l.LockContext(ctx); err != nil {
			for range n {
				l.Unlock()
			}
			return err
		}
	}
	return nil
}
