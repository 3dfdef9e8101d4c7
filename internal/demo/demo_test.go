// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"code.hybscloud.com/pipe/internal/demo"
	"code.hybscloud.com/pipe/spinlock"
)

func TestRunPipe(t *testing.T) {
	t.Parallel()

	tcs := map[string]demo.PipeConfig{
		"bounded explicit":   {Producers: 4, Messages: 25, Capacity: 2, MaxSleep: time.Millisecond},
		"bounded fair":       {Producers: 4, Messages: 25, Capacity: 2, Fair: true},
		"bounded monitor":    {Producers: 4, Messages: 25, Capacity: 1, Monitor: true},
		"unbounded explicit": {Producers: 3, Messages: 40},
		"unbounded monitor":  {Producers: 3, Messages: 40, Monitor: true, MaxSleep: time.Millisecond},
		"no messages":        {Producers: 2, Messages: 0, Capacity: 3},
	}
	for name, cfg := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := demo.RunPipe(context.Background(), cfg)
			require.NoError(t, err)
			assert.Equal(t, cfg.Producers*cfg.Messages, got)
		})
	}
}

func TestRunPipeDefault(t *testing.T) {
	t.Parallel()

	cfg := demo.DefaultPipeConfig()
	got, err := demo.RunPipe(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 100, got)
}

func TestRunPipeInvalid(t *testing.T) {
	t.Parallel()

	_, err := demo.RunPipe(context.Background(), demo.PipeConfig{Producers: 0})
	require.Error(t, err)
	_, err = demo.RunPipe(context.Background(), demo.PipeConfig{Producers: 1, Capacity: -1})
	require.Error(t, err)
}

func TestRunPipeCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := demo.RunPipe(ctx, demo.PipeConfig{Producers: 2, Messages: 10, Capacity: 1, MaxSleep: time.Millisecond})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunSpinLock(t *testing.T) {
	if spinlock.RaceEnabled {
		t.Skip("skip: counter is published only through atomix ordering")
	}
	t.Parallel()

	for _, reentrant := range []bool{false, true} {
		cfg := demo.SpinLockConfig{Goroutines: 3, Target: 50_000, Reentrant: reentrant}
		got, err := demo.RunSpinLock(context.Background(), cfg)
		require.NoError(t, err, "reentrant=%v", reentrant)
		assert.Equal(t, cfg.Target+cfg.Goroutines-1, got, "reentrant=%v", reentrant)
	}
}

func TestRunSpinLockInvalid(t *testing.T) {
	t.Parallel()

	_, err := demo.RunSpinLock(context.Background(), demo.SpinLockConfig{Goroutines: 0})
	require.Error(t, err)
	_, err = demo.RunSpinLock(context.Background(), demo.SpinLockConfig{Goroutines: 1, Target: -1})
	require.Error(t, err)
}
