// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spinlock_test

import (
	"sync"
	"testing"

	"code.hybscloud.com/pipe/spinlock"
)

// =============================================================================
// Uncontended
// =============================================================================

func BenchmarkLockUnlock(b *testing.B) {
	b.Run("SpinLock", func(b *testing.B) {
		var l spinlock.SpinLock
		for range b.N {
			l.Lock()
			l.Unlock()
		}
	})
	b.Run("ReentrantSpinLock", func(b *testing.B) {
		var l spinlock.ReentrantSpinLock
		for range b.N {
			l.Lock()
			l.Unlock()
		}
	})
	b.Run("sync.Mutex", func(b *testing.B) {
		var l sync.Mutex
		for range b.N {
			l.Lock()
			l.Unlock()
		}
	})
}

func BenchmarkReentrantNested(b *testing.B) {
	var l spinlock.ReentrantSpinLock
	l.Lock()
	defer l.Unlock()

	b.ResetTimer()
	for range b.N {
		l.Lock()
		l.Unlock()
	}
}

// =============================================================================
// Contended
// =============================================================================

func BenchmarkLockUnlock_Parallel(b *testing.B) {
	run := func(b *testing.B, l sync.Locker) {
		counter := 0
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				l.Lock()
				counter++
				l.Unlock()
			}
		})
		_ = counter
	}
	b.Run("SpinLock", func(b *testing.B) { run(b, &spinlock.SpinLock{}) })
	b.Run("ReentrantSpinLock", func(b *testing.B) { run(b, &spinlock.ReentrantSpinLock{}) })
	b.Run("sync.Mutex", func(b *testing.B) { run(b, &sync.Mutex{}) })
}
