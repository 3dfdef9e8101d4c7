// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package wait_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/iox"
	"code.hybscloud.com/pipe/internal/wait"
)

// parked waits until q holds n goroutines.
func parked(t *testing.T, mu sync.Locker, q *wait.Queue, n int) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	backoff := iox.Backoff{}
	for {
		mu.Lock()
		got := q.Len()
		mu.Unlock()
		if got == n {
			return
		}
		if time.Now().After(deadline) {
			t.Fatalf("parked: got %d waiters, want %d", got, n)
		}
		backoff.Wait()
	}
}

// =============================================================================
// Queue
// =============================================================================

func TestQueueSignalWakesOldest(t *testing.T) {
	var mu sync.Mutex
	var q wait.Queue
	order := make(chan int, 3)

	for i := range 3 {
		go func() {
			mu.Lock()
			defer mu.Unlock()
			if err := q.Wait(context.Background(), &mu, time.Time{}); err != nil {
				t.Errorf("Wait(%d): %v", i, err)
			}
			order <- i
		}()
		parked(t, &mu, &q, i+1)
	}

	for want := range 3 {
		mu.Lock()
		if !q.Signal() {
			t.Fatalf("Signal(%d): got false, want true", want)
		}
		mu.Unlock()
		if got := <-order; got != want {
			t.Fatalf("wake order: got %d, want %d", got, want)
		}
	}

	mu.Lock()
	defer mu.Unlock()
	if q.Signal() {
		t.Fatal("Signal on empty queue: got true, want false")
	}
}

func TestQueueBroadcast(t *testing.T) {
	var mu sync.Mutex
	var q wait.Queue
	var wg sync.WaitGroup

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mu.Lock()
			defer mu.Unlock()
			if err := q.Wait(context.Background(), &mu, time.Time{}); err != nil {
				t.Errorf("Wait: %v", err)
			}
		}()
	}
	parked(t, &mu, &q, 4)

	mu.Lock()
	if n := q.Broadcast(); n != 4 {
		t.Fatalf("Broadcast: got %d, want 4", n)
	}
	mu.Unlock()
	wg.Wait()
}

func TestQueueWaitCancelled(t *testing.T) {
	var mu sync.Mutex
	var q wait.Queue
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)

	go func() {
		mu.Lock()
		defer mu.Unlock()
		errc <- q.Wait(ctx, &mu, time.Time{})
	}()
	parked(t, &mu, &q, 1)
	cancel()

	if err := <-errc; !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait: got %v, want context.Canceled", err)
	}
	mu.Lock()
	defer mu.Unlock()
	if q.Len() != 0 {
		t.Fatalf("Len after cancel: got %d, want 0", q.Len())
	}
}

func TestQueueWaitAlreadyCancelled(t *testing.T) {
	var mu sync.Mutex
	var q wait.Queue
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mu.Lock()
	defer mu.Unlock()
	if err := q.Wait(ctx, &mu, time.Time{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Wait: got %v, want context.Canceled", err)
	}
	if q.Len() != 0 {
		t.Fatalf("Len: got %d, want 0", q.Len())
	}
}

func TestQueueWaitDeadline(t *testing.T) {
	var mu sync.Mutex
	var q wait.Queue

	mu.Lock()
	defer mu.Unlock()
	start := time.Now()
	if err := q.Wait(context.Background(), &mu, start.Add(20*time.Millisecond)); err != nil {
		t.Fatalf("Wait: got %v, want nil", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Fatalf("Wait returned after %v, want >= 20ms", elapsed)
	}
	if q.Len() != 0 {
		t.Fatalf("Len after deadline: got %d, want 0", q.Len())
	}
}

func TestQueueSignalBeatsCancel(t *testing.T) {
	var mu sync.Mutex
	var q wait.Queue
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)

	go func() {
		mu.Lock()
		defer mu.Unlock()
		errc <- q.Wait(ctx, &mu, time.Time{})
	}()
	parked(t, &mu, &q, 1)

	// Both events happen while the waiter cannot re-acquire the lock.
	mu.Lock()
	q.Signal()
	cancel()
	mu.Unlock()

	if err := <-errc; err != nil {
		t.Fatalf("Wait: got %v, want nil (signal must not be lost)", err)
	}
}

// =============================================================================
// FairMutex
// =============================================================================

func TestFairMutexHandOffOrder(t *testing.T) {
	var m wait.FairMutex
	m.Lock()

	const n = 5
	order := make(chan int, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Lock()
			order <- i
			m.Unlock()
		}()
		// Goroutine i must queue before i+1 starts.
		deadline := time.Now().Add(5 * time.Second)
		backoff := iox.Backoff{}
		for m.Waiting() != i+1 {
			if time.Now().After(deadline) {
				t.Fatalf("Waiting: got %d, want %d", m.Waiting(), i+1)
			}
			backoff.Wait()
		}
	}

	m.Unlock()
	wg.Wait()
	close(order)

	want := 0
	for got := range order {
		if got != want {
			t.Fatalf("hand-off order: got %d, want %d", got, want)
		}
		want++
	}
}

func TestFairMutexTryLock(t *testing.T) {
	var m wait.FairMutex
	if !m.TryLock() {
		t.Fatal("TryLock on free mutex: got false, want true")
	}
	if m.TryLock() {
		t.Fatal("TryLock on held mutex: got true, want false")
	}
	m.Unlock()
	if !m.TryLock() {
		t.Fatal("TryLock after Unlock: got false, want true")
	}
	m.Unlock()
}

func TestFairMutexUnlockUnlocked(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Unlock of unlocked mutex: expected panic")
		}
	}()
	var m wait.FairMutex
	m.Unlock()
}

func TestFairMutexCounter(t *testing.T) {
	var m wait.FairMutex
	var wg sync.WaitGroup
	counter := 0
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				m.Lock()
				counter++
				m.Unlock()
			}
		}()
	}
	wg.Wait()
	if counter != 8000 {
		t.Fatalf("counter: got %d, want 8000", counter)
	}
}
