// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !race

// The counter below is ordered only by the owner slot's atomix operations,
// which the race detector cannot see.

package spinlock_test

import (
	"fmt"
	"sync"

	"code.hybscloud.com/pipe/spinlock"
)

// Example guards a shared counter with a SpinLock.
func Example() {
	var (
		mu      spinlock.SpinLock
		counter int
		wg      sync.WaitGroup
	)
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 1000 {
				mu.Lock()
				counter++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	fmt.Println(counter)
	// Output: 4000
}
