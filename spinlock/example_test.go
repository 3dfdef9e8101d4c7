// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spinlock_test

import (
	"context"
	"fmt"
	"time"

	"code.hybscloud.com/pipe/spinlock"
)

// ExampleReentrantSpinLock shows nested acquisition by the same goroutine.
func ExampleReentrantSpinLock() {
	var mu spinlock.ReentrantSpinLock
	mu.Lock()
	mu.Lock()
	fmt.Println("depth:", mu.Depth())
	mu.Unlock()
	mu.Unlock()
	fmt.Println("free:", mu.Owner() == 0)
	// Output:
	// depth: 2
	// free: true
}

func ExampleSpinLock_TryLockTimeout() {
	var mu spinlock.SpinLock
	held := make(chan struct{})
	release := make(chan struct{})
	go func() {
		mu.Lock()
		close(held)
		<-release
		mu.Unlock()
	}()
	<-held

	ok, err := mu.TryLockTimeout(context.Background(), 10*time.Millisecond)
	fmt.Println(ok, err)
	close(release)
	// Output: false <nil>
}
