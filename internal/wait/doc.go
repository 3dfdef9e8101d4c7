// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package wait provides the parking primitives behind the blocking pipes.
//
// [Queue] is a condition variable bound to a caller-owned lock. Unlike
// [sync.Cond] it supports a deadline and context cancellation on every wait,
// and wakes waiters in arrival order so that [Queue.Signal] is a targeted,
// single wake-up.
//
// [FairMutex] is a mutual-exclusion lock that hands ownership directly to
// the longest-waiting locker on Unlock.
//
// Contract:
// All Queue methods must be called with the guarding lock held. A wait
// releases the lock while parked and always returns with it re-acquired,
// including on cancellation.
package wait
