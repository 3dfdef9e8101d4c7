// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package spinlock

// RaceEnabled is true when the race detector is active.
// Used by tests to skip stress tests whose shared data is guarded only by
// a spin lock, which trigger false positives because the detector cannot
// see the atomix ordering on the owner slot.
const RaceEnabled = true
