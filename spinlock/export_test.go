// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spinlock

// SetDepth overwrites the depth of a lock held by the caller.
func SetDepth(l *ReentrantSpinLock, depth int32) {
	l.depth = depth
}
