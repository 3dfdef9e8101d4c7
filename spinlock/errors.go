// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spinlock

import "errors"

// ErrNotOwner reports an unlock by a goroutine that does not hold the lock.
// It signals a bug in the caller, not a transient condition.
var ErrNotOwner = errors.New("spinlock: unlock by non-owner")

// ErrDepthOverflow reports a reentrant acquisition beyond [MaxDepth].
var ErrDepthOverflow = errors.New("spinlock: acquisition depth overflow")

// ErrCondUnsupported is returned by NewCond. A spin lock guards critical
// sections too short to wait in.
var ErrCondUnsupported = errors.New("spinlock: condition variables not supported")
