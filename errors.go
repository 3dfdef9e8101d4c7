// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates a non-blocking operation cannot proceed now.
//
// For TryPut: the pipe is full (backpressure)
// For TryTake: the pipe is empty (no data available)
//
// ErrWouldBlock is a control flow signal, not a failure. The caller should
// retry later or switch to the blocking form.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
var ErrWouldBlock = iox.ErrWouldBlock

// ErrTimeout reports that a timed operation gave up before its deadline
// could be met. The pipe is left unmodified.
var ErrTimeout = errors.New("pipe: timed out")

// ErrInvalidCapacity reports a non-positive capacity bound.
var ErrInvalidCapacity = errors.New("pipe: capacity must be positive")

// ErrNilElement reports an attempt to insert a nil element.
// Absence is never stored; it is reported by the removal operations.
var ErrNilElement = errors.New("pipe: nil element")

// IsWouldBlock reports whether err indicates the operation would block.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsTimeout reports whether err is, or wraps, [ErrTimeout].
func IsTimeout(err error) bool {
	return errors.Is(err, ErrTimeout)
}

// IsSemantic reports whether err is a control flow signal (not a failure).
// Delegates to [iox.IsSemantic].
func IsSemantic(err error) bool {
	return iox.IsSemantic(err)
}

// IsNonFailure reports whether err represents a non-failure condition.
// Returns true for nil or ErrWouldBlock.
// Delegates to [iox.IsNonFailure].
func IsNonFailure(err error) bool {
	return iox.IsNonFailure(err)
}
