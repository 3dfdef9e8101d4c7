// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package pipe

import "reflect"

// minRing is the initial number of slots allocated on first insert.
const minRing = 8

// ring is a growable FIFO buffer. Not safe for concurrent use; every pipe
// guards its ring with the pipe's lock.
type ring[E any] struct {
	buf  []E
	head int
	n    int
}

func (r *ring[E]) len() int {
	return r.n
}

func (r *ring[E]) push(elem E) {
	if r.n == len(r.buf) {
		r.grow()
	}
	r.buf[(r.head+r.n)&(len(r.buf)-1)] = elem
	r.n++
}

func (r *ring[E]) pop() (E, bool) {
	var zero E
	if r.n == 0 {
		return zero, false
	}
	elem := r.buf[r.head]
	r.buf[r.head] = zero // release reference for GC
	r.head = (r.head + 1) & (len(r.buf) - 1)
	r.n--
	return elem, true
}

// grow doubles the buffer, keeping its length a power of 2.
func (r *ring[E]) grow() {
	size := max(minRing, 2*len(r.buf))
	buf := make([]E, size)
	k := copy(buf, r.buf[r.head:])
	copy(buf[k:], r.buf[:r.head])
	r.buf = buf
	r.head = 0
}

// isNil reports whether elem holds a nil reference: pointer, map, channel,
// function, interface or unsafe pointer. Nil slices are ordinary values.
func isNil[E any](elem E) bool {
	v := reflect.ValueOf(&elem).Elem()
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return v.IsNil()
	default:
		return false
	}
}
