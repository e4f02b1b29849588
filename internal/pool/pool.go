// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pool provides size stratified slice pools.
package pool

import (
	"math/bits"
	"sync"
)

// Slices contains size stratified []T pools. Each pool element i
// returns slices with a cap of 1<<i. The zero value is ready to use.
type Slices[T any] struct {
	pool [63]sync.Pool
}

// Get returns a []T with len size and a cap that is less than 2*size.
// The contents of the returned slice are not zeroed.
func (p *Slices[T]) Get(size int) []T {
	if size <= 0 {
		return nil
	}
	i := poolFor(uint(size))
	if s, ok := p.pool[i].Get().(*[]T); ok {
		return (*s)[:size]
	}
	return make([]T, size, 1<<uint(i))
}

// Put replaces a used []T into the appropriate size pool. Slices
// whose capacity is not a power of two are dropped.
func (p *Slices[T]) Put(s []T) {
	c := cap(s)
	if c == 0 || c&(c-1) != 0 {
		return
	}
	s = s[:0]
	p.pool[poolFor(uint(c))].Put(&s)
}

// poolFor returns the ceiling of base 2 log of size. It provides an index
// into a pool array to a sync.Pool that will return values able to hold
// size elements.
func poolFor(size uint) int {
	return bits.Len(size - 1)
}
