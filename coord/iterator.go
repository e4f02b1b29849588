// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package coord provides per-position coordinate iteration over CIGAR
// alignments and the projections and liftover built on it.
package coord

import (
	"fmt"
	"strconv"

	"github.com/DamLabResources/cigarmath/cigar"
)

// Position is a coordinate in either reference or query space that may be
// absent. An unmapped Position is distinct from a mapped position 0.
type Position struct {
	Pos    int
	Mapped bool
}

// Unmapped is the absent Position.
var Unmapped Position

// At returns a mapped Position at p.
func At(p int) Position { return Position{Pos: p, Mapped: true} }

// String returns the decimal position, or "*" if p is unmapped.
func (p Position) String() string {
	if !p.Mapped {
		return "*"
	}
	return strconv.Itoa(p.Pos)
}

// Index describes a single position of an alignment.
type Index struct {
	// Alignment is the zero-based position along the
	// whole alignment, counting every operation unit.
	Alignment int

	// Ref and Query are the reference and query positions.
	// They are unmapped when the operation does not consume
	// the corresponding space.
	Ref, Query Position

	// Block is the index of the operation in the Cigar
	// and Offset the position within that operation.
	Block, Offset int

	Type cigar.OpType
}

func (i Index) String() string {
	return fmt.Sprintf("{aln:%d ref:%v query:%v op:%d.%d%v}", i.Alignment, i.Ref, i.Query, i.Block, i.Offset, i.Type)
}

// Iterator steps through the positions of an alignment in alignment order.
//
// A leading clip operation is reported with unmapped reference positions and
// query positions counting from zero, hard clips included, so that query
// positions are abstract position counters rather than offsets into the
// record's sequence. Subsequent operations advance the query and reference
// counters according to their consumption.
type Iterator struct {
	c     cigar.Cigar
	start int

	block, offset int
	aln, ref, qry int

	idx Index
}

// NewIterator returns an Iterator over c with the first reference consuming
// position at refStart. It returns an error wrapping cigar.ErrEmptyAlignment
// if c describes no positions.
//
//	it, err := coord.NewIterator(c, pos)
//	if err != nil {
//		return err
//	}
//	for it.Next() {
//		fn(it.Index())
//	}
func NewIterator(c cigar.Cigar, refStart int) (*Iterator, error) {
	it := &Iterator{c: c, start: refStart}
	if it.Len() == 0 {
		return nil, fmt.Errorf("coord: no positions in cigar %v: %w", c, cigar.ErrEmptyAlignment)
	}
	it.Reset()
	return it, nil
}

// Reset returns the Iterator to the start of the alignment.
func (it *Iterator) Reset() {
	it.block, it.offset = 0, 0
	it.aln, it.qry = -1, -1
	it.ref = it.start - 1
	it.idx = Index{}
}

// Len returns the total number of positions the Iterator will visit.
func (it *Iterator) Len() int {
	var n int
	for _, o := range it.c {
		n += o.Len()
	}
	return n
}

// Next advances the Iterator to the next alignment position, which will then
// be available through the Index method. It returns false when the end of the
// alignment has been reached.
func (it *Iterator) Next() bool {
	for it.block < len(it.c) && it.offset >= it.c[it.block].Len() {
		it.block++
		it.offset = 0
	}
	if it.block >= len(it.c) {
		return false
	}

	t := it.c[it.block].Type()
	con := t.Consumes()
	if it.block == 0 && t.IsClip() {
		con = cigar.Consume{Query: true}
	}

	it.aln++
	it.idx = Index{Alignment: it.aln, Block: it.block, Offset: it.offset, Type: t}
	if con.Query {
		it.qry++
		it.idx.Query = At(it.qry)
	}
	if con.Reference {
		it.ref++
		it.idx.Ref = At(it.ref)
	}
	it.offset++
	return true
}

// Index returns the current position of the Iterator.
func (it *Iterator) Index() Index { return it.idx }

// Indexes returns every position of the alignment described by c with its
// first reference consuming position at refStart.
func Indexes(c cigar.Cigar, refStart int) ([]Index, error) {
	it, err := NewIterator(c, refStart)
	if err != nil {
		return nil, err
	}
	return fill(make([]Index, it.Len()), it), nil
}

// fill writes the positions of it into dst, which must be at least it.Len() long.
func fill(dst []Index, it *Iterator) []Index {
	var i int
	for it.Next() {
		dst[i] = it.Index()
		i++
	}
	return dst[:i]
}
