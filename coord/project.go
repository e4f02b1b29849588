// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"github.com/DamLabResources/cigarmath/cigar"
)

// RefToQuery returns the query position aligned to each reference position
// covered by c, with the alignment starting at refStart. Reference positions
// in deletions and skips map to Unmapped.
func RefToQuery(c cigar.Cigar, refStart int) ([]Position, error) {
	it, err := NewIterator(c, refStart)
	if err != nil {
		return nil, err
	}
	p := make([]Position, 0, c.ReferenceLen())
	for it.Next() {
		if idx := it.Index(); idx.Ref.Mapped {
			p = append(p, idx.Query)
		}
	}
	return p, nil
}

// QueryToRef returns the reference position aligned to each query position
// of c, with the alignment starting at refStart. Query positions in insertions
// and clips map to Unmapped.
func QueryToRef(c cigar.Cigar, refStart int) ([]Position, error) {
	it, err := NewIterator(c, refStart)
	if err != nil {
		return nil, err
	}
	var p []Position
	for it.Next() {
		if idx := it.Index(); idx.Query.Mapped {
			p = append(p, idx.Ref)
		}
	}
	return p, nil
}

// BlockOffset identifies a position within a Cigar by the index of the
// operation and the offset within the operation.
type BlockOffset struct {
	Block, Offset int
}

// QueryToBlock returns the operation and offset of each query position of c.
func QueryToBlock(c cigar.Cigar) ([]BlockOffset, error) {
	it, err := NewIterator(c, 0)
	if err != nil {
		return nil, err
	}
	var p []BlockOffset
	for it.Next() {
		if idx := it.Index(); idx.Query.Mapped {
			p = append(p, BlockOffset{Block: idx.Block, Offset: idx.Offset})
		}
	}
	return p, nil
}

// Slice returns the positions of the alignment of c at refStart that fall
// within the reference interval [beg, end). Positions that do not consume
// the reference are included when they lie between included positions or
// trail them. Use math.MinInt and math.MaxInt for an open interval.
func Slice(c cigar.Cigar, refStart, beg, end int) ([]Index, error) {
	it, err := NewIterator(c, refStart)
	if err != nil {
		return nil, err
	}
	var (
		p       []Index
		started bool
	)
	for it.Next() {
		idx := it.Index()
		switch {
		case !idx.Ref.Mapped:
			if started {
				p = append(p, idx)
			}
		case idx.Ref.Pos < beg:
		case idx.Ref.Pos >= end:
			return p, nil
		default:
			started = true
			p = append(p, idx)
		}
	}
	return p, nil
}
