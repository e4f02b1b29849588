// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"fmt"

	"github.com/DamLabResources/cigarmath/cigar"
)

// Pair is an aligned pair of query and reference positions.
type Pair struct {
	Query, Ref Position
}

func (p Pair) String() string { return fmt.Sprintf("(%v,%v)", p.Query, p.Ref) }

// Pairs returns one Pair for each position of the alignment described by c
// with its first reference consuming position at refStart.
//
// Clipped positions, hard clips included, are numbered in query space and
// paired with an unmapped reference position. Positions that do not consume
// the query, such as deletions, carry the last query position seen before
// them, and positions that do not consume the reference carry the last
// reference position. A carried position is unmapped when nothing precedes it.
func Pairs(c cigar.Cigar, refStart int) ([]Pair, error) {
	it, err := NewIterator(c, refStart)
	if err != nil {
		return nil, err
	}
	pairs := make([]Pair, 0, it.Len())
	var q, r Position
	for it.Next() {
		idx := it.Index()
		switch {
		case idx.Query.Mapped:
			q = idx.Query
		case idx.Type.IsClip():
			// Trailing hard clips hold no sequence but are still counted.
			if q.Mapped {
				q = At(q.Pos + 1)
			} else {
				q = At(0)
			}
		}
		if idx.Type.IsClip() {
			pairs = append(pairs, Pair{Query: q, Ref: Unmapped})
			continue
		}
		if idx.Ref.Mapped {
			r = idx.Ref
		}
		pairs = append(pairs, Pair{Query: q, Ref: r})
	}
	return pairs, nil
}
