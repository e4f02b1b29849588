// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stitch

import (
	"fmt"
	"sort"

	"github.com/DamLabResources/cigarmath/cigar"
)

// Adjacent joins the alignments first and second, which must be placed in
// that order on the reference. Clipping is removed from both. A reference gap
// between the two becomes a deletion, and a reference overlap is resolved by
// trimming the overlapping length of query from the start of second. A gap
// longer than cigar.MaxOpLen is reported as an error wrapping
// cigar.ErrInvalidArgument.
//
// The returned alignment is anchored at first.Pos.
func Adjacent(first, second cigar.Alignment) (cigar.Alignment, error) {
	if first.Pos >= second.Pos {
		return cigar.Alignment{}, fmt.Errorf("stitch: cannot join %v to %v at or before it: %w",
			second, first, cigar.ErrNonSequential)
	}
	fc := first.Cigar.Declip()
	sc := second.Cigar.Declip()

	c := make(cigar.Cigar, 0, len(fc)+len(sc)+1)
	c = append(c, fc...)
	switch gap := second.Pos - (first.Pos + fc.ReferenceLen()); {
	case gap > cigar.MaxOpLen:
		return cigar.Alignment{}, fmt.Errorf("stitch: gap of %d between %v and %v exceeds maximum operation length: %w",
			gap, first, second, cigar.ErrInvalidArgument)
	case gap > 0:
		c = append(c, cigar.NewOp(cigar.Deletion, gap))
	case gap < 0:
		t, err := Trim(cigar.Alignment{Pos: second.Pos, Cigar: sc}, -gap, 0, NoClip)
		if err != nil {
			return cigar.Alignment{}, err
		}
		sc = t.Cigar
	}
	c = append(c, sc...)

	return cigar.Alignment{Pos: first.Pos, Cigar: c.Collapse()}, nil
}

// Multiple combines the alignments of a single query into one alignment.
// The alignments are ordered by the start of their aligned query, and each
// consecutive pair may overlap by at most allowedOverlap positions in both
// reference and query space. Reference overlaps are reported as an
// *cigar.OverlapError wrapping cigar.ErrNonSequential and query overlaps as
// one wrapping cigar.ErrOverlapExceeded.
//
// A single alignment is returned unaltered.
func Multiple(alns []cigar.Alignment, allowedOverlap int) (cigar.Alignment, error) {
	switch {
	case len(alns) == 0:
		return cigar.Alignment{}, fmt.Errorf("stitch: nothing to combine: %w", cigar.ErrNoAlignments)
	case allowedOverlap < 0:
		return cigar.Alignment{}, fmt.Errorf("stitch: invalid allowed overlap %d: %w",
			allowedOverlap, cigar.ErrInvalidArgument)
	case len(alns) == 1:
		return alns[0], nil
	}

	sorted := make([]cigar.Alignment, len(alns))
	copy(sorted, alns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].QuerySpan().Start < sorted[j].QuerySpan().Start
	})

	for i := 1; i < len(sorted); i++ {
		if err := checkPair(sorted[i-1], sorted[i], allowedOverlap); err != nil {
			return cigar.Alignment{}, err
		}
	}

	a := sorted[0]
	for _, next := range sorted[1:] {
		var err error
		a, err = Adjacent(a, next)
		if err != nil {
			return cigar.Alignment{}, err
		}
	}
	return a, nil
}

func checkPair(prev, next cigar.Alignment, allowed int) error {
	pr, nr := prev.ReferenceSpan(), next.ReferenceSpan()
	if o := pr.End - nr.Start; o > allowed {
		return &cigar.OverlapError{
			Kind:    cigar.ErrNonSequential,
			Overlap: o, Allowed: allowed,
			Prev: prev, Next: next,
			PrevEnd: pr.End, NextStart: nr.Start,
		}
	}
	pq, nq := prev.QuerySpan(), next.QuerySpan()
	if o := pq.End - nq.Start; o > allowed {
		return &cigar.OverlapError{
			Kind:    cigar.ErrOverlapExceeded,
			Overlap: o, Allowed: allowed,
			Prev: prev, Next: next,
			PrevEnd: pq.End, NextStart: nq.Start,
		}
	}
	return nil
}
