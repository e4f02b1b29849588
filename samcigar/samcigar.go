// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package samcigar converts between biogo/hts SAM records and cigarmath
// alignments, and groups the split alignments of reads for combination.
package samcigar

import (
	"github.com/biogo/hts/sam"
	"github.com/pkg/errors"

	"github.com/DamLabResources/cigarmath/cigar"
	"github.com/DamLabResources/cigarmath/coord"
)

// FromSAM returns the cigar.Cigar equivalent of c. Zero length
// operations are dropped.
func FromSAM(c sam.Cigar) cigar.Cigar {
	if len(c) == 0 {
		return nil
	}
	cc := make(cigar.Cigar, 0, len(c))
	for _, co := range c {
		if co.Len() == 0 {
			continue
		}
		cc = append(cc, cigar.NewOp(cigar.OpType(co.Type()), co.Len()))
	}
	return cc
}

// ToSAM returns the sam.Cigar equivalent of c. Zero length
// operations are dropped.
func ToSAM(c cigar.Cigar) sam.Cigar {
	if len(c) == 0 {
		return nil
	}
	sc := make(sam.Cigar, 0, len(c))
	for _, o := range c {
		if o.Len() == 0 {
			continue
		}
		sc = append(sc, sam.NewCigarOp(sam.CigarOpType(o.Type()), o.Len()))
	}
	return sc
}

// AlignmentOf returns the alignment described by r.
func AlignmentOf(r *sam.Record) cigar.Alignment {
	return cigar.Alignment{Pos: r.Pos, Cigar: FromSAM(r.Cigar)}
}

// Annotate returns the positions of the alignment of r annotated with the
// bases and qualities of the record. Qualities are omitted when the record
// has none.
func Annotate(r *sam.Record) ([]coord.Annotated, error) {
	seq := r.Seq.Expand()
	qual := r.Qual
	if len(qual) == 0 || qual[0] == 0xff {
		qual = nil
	}
	a, err := coord.Attach(FromSAM(r.Cigar), r.Pos, seq, qual)
	if err != nil {
		return nil, errors.Wrapf(err, "samcigar: failed to annotate %s", r.Name)
	}
	return a, nil
}
