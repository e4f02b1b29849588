// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"fmt"

	"github.com/DamLabResources/cigarmath/cigar"
)

// Annotated is an alignment position decorated with the query base
// and quality found at that position.
type Annotated struct {
	*Index

	// Base and Qual are only meaningful when HasBase is true.
	// Qual is zero when no qualities were provided.
	Base, Qual byte
	HasBase    bool
}

// Attach returns the positions of the alignment of c at refStart annotated
// with bases from seq and qualities from qual. The query positions of the
// Index values count hard clipped positions, so bases are looked up by their
// offset within seq, which only advances for operations that store bases.
// Operations that store no bases, deletions and hard clips for example, are
// not annotated. qual may be nil.
func Attach(c cigar.Cigar, refStart int, seq, qual []byte) ([]Annotated, error) {
	if n := c.InferredQueryLen(); n != len(seq) {
		return nil, fmt.Errorf("coord: sequence length %d does not match cigar %v query length %d: %w",
			len(seq), c, n, cigar.ErrInvalidArgument)
	}
	if qual != nil && len(qual) != len(seq) {
		return nil, fmt.Errorf("coord: quality length %d does not match sequence length %d: %w",
			len(qual), len(seq), cigar.ErrInvalidArgument)
	}
	idx, err := Indexes(c, refStart)
	if err != nil {
		return nil, err
	}
	a := make([]Annotated, len(idx))
	var off int
	for i := range idx {
		a[i].Index = &idx[i]
		if !idx[i].Type.Consumes().Query {
			continue
		}
		a[i].Base = seq[off]
		if qual != nil {
			a[i].Qual = qual[off]
		}
		a[i].HasBase = true
		off++
	}
	return a, nil
}
