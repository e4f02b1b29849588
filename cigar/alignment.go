// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"bytes"
	"fmt"
	"strconv"
)

// Alignment is a single contiguous mapping of a query, or part of
// a query, to a reference. Pos is the zero-based reference position
// of the first reference consuming operation of the Cigar.
type Alignment struct {
	Pos   int
	Cigar Cigar
}

// ReferenceSpan returns the reference interval covered by the alignment.
func (a Alignment) ReferenceSpan() Block { return a.Cigar.ReferenceSpan(a.Pos) }

// QuerySpan returns the aligned query interval of the alignment.
func (a Alignment) QuerySpan() Block { return a.Cigar.QuerySpan() }

// End returns the reference position immediately after the alignment.
func (a Alignment) End() int { return a.Pos + a.Cigar.ReferenceLen() }

// String returns the "pos:cigar" representation of the alignment.
func (a Alignment) String() string { return fmt.Sprintf("%d:%v", a.Pos, a.Cigar) }

// ParseAlignment parses an alignment in the "pos:cigar" form
// returned by Alignment.String.
func ParseAlignment(b []byte) (Alignment, error) {
	i := bytes.IndexByte(b, ':')
	if i < 0 {
		return Alignment{}, fmt.Errorf("cigar: failed to parse alignment %q: missing position", b)
	}
	pos, err := strconv.Atoi(string(bytes.TrimSpace(b[:i])))
	if err != nil {
		return Alignment{}, fmt.Errorf("cigar: failed to parse alignment %q: %v", b, err)
	}
	c, err := ParseCigar(bytes.TrimSpace(b[i+1:]))
	if err != nil {
		return Alignment{}, err
	}
	return Alignment{Pos: pos, Cigar: c}, nil
}
