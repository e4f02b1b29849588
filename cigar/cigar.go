// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cigar provides the CIGAR alignment operation model, a text codec
// for CIGAR strings and block level arithmetic over CIGARs.
package cigar

import (
	"bytes"
	"fmt"
)

// Cigar is a set of CIGAR operations.
type Cigar []Op

// IsValid returns whether the CIGAR string is valid for a record of the given
// sequence length. Validity is defined by the sum of query consuming operations
// matching the given length and clipping operations only being present at the
// ends of alignments, with soft clips allowed inside a flanking hard clip.
func (c Cigar) IsValid(length int) bool {
	for i, o := range c {
		t := o.Type()
		if o.Len() == 0 {
			return false
		}
		if t == HardClipped && i != 0 && i != len(c)-1 {
			return false
		}
		if t == SoftClipped && i != 0 && i != len(c)-1 {
			if c[i-1].Type() != HardClipped && c[i+1].Type() != HardClipped {
				return false
			}
		}
		if t.Consumes().Query {
			length -= o.Len()
		}
	}
	return length == 0
}

// String returns the CIGAR string for c.
func (c Cigar) String() string {
	if len(c) == 0 {
		return "*"
	}
	var b bytes.Buffer
	for _, o := range c {
		fmt.Fprint(&b, o)
	}
	return b.String()
}

// Lengths returns the number of reference and read bases described by the Cigar.
func (c Cigar) Lengths() (ref, read int) {
	for _, o := range c {
		con := o.Type().Consumes()
		if con.Reference {
			ref += o.Len()
		}
		if con.Query {
			read += o.Len()
		}
	}
	return ref, read
}

// Collapse returns a copy of c with runs of adjacent operations of the same
// type merged into a single operation. The order of operations is retained.
// A run longer than MaxOpLen is held in consecutive operations of MaxOpLen
// followed by the remainder.
func (c Cigar) Collapse() Cigar {
	if len(c) == 0 {
		return nil
	}
	cc := make(Cigar, 0, len(c))
	for _, o := range c {
		if o.Len() == 0 {
			continue
		}
		if n := len(cc) - 1; n >= 0 && cc[n].Type() == o.Type() {
			l := cc[n].Len() + o.Len()
			if l <= MaxOpLen {
				cc[n] = NewOp(o.Type(), l)
				continue
			}
			cc[n] = NewOp(o.Type(), MaxOpLen)
			o = NewOp(o.Type(), l-MaxOpLen)
		}
		cc = append(cc, o)
	}
	return cc
}

// Simplify returns a collapsed copy of c with sequence match and mismatch
// operations replaced by alignment matches.
func (c Cigar) Simplify() Cigar {
	s := make(Cigar, len(c))
	for i, o := range c {
		if t := o.Type(); t == Equal || t == Mismatch {
			o = NewOp(Match, o.Len())
		}
		s[i] = o
	}
	return s.Collapse()
}

// Equal returns whether c and d describe the same operations.
func (c Cigar) Equal(d Cigar) bool {
	if len(c) != len(d) {
		return false
	}
	for i := range c {
		if c[i] != d[i] {
			return false
		}
	}
	return true
}

var powers = []int{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8}

// atoi returns the integer interpretation of b which must be an ASCII decimal number representation.
func atoi(b []byte, i int) (int, error) {
	if len(b) > len(powers) {
		return 0, fmt.Errorf("cigar: invalid cigar operation count: %q at %d", b, i)
	}
	n := 0
	k := len(b) - 1
	for i, v := range b {
		n += int(v-'0') * powers[k-i]
	}
	if n <= 0 || MaxOpLen < n {
		return n, fmt.Errorf("cigar: invalid cigar operation count: %q at %d", b, i)
	}
	return n, nil
}

func isSpace(b byte) bool { return b == ' ' || b == '\t' }

// ParseCigar returns a Cigar parsed from the provided byte slice.
// Blanks between operations are ignored and "*" is parsed as an
// empty Cigar.
func ParseCigar(b []byte) (Cigar, error) {
	if len(b) == 1 && b[0] == '*' {
		return nil, nil
	}
	var c Cigar
	for i := 0; i < len(b); {
		if isSpace(b[i]) {
			i++
			continue
		}
		j := i
		for j < len(b) && '0' <= b[j] && b[j] <= '9' {
			j++
		}
		if j == len(b) {
			return nil, fmt.Errorf("cigar: failed to parse cigar string %q: missing operation at %d", b, j)
		}
		if j == i {
			return nil, fmt.Errorf("cigar: failed to parse cigar string %q: missing operation count at %d", b, i)
		}
		n, err := atoi(b[i:j], i)
		if err != nil {
			return nil, err
		}
		op := opTypeLookup[b[j]]
		if op == lastOp {
			return nil, fmt.Errorf("cigar: failed to parse cigar string %q: unknown operation %q", b, b[j])
		}
		c = append(c, NewOp(op, n))
		i = j + 1
	}
	return c, nil
}

// Parse returns a Cigar parsed from the provided string.
func Parse(s string) (Cigar, error) { return ParseCigar([]byte(s)) }

// MustParse is like Parse but panics if s cannot be parsed.
// It is intended for constant CIGAR strings in tests and examples.
func MustParse(s string) Cigar {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
