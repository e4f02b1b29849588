// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"fmt"
)

// Op is a single CIGAR operation including the operation type and the
// length of the operation.
type Op uint32

// MaxOpLen is the longest length an Op can hold.
const MaxOpLen = 1<<28 - 1

// NewOp returns a CIGAR operation of the specified type with length n.
// The length must be in [0, MaxOpLen].
func NewOp(t OpType, n int) Op {
	return Op(t) | (Op(n) << 4)
}

// Type returns the type of the CIGAR operation for the Op.
func (o Op) Type() OpType { return OpType(o & 0xf) }

// Len returns the number of positions affected by the Op CIGAR operation.
func (o Op) Len() int { return int(o >> 4) }

// String returns the string representation of the Op.
func (o Op) String() string { return fmt.Sprintf("%d%s", o.Len(), o.Type().String()) }

// An OpType represents the type of operation described by an Op.
type OpType byte

const (
	Match       OpType = iota // Alignment match (can be a sequence match or mismatch).
	Insertion                 // Insertion to the reference.
	Deletion                  // Deletion from the reference.
	Skipped                   // Skipped region from the reference.
	SoftClipped               // Soft clipping (clipped sequences present in SEQ).
	HardClipped               // Hard clipping (clipped sequences NOT present in SEQ).
	Padded                    // Padding (silent deletion from padded reference).
	Equal                     // Sequence match.
	Mismatch                  // Sequence mismatch.
	Back                      // Skip backwards.
	lastOp
)

var opLetters = []string{"M", "I", "D", "N", "S", "H", "P", "=", "X", "B", "?"}

// Consumes returns the CIGAR operation alignment consumption characteristics for the OpType.
//
// The Consume values for each of the OpTypes is as follows:
//
//	              Query  Reference
//	Match         true   true
//	Insertion     true   false
//	Deletion      false  true
//	Skipped       false  true
//	SoftClipped   true   false
//	HardClipped   false  false
//	Padded        false  false
//	Equal         true   true
//	Mismatch      true   true
//	Back          false  false
//
// Back is recorded as consuming neither coordinate space so that reference
// positions reported by the coordinate engine never decrease.
func (t OpType) Consumes() Consume {
	if t > lastOp {
		t = lastOp
	}
	return consume[t]
}

// ConsumesAlignedQuery returns whether the OpType consumes query positions
// that lie within the aligned portion of the query, that is query consuming
// operations other than clipping.
func (t OpType) ConsumesAlignedQuery() bool {
	if t > lastOp {
		t = lastOp
	}
	return alignedQuery[t]
}

// IsClip returns whether the OpType is a soft or hard clip.
func (t OpType) IsClip() bool { return t == SoftClipped || t == HardClipped }

// String returns the string representation of an OpType.
func (t OpType) String() string {
	if t > lastOp {
		t = lastOp
	}
	return opLetters[t]
}

// Consume describes how CIGAR operations consume alignment bases.
type Consume struct {
	Query, Reference bool
}

var consume = [...]Consume{
	Match:       {Query: true, Reference: true},
	Insertion:   {Query: true, Reference: false},
	Deletion:    {Query: false, Reference: true},
	Skipped:     {Query: false, Reference: true},
	SoftClipped: {Query: true, Reference: false},
	HardClipped: {Query: false, Reference: false},
	Padded:      {Query: false, Reference: false},
	Equal:       {Query: true, Reference: true},
	Mismatch:    {Query: true, Reference: true},
	Back:        {Query: false, Reference: false},
	lastOp:      {},
}

var (
	alignedQuery [lastOp + 1]bool
	opTypeLookup [256]OpType
)

func init() {
	for t := Match; t < lastOp; t++ {
		alignedQuery[t] = consume[t].Query && !t.IsClip()
	}
	for i := range opTypeLookup {
		opTypeLookup[i] = lastOp
	}
	for t, c := range []byte{'M', 'I', 'D', 'N', 'S', 'H', 'P', '=', 'X', 'B'} {
		opTypeLookup[c] = OpType(t)
	}
}
