// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import "fmt"

// Block is a half-open [Start, End) interval in either reference or
// query coordinates.
type Block struct {
	Start, End int
}

// Len returns the length of the block.
func (b Block) Len() int { return b.End - b.Start }

func (b Block) String() string { return fmt.Sprintf("[%d,%d)", b.Start, b.End) }

// Overlap returns the length of the overlap between a and b. A negative
// value is the distance separating two disjoint blocks.
func Overlap(a, b Block) int {
	return min(a.End, b.End) - max(a.Start, b.Start)
}

// ReferenceLen returns the number of reference positions consumed by c.
func (c Cigar) ReferenceLen() int {
	var n int
	for _, o := range c {
		if o.Type().Consumes().Reference {
			n += o.Len()
		}
	}
	return n
}

// ReferenceSpan returns the reference interval covered by c when its
// first reference consuming operation is placed at start.
func (c Cigar) ReferenceSpan(start int) Block {
	return Block{Start: start, End: start + c.ReferenceLen()}
}

// QueryLen returns the number of aligned query positions in c, that is
// the query positions consumed by operations other than clipping.
func (c Cigar) QueryLen() int {
	var n int
	for _, o := range c {
		if o.Type().ConsumesAlignedQuery() {
			n += o.Len()
		}
	}
	return n
}

// QuerySpan returns the aligned query interval of c. The interval starts
// after any left clipping, hard clips included.
func (c Cigar) QuerySpan() Block {
	start := c.LeftClip(true)
	return Block{Start: start, End: start + c.QueryLen()}
}

// InferredQueryLen returns the expected length of the query sequence
// stored with the alignment, soft clipped bases included.
func (c Cigar) InferredQueryLen() int {
	_, n := c.Lengths()
	return n
}

// InferredReferenceLen returns the number of reference positions the
// alignment spans. It is equivalent to ReferenceLen.
func (c Cigar) InferredReferenceLen() int {
	n, _ := c.Lengths()
	return n
}

// DeletionBlocks returns the reference intervals of deletions and skips in c
// that are at least minLen long, with the alignment anchored at start.
func (c Cigar) DeletionBlocks(start, minLen int) []Block {
	var blocks []Block
	pos := start
	for _, o := range c {
		t := o.Type()
		if (t == Deletion || t == Skipped) && o.Len() >= minLen {
			blocks = append(blocks, Block{Start: pos, End: pos + o.Len()})
		}
		if t.Consumes().Reference {
			pos += o.Len()
		}
	}
	return blocks
}

// MappingBlocks returns the reference intervals covered by c anchored at
// start. Deletions and skips shorter than split are considered covered,
// longer ones separate blocks.
func (c Cigar) MappingBlocks(start, split int) []Block {
	var (
		blocks []Block
		cur    Block
		pos    = start
		open   bool
	)
	for _, o := range c {
		t := o.Type()
		if !t.Consumes().Reference {
			continue
		}
		if (t == Deletion || t == Skipped) && o.Len() >= split {
			if open {
				blocks = append(blocks, cur)
				open = false
			}
			pos += o.Len()
			continue
		}
		if !open {
			cur = Block{Start: pos}
			open = true
		}
		pos += o.Len()
		cur.End = pos
	}
	if open {
		blocks = append(blocks, cur)
	}
	return blocks
}
