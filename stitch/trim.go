// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stitch trims alignments and combines the partial alignments of
// a single query into one alignment.
package stitch

import (
	"fmt"

	"github.com/DamLabResources/cigarmath/cigar"
)

// ClipMode specifies the clip operation Trim adds in place of trimmed
// query positions.
type ClipMode int

const (
	NoClip   ClipMode = iota // Trimmed positions are removed.
	SoftClip                 // Trimmed positions are soft clipped.
	HardClip                 // Trimmed positions are hard clipped.
)

var clipNames = []string{"none", "soft", "hard"}

func (m ClipMode) String() string {
	if m < NoClip || m > HardClip {
		return fmt.Sprintf("ClipMode(%d)", int(m))
	}
	return clipNames[m]
}

// ParseClipMode returns the ClipMode named by s. The empty string is NoClip.
func ParseClipMode(s string) (ClipMode, error) {
	if s == "" {
		return NoClip, nil
	}
	for m, n := range clipNames {
		if s == n {
			return ClipMode(m), nil
		}
	}
	return NoClip, fmt.Errorf("stitch: unknown clip mode %q: %w", s, cigar.ErrInvalidArgument)
}

func (m ClipMode) op() cigar.OpType {
	if m == HardClip {
		return cigar.HardClipped
	}
	return cigar.SoftClipped
}

// Trim removes left query positions from the start and right query positions
// from the end of the alignment a. Operations are split when the trim point
// falls within them. The returned alignment's position is advanced by the
// reference positions trimmed from the left.
//
// While query positions remain to be trimmed, operations that consume no query
// are dropped along with the trimmed positions, and their reference length is
// included in the anchor shift. Trimming more positions than the alignment holds
// leaves an empty Cigar.
//
// When clip is SoftClip or HardClip, a clip operation of the trimmed length is
// added to each trimmed end, and neither length may exceed cigar.MaxOpLen.
func Trim(a cigar.Alignment, left, right int, clip ClipMode) (cigar.Alignment, error) {
	if clip < NoClip || clip > HardClip {
		return cigar.Alignment{}, fmt.Errorf("stitch: invalid clip mode %v: %w", clip, cigar.ErrInvalidArgument)
	}
	if left < 0 || right < 0 {
		return cigar.Alignment{}, fmt.Errorf("stitch: invalid trim lengths left=%d right=%d: %w",
			left, right, cigar.ErrInvalidArgument)
	}
	if clip != NoClip && (left > cigar.MaxOpLen || right > cigar.MaxOpLen) {
		return cigar.Alignment{}, fmt.Errorf("stitch: clip lengths left=%d right=%d exceed maximum operation length: %w",
			left, right, cigar.ErrInvalidArgument)
	}
	if left == 0 && right == 0 {
		return a, nil
	}

	c, delta := trimLeft(a.Cigar, left)
	c = trimRight(c, right)

	if clip != NoClip {
		t := clip.op()
		cc := make(cigar.Cigar, 0, len(c)+2)
		if left > 0 {
			cc = append(cc, cigar.NewOp(t, left))
		}
		cc = append(cc, c...)
		if right > 0 {
			cc = append(cc, cigar.NewOp(t, right))
		}
		c = cc
	}
	return cigar.Alignment{Pos: a.Pos + delta, Cigar: c}, nil
}

// trimLeft returns a copy of c with n query positions removed from the
// start and the number of reference positions removed with them.
func trimLeft(c cigar.Cigar, n int) (cigar.Cigar, int) {
	if n == 0 {
		return c, 0
	}
	var (
		delta int
		head  cigar.Cigar
	)
	i := 0
	for i < len(c) && n > 0 {
		o := c[i]
		i++
		con := o.Type().Consumes()
		if !con.Query || o.Len() <= n {
			if con.Query {
				n -= o.Len()
			}
			if con.Reference {
				delta += o.Len()
			}
			continue
		}
		head = cigar.Cigar{cigar.NewOp(o.Type(), o.Len()-n)}
		if con.Reference {
			delta += n
		}
		n = 0
	}
	t := make(cigar.Cigar, 0, len(head)+len(c)-i)
	t = append(t, head...)
	return append(t, c[i:]...), delta
}

// trimRight returns a copy of c with n query positions removed from the end.
func trimRight(c cigar.Cigar, n int) cigar.Cigar {
	if n == 0 {
		return c
	}
	var tail cigar.Cigar
	j := len(c)
	for j > 0 && n > 0 {
		j--
		o := c[j]
		if !o.Type().Consumes().Query {
			continue
		}
		if o.Len() <= n {
			n -= o.Len()
			continue
		}
		tail = cigar.Cigar{cigar.NewOp(o.Type(), o.Len()-n)}
		n = 0
	}
	t := make(cigar.Cigar, 0, j+len(tail))
	t = append(t, c[:j]...)
	return append(t, tail...)
}
