// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

// LeftClip returns the number of clipped positions at the start of c.
// Hard clipped positions are only counted if withHard is true.
func (c Cigar) LeftClip(withHard bool) int {
	var n int
	for _, o := range c {
		if !o.Type().IsClip() {
			break
		}
		if o.Type() == SoftClipped || withHard {
			n += o.Len()
		}
	}
	return n
}

// RightClip returns the number of clipped positions at the end of c.
// Hard clipped positions are only counted if withHard is true.
func (c Cigar) RightClip(withHard bool) int {
	var n int
	for i := len(c) - 1; i >= 0; i-- {
		t := c[i].Type()
		if !t.IsClip() {
			break
		}
		if t == SoftClipped || withHard {
			n += c[i].Len()
		}
	}
	return n
}

// IsHardClipped returns whether either end of c is hard clipped.
func (c Cigar) IsHardClipped() bool {
	if len(c) == 0 {
		return false
	}
	return c[0].Type() == HardClipped || c[len(c)-1].Type() == HardClipped
}

// Declip returns the sub-slice of c with leading and trailing clip
// operations removed. The returned Cigar shares storage with c.
func (c Cigar) Declip() Cigar {
	i, j := 0, len(c)
	for i < j && c[i].Type().IsClip() {
		i++
	}
	for j > i && c[j-1].Type().IsClip() {
		j--
	}
	return c[i:j]
}
