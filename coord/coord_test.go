// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"errors"
	"math"
	"testing"

	"github.com/kortschak/utter"
	"gopkg.in/check.v1"

	"github.com/DamLabResources/cigarmath/cigar"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

var u = Unmapped

// The worked example used throughout:
//
//	ALNPOS   01234567890  Index of the entire alignment
//	RPOS    0123  456789  Index within the reference
//	REF     AAGA--CTTCGG
//	CIGAR    SMMIIMDDMSS
//	CIGIND   01122344566  Index of the cigar block
//	CBLKIND  00101001001  Index within the cigar block
//	QRY     -xAAGGC--Cxx
//	QPOS     012345  678  Index within the query
var (
	example      = cigar.MustParse("1S2M2I1M2D1M2S")
	exampleStart = 2
	exampleIdx   = []Index{
		{Alignment: 0, Ref: u, Query: At(0), Block: 0, Offset: 0, Type: cigar.SoftClipped},
		{Alignment: 1, Ref: At(2), Query: At(1), Block: 1, Offset: 0, Type: cigar.Match},
		{Alignment: 2, Ref: At(3), Query: At(2), Block: 1, Offset: 1, Type: cigar.Match},
		{Alignment: 3, Ref: u, Query: At(3), Block: 2, Offset: 0, Type: cigar.Insertion},
		{Alignment: 4, Ref: u, Query: At(4), Block: 2, Offset: 1, Type: cigar.Insertion},
		{Alignment: 5, Ref: At(4), Query: At(5), Block: 3, Offset: 0, Type: cigar.Match},
		{Alignment: 6, Ref: At(5), Query: u, Block: 4, Offset: 0, Type: cigar.Deletion},
		{Alignment: 7, Ref: At(6), Query: u, Block: 4, Offset: 1, Type: cigar.Deletion},
		{Alignment: 8, Ref: At(7), Query: At(6), Block: 5, Offset: 0, Type: cigar.Match},
		{Alignment: 9, Ref: u, Query: At(7), Block: 6, Offset: 0, Type: cigar.SoftClipped},
		{Alignment: 10, Ref: u, Query: At(8), Block: 6, Offset: 1, Type: cigar.SoftClipped},
	}
)

func (s *S) TestIterator(c *check.C) {
	it, err := NewIterator(example, exampleStart)
	c.Assert(err, check.IsNil)
	c.Check(it.Len(), check.Equals, 11)

	var got []Index
	for it.Next() {
		got = append(got, it.Index())
	}
	c.Check(got, check.DeepEquals, exampleIdx, check.Commentf("got:\n%s", utter.Sdump(got)))

	// Iteration is restartable.
	it.Reset()
	c.Assert(it.Next(), check.Equals, true)
	c.Check(it.Index(), check.Equals, exampleIdx[0])

	all, err := Indexes(example, exampleStart)
	c.Assert(err, check.IsNil)
	c.Check(all, check.DeepEquals, exampleIdx)
}

func (s *S) TestIteratorSpaces(c *check.C) {
	idx, err := Indexes(example, exampleStart)
	c.Assert(err, check.IsNil)
	var ref, query []Position
	for _, x := range idx {
		ref = append(ref, x.Ref)
		query = append(query, x.Query)
	}
	c.Check(ref, check.DeepEquals, []Position{u, At(2), At(3), u, u, At(4), At(5), At(6), At(7), u, u})
	c.Check(query, check.DeepEquals, []Position{At(0), At(1), At(2), At(3), At(4), At(5), u, u, At(6), At(7), At(8)})
}

func (s *S) TestIteratorHardClip(c *check.C) {
	idx, err := Indexes(cigar.MustParse("2H2M1H"), 10)
	c.Assert(err, check.IsNil)
	c.Check(idx, check.DeepEquals, []Index{
		{Alignment: 0, Ref: u, Query: At(0), Block: 0, Offset: 0, Type: cigar.HardClipped},
		{Alignment: 1, Ref: u, Query: At(1), Block: 0, Offset: 1, Type: cigar.HardClipped},
		{Alignment: 2, Ref: At(10), Query: At(2), Block: 1, Offset: 0, Type: cigar.Match},
		{Alignment: 3, Ref: At(11), Query: At(3), Block: 1, Offset: 1, Type: cigar.Match},
		{Alignment: 4, Ref: u, Query: u, Block: 2, Offset: 0, Type: cigar.HardClipped},
	})
}

func (s *S) TestIteratorEmpty(c *check.C) {
	for _, cig := range []cigar.Cigar{nil, {}, {cigar.NewOp(cigar.Match, 0)}} {
		_, err := NewIterator(cig, 0)
		c.Check(errors.Is(err, cigar.ErrEmptyAlignment), check.Equals, true)
		_, err = Indexes(cig, 0)
		c.Check(errors.Is(err, cigar.ErrEmptyAlignment), check.Equals, true)
		_, err = Liftover(cig, 0, []int{0}, EdgeNone, DefaultLimit)
		c.Check(errors.Is(err, cigar.ErrEmptyAlignment), check.Equals, true)
	}
}

func (s *S) TestConsumedLengths(c *check.C) {
	for _, cig := range []string{"1S2M2I1M2D1M2S", "3H4M1D3M2I3M4H", "10M3I3M2D6M", "5S4=1X3N2=7S"} {
		cg := cigar.MustParse(cig)
		r2q, err := RefToQuery(cg, 7)
		c.Assert(err, check.IsNil)
		c.Check(len(r2q), check.Equals, cg.ReferenceLen(), check.Commentf("cigar %s", cig))
		q2r, err := QueryToRef(cg, 7)
		c.Assert(err, check.IsNil)
		c.Check(len(q2r), check.Equals, cg.InferredQueryLen()+cg.LeftClip(true)-cg.LeftClip(false),
			check.Commentf("cigar %s", cig))
	}
}

func (s *S) TestRefToQuery(c *check.C) {
	got, err := RefToQuery(example, exampleStart)
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, []Position{At(1), At(2), At(5), u, u, At(6)})
}

func (s *S) TestQueryToRef(c *check.C) {
	got, err := QueryToRef(example, exampleStart)
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, []Position{u, At(2), At(3), u, u, At(4), At(7), u, u})
}

func (s *S) TestQueryToBlock(c *check.C) {
	got, err := QueryToBlock(example)
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, []BlockOffset{
		{0, 0}, {1, 0}, {1, 1}, {2, 0}, {2, 1}, {3, 0}, {5, 0}, {6, 0}, {6, 1},
	})
}

func (s *S) TestProjectionConsistency(c *check.C) {
	for _, cig := range []string{"1S2M2I1M2D1M2S", "3H4M1D3M2I3M4H", "2M5N3M1I"} {
		cg := cigar.MustParse(cig)
		q2r, err := QueryToRef(cg, 3)
		c.Assert(err, check.IsNil)
		r2q, err := RefToQuery(cg, 3)
		c.Assert(err, check.IsNil)
		for q, r := range q2r {
			if !r.Mapped {
				continue
			}
			c.Check(r2q[r.Pos-3], check.Equals, At(q), check.Commentf("cigar %s query %d", cig, q))
		}
	}
}

func (s *S) TestSlice(c *check.C) {
	for _, test := range []struct {
		beg, end int
		want     []Index
	}{
		{beg: math.MinInt, end: math.MaxInt, want: exampleIdx[1:]},
		{beg: 5, end: math.MaxInt, want: exampleIdx[6:]},
		{beg: math.MinInt, end: 5, want: exampleIdx[1:6]},
		{beg: 4, end: 7, want: exampleIdx[5:8]},
		{beg: 20, end: 30, want: nil},
	} {
		got, err := Slice(example, exampleStart, test.beg, test.end)
		c.Assert(err, check.IsNil)
		c.Check(got, check.DeepEquals, test.want, check.Commentf("[%d,%d) got:\n%s", test.beg, test.end, utter.Sdump(got)))
	}
}

func (s *S) TestLiftover(c *check.C) {
	sites := []int{3, 4, 5, 6, 7}
	for _, test := range []struct {
		edge  Edge
		limit int
		want  []Position
	}{
		{edge: EdgeRight, limit: DefaultLimit, want: []Position{At(2), At(5), At(6), At(6), At(6)}},
		{edge: EdgeLeft, limit: DefaultLimit, want: []Position{At(2), At(5), At(5), At(5), At(6)}},
		{edge: EdgeNone, limit: DefaultLimit, want: []Position{At(2), At(5), u, u, At(6)}},

		// The search is bounded by the limit.
		{edge: EdgeLeft, limit: 1, want: []Position{At(2), At(5), At(5), u, At(6)}},
		{edge: EdgeRight, limit: 1, want: []Position{At(2), At(5), u, At(6), At(6)}},
		{edge: EdgeRight, limit: 0, want: []Position{At(2), At(5), u, u, At(6)}},
	} {
		got, err := Liftover(example, exampleStart, sites, test.edge, test.limit)
		c.Assert(err, check.IsNil)
		c.Check(got, check.DeepEquals, test.want, check.Commentf("edge %v limit %d", test.edge, test.limit))
	}
}

func (s *S) TestLiftoverOutside(c *check.C) {
	got, err := Liftover(example, exampleStart, []int{-1, 0, 1, 8, 100, 2}, EdgeLeft, DefaultLimit)
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, []Position{u, u, u, u, u, At(1)})

	got, err = Liftover(cigar.MustParse("5I"), 0, []int{0}, EdgeRight, DefaultLimit)
	c.Assert(err, check.IsNil)
	c.Check(got, check.DeepEquals, []Position{u})

	got, err = Liftover(example, exampleStart, nil, EdgeNone, DefaultLimit)
	c.Assert(err, check.IsNil)
	c.Check(got, check.HasLen, 0)
}

func (s *S) TestLiftoverMatchesIterator(c *check.C) {
	cg := cigar.MustParse("2S3M4D2M1I3M5N1M")
	idx, err := Indexes(cg, 100)
	c.Assert(err, check.IsNil)
	span := cg.ReferenceSpan(100)
	var sites []int
	for r := span.Start; r < span.End; r++ {
		sites = append(sites, r)
	}
	got, err := Liftover(cg, 100, sites, EdgeNone, DefaultLimit)
	c.Assert(err, check.IsNil)
	for _, x := range idx {
		if !x.Ref.Mapped {
			continue
		}
		lifted := got[x.Ref.Pos-span.Start]
		c.Check(lifted, check.Equals, x.Query, check.Commentf("site %d", x.Ref.Pos))
		c.Check(lifted.Mapped, check.Equals, x.Type.Consumes().Query)
	}
}

func (s *S) TestLiftoverInvalid(c *check.C) {
	_, err := Liftover(example, exampleStart, []int{3}, Edge(7), DefaultLimit)
	c.Check(errors.Is(err, cigar.ErrInvalidArgument), check.Equals, true)
	_, err = Liftover(example, exampleStart, []int{3}, EdgeLeft, -1)
	c.Check(errors.Is(err, cigar.ErrInvalidArgument), check.Equals, true)
}

func (s *S) TestParseEdge(c *check.C) {
	for _, test := range []struct {
		in   string
		want Edge
	}{
		{in: "", want: EdgeNone},
		{in: "none", want: EdgeNone},
		{in: "left", want: EdgeLeft},
		{in: "right", want: EdgeRight},
	} {
		e, err := ParseEdge(test.in)
		c.Check(err, check.IsNil)
		c.Check(e, check.Equals, test.want)
		if test.in != "" {
			c.Check(e.String(), check.Equals, test.in)
		}
	}
	_, err := ParseEdge("middle")
	c.Check(errors.Is(err, cigar.ErrInvalidArgument), check.Equals, true)
	c.Check(Edge(9).String(), check.Equals, "Edge(9)")
}

func (s *S) TestAttach(c *check.C) {
	cg := cigar.MustParse("2H1S2M1I1D1M1S")
	seq := []byte("aCGtAg")
	qual := []byte{10, 11, 12, 13, 14, 15}
	a, err := Attach(cg, 5, seq, qual)
	c.Assert(err, check.IsNil)
	c.Assert(a, check.HasLen, 9)

	var bases []byte
	var quals []byte
	for _, x := range a {
		if x.HasBase {
			bases = append(bases, x.Base)
			quals = append(quals, x.Qual)
		}
	}
	c.Check(string(bases), check.Equals, string(seq))
	c.Check(quals, check.DeepEquals, qual)

	// Hard clipped positions take query positions but have no bases.
	c.Check(a[0].HasBase, check.Equals, false)
	c.Check(a[0].Query, check.Equals, At(0))
	c.Check(a[2].Base, check.Equals, byte('a'))
	c.Check(a[2].Query, check.Equals, At(2))

	// The deletion has no base.
	c.Check(a[6].Type, check.Equals, cigar.Deletion)
	c.Check(a[6].HasBase, check.Equals, false)
	c.Check(a[6].Ref, check.Equals, At(7))

	a, err = Attach(cg, 5, seq, nil)
	c.Assert(err, check.IsNil)
	c.Check(a[3].Base, check.Equals, byte('C'))
	c.Check(a[3].Qual, check.Equals, byte(0))

	_, err = Attach(cg, 5, seq[1:], nil)
	c.Check(errors.Is(err, cigar.ErrInvalidArgument), check.Equals, true)
	_, err = Attach(cg, 5, seq, qual[1:])
	c.Check(errors.Is(err, cigar.ErrInvalidArgument), check.Equals, true)
}

func (s *S) TestPairs(c *check.C) {
	pos := func(p int) Position {
		if p < 0 {
			return u
		}
		return At(p)
	}
	for _, test := range []struct {
		cigar string
		start int
		want  [][2]int // query, ref; -1 is unmapped
	}{
		{cigar: "5M", start: 0, want: [][2]int{{0, 0}, {1, 1}, {2, 2}, {3, 3}, {4, 4}}},
		{cigar: "5M", start: 5, want: [][2]int{{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}}},

		// REF 0123456--789
		// QRY      0123456
		{cigar: "2M2I3M", start: 5, want: [][2]int{{0, 5}, {1, 6}, {2, 6}, {3, 6}, {4, 7}, {5, 8}, {6, 9}}},

		// REF 0123456789
		// QRY  01--234
		{cigar: "2M2D3M", start: 1, want: [][2]int{{0, 1}, {1, 2}, {1, 3}, {1, 4}, {2, 5}, {3, 6}, {4, 7}}},

		{cigar: "2S5M3H", start: 5, want: [][2]int{
			{0, -1}, {1, -1},
			{2, 5}, {3, 6}, {4, 7}, {5, 8}, {6, 9},
			{7, -1}, {8, -1}, {9, -1},
		}},
		{cigar: "2S2D3M", start: 5, want: [][2]int{{0, -1}, {1, -1}, {1, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9}}},
		{cigar: "3H2S2M", start: 0, want: [][2]int{{0, -1}, {1, -1}, {2, -1}, {3, -1}, {4, -1}, {5, 0}, {6, 1}}},
		{cigar: "1M1I1M", start: 0, want: [][2]int{{0, 0}, {1, 0}, {2, 1}}},
		{cigar: "2I3M", start: 5, want: [][2]int{{0, -1}, {1, -1}, {2, 5}, {3, 6}, {4, 7}}},
		{cigar: "2D2M", start: 5, want: [][2]int{{-1, 5}, {-1, 6}, {0, 7}, {1, 8}}},
		{cigar: example.String(), start: exampleStart, want: [][2]int{
			{0, -1}, {1, 2}, {2, 3}, {3, 3}, {4, 3}, {5, 4}, {5, 5}, {5, 6}, {6, 7}, {7, -1}, {8, -1},
		}},
	} {
		want := make([]Pair, len(test.want))
		for i, p := range test.want {
			want[i] = Pair{Query: pos(p[0]), Ref: pos(p[1])}
		}
		got, err := Pairs(cigar.MustParse(test.cigar), test.start)
		c.Assert(err, check.IsNil)
		c.Check(got, check.DeepEquals, want, check.Commentf("%d:%s got %v", test.start, test.cigar, got))
	}

	_, err := Pairs(nil, 0)
	c.Check(errors.Is(err, cigar.ErrEmptyAlignment), check.Equals, true)
}
