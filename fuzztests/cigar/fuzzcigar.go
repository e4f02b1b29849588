package fuzzcigar

import (
	"github.com/DamLabResources/cigarmath/cigar"
	"github.com/DamLabResources/cigarmath/coord"
	"github.com/DamLabResources/cigarmath/stitch"
)

func Fuzz(data []byte) int {
	a, err := cigar.ParseAlignment(data)
	if err != nil {
		return 0
	}
	var n int
	for _, o := range a.Cigar {
		n += o.Len()
	}
	if a.Pos < 0 || n > 1<<16 {
		return 0
	}
	c, err := cigar.ParseCigar([]byte(a.Cigar.String()))
	if err != nil || !c.Equal(a.Cigar) {
		panic("round trip failed for " + a.String())
	}

	idx, err := coord.Indexes(a.Cigar, a.Pos)
	if err != nil {
		return 0
	}
	sites := make([]int, 0, len(idx))
	for _, x := range idx {
		if x.Ref.Mapped {
			sites = append(sites, x.Ref.Pos)
		}
	}
	pairs, err := coord.Pairs(a.Cigar, a.Pos)
	if err != nil || len(pairs) != len(idx) {
		panic("pairs do not match indexes for " + a.String())
	}
	for _, e := range []coord.Edge{coord.EdgeNone, coord.EdgeLeft, coord.EdgeRight} {
		if _, err := coord.Liftover(a.Cigar, a.Pos, sites, e, coord.DefaultLimit); err != nil {
			panic(err)
		}
	}

	m := a.Cigar.InferredQueryLen()
	t, err := stitch.Trim(a, m/3, m/3, stitch.NoClip)
	if err != nil {
		panic(err)
	}
	if t.Cigar.InferredQueryLen() != m-2*(m/3) {
		panic("trim removed wrong number of positions from " + a.String())
	}
	if t.Pos < a.Pos {
		panic("trim moved alignment left")
	}
	t, err = stitch.Trim(a, m/3, m/3, stitch.SoftClip)
	if err != nil {
		panic(err)
	}
	if t.Cigar.InferredQueryLen() != m {
		panic("soft clipped trim changed query length of " + a.String())
	}
	return 1
}
