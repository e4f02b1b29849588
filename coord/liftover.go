// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package coord

import (
	"fmt"

	"github.com/DamLabResources/cigarmath/cigar"
	"github.com/DamLabResources/cigarmath/internal/pool"
)

// Edge specifies how Liftover resolves reference sites that fall within
// a region of the alignment that consumes no query, such as a deletion.
type Edge int

const (
	EdgeNone  Edge = iota // Report the site as unmapped.
	EdgeLeft              // Report the nearest query position to the left.
	EdgeRight             // Report the nearest query position to the right.
)

var edgeNames = []string{"none", "left", "right"}

func (e Edge) String() string {
	if e < EdgeNone || e > EdgeRight {
		return fmt.Sprintf("Edge(%d)", int(e))
	}
	return edgeNames[e]
}

// ParseEdge returns the Edge named by s. The empty string is EdgeNone.
func ParseEdge(s string) (Edge, error) {
	if s == "" {
		return EdgeNone, nil
	}
	for e, n := range edgeNames {
		if s == n {
			return Edge(e), nil
		}
	}
	return EdgeNone, fmt.Errorf("coord: unknown edge %q: %w", s, cigar.ErrInvalidArgument)
}

// DefaultLimit is the default number of alignment positions Liftover
// will search on either side of a site that lands in a gap.
const DefaultLimit = 20

var (
	indexes   pool.Slices[Index]
	positions pool.Slices[int]
)

// Liftover returns the query position aligned to each of the reference sites,
// for the alignment of c starting at refStart. The returned slice has one
// element for each site, in the same order.
//
// Sites outside the reference span of the alignment are unmapped. Sites in an
// operation that consumes no query are unmapped when edge is EdgeNone, and
// otherwise take the nearest mapped query position found by searching at most
// limit alignment positions to the left or right. A gap wider than limit
// leaves the site unmapped; this is not an error.
func Liftover(c cigar.Cigar, refStart int, sites []int, edge Edge, limit int) ([]Position, error) {
	if edge < EdgeNone || edge > EdgeRight {
		return nil, fmt.Errorf("coord: invalid edge %v: %w", edge, cigar.ErrInvalidArgument)
	}
	if limit < 0 {
		return nil, fmt.Errorf("coord: invalid liftover limit %d: %w", limit, cigar.ErrInvalidArgument)
	}
	it, err := NewIterator(c, refStart)
	if err != nil {
		return nil, err
	}

	idx := indexes.Get(it.Len())
	defer indexes.Put(idx)
	idx = fill(idx, it)

	// Reference positions are visited exactly once each and in order,
	// so a dense table maps a reference offset to its alignment index.
	at := positions.Get(c.ReferenceLen())
	defer positions.Put(at)
	for i, x := range idx {
		if x.Ref.Mapped {
			at[x.Ref.Pos-refStart] = i
		}
	}

	lifted := make([]Position, len(sites))
	for k, site := range sites {
		r := site - refStart
		if r < 0 || len(at) <= r {
			continue
		}
		i := at[r]
		if q := idx[i].Query; q.Mapped || edge == EdgeNone {
			lifted[k] = q
			continue
		}
		switch edge {
		case EdgeLeft:
			for j := i - 1; j >= 0 && i-j <= limit; j-- {
				if idx[j].Query.Mapped {
					lifted[k] = idx[j].Query
					break
				}
			}
		case EdgeRight:
			for j := i + 1; j < len(idx) && j-i <= limit; j++ {
				if idx[j].Query.Mapped {
					lifted[k] = idx[j].Query
					break
				}
			}
		}
	}
	return lifted, nil
}
