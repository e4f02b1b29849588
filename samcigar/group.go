// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package samcigar

import (
	"github.com/biogo/hts/sam"

	"github.com/DamLabResources/cigarmath/cigar"
)

// Group holds the mapped records of a single read on one strand
// of one reference.
type Group struct {
	Name    string
	Ref     *sam.Reference
	Reverse bool
	Records []*sam.Record
}

// Alignments returns the alignments of the records in g.
func (g *Group) Alignments() []cigar.Alignment {
	alns := make([]cigar.Alignment, len(g.Records))
	for i, r := range g.Records {
		alns[i] = AlignmentOf(r)
	}
	return alns
}

type groupKey struct {
	name    string
	ref     int
	reverse bool
}

// Grouper collects primary and supplementary records into Groups.
// Unmapped and secondary records are ignored.
//
// The zero value is ready to use.
type Grouper struct {
	index  map[groupKey]int
	groups []*Group
}

// Add adds r to its Group and returns whether r was accepted.
func (g *Grouper) Add(r *sam.Record) bool {
	if r.Flags&(sam.Unmapped|sam.Secondary) != 0 || r.Ref == nil || len(r.Cigar) == 0 {
		return false
	}
	k := groupKey{name: r.Name, ref: r.Ref.ID(), reverse: r.Flags&sam.Reverse != 0}
	if g.index == nil {
		g.index = make(map[groupKey]int)
	}
	i, ok := g.index[k]
	if !ok {
		i = len(g.groups)
		g.index[k] = i
		g.groups = append(g.groups, &Group{Name: r.Name, Ref: r.Ref, Reverse: k.reverse})
	}
	g.groups[i].Records = append(g.groups[i].Records, r)
	return true
}

// Groups returns the collected Groups in the order their
// first record was added.
func (g *Grouper) Groups() []*Group { return g.groups }

// Len returns the number of Groups.
func (g *Grouper) Len() int { return len(g.groups) }

// Reset discards all collected Groups.
func (g *Grouper) Reset() {
	g.index = nil
	g.groups = nil
}

// GroupRecords reads every record from it and returns the resulting Groups.
func GroupRecords(it *sam.Iterator) ([]*Group, error) {
	var g Grouper
	for it.Next() {
		g.Add(it.Record())
	}
	return g.Groups(), it.Error()
}
