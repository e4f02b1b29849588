// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"strconv"

	"github.com/biogo/hts/sam"
	"github.com/grailbio/base/log"
	"github.com/pkg/errors"

	"github.com/DamLabResources/cigarmath/cigar"
	"github.com/DamLabResources/cigarmath/coord"
	"github.com/DamLabResources/cigarmath/samcigar"
	"github.com/DamLabResources/cigarmath/stitch"
)

type command struct {
	name  string
	usage string
	run   func(w io.Writer, args []string) error
}

var commands = []command{
	{name: "combine", usage: "[-overlap n] [-parallelism p] {sam,bam}path", run: combineMain},
	{name: "trim", usage: "[-left n] [-right n] [-clip none|soft|hard] pos:cigar", run: trimMain},
	{name: "liftover", usage: "[-edge none|left|right] [-limit n] pos:cigar site...", run: liftoverMain},
	{name: "index", usage: "pos:cigar", run: indexMain},
	{name: "pairs", usage: "pos:cigar", run: pairsMain},
}

func lookup(name string) (command, bool) {
	for _, c := range commands {
		if c.name == name {
			return c, true
		}
	}
	return command{}, false
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func combineMain(w io.Writer, args []string) error {
	fs := newFlagSet("combine")
	overlap := fs.Int("overlap", stitch.DefaultOpts.AllowedOverlap, "Maximum overlap allowed between the alignments of a read")
	parallelism := fs.Int("parallelism", stitch.DefaultOpts.Parallelism, "Maximum number of simultaneous combine jobs; 0 = runtime.NumCPU()")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.Errorf("combine: expected a single input path, got %d", fs.NArg())
	}
	r, err := openRecords(fs.Arg(0))
	if err != nil {
		return err
	}
	defer r.Close()

	opts := stitch.Opts{AllowedOverlap: *overlap, Parallelism: *parallelism}
	return combine(w, r, opts)
}

// combine groups the records read from r by read, combines each group
// and writes one line per successfully combined group to w.
func combine(w io.Writer, r sam.RecordReader, opts stitch.Opts) error {
	groups, err := samcigar.GroupRecords(sam.NewIterator(r))
	if err != nil {
		return errors.Wrap(err, "combine: reading records")
	}
	log.Debug.Printf("combine: collected %d groups", len(groups))

	alns := make([][]cigar.Alignment, len(groups))
	for i, g := range groups {
		alns[i] = g.Alignments()
	}
	results, err := stitch.Batch(alns, opts)
	if err != nil {
		return errors.Wrap(err, "combine")
	}

	bw := bufio.NewWriter(w)
	var failed int
	for i, res := range results {
		g := groups[i]
		if res.Err != nil {
			failed++
			log.Error.Printf("%s\t%s\t%v", g.Name, g.Ref.Name(), res.Err)
			continue
		}
		fmt.Fprintf(bw, "%s\t%s\t%d\t%v\n", g.Name, g.Ref.Name(), res.Alignment.Pos, res.Alignment.Cigar)
	}
	if failed != 0 {
		log.Printf("combine: failed to combine %d of %d groups", failed, len(groups))
	}
	return bw.Flush()
}

func trimMain(w io.Writer, args []string) error {
	fs := newFlagSet("trim")
	left := fs.Int("left", 0, "Number of query positions to trim from the start")
	right := fs.Int("right", 0, "Number of query positions to trim from the end")
	clip := fs.String("clip", stitch.NoClip.String(), "Clip operation to put in place of trimmed positions: none, soft or hard")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.Errorf("trim: expected a single alignment, got %d", fs.NArg())
	}
	mode, err := stitch.ParseClipMode(*clip)
	if err != nil {
		return err
	}
	a, err := cigar.ParseAlignment([]byte(fs.Arg(0)))
	if err != nil {
		return err
	}
	t, err := stitch.Trim(a, *left, *right, mode)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, t)
	return err
}

func liftoverMain(w io.Writer, args []string) error {
	fs := newFlagSet("liftover")
	edge := fs.String("edge", coord.EdgeNone.String(), "Resolution of sites in deletions: none, left or right")
	limit := fs.Int("limit", coord.DefaultLimit, "Maximum number of positions to search for a resolved site")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return errors.New("liftover: expected an alignment and at least one site")
	}
	e, err := coord.ParseEdge(*edge)
	if err != nil {
		return err
	}
	a, err := cigar.ParseAlignment([]byte(fs.Arg(0)))
	if err != nil {
		return err
	}
	sites := make([]int, fs.NArg()-1)
	for i, s := range fs.Args()[1:] {
		sites[i], err = strconv.Atoi(s)
		if err != nil {
			return errors.Wrapf(err, "liftover: invalid site %q", s)
		}
	}
	lifted, err := coord.Liftover(a.Cigar, a.Pos, sites, e, *limit)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	for i, p := range lifted {
		fmt.Fprintf(bw, "%d\t%v\n", sites[i], p)
	}
	return bw.Flush()
}

func indexMain(w io.Writer, args []string) error {
	fs := newFlagSet("index")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.Errorf("index: expected a single alignment, got %d", fs.NArg())
	}
	a, err := cigar.ParseAlignment([]byte(fs.Arg(0)))
	if err != nil {
		return err
	}
	it, err := coord.NewIterator(a.Cigar, a.Pos)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "aln\tref\tquery\tblock\toffset\top")
	for it.Next() {
		idx := it.Index()
		fmt.Fprintf(bw, "%d\t%v\t%v\t%d\t%d\t%v\n", idx.Alignment, idx.Ref, idx.Query, idx.Block, idx.Offset, idx.Type)
	}
	return bw.Flush()
}

func pairsMain(w io.Writer, args []string) error {
	fs := newFlagSet("pairs")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.Errorf("pairs: expected a single alignment, got %d", fs.NArg())
	}
	a, err := cigar.ParseAlignment([]byte(fs.Arg(0)))
	if err != nil {
		return err
	}
	pairs, err := coord.Pairs(a.Cigar, a.Pos)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "query\tref")
	for _, p := range pairs {
		fmt.Fprintf(bw, "%v\t%v\n", p.Query, p.Ref)
	}
	return bw.Flush()
}
