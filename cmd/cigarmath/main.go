// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

/*
cigarmath performs coordinate arithmetic on CIGAR alignments.

	cigarmath combine reads.bam
	cigarmath trim -left 2 -clip soft 10:5M1D3M
	cigarmath liftover -edge right 2:1S2M2I1M2D1M2S 3 4 5
	cigarmath index 2:1S2M2I1M2D1M2S
	cigarmath pairs 5:2S5M3H

Alignments are given as pos:cigar with a zero-based reference position.
The combine command joins the primary and supplementary alignments of each
read and writes name, reference, position and CIGAR as tab separated values.
*/

import (
	"flag"
	"fmt"
	"os"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"
)

func cigarmathUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] command [command options] args\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(os.Stderr, "  %s %s\n", c.name, c.usage)
	}
	fmt.Fprintf(os.Stderr, "Other options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = cigarmathUsage
	shutdown := grail.Init()
	defer shutdown()

	if flag.NArg() == 0 {
		flag.Usage()
		log.Fatalf("Missing command")
	}
	cmd, ok := lookup(flag.Arg(0))
	if !ok {
		flag.Usage()
		log.Fatalf("Unknown command %q", flag.Arg(0))
	}
	if err := cmd.run(os.Stdout, flag.Args()[1:]); err != nil {
		if err == flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "Usage: %s %s %s\n", os.Args[0], cmd.name, cmd.usage)
			return
		}
		log.Fatalf("%s: %v", cmd.name, err)
	}
	log.Debug.Printf("exiting")
}
