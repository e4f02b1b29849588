// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cigar

import (
	"errors"
	"fmt"
)

// Errors returned by the coordinate and combination engines. Callers should
// test for them with errors.Is since they are usually wrapped with context.
var (
	ErrEmptyAlignment  = errors.New("empty alignment")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNoAlignments    = errors.New("no alignments")
	ErrOverlapExceeded = errors.New("overlap exceeded")
	ErrNonSequential   = errors.New("alignments not sequential")
)

// OverlapError is returned when two consecutive alignments of a query
// overlap by more than is allowed. Kind is either ErrOverlapExceeded,
// for overlaps in query space, or ErrNonSequential for overlaps in
// reference space.
type OverlapError struct {
	Kind error

	// Overlap is the measured overlap and Allowed
	// the maximum that was permitted.
	Overlap, Allowed int

	// Prev and Next are the offending alignments and
	// PrevEnd and NextStart the coordinates that were
	// compared in the space described by Kind.
	Prev, Next Alignment
	PrevEnd    int
	NextStart  int
}

func (e *OverlapError) Error() string {
	space := "query"
	if e.Kind == ErrNonSequential {
		space = "reference"
	}
	return fmt.Sprintf("%v: alignments overlap by %d bases in %s space (maximum allowed: %d): %v ends at %d but %v starts at %d",
		e.Kind, e.Overlap, space, e.Allowed, e.Prev, e.PrevEnd, e.Next, e.NextStart)
}

// Unwrap returns the kind of the overlap failure.
func (e *OverlapError) Unwrap() error { return e.Kind }
