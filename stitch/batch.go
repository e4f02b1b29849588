// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stitch

import (
	"runtime"

	"github.com/grailbio/base/traverse"

	"github.com/DamLabResources/cigarmath/cigar"
)

// Opts holds the parameters for combining batches of alignments.
type Opts struct {
	// AllowedOverlap is passed to Multiple for each group.
	AllowedOverlap int

	// Parallelism is the number of concurrent jobs.
	// Zero means runtime.NumCPU().
	Parallelism int
}

// DefaultOpts are the default Batch options.
var DefaultOpts = Opts{
	AllowedOverlap: 0,
	Parallelism:    0,
}

// Result is the outcome of combining one group of alignments.
type Result struct {
	Alignment cigar.Alignment
	Err       error
}

// Batch combines each group of alignments with Multiple, returning one Result
// per group in the order of groups. A failure to combine a group is reported
// in its Result and does not affect the other groups. The returned error is
// reserved for failures of the traversal itself.
func Batch(groups [][]cigar.Alignment, opts Opts) ([]Result, error) {
	results := make([]Result, len(groups))
	if len(groups) == 0 {
		return results, nil
	}
	parallelism := opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.NumCPU()
	}
	if parallelism > len(groups) {
		parallelism = len(groups)
	}

	// Each job writes only to its own range of results.
	err := traverse.Each(parallelism, func(jobIdx int) error {
		startIdx := (jobIdx * len(groups)) / parallelism
		endIdx := ((jobIdx + 1) * len(groups)) / parallelism
		for i := startIdx; i < endIdx; i++ {
			results[i].Alignment, results[i].Err = Multiple(groups[i], opts.AllowedOverlap)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}
