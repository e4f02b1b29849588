// Copyright ©2026 The cigarmath Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/biogo/hts/bam"
	"github.com/biogo/hts/sam"
	"github.com/klauspost/compress/gzip"
	"github.com/pkg/errors"
	"github.com/ulikunitz/xz"
	"golang.org/x/exp/mmap"
)

// recordReader is a sam.RecordReader that must be closed after use.
type recordReader interface {
	sam.RecordReader
	io.Closer
}

type closers []io.Closer

func (c closers) Close() error {
	var err error
	for i := len(c) - 1; i >= 0; i-- {
		if e := c[i].Close(); e != nil && err == nil {
			err = e
		}
	}
	return err
}

type samReader struct {
	*sam.Reader
	closers
}

type bamReader struct {
	*bam.Reader
	closers
}

func (r bamReader) Close() error {
	err := r.Reader.Close()
	if e := r.closers.Close(); e != nil && err == nil {
		err = e
	}
	return err
}

// openRecords opens the SAM or BAM file at path for reading. The path "-"
// reads SAM from standard input. Files ending in ".gz" or ".xz" are
// decompressed, and files ending in ".bam" are read as BAM.
func openRecords(path string) (recordReader, error) {
	var (
		r  io.Reader
		cs closers
	)
	if path == "-" {
		r = os.Stdin
	} else {
		m, err := mmap.Open(path)
		if err != nil {
			return nil, errors.Wrapf(err, "open %s", path)
		}
		cs = append(cs, m)
		r = io.NewSectionReader(m, 0, int64(m.Len()))
	}

	name := path
	switch {
	case strings.HasSuffix(name, ".gz"):
		gz, err := gzip.NewReader(r)
		if err != nil {
			cs.Close()
			return nil, errors.Wrapf(err, "open gzip stream %s", path)
		}
		cs = append(cs, gz)
		r = gz
		name = strings.TrimSuffix(name, ".gz")
	case strings.HasSuffix(name, ".xz"):
		xr, err := xz.NewReader(r)
		if err != nil {
			cs.Close()
			return nil, errors.Wrapf(err, "open xz stream %s", path)
		}
		r = xr
		name = strings.TrimSuffix(name, ".xz")
	}

	if strings.HasSuffix(name, ".bam") {
		br, err := bam.NewReader(r, 0)
		if err != nil {
			cs.Close()
			return nil, errors.Wrapf(err, "read bam header %s", path)
		}
		return bamReader{Reader: br, closers: cs}, nil
	}
	sr, err := sam.NewReader(r)
	if err != nil {
		cs.Close()
		return nil, errors.Wrapf(err, "read sam header %s", path)
	}
	return samReader{Reader: sr, closers: cs}, nil
}
