// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// readInput returns the decompressed contents of name, or of standard input
// when name is "-".  Compression is chosen by file extension.
func (c *checker) readInput(name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(c.stdin)
		return data, errors.Wrap(err, "reading standard input")
	}
	raw, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	data, err := decompress(filepath.Ext(name), raw)
	return data, errors.Wrapf(err, "decompressing %s", name)
}

func decompress(ext string, raw []byte) ([]byte, error) {
	switch ext {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, err
		}
		defer r.Close()
		return io.ReadAll(r)
	case ".zst":
		d, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
		if err != nil {
			return nil, err
		}
		defer d.Close()
		return d.DecodeAll(raw, nil)
	case ".sz":
		return io.ReadAll(snappy.NewReader(bytes.NewReader(raw)))
	}
	return raw, nil
}
