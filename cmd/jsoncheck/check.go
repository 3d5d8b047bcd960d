// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/xdg-go/lenient"
	"github.com/xdg-go/lenient/bsonsink"
	"github.com/xdg-go/lenient/value"
)

type checker struct {
	opts        lenient.Options
	output      string
	bench       bool
	concurrency int
	logger      log.Logger
	stdin       io.Reader
	out         io.Writer
	registry    *prometheus.Registry
	metrics     *metrics
}

// result is the outcome of checking one file.  Output is buffered so files
// checked in parallel still print in argument order.
type result struct {
	out bytes.Buffer
	err error
}

func newChecker(opts lenient.Options, cfg *config, logger log.Logger, stdin io.Reader, out io.Writer) *checker {
	reg := prometheus.NewRegistry()
	concurrency := cfg.concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	return &checker{
		opts:        opts,
		output:      cfg.output,
		bench:       cfg.bench,
		concurrency: concurrency,
		logger:      logger,
		stdin:       stdin,
		out:         out,
		registry:    reg,
		metrics:     newMetrics(reg),
	}
}

// run checks every file and returns the number that failed.
func (c *checker) run(files []string) int {
	results := make([]result, len(files))

	var g errgroup.Group
	g.SetLimit(c.concurrency)
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			results[i].err = c.checkFile(name, &results[i].out)
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for i, name := range files {
		if err := results[i].err; err != nil {
			failed++
			c.metrics.files.WithLabelValues("error").Inc()
			level.Error(c.logger).Log("msg", "check failed", "file", name, "err", err)
			continue
		}
		c.metrics.files.WithLabelValues("ok").Inc()
		level.Debug(c.logger).Log("msg", "check passed", "file", name)
		if _, err := results[i].out.WriteTo(c.out); err != nil {
			level.Warn(c.logger).Log("msg", "failed to write output", "file", name, "err", err)
		}
	}
	level.Info(c.logger).Log("msg", "done", "files", len(files), "failed", failed)
	return failed
}

func (c *checker) checkFile(name string, out io.Writer) error {
	data, err := c.readInput(name)
	if err != nil {
		return err
	}

	start := time.Now()
	err = c.decode(data, out)
	elapsed := time.Since(start)

	c.metrics.bytes.Add(float64(len(data)))
	c.metrics.duration.Observe(elapsed.Seconds())
	if err != nil {
		return err
	}
	if c.bench {
		reportResult(out, name, len(data), elapsed)
	}
	return nil
}

func (c *checker) decode(data []byte, out io.Writer) error {
	switch c.output {
	case outputDebug:
		v, err := value.Parse(data, c.opts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(out, v.DebugString())
		return err
	case outputBSON:
		doc, err := bsonsink.Unmarshal(data, c.opts)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, doc.String())
		return err
	}
	return lenient.Decode(data, c.opts, lenient.Discard)
}

func (c *checker) writeMetrics(path string) error {
	return prometheus.WriteToTextfile(path, c.registry)
}

func reportResult(w io.Writer, label string, size int, elapsed time.Duration) {
	micros := elapsed.Microseconds()
	if micros == 0 {
		micros = 1
	}
	throughput := float64(size) / float64(micros)
	fmt.Fprintf(w, "%15s %.2f MB/s (%s)\n", label, throughput, humanize.Bytes(uint64(size)))
}
