// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Command jsoncheck validates JSON files against the lenient decoder and
// optionally prints them in debug or BSON form.
package main

import (
	"os"

	"github.com/alecthomas/kingpin/v2"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

func main() {
	app := kingpin.New("jsoncheck", "Validate and convert JSON using the Chromium JSON dialect.")
	cfg := registerFlags(app)
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := newLogger(cfg.logLevel)
	opts, err := cfg.options()
	if err != nil {
		level.Error(logger).Log("msg", "invalid configuration", "err", err)
		os.Exit(2)
	}

	c := newChecker(opts, cfg, logger, os.Stdin, os.Stdout)
	failed := c.run(cfg.files)

	if cfg.metricsFile != "" {
		if err := c.writeMetrics(cfg.metricsFile); err != nil {
			level.Error(logger).Log("msg", "failed to write metrics", "file", cfg.metricsFile, "err", err)
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func newLogger(lvl string) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(os.Stderr))
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	var allow level.Option
	switch lvl {
	case "debug":
		allow = level.AllowDebug()
	case "warn":
		allow = level.AllowWarn()
	case "error":
		allow = level.AllowError()
	default:
		allow = level.AllowInfo()
	}
	return level.NewFilter(logger, allow)
}
