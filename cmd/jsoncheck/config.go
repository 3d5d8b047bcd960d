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

	"github.com/alecthomas/kingpin/v2"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/xdg-go/lenient"
)

const (
	outputNone  = "none"
	outputDebug = "debug"
	outputBSON  = "bson"
)

// config holds the command line.  Dialect flags are only applied when set,
// so they override the config file rather than its defaults.
type config struct {
	configFile  string
	files       []string
	output      string
	bench       bool
	concurrency int
	metricsFile string
	logLevel    string
	strict      bool

	maxDepth        int
	maxDepthSet     bool
	trailingCommas  bool
	trailingSet     bool
	replaceInvalid  bool
	replaceSet      bool
	comments        bool
	commentsSet     bool
	controlChars    bool
	controlCharsSet bool
}

func registerFlags(app *kingpin.Application) *config {
	cfg := &config{}
	app.Flag("config.file", "YAML file with decoder options.").StringVar(&cfg.configFile)
	app.Flag("output", "What to print for each valid file.").Default(outputNone).EnumVar(&cfg.output, outputNone, outputDebug, outputBSON)
	app.Flag("bench", "Report decoding throughput per file.").BoolVar(&cfg.bench)
	app.Flag("concurrency", "Number of files to check in parallel.").Default("1").IntVar(&cfg.concurrency)
	app.Flag("metrics.textfile", "Write Prometheus metrics to this file when done.").StringVar(&cfg.metricsFile)
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").EnumVar(&cfg.logLevel, "debug", "info", "warn", "error")
	app.Flag("strict", "Disable every dialect extension before applying other flags.").BoolVar(&cfg.strict)

	app.Flag("max-depth", "Maximum container nesting depth.").IsSetByUser(&cfg.maxDepthSet).IntVar(&cfg.maxDepth)
	app.Flag("allow-trailing-commas", "Accept a comma before ']' or '}'.").IsSetByUser(&cfg.trailingSet).BoolVar(&cfg.trailingCommas)
	app.Flag("replace-invalid-characters", "Replace invalid UTF-8 in strings with U+FFFD.").IsSetByUser(&cfg.replaceSet).BoolVar(&cfg.replaceInvalid)
	app.Flag("allow-comments", "Accept // and /* */ comments.").IsSetByUser(&cfg.commentsSet).BoolVar(&cfg.comments)
	app.Flag("allow-control-chars", "Accept raw control characters in strings.").IsSetByUser(&cfg.controlCharsSet).BoolVar(&cfg.controlChars)

	app.Arg("files", "JSON files to check; '-' reads standard input. Files ending in .gz, .zst or .sz are decompressed first.").Required().StringsVar(&cfg.files)
	return cfg
}

// options resolves the decoder options: Chromium defaults, then the config
// file, then --strict, then individual flags.
func (cfg *config) options() (lenient.Options, error) {
	opts := lenient.ChromiumOptions(lenient.DefaultMaxDepth)
	if cfg.configFile != "" {
		var err error
		opts, err = loadOptions(cfg.configFile, opts)
		if err != nil {
			return opts, err
		}
	}
	if cfg.strict {
		opts = lenient.StrictOptions(opts.MaxDepth)
	}
	if cfg.maxDepthSet {
		opts.MaxDepth = cfg.maxDepth
	}
	if cfg.trailingSet {
		opts.AllowTrailingCommas = cfg.trailingCommas
	}
	if cfg.replaceSet {
		opts.ReplaceInvalidCharacters = cfg.replaceInvalid
	}
	if cfg.commentsSet {
		opts.AllowComments = cfg.comments
	}
	if cfg.controlCharsSet {
		opts.AllowControlChars = cfg.controlChars
	}
	if opts.MaxDepth < 2 {
		return opts, errors.Errorf("max depth must be at least 2, got %d", opts.MaxDepth)
	}
	return opts, nil
}

// loadOptions overlays the YAML file at path onto defaults.  Unknown keys are
// rejected.
func loadOptions(path string, defaults lenient.Options) (lenient.Options, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return defaults, errors.Wrap(err, "reading config file")
	}
	return parseOptions(buf, defaults)
}

func parseOptions(buf []byte, defaults lenient.Options) (lenient.Options, error) {
	opts := defaults
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && err != io.EOF {
		return defaults, errors.Wrap(err, "parsing config file")
	}
	return opts, nil
}
