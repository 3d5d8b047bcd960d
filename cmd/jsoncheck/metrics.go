// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	files    *prometheus.CounterVec
	bytes    prometheus.Counter
	duration prometheus.Histogram
}

func newMetrics(r prometheus.Registerer) *metrics {
	return &metrics{
		files: promauto.With(r).NewCounterVec(prometheus.CounterOpts{
			Name: "jsoncheck_files_total",
			Help: "Total number of files checked, by result.",
		}, []string{"result"}),
		bytes: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Name: "jsoncheck_decoded_bytes_total",
			Help: "Total number of bytes decoded.",
		}),
		duration: promauto.With(r).NewHistogram(prometheus.HistogramOpts{
			Name:    "jsoncheck_decode_duration_seconds",
			Help:    "Time taken to decode a file.",
			Buckets: prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
	}
}
