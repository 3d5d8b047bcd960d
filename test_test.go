// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient_test

import (
	"os"
	"strings"
	"testing"

	"github.com/xdg-go/lenient"
	"github.com/xdg-go/lenient/value"
)

type decodeTestCase struct {
	label string
	input string
	// output is strict JSON describing the expected tree.
	output string
	errStr string
}

func testWithDecode(t *testing.T, cases []decodeTestCase, opts lenient.Options) {
	t.Helper()

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()

			got, err := value.Parse([]byte(c.input), opts)
			if c.errStr != "" {
				var msg string
				if err != nil {
					msg = err.Error()
				}
				if !strings.Contains(msg, c.errStr) {
					t.Errorf("expected error with '%s', but got %v", c.errStr, msg)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			expect := mustParseStrict(t, c.output)
			if !value.Equal(expect, got) {
				t.Fatalf("decoded value doesn't match expected:\nGot:    %sExpect: %s", got.DebugString(), expect.DebugString())
			}
		})
	}
}

func mustParseStrict(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.Parse([]byte(s), lenient.StrictOptions(lenient.DefaultMaxDepth))
	if err != nil {
		t.Fatalf("bad expected output %q: %v", s, err)
	}
	return v
}

func getTestFiles(t *testing.T, dir, prefix, suffix string) []string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}

	keep := make([]string, 0)
	for _, entry := range entries {
		name := entry.Name()
		if prefix != "" && !strings.HasPrefix(name, prefix) {
			continue
		}
		if suffix != "" && !strings.HasSuffix(name, suffix) {
			continue
		}
		keep = append(keep, name)
	}

	return keep
}

func nested(openTok, closeTok string, depth int) string {
	return strings.Repeat(openTok, depth) + strings.Repeat(closeTok, depth)
}
