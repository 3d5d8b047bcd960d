// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xdg-go/lenient"
	"github.com/xdg-go/lenient/value"
)

const SuiteDir = "testdata/suite"

func readSuiteFile(t *testing.T, f string) []byte {
	t.Helper()
	text, err := os.ReadFile(filepath.Join(SuiteDir, f))
	if err != nil {
		t.Fatalf("error reading %s: %v", f, err)
	}
	return text
}

// Files prefixed "y" are plain JSON and must decode identically in every
// dialect, and their debug form must re-parse to the same tree.
func TestSuite_Passing(t *testing.T) {
	t.Parallel()

	files := getTestFiles(t, SuiteDir, "y", ".json")
	for _, f := range files {
		f := f
		t.Run(f, func(t *testing.T) {
			t.Parallel()
			text := readSuiteFile(t, f)

			strict, err := value.Parse(text, lenient.StrictOptions(lenient.DefaultMaxDepth))
			if err != nil {
				t.Fatalf("strict decode error: %v", err)
			}
			chromium, err := value.Parse(text, lenient.ChromiumOptions(lenient.DefaultMaxDepth))
			if err != nil {
				t.Fatalf("chromium decode error: %v", err)
			}
			if !value.Equal(strict, chromium) {
				t.Fatalf("dialects disagree:\nstrict:   %schromium: %s", strict.DebugString(), chromium.DebugString())
			}

			debug := chromium.DebugString()
			again, err := value.Parse([]byte(debug), lenient.StrictOptions(lenient.DefaultMaxDepth))
			if err != nil {
				t.Fatalf("debug form doesn't parse: %v\n%s", err, debug)
			}
			if !value.Equal(chromium, again) {
				t.Fatalf("debug form changed value:\nGot:    %sExpect: %s", again.DebugString(), debug)
			}
			if again.DebugString() != debug {
				t.Fatalf("debug form not idempotent:\n%s\n%s", again.DebugString(), debug)
			}
		})
	}
}

// Files prefixed "i" use Chromium extensions: accepted by the Chromium
// dialect and rejected by the strict one.
func TestSuite_Extensions(t *testing.T) {
	t.Parallel()

	files := getTestFiles(t, SuiteDir, "i", ".json")
	for _, f := range files {
		f := f
		t.Run(f, func(t *testing.T) {
			t.Parallel()
			text := readSuiteFile(t, f)

			if err := lenient.Decode(text, lenient.ChromiumOptions(lenient.DefaultMaxDepth), lenient.Discard); err != nil {
				t.Fatalf("chromium decode error: %v", err)
			}
			if lenient.Valid(text, lenient.StrictOptions(lenient.DefaultMaxDepth)) {
				t.Fatalf("expected strict decode of '%s' to fail", string(text))
			}
		})
	}
}

func TestSuite_Failing(t *testing.T) {
	t.Parallel()

	files := getTestFiles(t, SuiteDir, "n", ".json")
	for _, f := range files {
		f := f
		t.Run(f, func(t *testing.T) {
			t.Parallel()
			text := readSuiteFile(t, f)

			got, err := value.Parse(text, lenient.ChromiumOptions(lenient.DefaultMaxDepth))
			if err == nil {
				t.Fatalf("expected error but got none for '%s' (%s)", string(text), got.DebugString())
			}
		})
	}
}
