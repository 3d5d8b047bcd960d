// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient

import "bytes"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Decode parses a single JSON value from data and writes it into sink.  A
// leading UTF-8 byte-order mark is skipped.  Input is not required to be
// valid UTF-8; invalid sequences inside strings are either replaced or
// rejected according to opts.
//
// Any failure is returned as a *ParseError.  The sink may then hold a
// partially built tree and should be discarded.
func Decode(data []byte, opts Options, sink ValueSink) error {
	data = stripBOM(data)

	s := newScanner(data, opts)
	root := builder{
		target: target{kind: targetNewValue, sink: sink},
		guard:  newRecursionGuard(opts.MaxDepth),
	}
	if err := root.visit(s); err != nil {
		return err
	}
	return s.end()
}

// Valid reports whether data decodes under opts, discarding the result.
func Valid(data []byte, opts Options) bool {
	return Decode(data, opts, Discard) == nil
}

func stripBOM(data []byte) []byte {
	if bytes.HasPrefix(data, utf8BOM) {
		return data[len(utf8BOM):]
	}
	return data
}

// end checks that only white space (and comments, if enabled) follows the
// top-level value.
func (s *scanner) end() error {
	if err := s.skipWS(); err != nil {
		return err
	}
	if s.pos < len(s.data) {
		return s.peekErrorf(TrailingData, msgTrailingChars)
	}
	return nil
}
