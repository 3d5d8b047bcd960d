// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package lenient is a streaming, depth-bounded JSON decoder that accepts the
// JSON dialect understood by Chromium's JSON reader.  It reads untrusted
// bytes in a single pass and pushes every value directly into a caller
// supplied ValueSink, so no intermediate document is built.
//
// # Dialect
//
// Options selects the extensions to standard JSON:
//
//   - `//` and `/* */` comments
//   - a trailing comma before `]` or `}`
//   - raw control characters inside strings
//   - the `\v` and `\xNN` escapes
//   - replacement of invalid UTF-8 and unpaired surrogates with U+FFFD
//
// ChromiumOptions returns Chromium's defaults: everything except trailing
// commas and character replacement is accepted.
//
// # Numbers
//
// Integers that fit in 32 bits are written with ConstructInteger and its
// siblings.  Larger integers, and anything with a fraction or exponent, are
// written as the nearest float64.  Precision beyond 2^53 is lost, as it is
// in Chromium.
//
// # Nesting
//
// Options.MaxDepth limits how many containers may be nested, counting the
// outermost one.  Exceeding it is an ordinary error of kind
// RecursionLimitExceeded rather than a stack overflow.
//
// # Errors
//
// Every failure is a *ParseError carrying a 1-based line and column.
//
// # Sinks
//
// Package value provides an in-memory tree sink and package bsonsink
// converts straight to BSON documents.
package lenient
