// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient

import (
	"errors"
	"fmt"
	"math"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// SyntaxError is malformed input: an unterminated string, an invalid
	// escape, an unexpected character and so on.
	SyntaxError ErrorKind = iota
	// RecursionLimitExceeded means the input nests deeper than
	// Options.MaxDepth.
	RecursionLimitExceeded
	// TrailingData means non-white space follows a complete top-level value.
	TrailingData
)

func (k ErrorKind) String() string {
	switch k {
	case SyntaxError:
		return "syntax error"
	case RecursionLimitExceeded:
		return "recursion limit exceeded"
	case TrailingData:
		return "trailing data"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinels usable with errors.Is against a *ParseError.
var (
	ErrRecursionLimit = errors.New("recursion limit exceeded")
	ErrTrailingData   = errors.New("trailing characters")
)

// ParseError records a JSON parsing failure and the 1-based line and column
// where the scanner stopped.
type ParseError struct {
	Kind   ErrorKind
	Line   int
	Column int
	Msg    string
}

func (pe *ParseError) Error() string {
	return fmt.Sprintf("%s at line %d column %d", pe.Msg, pe.Line, pe.Column)
}

// Is reports whether target is the sentinel for pe's Kind.
func (pe *ParseError) Is(target error) bool {
	switch target {
	case ErrRecursionLimit:
		return pe.Kind == RecursionLimitExceeded
	case ErrTrailingData:
		return pe.Kind == TrailingData
	}
	return false
}

// Position32 returns the line and column for callers that store them as
// 32-bit integers.  Values that do not fit are reported as -1.
func (pe *ParseError) Position32() (line, column int32) {
	return clamp32(pe.Line), clamp32(pe.Column)
}

func clamp32(n int) int32 {
	if n < math.MinInt32 || n > math.MaxInt32 {
		return -1
	}
	return int32(n)
}
