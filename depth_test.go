// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xdg-go/lenient"
)

func TestDepthLimit(t *testing.T) {
	t.Parallel()

	for _, depth := range []int{2, 3, 10, lenient.DefaultMaxDepth} {
		depth := depth
		opts := lenient.ChromiumOptions(depth)
		for _, tok := range [][2]string{{"[", "]"}, {`{"k":`, "}"}} {
			tok := tok
			t.Run(fmt.Sprintf("%s depth %d", tok[0], depth), func(t *testing.T) {
				t.Parallel()

				err := lenient.Decode([]byte(nested(tok[0], tok[1], depth)), opts, lenient.Discard)
				require.NoError(t, err, "nesting at the limit")

				err = lenient.Decode([]byte(nested(tok[0], tok[1], depth+1)), opts, lenient.Discard)
				require.Error(t, err, "nesting past the limit")
				require.True(t, errors.Is(err, lenient.ErrRecursionLimit), "got %v", err)

				var pe *lenient.ParseError
				require.True(t, errors.As(err, &pe))
				require.Equal(t, lenient.RecursionLimitExceeded, pe.Kind)
			})
		}
	}
}

func TestDepthLimitMixed(t *testing.T) {
	t.Parallel()

	opts := lenient.ChromiumOptions(2)

	require.NoError(t, lenient.Decode([]byte(`[[1]]`), opts, lenient.Discard))
	require.NoError(t, lenient.Decode([]byte(`{"a":[1,2],"b":{"c":3}}`), opts, lenient.Discard))
	// Siblings do not accumulate depth.
	require.NoError(t, lenient.Decode([]byte(`[[],[],[],{}]`), opts, lenient.Discard))
	// Scalars do not count as a level.
	require.NoError(t, lenient.Decode([]byte(`[["deep"]]`), opts, lenient.Discard))

	err := lenient.Decode([]byte(`{"a":[{}]}`), opts, lenient.Discard)
	require.True(t, errors.Is(err, lenient.ErrRecursionLimit), "got %v", err)
}

func TestDepthLimitPosition(t *testing.T) {
	t.Parallel()

	err := lenient.Decode([]byte("[\n [\n  [1]]]"), lenient.ChromiumOptions(2), lenient.Discard)
	var pe *lenient.ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
	require.Equal(t, 3, pe.Line)
	require.Equal(t, 3, pe.Column)
	require.Equal(t, "recursion limit exceeded at line 3 column 3", pe.Error())
}

func TestDepthLimitLargeInput(t *testing.T) {
	t.Parallel()

	// Far deeper than the limit must fail cleanly rather than exhaust the stack.
	input := nested("[", "]", 1_000_000)
	err := lenient.Decode([]byte(input), lenient.ChromiumOptions(lenient.DefaultMaxDepth), lenient.Discard)
	require.True(t, errors.Is(err, lenient.ErrRecursionLimit), "got %v", err)
}
