// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonsink

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xdg-go/lenient"
	"go.mongodb.org/mongo-driver/bson"
)

var chromium = lenient.ChromiumOptions(lenient.DefaultMaxDepth)

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		label  string
		input  string
		output bson.D
	}{
		{label: "empty", input: `{}`, output: bson.D{}},
		{
			label:  "scalars",
			input:  `{"n":null,"t":true,"f":false,"i":-7,"d":1.5,"s":"str"}`,
			output: bson.D{{Key: "n", Value: nil}, {Key: "t", Value: true}, {Key: "f", Value: false}, {Key: "i", Value: int32(-7)}, {Key: "d", Value: 1.5}, {Key: "s", Value: "str"}},
		},
		{
			label:  "degraded integers",
			input:  `{"big":2147483648,"small":-2147483649}`,
			output: bson.D{{Key: "big", Value: float64(2147483648)}, {Key: "small", Value: float64(-2147483649)}},
		},
		{
			label:  "nested",
			input:  `{"a":[1,"x",[],{"b":{}}],"c":{"d":[null]}}`,
			output: bson.D{{Key: "a", Value: bson.A{int32(1), "x", bson.A{}, bson.D{{Key: "b", Value: bson.D{}}}}}, {Key: "c", Value: bson.D{{Key: "d", Value: bson.A{nil}}}}},
		},
		{
			label:  "duplicate key keeps position",
			input:  `{"a":1,"b":2,"a":"last"}`,
			output: bson.D{{Key: "a", Value: "last"}, {Key: "b", Value: int32(2)}},
		},
		{
			label:  "chromium extensions",
			input:  "{\"a\": \"\\x41\\v\" /* comment */}",
			output: bson.D{{Key: "a", Value: "A\v"}},
		},
	}

	for _, c := range cases {
		c := c
		t.Run(c.label, func(t *testing.T) {
			t.Parallel()

			got, err := Unmarshal([]byte(c.input), chromium)
			require.NoError(t, err)
			require.NoError(t, got.Validate())

			expect, err := bson.Marshal(c.output)
			require.NoError(t, err)
			require.Equal(t, bson.Raw(expect), got, "got %s, expected %s", got, bson.Raw(expect))
		})
	}
}

func TestUnmarshalLongArray(t *testing.T) {
	t.Parallel()

	input := []byte("{\"a\":[")
	expect := make(bson.A, 0, 150)
	for i := 0; i < 150; i++ {
		if i > 0 {
			input = append(input, ',')
		}
		input = append(input, '0')
		expect = append(expect, int32(0))
	}
	input = append(input, "]}"...)

	got, err := Unmarshal(input, chromium)
	require.NoError(t, err)
	want, err := bson.Marshal(bson.D{{Key: "a", Value: expect}})
	require.NoError(t, err)
	require.Equal(t, bson.Raw(want), got)

	last, err := got.LookupErr("a", "149")
	require.NoError(t, err)
	require.Equal(t, int32(0), last.Int32())
}

func TestUnmarshalErrors(t *testing.T) {
	t.Parallel()

	for _, in := range []string{`[1,2]`, `"s"`, `3`, `null`} {
		_, err := Unmarshal([]byte(in), chromium)
		require.True(t, errors.Is(err, ErrNotDocument), "input %s: got %v", in, err)
	}

	_, err := Unmarshal([]byte(`{"a\u0000b":1}`), chromium)
	require.Error(t, err)
	require.Contains(t, err.Error(), "NUL")

	_, err = Unmarshal([]byte(`{"a":[{"\u0000":1}]}`), chromium)
	require.Error(t, err)

	_, err = Unmarshal([]byte(`{"a":`), chromium)
	var pe *lenient.ParseError
	require.True(t, errors.As(err, &pe), "got %v", err)
}

func TestBuilderReuse(t *testing.T) {
	t.Parallel()

	var b Builder
	_, err := b.Document()
	require.ErrorIs(t, err, ErrNotDocument)

	require.NoError(t, lenient.Decode([]byte(`{"a":1}`), chromium, &b))
	first, err := b.Document()
	require.NoError(t, err)

	b.Reset()
	_, err = b.Document()
	require.ErrorIs(t, err, ErrNotDocument)

	require.NoError(t, lenient.Decode([]byte(`{"a":1}`), chromium, &b))
	second, err := b.Document()
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestArrayKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "0", arrayKey(0))
	require.Equal(t, "99", arrayKey(99))
	require.Equal(t, "100", arrayKey(100))
	require.Equal(t, "12345", arrayKey(12345))
}

func TestArrayReserveSize(t *testing.T) {
	t.Parallel()

	a := &array{}
	a.AppendInteger(1)
	a.ReserveSize(8)
	require.GreaterOrEqual(t, cap(a.items), 9)
	require.Len(t, a.items, 1)
}
