// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package value

import (
	"math"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var debugConfig = jsoniter.Config{IndentionStep: 3}.Froze()

// DebugString renders v as pretty-printed JSON with a three space indent and
// a trailing newline.  Doubles always carry a fraction or exponent so the
// output decodes back to the same kinds.
func (v *Value) DebugString() string {
	stream := debugConfig.BorrowStream(nil)
	defer debugConfig.ReturnStream(stream)

	writeValue(stream, v)
	stream.WriteRaw("\n")
	return string(stream.Buffer())
}

func writeValue(stream *jsoniter.Stream, v *Value) {
	switch v.kind {
	case KindBool:
		stream.WriteBool(v.b)
	case KindInteger:
		stream.WriteInt32(v.i)
	case KindDouble:
		stream.WriteRaw(formatDouble(v.f))
	case KindString:
		stream.WriteString(v.s)
	case KindDict:
		if v.dict.Len() == 0 {
			stream.WriteEmptyObject()
			return
		}
		stream.WriteObjectStart()
		for i, k := range v.dict.keys {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(k)
			writeValue(stream, v.dict.vals[k])
		}
		stream.WriteObjectEnd()
	case KindList:
		if v.list.Len() == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, item := range v.list.items {
			if i > 0 {
				stream.WriteMore()
			}
			writeValue(stream, item)
		}
		stream.WriteArrayEnd()
	default:
		stream.WriteNil()
	}
}

// formatDouble uses plain notation between 1e-6 and 1e21 and exponent
// notation elsewhere.  Non-finite values have no JSON form and are written
// as null.
func formatDouble(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	s := strconv.FormatFloat(f, format, -1, 64)
	if !strings.ContainsAny(s, ".e") {
		s += ".0"
	}
	return s
}
