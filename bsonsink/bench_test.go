// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package bsonsink

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
)

func benchInput() []byte {
	var sb strings.Builder
	sb.WriteString(`{"items":[`)
	for i := 0; i < 500; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(`{"id":`)
		sb.WriteString(strconv.Itoa(i))
		sb.WriteString(`,"name":"item","price":12.5,"tags":["a","b"],"ok":true,"none":null}`)
	}
	sb.WriteString(`]}`)
	return []byte(sb.String())
}

func BenchmarkUnmarshal(b *testing.B) {
	input := benchInput()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Unmarshal(input, chromium); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDriverExtJSON(b *testing.B) {
	input := benchInput()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var d bson.D
		if err := bson.UnmarshalExtJSON(input, false, &d); err != nil {
			b.Fatal(err)
		}
		if _, err := bson.Marshal(d); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNaive(b *testing.B) {
	input := benchInput()
	b.SetBytes(int64(len(input)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var m map[string]interface{}
		if err := json.Unmarshal(input, &m); err != nil {
			b.Fatal(err)
		}
		if _, err := bson.Marshal(m); err != nil {
			b.Fatal(err)
		}
	}
}
