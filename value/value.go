// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package value is an in-memory tree of JSON values that can be filled by
// lenient.Decode.  Dictionaries keep keys in insertion order.
package value

import "github.com/xdg-go/lenient"

// Kind is the type of a Value.
type Kind int

// Value kinds.  A zero Value is KindUnset until a Construct method is called.
const (
	KindUnset Kind = iota
	KindNone
	KindBool
	KindInteger
	KindDouble
	KindString
	KindDict
	KindList
)

var kindNames = [...]string{"unset", "none", "bool", "integer", "double", "string", "dict", "list"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Value is a single node of the tree.  It implements lenient.ValueSink.
type Value struct {
	kind Kind
	b    bool
	i    int32
	f    float64
	s    string
	dict *Dict
	list *List
}

var _ lenient.ValueSink = (*Value)(nil)

// Parse decodes data into a new Value.
func Parse(data []byte, opts lenient.Options) (*Value, error) {
	v := &Value{}
	if err := lenient.Decode(data, opts, v); err != nil {
		return nil, err
	}
	return v, nil
}

// NewNone returns a null value.
func NewNone() *Value { return &Value{kind: KindNone} }

// NewBool returns a boolean value.
func NewBool(b bool) *Value { return &Value{kind: KindBool, b: b} }

// NewInteger returns an integer value.
func NewInteger(i int32) *Value { return &Value{kind: KindInteger, i: i} }

// NewDouble returns a double value.
func NewDouble(f float64) *Value { return &Value{kind: KindDouble, f: f} }

// NewString returns a string value.
func NewString(s string) *Value { return &Value{kind: KindString, s: s} }

// NewDict returns an empty dictionary value.
func NewDict() *Value { return &Value{kind: KindDict, dict: newDict()} }

// NewList returns an empty list value.
func NewList() *Value { return &Value{kind: KindList, list: &List{}} }

// Kind returns the type of v.
func (v *Value) Kind() Kind { return v.kind }

// Bool returns the boolean held by v and whether v is a bool.
func (v *Value) Bool() (bool, bool) { return v.b, v.kind == KindBool }

// Int returns the integer held by v and whether v is an integer.
func (v *Value) Int() (int32, bool) { return v.i, v.kind == KindInteger }

// Double returns the double held by v and whether v is a double.  Integers
// are not converted.
func (v *Value) Double() (float64, bool) { return v.f, v.kind == KindDouble }

// Str returns the string held by v and whether v is a string.
func (v *Value) Str() (string, bool) { return v.s, v.kind == KindString }

// Dict returns the dictionary held by v, or nil.
func (v *Value) Dict() *Dict { return v.dict }

// List returns the list held by v, or nil.
func (v *Value) List() *List { return v.list }

func (v *Value) ConstructNone()            { *v = Value{kind: KindNone} }
func (v *Value) ConstructBool(b bool)      { *v = Value{kind: KindBool, b: b} }
func (v *Value) ConstructInteger(i int32)  { *v = Value{kind: KindInteger, i: i} }
func (v *Value) ConstructDouble(f float64) { *v = Value{kind: KindDouble, f: f} }
func (v *Value) ConstructString(s string)  { *v = Value{kind: KindString, s: s} }

func (v *Value) ConstructDict() lenient.DictHandle {
	*v = Value{kind: KindDict, dict: newDict()}
	return v.dict
}

func (v *Value) ConstructList() lenient.ListHandle {
	*v = Value{kind: KindList, list: &List{}}
	return v.list
}

// Equal reports whether a and b hold the same tree.  Integers and doubles
// never compare equal to each other; dictionary key order is ignored.
func Equal(a, b *Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindBool:
		return a.b == b.b
	case KindInteger:
		return a.i == b.i
	case KindDouble:
		return a.f == b.f
	case KindString:
		return a.s == b.s
	case KindDict:
		if a.dict.Len() != b.dict.Len() {
			return false
		}
		for _, k := range a.dict.keys {
			other := b.dict.Get(k)
			if other == nil || !Equal(a.dict.vals[k], other) {
				return false
			}
		}
		return true
	case KindList:
		if a.list.Len() != b.list.Len() {
			return false
		}
		for i, item := range a.list.items {
			if !Equal(item, b.list.items[i]) {
				return false
			}
		}
		return true
	}
	return true
}
