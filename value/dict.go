// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package value

import "github.com/xdg-go/lenient"

// Dict is an insertion-ordered string-keyed map of values.  Setting a key
// that already exists replaces its value without moving it.
type Dict struct {
	keys []string
	vals map[string]*Value
}

var _ lenient.DictHandle = (*Dict)(nil)

func newDict() *Dict {
	return &Dict{vals: make(map[string]*Value)}
}

// Len returns the number of keys.
func (d *Dict) Len() int { return len(d.keys) }

// Keys returns the keys in insertion order.
func (d *Dict) Keys() []string {
	out := make([]string, len(d.keys))
	copy(out, d.keys)
	return out
}

// Get returns the value stored under key, or nil.
func (d *Dict) Get(key string) *Value {
	return d.vals[key]
}

// Set stores v under key.
func (d *Dict) Set(key string, v *Value) {
	*d.slot(key) = *v
}

func (d *Dict) slot(key string) *Value {
	if v, ok := d.vals[key]; ok {
		*v = Value{}
		return v
	}
	v := &Value{}
	d.keys = append(d.keys, key)
	d.vals[key] = v
	return v
}

func (d *Dict) SetNoneKey(key string)                    { d.slot(key).ConstructNone() }
func (d *Dict) SetBoolKey(key string, b bool)            { d.slot(key).ConstructBool(b) }
func (d *Dict) SetIntegerKey(key string, i int32)        { d.slot(key).ConstructInteger(i) }
func (d *Dict) SetDoubleKey(key string, f float64)       { d.slot(key).ConstructDouble(f) }
func (d *Dict) SetStringKey(key string, s string)        { d.slot(key).ConstructString(s) }
func (d *Dict) SetDictKey(key string) lenient.DictHandle { return d.slot(key).ConstructDict() }
func (d *Dict) SetListKey(key string) lenient.ListHandle { return d.slot(key).ConstructList() }
