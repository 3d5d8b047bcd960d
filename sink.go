// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient

// ValueSink receives the decoded tree.  Decode writes to the sink exactly
// once, through one of the Construct methods, before descending into
// containers through the returned handles.
//
// On error the sink may be partially populated; callers should discard it.
type ValueSink interface {
	ConstructNone()
	ConstructBool(b bool)
	ConstructInteger(i int32)
	ConstructDouble(f float64)
	ConstructString(s string)
	ConstructDict() DictHandle
	ConstructList() ListHandle
}

// DictHandle inserts or overwrites keys of a dictionary under construction.
type DictHandle interface {
	SetNoneKey(key string)
	SetBoolKey(key string, b bool)
	SetIntegerKey(key string, i int32)
	SetDoubleKey(key string, f float64)
	SetStringKey(key string, s string)
	SetDictKey(key string) DictHandle
	SetListKey(key string) ListHandle
}

// ListHandle appends to a list under construction.  Order is preserved.
type ListHandle interface {
	AppendNone()
	AppendBool(b bool)
	AppendInteger(i int32)
	AppendDouble(f float64)
	AppendString(s string)
	AppendDict() DictHandle
	AppendList() ListHandle
	// ReserveSize is a capacity hint and may be ignored.
	ReserveSize(n int)
}

// Discard is a ValueSink that drops everything written to it.
var Discard ValueSink = discard{}

type discard struct{}

func (discard) ConstructNone()               {}
func (discard) ConstructBool(bool)           {}
func (discard) ConstructInteger(int32)       {}
func (discard) ConstructDouble(float64)      {}
func (discard) ConstructString(string)       {}
func (discard) ConstructDict() DictHandle    { return discard{} }
func (discard) ConstructList() ListHandle    { return discard{} }
func (discard) SetNoneKey(string)            {}
func (discard) SetBoolKey(string, bool)      {}
func (discard) SetIntegerKey(string, int32)  {}
func (discard) SetDoubleKey(string, float64) {}
func (discard) SetStringKey(string, string)  {}
func (discard) SetDictKey(string) DictHandle { return discard{} }
func (discard) SetListKey(string) ListHandle { return discard{} }
func (discard) AppendNone()                  {}
func (discard) AppendBool(bool)              {}
func (discard) AppendInteger(int32)          {}
func (discard) AppendDouble(float64)         {}
func (discard) AppendString(string)          {}
func (discard) AppendDict() DictHandle       { return discard{} }
func (discard) AppendList() ListHandle       { return discard{} }
func (discard) ReserveSize(int)              {}
