// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package value

import "github.com/xdg-go/lenient"

// List is an ordered sequence of values.
type List struct {
	items []*Value
}

var _ lenient.ListHandle = (*List)(nil)

// Len returns the number of elements.
func (l *List) Len() int { return len(l.items) }

// At returns the i'th element.  It panics if i is out of range.
func (l *List) At(i int) *Value { return l.items[i] }

// Append adds v to the end of the list.
func (l *List) Append(v *Value) {
	item := *v
	l.items = append(l.items, &item)
}

func (l *List) next() *Value {
	v := &Value{}
	l.items = append(l.items, v)
	return v
}

func (l *List) AppendNone()                    { l.next().ConstructNone() }
func (l *List) AppendBool(b bool)              { l.next().ConstructBool(b) }
func (l *List) AppendInteger(i int32)          { l.next().ConstructInteger(i) }
func (l *List) AppendDouble(f float64)         { l.next().ConstructDouble(f) }
func (l *List) AppendString(s string)          { l.next().ConstructString(s) }
func (l *List) AppendDict() lenient.DictHandle { return l.next().ConstructDict() }
func (l *List) AppendList() lenient.ListHandle { return l.next().ConstructList() }

// ReserveSize grows the list's capacity to hold n more elements.
func (l *List) ReserveSize(n int) {
	if n <= 0 || cap(l.items)-len(l.items) >= n {
		return
	}
	items := make([]*Value, len(l.items), len(l.items)+n)
	copy(items, l.items)
	l.items = items
}
