// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient

import "math"

type targetKind int

const (
	targetNewValue targetKind = iota
	targetAppendToList
	targetSetDictKey
)

// target is where the next decoded value is placed: the root sink, the end
// of a list, or a pending key of a dict.
type target struct {
	kind targetKind
	sink ValueSink
	list ListHandle
	dict DictHandle
	key  string
}

func (t target) putNone() {
	switch t.kind {
	case targetNewValue:
		t.sink.ConstructNone()
	case targetAppendToList:
		t.list.AppendNone()
	case targetSetDictKey:
		t.dict.SetNoneKey(t.key)
	}
}

func (t target) putBool(b bool) {
	switch t.kind {
	case targetNewValue:
		t.sink.ConstructBool(b)
	case targetAppendToList:
		t.list.AppendBool(b)
	case targetSetDictKey:
		t.dict.SetBoolKey(t.key, b)
	}
}

func (t target) putInteger(i int32) {
	switch t.kind {
	case targetNewValue:
		t.sink.ConstructInteger(i)
	case targetAppendToList:
		t.list.AppendInteger(i)
	case targetSetDictKey:
		t.dict.SetIntegerKey(t.key, i)
	}
}

func (t target) putDouble(f float64) {
	switch t.kind {
	case targetNewValue:
		t.sink.ConstructDouble(f)
	case targetAppendToList:
		t.list.AppendDouble(f)
	case targetSetDictKey:
		t.dict.SetDoubleKey(t.key, f)
	}
}

func (t target) putString(s string) {
	switch t.kind {
	case targetNewValue:
		t.sink.ConstructString(s)
	case targetAppendToList:
		t.list.AppendString(s)
	case targetSetDictKey:
		t.dict.SetStringKey(t.key, s)
	}
}

func (t target) newDict() DictHandle {
	switch t.kind {
	case targetAppendToList:
		return t.list.AppendDict()
	case targetSetDictKey:
		return t.dict.SetDictKey(t.key)
	}
	return t.sink.ConstructDict()
}

func (t target) newList() ListHandle {
	switch t.kind {
	case targetAppendToList:
		return t.list.AppendList()
	case targetSetDictKey:
		return t.dict.SetListKey(t.key)
	}
	return t.sink.ConstructList()
}

// builder decodes exactly one JSON value into its target.  A new builder is
// made for every nested value.
type builder struct {
	target target
	guard  recursionGuard
}

func (b builder) visit(s *scanner) error {
	ch, err := s.readAfterWS(msgEOFValue)
	if err != nil {
		return err
	}

	switch ch {
	case '{':
		return b.visitMap(s)
	case '[':
		return b.visitSeq(s)
	case 't':
		if err := s.readIdent("rue"); err != nil {
			return err
		}
		b.target.putBool(true)
	case 'f':
		if err := s.readIdent("alse"); err != nil {
			return err
		}
		b.target.putBool(false)
	case 'n':
		if err := s.readIdent("ull"); err != nil {
			return err
		}
		b.target.putNone()
	case '"':
		str, err := s.readString()
		if err != nil {
			return err
		}
		b.target.putString(str)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		n, err := s.readNumber(ch)
		if err != nil {
			return err
		}
		b.visitNumber(n)
	default:
		return s.syntaxError(msgExpectedValue)
	}
	return nil
}

func (b builder) visitNumber(n number) {
	switch n.kind {
	case numberInt64:
		b.visitInt64(n.i)
	case numberUint64:
		b.visitUint64(n.u)
	case numberFloat64:
		b.target.putDouble(n.f)
	}
}

// visitInt64 writes integers that fit in 32 bits as integers and everything
// else as the nearest double.
func (b builder) visitInt64(n int64) {
	if n >= math.MinInt32 && n <= math.MaxInt32 {
		b.target.putInteger(int32(n))
		return
	}
	b.target.putDouble(float64(n))
}

func (b builder) visitUint64(n uint64) {
	if n <= math.MaxInt32 {
		b.target.putInteger(int32(n))
		return
	}
	b.target.putDouble(float64(n))
}

func (b builder) visitMap(s *scanner) error {
	// Depth check
	inner, ok := b.guard.recurse()
	if !ok {
		return s.errorf(RecursionLimitExceeded, msgRecursion)
	}

	dict := b.target.newDict()

	ch, err := s.readAfterWS(msgEOFObject)
	if err != nil {
		return err
	}
	if ch == '}' {
		return nil
	}

LOOP:
	for {
		if ch != '"' {
			return s.syntaxError(msgKeyNotString)
		}
		key, err := s.readString()
		if err != nil {
			return err
		}

		ch, err = s.readAfterWS(msgEOFObject)
		if err != nil {
			return err
		}
		if ch != ':' {
			return s.syntaxError(msgExpectedColon)
		}

		child := builder{
			target: target{kind: targetSetDictKey, dict: dict, key: key},
			guard:  inner,
		}
		if err := child.visit(s); err != nil {
			return err
		}

		ch, err = s.readAfterWS(msgEOFObject)
		if err != nil {
			return err
		}
		switch ch {
		case ',':
			ch, err = s.readAfterWS(msgEOFObject)
			if err != nil {
				return err
			}
			if ch == '}' {
				if !s.opts.AllowTrailingCommas {
					return s.syntaxError(msgTrailingComma)
				}
				break LOOP
			}
		case '}':
			break LOOP
		default:
			return s.syntaxError(msgObjectSep)
		}
	}

	return nil
}

func (b builder) visitSeq(s *scanner) error {
	// Depth check
	inner, ok := b.guard.recurse()
	if !ok {
		return s.errorf(RecursionLimitExceeded, msgRecursion)
	}

	// The scanner cannot size a list before reading it, so ReserveSize is
	// left to sinks that learn sizes some other way.
	list := b.target.newList()

	if err := s.skipWS(); err != nil {
		return err
	}
	ch, ok := s.peek()
	if !ok {
		return s.syntaxError(msgEOFList)
	}
	if ch == ']' {
		s.advance()
		return nil
	}

LOOP:
	for {
		child := builder{
			target: target{kind: targetAppendToList, list: list},
			guard:  inner,
		}
		if err := child.visit(s); err != nil {
			return err
		}

		ch, err := s.readAfterWS(msgEOFList)
		if err != nil {
			return err
		}
		switch ch {
		case ',':
			if err := s.skipWS(); err != nil {
				return err
			}
			if next, ok := s.peek(); ok && next == ']' {
				s.advance()
				if !s.opts.AllowTrailingCommas {
					return s.syntaxError(msgTrailingComma)
				}
				break LOOP
			}
		case ']':
			break LOOP
		default:
			return s.syntaxError(msgListSep)
		}
	}

	return nil
}
