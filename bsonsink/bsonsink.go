// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

// Package bsonsink converts JSON straight to BSON documents.  Builder is a
// lenient.ValueSink; once decoding finishes, Document encodes the collected
// tree with the MongoDB driver's bsoncore package.
package bsonsink

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/xdg-go/lenient"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/x/bsonx/bsoncore"
)

// ErrNotDocument is returned by Document when the decoded root is not a
// JSON object.
var ErrNotDocument = errors.New("bsonsink: top-level value is not an object")

type nodeKind byte

const (
	nodeUnset nodeKind = iota
	nodeNull
	nodeBool
	nodeInt32
	nodeDouble
	nodeString
	nodeDocument
	nodeArray
)

type node struct {
	kind nodeKind
	b    bool
	i    int32
	f    float64
	s    string
	doc  *document
	arr  *array
}

type element struct {
	key string
	val *node
}

type document struct {
	elems []element
	index map[string]int
}

type array struct {
	items []*node
}

// Builder collects a decoded JSON value for BSON encoding.
type Builder struct {
	root node
}

var _ lenient.ValueSink = (*Builder)(nil)

// Unmarshal converts a single JSON object to a BSON document.
func Unmarshal(in []byte, opts lenient.Options) (bson.Raw, error) {
	var b Builder
	if err := lenient.Decode(in, opts, &b); err != nil {
		return nil, err
	}
	return b.Document()
}

// Reset discards any collected value so b can be reused.
func (b *Builder) Reset() {
	b.root = node{}
}

// Document encodes the collected value.  Only objects can be encoded as
// BSON documents; keys must not contain NUL bytes.
func (b *Builder) Document() (bson.Raw, error) {
	if b.root.kind != nodeDocument {
		return nil, ErrNotDocument
	}
	out, err := appendDocument(make([]byte, 0, 256), b.root.doc)
	if err != nil {
		return nil, err
	}
	return bson.Raw(out), nil
}

func (b *Builder) ConstructNone()            { b.root = node{kind: nodeNull} }
func (b *Builder) ConstructBool(v bool)      { b.root = node{kind: nodeBool, b: v} }
func (b *Builder) ConstructInteger(v int32)  { b.root = node{kind: nodeInt32, i: v} }
func (b *Builder) ConstructDouble(v float64) { b.root = node{kind: nodeDouble, f: v} }
func (b *Builder) ConstructString(v string)  { b.root = node{kind: nodeString, s: v} }

func (b *Builder) ConstructDict() lenient.DictHandle {
	b.root = node{kind: nodeDocument, doc: newDocument()}
	return b.root.doc
}

func (b *Builder) ConstructList() lenient.ListHandle {
	b.root = node{kind: nodeArray, arr: &array{}}
	return b.root.arr
}

func newDocument() *document {
	return &document{index: make(map[string]int)}
}

// set replaces the value of an existing key in place, as JSON decoders that
// keep the last duplicate do.
func (d *document) set(key string, n *node) {
	if i, ok := d.index[key]; ok {
		d.elems[i].val = n
		return
	}
	d.index[key] = len(d.elems)
	d.elems = append(d.elems, element{key: key, val: n})
}

func (d *document) SetNoneKey(key string)              { d.set(key, &node{kind: nodeNull}) }
func (d *document) SetBoolKey(key string, v bool)      { d.set(key, &node{kind: nodeBool, b: v}) }
func (d *document) SetIntegerKey(key string, v int32)  { d.set(key, &node{kind: nodeInt32, i: v}) }
func (d *document) SetDoubleKey(key string, v float64) { d.set(key, &node{kind: nodeDouble, f: v}) }
func (d *document) SetStringKey(key string, v string)  { d.set(key, &node{kind: nodeString, s: v}) }

func (d *document) SetDictKey(key string) lenient.DictHandle {
	n := &node{kind: nodeDocument, doc: newDocument()}
	d.set(key, n)
	return n.doc
}

func (d *document) SetListKey(key string) lenient.ListHandle {
	n := &node{kind: nodeArray, arr: &array{}}
	d.set(key, n)
	return n.arr
}

func (a *array) AppendNone()       { a.items = append(a.items, &node{kind: nodeNull}) }
func (a *array) AppendBool(v bool) { a.items = append(a.items, &node{kind: nodeBool, b: v}) }
func (a *array) AppendInteger(v int32) {
	a.items = append(a.items, &node{kind: nodeInt32, i: v})
}
func (a *array) AppendDouble(v float64) {
	a.items = append(a.items, &node{kind: nodeDouble, f: v})
}
func (a *array) AppendString(v string) {
	a.items = append(a.items, &node{kind: nodeString, s: v})
}

func (a *array) AppendDict() lenient.DictHandle {
	n := &node{kind: nodeDocument, doc: newDocument()}
	a.items = append(a.items, n)
	return n.doc
}

func (a *array) AppendList() lenient.ListHandle {
	n := &node{kind: nodeArray, arr: &array{}}
	a.items = append(a.items, n)
	return n.arr
}

func (a *array) ReserveSize(n int) {
	if n <= 0 || cap(a.items)-len(a.items) >= n {
		return
	}
	items := make([]*node, len(a.items), len(a.items)+n)
	copy(items, a.items)
	a.items = items
}

func appendDocument(dst []byte, d *document) ([]byte, error) {
	idx, dst := bsoncore.AppendDocumentStart(dst)
	for _, e := range d.elems {
		if strings.IndexByte(e.key, 0) >= 0 {
			return nil, fmt.Errorf("bsonsink: key %q contains a NUL byte", e.key)
		}
		var err error
		dst, err = appendElement(dst, e.key, e.val)
		if err != nil {
			return nil, err
		}
	}
	return bsoncore.AppendDocumentEnd(dst, idx)
}

func appendArray(dst []byte, a *array) ([]byte, error) {
	idx, dst := bsoncore.AppendDocumentStart(dst)
	for i, item := range a.items {
		var err error
		dst, err = appendElement(dst, arrayKey(i), item)
		if err != nil {
			return nil, err
		}
	}
	return bsoncore.AppendDocumentEnd(dst, idx)
}

func appendElement(dst []byte, key string, n *node) ([]byte, error) {
	switch n.kind {
	case nodeBool:
		return bsoncore.AppendBooleanElement(dst, key, n.b), nil
	case nodeInt32:
		return bsoncore.AppendInt32Element(dst, key, n.i), nil
	case nodeDouble:
		return bsoncore.AppendDoubleElement(dst, key, n.f), nil
	case nodeString:
		return bsoncore.AppendStringElement(dst, key, n.s), nil
	case nodeDocument:
		dst = bsoncore.AppendHeader(dst, bsontype.EmbeddedDocument, key)
		return appendDocument(dst, n.doc)
	case nodeArray:
		dst = bsoncore.AppendHeader(dst, bsontype.Array, key)
		return appendArray(dst, n.arr)
	}
	return bsoncore.AppendNullElement(dst, key), nil
}

// Precomputed array keys for the common short arrays.
var arrayKeys = func() []string {
	keys := make([]string, 100)
	for i := range keys {
		keys[i] = strconv.Itoa(i)
	}
	return keys
}()

func arrayKey(i int) string {
	if i < len(arrayKeys) {
		return arrayKeys[i]
	}
	return strconv.Itoa(i)
}
