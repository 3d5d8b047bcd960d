// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient

import (
	"math"
	"strconv"
	"unicode/utf8"
)

const (
	msgEOFValue      = "EOF while parsing a value"
	msgEOFList       = "EOF while parsing a list"
	msgEOFObject     = "EOF while parsing an object"
	msgEOFString     = "EOF while parsing a string"
	msgEOFComment    = "EOF while parsing a comment"
	msgExpectedValue = "expected value"
	msgExpectedIdent = "expected ident"
	msgExpectedColon = "expected `:`"
	msgListSep       = "expected `,` or `]`"
	msgObjectSep     = "expected `,` or `}`"
	msgKeyNotString  = "key must be a string"
	msgTrailingComma = "trailing comma"
	msgTrailingChars = "trailing characters"
	msgInvalidNumber = "invalid number"
	msgNumberRange   = "number out of range"
	msgInvalidEscape = "invalid escape"
	msgControlChar   = "control character (\\u0000-\\u001F) found while parsing a string"
	msgInvalidUTF8   = "invalid unicode code point"
	msgLoneLeading   = "lone leading surrogate in hex escape"
	msgUnpaired      = "unexpected end of hex escape"
	msgRecursion     = "recursion limit exceeded"
)

// scanner is a byte-level JSON tokenizer.  Line and column are 1-based; the
// column counts bytes consumed on the current line.
type scanner struct {
	data []byte
	pos  int
	line int
	col  int
	opts Options
	buf  []byte
}

func newScanner(data []byte, opts Options) *scanner {
	return &scanner{
		data: data,
		line: 1,
		opts: opts,
	}
}

func (s *scanner) peek() (byte, bool) {
	if s.pos >= len(s.data) {
		return 0, false
	}
	return s.data[s.pos], true
}

func (s *scanner) advance() {
	if s.data[s.pos] == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	s.pos++
}

// advanceN consumes n bytes known not to contain a newline.
func (s *scanner) advanceN(n int) {
	s.pos += n
	s.col += n
}

func (s *scanner) hasPrefix(p string) bool {
	if len(s.data)-s.pos < len(p) {
		return false
	}
	return string(s.data[s.pos:s.pos+len(p)]) == p
}

// errorf reports an error at the last consumed byte.
func (s *scanner) errorf(kind ErrorKind, msg string) *ParseError {
	return &ParseError{Kind: kind, Line: s.line, Column: s.col, Msg: msg}
}

// peekErrorf reports an error at the next unconsumed byte.
func (s *scanner) peekErrorf(kind ErrorKind, msg string) *ParseError {
	if s.pos < len(s.data) {
		if s.data[s.pos] == '\n' {
			return &ParseError{Kind: kind, Line: s.line + 1, Column: 0, Msg: msg}
		}
		return &ParseError{Kind: kind, Line: s.line, Column: s.col + 1, Msg: msg}
	}
	return s.errorf(kind, msg)
}

func (s *scanner) syntaxError(msg string) *ParseError {
	return s.errorf(SyntaxError, msg)
}

// skipWS consumes white space and, when enabled, comments.  It stops before
// the next significant byte.
func (s *scanner) skipWS() error {
	for s.pos < len(s.data) {
		switch s.data[s.pos] {
		case ' ', '\t', '\n', '\r':
			s.advance()
		case '/':
			if !s.opts.AllowComments || len(s.data)-s.pos < 2 {
				return nil
			}
			switch s.data[s.pos+1] {
			case '/':
				s.skipLineComment()
			case '*':
				if err := s.skipBlockComment(); err != nil {
					return err
				}
			default:
				return nil
			}
		default:
			return nil
		}
	}
	return nil
}

func (s *scanner) skipLineComment() {
	s.advanceN(2)
	for s.pos < len(s.data) && s.data[s.pos] != '\n' {
		s.advance()
	}
}

func (s *scanner) skipBlockComment() error {
	s.advanceN(2)
	for {
		if s.pos >= len(s.data) {
			return s.syntaxError(msgEOFComment)
		}
		if s.hasPrefix("*/") {
			s.advanceN(2)
			return nil
		}
		s.advance()
	}
}

// readAfterWS skips white space and consumes the next byte.  At end of input
// it fails with eofMsg.
func (s *scanner) readAfterWS(eofMsg string) (byte, error) {
	if err := s.skipWS(); err != nil {
		return 0, err
	}
	ch, ok := s.peek()
	if !ok {
		return 0, s.syntaxError(eofMsg)
	}
	s.advance()
	return ch, nil
}

// readIdent consumes the remainder of a keyword whose first byte has
// already been read.
func (s *scanner) readIdent(rest string) error {
	for i := 0; i < len(rest); i++ {
		ch, ok := s.peek()
		if !ok {
			return s.syntaxError(msgEOFValue)
		}
		s.advance()
		if ch != rest[i] {
			return s.syntaxError(msgExpectedIdent)
		}
	}
	return nil
}

// readString decodes a string body.  The opening quote has already been
// consumed; the closing quote is consumed on success.
func (s *scanner) readString() (string, error) {
	s.buf = s.buf[:0]
	start := s.pos
	for {
		if s.pos >= len(s.data) {
			return "", s.syntaxError(msgEOFString)
		}
		ch := s.data[s.pos]
		switch {
		case ch == '"':
			s.buf = append(s.buf, s.data[start:s.pos]...)
			s.advance()
			return string(s.buf), nil
		case ch == '\\':
			s.buf = append(s.buf, s.data[start:s.pos]...)
			s.advance()
			if err := s.readEscape(); err != nil {
				return "", err
			}
			start = s.pos
		case ch < 0x20:
			if !s.opts.AllowControlChars {
				return "", s.peekErrorf(SyntaxError, msgControlChar)
			}
			s.advance()
		case ch < utf8.RuneSelf:
			s.advance()
		default:
			r, size := utf8.DecodeRune(s.data[s.pos:])
			if r == utf8.RuneError && size == 1 {
				if !s.opts.ReplaceInvalidCharacters {
					return "", s.peekErrorf(SyntaxError, msgInvalidUTF8)
				}
				s.buf = append(s.buf, s.data[start:s.pos]...)
				s.buf = utf8.AppendRune(s.buf, utf8.RuneError)
				s.advanceN(1)
				start = s.pos
				continue
			}
			s.advanceN(size)
		}
	}
}

func (s *scanner) readEscape() error {
	ch, ok := s.peek()
	if !ok {
		return s.syntaxError(msgEOFString)
	}
	s.advance()
	switch ch {
	case '"', '\\', '/':
		s.buf = append(s.buf, ch)
	case 'b':
		s.buf = append(s.buf, '\b')
	case 'f':
		s.buf = append(s.buf, '\f')
	case 'n':
		s.buf = append(s.buf, '\n')
	case 'r':
		s.buf = append(s.buf, '\r')
	case 't':
		s.buf = append(s.buf, '\t')
	case 'v':
		if !s.opts.AllowVerticalTab {
			return s.syntaxError(msgInvalidEscape)
		}
		s.buf = append(s.buf, '\v')
	case 'x':
		if !s.opts.AllowXEscapes {
			return s.syntaxError(msgInvalidEscape)
		}
		n, err := s.readHex(2)
		if err != nil {
			return err
		}
		s.buf = utf8.AppendRune(s.buf, rune(n))
	case 'u':
		return s.readUnicodeEscape()
	default:
		return s.syntaxError(msgInvalidEscape)
	}
	return nil
}

// readUnicodeEscape decodes the hex digits of a `\u` escape, pairing UTF-16
// surrogates.  Unpaired surrogates become U+FFFD when replacement is on.
func (s *scanner) readUnicodeEscape() error {
	n, err := s.readHex(4)
	if err != nil {
		return err
	}
	for {
		switch {
		case n < 0xD800 || n > 0xDFFF:
			s.buf = utf8.AppendRune(s.buf, rune(n))
			return nil
		case n >= 0xDC00:
			if !s.opts.ReplaceInvalidCharacters {
				return s.syntaxError(msgLoneLeading)
			}
			s.buf = utf8.AppendRune(s.buf, utf8.RuneError)
			return nil
		}

		if !s.hasPrefix(`\u`) {
			if !s.opts.ReplaceInvalidCharacters {
				return s.peekErrorf(SyntaxError, msgUnpaired)
			}
			s.buf = utf8.AppendRune(s.buf, utf8.RuneError)
			return nil
		}
		s.advanceN(2)
		m, err := s.readHex(4)
		if err != nil {
			return err
		}
		if m >= 0xDC00 && m <= 0xDFFF {
			r := 0x10000 + (rune(n)-0xD800)<<10 + (rune(m) - 0xDC00)
			s.buf = utf8.AppendRune(s.buf, r)
			return nil
		}
		if !s.opts.ReplaceInvalidCharacters {
			return s.syntaxError(msgLoneLeading)
		}
		s.buf = utf8.AppendRune(s.buf, utf8.RuneError)
		n = m
	}
}

func (s *scanner) readHex(digits int) (uint32, error) {
	var n uint32
	for i := 0; i < digits; i++ {
		ch, ok := s.peek()
		if !ok {
			return 0, s.syntaxError(msgEOFString)
		}
		s.advance()
		var v byte
		switch {
		case ch >= '0' && ch <= '9':
			v = ch - '0'
		case ch >= 'a' && ch <= 'f':
			v = ch - 'a' + 10
		case ch >= 'A' && ch <= 'F':
			v = ch - 'A' + 10
		default:
			return 0, s.syntaxError(msgInvalidEscape)
		}
		n = n<<4 | uint32(v)
	}
	return n, nil
}

type numberKind int

const (
	numberInt64 numberKind = iota
	numberUint64
	numberFloat64
)

// number is a scanned numeric token.  Integers are kept as int64 when
// negative and uint64 otherwise; anything else is a float64.
type number struct {
	kind numberKind
	i    int64
	u    uint64
	f    float64
}

// readNumber consumes the rest of a number whose first byte, first, has
// already been read.
func (s *scanner) readNumber(first byte) (number, error) {
	start := s.pos - 1
	negative := first == '-'
	if negative {
		ch, ok := s.peek()
		if !ok {
			return number{}, s.syntaxError(msgEOFValue)
		}
		if !isDigit(ch) {
			return number{}, s.peekErrorf(SyntaxError, msgInvalidNumber)
		}
		s.advance()
		first = ch
	}

	if first == '0' {
		if next, ok := s.peek(); ok && isDigit(next) {
			return number{}, s.peekErrorf(SyntaxError, msgInvalidNumber)
		}
	} else {
		s.skipDigits()
	}

	isFloat := false
	if ch, ok := s.peek(); ok && ch == '.' {
		isFloat = true
		s.advance()
		if err := s.requireDigits(); err != nil {
			return number{}, err
		}
	}
	if ch, ok := s.peek(); ok && (ch == 'e' || ch == 'E') {
		isFloat = true
		s.advance()
		if ch, ok := s.peek(); ok && (ch == '+' || ch == '-') {
			s.advance()
		}
		if err := s.requireDigits(); err != nil {
			return number{}, err
		}
	}

	text := string(s.data[start:s.pos])
	if !isFloat {
		if negative {
			if n, err := strconv.ParseInt(text, 10, 64); err == nil {
				if n == 0 {
					// "-0" is a negative zero double, not an integer.
					return number{kind: numberFloat64, f: math.Copysign(0, -1)}, nil
				}
				return number{kind: numberInt64, i: n}, nil
			}
		} else if n, err := strconv.ParseUint(text, 10, 64); err == nil {
			return number{kind: numberUint64, u: n}, nil
		}
		// Wider than 64 bits: fall back to a double.
	}

	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return number{}, s.syntaxError(msgNumberRange)
	}
	return number{kind: numberFloat64, f: f}, nil
}

func (s *scanner) skipDigits() {
	for s.pos < len(s.data) && isDigit(s.data[s.pos]) {
		s.advance()
	}
}

func (s *scanner) requireDigits() error {
	ch, ok := s.peek()
	if !ok {
		return s.syntaxError(msgEOFValue)
	}
	if !isDigit(ch) {
		return s.peekErrorf(SyntaxError, msgInvalidNumber)
	}
	s.skipDigits()
	return nil
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
