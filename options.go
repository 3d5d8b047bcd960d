// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient

// DefaultMaxDepth is the nesting limit used by ChromiumOptions callers that
// have no better value.  It matches Chromium's absolute maximum depth.
const DefaultMaxDepth = 200

// Options controls which dialect extensions the decoder accepts.  Options is
// passed by value; changing it after a Decode call has started has no effect.
type Options struct {
	// AllowTrailingCommas accepts a comma before a closing ']' or '}'.
	AllowTrailingCommas bool `yaml:"allow_trailing_commas"`
	// ReplaceInvalidCharacters replaces invalid UTF-8 and lone surrogate
	// escapes in strings with U+FFFD instead of failing.
	ReplaceInvalidCharacters bool `yaml:"replace_invalid_characters"`
	// AllowComments treats `// ...` and `/* ... */` as white space.
	AllowComments bool `yaml:"allow_comments"`
	// AllowControlChars accepts raw bytes 0x00-0x1F inside strings.
	AllowControlChars bool `yaml:"allow_control_chars"`
	// AllowVerticalTab accepts the `\v` escape.
	AllowVerticalTab bool `yaml:"allow_vert_tab"`
	// AllowXEscapes accepts `\xNN` escapes, decoded as code point U+00NN.
	AllowXEscapes bool `yaml:"allow_x_escapes"`
	// MaxDepth is the maximum number of nested containers.  Callers must
	// supply at least 2.
	MaxDepth int `yaml:"max_depth"`
}

// ChromiumOptions returns the dialect accepted by Chromium's JSON reader:
// lenient about comments, control characters and the `\v` and `\x` escapes,
// but strict about trailing commas.  maxDepth is not validated.
func ChromiumOptions(maxDepth int) Options {
	return Options{
		AllowTrailingCommas:      false,
		ReplaceInvalidCharacters: false,
		AllowComments:            true,
		AllowControlChars:        true,
		AllowVerticalTab:         true,
		AllowXEscapes:            true,
		MaxDepth:                 maxDepth,
	}
}

// StrictOptions returns RFC 8259 behavior with every extension disabled.
func StrictOptions(maxDepth int) Options {
	return Options{MaxDepth: maxDepth}
}
