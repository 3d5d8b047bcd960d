// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient

// recursionGuard counts the container levels still available below the
// current one.  It is copied into each nested level rather than shared.
type recursionGuard struct {
	remaining int
}

func newRecursionGuard(maxDepth int) recursionGuard {
	if maxDepth < 0 {
		maxDepth = 0
	}
	return recursionGuard{remaining: maxDepth}
}

// recurse returns a guard for the next level down, or false when no levels
// remain.
func (g recursionGuard) recurse() (recursionGuard, bool) {
	if g.remaining == 0 {
		return g, false
	}
	return recursionGuard{remaining: g.remaining - 1}, true
}
