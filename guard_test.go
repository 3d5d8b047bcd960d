// Copyright 2020 by David A. Golden. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License. You may obtain
// a copy of the License at http://www.apache.org/licenses/LICENSE-2.0

package lenient

import "testing"

func TestRecursionGuard(t *testing.T) {
	t.Parallel()

	g := newRecursionGuard(2)
	g1, ok := g.recurse()
	if !ok || g1.remaining != 1 {
		t.Fatalf("first recurse: got %v, %v", g1, ok)
	}
	g2, ok := g1.recurse()
	if !ok || g2.remaining != 0 {
		t.Fatalf("second recurse: got %v, %v", g2, ok)
	}
	if _, ok := g2.recurse(); ok {
		t.Fatal("expected exhausted guard to fail")
	}

	// Copies are independent.
	if g.remaining != 2 || g1.remaining != 1 {
		t.Fatalf("guards were mutated: %v %v", g, g1)
	}
}

func TestRecursionGuardNegative(t *testing.T) {
	t.Parallel()

	g := newRecursionGuard(-5)
	if _, ok := g.recurse(); ok {
		t.Fatal("expected negative depth to allow no containers")
	}
}
