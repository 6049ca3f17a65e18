// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package search

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/bstanim/bst"
)

// Event records one visit of a search.
type Event[K cmp.Ordered] struct {
	Node *bst.Node[K]
	// Step is the position of the event in the search, starting at 0.
	Step int
	// IsMatch is set on the visit of the node holding the target. It is set on
	// at most one event, which is then the last event of the search.
	IsMatch bool
}

// String implements fmt.Stringer.
func (e Event[K]) String() string {
	if e.IsMatch {
		return fmt.Sprintf("%d: %v (match)", e.Step, e.Node.Value())
	}
	return fmt.Sprintf("%d: %v", e.Step, e.Node.Value())
}
