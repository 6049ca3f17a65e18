// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"cmp"

	"github.com/cockroachdb/redact"
)

// DeleteStatus describes a successful deletion.
type DeleteStatus[K cmp.Ordered] struct {
	// Value is the deleted key.
	Value K
	// Children is the number of children the node holding Value had (0, 1 or
	// 2). It determines how the node was unlinked.
	Children int
}

var childrenFrag = [...]redact.SafeString{"no children", "1 child", "2 children"}

// String implements fmt.Stringer.
func (s DeleteStatus[K]) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s DeleteStatus[K]) SafeFormat(w redact.SafePrinter, _ rune) {
	w.Printf("node %v had %s and was deleted", s.Value, childrenFrag[s.Children])
}
