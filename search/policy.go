// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package search

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// Policy is the order in which a search visits the nodes of a tree.
type Policy int8

const (
	// BFS visits the tree level by level, left to right.
	BFS Policy = iota
	// DFS visits the tree in pre-order (node, left subtree, right subtree),
	// following the structure of the tree rather than the key order.
	DFS
	// DFSOrdered follows the lookup path from the root towards the target,
	// using key comparisons to pick a single child at every node. It requires
	// a target.
	DFSOrdered
)

var policyNames = [...]string{
	BFS:        "BFS",
	DFS:        "DFS",
	DFSOrdered: "DFSOrdered",
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	if int(p) < len(policyNames) && p >= 0 {
		return policyNames[p]
	}
	return fmt.Sprintf("Policy(%d)", int8(p))
}

// SafeValue implements redact.SafeValue.
func (p Policy) SafeValue() {}

// ParsePolicy parses a policy name. Names are case-insensitive; "dfs-ordered"
// and "ordered" are accepted for DFSOrdered.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "bfs":
		return BFS, nil
	case "dfs":
		return DFS, nil
	case "dfsordered", "dfs-ordered", "ordered":
		return DFSOrdered, nil
	default:
		return 0, errors.Wrapf(ErrUnknownPolicy, "%q", s)
	}
}

// Target is the value a search is looking for. The zero Target has no value:
// the search visits the whole tree.
type Target[K cmp.Ordered] struct {
	value K
	set   bool
}

// For returns a Target for v.
func For[K cmp.Ordered](v K) Target[K] {
	return Target[K]{value: v, set: true}
}

// Any returns a Target without a value.
func Any[K cmp.Ordered]() Target[K] {
	return Target[K]{}
}

// Value returns the target value, and false if there is none.
func (t Target[K]) Value() (K, bool) {
	return t.value, t.set
}

// String implements fmt.Stringer.
func (t Target[K]) String() string {
	if !t.set {
		return "<any>"
	}
	return fmt.Sprint(t.value)
}
