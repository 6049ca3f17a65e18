// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"cmp"

	"github.com/cockroachdb/bstanim/internal/treesteps"
)

// Node is a node in a Tree. A node owns its children; the parent link is a
// back-reference kept in sync on every structural change.
//
// Nodes are handed out for read-only navigation. A node that was unlinked by
// Tree.Delete must not be used afterwards.
type Node[K cmp.Ordered] struct {
	value  K
	left   *Node[K]
	right  *Node[K]
	parent *Node[K]
}

func newNode[K cmp.Ordered](value K, parent *Node[K]) *Node[K] {
	return &Node[K]{value: value, parent: parent}
}

// Value returns the node's key.
func (n *Node[K]) Value() K { return n.value }

// Left returns the left child, or nil.
func (n *Node[K]) Left() *Node[K] { return n.left }

// Right returns the right child, or nil.
func (n *Node[K]) Right() *Node[K] { return n.right }

// Parent returns the parent node, or nil for the root.
func (n *Node[K]) Parent() *Node[K] { return n.parent }

// IsLeaf returns true if the node has no children.
func (n *Node[K]) IsLeaf() bool { return n.left == nil && n.right == nil }

// ChildrenCount returns the number of children of n (0, 1 or 2). ok is false
// if n is nil.
func ChildrenCount[K cmp.Ordered](n *Node[K]) (count int, ok bool) {
	if n == nil {
		return 0, false
	}
	if n.left != nil {
		count++
	}
	if n.right != nil {
		count++
	}
	return count, true
}

// Successor returns the in-order successor of n within its right subtree (the
// leftmost node of the right subtree), or nil if n has no right child.
func (n *Node[K]) Successor() *Node[K] {
	if n.right == nil {
		return nil
	}
	s := n.right
	for s.left != nil {
		s = s.left
	}
	return s
}

// Depth returns the number of links between n and the root.
func (n *Node[K]) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// replaceChild points the slot of n that holds old at repl instead, and fixes
// repl's parent link.
func (n *Node[K]) replaceChild(old, repl *Node[K]) {
	if n.left == old {
		n.left = repl
	} else {
		n.right = repl
	}
	if repl != nil {
		repl.parent = n
	}
}

var _ treesteps.Node = (*Node[int])(nil)

// TreeStepsNode implements the treesteps.Node interface.
func (n *Node[K]) TreeStepsNode() treesteps.NodeInfo {
	info := treesteps.NodeInfof("%v", n.value)
	switch {
	case n.parent == nil:
	case n.parent.left == n:
		info.AddPropf("side", "left")
	default:
		info.AddPropf("side", "right")
	}
	info.AddChildren(n.left, n.right)
	return info
}
