// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// DebugString returns a compact single-line description of the tree shape,
// e.g. "5(3(2(1,_),4),7)": a node with children is followed by its left and
// right subtrees in parentheses, with "_" for a missing child.
func (t *Tree[K]) DebugString() string {
	if t.root == nil {
		return "<empty>"
	}
	var buf strings.Builder
	t.root.debugString(&buf)
	return buf.String()
}

func (n *Node[K]) debugString(buf *strings.Builder) {
	if n == nil {
		buf.WriteByte('_')
		return
	}
	fmt.Fprint(buf, n.value)
	if n.IsLeaf() {
		return
	}
	buf.WriteByte('(')
	n.left.debugString(buf)
	buf.WriteByte(',')
	n.right.debugString(buf)
	buf.WriteByte(')')
}

// String returns a multi-line drawing of the tree. Children are labeled L or
// R since a lone child would otherwise be ambiguous.
func (t *Tree[K]) String() string {
	if t.root == nil {
		return "<empty>\n"
	}
	tp := treeprint.NewWithRoot(fmt.Sprint(t.root.value))
	t.root.addBranches(tp)
	return tp.String()
}

func (n *Node[K]) addBranches(tp treeprint.Tree) {
	for _, c := range [2]struct {
		side string
		n    *Node[K]
	}{{"L", n.left}, {"R", n.right}} {
		if c.n == nil {
			continue
		}
		label := fmt.Sprintf("%s %v", c.side, c.n.value)
		if c.n.IsLeaf() {
			tp.AddNode(label)
			continue
		}
		c.n.addBranches(tp.AddBranch(label))
	}
}
