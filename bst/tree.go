// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package bst implements an unbalanced binary search tree with parent links,
// along with builders that produce balanced or insertion-ordered trees from a
// list of keys.
//
// The tree never rebalances: its shape is entirely determined by the order in
// which keys are inserted. That is the point, since the shape is what gets
// animated by the search and anim packages.
//
// Keys are compared with <, > and == only. Floating point keys work as long as
// NaN is never used.
//
// A Tree is not safe for concurrent use. A tree must not be mutated while a
// search over it is in progress.
package bst

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/bstanim/internal/invariants"
	"github.com/cockroachdb/bstanim/internal/treesteps"
	"github.com/cockroachdb/errors"
)

// Tree is a binary search tree of distinct keys.
type Tree[K cmp.Ordered] struct {
	root  *Node[K]
	count int
}

// New returns an empty tree.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{}
}

// Root returns the root node, or nil if the tree is empty.
func (t *Tree[K]) Root() *Node[K] { return t.root }

// Len returns the number of keys in the tree.
func (t *Tree[K]) Len() int { return t.count }

// Height returns the number of nodes on the longest root-to-leaf path; 0 for
// an empty tree.
func (t *Tree[K]) Height() int { return t.root.height() }

func (n *Node[K]) height() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.height(), n.right.height())
}

// Insert adds v to the tree and returns the new node.
//
// If v is already present the tree is unchanged, and Insert returns the
// existing node along with an error that matches ErrAlreadyPresent.
func (t *Tree[K]) Insert(v K) (*Node[K], error) {
	if t.root == nil {
		t.root = newNode[K](v, nil)
		t.count++
		treesteps.NodeUpdated(t, "root created")
		t.maybeCheckInvariants()
		return t.root, nil
	}
	n, err := t.root.insert(v)
	if err != nil {
		return n, err
	}
	t.count++
	t.maybeCheckInvariants()
	return n, nil
}

func (n *Node[K]) insert(v K) (res *Node[K], err error) {
	if treesteps.Enabled && treesteps.IsRecording(n) {
		op := treesteps.StartOpf(n, "insert(%v)", v)
		defer func() {
			if err != nil {
				op.Finishf("= already present")
			} else {
				op.Finishf("= inserted")
			}
		}()
	}
	switch {
	case v < n.value:
		if n.left == nil {
			n.left = newNode(v, n)
			treesteps.NodeUpdated(n, "left child added")
			return n.left, nil
		}
		return n.left.insert(v)
	case v > n.value:
		if n.right == nil {
			n.right = newNode(v, n)
			treesteps.NodeUpdated(n, "right child added")
			return n.right, nil
		}
		return n.right.insert(v)
	default:
		return n, errors.Wrapf(ErrAlreadyPresent, "insert %v", v)
	}
}

// Lookup returns the node holding v. If there is none, the returned error
// matches ErrNotFound.
func (t *Tree[K]) Lookup(v K) (*Node[K], error) {
	if n := t.root.lookup(v); n != nil {
		return n, nil
	}
	return nil, errors.Wrapf(ErrNotFound, "lookup %v", v)
}

// Contains returns true if v is in the tree.
func (t *Tree[K]) Contains(v K) bool {
	return t.root.lookup(v) != nil
}

func (n *Node[K]) lookup(v K) (res *Node[K]) {
	if n == nil {
		return nil
	}
	if treesteps.Enabled && treesteps.IsRecording(n) {
		op := treesteps.StartOpf(n, "lookup(%v)", v)
		defer func() {
			if res != nil {
				op.Finishf("= found")
			} else {
				op.Finishf("= not found")
			}
		}()
	}
	switch {
	case v < n.value:
		return n.left.lookup(v)
	case v > n.value:
		return n.right.lookup(v)
	default:
		return n
	}
}

// Delete removes v from the tree. If v is not present (which includes the
// empty tree), the returned error matches ErrNotFound.
//
// A node with two children is not unlinked: it takes the value of its in-order
// successor, and the successor's node is unlinked instead. Callers holding
// *Node references must therefore not assume that the node that held v is the
// one that went away.
func (t *Tree[K]) Delete(v K) (DeleteStatus[K], error) {
	n := t.root.lookup(v)
	if n == nil {
		return DeleteStatus[K]{}, errors.Wrapf(ErrNotFound, "delete %v", v)
	}
	children, _ := ChildrenCount(n)
	var op *treesteps.Op
	if treesteps.Enabled && treesteps.IsRecording(n) {
		op = treesteps.StartOpf(n, "delete(%v)", v)
	}
	switch children {
	case 0:
		t.unlink(n, nil)
	case 1:
		child := n.left
		if child == nil {
			child = n.right
		}
		t.unlink(n, child)
	case 2:
		// The successor has no left child, so unlinking it is either the 0 or
		// the 1 child case.
		s := n.Successor()
		op.Updatef("successor %v", s.value)
		n.value = s.value
		treesteps.NodeUpdated(n, "value replaced by successor")
		t.unlink(s, s.right)
	}
	t.count--
	op.Finishf("= %d children", children)
	t.maybeCheckInvariants()
	return DeleteStatus[K]{Value: v, Children: children}, nil
}

// unlink removes n from the tree, putting repl (which must be a child of n, or
// nil) in its place.
func (t *Tree[K]) unlink(n, repl *Node[K]) {
	if p := n.parent; p != nil {
		p.replaceChild(n, repl)
		treesteps.NodeUpdated(p, "child unlinked")
	} else {
		t.root = repl
		if repl != nil {
			repl.parent = nil
		}
		treesteps.NodeUpdated(t, "root replaced")
	}
	n.parent, n.left, n.right = nil, nil, nil
}

// InOrder returns the keys of the tree in ascending order.
func (t *Tree[K]) InOrder() []K {
	res := make([]K, 0, t.count)
	for v := range t.All() {
		res = append(res, v)
	}
	return res
}

// All returns an iterator over the keys of the tree in ascending order. The
// iterator can be used any number of times.
func (t *Tree[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		t.root.walkInOrder(yield)
	}
}

func (n *Node[K]) walkInOrder(yield func(K) bool) bool {
	if n == nil {
		return true
	}
	return n.left.walkInOrder(yield) && yield(n.value) && n.right.walkInOrder(yield)
}

// maybeCheckInvariants verifies the whole tree after a mutation. Large trees
// are only checked some of the time.
func (t *Tree[K]) maybeCheckInvariants() {
	if invariants.Enabled && (t.count < 1024 || invariants.Sometimes(1)) {
		invariants.MaybePanic(t.CheckInvariants())
	}
}

var _ treesteps.Node = (*Tree[int])(nil)

// TreeStepsNode implements the treesteps.Node interface. Recording on the tree
// rather than on its root node captures changes of the root.
func (t *Tree[K]) TreeStepsNode() treesteps.NodeInfo {
	info := treesteps.NodeInfof("tree")
	info.AddPropf("len", "%d", t.count)
	info.AddChildren(t.root)
	return info
}
