// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"cmp"

	"github.com/cockroachdb/errors"
)

// CheckInvariants verifies the structure of the tree:
//   - keys are strictly ascending in-order (ordering, no duplicates);
//   - every child's parent link points at the node that owns it, and the
//     root has no parent;
//   - Len matches the number of reachable nodes.
//
// Builds with the invariants tag run this after every mutation.
func (t *Tree[K]) CheckInvariants() error {
	if t.root != nil && t.root.parent != nil {
		return errors.AssertionFailedf("root %v has parent %v", t.root.value, t.root.parent.value)
	}
	var c checker[K]
	if err := c.walk(t.root); err != nil {
		return err
	}
	if c.count != t.count {
		return errors.AssertionFailedf("tree has %d reachable nodes but Len() is %d", c.count, t.count)
	}
	return nil
}

type checker[K cmp.Ordered] struct {
	prev  *Node[K]
	count int
}

func (c *checker[K]) walk(n *Node[K]) error {
	if n == nil {
		return nil
	}
	c.count++
	for _, child := range [2]*Node[K]{n.left, n.right} {
		if child != nil && child.parent != n {
			if child.parent == nil {
				return errors.AssertionFailedf("node %v: child %v has no parent link", n.value, child.value)
			}
			return errors.AssertionFailedf("node %v: child %v has parent link to %v",
				n.value, child.value, child.parent.value)
		}
	}
	if err := c.walk(n.left); err != nil {
		return err
	}
	if c.prev != nil && !(c.prev.value < n.value) {
		return errors.AssertionFailedf("ordering violated: %v precedes %v", c.prev.value, n.value)
	}
	c.prev = n
	return c.walk(n.right)
}
