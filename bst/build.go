// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import (
	"cmp"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
)

// BuildMode selects how Build shapes a tree.
type BuildMode int8

const (
	// Balanced builds a minimal-height tree from strictly ascending input.
	Balanced BuildMode = iota
	// Unbalanced inserts the input in order under an explicit root value.
	Unbalanced
)

// String implements fmt.Stringer.
func (m BuildMode) String() string {
	switch m {
	case Balanced:
		return "balanced"
	case Unbalanced:
		return "unbalanced"
	default:
		return "unknown"
	}
}

// SafeValue implements redact.SafeValue.
func (m BuildMode) SafeValue() {}

// ParseBuildMode parses the output of BuildMode.String.
func ParseBuildMode(s string) (BuildMode, error) {
	switch strings.ToLower(s) {
	case "balanced":
		return Balanced, nil
	case "unbalanced":
		return Unbalanced, nil
	default:
		return 0, errors.Wrapf(ErrUnknownMode, "%q", s)
	}
}

// Build constructs a tree from values according to mode. root is only used by
// Unbalanced. values is not modified.
func Build[K cmp.Ordered](mode BuildMode, values []K, root K) (*Tree[K], error) {
	switch mode {
	case Balanced:
		return BuildBalanced(values)
	case Unbalanced:
		return BuildUnbalanced(values, root)
	default:
		return nil, errors.Wrapf(ErrUnknownMode, "%d", mode)
	}
}

// BuildBalanced builds a tree of minimal height from strictly ascending
// values. The middle value of the range becomes the root and both halves are
// built the same way. values is not modified.
func BuildBalanced[K cmp.Ordered](sorted []K) (*Tree[K], error) {
	if len(sorted) == 0 {
		return nil, ErrEmptyInput
	}
	for i := 1; i < len(sorted); i++ {
		if !(sorted[i-1] < sorted[i]) {
			return nil, errors.Wrapf(ErrNotSorted, "%v followed by %v at index %d", sorted[i-1], sorted[i], i)
		}
	}
	b := balancedBuilder[K]{values: sorted}
	t := &Tree[K]{root: b.build(0, len(sorted)), count: len(sorted)}
	t.maybeCheckInvariants()
	return t, nil
}

// balancedBuilder consumes values front to back while building the tree
// bottom-up, so every node is created in in-order position.
type balancedBuilder[K cmp.Ordered] struct {
	values []K
	next   int
}

func (b *balancedBuilder[K]) build(start, end int) *Node[K] {
	if start >= end {
		return nil
	}
	mid := (start + end) / 2
	left := b.build(start, mid)
	n := &Node[K]{value: b.values[b.next], left: left}
	b.next++
	if left != nil {
		left.parent = n
	}
	if n.right = b.build(mid+1, end); n.right != nil {
		n.right.parent = n
	}
	return n
}

// BuildUnbalanced builds a tree rooted at root by inserting the remaining
// values in their original order. The first occurrence of root in values is
// the root itself; any further duplicate is skipped. values is not modified.
func BuildUnbalanced[K cmp.Ordered](values []K, root K) (*Tree[K], error) {
	if len(values) == 0 {
		return nil, ErrEmptyInput
	}
	rootIdx := slices.Index(values, root)
	if rootIdx < 0 {
		return nil, errors.Wrapf(ErrRootNotFound, "root %v", root)
	}
	t := New[K]()
	if _, err := t.Insert(root); err != nil {
		return nil, err
	}
	for i, v := range values {
		if i == rootIdx {
			continue
		}
		if _, err := t.Insert(v); err != nil && !errors.Is(err, ErrAlreadyPresent) {
			return nil, err
		}
	}
	return t, nil
}
