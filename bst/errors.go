// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst

import "github.com/cockroachdb/errors"

var (
	// ErrNotFound is returned by Lookup and Delete when the value is not in the
	// tree.
	ErrNotFound = errors.New("bst: not found")
	// ErrAlreadyPresent is returned by Insert when the value is already in the
	// tree. The tree is unchanged.
	ErrAlreadyPresent = errors.New("bst: already present")
	// ErrRootNotFound is returned by BuildUnbalanced when the requested root
	// value is not part of the input.
	ErrRootNotFound = errors.New("bst: root value not in input")
	// ErrEmptyInput is returned by the builders when given no values.
	ErrEmptyInput = errors.New("bst: empty input")
	// ErrNotSorted is returned by BuildBalanced when the input is not strictly
	// ascending.
	ErrNotSorted = errors.New("bst: input not strictly ascending")
	// ErrUnknownMode is returned by ParseBuildMode.
	ErrUnknownMode = errors.New("bst: unknown build mode")
)
