// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package bst_test

import (
	"fmt"

	"github.com/cockroachdb/bstanim/bst"
)

func ExampleBuildBalanced() {
	tree, err := bst.BuildBalanced([]int{1, 2, 3, 4, 5, 6, 7, 8})
	if err != nil {
		panic(err)
	}
	fmt.Println(tree.DebugString())
	status, err := tree.Delete(3)
	if err != nil {
		panic(err)
	}
	fmt.Println(status)
	fmt.Println(tree.InOrder())
	// Output:
	// 5(3(2(1,_),4),7(6,8))
	// node 3 had 2 children and was deleted
	// [1 2 4 5 6 7 8]
}

func ExampleBuildUnbalanced() {
	tree, err := bst.BuildUnbalanced([]string{"m", "c", "x", "a", "e"}, "e")
	if err != nil {
		panic(err)
	}
	fmt.Println(tree.DebugString())
	fmt.Println(tree.Height())
	// Output:
	// e(c(a,_),m(_,x))
	// 3
}
