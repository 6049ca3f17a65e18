// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// countNode is a binary search tree node that tracks how many keys were added
// through it (including itself).
type countNode struct {
	key         int
	count       int
	left, right *countNode
}

var _ Node = (*countNode)(nil)

// TreeStepsNode implements the Node interface.
func (n *countNode) TreeStepsNode() NodeInfo {
	info := NodeInfof("k%d", n.key)
	info.AddPropf("count", "%d", n.count)
	info.AddChildren(n.left, n.right)
	return info
}

func (n *countNode) add(key int) {
	op := StartOpf(n, "add(%d)", key)
	n.count++
	NodeUpdated(n, "count updated")
	switch {
	case key < n.key:
		if n.left == nil {
			n.left = &countNode{key: key, count: 1}
			NodeUpdated(n, "left child added")
		} else {
			n.left.add(key)
		}
	case key > n.key:
		if n.right == nil {
			n.right = &countNode{key: key, count: 1}
			NodeUpdated(n, "right child added")
		} else {
			n.right.add(key)
		}
	}
	op.Finishf("done")
}

func TestRecording(t *testing.T) {
	if !Enabled {
		t.Skip("treesteps not available in this build")
	}
	root := &countNode{key: 5, count: 1}

	r := StartRecording(root, "add 3")
	require.True(t, IsRecording(root))
	root.add(3)
	steps := r.Finish()
	require.False(t, IsRecording(root))
	require.Equal(t, []string{
		"initial",
		"add on k5 started",
		"node k5: count updated",
		"node k5: left child added",
		"add on k5 finished",
	}, steps.Names())
	s := steps.String()
	require.Contains(t, s, "add 3\n")
	require.Contains(t, s, "step 2/5: add on k5 started\n")
	require.Contains(t, s, "k5 {count: 1} <- add(3)")
	require.Contains(t, s, "k5 {count: 2} <- add(3) done")
	require.Contains(t, s, "k3 {count: 1}")

	r = StartRecording(root, "add 4")
	root.add(4)
	require.Equal(t, []string{
		"initial",
		"add on k5 started",
		"node k5: count updated",
		"add on k3 started",
		"node k3: count updated",
		"node k3: right child added",
		"add on k3 finished",
		"add on k5 finished",
	}, r.Finish().Names())
}

func TestRecordingOptions(t *testing.T) {
	if !Enabled {
		t.Skip("treesteps not available in this build")
	}
	root := &countNode{key: 5, count: 1, left: &countNode{key: 3, count: 1}}
	root.count = 2

	r := StartRecording(root, "shallow", MaxOpDepth(0))
	root.add(1)
	require.Equal(t, []string{
		"initial",
		"add on k5 started",
		"node k5: count updated",
		"add on k5 finished",
	}, r.Finish().Names())

	r = StartRecording(root, "capped", MaxSteps(3))
	root.add(9)
	require.Equal(t, []string{
		"initial",
		"add on k5 started",
		"node k5: count updated (recording truncated)",
	}, r.Finish().Names())

	r = StartRecording(root, "hidden", MaxTreeDepth(0))
	steps := r.Finish()
	require.Len(t, steps.Steps, 1)
	require.Len(t, steps.Steps[0].Root.Children, 2)
	require.Equal(t, "...", steps.Steps[0].Root.Children[0].Name)
}

func TestTreeToString(t *testing.T) {
	root := &countNode{key: 5, count: 2, left: &countNode{key: 3, count: 1}}
	s := TreeToString(root)
	if !Enabled {
		require.Equal(t, "treesteps not supported in this build", s)
		return
	}
	require.Contains(t, s, "k5")
	require.Contains(t, s, "count: 2")
	require.Contains(t, s, "k3")
}

func TestStepsString(t *testing.T) {
	steps := Steps{
		Name: "demo",
		Steps: []Step{{
			Name: "initial",
			Root: TreeNode{
				Name:       "k5",
				Properties: [][2]string{{"count", "2"}, {"side", "root"}},
				Ops:        []string{"add(3) done"},
				Children:   []TreeNode{{Name: "k3"}},
			},
		}},
	}
	require.Equal(t, []string{"initial"}, steps.Names())
	s := steps.String()
	require.Contains(t, s, "demo\nstep 1/1: initial\n")
	require.Contains(t, s, "k5 {count: 2, side: root} <- add(3) done")
	require.Contains(t, s, "k3")
}
