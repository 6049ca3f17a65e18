// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package treesteps

import (
	"fmt"
	"strings"

	"github.com/xlab/treeprint"
)

// Steps is the result of a recording.
type Steps struct {
	Name  string
	Steps []Step
}

// Step is a snapshot of the tree taken when something happened.
type Step struct {
	// Name describes what caused the step, e.g. "insert on 5 started".
	Name string
	Root TreeNode
}

// TreeNode is the state of one node at the time of a step.
type TreeNode struct {
	Name       string
	Properties [][2]string
	// Ops are the operations in progress on this node, with their state.
	Ops      []string
	Children []TreeNode
}

// String renders all steps, each followed by the tree at that step.
func (s Steps) String() string {
	var buf strings.Builder
	buf.WriteString(s.Name)
	buf.WriteByte('\n')
	for i := range s.Steps {
		fmt.Fprintf(&buf, "step %d/%d: %s\n", i+1, len(s.Steps), s.Steps[i].Name)
		buf.WriteString(s.Steps[i].Root.String())
	}
	return buf.String()
}

// Names returns the names of the steps, in order.
func (s Steps) Names() []string {
	names := make([]string, len(s.Steps))
	for i := range s.Steps {
		names[i] = s.Steps[i].Name
	}
	return names
}

// String renders the subtree rooted at t.
func (t TreeNode) String() string {
	tp := treeprint.NewWithRoot(t.label())
	t.addChildren(tp)
	return tp.String()
}

func (t TreeNode) addChildren(tp treeprint.Tree) {
	for i := range t.Children {
		c := &t.Children[i]
		if len(c.Children) == 0 {
			tp.AddNode(c.label())
			continue
		}
		c.addChildren(tp.AddBranch(c.label()))
	}
}

func (t TreeNode) label() string {
	var buf strings.Builder
	buf.WriteString(t.Name)
	for i, p := range t.Properties {
		if i == 0 {
			buf.WriteString(" {")
		} else {
			buf.WriteString(", ")
		}
		fmt.Fprintf(&buf, "%s: %s", p[0], p[1])
		if i == len(t.Properties)-1 {
			buf.WriteString("}")
		}
	}
	for _, op := range t.Ops {
		buf.WriteString(" <- ")
		buf.WriteString(op)
	}
	return buf.String()
}
