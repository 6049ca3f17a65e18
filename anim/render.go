// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package anim

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/bstanim/internal/ascii"
)

// layout positions the nodes of a tree on a grid: one column cell per node,
// in key order, and one row per depth.
type layout[K cmp.Ordered] struct {
	cellWidth int
	cells     []cell[K]
}

type cell[K cmp.Ordered] struct {
	node  *bst.Node[K]
	label string
	col   int
	depth int
}

func makeLayout[K cmp.Ordered](root *bst.Node[K]) layout[K] {
	var l layout[K]
	var walk func(n *bst.Node[K], depth int)
	walk = func(n *bst.Node[K], depth int) {
		if n == nil {
			return
		}
		walk(n.Left(), depth+1)
		c := cell[K]{node: n, label: fmt.Sprint(n.Value()), col: len(l.cells), depth: depth}
		l.cellWidth = max(l.cellWidth, len([]rune(c.label))+2)
		l.cells = append(l.cells, c)
		walk(n.Right(), depth+1)
	}
	walk(root, 0)
	return l
}

// center returns the board column at the middle of the cell of column col.
func (l *layout[K]) center(col int) int {
	return col*l.cellWidth + l.cellWidth/2
}

// draw draws the tree on b, starting at row r. Every node is drawn as its
// value, with the markers of its state in f.
func (l *layout[K]) draw(b *ascii.Board, r int, f Frame[K]) {
	cols := make(map[*bst.Node[K]]int, len(l.cells))
	for _, c := range l.cells {
		cols[c.node] = c.col
	}
	// Edges first; labels are drawn over them.
	for _, c := range l.cells {
		row := r + 2*c.depth
		pc := l.center(c.col)
		if left := c.node.Left(); left != nil {
			lc := l.center(cols[left])
			b.At(row, lc+2).Repeat(pc-lc-2, '_')
			b.At(row+1, lc+1).WriteString("/")
		}
		if right := c.node.Right(); right != nil {
			rc := l.center(cols[right])
			b.At(row, pc+1).Repeat(rc-pc-2, '_')
			b.At(row+1, rc-1).WriteString("\\")
		}
	}
	for _, c := range l.cells {
		pre, post := f.State(c.node).marker()
		label := pre + c.label + post
		b.At(r+2*c.depth, l.center(c.col)-len([]rune(label))/2).WriteString(label)
	}
}

// RenderText draws the frame as text: the title of the sequence if it has one,
// the caption of the frame, and the tree. Unvisited nodes are drawn as their
// value; visited nodes as (v), the current node as [v] and the found node as
// *v*.
func RenderText[K cmp.Ordered](f Frame[K]) string {
	b := ascii.Make(8)
	cur := b.At(0, 0)
	if f.seq.Title != "" {
		cur = cur.WriteString(f.seq.Title + "\n")
	}
	cur = cur.WriteString(f.Caption())
	l := makeLayout(f.seq.Root)
	l.draw(&b, cur.Row()+1, f)
	return b.String() + "\n"
}

// WriteDOT writes the frame as a Graphviz digraph, with nodes filled according
// to their state.
func WriteDOT[K cmp.Ordered](w io.Writer, f Frame[K]) error {
	var buf strings.Builder
	fmt.Fprintf(&buf, "digraph bst {\n")
	label := f.Caption()
	if f.seq.Title != "" {
		label = f.seq.Title + "\n" + label
	}
	fmt.Fprintf(&buf, "  label=%q;\n", label)
	fmt.Fprintf(&buf, "  node [shape=circle, style=filled];\n")
	ids := 0
	var walk func(n *bst.Node[K]) int
	walk = func(n *bst.Node[K]) int {
		id := ids
		ids++
		s := f.State(n)
		fmt.Fprintf(&buf, "  n%d [label=%q, fillcolor=%s];\n", id, fmt.Sprint(n.Value()), s.color())
		for _, child := range [2]*bst.Node[K]{n.Left(), n.Right()} {
			if child != nil {
				childID := walk(child)
				fmt.Fprintf(&buf, "  n%d -> n%d;\n", id, childID)
			}
		}
		return id
	}
	if f.seq.Root != nil {
		walk(f.seq.Root)
	}
	buf.WriteString("}\n")
	_, err := io.WriteString(w, buf.String())
	return err
}
