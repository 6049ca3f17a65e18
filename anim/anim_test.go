// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package anim

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/bstanim/internal/base"
	"github.com/cockroachdb/bstanim/search"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/redact"
	"github.com/stretchr/testify/require"
)

func parseInts(t *testing.T, s string) []int {
	t.Helper()
	var res []int
	for _, f := range strings.Fields(s) {
		v, err := strconv.Atoi(f)
		require.NoError(t, err)
		res = append(res, v)
	}
	return res
}

func TestAnimDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var tree *bst.Tree[int]
		var seq *Sequence[int]
		frame := func(td *datadriven.TestData) Frame[int] {
			var i int
			td.ScanArgs(t, "frame", &i)
			require.Less(t, i, len(seq.Frames))
			return seq.Frames[i]
		}
		datadriven.RunTest(t, path, func(t *testing.T, td *datadriven.TestData) string {
			switch td.Cmd {
			case "new":
				tree = bst.New[int]()
				return tree.DebugString()

			case "build":
				var modeStr string
				td.ScanArgs(t, "mode", &modeStr)
				var root int
				td.MaybeScanArgs(t, "root", &root)
				mode, err := bst.ParseBuildMode(modeStr)
				require.NoError(t, err)
				tree, err = bst.Build(mode, parseInts(t, td.Input), root)
				require.NoError(t, err)
				return tree.DebugString()

			case "record":
				var policyStr string
				td.ScanArgs(t, "policy", &policyStr)
				policy, err := search.ParsePolicy(policyStr)
				require.NoError(t, err)
				target := search.Any[int]()
				if td.HasArg("target") {
					var v int
					td.ScanArgs(t, "target", &v)
					target = search.For(v)
				}
				opts := &Options{Logger: base.NoopLogger}
				td.MaybeScanArgs(t, "hold-start", &opts.HoldStart)
				td.MaybeScanArgs(t, "hold-end", &opts.HoldEnd)
				td.MaybeScanArgs(t, "frames-per-step", &opts.FramesPerStep)
				td.MaybeScanArgs(t, "title", &opts.Title)
				it, err := search.New(tree.Root(), policy, target)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				seq = Record(tree.Root(), it, opts)
				var buf strings.Builder
				fmt.Fprintf(&buf, "events=%d frames=%d\n", len(seq.Events), len(seq.Frames))
				for _, f := range seq.Frames {
					fmt.Fprintf(&buf, "%d: %s\n", f.Index, f.Caption())
				}
				return buf.String()

			case "render":
				return RenderText(frame(td))

			case "dot":
				var buf strings.Builder
				require.NoError(t, WriteDOT(&buf, frame(td)))
				return buf.String()

			case "states":
				f := frame(td)
				var buf strings.Builder
				for _, v := range tree.InOrder() {
					n, err := tree.Lookup(v)
					require.NoError(t, err)
					fmt.Fprintf(&buf, "%d: %s\n", v, f.State(n))
				}
				return buf.String()

			default:
				td.Fatalf(t, "unknown command %q", td.Cmd)
				return ""
			}
		})
	})
}

// TestFrameStates checks that the states of every frame agree with the order
// of the events.
func TestFrameStates(t *testing.T) {
	tree, err := bst.BuildUnbalanced([]int{5, 2, 1, 4, 8, 6, 7, 3}, 5)
	require.NoError(t, err)
	for _, policy := range []search.Policy{search.BFS, search.DFS, search.DFSOrdered} {
		it, err := search.New(tree.Root(), policy, search.For(7))
		require.NoError(t, err)
		seq := Record(tree.Root(), it, &Options{Logger: base.NoopLogger})
		require.Len(t, seq.Frames, 3+len(seq.Events)+3)
		require.True(t, seq.Matched())

		for _, f := range seq.Frames {
			counts := map[NodeState]int{}
			for _, v := range tree.InOrder() {
				n, err := tree.Lookup(v)
				require.NoError(t, err)
				s := f.State(n)
				counts[s]++
				step, visited := seq.VisitStep(n)
				switch s {
				case Unvisited:
					require.True(t, !visited || step > f.Step)
				case Visited:
					require.True(t, visited && step < f.Step)
				case Current, Found:
					require.Equal(t, f.Step, step)
					require.Equal(t, s == Found, v == 7)
				}
			}
			require.LessOrEqual(t, counts[Current]+counts[Found], 1)
			require.Equal(t, f.Step+1, counts[Visited]+counts[Current]+counts[Found], "%s", policy)
		}
	}
}

func TestRecordVerbose(t *testing.T) {
	tree, err := bst.BuildBalanced([]int{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	it, err := search.New(tree.Root(), search.BFS, search.For(4))
	require.NoError(t, err)
	var log base.InMemLogger
	seq := Record(tree.Root(), it, &Options{Logger: &log, Verbose: true})
	require.Len(t, seq.Frames, 11)
	require.Equal(t, "BFS for 4: 5 events, 11 frames, found after 5 steps\n", log.String())
	require.True(t, it.Done())
}

func TestOptionsDefaults(t *testing.T) {
	o := (*Options)(nil).EnsureDefaults()
	require.Equal(t, 3, o.HoldStart)
	require.Equal(t, 1, o.FramesPerStep)
	require.Equal(t, 3, o.HoldEnd)
	require.NotNil(t, o.Logger)

	o = (&Options{HoldStart: -1, HoldEnd: 5, FramesPerStep: 2}).EnsureDefaults()
	require.Equal(t, -1, o.HoldStart)
	require.Equal(t, 2, o.FramesPerStep)
	require.Equal(t, 5, o.HoldEnd)
}

func TestNodeStateRedaction(t *testing.T) {
	require.Equal(t, "found", Found.String())
	require.Equal(t, "NodeState(9)", NodeState(9).String())
	// States are safe: they are not redacted.
	require.Equal(t, "state current", string(redact.Sprintf("state %s", Current).Redact()))
	require.Equal(t, "end", HoldEnd.String())
}

func TestStringKeys(t *testing.T) {
	tree, err := bst.BuildBalanced([]string{"ant", "bee", "cat"})
	require.NoError(t, err)
	it, err := search.New(tree.Root(), search.DFSOrdered, search.For("cat"))
	require.NoError(t, err)
	seq := Record(tree.Root(), it, &Options{HoldStart: -1, HoldEnd: -1, Logger: base.NoopLogger})
	require.Len(t, seq.Frames, 2)
	require.Equal(t, "DFSOrdered for cat: step 1, found cat\n"+
		"    _(bee)_\n"+
		"   /       \\\n"+
		" ant      *cat*\n", RenderText(seq.Frames[1]))
}

func TestRecordPartlyConsumed(t *testing.T) {
	tree, err := bst.BuildBalanced([]int{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)
	it, err := search.New(tree.Root(), search.BFS, search.For(4))
	require.NoError(t, err)
	first, ok := it.Next()
	require.True(t, ok)
	require.Equal(t, 5, first.Node.Value())

	seq := Record(tree.Root(), it, &Options{HoldStart: -1, HoldEnd: 1, Logger: base.NoopLogger})
	require.Len(t, seq.Events, 4)
	require.Len(t, seq.Frames, 5)
	for _, f := range seq.Frames {
		ev, ok := f.Event()
		require.True(t, ok)
		want := Current
		if ev.IsMatch {
			want = Found
		}
		require.Equal(t, want, f.State(ev.Node), "frame %d: %s", f.Index, f.Caption())
		// The visit that preceded the recording is not part of the sequence.
		require.Equal(t, Unvisited, f.State(first.Node))
	}
	require.Equal(t, "BFS for 4: step 4, found 4", seq.Frames[3].Caption())
	step, ok := seq.VisitStep(seq.Events[0].Node)
	require.True(t, ok)
	require.Equal(t, 0, step)
	_, ok = seq.VisitStep(first.Node)
	require.False(t, ok)
}
