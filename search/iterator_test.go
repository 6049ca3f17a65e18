// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package search

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"
	"testing"

	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/datadriven"
	"github.com/cockroachdb/errors"
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

func TestSearchDataDriven(t *testing.T) {
	datadriven.Walk(t, "testdata", func(t *testing.T, path string) {
		var tree *bst.Tree[int]
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
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				return tree.DebugString()

			case "search":
				var policyStr string
				td.ScanArgs(t, "policy", &policyStr)
				policy, err := ParsePolicy(policyStr)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				target := Any[int]()
				if td.HasArg("target") {
					var v int
					td.ScanArgs(t, "target", &v)
					target = For(v)
				}
				events, err := Collect(tree.Root(), policy, target)
				if err != nil {
					return fmt.Sprintf("error: %v", err)
				}
				checkEvents(t, events)
				var buf strings.Builder
				for _, ev := range events {
					fmt.Fprintf(&buf, "%s\n", ev)
				}
				if _, ok := target.Value(); ok && (len(events) == 0 || !events[len(events)-1].IsMatch) {
					buf.WriteString("no match\n")
				}
				return buf.String()

			default:
				td.Fatalf(t, "unknown command %q", td.Cmd)
				return ""
			}
		})
	})
}

// checkEvents verifies the properties shared by every search: steps are
// consecutive from 0 and only the last event can be a match.
func checkEvents(t *testing.T, events []Event[int]) {
	t.Helper()
	for i, ev := range events {
		require.Equal(t, i, ev.Step)
		require.NotNil(t, ev.Node)
		if ev.IsMatch {
			require.Equal(t, len(events)-1, i, "match is not the last event")
		}
	}
}

func randomTree(rng *rand.Rand, n int) *bst.Tree[int] {
	tree := bst.New[int]()
	for range n {
		_, _ = tree.Insert(rng.IntN(4 * n))
	}
	return tree
}

func TestSearchProperties(t *testing.T) {
	seed := uint64(1)
	t.Logf("seed: %d", seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	for range 100 {
		tree := randomTree(rng, 1+rng.IntN(50))
		values := tree.InOrder()

		// Without a target, BFS and DFS visit every node exactly once.
		for _, p := range []Policy{BFS, DFS} {
			events, err := Collect(tree.Root(), p, Any[int]())
			require.NoError(t, err)
			checkEvents(t, events)
			var visited []int
			for _, ev := range events {
				require.False(t, ev.IsMatch)
				visited = append(visited, ev.Node.Value())
			}
			slices.Sort(visited)
			require.Equal(t, values, visited, "%s", p)
		}

		bfsAll, err := Collect(tree.Root(), BFS, Any[int]())
		require.NoError(t, err)
		dfsAll, err := Collect(tree.Root(), DFS, Any[int]())
		require.NoError(t, err)

		for range 10 {
			v := rng.IntN(4*len(values) + 2)
			n, lookupErr := tree.Lookup(v)
			present := lookupErr == nil

			for _, p := range []Policy{BFS, DFS, DFSOrdered} {
				events, err := Collect(tree.Root(), p, For(v))
				require.NoError(t, err)
				checkEvents(t, events)
				matches := 0
				for _, ev := range events {
					if ev.IsMatch {
						matches++
						require.Equal(t, v, ev.Node.Value())
					}
				}
				if !present {
					require.Zero(t, matches, "%s found absent %d", p, v)
					continue
				}
				require.Equal(t, 1, matches, "%s did not find %d", p, v)
				switch p {
				case BFS:
					// A targeted search is a prefix of the full traversal.
					require.Equal(t, nodes(bfsAll[:len(events)]), nodes(events))
				case DFS:
					require.Equal(t, nodes(dfsAll[:len(events)]), nodes(events))
				case DFSOrdered:
					require.Equal(t, n.Depth()+1, len(events))
				}
			}
		}
	}
}

func nodes(events []Event[int]) []int {
	res := make([]int, len(events))
	for i, ev := range events {
		res[i] = ev.Node.Value()
	}
	return res
}

func TestIteratorLazy(t *testing.T) {
	tree, err := bst.BuildBalanced([]int{1, 2, 3, 4, 5, 6, 7, 8})
	require.NoError(t, err)

	it, err := New(tree.Root(), BFS, For(4))
	require.NoError(t, err)
	require.Equal(t, BFS, it.Policy())
	require.Equal(t, "4", it.Target().String())

	// Stop the range loop after two events; the rest remain.
	var first []int
	for ev := range it.All() {
		first = append(first, ev.Node.Value())
		if len(first) == 2 {
			break
		}
	}
	require.Equal(t, []int{5, 3}, first)
	require.Equal(t, 2, it.Steps())
	require.False(t, it.Done())

	var rest []Event[int]
	for ev := range it.All() {
		rest = append(rest, ev)
	}
	require.Equal(t, []int{7, 2, 4}, nodes(rest))
	require.Equal(t, 4, rest[len(rest)-1].Step)
	require.True(t, rest[len(rest)-1].IsMatch)
	require.True(t, it.Matched())
	require.True(t, it.Done())

	_, ok := it.Next()
	require.False(t, ok)
	require.Equal(t, 5, it.Steps())
}

func TestNewErrors(t *testing.T) {
	tree, err := bst.BuildBalanced([]int{1, 2, 3})
	require.NoError(t, err)

	_, err = New(tree.Root(), DFSOrdered, Any[int]())
	require.True(t, errors.Is(err, ErrTargetRequired))

	_, err = New(tree.Root(), Policy(7), For(1))
	require.True(t, errors.Is(err, ErrUnknownPolicy))
	require.Equal(t, "Policy(7)", Policy(7).String())

	// An empty tree is not an error for any policy.
	for _, p := range []Policy{BFS, DFS, DFSOrdered} {
		events, err := Collect[int](nil, p, For(1))
		require.NoError(t, err)
		require.Empty(t, events)
	}
}

func TestParsePolicy(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Policy
	}{
		{"bfs", BFS},
		{"BFS", BFS},
		{"dfs", DFS},
		{"DFSOrdered", DFSOrdered},
		{"dfs-ordered", DFSOrdered},
		{"ordered", DFSOrdered},
	} {
		p, err := ParsePolicy(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, p)
	}
	for _, p := range []Policy{BFS, DFS, DFSOrdered} {
		res, err := ParsePolicy(p.String())
		require.NoError(t, err)
		require.Equal(t, p, res)
	}
	_, err := ParsePolicy("inorder")
	require.True(t, errors.Is(err, ErrUnknownPolicy))
	require.Equal(t, `"inorder": search: unknown policy`, err.Error())
}

func TestStringKeys(t *testing.T) {
	tree, err := bst.BuildUnbalanced([]string{"m", "c", "x", "a", "e"}, "m")
	require.NoError(t, err)
	events, err := Collect(tree.Root(), DFSOrdered, For("e"))
	require.NoError(t, err)
	var strs []string
	for _, ev := range events {
		strs = append(strs, ev.String())
	}
	require.Equal(t, []string{"0: m", "1: c", "2: e (match)"}, strs)
}
