// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/errors"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "apply insertions, deletions and lookups to a tree",
	Long: `
Apply a list of operations to a tree and print the outcome of each, along with
the tree after the operation. Operations are of the form insert:V, delete:V
and lookup:V. A failed operation does not stop the following ones.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		return withKeys(keyType,
			func() error { return runEdit(w, parseIntKey) },
			func() error { return runEdit(w, parseStringKey) },
		)
	},
}

var editConfig struct {
	ops string
}

type editOp[K cmp.Ordered] struct {
	name  string
	value K
}

func parseOps[K cmp.Ordered](s string, parse keyParser[K]) ([]editOp[K], error) {
	var ops []editOp[K]
	for _, f := range splitValues(s) {
		name, arg, ok := strings.Cut(f, ":")
		if !ok {
			return nil, errors.Newf("invalid operation %q (expected op:value)", f)
		}
		switch name {
		case "insert", "delete", "lookup":
		default:
			return nil, errors.Newf("unknown operation %q", name)
		}
		v, err := parse(arg)
		if err != nil {
			return nil, err
		}
		ops = append(ops, editOp[K]{name: name, value: v})
	}
	return ops, nil
}

func runEdit[K cmp.Ordered](w io.Writer, parse keyParser[K]) error {
	t, err := buildTree(parse)
	if err != nil {
		return err
	}
	ops, err := parseOps(editConfig.ops, parse)
	if err != nil {
		return err
	}
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Op", "Value", "Result", "Tree"})
	tbl.SetAutoWrapText(false)
	tbl.Append([]string{"build", "", fmt.Sprintf("%d nodes", t.Len()), t.DebugString()})
	for _, op := range ops {
		tbl.Append([]string{op.name, fmt.Sprint(op.value), applyOp(t, op), t.DebugString()})
	}
	tbl.Render()
	return nil
}

func applyOp[K cmp.Ordered](t *bst.Tree[K], op editOp[K]) string {
	switch op.name {
	case "insert":
		n, err := t.Insert(op.value)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		if p := n.Parent(); p != nil {
			return fmt.Sprintf("inserted under %v", p.Value())
		}
		return "inserted as root"
	case "delete":
		status, err := t.Delete(op.value)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		return status.String()
	case "lookup":
		n, err := t.Lookup(op.value)
		if err != nil {
			return fmt.Sprintf("error: %v", err)
		}
		count, _ := bst.ChildrenCount(n)
		return fmt.Sprintf("found at depth %d with %d children", n.Depth(), count)
	default:
		panic(errors.AssertionFailedf("unknown operation %q", op.name))
	}
}
