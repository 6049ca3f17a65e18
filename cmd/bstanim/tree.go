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
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree",
	Short: "build a tree and print it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		return withKeys(keyType,
			func() error { return runTree(w, parseIntKey) },
			func() error { return runTree(w, parseStringKey) },
		)
	},
}

var treeConfig struct {
	format string
}

func runTree[K cmp.Ordered](w io.Writer, parse keyParser[K]) error {
	t, err := buildTree(parse)
	if err != nil {
		return err
	}
	return printTree(w, t, treeConfig.format)
}

func printTree[K cmp.Ordered](w io.Writer, t *bst.Tree[K], format string) error {
	switch format {
	case "tree":
		_, err := io.WriteString(w, t.String())
		return err
	case "debug":
		_, err := fmt.Fprintf(w, "%s\nlen=%d height=%d\n", t.DebugString(), t.Len(), t.Height())
		return err
	case "inorder":
		parts := make([]string, 0, t.Len())
		for v := range t.All() {
			parts = append(parts, fmt.Sprint(v))
		}
		_, err := fmt.Fprintln(w, strings.Join(parts, " "))
		return err
	default:
		return errors.Newf("unknown format %q", format)
	}
}
