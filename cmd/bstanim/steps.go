// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"io"

	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/bstanim/internal/treesteps"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var stepsCmd = &cobra.Command{
	Use:   "steps",
	Short: "record the steps of an insertion or deletion",
	Long: `
Record the intermediate states of the tree while an insertion or deletion runs,
and print them. Requires a binary built with the invariants tag.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !treesteps.Enabled {
			return errors.New("steps requires a binary built with -tags invariants")
		}
		w := cmd.OutOrStdout()
		return withKeys(keyType,
			func() error { return runSteps(w, parseIntKey) },
			func() error { return runSteps(w, parseStringKey) },
		)
	},
}

var stepsConfig struct {
	op       string
	maxSteps   int
	maxDepth   int
	maxOpDepth int
}

func runSteps[K cmp.Ordered](w io.Writer, parse keyParser[K]) error {
	t, err := buildTree(parse)
	if err != nil {
		return err
	}
	ops, err := parseOps(stepsConfig.op, parse)
	if err != nil {
		return err
	}
	if len(ops) != 1 || ops[0].name == "lookup" {
		return errors.Newf("expected a single insert or delete operation, got %q", stepsConfig.op)
	}
	opts := []treesteps.RecordingOption{treesteps.MaxSteps(stepsConfig.maxSteps)}
	if stepsConfig.maxDepth > 0 {
		opts = append(opts, treesteps.MaxTreeDepth(stepsConfig.maxDepth))
	}
	if stepsConfig.maxOpDepth > 0 {
		opts = append(opts, treesteps.MaxOpDepth(stepsConfig.maxOpDepth))
	}
	steps := recordSteps(t, ops[0], opts...)
	if _, err := io.WriteString(w, steps.String()); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "final:\n%s", treesteps.TreeToString(t))
	return err
}

func recordSteps[K cmp.Ordered](
	t *bst.Tree[K], op editOp[K], opts ...treesteps.RecordingOption,
) treesteps.Steps {
	rec := treesteps.StartRecording(t, fmt.Sprintf("%s %v", op.name, op.value), opts...)
	// The outcome of the operation is part of the recorded steps.
	_ = applyOp(t, op)
	return rec.Finish()
}
