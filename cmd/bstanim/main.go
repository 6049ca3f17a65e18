// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// bstanim builds binary search trees and animates searches over them.
package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
)

var (
	keyType string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "bstanim [command] (flags)",
	Short: "binary search tree construction and search animation tool",
	Long: `
bstanim builds binary search trees from a list of values, either balanced
(from sorted values) or unbalanced (by inserting the values around a chosen
root), and animates BFS, DFS and ordered searches over them.
`,
	SilenceUsage: true,
}

func main() {
	log.SetFlags(0)

	cobra.EnableCommandSorting = false
	rootCmd.AddCommand(
		treeCmd,
		searchCmd,
		editCmd,
		stepsCmd,
		benchCmd,
	)

	rootCmd.PersistentFlags().StringVar(
		&keyType, "keys", "int", "key type of the tree values (int|string)")
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable verbose logging")

	for _, cmd := range []*cobra.Command{treeCmd, searchCmd, editCmd, stepsCmd} {
		cmd.Flags().StringVar(
			&buildConfig.mode, "mode", "balanced", "tree construction mode (balanced|unbalanced)")
		cmd.Flags().StringVar(
			&buildConfig.values, "values", "1,2,3,4,5,6,7,8", "comma or space separated tree values")
		cmd.Flags().StringVar(
			&buildConfig.root, "root", "",
			"root value for unbalanced trees (defaults to the first value)")
	}

	treeCmd.Flags().StringVar(
		&treeConfig.format, "format", "tree", "output format (tree|debug|inorder)")

	searchCmd.Flags().StringVar(
		&searchConfig.policy, "policy", "bfs", "search policy (bfs|dfs|dfs-ordered)")
	searchCmd.Flags().StringVar(
		&searchConfig.target, "target", "", "value to search for (empty visits the whole tree)")
	searchCmd.Flags().IntVar(
		&searchConfig.holdStart, "hold-start", 3, "frames before the first visit (negative for none)")
	searchCmd.Flags().IntVar(
		&searchConfig.framesPerStep, "frames-per-step", 1, "frames per visit")
	searchCmd.Flags().IntVar(
		&searchConfig.holdEnd, "hold-end", 3, "frames after the last visit (negative for none)")
	searchCmd.Flags().StringVar(
		&searchConfig.title, "title", "", "title shown on every frame")
	searchCmd.Flags().StringVar(
		&searchConfig.format, "format", "text", "output format (text|dot|json)")
	searchCmd.Flags().StringVar(
		&searchConfig.out, "out", "", "directory to write one file per frame to, instead of stdout")

	editCmd.Flags().StringVar(
		&editConfig.ops, "ops", "", "comma separated operations (insert:V, delete:V, lookup:V)")

	stepsCmd.Flags().StringVar(
		&stepsConfig.op, "op", "", "operation to record (insert:V or delete:V)")
	stepsCmd.Flags().IntVar(
		&stepsConfig.maxSteps, "max-steps", 1000, "maximum number of recorded steps")
	stepsCmd.Flags().IntVar(
		&stepsConfig.maxDepth, "max-depth", 0, "maximum depth of the recorded trees (0 for the default)")
	stepsCmd.Flags().IntVar(
		&stepsConfig.maxOpDepth, "max-op-depth", 0,
		"maximum depth of the nodes whose operations are recorded (0 for the default)")

	benchCmd.Flags().IntVarP(
		&benchConfig.concurrency, "concurrency", "c", 4, "number of concurrent workers")
	benchCmd.Flags().IntVar(
		&benchConfig.trees, "trees", 100, "number of random trees")
	benchCmd.Flags().IntVar(
		&benchConfig.size, "size", 1000, "number of values inserted in each tree")
	benchCmd.Flags().IntVar(
		&benchConfig.searches, "searches", 100, "number of searches per tree and policy")
	benchCmd.Flags().Uint64Var(
		&benchConfig.seed, "seed", 1, "random seed")
	benchCmd.Flags().BoolVar(
		&benchConfig.balanced, "balanced", false, "build balanced trees from the sorted values")

	if err := rootCmd.Execute(); err != nil {
		// Cobra has already printed the error message.
		os.Exit(1)
	}
}
