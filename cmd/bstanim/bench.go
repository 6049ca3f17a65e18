// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/bstanim/internal/base"
	"github.com/cockroachdb/bstanim/search"
	"github.com/cockroachdb/crlib/crhumanize"
	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "measure the number of visits of each search policy on random trees",
	Long: `
Build random trees and search them for random values with every policy,
recording the number of nodes visited by each search. Half of the searched
values are present in the tree.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var logger base.Logger = base.NoopLogger
		if verbose {
			logger = base.DefaultLogger
		}
		return runBench(cmd.Context(), cmd.OutOrStdout(), benchConfig, logger)
	},
}

type benchOptions struct {
	concurrency int
	trees       int
	size        int
	searches    int
	seed        uint64
	balanced    bool
}

var benchConfig benchOptions

var policies = [...]search.Policy{search.BFS, search.DFS, search.DFSOrdered}

// benchResult holds the visit count distribution of each policy.
type benchResult [len(policies)]*hdrhistogram.Histogram

func newBenchResult(maxEvents int) *benchResult {
	var r benchResult
	for i := range r {
		r[i] = hdrhistogram.New(0, int64(max(maxEvents, 2)), 3)
	}
	return &r
}

func runBench(ctx context.Context, w io.Writer, opts benchOptions, logger base.Logger) error {
	if opts.trees <= 0 || opts.size <= 0 || opts.searches <= 0 {
		return errors.New("trees, size and searches must be positive")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	metrics := search.NewMetrics("bstanim")
	reg := prometheus.NewRegistry()
	for _, c := range metrics.Collectors() {
		if err := reg.Register(c); err != nil {
			return err
		}
	}

	// Every tree is built and searched by a single worker, with its own random
	// source and histograms.
	results := make([]*benchResult, opts.trees)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.concurrency, 1))
	for i := range opts.trees {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(opts.seed, uint64(i)))
			res, err := benchTree(rng, opts, metrics)
			if err != nil {
				return errors.Wrapf(err, "tree %d", i)
			}
			results[i] = res
			logger.Infof("tree %d: done", i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	total := newBenchResult(opts.size)
	for _, res := range results {
		for i := range total {
			total[i].Merge(res[i])
		}
	}
	printBench(w, total)
	return printMetrics(w, reg)
}

func benchTree(rng *rand.Rand, opts benchOptions, metrics *search.Metrics) (*benchResult, error) {
	values := make([]int, opts.size)
	for i := range values {
		values[i] = 2 * rng.IntN(4*opts.size)
	}
	var t *bst.Tree[int]
	var err error
	if opts.balanced {
		slices.Sort(values)
		values = slices.Compact(values)
		t, err = bst.BuildBalanced(values)
	} else {
		t, err = bst.BuildUnbalanced(values, values[0])
	}
	if err != nil {
		return nil, err
	}

	res := newBenchResult(opts.size)
	for range opts.searches {
		// Values in the tree are even; odd targets are absent.
		target := values[rng.IntN(len(values))]
		if rng.IntN(2) == 0 {
			target++
		}
		for i, p := range policies {
			it, err := search.New(t.Root(), p, search.For(target), search.WithMetrics(metrics))
			if err != nil {
				return nil, err
			}
			for _, ok := it.Next(); ok; _, ok = it.Next() {
			}
			if err := res[i].RecordValue(int64(it.Steps())); err != nil {
				return nil, err
			}
		}
	}
	return res, nil
}

func printBench(w io.Writer, res *benchResult) {
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Policy", "Searches", "Mean", "p50", "p95", "p99", "Max"})
	for i, p := range policies {
		h := res[i]
		tbl.Append([]string{
			p.String(),
			string(crhumanize.Count(h.TotalCount(), crhumanize.Compact)),
			fmt.Sprintf("%.1f", h.Mean()),
			fmt.Sprint(h.ValueAtQuantile(50)),
			fmt.Sprint(h.ValueAtQuantile(95)),
			fmt.Sprint(h.ValueAtQuantile(99)),
			fmt.Sprint(h.Max()),
		})
	}
	tbl.Render()

	for i, p := range policies {
		// Visits by percentile, from p1 to p100.
		vals := make([]float64, 100)
		for q := range vals {
			vals[q] = float64(res[i].ValueAtQuantile(float64(q + 1)))
		}
		fmt.Fprintf(w, "\n%s\n", asciigraph.Plot(vals,
			asciigraph.Height(8), asciigraph.Caption(p.String()+" visits by percentile")))
	}
}

func printMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	for _, f := range families {
		for _, m := range f.GetMetric() {
			label := metricLabels(m)
			switch {
			case m.GetCounter() != nil:
				fmt.Fprintf(w, "%s%s %s\n", f.GetName(), label,
					crhumanize.Count(uint64(m.GetCounter().GetValue()), crhumanize.Compact))
			case m.GetHistogram() != nil:
				fmt.Fprintf(w, "%s%s count=%s sum=%s\n", f.GetName(), label,
					crhumanize.Count(m.GetHistogram().GetSampleCount(), crhumanize.Compact),
					crhumanize.Count(uint64(m.GetHistogram().GetSampleSum()), crhumanize.Compact))
			}
		}
	}
	return nil
}

// metricLabels formats the labels of m as {name="value",...}, or returns the
// empty string if m has none.
func metricLabels(m *dto.Metric) string {
	if len(m.GetLabel()) == 0 {
		return ""
	}
	parts := make([]string, len(m.GetLabel()))
	for i, l := range m.GetLabel() {
		parts[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
