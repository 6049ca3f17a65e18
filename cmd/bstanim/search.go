// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"bytes"
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/bstanim/anim"
	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/bstanim/internal/base"
	"github.com/cockroachdb/bstanim/search"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "animate a search over a tree",
	Long: `
Animate a search over a tree. Every frame shows the tree with the nodes visited
so far in parentheses, the node visited at the current step in brackets, and
the target, once found, between asterisks.
`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		return withKeys(keyType,
			func() error { return runSearch(w, parseIntKey) },
			func() error { return runSearch(w, parseStringKey) },
		)
	},
}

var searchConfig struct {
	policy        string
	target        string
	holdStart     int
	framesPerStep int
	holdEnd       int
	title         string
	format        string
	out           string
}

func runSearch[K cmp.Ordered](w io.Writer, parse keyParser[K]) error {
	t, err := buildTree(parse)
	if err != nil {
		return err
	}
	policy, err := search.ParsePolicy(searchConfig.policy)
	if err != nil {
		return err
	}
	target := search.Any[K]()
	if searchConfig.target != "" {
		v, err := parse(searchConfig.target)
		if err != nil {
			return err
		}
		target = search.For(v)
	}
	it, err := search.New(t.Root(), policy, target)
	if err != nil {
		return err
	}
	seq := anim.Record(t.Root(), it, &anim.Options{
		HoldStart:     searchConfig.holdStart,
		FramesPerStep: searchConfig.framesPerStep,
		HoldEnd:       searchConfig.holdEnd,
		Title:         searchConfig.title,
		Logger:        base.DefaultLogger,
		Verbose:       verbose,
	})
	return writeSequence(w, t, seq, searchConfig.format, searchConfig.out)
}

// writeSequence writes the frames of seq to w, or to one file per frame in
// the directory out if it is set.
func writeSequence[K cmp.Ordered](
	w io.Writer, t *bst.Tree[K], seq *anim.Sequence[K], format, out string,
) error {
	if format == "json" {
		data, err := json.MarshalIndent(makeJSONSequence(t, seq), "", "  ")
		if err != nil {
			return err
		}
		data = append(data, '\n')
		if out != "" {
			return writeFile(out, "sequence.json", data)
		}
		_, err = w.Write(data)
		return err
	}

	var render func(w io.Writer, f anim.Frame[K]) error
	var ext string
	switch format {
	case "text":
		ext = "txt"
		render = func(w io.Writer, f anim.Frame[K]) error {
			_, err := io.WriteString(w, anim.RenderText(f))
			return err
		}
	case "dot":
		ext = "dot"
		render = anim.WriteDOT[K]
	default:
		return errors.Newf("unknown format %q", format)
	}

	for _, f := range seq.Frames {
		if out != "" {
			var buf bytes.Buffer
			if err := render(&buf, f); err != nil {
				return err
			}
			if err := writeFile(out, fmt.Sprintf("frame-%04d.%s", f.Index, ext), buf.Bytes()); err != nil {
				return err
			}
			continue
		}
		if f.Index > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := render(w, f); err != nil {
			return err
		}
	}
	if out != "" {
		_, err := fmt.Fprintf(w, "wrote %d frames to %s\n", len(seq.Frames), out)
		return err
	}
	return nil
}

func writeFile(dir, name string, data []byte) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}

type jsonSequence struct {
	Search  string      `json:"search"`
	Matched bool        `json:"matched"`
	Events  []jsonEvent `json:"events"`
	Frames  []jsonFrame `json:"frames"`
}

type jsonEvent struct {
	Step    int    `json:"step"`
	Value   string `json:"value"`
	IsMatch bool   `json:"is_match,omitempty"`
}

type jsonFrame struct {
	Index   int         `json:"index"`
	Phase   string      `json:"phase"`
	Step    int         `json:"step"`
	Caption string      `json:"caption"`
	Nodes   []jsonState `json:"nodes"`
}

type jsonState struct {
	Value string `json:"value"`
	State string `json:"state"`
}

func makeJSONSequence[K cmp.Ordered](t *bst.Tree[K], seq *anim.Sequence[K]) jsonSequence {
	res := jsonSequence{
		Search:  seq.Name(),
		Matched: seq.Matched(),
		Events:  make([]jsonEvent, 0, len(seq.Events)),
		Frames:  make([]jsonFrame, 0, len(seq.Frames)),
	}
	for _, ev := range seq.Events {
		res.Events = append(res.Events, jsonEvent{
			Step:    ev.Step,
			Value:   fmt.Sprint(ev.Node.Value()),
			IsMatch: ev.IsMatch,
		})
	}
	var nodes []*bst.Node[K]
	for v := range t.All() {
		n, err := t.Lookup(v)
		if err != nil {
			panic(errors.AssertionFailedf("value %v of the tree not found", v))
		}
		nodes = append(nodes, n)
	}
	for _, f := range seq.Frames {
		jf := jsonFrame{
			Index:   f.Index,
			Phase:   f.Phase.String(),
			Step:    f.Step,
			Caption: f.Caption(),
			Nodes:   make([]jsonState, len(nodes)),
		}
		for i, n := range nodes {
			jf.Nodes[i] = jsonState{Value: fmt.Sprint(n.Value()), State: f.State(n).String()}
		}
		res.Frames = append(res.Frames, jf)
	}
	return res
}
