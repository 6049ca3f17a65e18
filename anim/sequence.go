// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package anim turns the visit events of a tree search into a sequence of
// frames, each showing the state of every node at one point in the search,
// and renders frames as text or Graphviz DOT.
package anim

import (
	"cmp"
	"fmt"

	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/bstanim/search"
	"github.com/cockroachdb/swiss"
)

// Phase is the part of a Sequence a frame belongs to.
type Phase int8

const (
	// HoldStart frames show the tree before the first visit.
	HoldStart Phase = iota
	// Visit frames show one visit event.
	Visit
	// HoldEnd frames repeat the last visit after the search is over.
	HoldEnd
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case HoldStart:
		return "start"
	case Visit:
		return "visit"
	case HoldEnd:
		return "end"
	default:
		return fmt.Sprintf("Phase(%d)", int8(p))
	}
}

// Sequence is the recorded animation of one search.
type Sequence[K cmp.Ordered] struct {
	Title  string
	Root   *bst.Node[K]
	Policy search.Policy
	Target search.Target[K]
	Events []search.Event[K]
	Frames []Frame[K]

	// visits maps every visited node to the step of its visit.
	visits swiss.Map[*bst.Node[K], int]
}

// Frame is one picture of an animation.
type Frame[K cmp.Ordered] struct {
	seq *Sequence[K]
	// Index is the position of the frame in the sequence.
	Index int
	Phase Phase
	// Step is the index in Sequence.Events of the last event shown by the
	// frame, or -1 if the frame precedes the first event.
	Step int
}

// Record drains it and returns the animation of the remaining events of the
// search. The tree rooted at root must be the one it searches.
func Record[K cmp.Ordered](root *bst.Node[K], it *search.Iterator[K], opts *Options) *Sequence[K] {
	opts = opts.EnsureDefaults()
	s := &Sequence[K]{
		Title:  opts.Title,
		Root:   root,
		Policy: it.Policy(),
		Target: it.Target(),
	}
	s.visits.Init(16)
	// Frame steps index Events, which differ from the event steps if it was
	// partly consumed before.
	for ev, ok := it.Next(); ok; ev, ok = it.Next() {
		s.visits.Put(ev.Node, len(s.Events))
		s.Events = append(s.Events, ev)
	}

	s.Frames = make([]Frame[K], 0, max(opts.HoldStart, 0)+len(s.Events)*opts.FramesPerStep+max(opts.HoldEnd, 0))
	add := func(phase Phase, step int) {
		s.Frames = append(s.Frames, Frame[K]{seq: s, Index: len(s.Frames), Phase: phase, Step: step})
	}
	for range opts.HoldStart {
		add(HoldStart, -1)
	}
	for i := range s.Events {
		for range opts.FramesPerStep {
			add(Visit, i)
		}
	}
	for range opts.HoldEnd {
		add(HoldEnd, len(s.Events)-1)
	}

	if opts.Verbose {
		opts.Logger.Infof("%s: %d events, %d frames, %s", s.Name(), len(s.Events), len(s.Frames), s.outcome())
	}
	return s
}

// Name describes the search of the sequence, e.g. "BFS for 4".
func (s *Sequence[K]) Name() string {
	if _, ok := s.Target.Value(); ok {
		return fmt.Sprintf("%s for %s", s.Policy, s.Target)
	}
	return s.Policy.String()
}

// Matched returns true if the search found its target.
func (s *Sequence[K]) Matched() bool {
	return len(s.Events) > 0 && s.Events[len(s.Events)-1].IsMatch
}

// VisitStep returns the index in Events of the visit of n, and false if the
// sequence does not include a visit of n.
func (s *Sequence[K]) VisitStep(n *bst.Node[K]) (int, bool) {
	return s.visits.Get(n)
}

func (s *Sequence[K]) outcome() string {
	if _, ok := s.Target.Value(); !ok {
		return fmt.Sprintf("%d nodes visited", len(s.Events))
	}
	if s.Matched() {
		return fmt.Sprintf("found after %d steps", len(s.Events))
	}
	return fmt.Sprintf("not found after %d steps", len(s.Events))
}

// Sequence returns the sequence the frame belongs to.
func (f Frame[K]) Sequence() *Sequence[K] { return f.seq }

// Event returns the last event shown by the frame, and false if there is none.
func (f Frame[K]) Event() (search.Event[K], bool) {
	if f.Step < 0 {
		return search.Event[K]{}, false
	}
	return f.seq.Events[f.Step], true
}

// State returns the state of n in the frame.
func (f Frame[K]) State(n *bst.Node[K]) NodeState {
	step, ok := f.seq.visits.Get(n)
	switch {
	case !ok || step > f.Step:
		return Unvisited
	case step < f.Step:
		return Visited
	case f.seq.Events[step].IsMatch:
		return Found
	default:
		return Current
	}
}

// Caption describes the frame, e.g. "BFS for 4: step 2, visit 7".
func (f Frame[K]) Caption() string {
	name := f.seq.Name()
	switch ev, ok := f.Event(); {
	case f.Phase == HoldEnd:
		return fmt.Sprintf("%s: done, %s", name, f.seq.outcome())
	case !ok:
		return fmt.Sprintf("%s: start", name)
	case ev.IsMatch:
		return fmt.Sprintf("%s: step %d, found %v", name, ev.Step, ev.Node.Value())
	default:
		return fmt.Sprintf("%s: step %d, visit %v", name, ev.Step, ev.Node.Value())
	}
}
