// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package anim

import "github.com/cockroachdb/redact"

// NodeState is the state of a node in a frame.
type NodeState int8

const (
	// Unvisited nodes have not been visited by the search at this frame.
	Unvisited NodeState = iota
	// Visited nodes were visited at an earlier step.
	Visited
	// Current is the node visited at the step of the frame.
	Current
	// Found is the node holding the target, once it was visited.
	Found
)

var stateNames = [...]redact.SafeString{
	Unvisited: "unvisited",
	Visited:   "visited",
	Current:   "current",
	Found:     "found",
}

// String implements fmt.Stringer.
func (s NodeState) String() string {
	return redact.StringWithoutMarkers(s)
}

// SafeFormat implements redact.SafeFormatter.
func (s NodeState) SafeFormat(w redact.SafePrinter, _ rune) {
	if int(s) < len(stateNames) && s >= 0 {
		w.Print(stateNames[s])
		return
	}
	w.Printf("NodeState(%d)", redact.Safe(int8(s)))
}

// marker returns the opening and closing strings drawn around a node value.
func (s NodeState) marker() (pre, post string) {
	switch s {
	case Visited:
		return "(", ")"
	case Current:
		return "[", "]"
	case Found:
		return "*", "*"
	default:
		return "", ""
	}
}

// color returns the Graphviz fill color of the state.
func (s NodeState) color() string {
	switch s {
	case Visited:
		return "lightgray"
	case Current:
		return "gold"
	case Found:
		return "palegreen"
	default:
		return "white"
	}
}
