// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

//go:build invariants

package treesteps

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"unicode"

	"github.com/xlab/treeprint"
)

// Enabled is true when recordings are supported by this build.
const Enabled = true

// StartRecording starts a new recording of the operations on the tree rooted
// at root. The recording takes an "initial" step immediately.
//
// Every node reachable from root must implement Node. A node can only be part
// of one in-progress recording at a time.
func StartRecording(root Node, name string, opts ...RecordingOption) *Recording {
	mu.Lock()
	defer mu.Unlock()
	mu.recordingInProgress.Store(true)
	r := &Recording{
		name:         name,
		maxTreeDepth: 20,
		maxOpDepth:   20,
		maxSteps:     1000,
	}
	for _, o := range opts {
		o(r)
	}
	if mu.nodeMap == nil {
		mu.nodeMap = make(map[Node]*nodeState)
	}
	r.root = nodeStateLocked(r, root)
	r.stepLockedf("initial")
	return r
}

// RecordingOption is an optional argument to StartRecording.
type RecordingOption func(*Recording)

// MaxTreeDepth configures a recording to only show the tree up to a certain
// depth. Operations and node updates below that level are ignored.
func MaxTreeDepth(maxTreeDepth int) RecordingOption {
	return func(r *Recording) {
		r.maxTreeDepth = maxTreeDepth
		if r.maxOpDepth > r.maxTreeDepth {
			r.maxOpDepth = r.maxTreeDepth
		}
	}
}

// MaxOpDepth configures a recording to only show operations for nodes up to a
// certain depth.
func MaxOpDepth(maxOpDepth int) RecordingOption {
	return func(r *Recording) {
		r.maxOpDepth = maxOpDepth
		if r.maxTreeDepth < r.maxOpDepth {
			r.maxTreeDepth = r.maxOpDepth
		}
	}
}

// MaxSteps caps the number of steps kept by a recording. Steps past the cap
// are dropped and the last kept step is renamed to note the truncation.
func MaxSteps(maxSteps int) RecordingOption {
	return func(r *Recording) {
		r.maxSteps = max(maxSteps, 1)
	}
}

// NodeUpdated triggers a new step in the recording that involves the given
// node, if any. The reason is optional and shows up in the step name.
func NodeUpdated(n Node, reason string) {
	if !mu.recordingInProgress.Load() {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	ns, ok := mu.nodeMap[n]
	if !ok || ns.depth > ns.recording.maxOpDepth {
		return
	}
	if reason == "" {
		reason = " updated"
	} else {
		reason = ": " + reason
	}
	ns.recording.stepLockedf("node %s%s", firstWord(ns.name), reason)
}

// Node must be implemented by every node in the hierarchy.
type Node interface {
	TreeStepsNode() NodeInfo
}

// NodeInfo is what a node reports about itself.
type NodeInfo struct {
	name       string
	properties [][2]string
	children   []Node
}

// NodeInfof returns a NodeInfo with a formatted name.
func NodeInfof(format string, args ...any) NodeInfo {
	return NodeInfo{name: fmt.Sprintf(format, args...)}
}

// AddPropf adds a property to the NodeInfo.
func (ni *NodeInfo) AddPropf(key string, format string, args ...any) {
	ni.properties = append(ni.properties, [2]string{key, fmt.Sprintf(format, args...)})
}

// AddChildren adds children to the NodeInfo. Nil children, including typed nil
// pointers, are ignored.
func (ni *NodeInfo) AddChildren(nodes ...Node) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if val := reflect.ValueOf(n); val.Kind() == reflect.Ptr && val.IsNil() {
			continue
		}
		ni.children = append(ni.children, n)
	}
}

// Recording captures the step-by-step propagation of operations. See
// StartRecording.
type Recording struct {
	name         string
	maxTreeDepth int
	maxOpDepth   int
	maxSteps     int
	truncated    bool
	root         *nodeState
	steps        []Step
}

// Finish completes the recording and returns the recorded steps. The nodes of
// the recording can be part of a new recording afterwards.
func (r *Recording) Finish() Steps {
	mu.Lock()
	defer mu.Unlock()
	for n, ns := range mu.nodeMap {
		if ns.recording == r {
			delete(mu.nodeMap, n)
		}
	}
	if len(mu.nodeMap) == 0 {
		mu.recordingInProgress.Store(false)
	}
	r.root = nil
	return Steps{Name: r.name, Steps: r.steps}
}

// stepLockedf rebuilds the tree (calling TreeStepsNode on all the nodes) and
// saves it as a step.
func (r *Recording) stepLockedf(format string, args ...any) {
	if len(r.steps) >= r.maxSteps {
		if !r.truncated {
			r.truncated = true
			r.steps[len(r.steps)-1].Name += " (recording truncated)"
		}
		return
	}
	r.steps = append(r.steps, Step{
		Name: fmt.Sprintf(format, args...),
		Root: buildTree(r.root),
	})
}

// IsRecording returns whether a recording involving the given node is in
// progress.
func IsRecording(n Node) bool {
	if !mu.recordingInProgress.Load() {
		return false
	}
	mu.Lock()
	defer mu.Unlock()
	_, ok := mu.nodeMap[n]
	return ok
}

// Op is an operation in progress on a node.
type Op struct {
	details   string
	state     string
	nodeState *nodeState
}

// StartOpf registers the start of an operation on a node and emits a step. The
// operation is shown on the node until Finishf is called.
//
// Returns nil if the node is not part of a recording; all Op methods are no-ops
// on a nil Op.
func StartOpf(node Node, format string, args ...any) *Op {
	mu.Lock()
	defer mu.Unlock()
	ns, ok := mu.nodeMap[node]
	if !ok || ns.depth > ns.recording.maxOpDepth {
		return nil
	}
	op := &Op{
		details:   fmt.Sprintf(format, args...),
		nodeState: ns,
	}
	ns.ops = append(ns.ops, op)
	ns.recording.stepLockedf("%s on %s started", firstWord(op.details), firstWord(ns.name))
	return op
}

// Updatef changes the state of the operation and emits a step.
func (op *Op) Updatef(format string, args ...any) {
	if op == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	op.state = fmt.Sprintf(format, args...)
	op.nodeState.recording.stepLockedf("%s on %s updated", firstWord(op.details), firstWord(op.nodeState.name))
}

// Finishf sets the final state of the operation, emits a step and removes the
// operation from its node.
func (op *Op) Finishf(format string, args ...any) {
	if op == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	op.state = fmt.Sprintf(format, args...)
	op.nodeState.recording.stepLockedf("%s on %s finished", firstWord(op.details), firstWord(op.nodeState.name))
	op.nodeState.ops = slices.DeleteFunc(op.nodeState.ops, func(o *Op) bool { return o == op })
}

func firstWord(str string) string {
	for i, r := range str {
		if unicode.IsSpace(r) || strings.ContainsRune("()[]{}:", r) {
			return str[:i]
		}
	}
	return str
}

// TreeToString returns the current state of a Node tree, outside of any
// recording.
func TreeToString(n Node) string {
	ni := n.TreeStepsNode()
	tp := treeprint.NewWithRoot(ni.name)
	treePrint(ni, tp)
	return tp.String()
}

func treePrint(ni NodeInfo, tp treeprint.Tree) {
	for _, prop := range ni.properties {
		tp.AddNode(fmt.Sprintf("%s: %s", prop[0], prop[1]))
	}
	for _, child := range ni.children {
		ci := child.TreeStepsNode()
		treePrint(ci, tp.AddBranch(ci.name))
	}
}

type nodeState struct {
	recording *Recording
	depth     int
	node      Node
	name      string

	// ops currently running on this node.
	ops []*Op
}

var mu struct {
	sync.Mutex

	recordingInProgress atomic.Bool
	nodeMap             map[Node]*nodeState
}

func buildTree(n *nodeState) TreeNode {
	info := n.node.TreeStepsNode()
	n.name = info.name
	t := TreeNode{
		Name:       info.name,
		Properties: info.properties,
	}
	for _, op := range n.ops {
		s := op.details
		if op.state != "" {
			s += " " + op.state
		}
		t.Ops = append(t.Ops, s)
	}
	for i := range info.children {
		if n.depth >= n.recording.maxTreeDepth {
			t.Children = append(t.Children, TreeNode{Name: "..."})
			continue
		}
		c := nodeStateLocked(n.recording, info.children[i])
		c.depth = n.depth + 1
		t.Children = append(t.Children, buildTree(c))
	}
	return t
}

func nodeStateLocked(r *Recording, n Node) *nodeState {
	ns, ok := mu.nodeMap[n]
	if !ok {
		ns = &nodeState{recording: r, node: n}
		mu.nodeMap[n] = ns
	} else if r != ns.recording {
		panic(fmt.Sprintf("node %v part of multiple recordings", n))
	}
	return ns
}
