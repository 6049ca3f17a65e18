// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package treesteps records step-by-step operations on binary trees so they can
// be replayed or printed one step at a time.
//
// Every node of the structure implements the Node interface, which describes
// the node (a name, some key/value properties) and lists its children. A
// recording snapshots the whole tree every time an operation starts, changes
// state or finishes on one of its nodes, and every time a node reports that it
// was updated.
//
// # Basic Usage
//
//  1. Start a recording with StartRecording() on the root node
//  2. For each operation on a node, call StartOpf() before and Finishf() after
//  3. Call NodeUpdated() whenever a node's links or value change
//  4. Call Finish() to obtain the recorded Steps
//
// # Build Tags
//
// Recording is only available when building with the 'invariants' tag. Without
// it all recording operations are no-ops, so the instrumentation can stay in
// the tree code at no cost.
//
// # Example
//
//	func (n *Node) insert(v int) *Node {
//	    if treesteps.Enabled && treesteps.IsRecording(n) {
//	        op := treesteps.StartOpf(n, "insert(%d)", v)
//	        defer op.Finishf("done")
//	    }
//	    if v < n.Value {
//	        if n.Left == nil {
//	            n.Left = &Node{Value: v}
//	            treesteps.NodeUpdated(n, "left child added")
//	            return n.Left
//	        }
//	        return n.Left.insert(v)
//	    }
//	    ...
//	}
//
//	rec := treesteps.StartRecording(root, "insert 4", treesteps.MaxTreeDepth(6))
//	root.insert(4)
//	fmt.Println(rec.Finish().String())
//
// # Performance Considerations
//
// Check Enabled && IsRecording() before formatting operations; this avoids
// allocations when no recording is active and lets the compiler drop the code
// entirely in non-invariants builds.
package treesteps
