// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package search turns a static binary search tree into an ordered sequence
// of visit events, following one of three policies (see Policy) and
// optionally stopping at a target value.
//
// Events are produced lazily, one per call to Iterator.Next. The tree must not
// be mutated while an Iterator over it is in use.
package search

import (
	"cmp"
	"iter"

	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/crlib/fifo"
	"github.com/cockroachdb/errors"
)

var (
	// ErrTargetRequired is returned by New for DFSOrdered without a target.
	ErrTargetRequired = errors.New("search: DFSOrdered requires a target")
	// ErrUnknownPolicy is returned for an invalid Policy.
	ErrUnknownPolicy = errors.New("search: unknown policy")
)

// Option configures an Iterator.
type Option func(*options)

type options struct {
	metrics *Metrics
}

// WithMetrics makes the iterator record into m once it is exhausted.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// Iterator produces the visit events of one search.
//
// Searching an empty tree (nil root) produces no events and is not an error.
type Iterator[K cmp.Ordered] struct {
	policy Policy
	target Target[K]
	opts   options

	step    int
	matched bool
	done    bool

	// BFS state.
	pool  fifo.QueueBackingPool[*bst.Node[K]]
	queue fifo.Queue[*bst.Node[K]]
	// DFS state; the top of the stack is the next node in pre-order.
	stack []*bst.Node[K]
	// DFSOrdered state: the next node on the search path.
	next *bst.Node[K]
}

// New returns an iterator over the visits of a search of the tree rooted at
// root.
func New[K cmp.Ordered](
	root *bst.Node[K], policy Policy, target Target[K], opts ...Option,
) (*Iterator[K], error) {
	it := &Iterator[K]{
		policy: policy,
		target: target,
	}
	for _, o := range opts {
		o(&it.opts)
	}
	switch policy {
	case BFS:
		it.pool = fifo.MakeQueueBackingPool[*bst.Node[K]]()
		it.queue = fifo.MakeQueue(&it.pool)
		if root != nil {
			it.queue.PushBack(root)
		}
	case DFS:
		if root != nil {
			it.stack = append(it.stack, root)
		}
	case DFSOrdered:
		if !target.set {
			return nil, ErrTargetRequired
		}
		it.next = root
	default:
		return nil, errors.Wrapf(ErrUnknownPolicy, "%d", int8(policy))
	}
	return it, nil
}

// Policy returns the policy of the search.
func (it *Iterator[K]) Policy() Policy { return it.policy }

// Target returns the target of the search.
func (it *Iterator[K]) Target() Target[K] { return it.target }

// Matched returns true if an event matched the target so far.
func (it *Iterator[K]) Matched() bool { return it.matched }

// Steps returns the number of events produced so far.
func (it *Iterator[K]) Steps() int { return it.step }

// Done returns true once the iterator is exhausted.
func (it *Iterator[K]) Done() bool { return it.done }

// Next returns the next event, or false if the search is over. A search is
// over when every node was visited, when the target was matched (the matching
// event is still returned), or, for DFSOrdered, when the path ends.
func (it *Iterator[K]) Next() (Event[K], bool) {
	if it.done {
		return Event[K]{}, false
	}
	n := it.advance()
	if n == nil {
		it.finish()
		return Event[K]{}, false
	}
	ev := Event[K]{Node: n, Step: it.step}
	it.step++
	if v, ok := it.target.Value(); ok && n.Value() == v {
		ev.IsMatch = true
		it.matched = true
		it.finish()
	}
	return ev, true
}

// advance returns the next node to visit and updates the frontier, or nil if
// there are no more nodes.
func (it *Iterator[K]) advance() *bst.Node[K] {
	switch it.policy {
	case BFS:
		if it.queue.Len() == 0 {
			return nil
		}
		n := *it.queue.PeekFront()
		it.queue.PopFront()
		if l := n.Left(); l != nil {
			it.queue.PushBack(l)
		}
		if r := n.Right(); r != nil {
			it.queue.PushBack(r)
		}
		return n

	case DFS:
		if len(it.stack) == 0 {
			return nil
		}
		n := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		// Right is pushed first so that the left subtree is visited first.
		if r := n.Right(); r != nil {
			it.stack = append(it.stack, r)
		}
		if l := n.Left(); l != nil {
			it.stack = append(it.stack, l)
		}
		return n

	case DFSOrdered:
		n := it.next
		if n == nil {
			return nil
		}
		switch v := it.target.value; {
		case v < n.Value():
			it.next = n.Left()
		case v > n.Value():
			it.next = n.Right()
		default:
			it.next = nil
		}
		return n
	}
	return nil
}

func (it *Iterator[K]) finish() {
	it.done = true
	if it.policy == BFS {
		for it.queue.Len() > 0 {
			it.queue.PopFront()
		}
	}
	it.stack = nil
	it.next = nil
	if m := it.opts.metrics; m != nil {
		m.record(it.policy, it.step, it.matched)
	}
}

// All returns the remaining events as an iterator sequence. Stopping the range
// loop early leaves the remaining events in the Iterator.
func (it *Iterator[K]) All() iter.Seq[Event[K]] {
	return func(yield func(Event[K]) bool) {
		for {
			ev, ok := it.Next()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Collect runs a search to completion and returns all its events.
func Collect[K cmp.Ordered](
	root *bst.Node[K], policy Policy, target Target[K], opts ...Option,
) ([]Event[K], error) {
	it, err := New(root, policy, target, opts...)
	if err != nil {
		return nil, err
	}
	var events []Event[K]
	for ev := range it.All() {
		events = append(events, ev)
	}
	return events, nil
}
