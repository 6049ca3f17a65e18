// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package anim

import "github.com/cockroachdb/bstanim/internal/base"

// Options configures the recording of a Sequence.
type Options struct {
	// HoldStart is the number of frames showing the tree before the first
	// visit. Defaults to 3; use a negative value for none.
	HoldStart int
	// FramesPerStep is the number of frames for each visit event. Defaults to 1.
	FramesPerStep int
	// HoldEnd is the number of frames repeating the last visit. Defaults to 3;
	// use a negative value for none.
	HoldEnd int

	// Title is shown above every rendered frame, if set.
	Title string

	// Logger is used to report recorded sequences when Verbose is set.
	// Defaults to base.DefaultLogger.
	Logger base.Logger
	// Verbose enables logging a summary of every recorded sequence.
	Verbose bool
}

// EnsureDefaults ensures that the default values for all options are set if a
// valid value was not already specified. Returns the new options.
func (o *Options) EnsureDefaults() *Options {
	if o == nil {
		o = &Options{}
	}
	if o.HoldStart == 0 {
		o.HoldStart = 3
	}
	if o.FramesPerStep <= 0 {
		o.FramesPerStep = 1
	}
	if o.HoldEnd == 0 {
		o.HoldEnd = 3
	}
	if o.Logger == nil {
		o.Logger = base.DefaultLogger
	}
	return o
}
