// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package invariants exposes whether the binary was built with the
// "invariants" (or "race") build tag. Code that is too expensive to run in
// production, like full-tree consistency checks after every mutation, should
// be guarded by Enabled so that it is statically eliminated otherwise.
package invariants

import "math/rand/v2"

// Sometimes returns true percent% of the time if invariants are Enabled.
// Otherwise it always returns false.
func Sometimes(percent int) bool {
	return Enabled && rand.IntN(100) < percent
}

// MaybePanic panics with err when invariants are enabled and err is non-nil.
// In other builds the error is ignored.
func MaybePanic(err error) {
	if Enabled && err != nil {
		panic(err)
	}
}
