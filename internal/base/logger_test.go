// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package base

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInMemLogger(t *testing.T) {
	var l InMemLogger
	l.Infof("built tree with root %d", 5)
	l.Errorf("lookup %d: not found\n", 9)
	require.Equal(t, "built tree with root 5\nerror: lookup 9: not found\n", l.String())
	require.Panics(t, func() { l.Fatalf("boom") })
	l.Reset()
	require.Equal(t, "", l.String())
}

func TestNoopLogger(t *testing.T) {
	NoopLogger.Infof("ignored %d", 1)
	NoopLogger.Errorf("ignored %d", 2)
	require.Panics(t, func() { NoopLogger.Fatalf("boom") })
}
