// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

// Package base defines facilities shared by the bstanim packages and tools,
// currently the Logger interface and its implementations.
package base
