// Copyright 2025 The LevelDB-Go and Pebble Authors. All rights reserved. Use
// of this source code is governed by a BSD-style license that can be found in
// the LICENSE file.

package main

import (
	"cmp"
	"strconv"
	"strings"

	"github.com/cockroachdb/bstanim/bst"
	"github.com/cockroachdb/errors"
)

// keyParser converts a command line value to a tree key.
type keyParser[K cmp.Ordered] func(string) (K, error)

func parseIntKey(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid int key %q", s)
	}
	return v, nil
}

func parseStringKey(s string) (string, error) { return s, nil }

// withKeys runs the int or string instantiation of a command, according to
// the --keys flag.
func withKeys(kind string, ints func() error, strs func() error) error {
	switch kind {
	case "int":
		return ints()
	case "string":
		return strs()
	default:
		return errors.Newf("unknown key type %q (expected int or string)", kind)
	}
}

func splitValues(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}

func parseKeys[K cmp.Ordered](s string, parse keyParser[K]) ([]K, error) {
	var res []K
	for _, f := range splitValues(s) {
		v, err := parse(f)
		if err != nil {
			return nil, err
		}
		res = append(res, v)
	}
	return res, nil
}

var buildConfig struct {
	mode   string
	values string
	root   string
}

// buildTree builds the tree described by the construction flags.
func buildTree[K cmp.Ordered](parse keyParser[K]) (*bst.Tree[K], error) {
	mode, err := bst.ParseBuildMode(buildConfig.mode)
	if err != nil {
		return nil, err
	}
	values, err := parseKeys(buildConfig.values, parse)
	if err != nil {
		return nil, err
	}
	var root K
	switch {
	case buildConfig.root != "":
		if root, err = parse(buildConfig.root); err != nil {
			return nil, err
		}
	case len(values) > 0:
		root = values[0]
	}
	return bst.Build(mode, values, root)
}
