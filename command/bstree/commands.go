// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
	"github.com/bitmark-inc/bstree/source"
)

func runTraverse(order bst.Traversal) func(*cli.Context) error {
	return func(c *cli.Context) error {
		m, err := setup(c)
		if nil != err {
			return err
		}
		return traverse(m, order)
	}
}

func runContains(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}
	return contains(m, c.StringSlice("item"))
}

func runRemove(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}
	return remove(m, c.StringSlice("item"))
}

func runPrint(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}
	return draw(m)
}

func runCheck(c *cli.Context) error {
	m, err := setup(c)
	if nil != err {
		return err
	}
	return check(m)
}

// fetch the metadata and open the configured source; command
// arguments are the items for the arguments source
func setup(c *cli.Context) (*metadata, error) {
	m := c.App.Metadata["config"].(*metadata)

	p := source.Parameters{
		Name:      m.config.Source,
		Arguments: c.Args(),
		File:      m.config.File,
		Database:  m.config.Database,
		Prefix:    m.config.Prefix,
	}
	s, err := source.New(p, m.log)
	if nil != err {
		return nil, err
	}
	m.source = s
	return m, nil
}

// read the source and build a tree with the configured ordering
func load(m *metadata) (*bst.Tree[string], error) {
	items, err := m.source.Items()
	if nil != err {
		m.log.Errorf("source: %q  error: %s", m.config.Source, err)
		return nil, err
	}

	tree, err := buildTree(m.config.Order, items)
	if nil != err {
		m.log.Errorf("order: %q  error: %s", m.config.Order, err)
		return nil, err
	}

	m.log.Infof("items: %d  nodes: %d  depth: %d", len(items), tree.Count(), tree.Depth())
	if m.verbose {
		fmt.Fprintf(m.e, "items: %d  nodes: %d  depth: %d\n", len(items), tree.Count(), tree.Depth())
	}
	return tree, nil
}

func traverse(m *metadata, order bst.Traversal) error {
	tree, err := load(m)
	if nil != err {
		return err
	}
	if m.verbose {
		fmt.Fprintf(m.e, "traversal: %s\n", order)
	}
	for item := range tree.Seq(order) {
		fmt.Fprintln(m.w, item)
	}
	return nil
}

func contains(m *metadata, items []string) error {
	if 0 == len(items) {
		return fault.ErrRequiredItem
	}
	tree, err := load(m)
	if nil != err {
		return err
	}
	if err := orderings[m.config.Order].check(items); nil != err {
		m.log.Errorf("order: %q  error: %s", m.config.Order, err)
		return err
	}
	for _, item := range items {
		fmt.Fprintf(m.w, "%s: %t\n", item, tree.Contains(item))
	}
	return nil
}

func remove(m *metadata, items []string) error {
	if 0 == len(items) {
		return fault.ErrRequiredItem
	}
	tree, err := load(m)
	if nil != err {
		return err
	}
	if err := orderings[m.config.Order].check(items); nil != err {
		m.log.Errorf("order: %q  error: %s", m.config.Order, err)
		return err
	}
	for _, item := range items {
		removed := tree.Remove(item)
		m.log.Debugf("remove: %q  removed: %t", item, removed)
		if m.verbose {
			fmt.Fprintf(m.e, "remove: %s: %t\n", item, removed)
		}
	}
	for item := range tree.All() {
		fmt.Fprintln(m.w, item)
	}
	return nil
}

func draw(m *metadata) error {
	tree, err := load(m)
	if nil != err {
		return err
	}
	depth := tree.Print(m.w)
	fmt.Fprintf(m.w, "depth: %d\n", depth)
	return nil
}

func check(m *metadata) error {
	tree, err := load(m)
	if nil != err {
		return err
	}
	if !tree.CheckUp() || !tree.CheckOrder() {
		fault.Criticalf("inconsistent tree with: %d nodes", tree.Count())
		return fault.ErrInconsistentTree
	}
	fmt.Fprintf(m.w, "nodes: %d  depth: %d  ok\n", tree.Count(), tree.Depth())
	return nil
}
