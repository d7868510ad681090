// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"cmp"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bitmark-inc/bstree/bst"
	"github.com/bitmark-inc/bstree/fault"
)

// names of the orderings
const (
	naturalOrder = "natural"
	numericOrder = "numeric"
	foldOrder    = "fold"
	lengthOrder  = "length"
)

type ordering struct {
	compare  func(a string, b string) int
	validate func(item string) error // nil if every string is acceptable
}

var orderings = map[string]ordering{
	naturalOrder: {
		compare: strings.Compare,
	},
	numericOrder: {
		compare:  compareNumbers,
		validate: validateNumber,
	},
	foldOrder: {
		compare: func(a string, b string) int {
			return strings.Compare(strings.ToLower(a), strings.ToLower(b))
		},
	},
	lengthOrder: {
		compare: func(a string, b string) int {
			if c := cmp.Compare(len(a), len(b)); 0 != c {
				return c
			}
			return strings.Compare(a, b)
		},
	},
}

// check - apply the validation of the ordering to each item
func (o ordering) check(items []string) error {
	if nil == o.validate {
		return nil
	}
	for _, item := range items {
		if err := o.validate(item); nil != err {
			return err
		}
	}
	return nil
}

// orderNames - sorted list for help text
func orderNames() string {
	names := make([]string, 0, len(orderings))
	for name := range orderings {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// only valid for items that passed validateNumber; anything else
// would compare as zero
func compareNumbers(a string, b string) int {
	x, _ := strconv.ParseInt(a, 10, 64)
	y, _ := strconv.ParseInt(b, 10, 64)
	return cmp.Compare(x, y)
}

func validateNumber(item string) error {
	if _, err := strconv.ParseInt(item, 10, 64); nil != err {
		return fmt.Errorf("%q: %w", item, fault.ErrInvalidNumber)
	}
	return nil
}

// create a tree with the named ordering and insert the items in turn
func buildTree(order string, items []string) (*bst.Tree[string], error) {
	o, ok := orderings[order]
	if !ok {
		return nil, fault.ErrInvalidOrder
	}

	if err := o.check(items); nil != err {
		return nil, err
	}

	tree := bst.NewFunc(o.compare)
	for _, item := range items {
		tree.Insert(item)
	}
	return tree, nil
}
