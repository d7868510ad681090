// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"cmp"
)

// Comparer - a key type that orders itself
type Comparer[T any] interface {
	Compare(T) int // -1, 0, +1 for receiver <, ==, > argument
}

// Tree - type to hold the root node of a tree
//
// the zero value is not usable, create with New, NewComparable or NewFunc
type Tree[T any] struct {
	compare func(a, b T) int
	nodes   []node[T] // arena, slot zero is never used
	free    handle    // head of reclaimed slots
	root    handle
	count   int
}

// New - create an initially empty tree ordered by the natural order
// of the key type
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewComparable - create an initially empty tree ordered by the key
// type's own Compare method
func NewComparable[T Comparer[T]]() *Tree[T] {
	return NewFunc(func(a T, b T) int {
		return a.Compare(b)
	})
}

// NewFunc - create an initially empty tree ordered by compare, which
// must return a negative number when a < b, zero when they are equal
// and a positive number when a > b
//
// the function is fixed for the life of the tree; a nil function
// will panic
func NewFunc[T any](compare func(a T, b T) int) *Tree[T] {
	if nil == compare {
		panic("bst: nil compare function")
	}
	return &Tree[T]{
		compare: compare,
		nodes:   make([]node[T], 1),
		free:    nilHandle,
		root:    nilHandle,
		count:   0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nilHandle == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Depth - number of levels in the tree, zero for an empty tree
func (tree *Tree[T]) Depth() int {
	return tree.depth(tree.root)
}

func (tree *Tree[T]) depth(p handle) int {
	if nilHandle == p {
		return 0
	}
	ld := tree.depth(tree.nodes[p].left)
	rd := tree.depth(tree.nodes[p].right)
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}

// Clear - remove all nodes
func (tree *Tree[T]) Clear() {
	clear(tree.nodes[1:])
	tree.nodes = tree.nodes[:1]
	tree.free = nilHandle
	tree.root = nilHandle
	tree.count = 0
}
