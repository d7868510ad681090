// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// index of a node in the tree's arena
type handle int32

// no node; slot zero of the arena is reserved so the zero value works
const nilHandle handle = 0

// a node in the tree
type node[T any] struct {
	left  handle // left sub-tree
	right handle // right sub-tree
	up    handle // parent node, or next free slot when reclaimed
	key   T      // key part for ordering
}

// allocate a new node, reuses reclaimed slots if any are available
//
// may grow the arena, so any *node[T] taken before the call must not
// be used after it
func (tree *Tree[T]) newNode(key T, up handle) handle {
	if nilHandle == tree.free {
		tree.nodes = append(tree.nodes, node[T]{
			left:  nilHandle,
			right: nilHandle,
			up:    up,
			key:   key,
		})
		return handle(len(tree.nodes) - 1)
	}
	h := tree.free
	p := &tree.nodes[h]
	tree.free = p.up
	p.left = nilHandle
	p.right = nilHandle
	p.up = up
	p.key = key
	return h
}

// reclaim a node and keep its slot on the free list
func (tree *Tree[T]) freeNode(h handle) {
	var zero T
	p := &tree.nodes[h]
	p.left = nilHandle
	p.right = nilHandle
	p.key = zero // do not retain the key
	p.up = tree.free
	tree.free = h
}
