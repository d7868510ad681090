// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

import (
	"fmt"
	"iter"
)

// Traversal - order in which an iterator visits the nodes
type Traversal int

// traversal orders
const (
	InOrderTraversal   Traversal = iota // left, node, right
	PreOrderTraversal  Traversal = iota // node, left, right
	PostOrderTraversal Traversal = iota // left, right, node
)

// String - name of the traversal
func (t Traversal) String() string {
	switch t {
	case InOrderTraversal:
		return "in-order"
	case PreOrderTraversal:
		return "pre-order"
	case PostOrderTraversal:
		return "post-order"
	default:
		return fmt.Sprintf("traversal(%d)", int(t))
	}
}

// progress through a single node
const (
	stepEnter = iota
	stepLeft
	stepMiddle
	stepRight
	stepLeave
)

type frame struct {
	p    handle
	step int
}

// Iterator - pull iterator over the keys of a tree
//
// holds an explicit stack of pending nodes so deep trees do not
// recurse; the stack never exceeds the depth of the tree
type Iterator[T any] struct {
	tree  *Tree[T]
	order Traversal
	stack []frame
}

// NewIterator - create an iterator positioned before the first key
// of the given traversal
func (tree *Tree[T]) NewIterator(order Traversal) *Iterator[T] {
	it := &Iterator[T]{
		tree:  tree,
		order: order,
	}
	it.Reset()
	return it
}

// Reset - restart the traversal from the root
func (it *Iterator[T]) Reset() {
	it.stack = it.stack[:0]
	it.push(it.tree.root)
}

func (it *Iterator[T]) push(p handle) {
	if nilHandle != p {
		it.stack = append(it.stack, frame{p: p, step: stepEnter})
	}
}

// Next - the next key, false when the traversal is finished
func (it *Iterator[T]) Next() (T, bool) {
	for len(it.stack) > 0 {
		top := len(it.stack) - 1
		f := it.stack[top]
		it.stack[top].step += 1

		n := &it.tree.nodes[f.p]
		switch f.step {
		case stepEnter:
			if PreOrderTraversal == it.order {
				return n.key, true
			}
		case stepLeft:
			it.push(n.left)
		case stepMiddle:
			if InOrderTraversal == it.order {
				return n.key, true
			}
		case stepRight:
			it.push(n.right)
		case stepLeave:
			it.stack = it.stack[:top]
			if PostOrderTraversal == it.order {
				return n.key, true
			}
		}
	}
	var zero T
	return zero, false
}

// Seq - a sequence of the keys in the given order
//
// each range over the result starts a fresh traversal
func (tree *Tree[T]) Seq(order Traversal) iter.Seq[T] {
	return func(yield func(T) bool) {
		it := tree.NewIterator(order)
		for {
			key, ok := it.Next()
			if !ok || !yield(key) {
				return
			}
		}
	}
}

// All - the keys in ascending order
func (tree *Tree[T]) All() iter.Seq[T] {
	return tree.Seq(InOrderTraversal)
}

// InOrder - left sub-tree, node, right sub-tree; ascending order
func (tree *Tree[T]) InOrder() iter.Seq[T] {
	return tree.Seq(InOrderTraversal)
}

// PreOrder - node, left sub-tree, right sub-tree
func (tree *Tree[T]) PreOrder() iter.Seq[T] {
	return tree.Seq(PreOrderTraversal)
}

// PostOrder - left sub-tree, right sub-tree, node
func (tree *Tree[T]) PostOrder() iter.Seq[T] {
	return tree.Seq(PostOrderTraversal)
}
