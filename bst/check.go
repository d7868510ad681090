// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// CheckUp - check the up links for consistency
func (tree *Tree[T]) CheckUp() bool {
	return tree.checkUp(tree.root, nilHandle)
}

// internal: consistency checker
func (tree *Tree[T]) checkUp(p handle, up handle) bool {
	if nilHandle == p {
		return true
	}
	if tree.nodes[p].up != up {
		return false
	}
	if !tree.checkUp(tree.nodes[p].left, p) {
		return false
	}
	return tree.checkUp(tree.nodes[p].right, p)
}

// CheckOrder - check every key is strictly greater than the one
// before it in an in-order walk, and that the count of reachable
// nodes matches Count
func (tree *Tree[T]) CheckOrder() bool {
	it := tree.NewIterator(InOrderTraversal)
	previous, ok := it.Next()
	if !ok {
		return 0 == tree.count
	}
	n := 1
	for key, ok := it.Next(); ok; key, ok = it.Next() {
		if tree.compare(previous, key) >= 0 {
			return false
		}
		previous = key
		n += 1
	}
	return n == tree.count
}
