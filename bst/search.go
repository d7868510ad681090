// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Contains - true if a key comparing equal is in the tree
func (tree *Tree[T]) Contains(key T) bool {
	return nilHandle != tree.search(key)
}

// Search - find the stored key that compares equal to key
//
// the stored key may differ from the argument when the ordering only
// looks at part of the value
func (tree *Tree[T]) Search(key T) (T, bool) {
	p := tree.search(key)
	if nilHandle == p {
		var zero T
		return zero, false
	}
	return tree.nodes[p].key, true
}

func (tree *Tree[T]) search(key T) handle {
	p := tree.root
	for nilHandle != p {
		n := &tree.nodes[p]
		switch c := tree.compare(key, n.key); {
		case c > 0:
			p = n.right
		case c < 0:
			p = n.left
		default:
			return p
		}
	}
	return nilHandle
}

// Min - the lowest key in the tree
func (tree *Tree[T]) Min() (T, bool) {
	p := tree.first(tree.root)
	if nilHandle == p {
		var zero T
		return zero, false
	}
	return tree.nodes[p].key, true
}

// Max - the highest key in the tree
func (tree *Tree[T]) Max() (T, bool) {
	p := tree.last(tree.root)
	if nilHandle == p {
		var zero T
		return zero, false
	}
	return tree.nodes[p].key, true
}

// internal: lowest node in a sub-tree
func (tree *Tree[T]) first(p handle) handle {
	if nilHandle == p {
		return nilHandle
	}
	for nilHandle != tree.nodes[p].left {
		p = tree.nodes[p].left
	}
	return p
}

// internal: highest node in a sub-tree
func (tree *Tree[T]) last(p handle) handle {
	if nilHandle == p {
		return nilHandle
	}
	for nilHandle != tree.nodes[p].right {
		p = tree.nodes[p].right
	}
	return p
}
