// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Insert - add a key to the tree
//
// returns false, leaving the tree unchanged, if a key comparing equal
// is already present
func (tree *Tree[T]) Insert(key T) bool {
	if nilHandle == tree.root {
		tree.root = tree.newNode(key, nilHandle)
		tree.count += 1
		return true
	}

	p := tree.root
	for {
		n := &tree.nodes[p]
		switch c := tree.compare(key, n.key); {
		case c > 0: // key > p.key
			if nilHandle != n.right {
				p = n.right
				continue
			}
			h := tree.newNode(key, p)
			tree.nodes[p].right = h
		case c < 0: // key < p.key
			if nilHandle != n.left {
				p = n.left
				continue
			}
			h := tree.newNode(key, p)
			tree.nodes[p].left = h
		default:
			return false
		}
		tree.count += 1
		return true
	}
}
