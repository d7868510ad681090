// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst

// Remove - delete the node whose key compares equal to key
//
// returns false if no such node exists
func (tree *Tree[T]) Remove(key T) bool {
	p := tree.search(key)
	if nilHandle == p {
		return false
	}

	n := &tree.nodes[p]
	switch {
	case nilHandle == n.left && nilHandle == n.right:
		// leaf
		tree.replace(p, nilHandle)

	case nilHandle == n.left:
		// only a right branch
		tree.replace(p, n.right)

	case nilHandle == n.right:
		// only a left branch
		tree.replace(p, n.left)

	case nilHandle == tree.nodes[n.right].left:
		// right child is the successor: it takes over this
		// node's position and its left branch
		r := n.right
		tree.nodes[r].left = n.left
		tree.nodes[n.left].up = r
		tree.replace(p, r)

	default:
		// successor is deeper: unlink it, its right branch
		// moves up into its place, then its key moves here
		s := tree.first(n.right)
		sn := &tree.nodes[s]
		tree.nodes[sn.up].left = sn.right
		if nilHandle != sn.right {
			tree.nodes[sn.right].up = sn.up
		}
		n.key = sn.key
		p = s
	}

	tree.freeNode(p)
	tree.count -= 1
	return true
}

// put child into the parent slot currently occupied by p
func (tree *Tree[T]) replace(p handle, child handle) {
	up := tree.nodes[p].up
	if nilHandle != child {
		tree.nodes[child].up = up
	}
	switch {
	case nilHandle == up:
		tree.root = child
	case p == tree.nodes[up].left:
		tree.nodes[up].left = child
	default:
		tree.nodes[up].right = child
	}
}
