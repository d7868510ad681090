// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package bst - an unbalanced binary search tree with parent links
// to allow splicing of nodes during delete
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.  Modifying a tree while a traversal is in progress
//       gives undefined results.
//
// Nodes are kept in an arena owned by the tree and refer to each
// other by index, so there are no pointer cycles between parent and
// child.  Deleted nodes are kept on a free list and reused by the
// next insert.
//
// Keys that compare equal to a key already present are not added, so
// a tree never holds two equal keys.  No rebalancing is done, sorted
// input produces a tree as deep as it is long.
package bst
