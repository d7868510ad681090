// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// bstree - load items into a binary search tree and show the result
//
// items come from the command line arguments, from a text file or
// from the keys of a LevelDB database.  They are inserted in the
// order given, so the shape of the tree depends on that order.
//
//   bstree --order=numeric inorder 10 2 13 8 6 20
//   bstree --source=file --file=items.txt preorder
//   bstree --source=leveldb --database=data.leveldb --prefix=k: print
//
// a Lua configuration file can supply any of the global options, see
// bstree.conf.sample
package main
