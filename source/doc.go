// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package source - where the items loaded into a tree come from
//
// items can be given directly, read from a text file with one item
// per line, or taken from the keys of a LevelDB database
package source
