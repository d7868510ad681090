// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package bst_test

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/bstree/bst"
)

func TestTraversalsHoldSameKeys(t *testing.T) {
	tree := newIntTree(50, 30, 70, 60, 80, 65, 20, 40, 35, 90)

	inOrder := slices.Collect(tree.InOrder())
	preOrder := slices.Collect(tree.PreOrder())
	postOrder := slices.Collect(tree.PostOrder())

	assert.Equal(t, []int{50, 30, 20, 40, 35, 70, 60, 65, 80, 90}, preOrder, "wrong pre-order")
	assert.Equal(t, []int{20, 35, 40, 30, 65, 60, 90, 80, 70, 50}, postOrder, "wrong post-order")

	assert.True(t, slices.IsSorted(inOrder), "in-order not sorted")
	assert.ElementsMatch(t, inOrder, preOrder, "pre-order keys differ")
	assert.ElementsMatch(t, inOrder, postOrder, "post-order keys differ")
}

func TestSequenceIsRestartable(t *testing.T) {
	tree := newIntTree(4, 2, 6, 1, 3)
	seq := tree.PreOrder()

	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, []int{4, 2, 1, 3, 6}, first, "wrong pre-order")
	assert.Equal(t, first, second, "second range differs")
}

func TestSequenceStopsEarly(t *testing.T) {
	tree := newIntTree(4, 2, 6, 1, 3, 5, 7)

	seen := []int{}
	for key := range tree.All() {
		if key > 3 {
			break
		}
		seen = append(seen, key)
	}
	assert.Equal(t, []int{1, 2, 3}, seen, "wrong keys before break")
}

func TestIterator(t *testing.T) {
	tree := newIntTree(2, 1, 3)
	it := tree.NewIterator(bst.PostOrderTraversal)

	keys := []int{}
	for key, ok := it.Next(); ok; key, ok = it.Next() {
		keys = append(keys, key)
	}
	assert.Equal(t, []int{1, 3, 2}, keys, "wrong post-order")

	_, ok := it.Next()
	assert.False(t, ok, "finished iterator returned a key")

	it.Reset()
	key, ok := it.Next()
	assert.True(t, ok, "reset iterator is empty")
	assert.Equal(t, 1, key, "wrong first key after reset")
}

func TestTraversalString(t *testing.T) {
	assert.Equal(t, "in-order", bst.InOrderTraversal.String())
	assert.Equal(t, "pre-order", bst.PreOrderTraversal.String())
	assert.Equal(t, "post-order", bst.PostOrderTraversal.String())
	assert.Equal(t, "traversal(9)", bst.Traversal(9).String())
}

// a degenerate tree must not exhaust the stack
func TestDeepTraversal(t *testing.T) {
	const total = 10000
	tree := bst.New[int]()
	for i := 0; i < total; i += 1 {
		tree.Insert(i)
	}

	n := 0
	for key := range tree.PostOrder() {
		if key != total-1-n {
			t.Fatalf("post-order[%d]: actual: %d  expected: %d", n, key, total-1-n)
		}
		n += 1
	}
	assert.Equal(t, total, n, "wrong number of keys")
}

func TestPrint(t *testing.T) {
	tree := newIntTree(2, 1, 3)
	buffer := &bytes.Buffer{}

	depth := tree.Print(buffer)

	expected := "       /------+ 3 ^2\n" +
		"|------+ 2\n" +
		"       \\------+ 1 ^2\n"
	assert.Equal(t, 2, depth, "wrong depth")
	assert.Equal(t, expected, buffer.String(), "wrong picture")
}

func TestRandomTree(t *testing.T) {
	randomTree(t, 1, 2200, 2000)
	randomTree(t, 2, 3400, 2760)
	randomTree(t, 3, 5467, 1234)

	for i := 0; i < 5; i += 1 {
		randomTree(t, uint64(10+i), 2100, 2000)
	}
}

func randomTree(t *testing.T, seed uint64, total int, toDelete int) {
	if toDelete > total {
		t.Fatalf("failed: total: %d  < deletions: %d", total, toDelete)
	}

	r := rand.New(rand.NewPCG(seed, seed))
	tree := bst.New[int]()
	keys := make([]int, total)
	present := make(map[int]struct{})

	for i := 0; i < total; i += 1 {
		key := r.IntN(10000)
		keys[i] = key
		added := tree.Insert(key)
		_, duplicate := present[key]
		if added == duplicate {
			t.Fatalf("insert: %d  added: %v  duplicate: %v", key, added, duplicate)
		}
		present[key] = struct{}{}
	}

	if !tree.CheckUp() || !tree.CheckOrder() {
		depth := tree.Print(&bytes.Buffer{})
		t.Logf("depth: %d", depth)
		t.Fatalf("inconsistent tree")
	}
	assert.Equal(t, len(present), tree.Count(), "wrong count")

	for _, key := range keys[:toDelete] {
		_, ok := present[key]
		before := tree.Count()
		if tree.Remove(key) != ok {
			t.Fatalf("remove: %d  expected present: %v", key, ok)
		}
		if ok && before-1 != tree.Count() {
			t.Fatalf("remove: %d  count: %d  expected: %d", key, tree.Count(), before-1)
		}
		delete(present, key)

		if !tree.CheckUp() || !tree.CheckOrder() {
			t.Fatalf("inconsistent tree after removing: %d", key)
		}
	}

	expected := make([]int, 0, len(present))
	for key := range present {
		expected = append(expected, key)
	}
	slices.Sort(expected)
	assert.Equal(t, expected, slices.Collect(tree.All()), "wrong in-order after deletes")

	for _, key := range keys {
		_, ok := present[key]
		if tree.Contains(key) != ok {
			t.Fatalf("contains: %d  expected: %v", key, ok)
		}
	}
}
