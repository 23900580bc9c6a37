// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"testing"
)

// a destroyed tree hands all of its nodes to the pool and the next
// tree is built from the pool without fresh allocations
func TestAllocatorRecycle(t *testing.T) {

	const n = 10

	tree := New()
	for i := 0; i < n; i += 1 {
		tree.Insert(testKey(i))
	}

	m.Lock()
	f0 := freeNodes
	m.Unlock()

	tree.Destroy()

	m.Lock()
	f1 := freeNodes
	created := totalNodes
	m.Unlock()

	if f0+n != f1 {
		t.Fatalf("free nodes: actual: %d  expected: %d", f1, f0+n)
	}

	tree = New()
	for i := 0; i < n; i += 1 {
		tree.Insert(testKey(i))
	}

	m.Lock()
	f2 := freeNodes
	unchanged := totalNodes
	m.Unlock()

	if created != unchanged {
		t.Fatalf("total nodes grew: actual: %d  expected: %d", unchanged, created)
	}
	if f1-n != f2 {
		t.Fatalf("free nodes: actual: %d  expected: %d", f2, f1-n)
	}

	tree.Destroy()
}

// a recycled node must come back as a clean leaf
func TestAllocatorReset(t *testing.T) {

	p := newNode(testKey(1))
	p.left = newNode(testKey(0))
	p.right = newNode(testKey(2))
	p.height = 2

	l := p.left
	r := p.right

	freeNode(l)
	freeNode(r)
	freeNode(p)

	q := newNode(testKey(9))
	if testKey(9) != q.key {
		t.Fatalf("key: actual: %v  expected: 9", q.key)
	}
	if 1 != q.height {
		t.Fatalf("height: actual: %d  expected: 1", q.height)
	}
	if nil != q.left || nil != q.right {
		t.Fatal("recycled node still linked")
	}

	// drain what this test put into the pool
	q2 := newNode(testKey(8))
	q3 := newNode(testKey(7))
	freeNode(q)
	freeNode(q2)
	freeNode(q3)
}
