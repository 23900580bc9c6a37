// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
)

// CheckOrder - verify that a full scan produces strictly ascending
// keys with no duplicates
func (tree *Tree) CheckOrder() bool {
	it := tree.Iterator()
	p := it.Next()
	if nil == p {
		return true
	}
	for q := it.Next(); nil != q; q = it.Next() {
		if p.key.Compare(q.key) >= 0 {
			fmt.Printf("order fail at key: %v  followed by: %v\n", p.key, q.key)
			return false
		}
		p = q
	}
	return true
}

// CheckHeights - verify every cached height against its branches
func (tree *Tree) CheckHeights() bool {
	it := tree.Iterator()
	for p := it.Next(); nil != p; p = it.Next() {
		h := p.leftHeight()
		if r := p.rightHeight(); r > h {
			h = r
		}
		if p.height != 1+h {
			fmt.Printf("height fail at key: %v  actual: %d  expected: %d\n", p.key, p.height, 1+h)
			return false
		}
	}
	return true
}

// CheckBalance - verify the AVL height condition at every node
func (tree *Tree) CheckBalance() bool {
	it := tree.Iterator()
	for p := it.Next(); nil != p; p = it.Next() {
		b := p.balanceFactor()
		if b < -1 || b > 1 {
			fmt.Printf("balance fail at key: %v  factor: %d\n", p.key, b)
			return false
		}
	}
	return true
}

// CheckCount - verify the stored node count against a full scan
func (tree *Tree) CheckCount() bool {
	n := 0
	it := tree.Iterator()
	for p := it.Next(); nil != p; p = it.Next() {
		n += 1
	}
	if n != tree.count {
		fmt.Printf("count fail: actual: %d  scan found: %d\n", tree.count, n)
		return false
	}
	return true
}
