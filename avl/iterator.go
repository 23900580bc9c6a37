// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Iterator - in-order traversal state over a tree
//
// the iterator holds borrowed references into the tree, so the tree
// must not be modified or destroyed while the iterator is still in
// use; any number of iterators may run over the same tree at once
type Iterator struct {
	pending []*Node // nodes whose right branch is still unvisited
	cursor  *Node   // root of the next sub-tree to descend into
}

// Iterator - start a new ascending scan over the whole tree
//
// nothing is visited until the first call to Next
func (tree *Tree) Iterator() *Iterator {
	depth := 0
	if nil != tree.root {
		depth = tree.root.height
	}
	return &Iterator{
		pending: make([]*Node, 0, depth),
		cursor:  tree.root,
	}
}

// Next - the node with the next lowest unvisited key
// or nil when the scan is finished
func (it *Iterator) Next() *Node {
	for {
		p := it.cursor
		if nil == p {
			n := len(it.pending)
			if 0 == n {
				return nil // scan complete
			}
			p = it.pending[n-1]
			it.pending = it.pending[:n-1]
			it.cursor = p.right
			return p
		}
		if nil != p.left {
			// park the node until its left branch is exhausted
			it.pending = append(it.pending, p)
			it.cursor = p.left
			continue
		}
		it.cursor = p.right
		return p
	}
}
