// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Destroy - release every node of the tree back to the allocator
// pool
//
// runs on an explicit work list so the call stack stays flat no
// matter how large the tree has grown; the tree itself remains
// valid and empty afterwards and can be reused
//
// any iterators over the tree become invalid
func (tree *Tree) Destroy() {
	if nil == tree.root {
		tree.count = 0
		return
	}

	stack := []*Node{tree.root}
	for n := len(stack); 0 != n; n = len(stack) {
		p := stack[n-1]
		stack = stack[:n-1]
		if nil != p.left {
			stack = append(stack, p.left)
		}
		if nil != p.right {
			stack = append(stack, p.right)
		}
		freeNode(p) // both branches are already saved above
	}

	tree.root = nil
	tree.count = 0
}
