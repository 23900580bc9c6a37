// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - add a key to the tree
// returns true if the key was added,
// false if an equal key was already present
//
// a duplicate insert leaves the tree completely untouched: no
// structure, height or count changes
func (tree *Tree) Insert(key Item) bool {

	depth := 0
	if nil != tree.root {
		depth = tree.root.height
	}
	ancestors := make([]*Node, 0, depth)

	// descend to the attachment point remembering every node
	// passed on the way down
	link := &tree.root
	for nil != *link {
		p := *link
		ancestors = append(ancestors, p)
		switch p.key.Compare(key) {
		case +1: // p.key > key
			link = &p.left
		case -1: // p.key < key
			link = &p.right
		default: // already stored
			return false
		}
	}

	*link = newNode(key)
	tree.count += 1

	// the new leaf may have grown a branch: walk back towards the
	// root restoring cached heights and the balance condition,
	// deepest ancestor first
	for i := len(ancestors) - 1; i >= 0; i -= 1 {
		ancestors[i].updateHeight()
		ancestors[i].rebalance()
	}

	return true
}
