// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Tree - type to hold the root node of a tree
type Tree struct {
	root  *Node
	count int
}

// New - create an initially empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// IsEmpty - true if tree contains no data
func (tree *Tree) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree) Count() int {
	return tree.count
}

// Root - return the root node of the tree
// (nil if the tree is empty)
func (tree *Tree) Root() *Node {
	return tree.root
}

// Key - read the key from a node item
func (p *Node) Key() Item {
	return p.key
}

// Height - cached height of the sub-tree rooted at this node
// (a leaf is 1)
func (p *Node) Height() int {
	return p.height
}

// BalanceFactor - left branch height minus right branch height
// (always in -1 … +1 between operations)
func (p *Node) BalanceFactor() int {
	return p.balanceFactor()
}

// Left - root node of the left sub-tree or nil
func (p *Node) Left() *Node {
	return p.left
}

// Right - root node of the right sub-tree or nil
func (p *Node) Right() *Node {
	return p.right
}
