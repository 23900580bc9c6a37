// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// SnapshotNode - one node of a flattened structural copy
//
// child links are indexes into the snapshot node list, -1 marks an
// absent branch
type SnapshotNode struct {
	Key    Item // the stored key itself, not a copy
	Height int  // cached height as held by the live node
	Left   int  // index of the left child or -1
	Right  int  // index of the right child or -1
}

// Snapshot - a point in time structural copy of a tree
//
// nodes are laid out in pre-order with the root at index zero, so
// two structurally equal trees always flatten to the same snapshot
type Snapshot struct {
	Nodes []SnapshotNode
}

// Count - number of nodes held in the snapshot
func (s *Snapshot) Count() int {
	return len(s.Nodes)
}

// IsEmpty - true if the snapshot was taken from an empty tree
func (s *Snapshot) IsEmpty() bool {
	return 0 == len(s.Nodes)
}

// one level of the iterative flattening walk
type snapshotFrame struct {
	node   *Node
	parent int  // index of the parent slot, -1 for the root
	right  bool // fill the right link of the parent, not the left
}

// Snapshot - capture the current structure of the tree
//
// the capture is entirely detached: later insertions or a Destroy
// do not affect snapshots already taken, and taking one never
// modifies the tree
func (tree *Tree) Snapshot() *Snapshot {
	s := &Snapshot{
		Nodes: make([]SnapshotNode, 0, tree.count),
	}
	if nil == tree.root {
		return s
	}

	stack := []snapshotFrame{{node: tree.root, parent: -1}}
	for n := len(stack); 0 != n; n = len(stack) {
		f := stack[n-1]
		stack = stack[:n-1]

		i := len(s.Nodes)
		s.Nodes = append(s.Nodes, SnapshotNode{
			Key:    f.node.key,
			Height: f.node.height,
			Left:   -1,
			Right:  -1,
		})
		if f.parent >= 0 {
			if f.right {
				s.Nodes[f.parent].Right = i
			} else {
				s.Nodes[f.parent].Left = i
			}
		}

		// right branch is pushed first so the left one is
		// flattened first, keeping the layout pre-order
		if nil != f.node.right {
			stack = append(stack, snapshotFrame{node: f.node.right, parent: i, right: true})
		}
		if nil != f.node.left {
			stack = append(stack, snapshotFrame{node: f.node.left, parent: i})
		}
	}
	return s
}
