// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: pivot a sub-tree clockwise so the left child becomes
// its effective root
//
// the two keys are exchanged and the links rewired, so the node at
// the top keeps its identity and any ancestor link to it stays
// valid; no allocation occurs
//
// returns false and leaves the sub-tree untouched if there is no
// left child to pivot around
func (p *Node) rotateRight() bool {
	if nil == p.left {
		return false
	}
	l := p.left
	p.key, l.key = l.key, p.key
	p.left = l.left
	l.left = l.right
	l.right = p.right
	p.right = l
	l.updateHeight() // demoted node first
	p.updateHeight() // then the sub-tree root above it
	return true
}

// internal: mirror image of rotateRight
func (p *Node) rotateLeft() bool {
	if nil == p.right {
		return false
	}
	r := p.right
	p.key, r.key = r.key, p.key
	p.right = r.right
	r.right = r.left
	r.left = p.left
	p.left = r
	r.updateHeight()
	p.updateHeight()
	return true
}

// internal: restore the AVL height condition at a single node
//
// the cached heights of the node and of both children must be up to
// date on entry; returns true if any rotation was performed
//
// a factor of ±2 guarantees the corresponding child exists, so the
// child accesses below cannot fault
func (p *Node) rebalance() bool {
	switch p.balanceFactor() {
	case -2: // right branch too high
		if 1 == p.right.balanceFactor() {
			// right-left: straighten the inner kink first
			p.right.rotateRight()
		}
		return p.rotateLeft()
	case 2: // left branch too high
		if -1 == p.left.balanceFactor() {
			// left-right
			p.left.rotateLeft()
		}
		return p.rotateRight()
	default: // already within limits
		return false
	}
}
