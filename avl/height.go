// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// internal: height of the left branch, zero for an absent branch
func (p *Node) leftHeight() int {
	if nil == p.left {
		return 0
	}
	return p.left.height
}

// internal: height of the right branch, zero for an absent branch
func (p *Node) rightHeight() int {
	if nil == p.right {
		return 0
	}
	return p.right.height
}

// internal: recompute the cached height from the two branches
//
// only valid bottom-up: both branch heights must already be correct
func (p *Node) updateHeight() {
	h := p.leftHeight()
	if r := p.rightHeight(); r > h {
		h = r
	}
	p.height = 1 + h
}

// internal: left branch height minus right branch height
//
// computed as a signed value so a deeper right branch gives a
// negative result, never a large positive one
func (p *Node) balanceFactor() int {
	return p.leftHeight() - p.rightHeight()
}
