// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree holding a set of unique keys
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Keys are kept in strict ascending order with no duplicates; the
// heights of the two branches of any node never differ by more than
// one, so search and insert stay logarithmic however skewed the
// insertion order is.
//
// The rebalance after an insertion walks an explicitly recorded
// ancestor path bottom-up instead of following parent pointers, and
// a rotation exchanges the keys of the two affected nodes rather
// than re-linking a new node into the parent, so the node at the
// top of a rotated sub-tree keeps its identity.  In-order traversal
// and tree teardown run on explicit stacks, never on call
// recursion, so the call depth stays fixed no matter how large the
// tree has grown.
//
// There is no delete; a tree only grows until Destroy returns all
// of its nodes to the internal pool in one sweep.
package avl
