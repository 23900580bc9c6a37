// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package dotfile - turn tree snapshots into Graphviz output
//
// a snapshot is laid out as a directed graph in the DOT language,
// which is either written out as source or piped through the
// external Graphviz "dot" program to produce SVG or PDF files
//
// output files are numbered in sequence: "out-0", "out-1", … for
// DOT source and "out-0.svg", "out-1.pdf", … for rendered formats
package dotfile
