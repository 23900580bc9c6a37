// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Visualiser for AVL balanced trees
//
// This program inserts a sequence of signed 32 bit values into an
// AVL tree and renders the resulting structure through Graphviz
// into numbered SVG, PDF or DOT source files.
//
// With the --intermediate option one file is written for every
// value given, so the growth and rebalancing of the tree can be
// followed step by step; otherwise only the final tree is written.
//
// Values are plain arguments after the options; negative values
// must be preceded by a "--" marker so they are not mistaken for
// options.
//
// An optional Lua configuration file can preset the output
// directory, the file type and the logging setup; command line
// options override the file.
package main
