// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package dotfile

import (
	"fmt"

	"github.com/emicklei/dot"

	"github.com/bitmark-inc/treevis/avl"
)

// Generate - lay out a tree snapshot in the DOT language
//
// each snapshot node becomes a circle labelled with its key and an
// edge runs to each child; a node with only one child gets an
// invisible sibling edge so Graphviz keeps the child on its proper
// side
//
// an empty snapshot produces a valid but empty digraph
func Generate(s *avl.Snapshot) string {

	g := dot.NewGraph(dot.Directed)
	g.Attr("ordering", "out") // edges keep their creation order

	if s.IsEmpty() {
		return g.String()
	}

	// the snapshot is pre-order so a parent is always materialised
	// before either of its children
	nodes := make([]dot.Node, len(s.Nodes))
	for i, n := range s.Nodes {
		nodes[i] = g.Node(nodeID(i)).
			Attr("shape", "circle").
			Attr("label", fmt.Sprintf("%v", n.Key))
	}

	for i, n := range s.Nodes {
		if n.Left >= 0 {
			g.Edge(nodes[i], nodes[n.Left])
		} else if n.Right >= 0 {
			phantomEdge(g, nodes[i], nodeID(i)+"l")
		}
		if n.Right >= 0 {
			g.Edge(nodes[i], nodes[n.Right])
		} else if n.Left >= 0 {
			phantomEdge(g, nodes[i], nodeID(i)+"r")
		}
	}

	return g.String()
}

func nodeID(index int) string {
	return fmt.Sprintf("n%d", index)
}

// an invisible filler below a single-child node
func phantomEdge(g *dot.Graph, parent dot.Node, id string) {
	phantom := g.Node(id).
		Attr("style", "invis").
		Attr("label", "")
	g.Edge(parent, phantom).Attr("style", "invis")
}
