// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package graph

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/AleutianAI/camelot/services/harmony/camelot"
)

// maxNodes bounds the node count so a neighbor set fits in one keySet word.
const maxNodes = 32

// keySet is a bitset of node ids.
type keySet uint32

func (s keySet) has(id int) bool { return s&(1<<uint(id)) != 0 }
func (s keySet) len() int        { return bits.OnesCount32(uint32(s)) }

// Edge is a labeled connection between two keys.
//
// From and To record the direction in which the transition was applied
// during the build. Queries treat the edge as undirected.
type Edge struct {
	// ID is the insertion position of the edge.
	ID int

	// From is the key the transition was applied to.
	From camelot.Key

	// To is the key the transition produced.
	To camelot.Key

	// Transition is the rule that produced the edge.
	Transition camelot.Transition

	from, to int
}

// Other returns the endpoint of e opposite to k.
func (e *Edge) Other(k camelot.Key) camelot.Key {
	if e.From == k {
		return e.To
	}
	return e.From
}

// Node is one wheel key and the edges incident to it.
type Node struct {
	// ID is the dense node identifier (insertion position).
	ID int

	// Key is the wheel position this node represents.
	Key camelot.Key

	// Edges holds every incident edge, outgoing and incoming, in the order
	// they were added. Path search enumerates neighbors in this order.
	Edges []*Edge
}

// ScaleTransitions is the Camelot transition graph.
//
// Thread Safety:
//
//	Mutated only inside Build. Once Build returns the graph is frozen and
//	can be read from any number of goroutines.
type ScaleTransitions struct {
	nodes []*Node
	index map[camelot.Key]int
	edges []*Edge

	// edgesByTransition groups edges by label for per-rule statistics.
	edgesByTransition map[camelot.Transition][]*Edge

	// adjacency[id] is the simple (label-free) neighbor set of node id.
	adjacency []keySet

	frozen bool

	// BuiltAtMilli is the Unix timestamp in milliseconds when the graph was frozen.
	BuiltAtMilli int64
}

func newScaleTransitions(nodeHint, edgeHint int) *ScaleTransitions {
	return &ScaleTransitions{
		nodes:             make([]*Node, 0, nodeHint),
		index:             make(map[camelot.Key]int, nodeHint),
		edges:             make([]*Edge, 0, edgeHint),
		edgesByTransition: make(map[camelot.Transition][]*Edge),
		adjacency:         make([]keySet, 0, nodeHint),
	}
}

// addNode registers k as a node and returns its id.
func (g *ScaleTransitions) addNode(k camelot.Key) (int, error) {
	if g.frozen {
		return 0, ErrGraphFrozen
	}
	if _, exists := g.index[k]; exists {
		return 0, fmt.Errorf("%w: %v", ErrDuplicateNode, k)
	}
	if len(g.nodes) >= maxNodes {
		return 0, fmt.Errorf("graph holds at most %d nodes", maxNodes)
	}

	id := len(g.nodes)
	g.nodes = append(g.nodes, &Node{ID: id, Key: k})
	g.index[k] = id
	g.adjacency = append(g.adjacency, 0)
	return id, nil
}

// addEdge connects two existing nodes with a labeled edge.
//
// The edge is recorded on both endpoints, which makes the graph
// undirected regardless of whether the rule set contains inverses.
func (g *ScaleTransitions) addEdge(from, to camelot.Key, t camelot.Transition) (*Edge, error) {
	if g.frozen {
		return nil, ErrGraphFrozen
	}
	fromID, ok := g.index[from]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, from)
	}
	toID, ok := g.index[to]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrKeyNotFound, to)
	}

	e := &Edge{ID: len(g.edges), From: from, To: to, Transition: t, from: fromID, to: toID}
	g.edges = append(g.edges, e)
	g.edgesByTransition[t] = append(g.edgesByTransition[t], e)

	g.nodes[fromID].Edges = append(g.nodes[fromID].Edges, e)
	if toID != fromID {
		g.nodes[toID].Edges = append(g.nodes[toID].Edges, e)
		g.adjacency[fromID] |= 1 << uint(toID)
		g.adjacency[toID] |= 1 << uint(fromID)
	}
	return e, nil
}

// freeze makes the graph read-only.
func (g *ScaleTransitions) freeze() {
	g.frozen = true
	g.BuiltAtMilli = time.Now().UnixMilli()
}

// IsFrozen returns true if the graph is in read-only mode.
func (g *ScaleTransitions) IsFrozen() bool {
	return g.frozen
}

// NodeCount returns the number of nodes.
func (g *ScaleTransitions) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges, counting parallel edges separately.
func (g *ScaleTransitions) EdgeCount() int {
	return len(g.edges)
}

// Keys returns the node keys in insertion order.
func (g *ScaleTransitions) Keys() []camelot.Key {
	keys := make([]camelot.Key, len(g.nodes))
	for i, n := range g.nodes {
		keys[i] = n.Key
	}
	return keys
}

// Node returns the node for k.
func (g *ScaleTransitions) Node(k camelot.Key) (*Node, bool) {
	id, ok := g.index[k]
	if !ok {
		return nil, false
	}
	return g.nodes[id], true
}

// Edges returns all edges in insertion order.
// The returned slice must not be modified.
func (g *ScaleTransitions) Edges() []*Edge {
	return g.edges
}

// EdgesByTransition returns the edges labeled t.
// The returned slice must not be modified.
func (g *ScaleTransitions) EdgesByTransition(t camelot.Transition) []*Edge {
	return g.edgesByTransition[t]
}

// Adjacent reports whether a and b are joined by at least one edge.
func (g *ScaleTransitions) Adjacent(a, b camelot.Key) bool {
	aID, ok := g.index[a]
	if !ok {
		return false
	}
	bID, ok := g.index[b]
	if !ok {
		return false
	}
	return g.adjacency[aID].has(bID)
}

// lookup returns the node id for k or ErrKeyNotFound.
func (g *ScaleTransitions) lookup(k camelot.Key) (int, error) {
	id, ok := g.index[k]
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrKeyNotFound, k)
	}
	return id, nil
}
