// Package domain contains the core domain models for the host cache: file
// records, the build dependency graph and compiler-facing value types.
package domain

import (
	"iter"
	"slices"
	"strings"
)

// Node is a vertex of the build graph: one file identity plus its edges.
type Node struct {
	uri        NodeURI
	dependsOn  []*Node
	depSet     map[NodeURI]struct{}
	dependees  []*Node
	dependeeOf map[NodeURI]struct{}
}

// NewNode creates a node with no edges.
func NewNode(uri NodeURI) *Node {
	return &Node{
		uri:        uri,
		depSet:     make(map[NodeURI]struct{}),
		dependeeOf: make(map[NodeURI]struct{}),
	}
}

// URI returns the node identity.
func (n *Node) URI() NodeURI {
	return n.uri
}

// DependsOn adds outgoing edges to others. Adding an existing edge is a no-op.
// The reverse edge is recorded on each target.
func (n *Node) DependsOn(others ...*Node) {
	for _, other := range others {
		if other == nil {
			continue
		}
		if _, ok := n.depSet[other.uri]; ok {
			continue
		}
		n.depSet[other.uri] = struct{}{}
		n.dependsOn = append(n.dependsOn, other)

		if _, ok := other.dependeeOf[n.uri]; !ok {
			other.dependeeOf[n.uri] = struct{}{}
			other.dependees = append(other.dependees, n)
		}
	}
}

// Dependencies returns the outgoing edges in insertion order.
func (n *Node) Dependencies() []*Node {
	return slices.Clone(n.dependsOn)
}

// Dependees returns the nodes that depend on n, in insertion order.
func (n *Node) Dependees() []*Node {
	return slices.Clone(n.dependees)
}

// HasDependency reports whether n has an edge to uri.
func (n *Node) HasDependency(uri NodeURI) bool {
	_, ok := n.depSet[uri]
	return ok
}

// BuildGraph maps node identities to nodes. The graph may contain cycles.
// It is not safe for concurrent use.
type BuildGraph struct {
	nodes map[NodeURI]*Node
}

// NewBuildGraph creates an empty BuildGraph.
func NewBuildGraph() *BuildGraph {
	return &BuildGraph{nodes: make(map[NodeURI]*Node)}
}

// Get returns the node stored under uri.
func (g *BuildGraph) Get(uri NodeURI) (*Node, bool) {
	n, ok := g.nodes[uri]
	return n, ok
}

// Put stores node under its own identity, replacing any previous node.
func (g *BuildGraph) Put(node *Node) {
	g.nodes[node.uri] = node
}

// NodeFor returns the node for fileName, creating and storing it on first use.
// All node creation goes through here so one identity never maps to two nodes.
func (g *BuildGraph) NodeFor(fileName string) *Node {
	uri := FileURL(fileName)
	if n, ok := g.Get(uri); ok {
		return n
	}
	n := NewNode(uri)
	g.Put(n)
	return n
}

// Len returns the number of nodes.
func (g *BuildGraph) Len() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *BuildGraph) EdgeCount() int {
	count := 0
	for _, n := range g.nodes {
		count += len(n.dependsOn)
	}
	return count
}

// Nodes yields every node ordered by URI.
func (g *BuildGraph) Nodes() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, uri := range g.sortedURIs() {
			if !yield(g.nodes[uri]) {
				return
			}
		}
	}
}

// Edges yields every (from, to) pair, ordered by source URI then insertion order.
func (g *BuildGraph) Edges() iter.Seq2[NodeURI, NodeURI] {
	return func(yield func(NodeURI, NodeURI) bool) {
		for n := range g.Nodes() {
			for _, dep := range n.dependsOn {
				if !yield(n.uri, dep.uri) {
					return
				}
			}
		}
	}
}

// Dependents returns every node that reaches uri through dependency edges,
// sorted by URI. The start node is included only if it sits on a cycle.
func (g *BuildGraph) Dependents(uri NodeURI) []NodeURI {
	start, ok := g.nodes[uri]
	if !ok {
		return nil
	}

	visited := make(map[NodeURI]struct{})
	queue := slices.Clone(start.dependees)
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if _, seen := visited[n.uri]; seen {
			continue
		}
		visited[n.uri] = struct{}{}
		queue = append(queue, n.dependees...)
	}

	result := make([]NodeURI, 0, len(visited))
	for u := range visited {
		result = append(result, u)
	}
	slices.SortFunc(result, compareURI)
	return result
}

func (g *BuildGraph) sortedURIs() []NodeURI {
	uris := make([]NodeURI, 0, len(g.nodes))
	for uri := range g.nodes {
		uris = append(uris, uri)
	}
	slices.SortFunc(uris, compareURI)
	return uris
}

func compareURI(a, b NodeURI) int {
	return strings.Compare(a.String(), b.String())
}
