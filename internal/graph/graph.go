// Package graph holds a small undirected adjacency list over named nodes.
package graph

import (
	"fmt"
	"io"
	"strings"
)

// Graph is an undirected graph stored as adjacency lists in insertion order.
// It has no self-loop or duplicate-edge guard.
type Graph struct {
	names []string
	adj   [][]int
}

// New returns a graph with one node per name and no edges.
func New(names []string) *Graph {
	return &Graph{
		names: append([]string(nil), names...),
		adj:   make([][]int, len(names)),
	}
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.names)
}

// Name returns the name of node i.
func (g *Graph) Name(i int) string {
	return g.names[i]
}

// AddUndirectedEdge adds b to a's list and a to b's list.
// Edges with an endpoint outside the node range are dropped without error.
func (g *Graph) AddUndirectedEdge(a, b int) {
	if !g.valid(a) || !g.valid(b) {
		return
	}
	g.adj[a] = append(g.adj[a], b)
	g.adj[b] = append(g.adj[b], a)
}

func (g *Graph) valid(i int) bool {
	return i >= 0 && i < len(g.names)
}

// Adjacent returns the neighbor indices of node i in insertion order.
func (g *Graph) Adjacent(i int) []int {
	return append([]int(nil), g.adj[i]...)
}

// Neighbors returns the neighbor names of node i in insertion order.
func (g *Graph) Neighbors(i int) []string {
	out := make([]string, len(g.adj[i]))
	for j, n := range g.adj[i] {
		out[j] = g.names[n]
	}
	return out
}

// PrintConnections writes a header and one "Name: neighbor, neighbor" line per node.
func (g *Graph) PrintConnections(w io.Writer) {
	fmt.Fprint(w, "\nKurdish city connections:\n")
	for i, name := range g.names {
		fmt.Fprintf(w, "  %s: %s\n", name, strings.Join(g.Neighbors(i), ", "))
	}
	fmt.Fprint(w, "\n")
}
