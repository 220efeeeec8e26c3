// Package category groups record positions into a shallow category tree.
package category

import (
	"fmt"
	"io"
	"strings"

	"github.com/kurdish-vocab/kvocab/internal/vocab"
)

// RootName is the name of the synthetic root node.
const RootName = "Kurdish vocabulary"

// Names lists the fixed leaf categories in display order.
var Names = []string{vocab.CategoryGreetings, vocab.CategoryFamily, vocab.CategoryFood}

// Node is a category with the positions of its records.
// Children are owned by value.
type Node struct {
	Name      string `json:"name"`
	Positions []int  `json:"positions,omitempty"`
	Children  []Node `json:"children,omitempty"`
}

// Build groups every position of s under the leaf whose name equals the
// record's category. Records with any other category are left out of the tree.
func Build(s *vocab.Store) Node {
	root := Node{Name: RootName}

	leaves := make([]Node, len(Names))
	slot := make(map[string]int, len(Names))
	for i, name := range Names {
		leaves[i] = Node{Name: name}
		slot[name] = i
	}

	for pos := 0; pos < s.Len(); pos++ {
		if i, ok := slot[s.At(pos).Category]; ok {
			leaves[i].Positions = append(leaves[i].Positions, pos)
		}
	}

	root.Children = leaves
	return root
}

// Print writes the tree in pre-order, each node's name indented by its depth.
func Print(w io.Writer, n Node) {
	printNode(w, n, 0)
}

func printNode(w io.Writer, n Node, depth int) {
	fmt.Fprintf(w, "%s- %s\n", strings.Repeat("  ", depth), n.Name)
	for _, child := range n.Children {
		printNode(w, child, depth+1)
	}
}

// AllPositions returns every position held anywhere in the tree, in pre-order.
func (n Node) AllPositions() []int {
	out := append([]int(nil), n.Positions...)
	for _, child := range n.Children {
		out = append(out, child.AllPositions()...)
	}
	return out
}

// Orphans returns the positions of s that do not appear in the tree rooted at root.
func Orphans(s *vocab.Store, root Node) []int {
	inTree := make(map[int]bool, s.Len())
	for _, pos := range root.AllPositions() {
		inTree[pos] = true
	}

	var orphans []int
	for pos := 0; pos < s.Len(); pos++ {
		if !inTree[pos] {
			orphans = append(orphans, pos)
		}
	}
	return orphans
}
