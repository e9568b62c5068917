package core

import (
	"fmt"
	"strings"
)

// String renders a G(V, E) summary: vertex count, directed edge count, and the
// outgoing edges grouped per source vertex in insertion order.
//
// Example (undirected A–B):
//
//	G(V, E)
//	Total Vertices: 2
//	Total Edges: 2
//	Edges: {{(A, B)}, {(B, A)}}
func (g *Graph[T]) String() string {
	var sb strings.Builder
	sb.WriteString("G(V, E)\n")
	fmt.Fprintf(&sb, "Total Vertices: %d\n", g.VertexCount())
	fmt.Fprintf(&sb, "Total Edges: %d\n", g.EdgeCount())
	sb.WriteString("Edges: {")
	for i, key := range g.order {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteByte('{')
		for j, e := range g.vertices[key].adj {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "(%v, %v)", e.From, e.To)
		}
		sb.WriteByte('}')
	}
	sb.WriteByte('}')

	return sb.String()
}
