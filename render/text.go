package render

import "strings"

// Text renders the scene as ASCII, one line per Layout row, each line ending
// in a newline. Two equal scenes always render to the same bytes.
//
// Example (4×4, start (0, 0), finish (3, 3), no solution overlay):
//
//	X   X X X X X X X
//	X V V V V V V V X
//	...
//	X X X X X X X   X
func Text(s Scene, showSolution bool) string {
	var sb strings.Builder
	for _, row := range Layout(s, showSolution) {
		for _, g := range row {
			sb.WriteString(glyphText[g])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
