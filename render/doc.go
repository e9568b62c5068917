// Package render draws a maze as fixed-width ASCII text or as a raster image.
//
// Both outputs come from one glyph matrix (Layout) of (2·H+1) rows by
// (2·W+1) columns: odd rows and columns hold cells, the rest hold walls or
// open passages. The top border is open above the start cell and the bottom
// border below the finish cell.
//
// Text glyphs, two characters each:
//
//	"X "  wall
//	"V "  carved cell
//	"  "  open passage, or a cell off the solution when it is shown
//	"+ "  cell on the solution path
//
// Image paints the same matrix as squares (wall black, open white,
// solution red) and Decorated adds entry and exit arrows.
package render
