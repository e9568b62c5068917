package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/yalue/image_utils"
)

// DefaultCellPixels is the side of one glyph square in pixels.
const DefaultCellPixels = 8

var (
	wallColor     = color.Black
	openColor     = color.White
	solutionColor = color.RGBA{R: 230, G: 20, B: 20, A: 255}
	startColor    = color.RGBA{R: 40, G: 180, B: 70, A: 255}
	finishColor   = color.RGBA{R: 100, G: 120, B: 255, A: 255}
)

// mazeImage satisfies image.Image by painting each Layout glyph as a square.
type mazeImage struct {
	glyphs [][]Glyph
	px     int
}

// Image returns a lazily painted picture of the scene: walls black, open
// cells white, solution cells red. cellPixels ≤ 0 selects DefaultCellPixels.
func Image(s Scene, showSolution bool, cellPixels int) image.Image {
	if cellPixels <= 0 {
		cellPixels = DefaultCellPixels
	}

	return &mazeImage{glyphs: Layout(s, showSolution), px: cellPixels}
}

func (m *mazeImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (m *mazeImage) Bounds() image.Rectangle {
	return image.Rect(0, 0, len(m.glyphs[0])*m.px, len(m.glyphs)*m.px)
}

func (m *mazeImage) At(x, y int) color.Color {
	if !image.Pt(x, y).In(m.Bounds()) {
		return color.Transparent
	}
	switch m.glyphs[y/m.px][x/m.px] {
	case Wall:
		return wallColor
	case Solution:
		return solutionColor
	}

	return openColor
}

// Decorated rasterises the scene and marks the start opening with a green
// arrow above the maze and the finish opening with a blue arrow below it.
func Decorated(s Scene, showSolution bool, cellPixels int) (*image.RGBA, error) {
	if cellPixels <= 0 {
		cellPixels = DefaultCellPixels
	}
	arrow := 2 * cellPixels
	pic := image_utils.ToRGBA(Image(s, showSolution, cellPixels))

	decorated := image_utils.NewCompositeImage()
	if err := decorated.AddImage(pic, image.Pt(0, arrow)); err != nil {
		return nil, fmt.Errorf("render: adding maze: %w", err)
	}

	// The opening above start sits in glyph column 2·x+1.
	startX := (2*s.Start.X + 1) * cellPixels
	in := image_utils.ResizeImage(image_utils.DownArrow(startColor), arrow, arrow)
	if err := decorated.AddImage(in, image.Pt(startX-arrow/4, 0)); err != nil {
		return nil, fmt.Errorf("render: adding start arrow: %w", err)
	}

	finishX := (2*s.Finish.X + 1) * cellPixels
	out := image_utils.ResizeImage(image_utils.DownArrow(finishColor), arrow, arrow)
	if err := decorated.AddImage(out, image.Pt(finishX-arrow/4, arrow+pic.Bounds().Dy())); err != nil {
		return nil, fmt.Errorf("render: adding finish arrow: %w", err)
	}

	return image_utils.ToRGBA(decorated), nil
}
