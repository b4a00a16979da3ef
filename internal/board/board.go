// Package board describes the rectangular workpiece a QLT program drills
// into. A Geometry is constructed once per run and read-only afterwards;
// every row evaluation shares the same value.
package board

// Placeholder names used inside QLT coordinate expressions.
const (
	HeightSymbol    = "Dim1"
	WidthSymbol     = "Dim2"
	ThicknessSymbol = "Dim3"
)

// Default dimensions in millimeters.
const (
	DefaultWidth     = 200.0
	DefaultHeight    = 800.0
	DefaultThickness = 16.0
)

// Geometry holds the board dimensions.
type Geometry struct {
	Width     float64
	Height    float64
	Thickness float64
}

// Default returns the standard 200x800x16 board.
func Default() Geometry {
	return Geometry{Width: DefaultWidth, Height: DefaultHeight, Thickness: DefaultThickness}
}

// Symbols exposes the dimensions as an expression symbol table.
// Dim1 binds height, Dim2 width, Dim3 thickness.
func (g Geometry) Symbols() map[string]float64 {
	return map[string]float64{
		HeightSymbol:    g.Height,
		WidthSymbol:     g.Width,
		ThicknessSymbol: g.Thickness,
	}
}

// Outline returns the board rectangle anchored at the origin as a closed
// ring of corner points, ready for the renderer.
func (g Geometry) Outline() [][2]float64 {
	return [][2]float64{
		{0, 0},
		{g.Width, 0},
		{g.Width, g.Height},
		{0, g.Height},
		{0, 0},
	}
}
