package timeline

import "fmt"

// Visual constants shared by every clip variant.
const (
	// MinWidth is the smallest width a drag can leave a clip with.
	MinWidth = 1.0

	// CornerRadius is the rounding applied to every clip rectangle.
	CornerRadius = 6.0

	// BorderWidth is the thickness of the selection ring.
	BorderWidth = 2.0

	// CornerHitRadius is the hit-target size of corner affordances.
	CornerHitRadius = 8.0
)

// Geometry is the plain placement of a clip on the timeline canvas.
// X maps the clip's start time to a horizontal pixel offset, Width maps
// its duration to a pixel length. It carries no rendering state.
type Geometry struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Radius float64
}

// Validate rejects negative dimensions. Construction fails fast rather
// than clamping so upstream caller bugs are not masked.
func (g Geometry) Validate() error {
	if g.Width < 0 {
		return &GeometryError{Reason: fmt.Sprintf("negative width %g", g.Width)}
	}
	if g.Height < 0 {
		return &GeometryError{Reason: fmt.Sprintf("negative height %g", g.Height)}
	}
	return nil
}

// Right returns the x coordinate of the clip's right edge.
func (g Geometry) Right() float64 {
	return g.X + g.Width
}

// Contains reports whether the point lies inside the rectangle.
func (g Geometry) Contains(x, y float64) bool {
	return x >= g.X && x <= g.X+g.Width && y >= g.Y && y <= g.Y+g.Height
}
