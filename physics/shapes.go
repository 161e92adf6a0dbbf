package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// PentagonSides is the vertex count of the convex prop shape.
const PentagonSides = 5

// PentagonVerts returns a regular pentagon of the given circumradius centred on
// the origin, wound counter-clockwise.
func PentagonVerts(radius float64) []cp.Vector {
	verts := make([]cp.Vector, 0, PentagonSides)
	for i := 0; i < PentagonSides; i++ {
		a := 2 * math.Pi / PentagonSides * float64(i)
		verts = append(verts, cp.Vector{X: radius * math.Cos(a), Y: radius * math.Sin(a)})
	}
	return verts
}

// NewPentagon attaches a pentagon shape to body.
func NewPentagon(body *cp.Body, radius float64) *cp.Shape {
	return cp.NewPolyShapeRaw(body, PentagonSides, PentagonVerts(radius), 0)
}

// MomentForPentagon returns the moment of inertia for a solid pentagon.
func MomentForPentagon(mass, radius float64) float64 {
	return cp.MomentForPoly(mass, PentagonSides, PentagonVerts(radius), cp.Vector{}, 0)
}
