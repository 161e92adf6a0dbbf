package physics

import "github.com/jakecoffman/cp"

// DensityNormalizer overrides the mass of every dynamic body added to the
// world so that all of its shapes share one density. Configured masses are
// discarded.
type DensityNormalizer struct {
	Density float64
}

func (d DensityNormalizer) BodyAdded(w *World, body *cp.Body) {
	if d.Density <= 0 || body == nil || body.GetType() != cp.BODY_DYNAMIC {
		return
	}
	body.EachShape(func(shape *cp.Shape) {
		shape.SetDensity(d.Density)
	})
}
