package component

import "github.com/milk9111/carrig/physics"

// CollisionLayer records the category and filter applied to the entity's
// shape, for drawing and inspection.
type CollisionLayer struct {
	Category physics.Category
	Filter   physics.Filter
	Sensor   bool
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
