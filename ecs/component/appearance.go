package component

import "image/color"

// Appearance overrides the debug fill colour of an entity's shape.
type Appearance struct {
	Fill color.Color
}

var AppearanceComponent = NewComponent[Appearance]()
