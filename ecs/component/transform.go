package component

// Transform mirrors a body's pose in world units, y up.
type Transform struct {
	X     float64
	Y     float64
	Angle float64
}

var TransformComponent = NewComponent[Transform]()
