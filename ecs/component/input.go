package component

import "github.com/milk9111/carrig/vehicle"

// Input holds the key transitions seen this frame, in arrival order.
type Input struct {
	Pressed  []vehicle.Key
	Released []vehicle.Key
}

var InputComponent = NewComponent[Input]()
