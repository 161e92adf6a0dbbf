package component

import "github.com/milk9111/carrig/vehicle"

type ChassisTag struct{}

var ChassisTagComponent = NewComponent[ChassisTag]()

type WheelTag struct {
	Side vehicle.Side
}

var WheelTagComponent = NewComponent[WheelTag]()

// PropTag marks scenery. Name is the scenario key.
type PropTag struct {
	Name string
	Kind string
}

var PropTagComponent = NewComponent[PropTag]()
