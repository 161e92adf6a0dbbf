package component

import "github.com/milk9111/carrig/vehicle"

// Drive connects the driver entity to the rig and its torque controller.
type Drive struct {
	Rig        *vehicle.Rig
	Controller *vehicle.TorqueController
}

var DriveComponent = NewComponent[Drive]()
