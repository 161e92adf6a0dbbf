package component

import "github.com/milk9111/carrig/vehicle"

// Telemetry is a per-frame summary of the rig for the HUD and the headless
// runner.
type Telemetry struct {
	Steps      int
	ChassisX   float64
	ChassisY   float64
	Speed      float64
	WheelSpin  float64
	Drive      vehicle.TorqueState
	Ceiling    float64
	BonusAwake bool
	LastEvent  string
}

var TelemetryComponent = NewComponent[Telemetry]()
