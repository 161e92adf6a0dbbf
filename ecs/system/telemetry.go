package system

import (
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
)

// TelemetrySystem summarises the rig into the driver's Telemetry component
// and records the last event of the frame. Run it after every system that
// pushes events.
type TelemetrySystem struct{}

func NewTelemetrySystem() *TelemetrySystem {
	return &TelemetrySystem{}
}

func (TelemetrySystem) Update(w *ecs.World) {
	events := w.Events().Peek()
	pw := w.PhysicsWorld()

	ecs.ForEach2(w, component.DriveComponent.Kind(), component.TelemetryComponent.Kind(), func(_ ecs.Entity, drive *component.Drive, t *component.Telemetry) {
		if pw != nil {
			t.Steps = pw.Stats().Steps
		}
		if drive.Controller != nil {
			t.Drive = drive.Controller.State()
			t.Ceiling = drive.Controller.Ceiling()
		}
		if rig := drive.Rig; rig != nil && rig.Chassis != nil {
			pos := rig.Chassis.Position()
			t.ChassisX, t.ChassisY = pos.X, pos.Y
			t.Speed = rig.Chassis.Velocity().Length()
			spin := 0.0
			for _, wheel := range rig.WheelBodies() {
				spin += wheel.AngularVelocity()
			}
			t.WheelSpin = spin / 2
		}
		if len(events) > 0 {
			t.LastEvent = string(events[len(events)-1].Type)
		}
	})

	if bonusEnt, ok := ecs.First(w, component.BonusComponent.Kind()); ok {
		bonus, _ := ecs.Get(w, bonusEnt, component.BonusComponent.Kind())
		ecs.ForEach(w, component.TelemetryComponent.Kind(), func(_ ecs.Entity, t *component.Telemetry) {
			t.BonusAwake = bonus.Awake
		})
	}
}
