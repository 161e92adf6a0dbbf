package autopilot

import (
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
)

// FromWorld samples the rig as it is before the coming step.
func FromWorld(w *ecs.World) func() Inputs {
	return func() Inputs {
		var in Inputs
		if pw := w.PhysicsWorld(); pw != nil {
			in.Step = pw.Stats().Steps
		}
		if e, ok := ecs.First(w, component.DriveComponent.Kind()); ok {
			drive, _ := ecs.Get(w, e, component.DriveComponent.Kind())
			if drive.Controller != nil {
				in.Torque = drive.Controller.State().Torque
			}
			if drive.Rig != nil && drive.Rig.Chassis != nil {
				in.X = drive.Rig.Chassis.Position().X
				in.Speed = drive.Rig.Chassis.Velocity().Length()
			}
		}
		if e, ok := ecs.First(w, component.BonusComponent.Kind()); ok {
			bonus, _ := ecs.Get(w, e, component.BonusComponent.Kind())
			in.BonusAwake = bonus.Awake
		}
		return in
	}
}
