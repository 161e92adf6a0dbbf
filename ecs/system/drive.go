package system

import (
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
	"github.com/milk9111/carrig/vehicle"
	"go.uber.org/zap"
)

// DriveSystem feeds key transitions to the torque controller, presses first.
// The inspect key logs the bonus body instead of driving.
type DriveSystem struct {
	logger *zap.Logger
}

func NewDriveSystem(logger *zap.Logger) *DriveSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DriveSystem{logger: logger}
}

func (d *DriveSystem) Update(w *ecs.World) {
	if d == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.InputComponent.Kind(), component.DriveComponent.Kind(), func(e ecs.Entity, input *component.Input, drive *component.Drive) {
		if drive.Controller == nil {
			return
		}
		for _, k := range input.Pressed {
			if drive.Controller.KeyDown(k) {
				continue
			}
			if k == vehicle.KeyDown {
				d.inspect(w, e)
			}
		}
		for _, k := range input.Released {
			drive.Controller.KeyUp(k)
		}
	})
}

func (d *DriveSystem) inspect(w *ecs.World, driver ecs.Entity) {
	w.Events().Push(ecs.Event{Type: ecs.EventInspect, Entity: driver})

	bonusEnt, ok := ecs.First(w, component.BonusComponent.Kind())
	if !ok {
		d.logger.Info("inspect: no bonus in scene")
		return
	}
	bonus, _ := ecs.Get(w, bonusEnt, component.BonusComponent.Kind())
	body, ok := ecs.Get(w, bonusEnt, component.PhysicsBodyComponent.Kind())
	if !ok || body.Body == nil {
		return
	}
	pos := body.Body.Position()
	vel := body.Body.Velocity()
	d.logger.Info("inspect bonus",
		zap.Stringer("entity", bonusEnt),
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Float64("vx", vel.X),
		zap.Float64("vy", vel.Y),
		zap.Bool("held", bonus.Dormancy.Asleep()),
		zap.Bool("sleeping", body.Body.IsSleeping()),
		zap.Int("touches", bonus.Touches),
	)
}
