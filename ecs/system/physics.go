package system

import (
	"github.com/milk9111/carrig/ecs"
)

// FixedStep is the simulation step used by the game and the headless runner.
const FixedStep = 1.0 / 60.0

// PhysicsSystem advances the attached physics world by one fixed step.
type PhysicsSystem struct {
	dt float64
}

func NewPhysicsSystem(dt float64) *PhysicsSystem {
	if dt <= 0 {
		dt = FixedStep
	}
	return &PhysicsSystem{dt: dt}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	if pw := w.PhysicsWorld(); pw != nil {
		pw.Step(ps.dt)
	}
}
