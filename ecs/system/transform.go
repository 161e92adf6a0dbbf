package system

import (
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
)

// TransformSystem copies body poses into Transform components. Static bodies
// never move, so they are skipped.
type TransformSystem struct{}

func NewTransformSystem() *TransformSystem {
	return &TransformSystem{}
}

func (TransformSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
		if b.Body == nil || b.Static {
			return
		}
		pos := b.Body.Position()
		t.X = pos.X
		t.Y = pos.Y
		t.Angle = b.Body.Angle()
	})
}
