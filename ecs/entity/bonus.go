package entity

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
	"github.com/milk9111/carrig/physics"
	"github.com/milk9111/carrig/scenarios"
)

func addBonus(w *ecs.World, pw *physics.World, policy *physics.Policy, spec scenarios.BonusSpec) (ecs.Entity, error) {
	body := cp.NewBody(spec.Mass, cp.MomentForBox(spec.Mass, spec.Size, spec.Size))
	body.SetPosition(spec.Position)
	shape := cp.NewBox(body, spec.Size, spec.Size, 0)
	filter := policy.Apply(shape, physics.CategoryBonus)
	pw.AddBody(body, shape)

	bonus := &component.Bonus{
		Contacts: pw.TrackContacts(physics.CollisionTypeBonus, physics.CollisionTypeRig),
		Awake:    true,
	}
	if spec.Sleep {
		bonus.Dormancy = physics.Hold(body)
		bonus.Awake = false
		pw.OnStep(bonus.Dormancy)
	}

	e := w.CreateEntity()
	if err := addBodyComponents(w, e, body, shape, physics.CategoryBonus, filter, policy.Sensor(physics.CategoryBonus)); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.BonusComponent.Kind(), bonus); err != nil {
		return 0, err
	}
	if spec.Color.Color != nil {
		if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Fill: spec.Color.Color}); err != nil {
			return 0, err
		}
	}
	return e, nil
}
