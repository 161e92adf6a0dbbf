package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
	"github.com/milk9111/carrig/physics"
	"github.com/milk9111/carrig/scenarios"
)

// newPropBody creates the body and shape for p without adding them.
func newPropBody(p scenarios.PropSpec) (*cp.Body, *cp.Shape, error) {
	var body *cp.Body
	var shape *cp.Shape

	moment := func(m float64) float64 {
		switch p.Kind {
		case scenarios.KindBox:
			return cp.MomentForBox(m, p.Width, p.Height)
		case scenarios.KindCircle:
			return cp.MomentForCircle(m, 0, p.Radius, cp.Vector{})
		default:
			return physics.MomentForPentagon(m, p.Radius)
		}
	}
	if p.Static() {
		body = cp.NewStaticBody()
	} else {
		body = cp.NewBody(p.Mass, moment(p.Mass))
	}
	body.SetPosition(p.Position)
	body.SetAngle(p.Angle)

	switch p.Kind {
	case scenarios.KindBox:
		shape = cp.NewBox(body, p.Width, p.Height, 0)
	case scenarios.KindCircle:
		shape = cp.NewCircle(body, p.Radius, cp.Vector{})
	case scenarios.KindPentagon:
		shape = physics.NewPentagon(body, p.Radius)
	default:
		return nil, nil, fmt.Errorf("%w: unknown kind %q", scenarios.ErrInvalidProp, p.Kind)
	}
	return body, shape, nil
}

func addProp(w *ecs.World, pw *physics.World, policy *physics.Policy, p scenarios.PropSpec) (ecs.Entity, error) {
	category, err := p.ResolveCategory()
	if err != nil {
		return 0, err
	}
	body, shape, err := newPropBody(p)
	if err != nil {
		return 0, err
	}
	filter := policy.Apply(shape, category)
	pw.AddBody(body, shape)

	e := w.CreateEntity()
	if err := addBodyComponents(w, e, body, shape, category, filter, policy.Sensor(category)); err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PropTagComponent.Kind(), &component.PropTag{Name: p.Name, Kind: p.Kind}); err != nil {
		return 0, err
	}
	if p.Color.Color != nil {
		if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Fill: p.Color.Color}); err != nil {
			return 0, err
		}
	}
	return e, nil
}

// addBodyComponents attaches the components every physical entity carries.
func addBodyComponents(w *ecs.World, e ecs.Entity, body *cp.Body, shape *cp.Shape, category physics.Category, filter physics.Filter, sensor bool) error {
	pos := body.Position()
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y, Angle: body.Angle()}); err != nil {
		return err
	}
	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Body:   body,
		Shape:  shape,
		Static: body.GetType() == cp.BODY_STATIC,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: category,
		Filter:   filter,
		Sensor:   sensor,
	})
}
