package entity

import (
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
	"github.com/milk9111/carrig/physics"
)

// addRig creates the chassis, wheel and driver entities for scene.Rig.
func addRig(w *ecs.World, scene *Scene, policy *physics.Policy) error {
	rig := scene.Rig

	scene.Chassis = w.CreateEntity()
	if err := addBodyComponents(w, scene.Chassis, rig.Chassis, rig.ChassisShape,
		physics.CategoryChassis, policy.Filter(physics.CategoryChassis), false); err != nil {
		return err
	}
	if err := ecs.Add(w, scene.Chassis, component.ChassisTagComponent.Kind(), &component.ChassisTag{}); err != nil {
		return err
	}

	for i, wheel := range rig.Wheels {
		e := w.CreateEntity()
		if err := addBodyComponents(w, e, wheel.Body, wheel.Shape,
			physics.CategoryWheel, policy.Filter(physics.CategoryWheel), false); err != nil {
			return err
		}
		if err := ecs.Add(w, e, component.WheelTagComponent.Kind(), &component.WheelTag{Side: wheel.Side}); err != nil {
			return err
		}
		scene.Wheels[i] = e
	}

	scene.Driver = w.CreateEntity()
	if err := ecs.Add(w, scene.Driver, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return err
	}
	if err := ecs.Add(w, scene.Driver, component.DriveComponent.Kind(), &component.Drive{
		Rig:        rig,
		Controller: scene.Controller,
	}); err != nil {
		return err
	}
	return ecs.Add(w, scene.Driver, component.TelemetryComponent.Kind(), &component.Telemetry{})
}
