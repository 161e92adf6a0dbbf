package entity

import (
	"fmt"

	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/physics"
	"github.com/milk9111/carrig/scenarios"
	"github.com/milk9111/carrig/vehicle"
	"go.uber.org/zap"
)

// Scene holds the handles created by BuildScene. The physics world owns the
// bodies; the ECS world owns the entities.
type Scene struct {
	Spec       scenarios.Scenario
	Physics    *physics.World
	Policy     *physics.Policy
	Rig        *vehicle.Rig
	Controller *vehicle.TorqueController

	Driver  ecs.Entity
	Chassis ecs.Entity
	Wheels  [2]ecs.Entity
	Bonus   ecs.Entity
	Props   map[string]ecs.Entity
}

// BuildScene creates the physics world for spec and one entity per body in w.
// The scene is attached to w as its physics world.
func BuildScene(w *ecs.World, spec scenarios.Scenario, logger *zap.Logger) (*Scene, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("entity: scene %s: %w", spec.Name, err)
	}

	policy, err := physics.NewPolicy(spec.Collision.Groups, spec.Collision.BonusSensor)
	if err != nil {
		return nil, err
	}

	pw := physics.NewWorld(spec.World, logger.Named("physics"))
	pw.OnAddBody(physics.DensityNormalizer{Density: spec.World.Density})

	scene := &Scene{
		Spec:    spec,
		Physics: pw,
		Policy:  policy,
		Props:   make(map[string]ecs.Entity, len(spec.Props)),
	}

	for i, p := range spec.Props {
		e, err := addProp(w, pw, policy, p)
		if err != nil {
			return nil, fmt.Errorf("entity: prop %d (%s): %w", i, p.Name, err)
		}
		name := p.Name
		if name == "" {
			name = fmt.Sprintf("%s_%d", p.Kind, i)
		}
		scene.Props[name] = e
	}

	rig, err := vehicle.NewBuilder(policy, logger.Named("vehicle")).Build(pw, spec.Vehicle)
	if err != nil {
		return nil, err
	}
	scene.Rig = rig
	scene.Controller = vehicle.NewTorqueController(spec.Drive, rig.WheelBodies(), logger.Named("drive"))
	pw.OnStep(scene.Controller)

	if err := addRig(w, scene, policy); err != nil {
		return nil, err
	}

	if spec.Bonus.Enabled {
		e, err := addBonus(w, pw, policy, spec.Bonus)
		if err != nil {
			return nil, fmt.Errorf("entity: bonus: %w", err)
		}
		scene.Bonus = e
	}

	w.SetPhysicsWorld(pw)
	logger.Info("scene built",
		zap.String("scenario", spec.Name),
		zap.Int("props", len(spec.Props)),
		zap.Bool("bonus", spec.Bonus.Enabled),
		zap.Bool("bonus_sensor", policy.BonusSensor()),
		zap.Int("entities", w.Len()),
	)
	return scene, nil
}
