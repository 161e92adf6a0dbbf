package entity

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
	"github.com/milk9111/carrig/physics"
	"github.com/milk9111/carrig/scenarios"
	"github.com/milk9111/carrig/vehicle"
	"github.com/stretchr/testify/require"
)

func buildGarage(t *testing.T) (*ecs.World, *Scene) {
	t.Helper()
	spec, err := scenarios.LoadScenario("garage")
	require.NoError(t, err)

	w := ecs.NewWorld()
	scene, err := BuildScene(w, spec, nil)
	require.NoError(t, err)
	return w, scene
}

func TestBuildSceneGarage(t *testing.T) {
	w, scene := buildGarage(t)

	// Five props, chassis, two wheels, the driver and the bonus.
	require.Equal(t, 10, w.Len())
	require.Same(t, scene.Physics, w.PhysicsWorld())
	require.Len(t, scene.Props, 5)
	require.Contains(t, scene.Props, "ramp")

	for _, name := range []string{"floor", "ramp", "bump"} {
		body, ok := ecs.Get(w, scene.Props[name], component.PhysicsBodyComponent.Kind())
		require.True(t, ok, name)
		require.True(t, body.Static, name)
		layer, _ := ecs.Get(w, scene.Props[name], component.CollisionLayerComponent.Kind())
		require.Equal(t, physics.CategoryGround, layer.Category, name)
	}

	tag, ok := ecs.Get(w, scene.Props["bump"], component.PropTagComponent.Kind())
	require.True(t, ok)
	require.Equal(t, scenarios.KindCircle, tag.Kind)

	require.True(t, ecs.Has(w, scene.Chassis, component.ChassisTagComponent.Kind()))
	for i, e := range scene.Wheels {
		wheel, ok := ecs.Get(w, e, component.WheelTagComponent.Kind())
		require.True(t, ok)
		require.Equal(t, scene.Rig.Wheels[i].Side, wheel.Side)
	}

	drive, ok := ecs.Get(w, scene.Driver, component.DriveComponent.Kind())
	require.True(t, ok)
	require.Same(t, scene.Controller, drive.Controller)
	require.True(t, ecs.Has(w, scene.Driver, component.InputComponent.Kind()))
	require.True(t, ecs.Has(w, scene.Driver, component.TelemetryComponent.Kind()))
}

func TestBuildSceneHoldsBonus(t *testing.T) {
	w, scene := buildGarage(t)

	bonus, ok := ecs.Get(w, scene.Bonus, component.BonusComponent.Kind())
	require.True(t, ok)
	require.True(t, bonus.Dormancy.Asleep())
	require.False(t, bonus.Awake)

	layer, _ := ecs.Get(w, scene.Bonus, component.CollisionLayerComponent.Kind())
	require.Equal(t, physics.CategoryBonus, layer.Category)
	require.False(t, layer.Sensor)

	fill, ok := ecs.Get(w, scene.Bonus, component.AppearanceComponent.Kind())
	require.True(t, ok)
	require.NotNil(t, fill.Fill)

	body, _ := ecs.Get(w, scene.Bonus, component.PhysicsBodyComponent.Kind())
	for i := 0; i < 60; i++ {
		scene.Physics.Step(1.0 / 60.0)
	}
	require.Equal(t, cp.Vector{X: -10, Y: 2}, body.Body.Position())
	require.True(t, bonus.Dormancy.Asleep())
}

func TestBuildSceneSensorBonus(t *testing.T) {
	spec, err := scenarios.LoadScenario("sensor_bonus")
	require.NoError(t, err)

	w := ecs.NewWorld()
	scene, err := BuildScene(w, spec, nil)
	require.NoError(t, err)
	require.True(t, scene.Policy.BonusSensor())

	layer, ok := ecs.Get(w, scene.Bonus, component.CollisionLayerComponent.Kind())
	require.True(t, ok)
	require.True(t, layer.Sensor)

	body, _ := ecs.Get(w, scene.Bonus, component.PhysicsBodyComponent.Kind())
	require.True(t, body.Shape.Sensor())

	rock, ok := ecs.Get(w, scene.Props["rock"], component.PhysicsBodyComponent.Kind())
	require.True(t, ok)
	require.False(t, rock.Static)
}

func TestBuildSceneWithoutBonus(t *testing.T) {
	spec := scenarios.Default()
	spec.Bonus.Enabled = false

	w := ecs.NewWorld()
	scene, err := BuildScene(w, spec, nil)
	require.NoError(t, err)
	require.False(t, scene.Bonus.Valid())
	_, ok := ecs.First(w, component.BonusComponent.Kind())
	require.False(t, ok)
	require.Equal(t, 4, w.Len())
}

func TestBuildSceneRejectsInvalidSpec(t *testing.T) {
	spec := scenarios.Default()
	spec.Vehicle.WheelOffsets = []float64{-0.5, 0.7}

	w := ecs.NewWorld()
	_, err := BuildScene(w, spec, nil)
	require.ErrorIs(t, err, vehicle.ErrAsymmetricWheels)
	require.Zero(t, w.Len())
	require.Nil(t, w.PhysicsWorld())
}

func TestSceneDrivesRight(t *testing.T) {
	_, scene := buildGarage(t)

	// Let the rig settle on the floor first.
	for i := 0; i < 30; i++ {
		scene.Physics.Step(1.0 / 60.0)
	}
	start := scene.Rig.Chassis.Position().X

	require.True(t, scene.Controller.KeyDown(vehicle.KeyRight))
	for i := 0; i < 180; i++ {
		scene.Physics.Step(1.0 / 60.0)
	}
	require.Greater(t, scene.Rig.Chassis.Position().X, start+0.5)
}
