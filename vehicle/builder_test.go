package vehicle

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/carrig/physics"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWorld(t *testing.T) (*physics.World, *Builder) {
	t.Helper()
	cfg := physics.DefaultConfig()
	cfg.Sleep.Enabled = false
	w := physics.NewWorld(cfg, zap.NewNop())
	policy, err := physics.NewPolicy(physics.DefaultGroups(), false)
	require.NoError(t, err)
	return w, NewBuilder(policy, zap.NewNop())
}

func TestBuildRig(t *testing.T) {
	w, b := newTestWorld(t)

	rig, err := b.Build(w, DefaultConfig())
	require.NoError(t, err)

	require.Equal(t, cp.Vector{X: -18, Y: 1}, rig.Chassis.Position())
	for side, wantX := range map[Side]float64{SideLeft: -18.5, SideRight: -17.5} {
		pos := rig.Wheels[side].Body.Position()
		require.InDelta(t, wantX, pos.X, 1e-9, side.String())
		require.InDelta(t, 0.7, pos.Y, 1e-9, side.String())
	}
	require.Len(t, rig.WheelBodies(), 2)

	for _, wheel := range rig.Wheels {
		require.Equal(t, 100.0, wheel.Spring.Stiffness())
		require.Equal(t, 5.0, wheel.Spring.Damping())
		require.Equal(t, 0.5, wheel.Spring.RestLength())
		require.InDelta(t, 0, wheel.Slider.Displacement(), 1e-9)
		require.Nil(t, wheel.Slider.Gear)
	}
	require.Equal(t, -0.5, rig.Wheels[SideLeft].Slider.Spec().Anchor.X)
	require.Equal(t, 0.5, rig.Wheels[SideRight].Slider.Spec().Anchor.X)
}

func TestBuildRejectsInvalidConfig(t *testing.T) {
	w, b := newTestWorld(t)
	cfg := DefaultConfig()
	cfg.WheelOffsets = []float64{-0.5, 0.3}

	rig, err := b.Build(w, cfg)
	require.Nil(t, rig)
	require.ErrorIs(t, err, ErrAsymmetricWheels)

	bodies := 0
	w.Space().EachBody(func(*cp.Body) { bodies++ })
	require.Zero(t, bodies)
}

func TestRigStaysSymmetricInFreeFall(t *testing.T) {
	w, b := newTestWorld(t)
	rig, err := b.Build(w, DefaultConfig())
	require.NoError(t, err)

	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60)
	}

	left, right := rig.Wheels[SideLeft], rig.Wheels[SideRight]
	require.InDelta(t, left.Spring.Length(), right.Spring.Length(), 1e-3)
	require.InDelta(t, left.Slider.Displacement(), right.Slider.Displacement(), 1e-3)

	s := rig.Config.Suspension
	for _, wheel := range rig.Wheels {
		d := wheel.Slider.Displacement()
		require.GreaterOrEqual(t, d, s.Lower-0.02)
		require.LessOrEqual(t, d, s.Upper+0.02)
	}
}
