package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
)

func TestSliderSpecValidate(t *testing.T) {
	tests := []struct {
		name string
		spec SliderSpec
		ok   bool
	}{
		{"suspension", SliderSpec{Axis: cp.Vector{Y: 1}, Lower: -0.4, Upper: 0.2}, true},
		{"zero axis", SliderSpec{Lower: -0.4, Upper: 0.2}, false},
		{"inverted", SliderSpec{Axis: cp.Vector{Y: 1}, Lower: 0.2, Upper: -0.4}, false},
		{"empty range", SliderSpec{Axis: cp.Vector{Y: 1}, Lower: 0.1, Upper: 0.1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.Validate()
			if tt.ok {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidTravel)
		})
	}
}

func TestSliderClampsTravel(t *testing.T) {
	tests := []struct {
		name    string
		gravity cp.Vector
		want    float64
	}{
		{"lower limit", cp.Vector{Y: -10}, -0.4},
		{"upper limit", cp.Vector{Y: 10}, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Gravity = tt.gravity
			cfg.Sleep.Enabled = false
			w := NewWorld(cfg, nil)

			anchor := w.Space().StaticBody
			bob := w.AddBody(cp.NewBody(1, cp.MomentForCircle(1, 0, 0.3, cp.Vector{})))

			s, err := NewSlider(w, anchor, bob, SliderSpec{Axis: cp.Vector{Y: 1}, Lower: -0.4, Upper: 0.2})
			require.NoError(t, err)
			require.Nil(t, s.Gear)

			for i := 0; i < 120; i++ {
				w.Step(1.0 / 60)
			}

			require.InDelta(t, tt.want, s.Displacement(), 0.02)
			require.Less(t, s.Deviation(), 0.01)
		})
	}
}

func TestSliderLockRotationAddsGear(t *testing.T) {
	w := NewWorld(DefaultConfig(), nil)
	a := w.AddBody(cp.NewBody(1, 1))
	b := w.AddBody(cp.NewBody(1, 1))

	s, err := NewSlider(w, a, b, SliderSpec{Axis: cp.Vector{Y: 1}, Lower: -1, Upper: 1, LockRotation: true})
	require.NoError(t, err)
	require.NotNil(t, s.Groove)
	require.NotNil(t, s.Gear)
}

func TestSpringForce(t *testing.T) {
	tests := []struct {
		name                 string
		length, relVel, want float64
	}{
		{"at rest", 0.5, 0, 0},
		{"stretched", 0.6, 0, 10},
		{"compressed", 0.3, 0, -20},
		{"extending", 0.5, 2, 10},
		{"closing while stretched", 0.6, -1, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, SpringForce(100, 5, tt.length, 0.5, tt.relVel), 1e-9)
		})
	}
}

func TestSpringSpecValidate(t *testing.T) {
	good := SpringSpec{RestLength: 0.5, Stiffness: 100, Damping: 5}
	require.NoError(t, good.Validate())

	for _, bad := range []SpringSpec{
		{RestLength: 0.5, Stiffness: 0, Damping: 5},
		{RestLength: 0.5, Stiffness: 100, Damping: -1},
		{RestLength: 0, Stiffness: 100, Damping: 5},
	} {
		require.ErrorIs(t, bad.Validate(), ErrNonPositiveSpring)
	}
}

func TestSpringPushesCompressedBodiesApart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Gravity = cp.Vector{}
	cfg.Sleep.Enabled = false
	w := NewWorld(cfg, nil)

	a := w.AddBody(cp.NewBody(1, cp.INFINITY))
	b := w.AddBody(cp.NewBody(1, cp.INFINITY))
	b.SetPosition(cp.Vector{Y: -0.3})

	s, err := NewSpring(w, a, b, SpringSpec{RestLength: 0.5, Stiffness: 100, Damping: 5})
	require.NoError(t, err)
	require.InDelta(t, 0.3, s.Length(), 1e-9)
	require.InDelta(t, -20, s.Force(), 1e-9)

	w.Step(1.0 / 60)
	require.Greater(t, s.RelativeVelocity(), 0.0)

	// positions integrate with the previous velocity, so the gap opens a step later
	w.Step(1.0 / 60)
	require.Greater(t, s.Length(), 0.3)
	require.Greater(t, s.RelativeVelocity(), 0.0)
}
