package physics

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/require"
)

func newBox(w *World, pos cp.Vector, size float64) *cp.Body {
	body := cp.NewBody(1, cp.MomentForBox(1, size, size))
	body.SetPosition(pos)
	return w.AddBody(body, cp.NewBox(body, size, size, 0))
}

func TestDormancyHoldsUntilTouched(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Sleep.Enabled = false
	w := NewWorld(cfg, nil)

	bonus := newBox(w, cp.Vector{X: 0, Y: 2}, 0.5)
	d := Hold(bonus)
	w.OnStep(d)

	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60)
	}
	require.True(t, d.Asleep())
	require.InDelta(t, 2, bonus.Position().Y, 1e-9)

	newBox(w, cp.Vector{X: 0, Y: 3}, 0.3)
	for i := 0; i < 120 && d.Asleep(); i++ {
		w.Step(1.0 / 60)
	}
	require.False(t, d.Asleep())

	for i := 0; i < 30; i++ {
		w.Step(1.0 / 60)
	}
	require.Less(t, bonus.Position().Y, 2.0)
}

func TestDormancyWake(t *testing.T) {
	w := NewWorld(DefaultConfig(), nil)
	body := newBox(w, cp.Vector{}, 1)
	d := Hold(body)

	d.Wake()
	require.False(t, d.Asleep())
	w.Step(1.0 / 60)
	require.Less(t, body.Velocity().Y, 0.0)

	var none *Dormancy
	require.False(t, none.Asleep())
}
