package system

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Viewbox maps a world rectangle onto the screen, y up. The rectangle's
// bottom-left corner sits at Center + Align*(Width, Height), so an Align of
// -0.5 centres the view on Center.
type Viewbox struct {
	Width  float64
	Height float64
	Align  float64
	Center cp.Vector
}

// Scale is pixels per world unit when the box is fitted to the screen.
func (v Viewbox) Scale(screenW, screenH int) float64 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return math.Min(float64(screenW)/v.Width, float64(screenH)/v.Height)
}

func (v Viewbox) min() cp.Vector {
	return cp.Vector{X: v.Center.X + v.Align*v.Width, Y: v.Center.Y + v.Align*v.Height}
}

// ToScreen converts a world point to pixel coordinates. Spare room on the
// longer screen axis is split evenly on both sides.
func (v Viewbox) ToScreen(p cp.Vector, screenW, screenH int) (float64, float64) {
	s := v.Scale(screenW, screenH)
	padX := (float64(screenW) - v.Width*s) / 2
	padY := (float64(screenH) - v.Height*s) / 2
	m := v.min()
	x := padX + (p.X-m.X)*s
	y := float64(screenH) - padY - (p.Y-m.Y)*s
	return x, y
}

// ToWorld is the inverse of ToScreen.
func (v Viewbox) ToWorld(x, y float64, screenW, screenH int) cp.Vector {
	s := v.Scale(screenW, screenH)
	padX := (float64(screenW) - v.Width*s) / 2
	padY := (float64(screenH) - v.Height*s) / 2
	m := v.min()
	return cp.Vector{
		X: m.X + (x-padX)/s,
		Y: m.Y + (float64(screenH)-padY-y)/s,
	}
}
