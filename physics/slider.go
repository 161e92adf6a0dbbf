package physics

import (
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
)

// SliderSpec describes a prismatic joint between body A and body B. Anchor and
// Axis are in A's local space, AnchorB in B's. Travel along the axis is limited
// to [Lower, Upper] measured from Anchor.
type SliderSpec struct {
	Anchor       cp.Vector
	AnchorB      cp.Vector
	Axis         cp.Vector
	Lower        float64
	Upper        float64
	LockRotation bool
}

// Validate checks the axis and travel range.
func (s SliderSpec) Validate() error {
	if s.Axis.Length() == 0 {
		return fmt.Errorf("%w: zero axis", ErrInvalidTravel)
	}
	if !(s.Lower < s.Upper) {
		return fmt.Errorf("%w: lower %.3f must be below upper %.3f", ErrInvalidTravel, s.Lower, s.Upper)
	}
	return nil
}

// Slider keeps the constraints that make up one prismatic joint. Gear is nil
// while rotation is unlocked.
type Slider struct {
	spec   SliderSpec
	axis   cp.Vector
	a, b   *cp.Body
	Groove *cp.Constraint
	Gear   *cp.Constraint
}

// NewSlider builds the groove (and optional gear) constraints and adds them to
// w. The groove runs from Anchor+Axis*Lower to Anchor+Axis*Upper, which both
// pins B to the axis and clamps its travel.
func NewSlider(w *World, a, b *cp.Body, spec SliderSpec) (*Slider, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	axis := spec.Axis.Normalize()
	grooveA := spec.Anchor.Add(axis.Mult(spec.Lower))
	grooveB := spec.Anchor.Add(axis.Mult(spec.Upper))

	s := &Slider{spec: spec, axis: axis, a: a, b: b}
	s.Groove = w.AddConstraint(cp.NewGrooveJoint(a, b, grooveA, grooveB, spec.AnchorB))
	if spec.LockRotation {
		s.Gear = w.AddConstraint(cp.NewGearJoint(a, b, 0, 1))
	}
	return s, nil
}

// Spec returns the parameters the slider was built from.
func (s *Slider) Spec() SliderSpec {
	return s.spec
}

// offset returns B's anchor relative to Anchor, in A's local space.
func (s *Slider) offset() cp.Vector {
	world := s.b.LocalToWorld(s.spec.AnchorB)
	return s.a.WorldToLocal(world).Sub(s.spec.Anchor)
}

// Displacement is how far B's anchor sits along the axis from Anchor.
func (s *Slider) Displacement() float64 {
	return s.offset().Dot(s.axis)
}

// Deviation is the distance of B's anchor from the axis line. The joint keeps
// it at zero within solver tolerance.
func (s *Slider) Deviation() float64 {
	return math.Abs(s.offset().Cross(s.axis))
}
