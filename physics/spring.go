package physics

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// SpringSpec describes a damped spring between local anchors on two bodies.
type SpringSpec struct {
	AnchorA    cp.Vector
	AnchorB    cp.Vector
	RestLength float64
	Stiffness  float64
	Damping    float64
}

// Validate rejects non-positive constants.
func (s SpringSpec) Validate() error {
	if s.Stiffness <= 0 || s.Damping <= 0 {
		return fmt.Errorf("%w: stiffness=%g damping=%g", ErrNonPositiveSpring, s.Stiffness, s.Damping)
	}
	if s.RestLength <= 0 {
		return fmt.Errorf("%w: rest length=%g", ErrNonPositiveSpring, s.RestLength)
	}
	return nil
}

// SpringForce returns the tension along the spring axis for the given length
// and relative anchor velocity (positive while extending). A positive result
// pulls the anchors together, a negative one pushes them apart.
func SpringForce(stiffness, damping, length, restLength, relVel float64) float64 {
	return stiffness*(length-restLength) + damping*relVel
}

// elasticForce plugs the elastic half of SpringForce into Chipmunk, which
// expects the force pushing the anchors apart. Damping stays with the engine.
func elasticForce(spring *cp.DampedSpring, dist float64) float64 {
	return -SpringForce(spring.Stiffness, 0, dist, spring.RestLength, 0)
}

// Spring wraps a Chipmunk damped spring.
type Spring struct {
	a, b       *cp.Body
	Constraint *cp.Constraint
}

// NewSpring validates spec and adds the spring to w.
func NewSpring(w *World, a, b *cp.Body, spec SpringSpec) (*Spring, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	c := cp.NewDampedSpring(a, b, spec.AnchorA, spec.AnchorB, spec.RestLength, spec.Stiffness, spec.Damping)
	c.Class.(*cp.DampedSpring).SpringForceFunc = elasticForce
	return &Spring{a: a, b: b, Constraint: w.AddConstraint(c)}, nil
}

func (s *Spring) damped() *cp.DampedSpring {
	return s.Constraint.Class.(*cp.DampedSpring)
}

// RestLength returns the length at which the spring exerts no elastic force.
func (s *Spring) RestLength() float64 { return s.damped().RestLength }

// Stiffness returns the spring constant.
func (s *Spring) Stiffness() float64 { return s.damped().Stiffness }

// Damping returns the damping coefficient.
func (s *Spring) Damping() float64 { return s.damped().Damping }

func (s *Spring) anchors() (cp.Vector, cp.Vector) {
	d := s.damped()
	return s.a.LocalToWorld(d.AnchorA), s.b.LocalToWorld(d.AnchorB)
}

// Length is the current distance between the two anchors.
func (s *Spring) Length() float64 {
	pa, pb := s.anchors()
	return pa.Distance(pb)
}

// RelativeVelocity is the rate at which the anchors separate.
func (s *Spring) RelativeVelocity() float64 {
	pa, pb := s.anchors()
	delta := pb.Sub(pa)
	if delta.Length() == 0 {
		return 0
	}
	rel := s.b.VelocityAtWorldPoint(pb).Sub(s.a.VelocityAtWorldPoint(pa))
	return rel.Dot(delta.Normalize())
}

// Force is the current tension, see SpringForce.
func (s *Spring) Force() float64 {
	d := s.damped()
	return SpringForce(d.Stiffness, d.Damping, s.Length(), d.RestLength, s.RelativeVelocity())
}
