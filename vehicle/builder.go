package vehicle

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/carrig/physics"
	"go.uber.org/zap"
)

// Side identifies a wheel.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// Wheel holds the handles created for one wheel.
type Wheel struct {
	Side   Side
	Offset float64
	Body   *cp.Body
	Shape  *cp.Shape
	Slider *physics.Slider
	Spring *physics.Spring
}

// Rig holds non-owning handles to everything Build added to the world.
type Rig struct {
	Config       Config
	Chassis      *cp.Body
	ChassisShape *cp.Shape
	Wheels       [2]*Wheel
}

// WheelBodies returns the driven bodies, left first.
func (r *Rig) WheelBodies() []*cp.Body {
	return []*cp.Body{r.Wheels[SideLeft].Body, r.Wheels[SideRight].Body}
}

// Builder assembles rigs under one collision policy.
type Builder struct {
	policy *physics.Policy
	logger *zap.Logger
}

func NewBuilder(policy *physics.Policy, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{policy: policy, logger: logger}
}

// Build validates cfg and adds a chassis, two wheels, two sliders and two
// springs to w. Nothing is added when validation fails.
func (b *Builder) Build(w *physics.World, cfg Config) (*Rig, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("vehicle: build rig: %w", err)
	}

	pos := cfg.Chassis.Position
	chassis := cp.NewBody(cfg.Chassis.Mass, cp.MomentForBox(cfg.Chassis.Mass, cfg.Chassis.Width, cfg.Chassis.Height))
	chassis.SetPosition(pos)
	chassisShape := cp.NewBox(chassis, cfg.Chassis.Width, cfg.Chassis.Height, 0)
	b.policy.Apply(chassisShape, physics.CategoryChassis)
	w.AddBody(chassis, chassisShape)

	rig := &Rig{Config: cfg, Chassis: chassis, ChassisShape: chassisShape}
	for i, offset := range cfg.WheelOffsets {
		wheel, err := b.buildWheel(w, chassis, cfg, Side(i), offset)
		if err != nil {
			return nil, fmt.Errorf("vehicle: build %s wheel: %w", Side(i), err)
		}
		rig.Wheels[i] = wheel
	}

	b.logger.Info("rig built",
		zap.Float64("x", pos.X),
		zap.Float64("y", pos.Y),
		zap.Float64("chassis_mass", chassis.Mass()),
		zap.Float64("wheel_mass", rig.Wheels[SideLeft].Body.Mass()),
	)
	return rig, nil
}

func (b *Builder) buildWheel(w *physics.World, chassis *cp.Body, cfg Config, side Side, offset float64) (*Wheel, error) {
	pos := cfg.Chassis.Position
	r := cfg.Wheel.Radius
	body := cp.NewBody(cfg.Wheel.Mass, cp.MomentForCircle(cfg.Wheel.Mass, 0, r, cp.Vector{}))
	body.SetPosition(cp.Vector{X: pos.X + offset, Y: pos.Y + cfg.Suspension.AnchorY})
	shape := cp.NewCircle(body, r, cp.Vector{})
	b.policy.Apply(shape, physics.CategoryWheel)
	w.AddBody(body, shape)

	slider, err := physics.NewSlider(w, chassis, body, cfg.sliderSpec(offset))
	if err != nil {
		return nil, err
	}
	spring, err := physics.NewSpring(w, chassis, body, cfg.springSpec(offset))
	if err != nil {
		return nil, err
	}
	return &Wheel{Side: side, Offset: offset, Body: body, Shape: shape, Slider: slider, Spring: spring}, nil
}

// sliderSpec anchors the slider below the chassis at the wheel offset with a
// vertical, chassis-local axis.
func (c Config) sliderSpec(offset float64) physics.SliderSpec {
	s := c.Suspension
	return physics.SliderSpec{
		Anchor:       cp.Vector{X: offset, Y: s.AnchorY},
		AnchorB:      cp.Vector{},
		Axis:         cp.Vector{X: 0, Y: 1},
		Lower:        s.Lower,
		Upper:        s.Upper,
		LockRotation: s.LockRotation,
	}
}

// springSpec anchors the spring at chassis origin height.
func (c Config) springSpec(offset float64) physics.SpringSpec {
	s := c.Suspension
	return physics.SpringSpec{
		AnchorA:    cp.Vector{X: offset, Y: 0},
		AnchorB:    cp.Vector{},
		RestLength: s.RestLength,
		Stiffness:  s.Stiffness,
		Damping:    s.Damping,
	}
}
