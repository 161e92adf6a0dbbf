package physics

import (
	"fmt"
	"math/bits"

	"github.com/jakecoffman/cp"
	"go.uber.org/multierr"
)

// Category names the role a shape plays in collision filtering.
type Category int

const (
	CategoryWheel Category = iota
	CategoryChassis
	CategoryGround
	CategoryBonus
	CategoryOther
	categoryCount
)

var categoryNames = [categoryCount]string{"wheel", "chassis", "ground", "bonus", "other"}

func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return fmt.Sprintf("category(%d)", int(c))
	}
	return categoryNames[c]
}

// Categories lists every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// ParseCategory maps a scenario name back to its category.
func ParseCategory(name string) (Category, error) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Group is a collision bitset. A shape's own group must be a single bit; masks
// may combine several.
type Group uint32

// SingleBit reports whether g has exactly one bit set.
func (g Group) SingleBit() bool {
	return bits.OnesCount32(uint32(g)) == 1
}

// Filter is the group/mask pair carried by every shape.
type Filter struct {
	Group Group
	Mask  Group
}

// Collides reports whether two filters accept each other. The test is
// symmetric: each mask must include the other's group.
func (f Filter) Collides(other Filter) bool {
	return f.Mask&other.Group != 0 && other.Mask&f.Group != 0
}

// ShapeFilter converts to the engine representation. Chipmunk's own group
// field is left at zero so only categories and masks decide.
func (f Filter) ShapeFilter() cp.ShapeFilter {
	return cp.NewShapeFilter(0, uint(f.Group), uint(f.Mask))
}

// Groups assigns a group bit to each category.
type Groups struct {
	Wheel   Group `yaml:"wheel"`
	Chassis Group `yaml:"chassis"`
	Ground  Group `yaml:"ground"`
	Bonus   Group `yaml:"bonus"`
	Other   Group `yaml:"other"`
}

// DefaultGroups uses one bit per category. Bonus takes the next free bit
// after Other instead of sharing bits with wheels and ground.
func DefaultGroups() Groups {
	return Groups{Wheel: 1, Chassis: 2, Ground: 4, Other: 8, Bonus: 16}
}

// Of returns the group bit for c.
func (g Groups) Of(c Category) Group {
	switch c {
	case CategoryWheel:
		return g.Wheel
	case CategoryChassis:
		return g.Chassis
	case CategoryGround:
		return g.Ground
	case CategoryBonus:
		return g.Bonus
	case CategoryOther:
		return g.Other
	}
	return 0
}

// Validate rejects zero, multi-bit and shared group values.
func (g Groups) Validate() error {
	var err error
	seen := make(map[Group]Category, categoryCount)
	for _, c := range Categories() {
		bit := g.Of(c)
		if !bit.SingleBit() {
			err = multierr.Append(err, fmt.Errorf("%w: %s=%d", ErrGroupNotSingleBit, c, bit))
			continue
		}
		if prev, ok := seen[bit]; ok {
			err = multierr.Append(err, fmt.Errorf("%w: %s and %s both use %d", ErrDuplicateGroup, prev, c, bit))
			continue
		}
		seen[bit] = c
	}
	return err
}

// Policy decides which categories may touch. Wheels and chassis never collide
// with each other, ground accepts every dynamic category, and the bonus can be
// switched between a solid body and a sensor.
type Policy struct {
	groups      Groups
	bonusSensor bool
}

// NewPolicy validates the group table.
func NewPolicy(groups Groups, bonusSensor bool) (*Policy, error) {
	if err := groups.Validate(); err != nil {
		return nil, fmt.Errorf("physics: collision groups: %w", err)
	}
	return &Policy{groups: groups, bonusSensor: bonusSensor}, nil
}

// Groups returns the validated group table.
func (p *Policy) Groups() Groups {
	return p.groups
}

// BonusSensor reports whether bonus shapes are sensors.
func (p *Policy) BonusSensor() bool {
	return p.bonusSensor
}

// Filter returns the group/mask pair for c.
func (p *Policy) Filter(c Category) Filter {
	g := p.groups
	var mask Group
	switch c {
	case CategoryWheel, CategoryChassis:
		mask = g.Ground | g.Bonus | g.Other
	case CategoryGround:
		mask = g.Wheel | g.Chassis | g.Bonus | g.Other
	case CategoryBonus:
		mask = g.Wheel | g.Chassis | g.Ground | g.Other
	case CategoryOther:
		mask = g.Wheel | g.Chassis | g.Ground | g.Bonus | g.Other
	}
	return Filter{Group: g.Of(c), Mask: mask}
}

// Sensor reports whether shapes of category c only detect overlap.
func (p *Policy) Sensor(c Category) bool {
	return c == CategoryBonus && p.bonusSensor
}

// CollisionTypeOf groups categories for contact callbacks.
func CollisionTypeOf(c Category) cp.CollisionType {
	switch c {
	case CategoryWheel, CategoryChassis:
		return CollisionTypeRig
	case CategoryBonus:
		return CollisionTypeBonus
	}
	return CollisionTypeScenery
}

// Apply sets the engine filter, sensor flag and collision type on shape.
func (p *Policy) Apply(shape *cp.Shape, c Category) Filter {
	f := p.Filter(c)
	shape.SetFilter(f.ShapeFilter())
	shape.SetSensor(p.Sensor(c))
	shape.SetCollisionType(CollisionTypeOf(c))
	return f
}
