package scenarios

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/carrig/physics"
	"github.com/milk9111/carrig/vehicle"
	"go.uber.org/multierr"
	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

var ErrInvalidProp = errors.New("scenarios: invalid prop")

const (
	KindBox      = "box"
	KindCircle   = "circle"
	KindPentagon = "pentagon"
)

// Scenario is everything needed to build one scene.
type Scenario struct {
	Name      string              `yaml:"name"`
	World     physics.Config      `yaml:"world"`
	Collision CollisionSpec       `yaml:"collision"`
	Vehicle   vehicle.Config      `yaml:"vehicle"`
	Drive     vehicle.DriveConfig `yaml:"drive"`
	Props     []PropSpec          `yaml:"props"`
	Bonus     BonusSpec           `yaml:"bonus"`
	View      ViewSpec            `yaml:"view"`
	Autopilot AutopilotSpec       `yaml:"autopilot"`
}

type CollisionSpec struct {
	Groups      physics.Groups `yaml:"groups"`
	BonusSensor bool           `yaml:"bonus_sensor"`
}

// PropSpec is a piece of scenery. A zero mass makes the prop static.
// Category defaults to ground for static props and other for dynamic ones.
type PropSpec struct {
	Name     string    `yaml:"name"`
	Kind     string    `yaml:"kind"`
	Position cp.Vector `yaml:"position"`
	Angle    float64   `yaml:"angle"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	Radius   float64   `yaml:"radius"`
	Mass     float64   `yaml:"mass"`
	Category string    `yaml:"category"`
	Color    YAMLColor `yaml:"color"`
}

// Static reports whether the prop gets a static body.
func (p PropSpec) Static() bool {
	return p.Mass == 0
}

// ResolveCategory returns the prop's collision category.
func (p PropSpec) ResolveCategory() (physics.Category, error) {
	if p.Category == "" {
		if p.Static() {
			return physics.CategoryGround, nil
		}
		return physics.CategoryOther, nil
	}
	return physics.ParseCategory(p.Category)
}

func (p PropSpec) Validate() error {
	var err error
	switch p.Kind {
	case KindBox:
		if p.Width <= 0 || p.Height <= 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s: box %gx%g", ErrInvalidProp, p.Name, p.Width, p.Height))
		}
	case KindCircle, KindPentagon:
		if p.Radius <= 0 {
			err = multierr.Append(err, fmt.Errorf("%w: %s: radius %g", ErrInvalidProp, p.Name, p.Radius))
		}
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %s: unknown kind %q", ErrInvalidProp, p.Name, p.Kind))
	}
	if p.Mass < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: %s: mass %g", ErrInvalidProp, p.Name, p.Mass))
	}
	if _, cerr := p.ResolveCategory(); cerr != nil {
		err = multierr.Append(err, fmt.Errorf("%s: %w", p.Name, cerr))
	}
	return err
}

// BonusSpec places the collectible box. Sleep holds it in the air until the
// first contact.
type BonusSpec struct {
	Enabled  bool      `yaml:"enabled"`
	Position cp.Vector `yaml:"position"`
	Size     float64   `yaml:"size"`
	Mass     float64   `yaml:"mass"`
	Sleep    bool      `yaml:"sleep"`
	Color    YAMLColor `yaml:"color"`
}

// ViewSpec is the visible world rectangle. Align pins the world origin:
// -0.5 centres it, 0 puts it at the bottom-left corner.
type ViewSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Align  float64 `yaml:"align"`
}

type AutopilotSpec struct {
	Script string `yaml:"script"`
}

// Default is the built-in garage layout, used as the base every scenario
// file is decoded on top of.
func Default() Scenario {
	return Scenario{
		Name:      "default",
		World:     physics.DefaultConfig(),
		Collision: CollisionSpec{Groups: physics.DefaultGroups()},
		Vehicle:   vehicle.DefaultConfig(),
		Drive:     vehicle.DefaultDriveConfig(),
		Bonus: BonusSpec{
			Enabled:  true,
			Position: cp.Vector{X: -10, Y: 2},
			Size:     0.5,
			Mass:     1,
			Sleep:    true,
		},
		View: ViewSpec{Width: 30, Height: 30, Align: -0.5},
	}
}

// Validate collects every problem in s.
func (s Scenario) Validate() error {
	var err error
	err = multierr.Append(err, s.Collision.Groups.Validate())
	err = multierr.Append(err, s.Vehicle.Validate())
	err = multierr.Append(err, s.Drive.Validate())
	for _, p := range s.Props {
		err = multierr.Append(err, p.Validate())
	}
	if s.Bonus.Enabled && (s.Bonus.Size <= 0 || s.Bonus.Mass <= 0) {
		err = multierr.Append(err, fmt.Errorf("%w: bonus size %g mass %g", ErrInvalidProp, s.Bonus.Size, s.Bonus.Mass))
	}
	if s.View.Width <= 0 || s.View.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("scenarios: view %gx%g", s.View.Width, s.View.Height))
	}
	return err
}

// LoadScenario decodes the named file over Default and validates it.
func LoadScenario(name string) (Scenario, error) {
	data, err := Load(name)
	if err != nil {
		return Scenario{}, fmt.Errorf("scenarios: load %s: %w", name, err)
	}
	return Parse(name, data)
}

// Parse decodes data over Default and validates the result.
func Parse(name string, data []byte) (Scenario, error) {
	spec := Default()
	spec.Name = NameOf(name)
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return Scenario{}, fmt.Errorf("scenarios: unmarshal %s: %w", name, err)
	}
	if err := spec.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenarios: %s: %w", name, err)
	}
	return spec, nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

// Or returns c's colour, or fallback when none was set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	var rgba [4]uint8
	rgba[3] = 255
	for i := 0; i < len(s)/2; i++ {
		v, err := parse(i * 2)
		if err != nil {
			return fmt.Errorf("invalid color format: %s: %w", value.Value, err)
		}
		rgba[i] = v
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
