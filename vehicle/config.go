package vehicle

import (
	"errors"
	"fmt"
	"math"

	"github.com/jakecoffman/cp"
	"go.uber.org/multierr"
)

var (
	ErrAsymmetricWheels = errors.New("vehicle: wheel offsets must mirror the chassis centre")
	ErrInvalidGeometry  = errors.New("vehicle: invalid geometry")
	ErrInvalidDrive     = errors.New("vehicle: invalid drive settings")
)

const symmetryEpsilon = 1e-9

type ChassisConfig struct {
	Position cp.Vector `yaml:"position"`
	Width    float64   `yaml:"width"`
	Height   float64   `yaml:"height"`
	Mass     float64   `yaml:"mass"`
}

type WheelConfig struct {
	Radius float64 `yaml:"radius"`
	Mass   float64 `yaml:"mass"`
}

// SuspensionConfig is shared by both wheels. AnchorY is the slider anchor
// height on the chassis, which is also the wheels' ride height. Upper is the
// rebound limit and Lower the compression limit; the default rig allows twice
// as much travel downward as upward.
type SuspensionConfig struct {
	AnchorY      float64 `yaml:"anchor_y"`
	Upper        float64 `yaml:"upper"`
	Lower        float64 `yaml:"lower"`
	Stiffness    float64 `yaml:"stiffness"`
	Damping      float64 `yaml:"damping"`
	RestLength   float64 `yaml:"rest_length"`
	LockRotation bool    `yaml:"lock_rotation"`
}

// Config is the per-scenario rig record.
type Config struct {
	Chassis      ChassisConfig    `yaml:"chassis"`
	Wheel        WheelConfig      `yaml:"wheel"`
	WheelOffsets []float64        `yaml:"wheel_offsets"`
	Suspension   SuspensionConfig `yaml:"suspension"`
}

func DefaultConfig() Config {
	return Config{
		Chassis:      ChassisConfig{Position: cp.Vector{X: -18, Y: 1}, Width: 1, Height: 0.7, Mass: 1},
		Wheel:        WheelConfig{Radius: 0.3, Mass: 1},
		WheelOffsets: []float64{-0.5, 0.5},
		Suspension: SuspensionConfig{
			AnchorY:    -0.3,
			Upper:      0.2,
			Lower:      -0.4,
			Stiffness:  100,
			Damping:    5,
			RestLength: 0.5,
		},
	}
}

// Validate collects every problem with c into one error.
func (c Config) Validate() error {
	var err error
	if c.Chassis.Width <= 0 || c.Chassis.Height <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: chassis %gx%g", ErrInvalidGeometry, c.Chassis.Width, c.Chassis.Height))
	}
	if c.Chassis.Mass <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: chassis mass %g", ErrInvalidGeometry, c.Chassis.Mass))
	}
	if c.Wheel.Radius <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: wheel radius %g", ErrInvalidGeometry, c.Wheel.Radius))
	}
	if c.Wheel.Mass <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: wheel mass %g", ErrInvalidGeometry, c.Wheel.Mass))
	}
	err = multierr.Append(err, c.validateOffsets())

	s := c.Suspension
	if !(s.Lower < 0 && s.Upper >= 0) {
		err = multierr.Append(err, fmt.Errorf("%w: travel [%g, %g] must contain the ride height", ErrInvalidGeometry, s.Lower, s.Upper))
	}
	err = multierr.Append(err, c.sliderSpec(0).Validate())
	err = multierr.Append(err, c.springSpec(0).Validate())
	return err
}

func (c Config) validateOffsets() error {
	if len(c.WheelOffsets) != 2 {
		return fmt.Errorf("%w: want 2 offsets, got %d", ErrAsymmetricWheels, len(c.WheelOffsets))
	}
	left, right := c.WheelOffsets[0], c.WheelOffsets[1]
	if left >= 0 || right <= 0 {
		return fmt.Errorf("%w: offsets %g, %g must be left then right of centre", ErrAsymmetricWheels, left, right)
	}
	if math.Abs(left+right) > symmetryEpsilon {
		return fmt.Errorf("%w: offsets %g, %g", ErrAsymmetricWheels, left, right)
	}
	return nil
}

// DriveConfig sets the torque magnitudes and the power ceiling.
type DriveConfig struct {
	Torque  float64 `yaml:"torque"`
	Boost   float64 `yaml:"boost"`
	Ceiling float64 `yaml:"ceiling"`
}

func DefaultDriveConfig() DriveConfig {
	return DriveConfig{Torque: 6, Boost: 400, Ceiling: 500}
}

func (c DriveConfig) Validate() error {
	var err error
	if c.Torque <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: torque %g", ErrInvalidDrive, c.Torque))
	}
	if c.Boost < 0 {
		err = multierr.Append(err, fmt.Errorf("%w: boost %g", ErrInvalidDrive, c.Boost))
	}
	if c.Ceiling <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: ceiling %g", ErrInvalidDrive, c.Ceiling))
	}
	return err
}

// Bindings maps keys to signed torque. Positive torque spins the wheels
// counter-clockwise, which rolls the rig left.
func (c DriveConfig) Bindings() map[Key]float64 {
	b := map[Key]float64{
		KeyLeft:  c.Torque,
		KeyRight: -c.Torque,
	}
	if c.Boost > 0 {
		b[KeyUp] = -c.Boost
	}
	return b
}
