package autopilot

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/carrig/scenarios"
	"github.com/milk9111/carrig/vehicle"
	"go.uber.org/zap"
)

var ErrUnknownKey = errors.New("autopilot: unknown key")

// Inputs are the globals a script can read each step.
type Inputs struct {
	Step       int
	X          float64
	Speed      float64
	Torque     float64
	BonusAwake bool
}

// Pilot runs a tengo script once per step and turns the key it asks for into
// key transitions. Scripts set `key` to "left", "right", "up", "down" or ""
// and `release` to let go of the held key. Pressing a key implies letting go
// of the previous one, so release is ignored while key is set.
type Pilot struct {
	name     string
	compiled *tengo.Compiled
	held     vehicle.Key
	logger   *zap.Logger
}

// Compile prepares src. name is only used in errors and logs.
func Compile(name string, src []byte, logger *zap.Logger) (*Pilot, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	script := tengo.NewScript(src)
	for global, zero := range map[string]any{
		"step":        0,
		"x":           0.0,
		"speed":       0.0,
		"torque":      0.0,
		"bonus_awake": false,
		"key":         "",
		"release":     false,
	} {
		if err := script.Add(global, zero); err != nil {
			return nil, fmt.Errorf("autopilot: %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("autopilot: compile %s: %w", name, err)
	}
	return &Pilot{name: name, compiled: compiled, logger: logger}, nil
}

// Load compiles a script from the scenarios package.
func Load(name string, logger *zap.Logger) (*Pilot, error) {
	src, err := scenarios.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("autopilot: load %s: %w", name, err)
	}
	return Compile(name, src, logger)
}

func (p *Pilot) Name() string {
	return p.name
}

// Held is the key the pilot is currently pressing.
func (p *Pilot) Held() vehicle.Key {
	return p.held
}

// Forget drops the held key without reporting a release, so the script's
// next choice is pressed again.
func (p *Pilot) Forget() {
	p.held = vehicle.KeyNone
}

// Decide runs the script against in and returns the resulting transitions.
func (p *Pilot) Decide(in Inputs) (pressed, released []vehicle.Key, err error) {
	for name, value := range map[string]any{
		"step":        in.Step,
		"x":           in.X,
		"speed":       in.Speed,
		"torque":      in.Torque,
		"bonus_awake": in.BonusAwake,
		"key":         "",
		"release":     false,
	} {
		if err := p.compiled.Set(name, value); err != nil {
			return nil, nil, fmt.Errorf("autopilot: %s: set %s: %w", p.name, name, err)
		}
	}
	if err := p.compiled.Run(); err != nil {
		return nil, nil, fmt.Errorf("autopilot: run %s: %w", p.name, err)
	}

	keyName := strings.TrimSpace(p.compiled.Get("key").String())
	key, ok := vehicle.ParseKey(keyName)
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrUnknownKey, keyName)
	}

	switch {
	case key != vehicle.KeyNone:
		if key != p.held {
			pressed = append(pressed, key)
			p.logger.Debug("autopilot press", zap.Stringer("key", key), zap.Int("step", in.Step))
			p.held = key
		}
	case p.compiled.Get("release").Bool() && p.held != vehicle.KeyNone:
		released = append(released, p.held)
		p.logger.Debug("autopilot release", zap.Stringer("key", p.held), zap.Int("step", in.Step))
		p.held = vehicle.KeyNone
	}
	return pressed, released, nil
}
