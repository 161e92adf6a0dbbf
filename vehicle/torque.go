package vehicle

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/carrig/physics"
	"go.uber.org/zap"
)

// Key is a directional input.
type Key int

const (
	KeyNone Key = iota
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
)

var keyNames = map[Key]string{
	KeyNone:  "",
	KeyLeft:  "left",
	KeyRight: "right",
	KeyUp:    "up",
	KeyDown:  "down",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKey maps a key name to a Key. The empty string is KeyNone.
func ParseKey(name string) (Key, bool) {
	for k, n := range keyNames {
		if n == name {
			return k, true
		}
	}
	return KeyNone, false
}

type DriveState int

const (
	Idle DriveState = iota
	Driving
)

func (s DriveState) String() string {
	if s == Driving {
		return "driving"
	}
	return "idle"
}

// TorqueState is the controller's only mutable state.
type TorqueState struct {
	State  DriveState
	Torque float64
}

// ShouldApply reports whether torque may be added to a wheel spinning at
// angularVelocity. Power delivery stops once the product reaches ceiling.
func ShouldApply(angularVelocity, torque, ceiling float64) bool {
	return angularVelocity*torque < ceiling
}

// TorqueController turns key events into wheel torque. Key events only touch
// the torque state; the wheels are read and pushed in PostStep.
type TorqueController struct {
	bindings map[Key]float64
	ceiling  float64
	wheels   []*cp.Body
	state    TorqueState
	logger   *zap.Logger
}

func NewTorqueController(cfg DriveConfig, wheels []*cp.Body, logger *zap.Logger) *TorqueController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TorqueController{
		bindings: cfg.Bindings(),
		ceiling:  cfg.Ceiling,
		wheels:   wheels,
		logger:   logger,
	}
}

// KeyDown switches to Driving with the key's torque. It reports false and
// leaves the state alone for keys without a binding.
func (c *TorqueController) KeyDown(k Key) bool {
	torque, ok := c.bindings[k]
	if !ok {
		return false
	}
	c.state = TorqueState{State: Driving, Torque: torque}
	c.logger.Debug("key down", zap.Stringer("key", k), zap.Float64("torque", torque))
	return true
}

// KeyUp releases the throttle whichever key was lifted.
func (c *TorqueController) KeyUp(k Key) {
	if c.state.State == Idle {
		return
	}
	c.state = TorqueState{State: Idle}
	c.logger.Debug("key up", zap.Stringer("key", k))
}

// State returns the current torque state.
func (c *TorqueController) State() TorqueState {
	return c.state
}

// Ceiling returns the power ceiling.
func (c *TorqueController) Ceiling() float64 {
	return c.ceiling
}

// PostStep adds the current torque to each wheel that is still under the
// power ceiling. The engine clears accumulated torque when it integrates, so
// the value set here acts during the next step.
func (c *TorqueController) PostStep(_ *physics.World, _ float64) {
	t := c.state.Torque
	if t == 0 {
		return
	}
	for _, wheel := range c.wheels {
		if ShouldApply(wheel.AngularVelocity(), t, c.ceiling) {
			wheel.SetTorque(wheel.Torque() + t)
		}
	}
}
