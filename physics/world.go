package physics

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
	"go.uber.org/zap"
)

// SleepConfig enables body sleeping on the space. A zero IdleSpeed lets the
// engine derive the threshold from gravity.
type SleepConfig struct {
	Enabled bool `yaml:"enabled"`
	// Time is how long a body must stay idle before it sleeps.
	Time      float64 `yaml:"time"`
	IdleSpeed float64 `yaml:"idle_speed"`
}

// Config holds world-wide simulation settings.
type Config struct {
	Gravity         cp.Vector   `yaml:"gravity"`
	Iterations      int         `yaml:"iterations"`
	DefaultFriction float64     `yaml:"default_friction"`
	Density         float64     `yaml:"density"`
	Sleep           SleepConfig `yaml:"sleep"`
	Profiling       bool        `yaml:"profiling"`
}

// DefaultConfig matches the garage scenario.
func DefaultConfig() Config {
	return Config{
		Gravity:         cp.Vector{X: 0, Y: -10},
		Iterations:      10,
		DefaultFriction: 100,
		Density:         1,
		Sleep:           SleepConfig{Enabled: true, Time: 1},
	}
}

// StepObserver runs after every integration step, in registration order.
type StepObserver interface {
	PostStep(w *World, dt float64)
}

// StepFunc adapts a function to StepObserver.
type StepFunc func(w *World, dt float64)

func (f StepFunc) PostStep(w *World, dt float64) { f(w, dt) }

// BodyObserver runs once for every body added to the world, after its shapes
// are attached.
type BodyObserver interface {
	BodyAdded(w *World, body *cp.Body)
}

// BodyFunc adapts a function to BodyObserver.
type BodyFunc func(w *World, body *cp.Body)

func (f BodyFunc) BodyAdded(w *World, body *cp.Body) { f(w, body) }

// Stats counts integration steps. LastStep is only measured while profiling.
type Stats struct {
	Steps    int
	Elapsed  float64
	LastStep time.Duration
}

// World owns the Chipmunk space and the hooks that run around it.
type World struct {
	space  *cp.Space
	cfg    Config
	logger *zap.Logger

	stepObservers []StepObserver
	bodyObservers []BodyObserver

	stats Stats
}

// NewWorld creates a space configured from cfg.
func NewWorld(cfg Config, logger *zap.Logger) *World {
	if logger == nil {
		logger = zap.NewNop()
	}
	space := cp.NewSpace()
	space.SetGravity(cfg.Gravity)
	if cfg.Iterations > 0 {
		space.Iterations = uint(cfg.Iterations)
	}
	if cfg.Sleep.Enabled {
		space.SleepTimeThreshold = cfg.Sleep.Time
		if cfg.Sleep.IdleSpeed > 0 {
			space.IdleSpeedThreshold = cfg.Sleep.IdleSpeed
		}
	}
	logger.Debug("world created",
		zap.Float64("gravity_x", cfg.Gravity.X),
		zap.Float64("gravity_y", cfg.Gravity.Y),
		zap.Bool("sleeping", cfg.Sleep.Enabled),
		zap.Float64("idle_speed", cfg.Sleep.IdleSpeed),
	)
	return &World{space: space, cfg: cfg, logger: logger}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Config returns the settings the world was built with.
func (w *World) Config() Config {
	return w.cfg
}

// Stats returns the step counters.
func (w *World) Stats() Stats {
	return w.stats
}

// OnStep appends a post-step observer.
func (w *World) OnStep(o StepObserver) {
	if o == nil {
		return
	}
	w.stepObservers = append(w.stepObservers, o)
}

// OnAddBody appends a body observer. Bodies added earlier are not replayed.
func (w *World) OnAddBody(o BodyObserver) {
	if o == nil {
		return
	}
	w.bodyObservers = append(w.bodyObservers, o)
}

// AddBody adds body and its shapes, then notifies body observers. Chipmunk
// multiplies the friction of both shapes in a contact, so each shape gets the
// square root of the configured default.
func (w *World) AddBody(body *cp.Body, shapes ...*cp.Shape) *cp.Body {
	if w == nil || body == nil {
		return body
	}
	w.space.AddBody(body)
	friction := math.Sqrt(math.Max(w.cfg.DefaultFriction, 0))
	for _, shape := range shapes {
		if shape == nil {
			continue
		}
		shape.SetFriction(friction)
		w.space.AddShape(shape)
	}
	for _, o := range w.bodyObservers {
		o.BodyAdded(w, body)
	}
	return body
}

// AddConstraint registers a joint or spring.
func (w *World) AddConstraint(c *cp.Constraint) *cp.Constraint {
	if w == nil || c == nil {
		return c
	}
	return w.space.AddConstraint(c)
}

// Step integrates dt seconds and then runs the step observers.
func (w *World) Step(dt float64) {
	if w == nil || dt <= 0 {
		return
	}
	var start time.Time
	if w.cfg.Profiling {
		start = time.Now()
	}
	w.space.Step(dt)
	for _, o := range w.stepObservers {
		o.PostStep(w, dt)
	}
	w.stats.Steps++
	w.stats.Elapsed += dt
	if w.cfg.Profiling {
		w.stats.LastStep = time.Since(start)
	}
}
