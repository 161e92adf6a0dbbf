package sim

import (
	"fmt"

	"github.com/milk9111/carrig/autopilot"
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
	"github.com/milk9111/carrig/ecs/entity"
	"github.com/milk9111/carrig/ecs/system"
	"github.com/milk9111/carrig/scenarios"
	"github.com/milk9111/carrig/vehicle"
	"go.uber.org/zap"
)

// NoScript disables the autopilot even when the scenario names one.
const NoScript = "none"

type Options struct {
	Scenario string
	// Script overrides the scenario's autopilot script. Empty keeps it.
	Script string
	// Keys is merged in front of the autopilot, e.g. the keyboard.
	Keys system.KeySource
}

func (o Options) script(spec scenarios.Scenario) string {
	switch o.Script {
	case "":
		return spec.Autopilot.Script
	case NoScript:
		return ""
	}
	return o.Script
}

// Session is one loaded scenario: its world, scene and frame pipeline.
type Session struct {
	Spec      scenarios.Scenario
	World     *ecs.World
	Scene     *entity.Scene
	Scheduler *ecs.Scheduler
	Pilot     *autopilot.Source

	// Events counts every event seen since the session started.
	Events map[ecs.EventType]int

	logger *zap.Logger
}

// Load builds a session for opts.Scenario.
func Load(opts Options, logger *zap.Logger) (*Session, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	spec, err := scenarios.LoadScenario(opts.Scenario)
	if err != nil {
		return nil, err
	}

	w := ecs.NewWorld()
	scene, err := entity.BuildScene(w, spec, logger.Named("scene"))
	if err != nil {
		return nil, err
	}

	s := &Session{
		Spec:   spec,
		World:  w,
		Scene:  scene,
		Events: make(map[ecs.EventType]int),
		logger: logger,
	}

	sources := system.Merge{opts.Keys}
	if name := opts.script(spec); name != "" {
		pilot, err := autopilot.Load(name, logger.Named("autopilot"))
		if err != nil {
			return nil, fmt.Errorf("sim: %s: %w", spec.Name, err)
		}
		s.Pilot = autopilot.NewSource(pilot, autopilot.FromWorld(w), logger.Named("autopilot"))
		sources = append(sources, s.Pilot)
	}

	s.Scheduler = system.NewPipeline(sources, logger)
	s.Scheduler.Add(ecs.SystemFunc(s.recordEvents))
	return s, nil
}

func (s *Session) recordEvents(w *ecs.World) {
	for _, evt := range w.Events().Peek() {
		s.Events[evt.Type]++
		s.logger.Debug("event", zap.String("type", string(evt.Type)), zap.Stringer("entity", evt.Entity))
	}
}

// Tick runs one frame.
func (s *Session) Tick() {
	s.Scheduler.Update(s.World)
}

// Pause releases the throttle. Key releases are not read while the game is
// paused, so without this a key lifted during the pause would keep driving.
// The autopilot presses its key again on the next tick.
func (s *Session) Pause() {
	if c := s.Scene.Controller; c != nil {
		c.KeyUp(vehicle.KeyNone)
	}
	if s.Pilot != nil {
		s.Pilot.Forget()
	}
	s.logger.Debug("paused", zap.Int("steps", s.Telemetry().Steps))
}

// Telemetry returns the driver's latest telemetry.
func (s *Session) Telemetry() component.Telemetry {
	t, ok := ecs.Get(s.World, s.Scene.Driver, component.TelemetryComponent.Kind())
	if !ok {
		return component.Telemetry{}
	}
	return *t
}

// Bonus returns the bonus component, if the scene has one.
func (s *Session) Bonus() (component.Bonus, bool) {
	b, ok := ecs.Get(s.World, s.Scene.Bonus, component.BonusComponent.Kind())
	if !ok {
		return component.Bonus{}, false
	}
	return *b, true
}
