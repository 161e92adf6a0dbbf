// Command simulate runs a scenario without a window and logs the rig's
// telemetry as it goes.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/carrig/logging"
	"github.com/milk9111/carrig/sim"
	"go.uber.org/zap"
)

func main() {
	scenario := flag.String("scenario", "garage", "scenario name in scenarios/")
	script := flag.String("script", "", "autopilot script, \"none\" to coast, \"\" for the scenario's own")
	steps := flag.Int("steps", 600, "number of fixed steps to run")
	every := flag.Int("every", 60, "log telemetry every n steps, 0 to only log the summary")
	debug := flag.Bool("debug", false, "debug logging")
	flag.Parse()

	logger, err := logging.New(*debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(logger, *scenario, *script, *steps, *every); err != nil {
		logger.Error("simulate", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(logger *zap.Logger, scenario, script string, steps, every int) error {
	if steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", steps)
	}
	s, err := sim.Load(sim.Options{Scenario: scenario, Script: script}, logger)
	if err != nil {
		return err
	}

	for i := 1; i <= steps; i++ {
		s.Tick()
		if s.Pilot != nil && s.Pilot.Err() != nil {
			return s.Pilot.Err()
		}
		if every > 0 && i%every == 0 {
			t := s.Telemetry()
			logger.Info("telemetry",
				zap.Int("step", t.Steps),
				zap.Float64("x", t.ChassisX),
				zap.Float64("y", t.ChassisY),
				zap.Float64("speed", t.Speed),
				zap.Float64("wheel_spin", t.WheelSpin),
				zap.Stringer("drive", t.Drive.State),
				zap.Float64("torque", t.Drive.Torque),
			)
		}
	}

	t := s.Telemetry()
	fields := []zap.Field{
		zap.String("scenario", s.Spec.Name),
		zap.Int("steps", t.Steps),
		zap.Float64("x", t.ChassisX),
		zap.Float64("y", t.ChassisY),
		zap.Float64("speed", t.Speed),
	}
	if b, ok := s.Bonus(); ok {
		fields = append(fields, zap.Bool("bonus_awake", b.Awake), zap.Int("bonus_touches", b.Touches))
	}
	for evt, n := range s.Events {
		fields = append(fields, zap.Int("events."+string(evt), n))
	}
	logger.Info("summary", fields...)
	return nil
}
