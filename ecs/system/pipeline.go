package system

import (
	"github.com/milk9111/carrig/ecs"
	"go.uber.org/zap"
)

// NewPipeline returns the per-frame systems in their fixed order: input is
// turned into torque before the step, and the step's results are observed
// after it.
func NewPipeline(source KeySource, logger *zap.Logger) *ecs.Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return ecs.NewScheduler(
		NewInputSystem(source),
		NewDriveSystem(logger.Named("drive")),
		NewPhysicsSystem(FixedStep),
		NewTransformSystem(),
		NewBonusWatchSystem(logger.Named("bonus")),
		NewTelemetrySystem(),
	)
}
