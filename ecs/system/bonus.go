package system

import (
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
	"go.uber.org/zap"
)

// BonusWatchSystem raises events when the bonus wakes, comes to rest or is
// touched by the rig.
type BonusWatchSystem struct {
	logger *zap.Logger
}

func NewBonusWatchSystem(logger *zap.Logger) *BonusWatchSystem {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BonusWatchSystem{logger: logger}
}

func (b *BonusWatchSystem) Update(w *ecs.World) {
	if b == nil || w == nil {
		return
	}
	ecs.ForEach2(w, component.BonusComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, bonus *component.Bonus, body *component.PhysicsBody) {
		awake := !bonus.Dormancy.Asleep() && body.Body != nil && !body.Body.IsSleeping()
		if awake != bonus.Awake {
			bonus.Awake = awake
			evt := ecs.EventBonusSlept
			if awake {
				evt = ecs.EventBonusWoke
			}
			w.Events().Push(ecs.Event{Type: evt, Entity: e})
			b.logger.Debug(string(evt), zap.Stringer("entity", e))
		}

		if total := bonus.Contacts.Total(); total > bonus.Touches {
			w.Events().Push(ecs.Event{Type: ecs.EventBonusTouched, Entity: e, Data: total})
			b.logger.Info("bonus touched", zap.Int("touches", total))
			bonus.Touches = total
		}
	})
}
