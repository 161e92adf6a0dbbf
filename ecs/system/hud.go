package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
)

// HUDText formats the telemetry overlay.
func HUDText(scenario string, t component.Telemetry) string {
	text := fmt.Sprintf("%s  step %d\nx %.2f  y %.2f  speed %.2f\nwheel spin %.2f  %s torque %.0f",
		scenario, t.Steps, t.ChassisX, t.ChassisY, t.Speed, t.WheelSpin, t.Drive.State, t.Drive.Torque)
	if t.Ceiling > 0 {
		text += fmt.Sprintf("\npower %.0f / %.0f", t.WheelSpin*t.Drive.Torque, t.Ceiling)
	}
	if t.BonusAwake {
		text += "\nbonus awake"
	}
	if t.LastEvent != "" {
		text += "\nlast event: " + t.LastEvent
	}
	return text
}

// DrawHUD prints the driver's telemetry in the top-left corner.
func DrawHUD(w *ecs.World, screen *ebiten.Image, scenario string) {
	if w == nil || screen == nil {
		return
	}
	ent, ok := ecs.First(w, component.TelemetryComponent.Kind())
	if !ok {
		return
	}
	t, ok := ecs.Get(w, ent, component.TelemetryComponent.Kind())
	if !ok {
		return
	}
	ebitenutil.DebugPrintAt(screen, HUDText(scenario, *t), 10, 10)
}
