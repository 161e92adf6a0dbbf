package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
	"github.com/milk9111/carrig/vehicle"
)

// KeySource yields the key transitions since the previous call. Keys the rig
// has no use for are reported as vehicle.KeyNone releases.
type KeySource interface {
	KeyEvents() (pressed, released []vehicle.Key)
}

var arrowKeys = map[ebiten.Key]vehicle.Key{
	ebiten.KeyArrowLeft:  vehicle.KeyLeft,
	ebiten.KeyArrowRight: vehicle.KeyRight,
	ebiten.KeyArrowUp:    vehicle.KeyUp,
	ebiten.KeyArrowDown:  vehicle.KeyDown,
}

// Keyboard reads the arrow keys through inpututil.
type Keyboard struct {
	keys []ebiten.Key
}

func (k *Keyboard) KeyEvents() (pressed, released []vehicle.Key) {
	k.keys = inpututil.AppendJustPressedKeys(k.keys[:0])
	for _, key := range k.keys {
		if mapped, ok := arrowKeys[key]; ok {
			pressed = append(pressed, mapped)
		}
	}
	k.keys = inpututil.AppendJustReleasedKeys(k.keys[:0])
	for _, key := range k.keys {
		released = append(released, arrowKeys[key])
	}
	return pressed, released
}

// Merge combines sources in order, e.g. the keyboard and an autopilot.
type Merge []KeySource

func (m Merge) KeyEvents() (pressed, released []vehicle.Key) {
	for _, src := range m {
		if src == nil {
			continue
		}
		p, r := src.KeyEvents()
		pressed = append(pressed, p...)
		released = append(released, r...)
	}
	return pressed, released
}

// InputSystem copies this frame's key transitions into every Input component.
type InputSystem struct {
	source KeySource
}

func NewInputSystem(source KeySource) *InputSystem {
	return &InputSystem{source: source}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil {
		return
	}
	var pressed, released []vehicle.Key
	if i.source != nil {
		pressed, released = i.source.KeyEvents()
	}
	ecs.ForEach(w, component.InputComponent.Kind(), func(e ecs.Entity, input *component.Input) {
		input.Pressed = append(input.Pressed[:0], pressed...)
		input.Released = append(input.Released[:0], released...)
	})
}
