package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/carrig/ecs"
	"github.com/milk9111/carrig/ecs/component"
	"github.com/milk9111/carrig/physics"
	"golang.org/x/image/colornames"
)

const (
	debugCircleSegments = 24
	debugDotSize        = 4
)

var categoryColors = map[physics.Category]color.Color{
	physics.CategoryWheel:   colornames.Orange,
	physics.CategoryChassis: colornames.Tomato,
	physics.CategoryGround:  colornames.Gray,
	physics.CategoryBonus:   colornames.Gold,
	physics.CategoryOther:   colornames.Skyblue,
}

// DrawPhysics draws every shape in the attached physics world through view.
// Constraints are drawn as well when constraints is set.
func DrawPhysics(w *ecs.World, screen *ebiten.Image, view Viewbox, constraints bool) {
	if w == nil || screen == nil || w.PhysicsWorld() == nil {
		return
	}
	bounds := screen.Bounds()
	drawer := &physicsDebugDrawer{
		screen:  screen,
		view:    view,
		screenW: bounds.Dx(),
		screenH: bounds.Dy(),
		colors:  shapeColors(w),
		flags:   cp.DRAW_SHAPES,
	}
	if constraints {
		drawer.flags |= cp.DRAW_CONSTRAINTS
	}
	cp.DrawSpace(w.PhysicsWorld().Space(), drawer)
}

// shapeColors picks a colour per shape: the entity's Appearance if any,
// otherwise its collision category colour.
func shapeColors(w *ecs.World) map[*cp.Shape]color.Color {
	out := make(map[*cp.Shape]color.Color)
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.CollisionLayerComponent.Kind(), func(e ecs.Entity, b *component.PhysicsBody, layer *component.CollisionLayer) {
		if b.Shape == nil {
			return
		}
		c := categoryColors[layer.Category]
		if a, ok := ecs.Get(w, e, component.AppearanceComponent.Kind()); ok && a.Fill != nil {
			c = a.Fill
		}
		out[b.Shape] = c
	})
	return out
}

type physicsDebugDrawer struct {
	screen  *ebiten.Image
	view    Viewbox
	screenW int
	screenH int
	colors  map[*cp.Shape]color.Color
	flags   uint
}

func (d *physicsDebugDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	if radius <= 0 {
		return
	}
	d.drawCircle(pos, radius, fill)
	end := cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}
	d.drawLine(pos, end, fill)
}

func (d *physicsDebugDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
}

func (d *physicsDebugDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.drawLine(a, b, fill)
	if radius > 0 {
		d.drawCircle(a, radius, fill)
		d.drawCircle(b, radius, fill)
	}
}

func (d *physicsDebugDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	if count <= 0 {
		return
	}
	d.drawPolygon(verts[:count], fill)
}

func (d *physicsDebugDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	if size <= 0 {
		size = debugDotSize
	}
	x, y := d.view.ToScreen(pos, d.screenW, d.screenH)
	half := size / 2
	c := toNRGBA(fill)
	ebitenutil.DrawLine(d.screen, x-half, y, x+half, y, c)
	ebitenutil.DrawLine(d.screen, x, y-half, x, y+half, c)
}

func (d *physicsDebugDrawer) Flags() uint {
	return d.flags
}

func (d *physicsDebugDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1, B: 0.2, A: 0.9}
}

// ShapeColor dims sleeping bodies.
func (d *physicsDebugDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	c, ok := d.colors[shape]
	if !ok {
		c = colornames.Lightgreen
	}
	fc := toFColor(c)
	if body := shape.Body(); body != nil && body.IsSleeping() {
		fc.A *= 0.4
	}
	return fc
}

func (d *physicsDebugDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.5, B: 0.1, A: 0.9}
}

func (d *physicsDebugDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1, G: 0.2, B: 0.2, A: 0.9}
}

func (d *physicsDebugDrawer) Data() interface{} {
	return nil
}

func (d *physicsDebugDrawer) drawLine(a, b cp.Vector, color cp.FColor) {
	x1, y1 := d.view.ToScreen(a, d.screenW, d.screenH)
	x2, y2 := d.view.ToScreen(b, d.screenW, d.screenH)
	ebitenutil.DrawLine(d.screen, x1, y1, x2, y2, toNRGBA(color))
}

func (d *physicsDebugDrawer) drawPolygon(verts []cp.Vector, color cp.FColor) {
	for i := 0; i < len(verts); i++ {
		d.drawLine(verts[i], verts[(i+1)%len(verts)], color)
	}
}

func (d *physicsDebugDrawer) drawCircle(center cp.Vector, radius float64, color cp.FColor) {
	points := make([]cp.Vector, 0, debugCircleSegments)
	for i := 0; i < debugCircleSegments; i++ {
		t := (2 * math.Pi) * (float64(i) / float64(debugCircleSegments))
		points = append(points, cp.Vector{X: center.X + math.Cos(t)*radius, Y: center.Y + math.Sin(t)*radius})
	}
	d.drawPolygon(points, color)
}

func toNRGBA(c cp.FColor) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func toFColor(c color.Color) cp.FColor {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return cp.FColor{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
