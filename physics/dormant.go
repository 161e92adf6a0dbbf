package physics

import "github.com/jakecoffman/cp"

// Dormancy holds a body in place until something touches it. A held body
// ignores gravity and damping but still takes contact impulses, so the first
// hit knocks it loose; the next post-step then hands it back to the normal
// integrator.
type Dormancy struct {
	body   *cp.Body
	asleep bool
}

// Hold starts holding body. Register the result with World.OnStep.
func Hold(body *cp.Body) *Dormancy {
	body.SetVelocityVector(cp.Vector{})
	body.SetAngularVelocity(0)
	body.SetVelocityUpdateFunc(heldVelocity)
	return &Dormancy{body: body, asleep: true}
}

func heldVelocity(*cp.Body, cp.Vector, float64, float64) {}

// Asleep reports whether the body is still held.
func (d *Dormancy) Asleep() bool {
	return d != nil && d.asleep
}

// Wake releases the body immediately.
func (d *Dormancy) Wake() {
	if !d.Asleep() {
		return
	}
	d.asleep = false
	d.body.SetVelocityUpdateFunc(cp.BodyUpdateVelocity)
	d.body.Activate()
}

func (d *Dormancy) PostStep(_ *World, _ float64) {
	if !d.Asleep() {
		return
	}
	touched := false
	d.body.EachArbiter(func(*cp.Arbiter) { touched = true })
	if touched || d.body.Velocity().LengthSq() > 0 {
		d.Wake()
	}
}
