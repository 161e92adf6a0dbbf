package physics

import "github.com/jakecoffman/cp"

// Collision types used for contact callbacks. Scenery is the engine default,
// so shapes that never went through a Policy count as scenery.
const (
	CollisionTypeScenery cp.CollisionType = iota
	CollisionTypeRig
	CollisionTypeBonus
)

// ContactTracker counts contacts between two collision types. It also sees
// sensor overlaps, which never show up in a body's arbiter list.
type ContactTracker struct {
	touching int
	total    int
}

// Touching is the number of pairs currently in contact.
func (c *ContactTracker) Touching() int {
	if c == nil {
		return 0
	}
	return c.touching
}

// Total is the number of contacts that have begun since tracking started.
func (c *ContactTracker) Total() int {
	if c == nil {
		return 0
	}
	return c.total
}

// TrackContacts installs a handler for the (a, b) pair. Installing a second
// tracker for the same pair replaces the first.
func (w *World) TrackContacts(a, b cp.CollisionType) *ContactTracker {
	tracker := &ContactTracker{}
	handler := w.space.NewCollisionHandler(a, b)
	handler.UserData = tracker
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		t, ok := userData.(*ContactTracker)
		if ok {
			t.touching++
			t.total++
		}
		return true
	}
	handler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		t, ok := userData.(*ContactTracker)
		if ok && t.touching > 0 {
			t.touching--
		}
	}
	return tracker
}
