package component

import "github.com/milk9111/carrig/physics"

// Bonus tracks the collectible box. Dormancy is nil when the bonus starts
// awake. Contacts counts touches by the rig, sensor overlaps included.
type Bonus struct {
	Dormancy *physics.Dormancy
	Contacts *physics.ContactTracker
	Awake    bool
	Touches  int
}

var BonusComponent = NewComponent[Bonus]()
