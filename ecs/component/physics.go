package component

import "github.com/jakecoffman/cp"

// PhysicsBody links an entity to the Chipmunk body and shape it was built
// from. The physics world owns both.
type PhysicsBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Static bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
