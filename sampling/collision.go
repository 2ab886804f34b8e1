package sampling

import (
	"github.com/grasplab/graspkit/spatialmath"
	"github.com/grasplab/graspkit/surface"
)

// CollisionChecker prunes candidate grasps whose gripper volume would
// intersect the environment. Implementations are queried once per finger
// region per candidate. A nil checker disables pruning entirely.
type CollisionChecker interface {
	Collides(region spatialmath.Box) bool
}

// SurfaceCollisionChecker flags regions containing any point of a surface
// sample. It checks every point, so pair it with a downsampled surface for
// large inputs.
type SurfaceCollisionChecker struct {
	surf *surface.Sample
}

// NewSurfaceCollisionChecker returns a checker over the given surface.
func NewSurfaceCollisionChecker(surf *surface.Sample) *SurfaceCollisionChecker {
	return &SurfaceCollisionChecker{surf: surf}
}

// Collides returns whether any surface point lies inside the region.
func (c *SurfaceCollisionChecker) Collides(region spatialmath.Box) bool {
	for i := 0; i < c.surf.Len(); i++ {
		if region.ContainsPoint(c.surf.Point(i)) {
			return true
		}
	}
	return false
}
