package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
)

// Box is an oriented rectangular volume, used to describe the space swept
// by gripper fingers when pruning colliding grasp candidates.
type Box struct {
	pose     Pose
	halfSize r3.Vector
}

// NewBox returns a box centered at the given pose with the given full
// dimensions along the pose's local axes.
func NewBox(pose Pose, dims r3.Vector) Box {
	return Box{pose: pose, halfSize: dims.Mul(0.5)}
}

// Pose returns the pose of the box center.
func (b Box) Pose() Pose {
	return b.pose
}

// Dims returns the full dimensions of the box.
func (b Box) Dims() r3.Vector {
	return b.halfSize.Mul(2)
}

// ContainsPoint returns whether the point lies inside or on the box.
func (b Box) ContainsPoint(pt r3.Vector) bool {
	local := PoseInverse(b.pose).TransformPoint(pt)
	return math.Abs(local.X) <= b.halfSize.X &&
		math.Abs(local.Y) <= b.halfSize.Y &&
		math.Abs(local.Z) <= b.halfSize.Z
}
