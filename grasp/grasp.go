// Package grasp provides the grasp data model: a single 6-DoF grasp and a
// structure-of-arrays container of many grasps supporting vectorized bulk
// operations.
package grasp

import (
	"github.com/grasplab/graspkit/spatialmath"
)

// DefaultWidth is the opening width assigned by FromTranslations, matching
// a standard parallel-jaw gripper fully open.
const DefaultWidth = 0.08

// Grasp is one 6-DoF grasp candidate on a rigid object: a gripper pose in
// the object's reference frame plus the required opening width and an
// optional sampler-assigned quality score (higher is better). Grasps are
// immutable values.
type Grasp struct {
	Pose  spatialmath.Pose
	Width float64
	Score float64
	// HasScore reports whether Score carries a meaningful value; grasps
	// taken from a set without a score schema leave it false.
	HasScore bool
}
