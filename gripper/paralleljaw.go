// Package gripper describes the parallel-jaw gripper geometry that bounds
// grasp sampling: opening range, finger dimensions, and the volumes the
// fingers sweep when closing.
package gripper

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/grasplab/graspkit/spatialmath"
	"github.com/grasplab/graspkit/utils"
)

// ParallelJaw is a two-finger parallel-jaw gripper. Fingers are cuboids of
// square FingerThickness cross-section and FingerLength long; their inner
// faces are at most MaxOpeningWidth apart. In the grasp frame, +X is the
// closing axis and +Z the approach axis, with the origin at the grasp
// center between the finger tips.
type ParallelJaw struct {
	// MaxOpeningWidth is the largest graspable object extent.
	MaxOpeningWidth float64
	// MinGraspWidth rejects grasps on features too thin to hold reliably.
	// Zero disables the lower bound.
	MinGraspWidth   float64
	FingerLength    float64
	FingerThickness float64
}

// Default returns a generic simulated parallel-jaw gripper.
func Default() ParallelJaw {
	return ParallelJaw{
		MaxOpeningWidth: 0.08,
		MinGraspWidth:   0,
		FingerLength:    0.05,
		FingerThickness: 0.003,
	}
}

// WSG32 returns the profile of a Schunk WSG 32 class gripper, whose fingers
// open 28mm to each side.
func WSG32() ParallelJaw {
	return ParallelJaw{
		MaxOpeningWidth: 0.056,
		MinGraspWidth:   0,
		FingerLength:    0.035,
		FingerThickness: 0.004,
	}
}

// Validate checks the gripper dimensions for consistency.
func (pj ParallelJaw) Validate() error {
	if pj.MaxOpeningWidth <= 0 {
		return errors.Errorf("max opening width must be positive, got %f", pj.MaxOpeningWidth)
	}
	if pj.MinGraspWidth < 0 {
		return errors.Errorf("min grasp width must be non-negative, got %f", pj.MinGraspWidth)
	}
	if pj.MinGraspWidth >= pj.MaxOpeningWidth {
		return errors.Errorf("min grasp width %f must be below max opening width %f", pj.MinGraspWidth, pj.MaxOpeningWidth)
	}
	if pj.FingerLength <= 0 || pj.FingerThickness <= 0 {
		return errors.New("finger dimensions must be positive")
	}
	return nil
}

// ClampWidth clamps an opening width into the gripper's usable range. The
// lower bound is a tenth of the maximum opening, mirroring the minimum open
// scale hardware drivers accept.
func (pj ParallelJaw) ClampWidth(width float64) float64 {
	return utils.Clamp(width, 0.1*pj.MaxOpeningWidth, pj.MaxOpeningWidth)
}

// fingerClearance keeps the contact points themselves, which sit exactly on
// the finger inner faces, out of the swept volumes.
const fingerClearance = 1e-6

// FingerRegions returns the two volumes occupied by the fingers when the
// gripper closes to the given width at the given grasp pose. Any surface
// point inside either region means the fingers cannot reach the contacts
// without intersecting the object.
func (pj ParallelJaw) FingerRegions(pose spatialmath.Pose, width float64) [2]spatialmath.Box {
	offset := width/2 + pj.FingerThickness/2 + fingerClearance
	dims := r3.Vector{X: pj.FingerThickness, Y: pj.FingerThickness, Z: pj.FingerLength}
	// Fingers extend back along the approach axis from the grasp center.
	centerZ := pj.FingerLength / 2
	left := spatialmath.Compose(pose, spatialmath.NewPoseFromPoint(r3.Vector{X: -offset, Z: centerZ}))
	right := spatialmath.Compose(pose, spatialmath.NewPoseFromPoint(r3.Vector{X: offset, Z: centerZ}))
	return [2]spatialmath.Box{
		spatialmath.NewBox(left, dims),
		spatialmath.NewBox(right, dims),
	}
}
