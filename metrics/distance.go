// Package metrics quantifies agreement between grasp sets: pairwise grasp
// distances, nearest-neighbor coverage, and symmetric set similarity.
package metrics

import (
	"math"

	"github.com/pkg/errors"

	"github.com/grasplab/graspkit/grasp"
	"github.com/grasplab/graspkit/spatialmath"
	"github.com/grasplab/graspkit/utils"
)

var (
	// ErrEmptyInput is returned when a comparison needs a non-empty set.
	ErrEmptyInput = errors.New("empty grasp set")
	// ErrInvalidThreshold is returned for negative distance thresholds.
	ErrInvalidThreshold = errors.New("threshold must be non-negative")
)

// DistanceWeights blends the translation, rotation, and width terms of the
// composite grasp distance. Translation applies per length unit, Rotation
// per radian, Width per length unit of opening difference; a zero weight
// drops its term.
type DistanceWeights struct {
	Translation float64
	Rotation    float64
	Width       float64
}

// DefaultDistanceWeights weighs one millimeter of translation offset the
// same as one degree of rotation offset, with meters as the length unit.
// Width differences are ignored by default.
func DefaultDistanceWeights() DistanceWeights {
	return DistanceWeights{Translation: 1000, Rotation: utils.RadToDeg(1)}
}

// Distance is the composite distance between two grasps: weighted Euclidean
// translation offset plus weighted geodesic rotation angle plus, when
// enabled, weighted opening width difference. It is symmetric and zero iff
// every weighted component is identical.
func Distance(a, b grasp.Grasp, w DistanceWeights) float64 {
	d := w.Translation * a.Pose.Point().Sub(b.Pose.Point()).Norm()
	d += w.Rotation * spatialmath.AngleBetween(a.Pose.Rotation(), b.Pose.Rotation())
	if w.Width != 0 {
		d += w.Width * math.Abs(a.Width-b.Width)
	}
	return d
}

// MinDistances returns, for every grasp in from, the exact distance to its
// nearest neighbor in to. The outer loop is split across goroutines; the
// inner loop skips exact evaluation only when the translation term alone
// already exceeds the best distance so far, a bound that can never discard
// the true nearest neighbor since the remaining terms are non-negative.
func MinDistances(from, to *grasp.Set, w DistanceWeights) ([]float64, error) {
	if from.Len() == 0 || to.Len() == 0 {
		return nil, errors.Wrapf(ErrEmptyInput, "%d vs %d grasps", from.Len(), to.Len())
	}
	out := make([]float64, from.Len())
	utils.ParallelRanges(from.Len(), func(start, end int) {
		for i := start; i < end; i++ {
			out[i] = minDistanceTo(from, i, to, w)
		}
	})
	return out, nil
}

func minDistanceTo(from *grasp.Set, i int, to *grasp.Set, w DistanceWeights) float64 {
	t := from.Translation(i)
	r := from.Rotation(i)
	width := from.Width(i)

	best := math.Inf(1)
	for j := 0; j < to.Len(); j++ {
		transTerm := w.Translation * t.Sub(to.Translation(j)).Norm()
		if transTerm >= best {
			continue
		}
		d := transTerm + w.Rotation*spatialmath.AngleBetween(r, to.Rotation(j))
		if w.Width != 0 {
			d += w.Width * math.Abs(width-to.Width(j))
		}
		if d < best {
			best = d
		}
	}
	return best
}
