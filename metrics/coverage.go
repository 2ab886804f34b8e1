package metrics

import (
	"github.com/pkg/errors"

	"github.com/grasplab/graspkit/grasp"
)

// Coverage returns the fraction of reference grasps with at least one
// candidate within threshold distance, inclusive. Recall over zero items is
// meaningless, so an empty candidate or reference set is an error rather
// than a silent 0 or 1.
func Coverage(candidates, reference *grasp.Set, threshold float64, w DistanceWeights) (float64, error) {
	if threshold < 0 {
		return 0, errors.Wrapf(ErrInvalidThreshold, "got %f", threshold)
	}
	dists, err := MinDistances(reference, candidates, w)
	if err != nil {
		return 0, err
	}
	covered := 0
	for _, d := range dists {
		if d <= threshold {
			covered++
		}
	}
	return float64(covered) / float64(len(dists)), nil
}
