package metrics

import (
	"gonum.org/v1/gonum/floats"

	"github.com/grasplab/graspkit/grasp"
)

// Similarity summarizes how close two grasp sets are overall: the average
// of the two directed mean nearest-neighbor distances. It is symmetric in
// its arguments, unlike one-directional coverage, and lower values mean
// more similar sets. Either set being empty is an error.
func Similarity(a, b *grasp.Set, w DistanceWeights) (float64, error) {
	ab, err := MinDistances(a, b, w)
	if err != nil {
		return 0, err
	}
	ba, err := MinDistances(b, a, w)
	if err != nil {
		return 0, err
	}
	meanAB := floats.Sum(ab) / float64(len(ab))
	meanBA := floats.Sum(ba) / float64(len(ba))
	return (meanAB + meanBA) / 2, nil
}
