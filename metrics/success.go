package metrics

import (
	"github.com/pkg/errors"

	"github.com/grasplab/graspkit/sim"
)

// SuccessRate returns the fraction of successful outcomes. The outcomes are
// expected to align 1:1 with an evaluated grasp set, typically produced by
// sim.EvaluateSet or an external simulator driver.
func SuccessRate(outcomes []sim.Outcome) (float64, error) {
	if len(outcomes) == 0 {
		return 0, errors.Wrap(ErrEmptyInput, "no outcomes")
	}
	succeeded := 0
	for _, o := range outcomes {
		if o.Success {
			succeeded++
		}
	}
	return float64(succeeded) / float64(len(outcomes)), nil
}
