// Package sim defines the collaborator contract for physics-based grasp
// evaluation. The toolkit never steps physics itself; an external simulator
// executes a grasp and reports the outcome.
package sim

import (
	"context"
	"sync"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"github.com/grasplab/graspkit/grasp"
)

// Outcome is one simulator verdict for one grasp.
type Outcome struct {
	Success bool
	// Quality optionally refines Success with a scalar; its semantics
	// belong to the simulator.
	Quality float64
}

// Evaluator executes a single grasp against the target object it was
// constructed for and reports the outcome. Implementations must be safe for
// concurrent calls and must not share mutable simulation state between them.
type Evaluator interface {
	Evaluate(ctx context.Context, g grasp.Grasp) (Outcome, error)
}

// EvaluateSet runs the evaluator once per grasp, concurrently. Invocations
// are independent: one failure never aborts the others. The returned
// outcomes align 1:1 with the set; entries whose evaluation failed are
// zero-valued and their errors are combined into the returned error.
func EvaluateSet(ctx context.Context, ev Evaluator, set *grasp.Set, logger golog.Logger) ([]Outcome, error) {
	outcomes := make([]Outcome, set.Len())
	errs := make([]error, set.Len())

	var wg sync.WaitGroup
	for i := 0; i < set.Len(); i++ {
		wg.Add(1)
		iCopy := i
		goutils.PanicCapturingGo(func() {
			defer wg.Done()
			out, err := ev.Evaluate(ctx, set.At(iCopy))
			if err != nil {
				errs[iCopy] = errors.Wrapf(err, "evaluating grasp %d", iCopy)
				return
			}
			outcomes[iCopy] = out
		})
	}
	wg.Wait()

	combined := multierr.Combine(errs...)
	if combined != nil {
		logger.Warnw("some grasp evaluations failed", "failures", len(multierr.Errors(combined)), "grasps", set.Len())
	}
	return outcomes, combined
}
