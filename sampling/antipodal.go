package sampling

import (
	"math"
	"math/rand"

	"github.com/edaniels/golog"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"github.com/grasplab/graspkit/grasp"
	"github.com/grasplab/graspkit/gripper"
	"github.com/grasplab/graspkit/spatialmath"
	"github.com/grasplab/graspkit/surface"
	"github.com/grasplab/graspkit/utils"
)

// angleSlack absorbs floating point error in the feasibility checks so that
// an exactly aligned contact pair passes a zero-width cone. It is far below
// any physically meaningful tolerance.
const angleSlack = 1e-9

// AntipodalSampler produces candidate grasps whose two contact points lie
// on opposing surface regions with roughly antiparallel normals, within the
// gripper's opening range and friction cones. Sampling is deterministic for
// a fixed seed.
type AntipodalSampler struct {
	cfg     AntipodalConfig
	jaw     gripper.ParallelJaw
	checker CollisionChecker
	logger  golog.Logger
}

// NewAntipodalSampler validates the configuration and gripper and returns a
// sampler. checker may be nil to disable collision pruning.
func NewAntipodalSampler(
	cfg AntipodalConfig,
	jaw gripper.ParallelJaw,
	checker CollisionChecker,
	logger golog.Logger,
) (*AntipodalSampler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid sampler config")
	}
	if err := jaw.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid gripper")
	}
	return &AntipodalSampler{cfg: cfg.withDefaults(), jaw: jaw, checker: checker, logger: logger}, nil
}

// Sample draws candidate contact pairs from the surface sample and returns
// the accepted grasps, scored by geometric margin. Finding no feasible pair
// within the search budget is a normal empty result, not an error; so is a
// surface with fewer than two points.
func (s *AntipodalSampler) Sample(surf *surface.Sample) (*grasp.Set, error) {
	if surf.Len() < 2 {
		s.logger.Debugw("surface sample too small for contact pairs", "points", surf.Len())
		return emptyScoredSet()
	}

	rng := rand.New(rand.NewSource(s.cfg.Seed))
	coneHalfAngle := math.Atan(s.cfg.FrictionCoeff)

	poses := make([]spatialmath.Pose, 0, s.cfg.TargetGraspCount)
	widths := make([]float64, 0, s.cfg.TargetGraspCount)
	scores := make([]float64, 0, s.cfg.TargetGraspCount)

	attempts := 0
	for attempts < s.cfg.MaxPairAttempts && len(poses) < s.cfg.TargetGraspCount {
		attempts++

		i := utils.SampleRandomIntRange(0, surf.Len()-1, rng)
		j := utils.SampleRandomIntRange(0, surf.Len()-1, rng)
		if i == j {
			continue
		}
		p1, n1 := surf.Point(i), surf.Normal(i)
		p2, n2 := surf.Point(j), surf.Normal(j)

		axis := p2.Sub(p1)
		width := axis.Norm()
		if width < s.jaw.MinGraspWidth || width > s.jaw.MaxOpeningWidth || width < minContactSeparation {
			continue
		}
		u := axis.Mul(1 / width)

		antipodalAngle := angleBetweenUnit(n1, n2.Mul(-1))
		if antipodalAngle > s.cfg.AntipodalTolerance+angleSlack {
			continue
		}

		// The grasp line must lie inside the friction cone at both contacts;
		// forces are applied against the outward normals.
		coneAngle1 := angleBetweenUnit(u, n1.Mul(-1))
		coneAngle2 := angleBetweenUnit(u.Mul(-1), n2.Mul(-1))
		if coneAngle1 > coneHalfAngle+angleSlack || coneAngle2 > coneHalfAngle+angleSlack {
			continue
		}

		pose, err := s.buildPose(p1, p2, u, rng)
		if err != nil {
			return nil, err
		}
		if s.checker != nil && s.collides(pose, width) {
			continue
		}

		poses = append(poses, pose)
		widths = append(widths, width)
		scores = append(scores, graspScore(
			antipodalAngle, s.cfg.AntipodalTolerance,
			math.Max(coneAngle1, coneAngle2), coneHalfAngle,
		))
	}

	s.logger.Debugw("antipodal sampling finished",
		"attempts", attempts,
		"grasps", len(poses),
		"surfacePoints", surf.Len(),
	)
	return grasp.NewSet(poses, widths, scores)
}

// minContactSeparation rejects coincident contact points whose connecting
// line has no direction.
const minContactSeparation = 1e-12

// buildPose derives the gripper pose from a feasible contact pair: origin
// at the contact midpoint, closing axis along the contact line, plus an
// optional sampled roll about that axis. The roll draw happens even when
// the offset range is zero so accepted grasps consume an identical number
// of random values regardless of configuration.
func (s *AntipodalSampler) buildPose(p1, p2, u r3.Vector, rng *rand.Rand) (spatialmath.Pose, error) {
	align, err := spatialmath.RotationBetweenVectors(r3.Vector{X: 1}, u)
	if err != nil {
		return spatialmath.Pose{}, errors.Wrap(err, "building grasp pose")
	}
	roll := (2*rng.Float64() - 1) * s.cfg.RotationOffsetRange
	rot := align
	if roll != 0 {
		rot = quat.Mul(spatialmath.RotationAboutAxis(u, roll), align)
	}
	mid := p1.Add(p2).Mul(0.5)
	return spatialmath.NewPose(mid, rot), nil
}

func (s *AntipodalSampler) collides(pose spatialmath.Pose, width float64) bool {
	regions := s.jaw.FingerRegions(pose, width)
	return s.checker.Collides(regions[0]) || s.checker.Collides(regions[1])
}

// graspScore maps feasibility margins to (0, 1]: 1 for perfectly aligned
// contacts, approaching 0 as either the antipodal angle or the worse
// friction cone angle nears its limit. A zero-width limit passed by an
// exactly aligned pair scores full margin. Deterministic in its inputs.
func graspScore(antipodalAngle, antipodalLimit, coneAngle, coneLimit float64) float64 {
	return math.Min(angularMargin(antipodalAngle, antipodalLimit), angularMargin(coneAngle, coneLimit))
}

func angularMargin(angle, limit float64) float64 {
	if limit <= 0 {
		return 1
	}
	m := 1 - angle/limit
	if m < 0 {
		return 0
	}
	if m > 1 {
		return 1
	}
	return m
}

// angleBetweenUnit returns the angle between two unit vectors, clamped
// against floating point overshoot.
func angleBetweenUnit(a, b r3.Vector) float64 {
	dot := a.Dot(b)
	if dot > 1 {
		dot = 1
	}
	if dot < -1 {
		dot = -1
	}
	return math.Acos(dot)
}

// emptyScoredSet returns an empty set carrying the sampler's score schema,
// so empty results concatenate cleanly with non-empty ones.
func emptyScoredSet() (*grasp.Set, error) {
	return grasp.NewSet(nil, []float64{}, []float64{})
}
