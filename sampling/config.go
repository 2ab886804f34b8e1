// Package sampling generates candidate grasps from object surface geometry.
package sampling

import (
	"github.com/pkg/errors"

	"github.com/grasplab/graspkit/utils"
)

// DefaultAntipodalConfig returns the sampler configuration used when no
// tuning is needed: moderate friction, a 15 degree antipodal tolerance, and
// a canonical (zero) roll about the grasp axis.
func DefaultAntipodalConfig() AntipodalConfig {
	return AntipodalConfig{
		FrictionCoeff:      0.5,
		AntipodalTolerance: utils.DegToRad(15),
		TargetGraspCount:   50,
	}
}

// defaultAttemptsPerGrasp derives the search budget when MaxPairAttempts is
// left zero.
const defaultAttemptsPerGrasp = 500

// AntipodalConfig configures antipodal grasp sampling. The zero value of a
// count field means "derive a default"; all angular and friction knobs are
// taken literally, so a zero friction coefficient really demands exactly
// aligned contacts.
type AntipodalConfig struct {
	// FrictionCoeff is the Coulomb friction coefficient at the contacts;
	// the friction cone half-angle is atan(FrictionCoeff).
	FrictionCoeff float64

	// AntipodalTolerance is the maximum angle, in radians, between the
	// first contact normal and the negated partner normal.
	AntipodalTolerance float64

	// TargetGraspCount is the number of grasps to sample before stopping.
	// Zero means 50.
	TargetGraspCount int

	// MaxPairAttempts bounds how many contact pairs are examined, keeping
	// the worst case well below a full quadratic pairwise search. Zero
	// derives a budget from TargetGraspCount.
	MaxPairAttempts int

	// RotationOffsetRange adds a roll about the grasp axis drawn uniformly
	// from [-RotationOffsetRange, RotationOffsetRange] radians. Zero keeps
	// the canonical roll.
	RotationOffsetRange float64

	// Seed drives all randomness in the sampler. Equal seeds and inputs
	// reproduce identical grasp sets.
	Seed int64
}

func (cfg AntipodalConfig) withDefaults() AntipodalConfig {
	if cfg.TargetGraspCount == 0 {
		cfg.TargetGraspCount = DefaultAntipodalConfig().TargetGraspCount
	}
	if cfg.MaxPairAttempts == 0 {
		cfg.MaxPairAttempts = defaultAttemptsPerGrasp * cfg.TargetGraspCount
	}
	return cfg
}

// Validate checks the configuration. Negative knobs are always invalid.
func (cfg AntipodalConfig) Validate() error {
	if cfg.FrictionCoeff < 0 {
		return errors.Errorf("friction coefficient must be non-negative, got %f", cfg.FrictionCoeff)
	}
	if cfg.AntipodalTolerance < 0 {
		return errors.Errorf("antipodal tolerance must be non-negative, got %f", cfg.AntipodalTolerance)
	}
	if cfg.TargetGraspCount < 0 {
		return errors.Errorf("target grasp count must be non-negative, got %d", cfg.TargetGraspCount)
	}
	if cfg.MaxPairAttempts < 0 {
		return errors.Errorf("max pair attempts must be non-negative, got %d", cfg.MaxPairAttempts)
	}
	if cfg.RotationOffsetRange < 0 {
		return errors.Errorf("rotation offset range must be non-negative, got %f", cfg.RotationOffsetRange)
	}
	return nil
}
