package grasp

import (
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"github.com/grasplab/graspkit/spatialmath"
)

var (
	// ErrShapeMismatch is returned when the parallel arrays making up a set
	// disagree in length.
	ErrShapeMismatch = errors.New("shape mismatch between grasp set arrays")
	// ErrTypeMismatch is returned when combining sets whose attribute
	// schemas differ. Missing scores are never silently defaulted.
	ErrTypeMismatch = errors.New("grasp sets carry different attribute schemas")
	// ErrIndexOutOfRange is returned when selecting with an invalid index.
	ErrIndexOutOfRange = errors.New("grasp index out of range")
)

// Set is an ordered collection of grasps stored as parallel arrays; index i
// in every array refers to the same grasp. A Set is immutable once
// constructed: every operation returns a new Set and never modifies shared
// state, so sets may be read concurrently without locking. The empty set is
// a valid, commonly returned value.
type Set struct {
	translations []r3.Vector
	rotations    []quat.Number
	widths       []float64
	scores       []float64
	hasScores    bool
}

// NewSet builds a set from parallel pose and width arrays. scores may be
// nil, declaring a set without a score schema; otherwise all three arrays
// must have equal length. Widths must be non-negative.
func NewSet(poses []spatialmath.Pose, widths, scores []float64) (*Set, error) {
	if len(widths) != len(poses) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d poses vs %d widths", len(poses), len(widths))
	}
	if scores != nil && len(scores) != len(poses) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d poses vs %d scores", len(poses), len(scores))
	}
	for i, w := range widths {
		if w < 0 {
			return nil, errors.Errorf("grasp %d has negative width %f", i, w)
		}
	}
	s := &Set{
		translations: make([]r3.Vector, len(poses)),
		rotations:    make([]quat.Number, len(poses)),
		widths:       make([]float64, len(widths)),
		hasScores:    scores != nil,
	}
	for i, p := range poses {
		s.translations[i] = p.Point()
		s.rotations[i] = p.Rotation()
	}
	copy(s.widths, widths)
	if scores != nil {
		s.scores = make([]float64, len(scores))
		copy(s.scores, scores)
	}
	return s, nil
}

// FromTranslations returns one grasp per point with identity rotation and
// DefaultWidth, without scores. Used primarily in tests and examples.
func FromTranslations(points []r3.Vector) *Set {
	s := &Set{
		translations: make([]r3.Vector, len(points)),
		rotations:    make([]quat.Number, len(points)),
		widths:       make([]float64, len(points)),
	}
	copy(s.translations, points)
	for i := range s.rotations {
		s.rotations[i] = quat.Number{Real: 1}
		s.widths[i] = DefaultWidth
	}
	return s
}

// Concatenate returns a new set containing a's grasps followed by b's,
// order preserved. Sets must agree on whether they carry scores.
func Concatenate(a, b *Set) (*Set, error) {
	if a.hasScores != b.hasScores {
		return nil, errors.Wrapf(ErrTypeMismatch, "scores present: %t vs %t", a.hasScores, b.hasScores)
	}
	s := &Set{
		translations: append(append([]r3.Vector{}, a.translations...), b.translations...),
		rotations:    append(append([]quat.Number{}, a.rotations...), b.rotations...),
		widths:       append(append([]float64{}, a.widths...), b.widths...),
		hasScores:    a.hasScores,
	}
	if a.hasScores {
		s.scores = append(append([]float64{}, a.scores...), b.scores...)
	}
	return s, nil
}

// Transform returns a new set with every pose premultiplied by tf; widths
// and scores are unchanged. Rotations are renormalized so repeated
// transformation cannot drift away from proper rotations.
func (s *Set) Transform(tf spatialmath.Pose) *Set {
	out := &Set{
		translations: make([]r3.Vector, s.Len()),
		rotations:    make([]quat.Number, s.Len()),
		widths:       s.widths,
		scores:       s.scores,
		hasScores:    s.hasScores,
	}
	rot := tf.Rotation()
	for i := range s.translations {
		out.translations[i] = tf.TransformPoint(s.translations[i])
		out.rotations[i] = spatialmath.Normalize(quat.Mul(rot, s.rotations[i]))
	}
	return out
}

// Select returns a new set containing only the given indices, in the given
// order. Duplicate indices are allowed.
func (s *Set) Select(indices []int) (*Set, error) {
	out := &Set{
		translations: make([]r3.Vector, len(indices)),
		rotations:    make([]quat.Number, len(indices)),
		widths:       make([]float64, len(indices)),
		hasScores:    s.hasScores,
	}
	if s.hasScores {
		out.scores = make([]float64, len(indices))
	}
	for i, idx := range indices {
		if idx < 0 || idx >= s.Len() {
			return nil, errors.Wrapf(ErrIndexOutOfRange, "index %d with set of size %d", idx, s.Len())
		}
		out.translations[i] = s.translations[idx]
		out.rotations[i] = s.rotations[idx]
		out.widths[i] = s.widths[idx]
		if s.hasScores {
			out.scores[i] = s.scores[idx]
		}
	}
	return out, nil
}

// Len returns the number of grasps in the set.
func (s *Set) Len() int {
	return len(s.translations)
}

// HasScores reports whether the set carries a score per grasp.
func (s *Set) HasScores() bool {
	return s.hasScores
}

// At materializes the i-th grasp. i must be in [0, Len()).
func (s *Set) At(i int) Grasp {
	g := Grasp{
		Pose:  spatialmath.NewPose(s.translations[i], s.rotations[i]),
		Width: s.widths[i],
	}
	if s.hasScores {
		g.Score = s.scores[i]
		g.HasScore = true
	}
	return g
}

// Translation returns the i-th grasp translation without materializing the
// full grasp; the fast path for bulk distance computation.
func (s *Set) Translation(i int) r3.Vector {
	return s.translations[i]
}

// Rotation returns the i-th grasp rotation quaternion.
func (s *Set) Rotation(i int) quat.Number {
	return s.rotations[i]
}

// Width returns the i-th grasp opening width.
func (s *Set) Width(i int) float64 {
	return s.widths[i]
}

// Score returns the i-th grasp score and whether the set carries scores.
func (s *Set) Score(i int) (float64, bool) {
	if !s.hasScores {
		return 0, false
	}
	return s.scores[i], true
}

// Grasps materializes every grasp in the set, in order.
func (s *Set) Grasps() []Grasp {
	out := make([]Grasp, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}
	return out
}
