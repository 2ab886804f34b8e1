// Package surface defines the discretized object-surface representation
// consumed by grasp samplers: points with outward unit normals, optionally
// a triangulation.
package surface

import (
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
)

var (
	// ErrShapeMismatch is returned when parallel arrays disagree in length.
	ErrShapeMismatch = errors.New("shape mismatch between parallel arrays")
	// ErrDegenerateGeometry is returned for geometry a sampler cannot use,
	// such as zero-length normals.
	ErrDegenerateGeometry = errors.New("degenerate surface geometry")
)

// Normals shorter than this define no direction and are rejected rather
// than normalized to garbage.
const minNormalLength = 1e-12

// Sample is an immutable surface sample of a rigid object. Index i in the
// point and normal arrays refers to the same surface location.
type Sample struct {
	points    []r3.Vector
	normals   []r3.Vector
	triangles [][3]int
}

// NewSample validates and returns a surface sample. Points and normals must
// have equal length. Normals are explicitly renormalized to unit length;
// zero-length normals fail with ErrDegenerateGeometry.
func NewSample(points, normals []r3.Vector) (*Sample, error) {
	if len(points) != len(normals) {
		return nil, errors.Wrapf(ErrShapeMismatch, "%d points vs %d normals", len(points), len(normals))
	}
	pts := make([]r3.Vector, len(points))
	copy(pts, points)
	norms := make([]r3.Vector, len(normals))
	for i, n := range normals {
		length := n.Norm()
		if length < minNormalLength {
			return nil, errors.Wrapf(ErrDegenerateGeometry, "normal %d has zero length", i)
		}
		norms[i] = n.Mul(1 / length)
	}
	return &Sample{points: pts, normals: norms}, nil
}

// NewSampleWithTriangles returns a surface sample that additionally carries
// a triangulation. Every triangle must index valid points.
func NewSampleWithTriangles(points, normals []r3.Vector, triangles [][3]int) (*Sample, error) {
	s, err := NewSample(points, normals)
	if err != nil {
		return nil, err
	}
	tris := make([][3]int, len(triangles))
	for i, tri := range triangles {
		for _, v := range tri {
			if v < 0 || v >= len(points) {
				return nil, errors.Wrapf(ErrShapeMismatch, "triangle %d references point %d of %d", i, v, len(points))
			}
		}
		tris[i] = tri
	}
	s.triangles = tris
	return s, nil
}

// Len returns the number of surface points.
func (s *Sample) Len() int {
	return len(s.points)
}

// Point returns the i-th surface point.
func (s *Sample) Point(i int) r3.Vector {
	return s.points[i]
}

// Normal returns the i-th outward unit normal.
func (s *Sample) Normal(i int) r3.Vector {
	return s.normals[i]
}

// Points returns the backing point array. It is shared, not copied; callers
// must not modify it.
func (s *Sample) Points() []r3.Vector {
	return s.points
}

// Normals returns the backing normal array. It is shared, not copied;
// callers must not modify it.
func (s *Sample) Normals() []r3.Vector {
	return s.normals
}

// Triangles returns the triangulation, or nil if the sample carries none.
func (s *Sample) Triangles() [][3]int {
	return s.triangles
}

// Downsample returns a new sample containing n points chosen uniformly at
// random with the given seed. Samples with at most n points are returned
// unchanged. Any triangulation is dropped since its indices no longer apply.
func (s *Sample) Downsample(n int, seed int64) *Sample {
	if n >= s.Len() {
		return s
	}
	r := rand.New(rand.NewSource(seed))
	perm := r.Perm(s.Len())[:n]
	pts := make([]r3.Vector, n)
	norms := make([]r3.Vector, n)
	for i, j := range perm {
		pts[i] = s.points[j]
		norms[i] = s.normals[j]
	}
	return &Sample{points: pts, normals: norms}
}
