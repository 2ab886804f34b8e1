package surface

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.viam.com/test"
)

func TestNewSampleValidation(t *testing.T) {
	pts := []r3.Vector{{X: 1}, {Y: 1}}
	norms := []r3.Vector{{X: 1}}
	_, err := NewSample(pts, norms)
	test.That(t, errors.Is(err, ErrShapeMismatch), test.ShouldBeTrue)

	_, err = NewSample(pts, []r3.Vector{{X: 1}, {}})
	test.That(t, errors.Is(err, ErrDegenerateGeometry), test.ShouldBeTrue)

	s, err := NewSample(pts, []r3.Vector{{X: 1}, {Y: 1}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Len(), test.ShouldEqual, 2)
}

func TestNewSampleRenormalizesNormals(t *testing.T) {
	s, err := NewSample([]r3.Vector{{}}, []r3.Vector{{X: 3, Y: 4}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Normal(0).Norm(), test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, s.Normal(0).X, test.ShouldAlmostEqual, 0.6, 1e-12)
}

func TestNewSampleWithTriangles(t *testing.T) {
	pts := []r3.Vector{{}, {X: 1}, {Y: 1}}
	norms := []r3.Vector{{Z: 1}, {Z: 1}, {Z: 1}}
	s, err := NewSampleWithTriangles(pts, norms, [][3]int{{0, 1, 2}})
	test.That(t, err, test.ShouldBeNil)
	test.That(t, s.Triangles(), test.ShouldHaveLength, 1)

	_, err = NewSampleWithTriangles(pts, norms, [][3]int{{0, 1, 3}})
	test.That(t, errors.Is(err, ErrShapeMismatch), test.ShouldBeTrue)
}

func TestDownsample(t *testing.T) {
	s := PlanarPatches(0.1, 5, 0.2)
	down := s.Downsample(10, 3)
	test.That(t, down.Len(), test.ShouldEqual, 10)
	// deterministic for equal seeds
	again := s.Downsample(10, 3)
	test.That(t, again.Points(), test.ShouldResemble, down.Points())
	// no-op when the sample is already small enough
	test.That(t, s.Downsample(s.Len(), 3), test.ShouldEqual, s)
}

func TestPlanarPatches(t *testing.T) {
	s := PlanarPatches(0.04, 3, 0.06)
	test.That(t, s.Len(), test.ShouldEqual, 18)
	for i := 0; i < s.Len(); i++ {
		pt, n := s.Point(i), s.Normal(i)
		if pt.X < 0 {
			test.That(t, pt.X, test.ShouldAlmostEqual, -0.03, 1e-12)
			test.That(t, n, test.ShouldResemble, r3.Vector{X: -1})
		} else {
			test.That(t, pt.X, test.ShouldAlmostEqual, 0.03, 1e-12)
			test.That(t, n, test.ShouldResemble, r3.Vector{X: 1})
		}
	}
}
