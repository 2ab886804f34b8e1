package spatialmath

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestQuatAngle(t *testing.T) {
	test.That(t, QuatAngle(quat.Number{Real: 1}), test.ShouldEqual, 0)

	q := RotationAboutAxis(r3.Vector{Z: 1}, math.Pi/3)
	test.That(t, QuatAngle(q), test.ShouldAlmostEqual, math.Pi/3, 1e-12)
	// q and -q describe the same rotation
	test.That(t, QuatAngle(Flip(q)), test.ShouldAlmostEqual, math.Pi/3, 1e-12)
}

func TestAngleBetweenIsSymmetric(t *testing.T) {
	q1 := RotationAboutAxis(r3.Vector{X: 1}, 0.4)
	q2 := RotationAboutAxis(r3.Vector{Y: 1, Z: 2}, 1.1)
	test.That(t, AngleBetween(q1, q2), test.ShouldAlmostEqual, AngleBetween(q2, q1), 1e-12)
	test.That(t, AngleBetween(q1, q1), test.ShouldAlmostEqual, 0, 1e-12)
}

func TestNormalize(t *testing.T) {
	q := Normalize(quat.Number{Real: 3, Imag: 4})
	test.That(t, quat.Abs(q), test.ShouldAlmostEqual, 1, 1e-12)
	// zero quaternion normalizes to identity rather than NaN
	test.That(t, Normalize(quat.Number{}), test.ShouldResemble, quat.Number{Real: 1})
}

func TestQuatToR4AARoundTrip(t *testing.T) {
	aa := R4AA{Theta: 1.2, RX: 0, RY: 0.6, RZ: 0.8}
	got := QuatToR4AA(aa.ToQuat())
	test.That(t, got.Theta, test.ShouldAlmostEqual, aa.Theta, 1e-9)
	test.That(t, got.RY, test.ShouldAlmostEqual, aa.RY, 1e-9)
	test.That(t, got.RZ, test.ShouldAlmostEqual, aa.RZ, 1e-9)
}

func TestRotationBetweenVectors(t *testing.T) {
	r, err := RotationBetweenVectors(r3.Vector{X: 1}, r3.Vector{Y: 1})
	test.That(t, err, test.ShouldBeNil)
	p := NewPose(r3.Vector{}, r)
	test.That(t, p.TransformPoint(r3.Vector{X: 1}).Sub(r3.Vector{Y: 1}).Norm(), test.ShouldAlmostEqual, 0, 1e-12)

	// antiparallel case needs a dedicated axis
	r, err = RotationBetweenVectors(r3.Vector{X: 1}, r3.Vector{X: -1})
	test.That(t, err, test.ShouldBeNil)
	p = NewPose(r3.Vector{}, r)
	test.That(t, p.TransformPoint(r3.Vector{X: 1}).Sub(r3.Vector{X: -1}).Norm(), test.ShouldAlmostEqual, 0, 1e-9)

	_, err = RotationBetweenVectors(r3.Vector{}, r3.Vector{X: 1})
	test.That(t, err, test.ShouldNotBeNil)
}

func TestBoxContainsPoint(t *testing.T) {
	b := NewBox(NewPoseFromPoint(r3.Vector{X: 1}), r3.Vector{X: 2, Y: 2, Z: 2})
	test.That(t, b.ContainsPoint(r3.Vector{X: 1}), test.ShouldBeTrue)
	test.That(t, b.ContainsPoint(r3.Vector{X: 2, Y: 1, Z: -1}), test.ShouldBeTrue)
	test.That(t, b.ContainsPoint(r3.Vector{X: 2.01}), test.ShouldBeFalse)

	// rotated 45 degrees about Z, a former corner direction is now a face
	rot := NewPoseFromAxisAngle(r3.Vector{}, r3.Vector{Z: 1}, math.Pi/4)
	rb := NewBox(rot, r3.Vector{X: 2, Y: 2, Z: 2})
	test.That(t, rb.ContainsPoint(r3.Vector{X: math.Sqrt2 - 0.01}), test.ShouldBeTrue)
	test.That(t, rb.ContainsPoint(r3.Vector{X: 1.1, Y: 1.1}), test.ShouldBeFalse)
}
