package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func randomPose(r *rand.Rand) Pose {
	pt := r3.Vector{X: r.NormFloat64(), Y: r.NormFloat64(), Z: r.NormFloat64()}
	rot := quat.Number{Real: r.NormFloat64(), Imag: r.NormFloat64(), Jmag: r.NormFloat64(), Kmag: r.NormFloat64()}
	return NewPose(pt, rot)
}

func TestZeroPose(t *testing.T) {
	p := NewZeroPose()
	test.That(t, p.Point(), test.ShouldResemble, r3.Vector{})
	test.That(t, QuatAngle(p.Rotation()), test.ShouldEqual, 0)
}

func TestPoseRoundTrip(t *testing.T) {
	pt := r3.Vector{X: 1, Y: -2, Z: 3}
	rot := RotationAboutAxis(r3.Vector{Z: 1}, math.Pi/2)
	p := NewPose(pt, rot)
	test.That(t, p.Point().Sub(pt).Norm(), test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, QuaternionAlmostEqual(p.Rotation(), rot, 1e-12), test.ShouldBeTrue)
}

func TestTransformPoint(t *testing.T) {
	// quarter turn about Z maps +X onto +Y, then translate
	p := NewPoseFromAxisAngle(r3.Vector{X: 10}, r3.Vector{Z: 1}, math.Pi/2)
	got := p.TransformPoint(r3.Vector{X: 1})
	test.That(t, got.Sub(r3.Vector{X: 10, Y: 1}).Norm(), test.ShouldAlmostEqual, 0, 1e-12)
}

func TestComposeMatchesSequentialTransforms(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	for i := 0; i < 20; i++ {
		a := randomPose(r)
		b := randomPose(r)
		pt := r3.Vector{X: r.NormFloat64(), Y: r.NormFloat64(), Z: r.NormFloat64()}
		got := Compose(a, b).TransformPoint(pt)
		want := a.TransformPoint(b.TransformPoint(pt))
		test.That(t, got.Sub(want).Norm(), test.ShouldAlmostEqual, 0, 1e-9)
	}
}

func TestPoseInverse(t *testing.T) {
	r := rand.New(rand.NewSource(6))
	for i := 0; i < 20; i++ {
		p := randomPose(r)
		test.That(t, PoseAlmostCoincident(Compose(p, PoseInverse(p)), NewZeroPose(), 1e-9), test.ShouldBeTrue)
	}
}

func TestPoseInverseNegatesTranslation(t *testing.T) {
	pt := r3.Vector{X: 1, Y: -2, Z: 3}
	inv := PoseInverse(NewPoseFromPoint(pt))
	test.That(t, inv.Point().Add(pt).Norm(), test.ShouldAlmostEqual, 0, 1e-12)
	test.That(t, QuatAngle(inv.Rotation()), test.ShouldEqual, 0)

	// inverting a rotated pose maps its own translation back to the origin
	p := NewPoseFromAxisAngle(pt, r3.Vector{Z: 1}, math.Pi/3)
	test.That(t, PoseInverse(p).TransformPoint(pt).Norm(), test.ShouldAlmostEqual, 0, 1e-12)
}

func TestPoseBetween(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		a := randomPose(r)
		b := randomPose(r)
		test.That(t, PoseAlmostCoincident(Compose(a, PoseBetween(a, b)), b, 1e-9), test.ShouldBeTrue)
	}
}

func TestComposeKeepsRotationsProper(t *testing.T) {
	p := NewPoseFromAxisAngle(r3.Vector{X: 0.001}, r3.Vector{X: 1, Y: 1}, 0.01)
	acc := NewZeroPose()
	for i := 0; i < 10000; i++ {
		acc = Compose(acc, p)
	}
	test.That(t, quat.Abs(acc.Rotation()), test.ShouldAlmostEqual, 1, 1e-9)
}
