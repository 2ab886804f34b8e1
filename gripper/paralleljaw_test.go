package gripper

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/grasplab/graspkit/spatialmath"
)

func TestValidate(t *testing.T) {
	test.That(t, Default().Validate(), test.ShouldBeNil)
	test.That(t, WSG32().Validate(), test.ShouldBeNil)

	bad := Default()
	bad.MaxOpeningWidth = 0
	test.That(t, bad.Validate(), test.ShouldNotBeNil)

	bad = Default()
	bad.MinGraspWidth = bad.MaxOpeningWidth
	test.That(t, bad.Validate(), test.ShouldNotBeNil)

	bad = Default()
	bad.FingerThickness = -1
	test.That(t, bad.Validate(), test.ShouldNotBeNil)
}

func TestClampWidth(t *testing.T) {
	pj := Default()
	test.That(t, pj.ClampWidth(1), test.ShouldEqual, pj.MaxOpeningWidth)
	test.That(t, pj.ClampWidth(0), test.ShouldEqual, 0.1*pj.MaxOpeningWidth)
	test.That(t, pj.ClampWidth(0.05), test.ShouldEqual, 0.05)
}

func TestFingerRegions(t *testing.T) {
	pj := Default()
	width := 0.06
	regions := pj.FingerRegions(spatialmath.NewZeroPose(), width)

	// contact points sit on the finger faces, not inside them
	test.That(t, regions[0].ContainsPoint(r3.Vector{X: -width / 2}), test.ShouldBeFalse)
	test.That(t, regions[1].ContainsPoint(r3.Vector{X: width / 2}), test.ShouldBeFalse)

	// a point inside a finger's swept volume collides
	inside := r3.Vector{X: width/2 + pj.FingerThickness/2, Z: pj.FingerLength / 2}
	test.That(t, regions[1].ContainsPoint(inside), test.ShouldBeTrue)
	test.That(t, regions[0].ContainsPoint(inside), test.ShouldBeFalse)

	// nothing between the fingers collides
	test.That(t, regions[0].ContainsPoint(r3.Vector{}), test.ShouldBeFalse)
	test.That(t, regions[1].ContainsPoint(r3.Vector{}), test.ShouldBeFalse)
}
