// Package spatialmath implements the rigid transform math used to express,
// compose, and compare grasp poses.
package spatialmath

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// Pose is a rigid transform in 3D space, backed by a unit dual quaternion.
// Poses are immutable values; all operations return new Poses. The zero
// value is not a valid Pose, use one of the constructors.
type Pose struct {
	dq dualquat.Number
}

// NewZeroPose returns the identity pose: no translation, no rotation.
func NewZeroPose() Pose {
	return Pose{dualquat.Number{Real: quat.Number{Real: 1}}}
}

// NewPose returns a pose with the given translation and rotation. The
// rotation quaternion is normalized so that drift accumulated while
// composing many poses never yields an improper rotation.
func NewPose(pt r3.Vector, rot quat.Number) Pose {
	p := Pose{dualquat.Number{Real: Normalize(rot)}}
	return p.withTranslation(pt)
}

// NewPoseFromPoint returns a pose with the given translation and no rotation.
func NewPoseFromPoint(pt r3.Vector) Pose {
	return NewPose(pt, quat.Number{Real: 1})
}

// NewPoseFromAxisAngle returns a pose with the given translation, rotated by
// theta radians about the given axis.
func NewPoseFromAxisAngle(pt, axis r3.Vector, theta float64) Pose {
	return NewPose(pt, RotationAboutAxis(axis, theta))
}

// withTranslation sets the dual part against the (already unit) real part.
func (p Pose) withTranslation(pt r3.Vector) Pose {
	p.dq.Dual = quat.Mul(quat.Number{Imag: pt.X / 2, Jmag: pt.Y / 2, Kmag: pt.Z / 2}, p.dq.Real)
	return p
}

// Point returns the translation component of the pose.
func (p Pose) Point() r3.Vector {
	// Multiplying by the conjugate leaves an identity real part and a dual
	// part holding the full translation.
	t := dualquat.Mul(p.dq, dualquat.Conj(p.dq))
	return r3.Vector{X: t.Dual.Imag, Y: t.Dual.Jmag, Z: t.Dual.Kmag}
}

// Rotation returns the rotation component of the pose as a unit quaternion.
func (p Pose) Rotation() quat.Number {
	return p.dq.Real
}

// TransformPoint applies the pose to a point in space.
func (p Pose) TransformPoint(pt r3.Vector) r3.Vector {
	r := p.dq.Real
	rotated := quat.Mul(quat.Mul(r, quat.Number{Imag: pt.X, Jmag: pt.Y, Kmag: pt.Z}), quat.Conj(r))
	return r3.Vector{X: rotated.Imag, Y: rotated.Jmag, Z: rotated.Kmag}.Add(p.Point())
}

// Compose returns the pose equivalent to applying b first, then a. The
// result is renormalized to stay a rigid transform.
func Compose(a, b Pose) Pose {
	composed := dualquat.Mul(a.dq, b.dq)
	if vecLen := quat.Abs(composed.Real); vecLen != 1 {
		composed.Real = quat.Scale(1/vecLen, composed.Real)
		composed.Dual = quat.Scale(1/vecLen, composed.Dual)
	}
	return Pose{composed}
}

// PoseInverse returns the pose that undoes the given pose. For a unit dual
// quaternion the inverse is the quaternion conjugate of both parts.
func PoseInverse(p Pose) Pose {
	return Pose{dualquat.ConjQuat(p.dq)}
}

// PoseBetween returns the pose of b relative to a, i.e. the pose x such
// that Compose(a, x) equals b.
func PoseBetween(a, b Pose) Pose {
	return Compose(PoseInverse(a), b)
}

// PoseAlmostCoincident returns whether two poses have nearly identical
// translation and rotation, within epsilon.
func PoseAlmostCoincident(a, b Pose, epsilon float64) bool {
	return a.Point().Sub(b.Point()).Norm() <= epsilon &&
		QuaternionAlmostEqual(a.Rotation(), b.Rotation(), epsilon)
}
