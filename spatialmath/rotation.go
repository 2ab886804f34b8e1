package spatialmath

import (
	"math"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"
)

// R4AA represents an R4 axis angle: a rotation of Theta radians about the
// unit axis (RX, RY, RZ).
type R4AA struct {
	Theta float64
	RX    float64
	RY    float64
	RZ    float64
}

// ToQuat converts an R4 axis angle to a unit quaternion.
func (aa R4AA) ToQuat() quat.Number {
	sinHalf := math.Sin(aa.Theta / 2)
	return quat.Number{
		Real: math.Cos(aa.Theta / 2),
		Imag: sinHalf * aa.RX,
		Jmag: sinHalf * aa.RY,
		Kmag: sinHalf * aa.RZ,
	}
}

// QuatToR4AA converts a quat to an R4 axis angle in the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
func QuatToR4AA(q quat.Number) R4AA {
	denom := Norm(q)

	angle := 2 * math.Atan2(denom, math.Abs(q.Real))
	if q.Real < 0 {
		angle *= -1
	}

	if denom < 1e-6 {
		return R4AA{angle, 1, 0, 0}
	}
	return R4AA{angle, q.Imag / denom, q.Jmag / denom, q.Kmag / denom}
}

// Norm returns the norm of the quaternion, i.e. the sqrt of the squares of
// the imaginary parts.
func Norm(q quat.Number) float64 {
	return math.Sqrt(q.Imag*q.Imag + q.Jmag*q.Jmag + q.Kmag*q.Kmag)
}

// Normalize scales a quaternion to unit length. A zero quaternion
// normalizes to the identity rather than dividing by zero.
func Normalize(q quat.Number) quat.Number {
	length := quat.Abs(q)
	if length == 0 {
		return quat.Number{Real: 1}
	}
	return quat.Scale(1/length, q)
}

// Flip will multiply a quaternion by -1, returning a quaternion representing
// the same orientation but in the opposing octant.
func Flip(q quat.Number) quat.Number {
	return quat.Number{Real: -q.Real, Imag: -q.Imag, Jmag: -q.Jmag, Kmag: -q.Kmag}
}

// QuatAngle returns the geodesic rotation angle of a unit quaternion, in
// [0, pi]. Both q and -q describe the same rotation and yield the same angle.
func QuatAngle(q quat.Number) float64 {
	return 2 * math.Atan2(Norm(q), math.Abs(q.Real))
}

// AngleBetween returns the geodesic angle on SO(3) between two rotations:
// the magnitude of the relative rotation's axis angle. It is symmetric,
// satisfies the triangle inequality, and is zero iff the rotations are
// identical.
func AngleBetween(q1, q2 quat.Number) float64 {
	return math.Abs(QuatToR4AA(quat.Mul(q2, quat.Conj(q1))).Theta)
}

// QuaternionAlmostEqual checks if two quaternions describe nearly the same
// orientation, accounting for the double cover of rotation space.
func QuaternionAlmostEqual(a, b quat.Number, tol float64) bool {
	return quat.Abs(quat.Sub(a, b)) <= tol || quat.Abs(quat.Sub(a, Flip(b))) <= tol
}

// RotationAboutAxis returns the quaternion rotating by theta radians about
// the given axis. The axis need not be unit length.
func RotationAboutAxis(axis r3.Vector, theta float64) quat.Number {
	n := axis.Normalize()
	return R4AA{theta, n.X, n.Y, n.Z}.ToQuat()
}

// RotationBetweenVectors returns the minimal rotation mapping the direction
// of from onto the direction of to. Antiparallel inputs rotate pi about an
// arbitrary axis orthogonal to from. Zero-length inputs are an error since
// they define no direction.
func RotationBetweenVectors(from, to r3.Vector) (quat.Number, error) {
	if from.Norm() == 0 || to.Norm() == 0 {
		return quat.Number{}, errors.New("cannot compute rotation between zero-length vectors")
	}
	f := from.Normalize()
	t := to.Normalize()
	cos := f.Dot(t)
	if cos < -1+1e-9 {
		return RotationAboutAxis(anyOrthogonal(f), math.Pi), nil
	}
	cross := f.Cross(t)
	return Normalize(quat.Number{Real: 1 + cos, Imag: cross.X, Jmag: cross.Y, Kmag: cross.Z}), nil
}

// anyOrthogonal picks a vector orthogonal to v by crossing it with the
// basis axis it is least aligned with.
func anyOrthogonal(v r3.Vector) r3.Vector {
	basis := r3.Vector{X: 1}
	if math.Abs(v.X) > math.Abs(v.Y) {
		basis = r3.Vector{Y: 1}
	}
	return v.Cross(basis)
}
