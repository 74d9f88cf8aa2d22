/*package rotation computes 3D rotation matrices from elemental rotations and
from three-angle Euler sequences.

Every matrix in this package uses the same convention: active, right-handed
rotations acting on column vectors. R3(a) turns the x axis towards the y axis
by a, so R3(pi/2) * (1, 0, 0) = (0, 1, 0). Read the other way, Rk(a) maps the
components of a vector in a frame which has been rotated by a about axis k
into the components of that vector in the original frame. The transpose of
any matrix returned here is the passive (frame rotation) matrix.

Euler sequences are intrinsic and are written in the order the angles are
applied: R321(a, b, c) is R3(a) * R2(b) * R1(c), a rotation by a about z,
then by b about the new y axis, then by c about the newest x axis. The
composite functions are expanded into closed form rather than computed as
three matrix products, but their results are the same to within
floating-point rounding. Compose computes the explicit product.

Angles are in radians unless degrees is true. No wrapping is applied, and
NaN or Inf inputs propagate into the output without complaint.
*/
package rotation

import (
	"math"

	"github.com/phil-mansfield/rotations/math/mat"
)

const (
	Deg2Rad = math.Pi / 180
	Rad2Deg = 180 / math.Pi
)

func toRadians(a float64, degrees bool) float64 {
	if degrees { return a * Deg2Rad }
	return a
}

// R1 returns the rotation by a about the x axis.
func R1(a float64, degrees bool) *mat.Matrix {
	sa, ca := math.Sincos(toRadians(a, degrees))
	return mat.New3(
		1, 0, 0,
		0, ca, -sa,
		0, sa, ca,
	)
}

// R2 returns the rotation by a about the y axis.
func R2(a float64, degrees bool) *mat.Matrix {
	sa, ca := math.Sincos(toRadians(a, degrees))
	return mat.New3(
		ca, 0, sa,
		0, 1, 0,
		-sa, 0, ca,
	)
}

// R3 returns the rotation by a about the z axis.
func R3(a float64, degrees bool) *mat.Matrix {
	sa, ca := math.Sincos(toRadians(a, degrees))
	return mat.New3(
		ca, -sa, 0,
		sa, ca, 0,
		0, 0, 1,
	)
}

// Elemental returns R1, R2, or R3 for axis = 1, 2, or 3, respectively. Any
// other axis is a programming error and causes a panic.
func Elemental(axis int, a float64, degrees bool) *mat.Matrix {
	switch axis {
	case 1:
		return R1(a, degrees)
	case 2:
		return R2(a, degrees)
	case 3:
		return R3(a, degrees)
	}
	panic("axis must be 1, 2, or 3.")
}

// sincos3 converts all three Euler angles with the same unit flag and
// returns their sines and cosines.
func sincos3(a, b, c float64, degrees bool) (s1, c1, s2, c2, s3, c3 float64) {
	s1, c1 = math.Sincos(toRadians(a, degrees))
	s2, c2 = math.Sincos(toRadians(b, degrees))
	s3, c3 = math.Sincos(toRadians(c, degrees))
	return s1, c1, s2, c2, s3, c3
}

// R313 returns R3(a) * R1(b) * R3(c), the classical z-x-z sequence used for
// orbital elements.
func R313(a, b, c float64, degrees bool) *mat.Matrix {
	s1, c1, s2, c2, s3, c3 := sincos3(a, b, c, degrees)
	return mat.New3(
		c1*c3 - c2*s1*s3, -c1*s3 - c2*c3*s1, s1*s2,
		c3*s1 + c1*c2*s3, c1*c2*c3 - s1*s3, -c1*s2,
		s2*s3, c3*s2, c2,
	)
}

// R312 returns R3(a) * R1(b) * R2(c).
func R312(a, b, c float64, degrees bool) *mat.Matrix {
	s1, c1, s2, c2, s3, c3 := sincos3(a, b, c, degrees)
	return mat.New3(
		c1*c3 - s1*s2*s3, -c2*s1, c1*s3 + c3*s1*s2,
		c3*s1 + c1*s2*s3, c1*c2, s1*s3 - c1*c3*s2,
		-c2*s3, s2, c2*c3,
	)
}

// R321 returns R3(a) * R2(b) * R1(c): yaw a, then pitch b, then roll c.
func R321(a, b, c float64, degrees bool) *mat.Matrix {
	s1, c1, s2, c2, s3, c3 := sincos3(a, b, c, degrees)
	return mat.New3(
		c1*c2, c1*s2*s3 - c3*s1, s1*s3 + c1*c3*s2,
		c2*s1, c1*c3 + s1*s2*s3, c3*s1*s2 - c1*s3,
		-s2, c2*s3, c2*c3,
	)
}

// R123 returns R1(a) * R2(b) * R3(c).
func R123(a, b, c float64, degrees bool) *mat.Matrix {
	s1, c1, s2, c2, s3, c3 := sincos3(a, b, c, degrees)
	return mat.New3(
		c2*c3, -c2*s3, s2,
		c1*s3 + c3*s1*s2, c1*c3 - s1*s2*s3, -c2*s1,
		s1*s3 - c1*c3*s2, c3*s1 + c1*s2*s3, c1*c2,
	)
}
