/*package geom contains the small amount of vector arithmetic needed to apply
rotation matrices to positions.
*/
package geom

import (
	"math"

	"github.com/phil-mansfield/rotations/math/mat"
)

// Vec is a three dimensional vector.
type Vec [3]float64

// Rotate rotates a vector by the given 3x3 rotation matrix in place.
func (v *Vec) Rotate(m *mat.Matrix) {
	if m.Width != 3 || m.Height != 3 { panic("m is not 3x3.") }
	v0 := m.Vals[0]*v[0] + m.Vals[1]*v[1] + m.Vals[2]*v[2]
	v1 := m.Vals[3]*v[0] + m.Vals[4]*v[1] + m.Vals[5]*v[2]
	v2 := m.Vals[6]*v[0] + m.Vals[7]*v[1] + m.Vals[8]*v[2]
	v[0], v[1], v[2] = v0, v1, v2
}

// Rotated returns a copy of v rotated by m.
func (v Vec) Rotated(m *mat.Matrix) Vec {
	v.Rotate(m)
	return v
}

// Sub returns v1 - v2.
func (v1 Vec) Sub(v2 Vec) Vec {
	return Vec{v1[0] - v2[0], v1[1] - v2[1], v1[2] - v2[2]}
}

// Dot computes the inner product of v1 and v2.
func (v1 Vec) Dot(v2 Vec) float64 {
	return v1[0]*v2[0] + v1[1]*v2[1] + v1[2]*v2[2]
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 {
	return math.Sqrt(v.Dot(v))
}

// EpsEq returns true if every component of v1 is within eps of v2. A NaN
// component is never within eps of anything.
func (v1 Vec) EpsEq(v2 Vec, eps float64) bool {
	for i := 0; i < 3; i++ {
		if !(math.Abs(v1[i] - v2[i]) <= eps) { return false }
	}
	return true
}
