/*package frames converts geodetic positions to Earth-centered Cartesian
coordinates and builds the rotations into local tangent-plane frames.

Latitude and longitude are in degrees unless degrees is false, in which case
they are in radians. Altitudes and Cartesian positions are in meters.
*/
package frames

import (
	"errors"
	"fmt"
	"math"

	"github.com/phil-mansfield/rotations/geom"
	"github.com/phil-mansfield/rotations/math/mat"
	"github.com/phil-mansfield/rotations/rotation"
)

// WGS-84 ellipsoid.
const (
	SemiMajorAxis = 6378137.0
	SemiMinorAxis = 6356752.314245
)

var (
	// ErrInvalidArgument is wrapped by every error caused by an input
	// which is outside the domain of a checked function.
	ErrInvalidArgument = errors.New("invalid argument")
)

// Eccentricity returns the first eccentricity of the ellipsoid.
func Eccentricity() float64 {
	r := SemiMinorAxis / SemiMajorAxis
	return math.Sqrt(1 - r*r)
}

func toRadians(lat, lon float64, degrees bool) (float64, float64) {
	if degrees { return lat * rotation.Deg2Rad, lon * rotation.Deg2Rad }
	return lat, lon
}

// CheckLatitude returns an error if lat is not a finite value in
// [-90, 90] degrees ([-pi/2, pi/2] radians).
func CheckLatitude(lat float64, degrees bool) error {
	limit := 90.0
	if !degrees { limit = math.Pi / 2 }
	if math.IsNaN(lat) || math.Abs(lat) > limit {
		return fmt.Errorf(
			"%w: latitude %g must be in range [%g, %g]",
			ErrInvalidArgument, lat, -limit, limit,
		)
	}
	return nil
}

// LL2ECEF converts a geodetic latitude, longitude, and altitude above the
// ellipsoid into an Earth-centered, Earth-fixed position.
func LL2ECEF(lat, lon, alt float64, degrees bool) geom.Vec {
	lat, lon = toRadians(lat, lon, degrees)

	e2 := Eccentricity()
	e2 *= e2
	sLat, cLat := math.Sincos(lat)
	sLon, cLon := math.Sincos(lon)

	// Prime vertical radius of curvature.
	n := SemiMajorAxis / math.Sqrt(1 - e2*sLat*sLat)
	f := (n + alt) * cLat

	return geom.Vec{
		f * cLon,
		f * sLon,
		(n*(1 - e2) + alt) * sLat,
	}
}

// ECEF2NED returns the rotation which takes a vector with ECEF components to
// its components in the North-East-Down frame at the given latitude and
// longitude. Positions transform as Pned = R (Pecef - Pref).
func ECEF2NED(lat, lon float64, degrees bool) *mat.Matrix {
	lat, lon = toRadians(lat, lon, degrees)
	sLat, cLat := math.Sincos(lat)
	sLon, cLon := math.Sincos(lon)

	return mat.New3(
		-sLat*cLon, -sLat*sLon, cLat,
		-sLon, cLon, 0,
		-cLat*cLon, -cLat*sLon, -sLat,
	)
}

// LL2NWU returns the rotation which takes a vector with ECEF components to
// its components in the North-West-Up frame at the given latitude and
// longitude. Its rows are the rows of ECEF2NED with East and Down negated.
func LL2NWU(lat, lon float64, degrees bool) *mat.Matrix {
	m := ECEF2NED(lat, lon, degrees)
	for i := 3; i < 9; i++ { m.Vals[i] = -m.Vals[i] }
	return m
}
