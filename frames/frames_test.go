package frames

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phil-mansfield/rotations/geom"
	"github.com/phil-mansfield/rotations/math/mat"
	"github.com/phil-mansfield/rotations/rotation"
)

var sites = []struct{ lat, lon float64 } {
	{0, 0}, {90, 0}, {-90, 0}, {45, 45}, {-33.9, 151.2},
	{37.4, -122.1}, {64.1, -21.9}, {0, 180}, {-12.5, -77},
}

func TestEccentricity(t *testing.T) {
	// WGS-84 first eccentricity squared.
	e := Eccentricity()
	assert.InDelta(t, 6.69437999014e-3, e*e, 1e-12)
}

func TestLL2ECEF(t *testing.T) {
	table := []struct{
		lat, lon, alt float64
		x, y, z float64
	} {
		{0, 0, 0, SemiMajorAxis, 0, 0},
		{90, 0, 0, 0, 0, SemiMinorAxis},
		{-90, 0, 0, 0, 0, -SemiMinorAxis},
		{0, 90, 0, 0, SemiMajorAxis, 0},
		{0, 180, 1000, -SemiMajorAxis - 1000, 0, 0},
		{0, -90, 0, 0, -SemiMajorAxis, 0},
		{90, 0, 500, 0, 0, SemiMinorAxis + 500},
	}

	for i, test := range table {
		v := LL2ECEF(test.lat, test.lon, test.alt, true)
		if !v.EpsEq(geom.Vec{test.x, test.y, test.z}, 1e-6) {
			t.Errorf(
				"%d) LL2ECEF(%g, %g, %g) = %v instead of %v",
				i+1, test.lat, test.lon, test.alt, v,
				geom.Vec{test.x, test.y, test.z},
			)
		}
	}
}

func TestLL2ECEFRadians(t *testing.T) {
	deg := LL2ECEF(37.4, -122.1, 30, true)
	rad := LL2ECEF(37.4*rotation.Deg2Rad, -122.1*rotation.Deg2Rad, 30, false)
	assert.True(t, deg.EpsEq(rad, 1e-6), "%v != %v", deg, rad)
}

func TestLL2ECEFOnEllipsoid(t *testing.T) {
	a2, b2 := SemiMajorAxis*SemiMajorAxis, SemiMinorAxis*SemiMinorAxis
	for _, s := range sites {
		v := LL2ECEF(s.lat, s.lon, 0, true)
		r := (v[0]*v[0] + v[1]*v[1])/a2 + v[2]*v[2]/b2
		assert.InDelta(t, 1.0, r, 1e-12, "(%g, %g)", s.lat, s.lon)
	}
}

func TestLocalFramesAreRotations(t *testing.T) {
	for _, s := range sites {
		ned := ECEF2NED(s.lat, s.lon, true)
		nwu := LL2NWU(s.lat, s.lon, true)
		assert.True(t, ned.IsRotation(1e-9), "NED at (%g, %g)", s.lat, s.lon)
		assert.True(t, nwu.IsRotation(1e-9), "NWU at (%g, %g)", s.lat, s.lon)
	}
}

func TestNWUFlipsEastAndDown(t *testing.T) {
	for _, s := range sites {
		ned := ECEF2NED(s.lat, s.lon, true)
		nwu := LL2NWU(s.lat, s.lon, true)

		assert.Equal(t, ned.Row(0), nwu.Row(0), "north row at (%g, %g)", s.lat, s.lon)
		for row := 1; row < 3; row++ {
			for j := 0; j < 3; j++ {
				if nwu.At(row, j) != -ned.At(row, j) {
					t.Errorf(
						"NWU(%g, %g)[%d][%d] = %g, but NED has %g",
						s.lat, s.lon, row, j, nwu.At(row, j), ned.At(row, j),
					)
				}
			}
		}
	}
}

func TestNEDFromElementalRotations(t *testing.T) {
	// The NED axes are the ECEF axes turned by lon about z and then by
	// -(lat + 90) about the new y axis.
	approx := cmpopts.EquateApprox(0, 1e-12)
	for _, s := range sites {
		m := rotation.R3(s.lon, true).Mult(rotation.R2(-s.lat - 90, true))
		want := m.Transpose()
		got := ECEF2NED(s.lat, s.lon, true)
		if diff := cmp.Diff(want.Vals, got.Vals, approx); diff != "" {
			t.Errorf("ECEF2NED(%g, %g) (-want +got):\n%s", s.lat, s.lon, diff)
		}
	}
}

func TestNEDAxesAtOrigin(t *testing.T) {
	m := ECEF2NED(0, 0, true)
	// North is +z, East is +y, and Down is -x at (0, 0).
	want := mat.New3(
		0, 0, 1,
		0, 1, 0,
		-1, 0, 0,
	)
	assert.True(t, m.ApproxEqual(want, 1e-15), "\n%s", m)
}

func TestCheckLatitude(t *testing.T) {
	table := []struct{
		lat float64
		degrees, ok bool
	} {
		{0, true, true},
		{90, true, true},
		{-90, true, true},
		{90.001, true, false},
		{-180, true, false},
		{math.NaN(), true, false},
		{math.Inf(1), true, false},
		{math.Pi / 2, false, true},
		{1.6, false, false},
	}

	for i, test := range table {
		err := CheckLatitude(test.lat, test.degrees)
		if test.ok {
			assert.NoError(t, err, "%d) CheckLatitude(%g, %v)", i+1, test.lat, test.degrees)
		} else {
			assert.True(
				t, errors.Is(err, ErrInvalidArgument),
				"%d) CheckLatitude(%g, %v) = %v", i+1, test.lat, test.degrees, err,
			)
		}
	}
}

func TestUncheckedLatitudePropagates(t *testing.T) {
	v := LL2ECEF(math.NaN(), 0, 0, true)
	assert.True(t, math.IsNaN(v[0]))
	assert.True(t, math.IsNaN(v[2]))
	m := ECEF2NED(math.Inf(-1), 0, true)
	assert.True(t, math.IsNaN(m.At(0, 0)))
	require.NotPanics(t, func() { LL2NWU(120, 0, true) })
}
