package frames

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phil-mansfield/rotations/geom"
	"github.com/phil-mansfield/rotations/math/mat"
	"github.com/phil-mansfield/rotations/rotation"
)

// Frame names the reference frame a vector's components are expressed in.
type Frame int

const (
	ECEF Frame = iota
	NED
	NWU
	// Geodetic "vectors" hold latitude and longitude in degrees and altitude
	// in meters. They are positions, not vectors, and cannot be rotated.
	Geodetic
	Body
	EndFrame
)

var (
	frameNames = [EndFrame]string{"ECEF", "NED", "NWU", "Geodetic", "Body"}

	// ErrFrameMismatch is wrapped by errors returned when a value in one
	// frame is handed to an operation expecting another.
	ErrFrameMismatch = errors.New("frame mismatch")
)

func (f Frame) String() string {
	if f < 0 || f >= EndFrame { return fmt.Sprintf("Frame(%d)", int(f)) }
	return frameNames[f]
}

// ParseFrame converts a case-insensitive frame name into a Frame.
func ParseFrame(name string) (Frame, error) {
	for f := Frame(0); f < EndFrame; f++ {
		if strings.EqualFold(frameNames[f], strings.TrimSpace(name)) {
			return f, nil
		}
	}
	return 0, fmt.Errorf(
		"%w: unrecognized frame '%s', recognized frames are %s",
		ErrInvalidArgument, name, strings.Join(frameNames[:], ", "),
	)
}

// Position is a vector tagged with the frame its components are in.
type Position struct {
	Frame Frame
	Vec geom.Vec
}

// NewGeodetic returns a Geodetic position after checking that the latitude
// (in degrees) is in range.
func NewGeodetic(lat, lon, alt float64) (Position, error) {
	if err := CheckLatitude(lat, true); err != nil {
		return Position{}, err
	}
	return Position{Geodetic, geom.Vec{lat, lon, alt}}, nil
}

// ToECEF converts a Geodetic position to an ECEF one. ECEF positions are
// returned unchanged.
func (p Position) ToECEF() (Position, error) {
	switch p.Frame {
	case ECEF:
		return p, nil
	case Geodetic:
		return Position{ECEF, LL2ECEF(p.Vec[0], p.Vec[1], p.Vec[2], true)}, nil
	}
	return Position{}, fmt.Errorf(
		"%w: cannot convert a %s position to ECEF without a reference site",
		ErrFrameMismatch, p.Frame,
	)
}

// Transform is a rotation between two frames. The zero Transform has no
// matrix and is rejected by Apply and Then.
type Transform struct {
	From, To Frame
	M *mat.Matrix
}

// NEDTransform returns the ECEF -> NED rotation at a site.
func NEDTransform(lat, lon float64, degrees bool) Transform {
	return Transform{ECEF, NED, ECEF2NED(lat, lon, degrees)}
}

// NWUTransform returns the ECEF -> NWU rotation at a site.
func NWUTransform(lat, lon float64, degrees bool) Transform {
	return Transform{ECEF, NWU, LL2NWU(lat, lon, degrees)}
}

// BodyTransform returns the Body -> NED rotation of a vehicle whose attitude
// is given by the Euler angles a, b, and c of seq. For Seq321 these are yaw,
// pitch, and roll.
func BodyTransform(
	seq rotation.Sequence, a, b, c float64, degrees bool,
) Transform {
	return Transform{Body, NED, rotation.Euler(seq, a, b, c, degrees)}
}

func (tr Transform) checkMatrix() error {
	if tr.M == nil {
		return fmt.Errorf(
			"%w: %s -> %s transform has no rotation matrix",
			ErrInvalidArgument, tr.From, tr.To,
		)
	}
	return nil
}

// Apply rotates p into tr.To. p must be in tr.From.
func (tr Transform) Apply(p Position) (Position, error) {
	if err := tr.checkMatrix(); err != nil {
		return Position{}, err
	} else if p.Frame != tr.From {
		return Position{}, fmt.Errorf(
			"%w: %s -> %s transform applied to a %s vector",
			ErrFrameMismatch, tr.From, tr.To, p.Frame,
		)
	}
	return Position{tr.To, p.Vec.Rotated(tr.M)}, nil
}

// Inverse returns the transform from tr.To back to tr.From.
func (tr Transform) Inverse() Transform {
	if tr.M == nil { return Transform{tr.To, tr.From, nil} }
	return Transform{tr.To, tr.From, tr.M.Transpose()}
}

// Then returns the transform which applies tr and then next. next.From must
// equal tr.To.
func (tr Transform) Then(next Transform) (Transform, error) {
	if err := tr.checkMatrix(); err != nil {
		return Transform{}, err
	} else if err := next.checkMatrix(); err != nil {
		return Transform{}, err
	} else if tr.To != next.From {
		return Transform{}, fmt.Errorf(
			"%w: cannot follow a %s -> %s transform with a %s -> %s transform",
			ErrFrameMismatch, tr.From, tr.To, next.From, next.To,
		)
	}
	return Transform{tr.From, next.To, next.M.Mult(tr.M)}, nil
}

// Local returns the position of target relative to site, expressed in the
// site's local tangent-plane frame. local must be NED or NWU. site and target
// may be either Geodetic or ECEF.
func Local(site, target Position, local Frame) (Position, error) {
	if site.Frame != Geodetic {
		return Position{}, fmt.Errorf(
			"%w: site must be Geodetic, not %s", ErrFrameMismatch, site.Frame,
		)
	}

	var tr Transform
	switch local {
	case NED:
		tr = NEDTransform(site.Vec[0], site.Vec[1], true)
	case NWU:
		tr = NWUTransform(site.Vec[0], site.Vec[1], true)
	default:
		return Position{}, fmt.Errorf(
			"%w: local frame must be NED or NWU, not %s",
			ErrInvalidArgument, local,
		)
	}

	ref, err := site.ToECEF()
	if err != nil { return Position{}, err }
	pt, err := target.ToECEF()
	if err != nil { return Position{}, err }

	return tr.Apply(Position{ECEF, pt.Vec.Sub(ref.Vec)})
}
