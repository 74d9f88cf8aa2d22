package io

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/rotations/frames"
	"github.com/phil-mansfield/rotations/rotation"
)

const (
	ExampleRotateFile = `[Rotate]

#######################
# Required Parameters #
#######################

# Euler sequence, written in the order the rotations are applied. Accepted
# values are 313, 312, 321, and 123. R321(A, B, C) = R3(A) * R2(B) * R1(C).
Sequence = 321

# The three Euler angles.
A = 30
B = -45
C = 10

#######################
# Optional Parameters #
#######################

# Angles are read as degrees unless this is set to false.
# Degrees = true

# Also computes the sequence as an explicit product of elemental rotations
# and prints the largest difference between the two.
# Check = false`

	ExampleConvertFile = `[Convert]

#######################
# Optional Parameters #
#######################

# Local tangent-plane frame to print rotations for. Accepted values are NED
# and NWU. Default is NED.
# Frame = NED

# Whitespace-separated table of sites, one per line, in degrees and meters.
# SiteFile = path/to/sites.txt

# Zero-indexed columns of SiteFile holding latitude, longitude, and altitude.
# LatColumn = 0
# LonColumn = 1
# AltColumn = 2

# Sites may also be given individually. Any number of these sections may be
# supplied, but at least one site must be given in total.
[Site "greenwich"]
Lat = 51.4779
Lon = 0
Alt = 46`

	ExampleSweepFile = `[Sweep]

#######################
# Required Parameters #
#######################

# Euler sequence to sweep. See the Rotate config for accepted values.
Sequence = 313

# Fixed angles, in degrees. The swept angle's value here is ignored.
A = 0
B = 45
C = 30

# Which of A, B, or C is swept, and the (inclusive) range it is swept over.
SweepAngle = A
Start = -180
End = 180

# Name of the figure which the nine matrix elements are plotted to.
Output = sweep.png

#######################
# Optional Parameters #
#######################

# Number of samples in the sweep. Default is 361.
# Steps = 361`
)

type RotateConfig struct {
	// Required
	Sequence string
	A, B, C float64

	// Optional
	Degrees bool
	Check bool
}

type RotateWrapper struct {
	Rotate RotateConfig
}

func DefaultRotateWrapper() *RotateWrapper {
	con := RotateConfig{}
	con.Degrees = true
	return &RotateWrapper{con}
}

func (con *RotateConfig) ValidSequence() bool {
	_, err := rotation.ParseSequence(con.Sequence)
	return err == nil
}

// CheckInit returns an error describing the first invalid field of the
// config, if any.
func (con *RotateConfig) CheckInit() error {
	if !con.ValidSequence() {
		return fmt.Errorf("Invalid/non-existent 'Sequence' value, '%s'.",
			con.Sequence)
	}
	return nil
}

type SiteConfig struct {
	// Required
	Lat, Lon float64

	// Optional
	Alt float64
}

// CheckInit validates the site named name.
func (site *SiteConfig) CheckInit(name string) error {
	if err := frames.CheckLatitude(site.Lat, true); err != nil {
		return fmt.Errorf("Site '%s' is invalid: %w", name, err)
	}
	return nil
}

type ConvertConfig struct {
	// Optional
	Frame string
	SiteFile string
	LatColumn, LonColumn, AltColumn int
}

type ConvertWrapper struct {
	Convert ConvertConfig
	Site map[string]*SiteConfig
}

func DefaultConvertWrapper() *ConvertWrapper {
	con := ConvertConfig{}
	con.Frame = "NED"
	con.LatColumn, con.LonColumn, con.AltColumn = 0, 1, 2
	return &ConvertWrapper{Convert: con}
}

func (con *ConvertConfig) ValidFrame() bool {
	f, err := frames.ParseFrame(con.Frame)
	return err == nil && (f == frames.NED || f == frames.NWU)
}
func (con *ConvertConfig) ValidSiteFile() bool {
	return con.SiteFile != ""
}
func (con *ConvertConfig) ValidColumns() bool {
	cols := []int{con.LatColumn, con.LonColumn, con.AltColumn}
	for i, c := range cols {
		if c < 0 { return false }
		for j := 0; j < i; j++ {
			if cols[j] == c { return false }
		}
	}
	return true
}

// CheckInit returns an error describing the first invalid field of the
// config or any of its sites.
func (wrap *ConvertWrapper) CheckInit() error {
	con := &wrap.Convert
	if !con.ValidFrame() {
		return fmt.Errorf(
			"Invalid 'Frame' value, '%s'. Only NED and NWU are accepted.",
			con.Frame,
		)
	} else if !con.ValidColumns() {
		return fmt.Errorf(
			"'LatColumn', 'LonColumn', and 'AltColumn' must be distinct and " +
				"non-negative, but are %d, %d, and %d.",
			con.LatColumn, con.LonColumn, con.AltColumn,
		)
	} else if !con.ValidSiteFile() && len(wrap.Site) == 0 {
		return fmt.Errorf("Must supply a 'SiteFile' or at least one Site.")
	}

	for name, site := range wrap.Site {
		if err := site.CheckInit(name); err != nil { return err }
	}
	return nil
}

// Site is a named geodetic position in degrees and meters.
type Site struct {
	Name string
	Lat, Lon, Alt float64
}

// Sites returns every site in the config, starting with the [Site] sections
// in alphabetical order and followed by the rows of SiteFile.
func (wrap *ConvertWrapper) Sites() ([]Site, error) {
	names := []string{}
	for name := range wrap.Site { names = append(names, name) }
	sort.Strings(names)

	sites := []Site{}
	for _, name := range names {
		s := wrap.Site[name]
		sites = append(sites, Site{name, s.Lat, s.Lon, s.Alt})
	}

	if wrap.Convert.ValidSiteFile() {
		con := &wrap.Convert
		fileSites, err := ReadSiteTable(
			con.SiteFile, con.LatColumn, con.LonColumn, con.AltColumn,
		)
		if err != nil { return nil, err }
		sites = append(sites, fileSites...)
	}

	return sites, nil
}

type SweepConfig struct {
	// Required
	Sequence string
	A, B, C float64
	SweepAngle string
	Start, End float64
	Output string

	// Optional
	Steps int
}

type SweepWrapper struct {
	Sweep SweepConfig
}

func DefaultSweepWrapper() *SweepWrapper {
	con := SweepConfig{}
	con.Steps = 361
	return &SweepWrapper{con}
}

func (con *SweepConfig) ValidSequence() bool {
	_, err := rotation.ParseSequence(con.Sequence)
	return err == nil
}
func (con *SweepConfig) ValidSweepAngle() bool {
	return con.SweepIndex() >= 0
}
func (con *SweepConfig) ValidRange() bool {
	return con.End > con.Start
}
func (con *SweepConfig) ValidOutput() bool {
	return con.Output != ""
}
func (con *SweepConfig) ValidSteps() bool {
	return con.Steps >= 2
}

// SweepIndex returns 0, 1, or 2 for a SweepAngle of A, B, or C, and -1
// otherwise.
func (con *SweepConfig) SweepIndex() int {
	switch strings.ToUpper(strings.TrimSpace(con.SweepAngle)) {
	case "A":
		return 0
	case "B":
		return 1
	case "C":
		return 2
	}
	return -1
}

// CheckInit returns an error describing the first invalid field of the
// config, if any.
func (con *SweepConfig) CheckInit() error {
	if !con.ValidSequence() {
		return fmt.Errorf("Invalid/non-existent 'Sequence' value, '%s'.",
			con.Sequence)
	} else if !con.ValidSweepAngle() {
		return fmt.Errorf(
			"Invalid/non-existent 'SweepAngle' value, '%s'. Must be A, B, or C.",
			con.SweepAngle,
		)
	} else if !con.ValidRange() {
		return fmt.Errorf(
			"'End' (%g) must be larger than 'Start' (%g).", con.End, con.Start,
		)
	} else if !con.ValidOutput() {
		return fmt.Errorf("Invalid/non-existent 'Output' value.")
	} else if !con.ValidSteps() {
		return fmt.Errorf("'Steps' must be at least 2, but is %d.", con.Steps)
	}
	return nil
}

// Angles returns the Steps angle triples of the sweep, in degrees.
func (con *SweepConfig) Angles() [][3]float64 {
	idx := con.SweepIndex()
	out := make([][3]float64, con.Steps)
	dx := (con.End - con.Start) / float64(con.Steps - 1)
	for i := range out {
		out[i] = [3]float64{con.A, con.B, con.C}
		out[i][idx] = con.Start + dx*float64(i)
	}
	return out
}

// ReadRotateConfig reads and validates a [Rotate] config file.
func ReadRotateConfig(fname string) (*RotateConfig, error) {
	wrap := DefaultRotateWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.Rotate.CheckInit(); err != nil { return nil, err }
	return &wrap.Rotate, nil
}

// ReadConvertConfig reads and validates a [Convert] config file.
func ReadConvertConfig(fname string) (*ConvertWrapper, error) {
	wrap := DefaultConvertWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.CheckInit(); err != nil { return nil, err }
	return wrap, nil
}

// ReadSweepConfig reads and validates a [Sweep] config file.
func ReadSweepConfig(fname string) (*SweepConfig, error) {
	wrap := DefaultSweepWrapper()
	if err := gcfg.ReadFileInto(wrap, fname); err != nil { return nil, err }
	if err := wrap.Sweep.CheckInit(); err != nil { return nil, err }
	return &wrap.Sweep, nil
}
