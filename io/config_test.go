package io

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gcfg.v1"

	"github.com/phil-mansfield/rotations/frames"
)

func writeFile(t *testing.T, name, body string) string {
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(body), 0644))
	return fname
}

func TestExampleConfigsParse(t *testing.T) {
	rot := DefaultRotateWrapper()
	require.NoError(t, gcfg.ReadStringInto(rot, ExampleRotateFile))
	assert.NoError(t, rot.Rotate.CheckInit())
	assert.Equal(t, "321", rot.Rotate.Sequence)
	assert.Equal(t, []float64{30, -45, 10},
		[]float64{rot.Rotate.A, rot.Rotate.B, rot.Rotate.C})
	assert.True(t, rot.Rotate.Degrees)
	assert.False(t, rot.Rotate.Check)

	conv := DefaultConvertWrapper()
	require.NoError(t, gcfg.ReadStringInto(conv, ExampleConvertFile))
	assert.NoError(t, conv.CheckInit())
	require.Contains(t, conv.Site, "greenwich")
	assert.Equal(t, 51.4779, conv.Site["greenwich"].Lat)
	assert.Equal(t, "NED", conv.Convert.Frame)

	sweep := DefaultSweepWrapper()
	require.NoError(t, gcfg.ReadStringInto(sweep, ExampleSweepFile))
	assert.NoError(t, sweep.Sweep.CheckInit())
	assert.Equal(t, 361, sweep.Sweep.Steps)
	assert.Equal(t, 0, sweep.Sweep.SweepIndex())
}

func TestRotateCheckInit(t *testing.T) {
	table := []struct{
		sequence string
		ok bool
	} {
		{"313", true}, {"R321", true}, {"123", true}, {"312", true},
		{"", false}, {"231", false}, {"xyz", false},
	}

	for i, test := range table {
		con := RotateConfig{Sequence: test.sequence}
		if err := con.CheckInit(); (err == nil) != test.ok {
			t.Errorf("%d) Sequence = '%s' gave error %v", i+1, test.sequence, err)
		}
	}
}

func TestReadRotateConfig(t *testing.T) {
	fname := writeFile(t, "rot.ini", `[Rotate]
Sequence = 313
A = 1
B = 2
C = 3
Degrees = false
Check = true`)

	con, err := ReadRotateConfig(fname)
	require.NoError(t, err)
	assert.False(t, con.Degrees)
	assert.True(t, con.Check)
	assert.Equal(t, 3.0, con.C)

	fname = writeFile(t, "bad.ini", "[Rotate]\nSequence = 999\n")
	_, err = ReadRotateConfig(fname)
	assert.Error(t, err)

	_, err = ReadRotateConfig(filepath.Join(t.TempDir(), "missing.ini"))
	assert.Error(t, err)
}

func TestConvertCheckInit(t *testing.T) {
	wrap := DefaultConvertWrapper()
	assert.Error(t, wrap.CheckInit(), "no sites")

	wrap.Site = map[string]*SiteConfig{"a": {Lat: 10, Lon: 20}}
	assert.NoError(t, wrap.CheckInit())

	wrap.Convert.Frame = "ecef"
	assert.Error(t, wrap.CheckInit(), "ECEF is not a local frame")
	wrap.Convert.Frame = "nwu"
	assert.NoError(t, wrap.CheckInit())

	wrap.Convert.AltColumn = 1
	assert.Error(t, wrap.CheckInit(), "duplicate columns")
	wrap.Convert.AltColumn = 2

	wrap.Site["b"] = &SiteConfig{Lat: 95}
	err := wrap.CheckInit()
	assert.True(t, errors.Is(err, frames.ErrInvalidArgument), "%v", err)
}

func TestSweepCheckInit(t *testing.T) {
	valid := func() *SweepConfig {
		con := &DefaultSweepWrapper().Sweep
		con.Sequence, con.SweepAngle, con.Output = "321", "b", "out.png"
		con.Start, con.End = -90, 90
		return con
	}
	require.NoError(t, valid().CheckInit())

	table := []func(*SweepConfig){
		func(con *SweepConfig) { con.Sequence = "" },
		func(con *SweepConfig) { con.SweepAngle = "D" },
		func(con *SweepConfig) { con.End = con.Start },
		func(con *SweepConfig) { con.Output = "" },
		func(con *SweepConfig) { con.Steps = 1 },
	}
	for i, breakIt := range table {
		con := valid()
		breakIt(con)
		assert.Error(t, con.CheckInit(), "%d)", i+1)
	}
}

func TestSweepAngles(t *testing.T) {
	con := SweepConfig{A: 1, B: 2, C: 3, SweepAngle: "C", Start: -10, End: 10, Steps: 5}
	angles := con.Angles()
	require.Len(t, angles, 5)
	for i, want := range []float64{-10, -5, 0, 5, 10} {
		assert.Equal(t, [3]float64{1, 2, want}, angles[i], "%d)", i+1)
	}
}

func TestSites(t *testing.T) {
	tableFile := writeFile(t, "sites.txt",
		"0 0 0 45.0\n" +
		"1 10.5 -20.25 30\n")

	fname := writeFile(t, "convert.ini", `[Convert]
Frame = NWU
SiteFile = ` + tableFile + `
LatColumn = 3
LonColumn = 1
AltColumn = 2

[Site "zeta"]
Lat = -10
Lon = 5

[Site "alpha"]
Lat = 20
Lon = 30
Alt = 40`)

	wrap, err := ReadConvertConfig(fname)
	require.NoError(t, err)
	sites, err := wrap.Sites()
	require.NoError(t, err)
	require.Len(t, sites, 4)

	assert.Equal(t, Site{"alpha", 20, 30, 40}, sites[0])
	assert.Equal(t, Site{"zeta", -10, 5, 0}, sites[1])
	assert.Equal(t, 45.0, sites[2].Lat)
	assert.Equal(t, 30.0, sites[3].Lat)
	assert.Equal(t, 10.5, sites[3].Lon)
	assert.Equal(t, -20.25, sites[3].Alt)
}

func TestReadSiteTableRejectsLatitude(t *testing.T) {
	fname := writeFile(t, "sites.txt", "10 20 0\n100 20 0\n")
	_, err := ReadSiteTable(fname, 0, 1, 2)
	assert.True(t, errors.Is(err, frames.ErrInvalidArgument), "%v", err)
}
