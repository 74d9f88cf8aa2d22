package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/phil-mansfield/rotations/frames"
	"github.com/phil-mansfield/rotations/io"
	"github.com/phil-mansfield/rotations/math/mat"
	"github.com/phil-mansfield/rotations/rotation"
)

func main() {
	var (
		rotate, convert, sweep string
		exampleConfig string
	)
	vars := map[string]*string {
		"Rotate": &rotate,
		"Convert": &convert,
		"Sweep": &sweep,
		"ExampleConfig": &exampleConfig,
	}

	flag.StringVar(
		&rotate, "Rotate", "",
		"Configuration file for [Rotate] mode.",
	)
	flag.StringVar(
		&convert, "Convert", "",
		"Configuration file for [Convert] mode.",
	)
	flag.StringVar(
		&sweep, "Sweep", "",
		"Configuration file for [Sweep] mode.",
	)
	flag.StringVar(
		&exampleConfig,
		"ExampleConfig", "", "Prints an example configuration file of the " +
			"specified type to stdout. Accepted arguments are 'Rotate', " +
			"'Convert', and 'Sweep'.",
	)

	flag.Parse()

	modeName, err := getModeName(vars)
	if err != nil { log.Fatal(err.Error()) }

	switch modeName {
	case "Rotate":
		con, err := io.ReadRotateConfig(rotate)
		if err != nil { log.Fatal(err.Error()) }
		rotateMain(con)
	case "Convert":
		wrap, err := io.ReadConvertConfig(convert)
		if err != nil { log.Fatal(err.Error()) }
		convertMain(wrap)
	case "Sweep":
		con, err := io.ReadSweepConfig(sweep)
		if err != nil { log.Fatal(err.Error()) }
		sweepMain(con)
	case "ExampleConfig":
		switch exampleConfig {
		case "Rotate":
			fmt.Println(io.ExampleRotateFile)
		case "Convert":
			fmt.Println(io.ExampleConvertFile)
		case "Sweep":
			fmt.Println(io.ExampleSweepFile)
		default:
			log.Fatal(
				"Unrecognized 'ExampleConfig' argument. Only recognized " +
					"arguments are 'Rotate', 'Convert', and 'Sweep'.",
			)
		}
	default:
		panic("Impossible")
	}
}

func getModeName(vars map[string]*string) (string, error) {
	setNames := []string{}

	for name, varPtr := range vars {
		if *varPtr != "" { setNames = append(setNames, name) }
	}

	if len(setNames) == 0 {
		return "", fmt.Errorf("No flags have been set.")
	}

	if len(setNames) > 1 {
		return "", fmt.Errorf(
			"The following flags were set: %s, but rotations " +
				"only accepts one flag at a time.",
			strings.Join(setNames, ", "),
		)
	}

	return setNames[0], nil
}

func rotateMain(con *io.RotateConfig) {
	seq, err := rotation.ParseSequence(con.Sequence)
	if err != nil { log.Fatal(err.Error()) }

	m := rotation.Euler(seq, con.A, con.B, con.C, con.Degrees)
	fmt.Printf("R%s(%g, %g, %g):\n%s\n", seq, con.A, con.B, con.C, m)

	if con.Check {
		p := rotation.Compose(seq, con.A, con.B, con.C, con.Degrees)
		fmt.Printf("Explicit product:\n%s\n", p)
		fmt.Printf("Max difference: %.3g\n", maxDiff(m, p))
		if !m.IsRotation(1e-9) {
			log.Printf("R%s(%g, %g, %g) is not a proper rotation.",
				seq, con.A, con.B, con.C)
		}
	}
}

func maxDiff(m1, m2 *mat.Matrix) float64 {
	max := 0.0
	for i := range m1.Vals {
		max = math.Max(max, math.Abs(m1.Vals[i] - m2.Vals[i]))
	}
	return max
}

func convertMain(wrap *io.ConvertWrapper) {
	local, err := frames.ParseFrame(wrap.Convert.Frame)
	if err != nil { log.Fatal(err.Error()) }

	sites, err := wrap.Sites()
	if err != nil { log.Fatal(err.Error()) }
	log.Printf("Converting %d sites.", len(sites))

	for _, site := range sites {
		p, err := frames.NewGeodetic(site.Lat, site.Lon, site.Alt)
		if err != nil { log.Fatal(err.Error()) }
		ecef, err := p.ToECEF()
		if err != nil { log.Fatal(err.Error()) }

		var tr frames.Transform
		if local == frames.NWU {
			tr = frames.NWUTransform(site.Lat, site.Lon, true)
		} else {
			tr = frames.NEDTransform(site.Lat, site.Lon, true)
		}

		fmt.Printf(
			"# %s: lat = %g, lon = %g, alt = %g\n",
			site.Name, site.Lat, site.Lon, site.Alt,
		)
		fmt.Printf("ECEF: %.4f %.4f %.4f\n", ecef.Vec[0], ecef.Vec[1], ecef.Vec[2])
		fmt.Printf("%s -> %s:\n%s\n", tr.From, tr.To, tr.M)
	}
}
