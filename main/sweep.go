package main

import (
	"fmt"
	"log"

	plt "github.com/phil-mansfield/pyplot"

	"github.com/phil-mansfield/rotations/io"
	"github.com/phil-mansfield/rotations/rotation"
)

var (
	rowColors = []string{"DarkSlateBlue", "DeepPink", "DarkTurquoise"}
	colStyles = []string{"-", "--", ":"}
	angleNames = []string{"A", "B", "C"}
)

// sweepSeries returns the swept angle and the nine matrix elements of seq
// at each step of the sweep. elems[i*3 + j] holds element (i, j).
func sweepSeries(
	seq rotation.Sequence, con *io.SweepConfig,
) (xs []float64, elems [9][]float64) {
	angles := con.Angles()
	idx := con.SweepIndex()

	xs = make([]float64, len(angles))
	for k := range elems { elems[k] = make([]float64, len(angles)) }

	for i, abc := range angles {
		xs[i] = abc[idx]
		m := rotation.Euler(seq, abc[0], abc[1], abc[2], true)
		for k := range elems { elems[k][i] = m.Vals[k] }
	}
	return xs, elems
}

func sweepMain(con *io.SweepConfig) {
	seq, err := rotation.ParseSequence(con.Sequence)
	if err != nil { log.Fatal(err.Error()) }

	xs, elems := sweepSeries(seq, con)
	idx := con.SweepIndex()

	plt.Figure(plt.FigSize(8, 8))
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			plt.Plot(xs, elems[i*3 + j], colStyles[j],
				plt.C(rowColors[i]), plt.LW(2))
		}
	}

	plt.Title(fmt.Sprintf(
		`$R_{%s}$: A = %g, B = %g, C = %g`, seq, con.A, con.B, con.C),
	)
	plt.XLabel(fmt.Sprintf(`$%s$ [deg]`, angleNames[idx]), plt.FontSize(16))
	plt.YLabel(`$R_{ij}$`, plt.FontSize(16))
	plt.XLim(con.Start, con.End)
	plt.YLim(-1.05, +1.05)
	plt.Grid(plt.Axis("y"))
	plt.Grid(plt.Axis("x"), plt.Which("both"))
	plt.SaveFig(con.Output)

	log.Printf("Plotting %d steps of R%s to %s.", len(xs), seq, con.Output)
	plt.Execute()
}
