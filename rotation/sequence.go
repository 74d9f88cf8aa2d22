package rotation

import (
	"fmt"
	"strings"

	"github.com/phil-mansfield/rotations/math/mat"
)

// Sequence identifies a supported Euler angle sequence.
type Sequence int

const (
	Seq313 Sequence = iota
	Seq312
	Seq321
	Seq123
	EndSequence
)

var (
	sequenceNames = [EndSequence]string{"313", "312", "321", "123"}
	sequenceAxes = [EndSequence][3]int{
		{3, 1, 3}, {3, 1, 2}, {3, 2, 1}, {1, 2, 3},
	}
	sequenceFuncs = [EndSequence]func(a, b, c float64, degrees bool) *mat.Matrix{
		R313, R312, R321, R123,
	}
)

func (seq Sequence) valid() bool { return seq >= 0 && seq < EndSequence }

func (seq Sequence) String() string {
	if !seq.valid() { return fmt.Sprintf("Sequence(%d)", int(seq)) }
	return sequenceNames[seq]
}

// Axes returns the axis indices of the sequence in application order.
func (seq Sequence) Axes() [3]int {
	if !seq.valid() { panic(fmt.Sprintf("Unknown Euler sequence %d.", int(seq))) }
	return sequenceAxes[seq]
}

// ParseSequence converts a name like "321" or "R321" into a Sequence.
func ParseSequence(name string) (Sequence, error) {
	trimmed := strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(name)), "R")
	for seq := Sequence(0); seq < EndSequence; seq++ {
		if sequenceNames[seq] == trimmed { return seq, nil }
	}
	return 0, fmt.Errorf(
		"Unrecognized Euler sequence '%s'. Recognized sequences are %s.",
		name, strings.Join(sequenceNames[:], ", "),
	)
}

// Euler returns the closed-form rotation matrix for seq.
func Euler(seq Sequence, a, b, c float64, degrees bool) *mat.Matrix {
	if !seq.valid() { panic(fmt.Sprintf("Unknown Euler sequence %d.", int(seq))) }
	return sequenceFuncs[seq](a, b, c, degrees)
}

// Compose returns the explicit product of the three elemental rotations of
// seq. It agrees with Euler up to rounding and is slower.
func Compose(seq Sequence, a, b, c float64, degrees bool) *mat.Matrix {
	axes := seq.Axes()
	m := Elemental(axes[0], a, degrees)
	m = m.Mult(Elemental(axes[1], b, degrees))
	return m.Mult(Elemental(axes[2], c, degrees))
}
