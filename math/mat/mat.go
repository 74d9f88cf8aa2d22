/*mat contains routines for executing operations on small dense matrices.
Operations are split into easy to use methods which allocate their output and
slightly less easy to use *At methods which write into a matrix supplied by
the caller.

Everything here is written with 3x3 rotation matrices in mind, but nothing
other than the helper constructors depends on that size.
*/
package mat

import (
	"fmt"
	"math"
	"strings"
)

// Matrix represents a row-major matrix of float64 values.
type Matrix struct {
	Vals []float64
	Width, Height int
}

// LUFactors contains the data fields neccessary for computing determinants
// and inverses. Exporting this type allows callers to reuse a decomposition.
type LUFactors struct {
	lu Matrix
	pivot []int
	d float64
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width * height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// New3 creates a 3x3 matrix from its nine row-major entries.
func New3(
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 float64,
) *Matrix {
	return NewMatrix([]float64{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}, 3, 3)
}

// Identity returns the n x n identity matrix.
func Identity(n int) *Matrix {
	m := NewMatrix(make([]float64, n*n), n, n)
	for i := 0; i < n; i++ { m.Vals[i*n + i] = 1 }
	return m
}

// At returns the value in row i and column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Vals[i*m.Width + j]
}

// Row returns a copy of the ith row.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.Width)
	copy(row, m.Vals[i*m.Width:(i + 1)*m.Width])
	return row
}

// Mult multiplies two matrices together.
func (m1 *Matrix) Mult(m2 *Matrix) *Matrix {
	h, w := m1.Height, m2.Width
	out := NewMatrix(make([]float64, h*w), w, h)
	return m1.MultAt(m2, out)
}

// MultAt multiplies two matrices together and writes the result to the
// specified matrix. out may not share memory with m1 or m2.
func (m1 *Matrix) MultAt(m2, out *Matrix) *Matrix {
	if m1.Width != m2.Height {
		panic("Multiplication of incompatible matrix sizes.")
	} else if out.Height != m1.Height || out.Width != m2.Width {
		panic("out matrix has the wrong dimensions.")
	}

	for i := range out.Vals { out.Vals[i] = 0 }
	for i := 0; i < m1.Height; i++ {
		m1Off, outOff := i*m1.Width, i*out.Width
		for j := 0; j < m2.Width; j++ {
			for k := 0; k < m1.Width; k++ {
				out.Vals[outOff + j] += m1.Vals[m1Off + k] * m2.Vals[k*m2.Width + j]
			}
		}
	}

	return out
}

// MultVec computes m * xs for a column vector xs.
func (m *Matrix) MultVec(xs []float64) []float64 {
	if len(xs) != m.Width {
		panic("len(xs) != m.Width")
	}

	out := make([]float64, m.Height)
	for i := range out {
		off := i*m.Width
		for j, x := range xs { out[i] += m.Vals[off + j] * x }
	}
	return out
}

// Transpose returns a new matrix equal to the transpose of m.
func (m *Matrix) Transpose() *Matrix {
	out := NewMatrix(make([]float64, len(m.Vals)), m.Height, m.Width)
	for i := 0; i < m.Height; i++ {
		for j := 0; j < m.Width; j++ {
			out.Vals[j*out.Width + i] = m.Vals[i*m.Width + j]
		}
	}
	return out
}

// Invert computes the inverse of a matrix.
func (m *Matrix) Invert() *Matrix {
	lu := m.LU()
	inv := NewMatrix(make([]float64, len(m.Vals)), m.Width, m.Height)
	return lu.InvertAt(inv)
}

// Determinant computes the determinant of a matrix.
func (m *Matrix) Determinant() float64 {
	return m.LU().Determinant()
}

// ApproxEqual returns true if m1 and m2 have the same shape and every pair
// of elements differs by at most eps. NaN elements are never equal.
func (m1 *Matrix) ApproxEqual(m2 *Matrix, eps float64) bool {
	if m1.Width != m2.Width || m1.Height != m2.Height { return false }
	for i := range m1.Vals {
		if !(math.Abs(m1.Vals[i] - m2.Vals[i]) <= eps) { return false }
	}
	return true
}

// IsRotation returns true if m is a square orthonormal matrix with a
// determinant of +1, to within eps.
func (m *Matrix) IsRotation(eps float64) bool {
	if m.Width != m.Height { return false }
	mmt := m.Mult(m.Transpose())
	if !mmt.ApproxEqual(Identity(m.Width), eps) { return false }
	return math.Abs(m.Determinant() - 1) <= eps
}

// String formats m one row per line.
func (m *Matrix) String() string {
	lines := make([]string, m.Height)
	for i := range lines {
		row := m.Row(i)
		cols := make([]string, len(row))
		for j := range row { cols[j] = fmt.Sprintf("%12.8f", row[j]) }
		lines[i] = "[" + strings.Join(cols, " ") + " ]"
	}
	return strings.Join(lines, "\n")
}

// NewLUFactors creates an LUFactors instance of the requested dimensions.
func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.pivot = make([]int, n)
	luf.d = 1

	return luf
}

// LU returns the LU decomposition of a matrix.
func (m *Matrix) LU() *LUFactors {
	if m.Width != m.Height { panic("m is non-square.") }

	lu := NewLUFactors(m.Width)
	m.LUFactorsAt(lu)
	return lu
}

// LUFactorsAt stores the LU decomposition of a matrix at the specified
// location. Doolittle elimination with partial pivoting: after the call,
// P * m = L * U, with L's unit diagonal left implicit.
func (m *Matrix) LUFactorsAt(luf *LUFactors) {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimenstions than m.")
	}

	n := m.Width
	for i := 0; i < n; i++ { luf.pivot[i] = i }
	lu := luf.lu.Vals
	copy(lu, m.Vals)

	// Maintained for determinant calculations.
	luf.d = 1

	for k := 0; k < n; k++ {
		maxRow := findMaxRow(n, lu, k)
		if k != maxRow {
			swapRows(k, maxRow, n, lu)
			luf.pivot[k], luf.pivot[maxRow] = luf.pivot[maxRow], luf.pivot[k]
			luf.d = -luf.d
		}

		kOffset := k*n
		if lu[kOffset + k] == 0 { continue }
		for i := k + 1; i < n; i++ {
			iOffset := i*n
			lu[iOffset + k] /= lu[kOffset + k]
			tmp := lu[iOffset + k]
			for j := k + 1; j < n; j++ {
				lu[iOffset + j] -= tmp * lu[kOffset + j]
			}
		}
	}
}

// Finds the index of the row containing the maximum value in the column.
// Ignores the rows above col since those have already been eliminated.
func findMaxRow(n int, m []float64, col int) int {
	max, maxRow := -1.0, col

	for i := col; i < n; i++ {
		val := math.Abs(m[i*n + col])
		if val > max {
			max = val
			maxRow = i
		}
	}
	return maxRow
}

func swapRows(i1, i2, n int, lu []float64) {
	i1Offset, i2Offset := n*i1, n*i2
	for j := 0; j < n; j++ {
		idx1, idx2 := i1Offset + j, i2Offset + j
		lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
	}
}

// SolveVector solves M * xs = bs for xs.
//
// bs and xs may point to the same physical memory.
func (luf *LUFactors) SolveVector(bs, xs []float64) []float64 {
	n := luf.lu.Width
	if n != len(bs) {
		panic("len(b) != luf.Width")
	} else if n != len(xs) {
		panic("len(x) != luf.Width")
	}

	// A x = b -> (L U) x = P b -> L y = P b, U x = y
	ys := make([]float64, n)
	for i := 0; i < n; i++ { ys[i] = bs[luf.pivot[i]] }

	forwardSubst(n, luf.lu.Vals, ys)
	backSubst(n, luf.lu.Vals, ys, xs)

	return xs
}

// Solves L * y = P b for y in place. L has an implicit unit diagonal.
func forwardSubst(n int, lu, ys []float64) {
	for i := 0; i < n; i++ {
		sum := 0.0
		for j := 0; j < i; j++ {
			sum += lu[i*n + j] * ys[j]
		}
		ys[i] -= sum
	}
}

// Solves U * x = y for x.
// x_i = (y_i - sum_j=i+1^N-1 (beta_ij x_j)) / beta_ii
func backSubst(n int, lu, ys, xs []float64) {
	for i := n - 1; i >= 0; i-- {
		sum := 0.0
		for j := i + 1; j < n; j++ {
			sum += lu[i*n + j] * xs[j]
		}
		xs[i] = (ys[i] - sum) / lu[i*n + i]
	}
}

// SolveMatrix solves the equation m * x = b.
//
// x and b may point to the same physical memory.
func (luf *LUFactors) SolveMatrix(b, x *Matrix) *Matrix {
	n := luf.lu.Width

	if b.Width != b.Height {
		panic("b matrix is non-square.")
	} else if x.Width != x.Height {
		panic("x matrix is non-square.")
	} else if n != b.Width {
		panic("b matrix different size than m matrix.")
	} else if n != x.Width {
		panic("x matrix different size than m matrix.")
	}

	col := make([]float64, n)

	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			col[i] = b.Vals[i*n + j]
		}
		luf.SolveVector(col, col)
		for i := 0; i < n; i++ {
			x.Vals[i*n + j] = col[i]
		}
	}

	return x
}

// InvertAt inverts the matrix represented by the given LU decomposition
// and writes the results into the specified out matrix.
func (luf *LUFactors) InvertAt(out *Matrix) *Matrix {
	n := luf.lu.Width
	if out.Width != out.Height {
		panic("out matrix is non-square.")
	} else if n != out.Width {
		panic("out matrix different size than m matrix.")
	}

	for i := range out.Vals {
		out.Vals[i] = 0
	}
	for i := 0; i < n; i++ {
		out.Vals[i*n + i] = 1
	}

	luf.SolveMatrix(out, out)
	return out
}

// Determinant computes the determinant of the matrix represented by the
// given LU decomposition.
func (luf *LUFactors) Determinant() float64 {
	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width

	for i := 0; i < n; i++ {
		d *= lu[i*n + i]
	}
	return d
}
