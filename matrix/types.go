package matrix

import (
	"math"

	"github.com/go-intopt/intopt/vector"
)

// Matrix is an ordered collection of n columns, each a vector.Vector of
// the same length m (the row count). (Rows, Cols) are cached at
// construction so callers never need to recompute them from the
// column slice.
type Matrix struct {
	columns []vector.Vector
	rows    int
}

// Zero returns the m-by-n all-zero Matrix. Panics if rows or cols is
// not positive — malformed dimensions are a caller contract violation,
// the same policy vector.Vector applies to length mismatches.
func Zero(rows, cols int) Matrix {
	if err := ValidateDimensions(rows, cols); err != nil {
		panic(err)
	}
	columns := make([]vector.Vector, cols)
	for j := range columns {
		columns[j] = vector.Zero(rows)
	}
	return Matrix{columns: columns, rows: rows}
}

// FromColumns builds a Matrix from already-constructed columns. Panics
// if any column's length disagrees with the first column's length, or
// if no columns are given.
func FromColumns(columns []vector.Vector) Matrix {
	if len(columns) == 0 {
		panic(ErrNoColumns)
	}
	rows := columns[0].Len()
	cp := make([]vector.Vector, len(columns))
	for j, c := range columns {
		if err := ValidateColumnLength(rows, c.Len()); err != nil {
			panic(err)
		}
		cp[j] = c
	}
	return Matrix{columns: cp, rows: rows}
}

// FromRowMajor builds a Matrix from row-major data (the layout most
// input parsers naturally produce): data[i*cols+j] is entry (i,j).
func FromRowMajor(rows, cols int, data []vector.IntData) Matrix {
	if err := ValidateDimensions(rows, cols); err != nil {
		panic(err)
	}
	if len(data) != rows*cols {
		panic(ErrColumnLengthMismatch)
	}
	m := Zero(rows, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			m.columns[j].Set(i, data[i*cols+j])
		}
	}
	return m
}

// Rows returns the row count m.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the column count n.
func (m Matrix) Cols() int { return len(m.columns) }

// Column returns column j. Panics if j is out of range.
func (m Matrix) Column(j int) vector.Vector { return m.columns[j] }

// Columns returns the underlying column slice read-only-by-convention;
// callers must not mutate entries through it once any column has been
// used as a hash key elsewhere.
func (m Matrix) Columns() []vector.Vector { return m.columns }

// AddToEntry adds val to entry (i,j). Used by the parser to accumulate
// repeated-term coefficients while building a row.
func (m *Matrix) AddToEntry(i, j int, val vector.IntData) {
	m.columns[j].Set(i, m.columns[j].At(i)+val)
}

// MaxAbsEntry returns Delta_A, the maximum absolute entry across every
// column. Panics (ErrNoColumns) if m has no columns.
func (m Matrix) MaxAbsEntry() vector.IntData {
	if err := m.ValidateHasColumns(); err != nil {
		panic(err)
	}
	max := m.columns[0].InfNorm()
	for _, c := range m.columns[1:] {
		if n := c.InfNorm(); n > max {
			max = n
		}
	}
	return max
}

// HasDuplicateColumns reports whether any two distinct columns are
// elementwise equal.
func (m Matrix) HasDuplicateColumns() bool {
	for i, c := range m.columns {
		for _, d := range m.columns[i+1:] {
			if c.Equal(d) {
				return true
			}
		}
	}
	return false
}

// HasZeroColumn reports whether any column is the all-zero vector — the
// Steinitz engine's Unsupported precondition (a zero column would grow
// an infinite-cost loop at the origin).
func (m Matrix) HasZeroColumn() bool {
	for _, c := range m.columns {
		isZero := true
		for _, x := range c.Data() {
			if x != 0 {
				isZero = false
				break
			}
		}
		if isZero {
			return true
		}
	}
	return false
}

// NonNegative reports whether every entry of m is >= 0.
func (m Matrix) NonNegative() bool {
	for _, c := range m.columns {
		for _, x := range c.Data() {
			if x < 0 {
				return false
			}
		}
	}
	return true
}

// herdiscRowThreshold is the row-count cutoff past which h(m) uses the
// asymptotic constant 5.32 instead of 2*ln(2m), per spec.md's herdisc
// upper bound definition.
const herdiscRowThreshold = 699452

// herdiscAsymptoticH is h(m) for m > herdiscRowThreshold.
const herdiscAsymptoticH = 5.32

// HerdiscUpperBound returns H(A), the hereditary-discrepancy upper
// bound min(0.5*h(m)*sqrt(m)*Delta_A, max_j ||A_{.,j}||_1). Both terms
// are independently valid upper bounds on herdisc(A); the minimum is
// the tighter of the two in whichever regime the instance falls into.
// Panics (ErrNoColumns) if m has no columns.
func (m Matrix) HerdiscUpperBound() float64 {
	if err := m.ValidateHasColumns(); err != nil {
		panic(err)
	}

	var maxOneNorm vector.IntData
	for i, c := range m.columns {
		n := c.OneNorm()
		if i == 0 || n > maxOneNorm {
			maxOneNorm = n
		}
	}

	h := herdiscAsymptoticH
	if m.rows <= herdiscRowThreshold {
		h = 2.0 * math.Log(2.0*float64(m.rows))
	}

	delta := float64(m.MaxAbsEntry())
	spectral := 0.5 * h * math.Sqrt(float64(m.rows)) * delta

	return math.Min(spectral, float64(maxOneNorm))
}
