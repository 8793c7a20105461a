package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ColumnVector wraps a single-column matrix. It is the transport type the
// network engine accepts and returns at its forward and training entry
// points.
type ColumnVector struct {
	data *mat.Dense
}

// NewColumnVector copies a single-column matrix into a ColumnVector.
// Passing a matrix with more than one column is a programmer error.
func NewColumnVector(m mat.Matrix) *ColumnVector {
	r, c := m.Dims()
	if c != 1 {
		panic(fmt.Sprintf("column vector requires exactly 1 column, got %d", c))
	}
	d := mat.NewDense(r, 1, nil)
	d.Copy(m)
	return &ColumnVector{data: d}
}

// ColumnVectorWithData creates a ColumnVector from a flat slice of values.
func ColumnVectorWithData(values []float64) *ColumnVector {
	return &ColumnVector{
		data: mat.NewDense(len(values), 1, append([]float64(nil), values...)),
	}
}

// Data returns the underlying n x 1 matrix.
func (v *ColumnVector) Data() *mat.Dense {
	return v.data
}

// Len returns the number of elements.
func (v *ColumnVector) Len() int {
	r, _ := v.data.Dims()
	return r
}

// At returns the i-th element.
func (v *ColumnVector) At(i int) float64 {
	return v.data.At(i, 0)
}

// Values returns a copy of the elements as a flat slice.
func (v *ColumnVector) Values() []float64 {
	return mat.Col(nil, 0, v.data)
}
