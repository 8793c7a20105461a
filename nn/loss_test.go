package nn

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/patrickTumulty/mlrust/matrix"
)

func TestSquaredError(t *testing.T) {
	expected := matrix.ColumnVectorWithData([]float64{1, 0})
	actual := matrix.ColumnVectorWithData([]float64{0.5, 0.5})

	got := SquaredError(expected, actual)

	if math.Abs(got-0.5) > 1e-12 {
		t.Errorf("SquaredError = %v, want 0.5", got)
	}
}

func TestSquaredErrorZeroForExactMatch(t *testing.T) {
	v := matrix.ColumnVectorWithData([]float64{0.2, 0.7, -1})
	if got := SquaredError(v, v); got != 0 {
		t.Errorf("SquaredError of identical vectors = %v, want 0", got)
	}
}

func TestMeanSquaredError(t *testing.T) {
	// Zero weights and bias zero: every output is sigmoid(0) = 0.5.
	network := From(
		[]*mat.Dense{mat.NewDense(1, 2, nil)},
		[]*mat.Dense{mat.NewDense(1, 1, nil)},
	)
	inputs := []*matrix.ColumnVector{
		matrix.ColumnVectorWithData([]float64{0, 0}),
		matrix.ColumnVectorWithData([]float64{1, 1}),
	}
	targets := []*matrix.ColumnVector{
		matrix.ColumnVectorWithData([]float64{0}),   // error 0.25
		matrix.ColumnVectorWithData([]float64{0.5}), // error 0
	}

	got := MeanSquaredError(network, inputs, targets)

	if math.Abs(got-0.125) > 1e-12 {
		t.Errorf("MeanSquaredError = %v, want 0.125", got)
	}
}

func TestMeanSquaredErrorEmpty(t *testing.T) {
	network := New(2, 1, nil)
	if got := MeanSquaredError(network, nil, nil); got != 0 {
		t.Errorf("MeanSquaredError with no examples = %v, want 0", got)
	}
}
