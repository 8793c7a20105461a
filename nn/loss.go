package nn

import (
	"gonum.org/v1/gonum/floats"

	"github.com/patrickTumulty/mlrust/matrix"
)

// SquaredError returns the summed squared difference between an expected
// and an actual output vector.
func SquaredError(expected, actual *matrix.ColumnVector) float64 {
	e := expected.Values()
	a := actual.Values()
	d := make([]float64, len(e))
	floats.SubTo(d, e, a)
	return floats.Dot(d, d)
}

// MeanSquaredError feeds every input through the network and returns the
// mean summed squared error against the paired expected outputs.
func MeanSquaredError(n *Network, inputs, expectedOutputs []*matrix.ColumnVector) float64 {
	if len(inputs) == 0 {
		return 0
	}
	total := 0.0
	for i := range inputs {
		total += SquaredError(expectedOutputs[i], n.FeedForward(inputs[i]))
	}
	return total / float64(len(inputs))
}
