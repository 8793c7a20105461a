package nn

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/patrickTumulty/mlrust/matrix"
)

// BackPropagate computes, for a single training example, every layer's
// weight and bias adjustment. The returned slices align with Layers (index
// 0 is the first layer) and match each layer's weight and bias shapes. The
// network is not mutated.
//
// The forward pass records each layer's input x and pre-activation z. The
// backward pass then walks the layers in reverse: delta is the incoming
// error multiplied elementwise with sigmoidPrime(z), the weight adjustment
// is delta times x transposed, the bias adjustment is delta, and the error
// passed to the layer below is W transposed times delta. The error past the
// last layer is the plain
// difference expected - output.
func (n *Network) BackPropagate(input, expected mat.Matrix) ([]*mat.Dense, []*mat.Dense) {
	count := len(n.layers)
	xs := make([]mat.Matrix, count)
	zs := make([]mat.Matrix, count)

	activation := input
	for i, layer := range n.layers {
		xs[i] = activation
		zs[i] = matrix.Add(matrix.Dot(layer.weights, activation), layer.biases)
		activation = matrix.Sigmoid(zs[i])
	}

	weightAdjustments := make([]*mat.Dense, count)
	biasAdjustments := make([]*mat.Dense, count)

	errSignal := n.cost(expected, activation)
	for i := count - 1; i >= 0; i-- {
		delta := matrix.Multiply(errSignal, matrix.SigmoidPrime(zs[i]))
		weightAdjustments[i] = matrix.Dot(delta, xs[i].T()).(*mat.Dense)
		biasAdjustments[i] = delta.(*mat.Dense)
		errSignal = matrix.Dot(n.layers[i].weights.T(), delta)
	}

	return weightAdjustments, biasAdjustments
}

// cost is the error signal seeding backpropagation: the plain difference
// expected - output, not a scaled loss gradient.
func (n *Network) cost(expected, output mat.Matrix) mat.Matrix {
	return matrix.Subtract(expected, output)
}

// Train runs one batch gradient step over paired inputs and expected
// outputs, mutating the network's layers in place.
//
// Every example's BackPropagate adjustments are summed into fresh zeroed
// accumulators, then applied in a single pass as
// weights -= (1/n) * accumulated (and likewise for biases), where n is the
// batch length. The divisor is the batch size acting as an averaging step;
// the network's learning rate is not applied.
//
// Calling Train with sequences of different lengths is a programmer error
// and panics before any layer is touched.
func (n *Network) Train(inputs, expectedOutputs []*matrix.ColumnVector) {
	if len(inputs) != len(expectedOutputs) {
		panic(fmt.Sprintf("mismatched training pair counts: %d inputs, %d expected outputs", len(inputs), len(expectedOutputs)))
	}

	weightAcc, biasAcc := n.zeroedAdjustments()

	for i := range inputs {
		wa, ba := n.BackPropagate(inputs[i].Data(), expectedOutputs[i].Data())
		for j := range n.layers {
			weightAcc[j].Add(weightAcc[j], wa[j])
			biasAcc[j].Add(biasAcc[j], ba[j])
		}
	}

	n.applyAdjustments(weightAcc, biasAcc, float64(len(inputs)))
}

func (n *Network) zeroedAdjustments() ([]*mat.Dense, []*mat.Dense) {
	weightAcc := make([]*mat.Dense, len(n.layers))
	biasAcc := make([]*mat.Dense, len(n.layers))
	for i, layer := range n.layers {
		r, c := layer.weights.Dims()
		weightAcc[i] = mat.NewDense(r, c, nil)
		r, c = layer.biases.Dims()
		biasAcc[i] = mat.NewDense(r, c, nil)
	}
	return weightAcc, biasAcc
}

func (n *Network) applyAdjustments(weights, biases []*mat.Dense, numberOfExamples float64) {
	for i, layer := range n.layers {
		layer.weights = matrix.Subtract(layer.weights,
			matrix.Scale(1.0/numberOfExamples, weights[i])).(*mat.Dense)
		layer.biases = matrix.Subtract(layer.biases,
			matrix.Scale(1.0/numberOfExamples, biases[i])).(*mat.Dense)
	}
}
