// Package nn implements a minimal multilayer feed-forward neural network:
// dense layers, sigmoid activation, and batch gradient-descent training via
// backpropagation.
package nn

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// Layer is a dense affine transform: a (neurons x inputs) weight matrix and
// a (neurons x 1) bias column.
type Layer struct {
	weights *mat.Dense
	biases  *mat.Dense
}

// NewLayer creates a layer with zeroed weights and all-ones biases.
func NewLayer(inputs, neurons int) *Layer {
	ones := make([]float64, neurons)
	for i := range ones {
		ones[i] = 1
	}
	return &Layer{
		weights: mat.NewDense(neurons, inputs, nil),
		biases:  mat.NewDense(neurons, 1, ones),
	}
}

// Weights returns the layer's weight matrix.
func (l *Layer) Weights() *mat.Dense {
	return l.weights
}

// Biases returns the layer's bias column.
func (l *Layer) Biases() *mat.Dense {
	return l.biases
}

// Neurons returns the number of neurons in the layer.
func (l *Layer) Neurons() int {
	r, _ := l.weights.Dims()
	return r
}

// Inputs returns the number of inputs feeding the layer.
func (l *Layer) Inputs() int {
	_, c := l.weights.Dims()
	return c
}

func (l *Layer) String() string {
	rows, cols := l.weights.Dims()
	var b strings.Builder
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			fmt.Fprintf(&b, "%2.4f(w%d:%d) ", l.weights.At(i, j), i, j)
		}
		fmt.Fprintf(&b, "| %2.4f(b%d)\n", l.biases.At(i, 0), i)
	}
	return b.String()
}
