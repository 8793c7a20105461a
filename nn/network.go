package nn

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/patrickTumulty/mlrust/matrix"
)

const learningRateDefault = 1.0

// Network is an ordered sequence of dense sigmoid layers.
type Network struct {
	inputNeurons     int
	outputNeurons    int
	hiddenLayerSizes []int
	layers           []*Layer

	// learningRate is carried in state (default 1.0) but not applied by
	// Train, whose update divides by the batch size only.
	learningRate float64
}

// New creates a network with randomly generated weights and biases, every
// value independently uniform in [0, 1].
//
// hiddenLayerSizes defines how many hidden layers there are and the width
// of each. An empty slice links the input neurons directly to the output
// neurons.
func New(inputNeurons, outputNeurons int, hiddenLayerSizes []int) *Network {
	n := &Network{
		inputNeurons:     inputNeurons,
		outputNeurons:    outputNeurons,
		hiddenLayerSizes: hiddenLayerSizes,
		layers:           make([]*Layer, 0, len(hiddenLayerSizes)+1),
		learningRate:     learningRateDefault,
	}
	n.initLayers()
	n.randomizeWeightsAndBiases()
	return n
}

// From creates a network from known weight and bias matrices, in ascending
// layer order. The slices must pair up; mismatched lengths are a programmer
// error. Input and output widths are derived from the first weight matrix's
// columns and the last weight matrix's rows; no hidden layer sizes are
// recorded on this path.
func From(weights, biases []*mat.Dense) *Network {
	if len(weights) != len(biases) {
		panic(fmt.Sprintf("mismatched weight and bias counts: %d weights, %d biases", len(weights), len(biases)))
	}
	_, inputs := weights[0].Dims()
	outputs, _ := weights[len(weights)-1].Dims()
	n := &Network{
		inputNeurons:  inputs,
		outputNeurons: outputs,
		layers:        make([]*Layer, len(weights)),
		learningRate:  learningRateDefault,
	}
	for i := range weights {
		n.layers[i] = &Layer{
			weights: mat.DenseCopyOf(weights[i]),
			biases:  mat.DenseCopyOf(biases[i]),
		}
	}
	return n
}

func (n *Network) initLayers() {
	layerInputs := n.inputNeurons
	for _, size := range n.hiddenLayerSizes {
		n.layers = append(n.layers, NewLayer(layerInputs, size))
		layerInputs = size
	}
	n.layers = append(n.layers, NewLayer(layerInputs, n.outputNeurons))
}

func (n *Network) randomizeWeightsAndBiases() {
	for _, layer := range n.layers {
		matrix.Randomize(layer.weights, 0.0, 1.0)
		matrix.Randomize(layer.biases, 0.0, 1.0)
	}
}

// FeedForward propagates a column vector of inputs through the network and
// returns the resulting outputs. The network is not mutated.
func (n *Network) FeedForward(inputs *matrix.ColumnVector) *matrix.ColumnVector {
	var activation mat.Matrix = inputs.Data()
	for _, layer := range n.layers {
		z := matrix.Add(matrix.Dot(layer.weights, activation), layer.biases)
		activation = matrix.Sigmoid(z)
	}
	return matrix.NewColumnVector(activation)
}

// Layers returns the network's layers in ascending order.
func (n *Network) Layers() []*Layer {
	return n.layers
}

// InputNeurons returns the number of input neurons.
func (n *Network) InputNeurons() int {
	return n.inputNeurons
}

// OutputNeurons returns the number of output neurons.
func (n *Network) OutputNeurons() int {
	return n.outputNeurons
}

// HiddenLayerSizes returns the hidden layer widths the network was built
// with. Networks built with From report none.
func (n *Network) HiddenLayerSizes() []int {
	return n.hiddenLayerSizes
}

// LearningRate returns the network's learning rate. It defaults to 1.0 and
// is not applied by Train.
func (n *Network) LearningRate() float64 {
	return n.learningRate
}

func (n *Network) String() string {
	var b strings.Builder
	for i, layer := range n.layers {
		rows, cols := layer.weights.Dims()
		fmt.Fprintf(&b, "Layer %d (%dx%d)\n", i+1, rows, cols)
		b.WriteString(layer.String())
	}
	return b.String()
}
