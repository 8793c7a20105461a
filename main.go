// Demo: train a small sigmoid network on the exclusive-or truth table.
package main

import (
	"flag"
	"fmt"

	"github.com/patrickTumulty/mlrust/dataset"
	"github.com/patrickTumulty/mlrust/matrix"
	"github.com/patrickTumulty/mlrust/nn"
)

var (
	flagEpochs = flag.Int("epochs", 10, "number of passes over the truth table")
	flagSeed   = flag.Uint64("seed", 42, "random seed")
)

func main() {
	flag.Parse()
	matrix.Seed(*flagSeed)

	lines := dataset.XOR()
	inputs, targets := lines.Vectors()

	network := nn.New(2, 1, []int{3})
	fmt.Println("Initial network:")
	fmt.Println(network)

	for epoch := 1; epoch <= *flagEpochs; epoch++ {
		network.Train(inputs, targets)
		loss := nn.MeanSquaredError(network, inputs, targets)
		fmt.Printf("Epoch %d/%d | Loss: %.6f\n", epoch, *flagEpochs, loss)
	}

	fmt.Println("\nTrained network:")
	fmt.Println(network)

	for _, line := range lines {
		out := network.FeedForward(line.InputVector())
		fmt.Printf("%v -> %.4f (target %.0f)\n", line.Inputs, out.At(0), line.Targets[0])
	}
}
