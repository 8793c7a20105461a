// mlrust-infer: Feed-forward inference using saved weights
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/patrickTumulty/mlrust/checkpoint"
	"github.com/patrickTumulty/mlrust/dataset"
	"github.com/patrickTumulty/mlrust/matrix"
	"github.com/patrickTumulty/mlrust/nn"
	"github.com/patrickTumulty/mlrust/utils"
)

var (
	weightsFile    = flag.String("weights", "", "Weights JSON file")
	checkpointFile = flag.String("checkpoint", "", "Checkpoint gob file")
	inputFile      = flag.String("input", "", "Input JSON file")
	verbose        = flag.Bool("verbose", true, "Verbose output")
	topK           = flag.Int("topk", 3, "Top activations to show")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose

	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                     mlrust Inference                         ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")

	if *weightsFile == "" && *checkpointFile == "" {
		fmt.Println("\nNo weights file. Running demo mode...")
		runDemo()
		return
	}

	network, err := loadNetwork()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading network: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d layers\n", len(network.Layers()))

	// Load input
	var inputData []float64
	if *inputFile != "" {
		data, err := os.ReadFile(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
			os.Exit(1)
		}
		if err := json.Unmarshal(data, &inputData); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing input: %v\n", err)
			os.Exit(1)
		}
	} else {
		inputData = make([]float64, network.InputNeurons())
		for i := range inputData {
			inputData[i] = rand.Float64()
		}
	}
	fmt.Printf("Input dim: %d\n", len(inputData))
	if len(inputData) != network.InputNeurons() {
		fmt.Fprintf(os.Stderr, "Input has %d values, network expects %d\n",
			len(inputData), network.InputNeurons())
		os.Exit(1)
	}

	// Run inference
	fmt.Println("\nRunning inference...")
	start := time.Now()
	output := network.FeedForward(matrix.ColumnVectorWithData(inputData))
	fmt.Printf("Time: %.4fs\n", time.Since(start).Seconds())

	showResults(output.Values(), *topK)
}

func runDemo() {
	network := nn.New(2, 1, []int{3})
	fmt.Printf("\nDemo network:\n%s\n", network)

	fmt.Println("Exclusive-or inputs:")
	for _, line := range dataset.XOR() {
		out := network.FeedForward(line.InputVector())
		fmt.Printf("  %v -> %.4f\n", line.Inputs, out.At(0))
	}
}

func loadNetwork() (*nn.Network, error) {
	if *checkpointFile != "" {
		f, err := os.Open(*checkpointFile)
		if err != nil {
			return nil, fmt.Errorf("opening checkpoint: %w", err)
		}
		defer f.Close()
		return checkpoint.Load(f)
	}

	weights, err := utils.LoadWeights(*weightsFile)
	if err != nil {
		return nil, err
	}
	return buildFromWeights(weights)
}

func buildFromWeights(weights *utils.ModelWeights) (*nn.Network, error) {
	var ws, bs []*mat.Dense
	for i := 0; ; i++ {
		lw, ok := weights.Layers[fmt.Sprintf("layer_%d", i)]
		if !ok {
			break
		}
		if lw.Weight == nil || lw.Bias == nil {
			return nil, fmt.Errorf("layer_%d is missing weight or bias data", i)
		}
		w, err := utils.WeightDataToMatrix(lw.Weight)
		if err != nil {
			return nil, err
		}
		b, err := utils.WeightDataToMatrix(lw.Bias)
		if err != nil {
			return nil, err
		}
		ws = append(ws, w)
		bs = append(bs, b)
	}
	if len(ws) == 0 {
		return nil, fmt.Errorf("no layer_N entries found in weights file")
	}
	if len(ws) != len(weights.Layers) {
		return nil, fmt.Errorf("weights file holds %d layers, found %d consecutive layer_N entries",
			len(weights.Layers), len(ws))
	}
	return nn.From(ws, bs), nil
}

func showResults(outputs []float64, k int) {
	fmt.Printf("\nOutputs:\n")
	for i, v := range outputs {
		fmt.Printf("  Neuron %d: %.6f\n", i, v)
	}

	if len(outputs) > 1 {
		indices := topKIndices(outputs, k)
		fmt.Printf("\nTop %d activations:\n", len(indices))
		for i, idx := range indices {
			fmt.Printf("  %d. Neuron %d: %.4f\n", i+1, idx, outputs[idx])
		}
	}
}

func topKIndices(vals []float64, k int) []int {
	if k > len(vals) {
		k = len(vals)
	}
	indices := make([]int, k)
	used := make(map[int]bool)
	for i := 0; i < k; i++ {
		maxIdx, maxVal := -1, math.Inf(-1)
		for j, v := range vals {
			if !used[j] && v > maxVal {
				maxVal, maxIdx = v, j
			}
		}
		indices[i] = maxIdx
		used[maxIdx] = true
	}
	return indices
}
