// mlrust-train: Standalone trainer for feed-forward sigmoid networks
//
// Usage:
//
//	mlrust-train --data=xor --hidden="3" --epochs=100 --output=weights.json
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/patrickTumulty/mlrust/checkpoint"
	"github.com/patrickTumulty/mlrust/dataset"
	"github.com/patrickTumulty/mlrust/matrix"
	"github.com/patrickTumulty/mlrust/nn"
	"github.com/patrickTumulty/mlrust/utils"
)

var (
	dataFile       = flag.String("data", "xor", "Training data: CSV path, or 'xor' for the built-in set")
	inputNeurons   = flag.Int("inputs", 2, "Number of input neurons")
	outputNeurons  = flag.Int("outputs", 1, "Number of output neurons")
	hiddenLayers   = flag.String("hidden", "3", "Hidden layer sizes, space separated")
	epochs         = flag.Int("epochs", 100, "Number of training epochs")
	batchSize      = flag.Int("batch", 4, "Training batch size")
	normalize      = flag.Bool("normalize", false, "Z-score input features before training")
	verbose        = flag.Bool("verbose", true, "Verbose output")
	seed           = flag.Uint64("seed", 42, "Random seed")
	outputFile     = flag.String("output", "", "Output weights file (JSON)")
	checkpointFile = flag.String("checkpoint", "", "Output checkpoint file (gob)")
)

func main() {
	flag.Parse()
	utils.Verbose = *verbose
	matrix.Seed(*seed)

	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                      mlrust Trainer                          ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")

	hidden, err := utils.ParseHiddenLayers(*hiddenLayers)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid hidden layer sizes: %v\n", err)
		os.Exit(1)
	}
	config := &utils.Config{
		InputNeurons:     *inputNeurons,
		OutputNeurons:    *outputNeurons,
		HiddenLayerSizes: hidden,
		Epochs:           *epochs,
		BatchSize:        *batchSize,
	}
	if err := utils.ValidateConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nConfiguration:\n")
	fmt.Printf("  Data:          %s\n", *dataFile)
	fmt.Printf("  Inputs:        %d\n", config.InputNeurons)
	fmt.Printf("  Outputs:       %d\n", config.OutputNeurons)
	fmt.Printf("  Hidden:        %v\n", config.HiddenLayerSizes)
	fmt.Printf("  Epochs:        %d\n", config.Epochs)
	fmt.Printf("  Batch Size:    %d\n", config.BatchSize)
	fmt.Printf("  Normalize:     %v\n", *normalize)
	fmt.Println()

	stats := &utils.TimingStats{}
	totalStart := time.Now()

	// Load data
	start := time.Now()
	lines, err := loadData(*dataFile, config.InputNeurons, config.OutputNeurons)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading data: %v\n", err)
		os.Exit(1)
	}
	if *normalize {
		lines = dataset.Normalize(lines)
	}
	stats.DataLoadingTime = time.Since(start)
	fmt.Printf("Loaded %d samples\n", len(lines))

	// Build model
	start = time.Now()
	network := nn.New(config.InputNeurons, config.OutputNeurons, config.HiddenLayerSizes)
	stats.ModelInitTime = time.Since(start)
	fmt.Printf("\nModel: %d layers\n", len(network.Layers()))

	// Training loop
	fmt.Println("\nStarting training...")
	batches := dataset.Batches(lines, config.BatchSize)

	for epoch := 0; epoch < config.Epochs; epoch++ {
		epochStart := time.Now()

		trainStart := time.Now()
		for _, batch := range batches {
			inputs, targets := batch.Vectors()
			network.Train(inputs, targets)
		}
		stats.TrainingTime += time.Since(trainStart)

		lossStart := time.Now()
		inputs, targets := lines.Vectors()
		loss := nn.MeanSquaredError(network, inputs, targets)
		stats.LossComputationTime += time.Since(lossStart)

		fmt.Printf("Epoch %d/%d | Loss: %.6f | Time: %.2fs\n",
			epoch+1, config.Epochs, loss, time.Since(epochStart).Seconds())
	}

	fmt.Printf("\nTraining complete! Total time: %.2fs\n", time.Since(totalStart).Seconds())

	// Save weights
	if *outputFile != "" {
		fmt.Printf("\nSaving weights to %s...\n", *outputFile)
		start = time.Now()
		if err := saveWeights(network, *outputFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
			os.Exit(1)
		}
		stats.CheckpointTime += time.Since(start)
		fmt.Println("Done!")
	}

	if *checkpointFile != "" {
		fmt.Printf("\nSaving checkpoint to %s...\n", *checkpointFile)
		start = time.Now()
		if err := saveCheckpoint(network, *checkpointFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error saving: %v\n", err)
			os.Exit(1)
		}
		stats.CheckpointTime += time.Since(start)
		fmt.Println("Done!")
	}

	stats.TotalTime = time.Since(totalStart)
	if *verbose {
		utils.PrintTimingStats(stats, config.Epochs)
	}
}

func loadData(path string, inputNum, outputNum int) (dataset.Lines, error) {
	if path == "xor" {
		if inputNum != 2 || outputNum != 1 {
			return nil, fmt.Errorf("xor data needs 2 inputs and 1 output, got %d and %d", inputNum, outputNum)
		}
		return dataset.XOR(), nil
	}
	return dataset.LoadFile(path, inputNum, outputNum)
}

func saveWeights(network *nn.Network, filepath string) error {
	weights := &utils.ModelWeights{
		Version: "1.0",
		Layers:  make(map[string]utils.LayerWeight),
	}
	for i, layer := range network.Layers() {
		weights.Layers[fmt.Sprintf("layer_%d", i)] = utils.LayerWeight{
			Weight: utils.MatrixToWeightData("weight", layer.Weights()),
			Bias:   utils.MatrixToWeightData("bias", layer.Biases()),
		}
	}
	return utils.SaveWeights(filepath, weights)
}

func saveCheckpoint(network *nn.Network, filepath string) error {
	f, err := os.Create(filepath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", filepath, err)
	}
	defer f.Close()
	return checkpoint.Save(f, network)
}
