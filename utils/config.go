package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Config holds training configuration
type Config struct {
	InputNeurons     int
	OutputNeurons    int
	HiddenLayerSizes []int
	Epochs           int
	BatchSize        int
}

// ParseHiddenLayers parses a space-separated size string into a slice of
// integers. An empty string yields no hidden layers.
func ParseHiddenLayers(sizesStr string) ([]int, error) {
	sizeParts := strings.Fields(sizesStr)
	sizes := make([]int, len(sizeParts))
	for i, s := range sizeParts {
		n, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		sizes[i] = n
	}
	return sizes, nil
}

// ValidateConfig validates training configuration
func ValidateConfig(config *Config) error {
	if config.InputNeurons <= 0 {
		return fmt.Errorf("input neurons must be positive")
	}

	if config.OutputNeurons <= 0 {
		return fmt.Errorf("output neurons must be positive")
	}

	for _, size := range config.HiddenLayerSizes {
		if size <= 0 {
			return fmt.Errorf("hidden layer sizes must be positive")
		}
	}

	if config.Epochs <= 0 {
		return fmt.Errorf("epochs must be positive")
	}

	if config.BatchSize <= 0 {
		return fmt.Errorf("batch size must be positive")
	}

	return nil
}
