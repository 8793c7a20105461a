package utils

import (
	"encoding/json"
	"fmt"
	"os"

	"gonum.org/v1/gonum/mat"
)

// WeightData represents serializable weight data for a layer
type WeightData struct {
	Name  string    `json:"name"`
	Shape []int     `json:"shape"`
	Data  []float64 `json:"data"`
}

// ModelWeights represents all weights in a model
type ModelWeights struct {
	Version string                 `json:"version"`
	Layers  map[string]LayerWeight `json:"layers"`
}

// LayerWeight contains weights and bias for a layer
type LayerWeight struct {
	Weight *WeightData `json:"weight,omitempty"`
	Bias   *WeightData `json:"bias,omitempty"`
}

// SaveWeights saves model weights to a JSON file
func SaveWeights(filepath string, weights *ModelWeights) error {
	data, err := json.MarshalIndent(weights, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal weights: %w", err)
	}
	return os.WriteFile(filepath, data, 0644)
}

// LoadWeights loads model weights from a JSON file
func LoadWeights(filepath string) (*ModelWeights, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read weights file: %w", err)
	}
	var weights ModelWeights
	if err := json.Unmarshal(data, &weights); err != nil {
		return nil, fmt.Errorf("failed to unmarshal weights: %w", err)
	}
	return &weights, nil
}

// MatrixToWeightData converts a matrix to serializable weight data
func MatrixToWeightData(name string, m mat.Matrix) *WeightData {
	rows, cols := m.Dims()
	data := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			data = append(data, m.At(i, j))
		}
	}
	return &WeightData{
		Name:  name,
		Shape: []int{rows, cols},
		Data:  data,
	}
}

// WeightDataToMatrix converts weight data back to a dense matrix
func WeightDataToMatrix(wd *WeightData) (*mat.Dense, error) {
	if len(wd.Shape) != 2 {
		return nil, fmt.Errorf("weight %q: expected 2-d shape, got %v", wd.Name, wd.Shape)
	}
	rows, cols := wd.Shape[0], wd.Shape[1]
	if len(wd.Data) != rows*cols {
		return nil, fmt.Errorf("weight %q: shape %dx%d needs %d values, got %d",
			wd.Name, rows, cols, rows*cols, len(wd.Data))
	}
	return mat.NewDense(rows, cols, append([]float64{}, wd.Data...)), nil
}
