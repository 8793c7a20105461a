package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHiddenLayers(t *testing.T) {
	sizes, err := ParseHiddenLayers("5 3 2")
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3, 2}, sizes)
}

func TestParseHiddenLayersEmpty(t *testing.T) {
	sizes, err := ParseHiddenLayers("")
	require.NoError(t, err)
	assert.Empty(t, sizes)
}

func TestParseHiddenLayersInvalid(t *testing.T) {
	_, err := ParseHiddenLayers("4 abc")
	require.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		InputNeurons:     2,
		OutputNeurons:    1,
		HiddenLayerSizes: []int{3},
		Epochs:           100,
		BatchSize:        4,
	}
}

func TestValidateConfig(t *testing.T) {
	require.NoError(t, ValidateConfig(validConfig()))
}

func TestValidateConfigRejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero inputs", func(c *Config) { c.InputNeurons = 0 }, "input neurons must be positive"},
		{"zero outputs", func(c *Config) { c.OutputNeurons = 0 }, "output neurons must be positive"},
		{"negative hidden", func(c *Config) { c.HiddenLayerSizes = []int{3, -1} }, "hidden layer sizes must be positive"},
		{"zero epochs", func(c *Config) { c.Epochs = 0 }, "epochs must be positive"},
		{"zero batch", func(c *Config) { c.BatchSize = 0 }, "batch size must be positive"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			config := validConfig()
			tc.mutate(config)
			err := ValidateConfig(config)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestValidateConfigNoHiddenLayers(t *testing.T) {
	config := validConfig()
	config.HiddenLayerSizes = nil
	require.NoError(t, ValidateConfig(config))
}
