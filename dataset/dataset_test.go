package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	csv := "0,0,0\n0,1,1\n1,0,1\n1,1,0\n"

	lines, err := Load(strings.NewReader(csv), 2, 1)
	require.NoError(t, err)

	require.Len(t, lines, 4)
	assert.Equal(t, []float64{0, 1}, lines[1].Inputs)
	assert.Equal(t, []float64{1}, lines[1].Targets)
	assert.Equal(t, []float64{1, 1}, lines[3].Inputs)
	assert.Equal(t, []float64{0}, lines[3].Targets)
}

func TestLoadWrongFieldCount(t *testing.T) {
	csv := "1,2,3\n4,5\n"

	_, err := Load(strings.NewReader(csv), 2, 1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.Contains(t, err.Error(), "expected 3 values, got 2")
}

func TestLoadBadFloat(t *testing.T) {
	_, err := Load(strings.NewReader("1,abc,3\n"), 2, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing input")

	_, err = Load(strings.NewReader("1,2,xyz\n"), 2, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing target")
}

func TestLoadEmpty(t *testing.T) {
	lines, err := Load(strings.NewReader(""), 2, 1)
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte("0.5,1.5,1\n"), 0644))

	lines, err := LoadFile(path, 2, 1)
	require.NoError(t, err)

	require.Len(t, lines, 1)
	assert.Equal(t, []float64{0.5, 1.5}, lines[0].Inputs)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.csv"), 2, 1)
	require.Error(t, err)
}

func TestMeanAndStdDev(t *testing.T) {
	lines := Lines{
		{Inputs: []float64{1, 10}, Targets: []float64{0}},
		{Inputs: []float64{3, 10}, Targets: []float64{1}},
	}

	mean := Mean(lines)
	std := StdDev(lines)

	require.Len(t, mean, 2)
	assert.InDelta(t, 2, mean[0], 1e-12)
	assert.InDelta(t, 10, mean[1], 1e-12)
	assert.InDelta(t, 1, std[0], 1e-12) // population std dev of {1, 3}
	assert.InDelta(t, 0, std[1], 1e-12)
}

func TestNormalize(t *testing.T) {
	lines := Lines{
		{Inputs: []float64{1, 5}, Targets: []float64{0}},
		{Inputs: []float64{3, 5}, Targets: []float64{1}},
	}

	normalized := Normalize(lines)

	assert.InDelta(t, -1, normalized[0].Inputs[0], 1e-12)
	assert.InDelta(t, 1, normalized[1].Inputs[0], 1e-12)
	// Constant feature is centered but not scaled.
	assert.InDelta(t, 0, normalized[0].Inputs[1], 1e-12)
	assert.InDelta(t, 0, normalized[1].Inputs[1], 1e-12)
	// Targets and the source lines are untouched.
	assert.Equal(t, []float64{1}, normalized[1].Targets)
	assert.Equal(t, []float64{1, 5}, lines[0].Inputs)
}

func TestBatches(t *testing.T) {
	lines := make(Lines, 7)

	batches := Batches(lines, 3)

	require.Len(t, batches, 3)
	assert.Len(t, batches[0], 3)
	assert.Len(t, batches[1], 3)
	assert.Len(t, batches[2], 1)
}

func TestBatchesExact(t *testing.T) {
	batches := Batches(make(Lines, 4), 2)
	require.Len(t, batches, 2)
	assert.Len(t, batches[1], 2)
}

func TestXOR(t *testing.T) {
	lines := XOR()

	require.Len(t, lines, 4)
	for _, line := range lines {
		want := 0.0
		if line.Inputs[0] != line.Inputs[1] {
			want = 1.0
		}
		assert.Equal(t, want, line.Targets[0], "inputs %v", line.Inputs)
	}
}

func TestVectors(t *testing.T) {
	lines := Lines{
		{Inputs: []float64{1, 2}, Targets: []float64{3}},
	}

	inputs, targets := lines.Vectors()

	require.Len(t, inputs, 1)
	require.Len(t, targets, 1)
	assert.Equal(t, 2, inputs[0].Len())
	assert.Equal(t, []float64{1, 2}, inputs[0].Values())
	assert.Equal(t, []float64{3}, targets[0].Values())
}
