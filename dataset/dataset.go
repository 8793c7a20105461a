// Package dataset loads and prepares training samples: CSV parsing,
// per-feature normalization, and batching.
package dataset

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gonum.org/v1/gonum/stat"

	"github.com/patrickTumulty/mlrust/matrix"
)

// Line is one training sample: input features paired with target outputs.
type Line struct {
	Inputs  []float64
	Targets []float64
}

// Lines is an ordered collection of samples.
type Lines []Line

// Load reads CSV records from r. Every record must hold exactly
// inputNum+outputNum float fields: the first inputNum are features, the
// rest targets.
func Load(r io.Reader, inputNum, outputNum int) (Lines, error) {
	var lines Lines
	cr := csv.NewReader(bufio.NewReader(r))
	cr.FieldsPerRecord = -1 // field counts are validated per line below
	var lineNum int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading record: %w", err)
		}
		lineNum++
		if len(record) != inputNum+outputNum {
			return nil, errInvalidLine{
				lineNum:  lineNum,
				fields:   len(record),
				expected: inputNum + outputNum,
			}
		}

		inputs := make([]float64, inputNum)
		targets := make([]float64, outputNum)
		for i, field := range record {
			num, err := strconv.ParseFloat(field, 64)
			if err != nil {
				if i < inputNum {
					return nil, fmt.Errorf("parsing input: %w", err)
				}
				return nil, fmt.Errorf("parsing target: %w", err)
			}
			if i < inputNum {
				inputs[i] = num
			} else {
				targets[i-inputNum] = num
			}
		}

		lines = append(lines, Line{Inputs: inputs, Targets: targets})
	}
	return lines, nil
}

// LoadFile opens filename and loads its samples via Load.
func LoadFile(filename string, inputNum, outputNum int) (Lines, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}
	defer file.Close()
	return Load(file, inputNum, outputNum)
}

type errInvalidLine struct {
	lineNum  int
	fields   int
	expected int
}

func (e errInvalidLine) Error() string {
	return fmt.Sprintf("at line %d, expected %d values, got %d",
		e.lineNum, e.expected, e.fields)
}

// Mean returns the per-feature mean of the input columns.
func Mean(lines Lines) []float64 {
	if len(lines) == 0 {
		return nil
	}
	numEntries := len(lines[0].Inputs)
	mean := make([]float64, numEntries)
	column := make([]float64, len(lines))
	for i := 0; i < numEntries; i++ {
		for j, line := range lines {
			column[j] = line.Inputs[i]
		}
		mean[i] = stat.Mean(column, nil)
	}
	return mean
}

// StdDev returns the per-feature population standard deviation of the
// input columns.
func StdDev(lines Lines) []float64 {
	if len(lines) == 0 {
		return nil
	}
	numEntries := len(lines[0].Inputs)
	std := make([]float64, numEntries)
	column := make([]float64, len(lines))
	for i := 0; i < numEntries; i++ {
		for j, line := range lines {
			column[j] = line.Inputs[i]
		}
		std[i] = stat.PopStdDev(column, nil)
	}
	return std
}

// Normalize returns a copy of lines with every input feature z-scored
// against the collection's mean and standard deviation. Constant features
// are centered but not scaled. Targets are untouched.
func Normalize(lines Lines) Lines {
	mean := Mean(lines)
	std := StdDev(lines)
	normalized := make(Lines, len(lines))
	for i, line := range lines {
		inputs := make([]float64, len(line.Inputs))
		for j, x := range line.Inputs {
			d := std[j]
			if d == 0 {
				d = 1
			}
			inputs[j] = (x - mean[j]) / d
		}
		normalized[i] = Line{Inputs: inputs, Targets: line.Targets}
	}
	return normalized
}

// Batches splits lines into consecutive batches of batchSize. The final
// batch may be short.
func Batches(lines Lines, batchSize int) []Lines {
	numBatches := (len(lines) + batchSize - 1) / batchSize
	batches := make([]Lines, numBatches)
	for i := 0; i < numBatches; i++ {
		start := i * batchSize
		end := start + batchSize
		if end > len(lines) {
			end = len(lines)
		}
		batches[i] = lines[start:end]
	}
	return batches
}

// XOR returns the four-sample exclusive-or truth table.
func XOR() Lines {
	return Lines{
		{Inputs: []float64{0, 0}, Targets: []float64{0}},
		{Inputs: []float64{0, 1}, Targets: []float64{1}},
		{Inputs: []float64{1, 0}, Targets: []float64{1}},
		{Inputs: []float64{1, 1}, Targets: []float64{0}},
	}
}

// InputVector returns the sample's inputs as a column vector.
func (l Line) InputVector() *matrix.ColumnVector {
	return matrix.ColumnVectorWithData(l.Inputs)
}

// TargetVector returns the sample's targets as a column vector.
func (l Line) TargetVector() *matrix.ColumnVector {
	return matrix.ColumnVectorWithData(l.Targets)
}

// Vectors converts the samples to paired input and target column vectors,
// ready for Network.Train.
func (ls Lines) Vectors() ([]*matrix.ColumnVector, []*matrix.ColumnVector) {
	inputs := make([]*matrix.ColumnVector, len(ls))
	targets := make([]*matrix.ColumnVector, len(ls))
	for i, line := range ls {
		inputs[i] = line.InputVector()
		targets[i] = line.TargetVector()
	}
	return inputs, targets
}
