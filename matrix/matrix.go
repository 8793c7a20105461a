// Package matrix provides the dense numeric kernel for the network engine:
// fresh-output wrappers over gonum's mat types plus the sigmoid pair, uniform
// random fill, and arithmetic-sequence fill.
package matrix

import (
	"math"
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

var src = rand.NewSource(uint64(time.Now().UnixNano()))

// Seed reseeds the package random source used by Randomize, making fills
// reproducible for a fixed seed.
func Seed(seed uint64) {
	src.Seed(seed)
}

// Dot returns the matrix product m · n.
func Dot(m, n mat.Matrix) mat.Matrix {
	r, _ := m.Dims()
	_, c := n.Dims()
	o := mat.NewDense(r, c, nil)
	o.Product(m, n)
	return o
}

// Apply returns a copy of m with fn applied to every element.
func Apply(fn func(i, j int, v float64) float64, m mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Apply(fn, m)
	return o
}

// Scale returns m with every element multiplied by s.
func Scale(s float64, m mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Scale(s, m)
	return o
}

// Multiply returns the elementwise product of m and n.
func Multiply(m, n mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.MulElem(m, n)
	return o
}

// Add returns the elementwise sum of m and n. Mismatched shapes are a
// programmer error and panic with mat.ErrShape.
func Add(m, n mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Add(m, n)
	return o
}

// Subtract returns the elementwise difference m - n.
func Subtract(m, n mat.Matrix) mat.Matrix {
	r, c := m.Dims()
	o := mat.NewDense(r, c, nil)
	o.Sub(m, n)
	return o
}

// Sum returns the sum of all elements of m.
func Sum(m mat.Matrix) float64 {
	return mat.Sum(m)
}

// Sigmoid applies 1 / (1 + e^-x) to every element of m.
func Sigmoid(m mat.Matrix) mat.Matrix {
	return Apply(sigmoid, m)
}

// SigmoidPrime applies the first derivative of the sigmoid,
// sigmoid(x) * (1 - sigmoid(x)), to every element of m. The argument is the
// pre-activation value, not an already-activated one.
func SigmoidPrime(m mat.Matrix) mat.Matrix {
	return Apply(func(i, j int, v float64) float64 {
		s := sigmoid(i, j, v)
		return s * (1 - s)
	}, m)
}

func sigmoid(i, j int, sum float64) float64 {
	return 1.0 / (1.0 + math.Exp(-sum))
}

// Randomize overwrites every element of m with an independent uniform random
// value in [lower, upper].
func Randomize(m *mat.Dense, lower, upper float64) {
	dist := distuv.Uniform{
		Min: lower,
		Max: upper,
		Src: src,
	}

	r, c := m.Dims()
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, dist.Rand())
		}
	}
}

// RangeFill overwrites the elements of m in row-major order with the
// arithmetic sequence start, start+step, start+2*step, ...
// Used for deterministic fixtures, not by the network itself.
func RangeFill(m *mat.Dense, start, step float64) {
	r, c := m.Dims()
	v := start
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Set(i, j, v)
			v += step
		}
	}
}
