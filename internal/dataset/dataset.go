// Package dataset holds paired training examples and their labels.
//
// Examples are stored column-major: example k occupies column k of both
// the input and the label matrix, so shuffling and batching move whole
// columns and never split a pair.
package dataset

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alvaroabascar/neurotic/internal/sampler"
)

// ErrMismatch reports inputs and labels that do not line up, either in
// example count or in per-example width.
var ErrMismatch = errors.New("inputs and labels mismatch")

// Set is an ordered collection of (input, label) example pairs.
//
// The zero value is an empty set.
type Set struct {
	inWidth  int
	outWidth int
	n        int

	// inputs is inWidth x n, labels is outWidth x n. Both are nil when
	// the set is empty.
	inputs *mat.Dense
	labels *mat.Dense
}

// New builds a set from prepared matrices with one example per column.
// The set takes ownership of both matrices; Shuffle reorders them in
// place.
func New(inputs, labels *mat.Dense) (*Set, error) {
	ir, ic := inputs.Dims()
	lr, lc := labels.Dims()
	if ic != lc {
		return nil, fmt.Errorf("%w: %d input columns, %d label columns", ErrMismatch, ic, lc)
	}
	return &Set{
		inWidth:  ir,
		outWidth: lr,
		n:        ic,
		inputs:   inputs,
		labels:   labels,
	}, nil
}

// FromSlices builds a set from one input and one label slice per
// example. Every input must share one width and every label another;
// both widths must be positive.
func FromSlices(inputs, labels [][]float64) (*Set, error) {
	if len(inputs) != len(labels) {
		return nil, fmt.Errorf("%w: %d inputs, %d labels", ErrMismatch, len(inputs), len(labels))
	}
	if len(inputs) == 0 {
		return &Set{}, nil
	}

	inWidth := len(inputs[0])
	outWidth := len(labels[0])
	if inWidth == 0 || outWidth == 0 {
		return nil, fmt.Errorf("%w: examples must not be empty", ErrMismatch)
	}
	for k := range inputs {
		if len(inputs[k]) != inWidth {
			return nil, fmt.Errorf("%w: input %d has width %d, want %d", ErrMismatch, k, len(inputs[k]), inWidth)
		}
		if len(labels[k]) != outWidth {
			return nil, fmt.Errorf("%w: label %d has width %d, want %d", ErrMismatch, k, len(labels[k]), outWidth)
		}
	}

	in := mat.NewDense(inWidth, len(inputs), nil)
	out := mat.NewDense(outWidth, len(labels), nil)
	for k := range inputs {
		in.SetCol(k, inputs[k])
		out.SetCol(k, labels[k])
	}
	return New(in, out)
}

// Len returns the number of examples.
func (s *Set) Len() int { return s.n }

// InputWidth returns the number of features per input.
func (s *Set) InputWidth() int { return s.inWidth }

// LabelWidth returns the number of values per label.
func (s *Set) LabelWidth() int { return s.outWidth }

// Input returns a view of example k's input. The view aliases the set's
// storage and is only valid until the next Shuffle.
func (s *Set) Input(k int) mat.Vector { return s.inputs.ColView(k) }

// Label returns a view of example k's label, with the same aliasing
// rules as Input.
func (s *Set) Label(k int) mat.Vector { return s.labels.ColView(k) }

// Example returns copies of example k's input and label.
func (s *Set) Example(k int) (input, label []float64) {
	input = make([]float64, s.inWidth)
	label = make([]float64, s.outWidth)
	mat.Col(input, k, s.inputs)
	mat.Col(label, k, s.labels)
	return input, label
}

// Shuffle permutes the examples in place with a Fisher-Yates pass,
// keeping each input paired with its label.
func (s *Set) Shuffle(rng *sampler.Sampler) {
	for i := s.n - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		if j == i {
			continue
		}
		swapColumns(s.inputs, i, j)
		swapColumns(s.labels, i, j)
	}
}

func swapColumns(m *mat.Dense, i, j int) {
	rows, _ := m.Dims()
	for r := 0; r < rows; r++ {
		vi, vj := m.At(r, i), m.At(r, j)
		m.Set(r, i, vj)
		m.Set(r, j, vi)
	}
}

// Batch copies examples [start, end) into a new independent set.
func (s *Set) Batch(start, end int) *Set {
	if start < 0 || end < start || end > s.n {
		panic(fmt.Sprintf("dataset: batch [%d, %d) out of range for %d examples", start, end, s.n))
	}
	if start == end {
		return &Set{inWidth: s.inWidth, outWidth: s.outWidth}
	}
	return &Set{
		inWidth:  s.inWidth,
		outWidth: s.outWidth,
		n:        end - start,
		inputs:   mat.DenseCopyOf(s.inputs.Slice(0, s.inWidth, start, end)),
		labels:   mat.DenseCopyOf(s.labels.Slice(0, s.outWidth, start, end)),
	}
}
