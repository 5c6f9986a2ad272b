// Package network implements fully connected feed-forward neural
// networks with sigmoid activations.
//
// A network is described by its layer schedule: the input width, any
// number of hidden widths and the output width. Layer l is connected
// to layer l+1 by a weight matrix of sizes[l+1] rows by sizes[l]
// columns and a bias vector of length sizes[l+1].
package network

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/alvaroabascar/neurotic/internal/sampler"
)

// Network is a fully connected feed-forward network. Parameters are
// held as gonum dense matrices, one weight matrix and one bias vector
// per connected layer pair.
//
// The zero value is not usable; build networks with New.
type Network struct {
	sizes   []int
	weights []*mat.Dense
	biases  []*mat.VecDense
}

// New allocates a network for the given layer sizes with every weight
// and bias set to zero.
//
// At least two layers are required and each layer needs at least one
// neuron; anything else is reported as ErrSchedule.
func New(sizes ...int) (*Network, error) {
	if len(sizes) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 layers, got %d", ErrSchedule, len(sizes))
	}
	for l, width := range sizes {
		if width <= 0 {
			return nil, fmt.Errorf("%w: layer %d has size %d", ErrSchedule, l, width)
		}
	}

	net := &Network{
		sizes:   append([]int(nil), sizes...),
		weights: make([]*mat.Dense, len(sizes)-1),
		biases:  make([]*mat.VecDense, len(sizes)-1),
	}
	for l := 0; l < len(sizes)-1; l++ {
		net.weights[l] = mat.NewDense(sizes[l+1], sizes[l], nil)
		net.biases[l] = mat.NewVecDense(sizes[l+1], nil)
	}
	return net, nil
}

// Layers returns the number of layers, input and output included.
func (n *Network) Layers() int {
	return len(n.sizes)
}

// Sizes returns a copy of the layer schedule.
func (n *Network) Sizes() []int {
	return append([]int(nil), n.sizes...)
}

// InputSize returns the width of the input layer.
func (n *Network) InputSize() int {
	return n.sizes[0]
}

// OutputSize returns the width of the output layer.
func (n *Network) OutputSize() int {
	return n.sizes[len(n.sizes)-1]
}

// Weight returns the matrix connecting layer l to layer l+1. The
// matrix is the network's own storage: writes to it move the network.
func (n *Network) Weight(l int) *mat.Dense {
	return n.weights[l]
}

// Bias returns the bias vector of layer l+1, again as the network's
// own storage.
func (n *Network) Bias(l int) *mat.VecDense {
	return n.biases[l]
}

// Randomize draws every weight and bias independently from the
// standard normal distribution of src, in place.
func (n *Network) Randomize(src *sampler.Sampler) {
	for l := range n.weights {
		for _, param := range [][]float64{
			n.weights[l].RawMatrix().Data,
			n.biases[l].RawVector().Data,
		} {
			for i := range param {
				param[i] = src.Normal()
			}
		}
	}
}

// Feedforward propagates input through every layer and returns the
// output layer's activation as a fresh slice.
//
// Each layer computes sigma(W*a + b) with sigma applied elementwise.
// An input whose length differs from the input layer width is rejected
// with a ShapeError before anything is computed.
func (n *Network) Feedforward(input []float64) ([]float64, error) {
	if len(input) != n.sizes[0] {
		return nil, &ShapeError{Op: "feedforward", Want: n.sizes[0], Got: len(input)}
	}

	a := mat.NewVecDense(n.sizes[0], append([]float64(nil), input...))
	for l := range n.weights {
		z := mat.NewVecDense(n.sizes[l+1], nil)
		z.MulVec(n.weights[l], a)
		z.AddVec(z, n.biases[l])

		data := z.RawVector().Data
		for i, v := range data {
			data[i] = Sigmoid(v)
		}
		a = z
	}

	out := make([]float64, a.Len())
	copy(out, a.RawVector().Data)
	return out, nil
}

// Clone returns a deep copy sharing no parameter storage with n.
func (n *Network) Clone() *Network {
	c := &Network{
		sizes:   append([]int(nil), n.sizes...),
		weights: make([]*mat.Dense, len(n.weights)),
		biases:  make([]*mat.VecDense, len(n.biases)),
	}
	for l := range n.weights {
		c.weights[l] = mat.DenseCopyOf(n.weights[l])
		c.biases[l] = mat.VecDenseCopyOf(n.biases[l])
	}
	return c
}

// Equal reports whether n and o share the same schedule and exactly
// equal parameters.
func (n *Network) Equal(o *Network) bool {
	if len(n.sizes) != len(o.sizes) {
		return false
	}
	for l := range n.sizes {
		if n.sizes[l] != o.sizes[l] {
			return false
		}
	}
	for l := range n.weights {
		if !mat.Equal(n.weights[l], o.weights[l]) || !mat.Equal(n.biases[l], o.biases[l]) {
			return false
		}
	}
	return true
}
