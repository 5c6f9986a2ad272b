// Copyright 2026 Neurotic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package neurotic

import (
	"gonum.org/v1/gonum/mat"

	"github.com/alvaroabascar/neurotic/internal/dataset"
	"github.com/alvaroabascar/neurotic/internal/network"
	"github.com/alvaroabascar/neurotic/internal/persist"
	"github.com/alvaroabascar/neurotic/internal/sampler"
	"github.com/alvaroabascar/neurotic/internal/trainer"
)

// Network is a fully connected feed-forward network with sigmoid
// activations.
type Network = network.Network

// ShapeError reports data whose width does not match the network.
type ShapeError = network.ShapeError

// Sampler is a deterministic, seeded source of random numbers.
type Sampler = sampler.Sampler

// Set is an ordered collection of (input, label) example pairs.
type Set = dataset.Set

// TrainConfig controls a training run.
type TrainConfig = trainer.Config

// Sentinel errors, matched with errors.Is.
var (
	// ErrSchedule reports a layer schedule that cannot describe a
	// network.
	ErrSchedule = network.ErrSchedule

	// ErrDataMismatch reports inputs and labels that do not line up.
	ErrDataMismatch = dataset.ErrMismatch

	// ErrConfig reports an invalid training configuration.
	ErrConfig = trainer.ErrConfig

	// ErrTruncated reports model data that ends too early.
	ErrTruncated = persist.ErrTruncated

	// ErrBadSchedule reports model data with an invalid schedule.
	ErrBadSchedule = persist.ErrBadSchedule

	// ErrTrailingData reports model data with bytes left over.
	ErrTrailingData = persist.ErrTrailingData
)

// New creates a network from a layer schedule: the input width, then
// each hidden width, then the output width. At least two layers are
// required. Parameters start at zero; call Randomize before training.
//
// Example:
//
//	net, err := neurotic.New(2, 4, 1)
func New(sizes ...int) (*Network, error) {
	return network.New(sizes...)
}

// NewSampler returns a sampler seeded with seed. Equal seeds yield
// equal streams, so runs can be reproduced exactly.
func NewSampler(seed uint64) *Sampler {
	return sampler.New(seed)
}

// NewSet builds a set from prepared matrices with one example per
// column. The set takes ownership of both matrices.
func NewSet(inputs, labels *mat.Dense) (*Set, error) {
	return dataset.New(inputs, labels)
}

// SetFromSlices builds a set from one input and one label slice per
// example.
//
// Example:
//
//	set, err := neurotic.SetFromSlices(
//	    [][]float64{{0, 0}, {0, 1}},
//	    [][]float64{{0}, {1}},
//	)
func SetFromSlices(inputs, labels [][]float64) (*Set, error) {
	return dataset.FromSlices(inputs, labels)
}

// SetFromCSV reads a set from a CSV file whose records carry the
// input features followed by the label values.
func SetFromCSV(path string, inputWidth, labelWidth int, hasHeader bool) (*Set, error) {
	return dataset.FromCSV(path, inputWidth, labelWidth, hasHeader)
}

// Save writes net to a file at path, replacing any existing file.
func Save(net *Network, path string) error {
	return persist.Save(net, path)
}

// Load reads a network from a file written by Save.
func Load(path string) (*Network, error) {
	return persist.Load(path)
}

// Train runs mini-batch stochastic gradient descent on net over set.
// The network is updated in place; set is reordered by the per-epoch
// shuffles.
//
// Example:
//
//	cfg := neurotic.TrainConfig{
//	    Epochs:       30,
//	    BatchSize:    10,
//	    LearningRate: 3,
//	    Rand:         neurotic.NewSampler(1),
//	}
//	err := neurotic.Train(net, set, cfg)
func Train(net *Network, set *Set, cfg TrainConfig) error {
	return trainer.Train(net, set, cfg)
}

// Cost returns the mean quadratic cost of net over set.
func Cost(net *Network, set *Set) (float64, error) {
	return trainer.Cost(net, set)
}
