// Package trainer fits networks with mini-batch stochastic gradient
// descent.
//
// Each epoch shuffles the examples, walks them in contiguous batches
// and applies one averaged gradient step per batch. Backward passes
// inside a batch may run on several workers, but gradients are always
// reduced in example order, so results are identical for any worker
// count.
package trainer

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/alvaroabascar/neurotic/internal/dataset"
	"github.com/alvaroabascar/neurotic/internal/network"
	"github.com/alvaroabascar/neurotic/internal/parallel"
	"github.com/alvaroabascar/neurotic/internal/sampler"
)

// ErrConfig reports an invalid training configuration.
var ErrConfig = errors.New("invalid training configuration")

// Config controls a training run.
type Config struct {
	// Epochs is the number of full passes over the data.
	Epochs int

	// BatchSize is the number of examples per gradient step. Batches
	// larger than the data set are clamped to its size.
	BatchSize int

	// LearningRate scales each averaged gradient step. It must be
	// positive and finite.
	LearningRate float64

	// Rand drives the per-epoch shuffle. It is required.
	Rand *sampler.Sampler

	// Workers bounds the goroutines used per batch. Zero or one means
	// sequential.
	Workers int

	// OnEpoch, when set, is called after every epoch with the epoch
	// number counting from 1 and the mean quadratic cost observed
	// during that pass.
	OnEpoch func(epoch int, cost float64)
}

func (c *Config) validate() error {
	if c.Epochs <= 0 {
		return fmt.Errorf("%w: epochs must be positive, got %d", ErrConfig, c.Epochs)
	}
	if c.BatchSize <= 0 {
		return fmt.Errorf("%w: batch size must be positive, got %d", ErrConfig, c.BatchSize)
	}
	if c.LearningRate <= 0 || math.IsNaN(c.LearningRate) || math.IsInf(c.LearningRate, 0) {
		return fmt.Errorf("%w: learning rate must be positive and finite, got %v", ErrConfig, c.LearningRate)
	}
	if c.Rand == nil {
		return fmt.Errorf("%w: a sampler is required", ErrConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrConfig, c.Workers)
	}
	return nil
}

// Train runs stochastic gradient descent on net over set. The network
// is updated in place; set is reordered by the per-epoch shuffles.
func Train(net *network.Network, set *dataset.Set, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	if err := checkWidths("train", net, set); err != nil {
		return err
	}

	batch := cfg.BatchSize
	if batch > set.Len() {
		batch = set.Len()
	}

	for epoch := 1; epoch <= cfg.Epochs; epoch++ {
		set.Shuffle(cfg.Rand)

		costSum := 0.0
		for start := 0; start < set.Len(); start += batch {
			end := min(start+batch, set.Len())
			costSum += step(net, set.Batch(start, end), cfg)
		}

		if cfg.OnEpoch != nil {
			mean := 0.0
			if set.Len() > 0 {
				mean = costSum / float64(set.Len())
			}
			cfg.OnEpoch(epoch, mean)
		}
	}
	return nil
}

func checkWidths(op string, net *network.Network, set *dataset.Set) error {
	if set.Len() == 0 {
		return nil
	}
	if set.InputWidth() != net.InputSize() {
		return &network.ShapeError{Op: op, Want: net.InputSize(), Got: set.InputWidth()}
	}
	if set.LabelWidth() != net.OutputSize() {
		return &network.ShapeError{Op: op, Want: net.OutputSize(), Got: set.LabelWidth()}
	}
	return nil
}

// step applies one averaged gradient update for the given batch and
// returns the sum of the per-example costs.
func step(net *network.Network, batch *dataset.Set, cfg Config) float64 {
	m := batch.Len()

	// One trace slot per example, so concurrent passes share nothing
	// but the read-only parameters.
	traces := make([]*trace, m)
	costs := make([]float64, m)
	parallel.For(m, cfg.Workers, func(k int) {
		tr := newTrace(net)
		tr.forward(net, batch.Input(k))
		costs[k] = tr.backward(net, batch.Label(k))
		traces[k] = tr
	})

	// Reduce in example order; the result is identical for any worker
	// count.
	scale := -cfg.LearningRate / float64(m)
	for l := 0; l < net.Layers()-1; l++ {
		gradW := traces[0].gradW[l]
		gradB := traces[0].gradB[l]
		for k := 1; k < m; k++ {
			floats.Add(gradW.RawMatrix().Data, traces[k].gradW[l].RawMatrix().Data)
			floats.Add(gradB.RawVector().Data, traces[k].gradB[l].RawVector().Data)
		}
		floats.AddScaled(net.Weight(l).RawMatrix().Data, scale, gradW.RawMatrix().Data)
		floats.AddScaled(net.Bias(l).RawVector().Data, scale, gradB.RawVector().Data)
	}
	return floats.Sum(costs)
}

// Cost returns the mean quadratic cost of net over set, 0.5 times the
// squared distance between output and label averaged over examples.
// An empty set has cost zero.
func Cost(net *network.Network, set *dataset.Set) (float64, error) {
	if err := checkWidths("cost", net, set); err != nil {
		return 0, err
	}
	if set.Len() == 0 {
		return 0, nil
	}

	tr := newTrace(net)
	out := tr.as[len(tr.as)-1]
	diff := mat.NewVecDense(out.Len(), nil)

	sum := 0.0
	for k := 0; k < set.Len(); k++ {
		tr.forward(net, set.Input(k))
		diff.SubVec(out, set.Label(k))
		sum += 0.5 * mat.Dot(diff, diff)
	}
	return sum / float64(set.Len()), nil
}
