// Copyright 2026 Neurotic Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package neurotic trains and runs small fully connected feed-forward
// neural networks with sigmoid activations.
//
// # Overview
//
// This package contains:
//   - Network: layer schedule, parameters and forward inference
//   - Sampler: a seeded random source for reproducible runs
//   - Set: paired training inputs and labels, from slices, matrices
//     or CSV files
//   - Train: mini-batch stochastic gradient descent with
//     backpropagation
//   - Save and Load: fixed binary model persistence
//
// # Basic Usage
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/alvaroabascar/neurotic"
//	)
//
//	func main() {
//	    net, err := neurotic.New(2, 4, 1)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    net.Randomize(neurotic.NewSampler(42))
//
//	    set, err := neurotic.SetFromSlices(
//	        [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}},
//	        [][]float64{{0}, {1}, {1}, {0}},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    cfg := neurotic.TrainConfig{
//	        Epochs:       2000,
//	        BatchSize:    4,
//	        LearningRate: 3,
//	        Rand:         neurotic.NewSampler(7),
//	    }
//	    if err := neurotic.Train(net, set, cfg); err != nil {
//	        log.Fatal(err)
//	    }
//
//	    out, err := net.Feedforward([]float64{1, 0})
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(out[0]) // close to 1
//	}
//
// # Persistence
//
// Save writes a network's schedule and parameters in a fixed binary
// layout; Load restores it bit for bit:
//
//	if err := neurotic.Save(net, "xor.model"); err != nil {
//	    log.Fatal(err)
//	}
//	net, err := neurotic.Load("xor.model")
//
// # Errors
//
// Failures return wrapped sentinel errors that callers can test with
// errors.Is:
//   - ErrSchedule: a schedule with fewer than two layers or a
//     non-positive width
//   - ErrDataMismatch: inputs and labels that do not line up
//   - ErrConfig: an invalid training configuration
//   - ErrTruncated, ErrBadSchedule, ErrTrailingData: malformed model
//     files
//
// Width mismatches between data and a network surface as *ShapeError,
// matched with errors.As.
package neurotic
