// Package persist reads and writes network parameters in a fixed
// binary layout.
//
// The layout is, in order and little-endian throughout:
//
//	int32         layer count L
//	int32 x L     layer sizes
//	then for each consecutive layer pair, for each neuron of the
//	later layer:
//	  float64       bias
//	  float64 x w   incoming weight row, w = size of the earlier layer
//
// There is no magic number and no checksum; Load rejects data that is
// shorter or longer than the schedule declares.
package persist

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alvaroabascar/neurotic/internal/network"
)

var (
	// ErrTruncated reports model data that ends before the declared
	// layout is complete.
	ErrTruncated = errors.New("model data ends before the declared layout")

	// ErrBadSchedule reports a header whose layer schedule cannot
	// describe a network.
	ErrBadSchedule = errors.New("model data declares an invalid layer schedule")

	// ErrTrailingData reports model data that continues past the
	// declared layout.
	ErrTrailingData = errors.New("model data continues past the declared layout")
)

// Schedule sanity bounds applied before any allocation.
const (
	maxLayers    = 1 << 12
	maxLayerSize = 1 << 22
)

// Write serializes net's schedule and parameters to w.
func Write(w io.Writer, net *network.Network) error {
	sizes := net.Sizes()
	header := make([]int32, 0, len(sizes)+1)
	header = append(header, int32(len(sizes)))
	for _, size := range sizes {
		header = append(header, int32(size))
	}
	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("write schedule: %w", err)
	}

	for l := 0; l < net.Layers()-1; l++ {
		weights := net.Weight(l)
		biases := net.Bias(l)
		for i := 0; i < biases.Len(); i++ {
			if err := binary.Write(w, binary.LittleEndian, biases.AtVec(i)); err != nil {
				return fmt.Errorf("write layer %d bias: %w", l, err)
			}
			if err := binary.Write(w, binary.LittleEndian, weights.RawRowView(i)); err != nil {
				return fmt.Errorf("write layer %d weights: %w", l, err)
			}
		}
	}
	return nil
}

// Read deserializes a network from r. It consumes exactly the bytes
// the layout declares and leaves r positioned after them.
func Read(r io.Reader) (*network.Network, error) {
	var count int32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, readErr("layer count", err)
	}
	if count < 2 || count > maxLayers {
		return nil, fmt.Errorf("%w: layer count %d", ErrBadSchedule, count)
	}

	sizes32 := make([]int32, count)
	if err := binary.Read(r, binary.LittleEndian, sizes32); err != nil {
		return nil, readErr("layer sizes", err)
	}
	sizes := make([]int, count)
	for l, size := range sizes32 {
		if size <= 0 || size > maxLayerSize {
			return nil, fmt.Errorf("%w: layer %d has size %d", ErrBadSchedule, l, size)
		}
		sizes[l] = int(size)
	}

	net, err := network.New(sizes...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadSchedule, err)
	}

	for l := 0; l < net.Layers()-1; l++ {
		weights := net.Weight(l)
		biases := net.Bias(l)
		for i := 0; i < biases.Len(); i++ {
			var bias float64
			if err := binary.Read(r, binary.LittleEndian, &bias); err != nil {
				return nil, readErr(fmt.Sprintf("layer %d bias", l), err)
			}
			biases.SetVec(i, bias)
			if err := binary.Read(r, binary.LittleEndian, weights.RawRowView(i)); err != nil {
				return nil, readErr(fmt.Sprintf("layer %d weights", l), err)
			}
		}
	}
	return net, nil
}

func readErr(what string, err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("read %s: %w", what, ErrTruncated)
	}
	return fmt.Errorf("read %s: %w", what, err)
}

// Save writes net to a file at path, replacing any existing file.
func Save(net *network.Network, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create model file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := Write(w, net); err != nil {
		f.Close()
		return err
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("write model file: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close model file: %w", err)
	}
	return nil
}

// Load reads a network from the file at path. The file must contain
// exactly one serialized network and nothing else.
func Load(path string) (*network.Network, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open model file: %w", err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	net, err := Read(r)
	if err != nil {
		return nil, err
	}
	if _, err := r.ReadByte(); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, fmt.Errorf("read model file: %w", err)
		}
		return nil, ErrTrailingData
	}
	return net, nil
}
