// Package main provides the neurotic command line interface.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alvaroabascar/neurotic"
)

const version = "v0.1.0"

func main() {
	log.SetFlags(0)
	log.SetPrefix("neurotic: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "train":
		err = runTrain(os.Args[2:])
	case "predict":
		err = runPredict(os.Args[2:])
	case "info":
		err = runInfo(os.Args[2:])
	case "version":
		fmt.Printf("neurotic %s\n", version)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: neurotic <command> [flags]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  train      fit a network on a CSV data set")
	fmt.Fprintln(os.Stderr, "  predict    run a saved model on one input")
	fmt.Fprintln(os.Stderr, "  info       describe a saved model")
	fmt.Fprintln(os.Stderr, "  version    show version")
}

func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ExitOnError)
	layers := fs.String("layers", "", "comma separated layer sizes, e.g. 2,4,1")
	data := fs.String("data", "", "CSV file with input columns followed by label columns")
	out := fs.String("out", "model.bin", "where to write the trained model")
	epochs := fs.Int("epochs", 30, "training epochs")
	batch := fs.Int("batch", 10, "mini-batch size")
	eta := fs.Float64("eta", 3.0, "learning rate")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "seed for parameter init and shuffling")
	workers := fs.Int("workers", 1, "goroutines per batch")
	header := fs.Bool("header", false, "skip the first CSV record")
	fs.Parse(args)

	sizes, err := parseLayers(*layers)
	if err != nil {
		return err
	}
	if *data == "" {
		return errors.New("-data is required")
	}

	net, err := neurotic.New(sizes...)
	if err != nil {
		return err
	}
	net.Randomize(neurotic.NewSampler(*seed))

	set, err := neurotic.SetFromCSV(*data, sizes[0], sizes[len(sizes)-1], *header)
	if err != nil {
		return err
	}

	log.Printf("training %v on %d examples", sizes, set.Len())
	cfg := neurotic.TrainConfig{
		Epochs:       *epochs,
		BatchSize:    *batch,
		LearningRate: *eta,
		Rand:         neurotic.NewSampler(*seed + 1),
		Workers:      *workers,
		OnEpoch: func(epoch int, cost float64) {
			log.Printf("epoch %d/%d: cost %.6f", epoch, *epochs, cost)
		},
	}
	if err := neurotic.Train(net, set, cfg); err != nil {
		return err
	}
	if err := neurotic.Save(net, *out); err != nil {
		return err
	}
	log.Printf("saved model to %s", *out)
	return nil
}

func runPredict(args []string) error {
	fs := flag.NewFlagSet("predict", flag.ExitOnError)
	model := fs.String("model", "model.bin", "model file to load")
	input := fs.String("input", "", "comma separated input values, e.g. 1,0")
	fs.Parse(args)

	in, err := parseVector(*input)
	if err != nil {
		return err
	}
	net, err := neurotic.Load(*model)
	if err != nil {
		return err
	}
	out, err := net.Feedforward(in)
	if err != nil {
		return err
	}

	fields := make([]string, len(out))
	for i, v := range out {
		fields[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	fmt.Println(strings.Join(fields, ","))
	return nil
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ExitOnError)
	model := fs.String("model", "model.bin", "model file to load")
	fs.Parse(args)

	net, err := neurotic.Load(*model)
	if err != nil {
		return err
	}

	sizes := net.Sizes()
	params := 0
	for l := 0; l < len(sizes)-1; l++ {
		params += sizes[l+1]*sizes[l] + sizes[l+1]
	}
	fmt.Printf("layers: %v\n", sizes)
	fmt.Printf("parameters: %d\n", params)
	return nil
}

func parseLayers(s string) ([]int, error) {
	if s == "" {
		return nil, errors.New("-layers is required")
	}
	parts := strings.Split(s, ",")
	sizes := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("parse -layers %q: %w", s, err)
		}
		sizes = append(sizes, n)
	}
	return sizes, nil
}

func parseVector(s string) ([]float64, error) {
	if s == "" {
		return nil, errors.New("-input is required")
	}
	parts := strings.Split(s, ",")
	vec := make([]float64, 0, len(parts))
	for _, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, fmt.Errorf("parse -input %q: %w", s, err)
		}
		vec = append(vec, v)
	}
	return vec, nil
}
