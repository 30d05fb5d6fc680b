// Package main provides the mlp command line tool.
//
// Usage:
//
//	mlp version
//	mlp train -out xor.json -hidden 4 -iter 20000 -lr 0.01
//	mlp infer -model xor.json -input 1,0
//	mlp show -model xor.json
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/cpuid/v2"

	"github.com/born-ml/mlp/matrix"
	"github.com/born-ml/mlp/nn"
	"github.com/born-ml/mlp/optim"
)

const version = "v0.1.0"

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		log.Fatalf("mlp: %v", err)
	}
}

func run(args []string, stdout io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return errUsage
	}

	switch args[0] {
	case "version":
		printVersion(stdout)
		return nil
	case "train":
		return runTrain(args[1:], stdout)
	case "infer":
		return runInfer(args[1:], stdout)
	case "show":
		return runShow(args[1:], stdout)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		fmt.Fprintf(stdout, "unknown command %q\n\n", args[0])
		usage(stdout)
		return errUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "mlp - sigmoid multilayer perceptron")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version    Show version and CPU features")
	fmt.Fprintln(w, "  train      Train on the XOR sample set and save the model")
	fmt.Fprintln(w, "  infer      Run a saved model on one input row")
	fmt.Fprintln(w, "  show       Print a saved model")
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "mlp %s (%s %s/%s)\n", version, runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "CPU: %s, %d logical cores\n", cpuid.CPU.BrandName, cpuid.CPU.LogicalCores)
	fmt.Fprintf(w, "SIMD: AVX2=%t FMA3=%t AVX512F=%t\n",
		cpuid.CPU.Supports(cpuid.AVX2),
		cpuid.CPU.Supports(cpuid.FMA3),
		cpuid.CPU.Supports(cpuid.AVX512F))
}

// xorSamples returns the four XOR input rows and their targets.
func xorSamples() (inputs, targets []*matrix.Matrix, err error) {
	for _, s := range [][3]float64{{0, 0, 0}, {0, 1, 1}, {1, 0, 1}, {1, 1, 0}} {
		x, err := matrix.FromRows([][]float64{{s[0], s[1]}})
		if err != nil {
			return nil, nil, err
		}
		y, err := matrix.FromRows([][]float64{{s[2]}})
		if err != nil {
			return nil, nil, err
		}
		inputs = append(inputs, x)
		targets = append(targets, y)
	}
	return inputs, targets, nil
}

func runTrain(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	fs.SetOutput(stdout)
	out := fs.String("out", "model.json", "Path of the saved model")
	hidden := fs.String("hidden", "4", "Comma-separated hidden layer widths")
	iterations := fs.Int("iter", 20000, "Number of training iterations")
	lr := fs.Float64("lr", 0.01, "Learning rate")
	seed := fs.Int64("seed", 1, "Random seed for initial weights (0 = time based)")
	logEvery := fs.Int("log", 1000, "Log progress every N iterations (0 = off)")
	name := fs.String("name", "xor", "Model name")
	optimizer := fs.String("optimizer", optim.OptimizerDiffGrad, "Optimizer: diffgrad or adam")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	inner, err := parseInts(*hidden)
	if err != nil {
		return fmt.Errorf("-hidden: %w", err)
	}
	inputs, targets, err := xorSamples()
	if err != nil {
		return err
	}

	cfg := nn.Config{Name: *name, Input: 2, Inner: inner, Output: 1}
	if *seed != 0 {
		cfg.Rand = nn.NewRand(*seed)
	}
	net, err := nn.NewNetwork(cfg)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Training %s: widths %v, %d parameters\n", *name, net.Widths(), net.NumParameters())
	fmt.Fprintf(stdout, "   Optimizer: %s (lr=%g), iterations: %d\n", *optimizer, *lr, *iterations)

	start := time.Now()
	err = optim.Train(net, inputs, targets, *iterations, optim.TrainConfig{
		DiffGradConfig: optim.DiffGradConfig{LR: *lr},
		Optimizer:      *optimizer,
		LogEvery:       *logEvery,
		Logger:         log.New(stdout, "   ", 0),
	})
	if err != nil {
		return fmt.Errorf("training failed: %w", err)
	}
	fmt.Fprintf(stdout, "Done in %v\n", time.Since(start).Round(time.Millisecond))

	for i, x := range inputs {
		y, err := net.Infer(x)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "   %v -> %.4f (target %v)\n", x.ToRows()[0], y.At(0, 0), targets[i].At(0, 0))
	}

	if err := nn.Save(*out, net); err != nil {
		return fmt.Errorf("failed to save model: %w", err)
	}
	fmt.Fprintf(stdout, "Saved to %s\n", *out)
	return nil
}

func runInfer(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("infer", flag.ContinueOnError)
	fs.SetOutput(stdout)
	modelPath := fs.String("model", "model.json", "Path of the saved model")
	input := fs.String("input", "", "Comma-separated input row, e.g. 1,0")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	values, err := parseFloats(*input)
	if err != nil {
		return fmt.Errorf("-input: %w", err)
	}
	net, err := nn.Load(*modelPath)
	if err != nil {
		return err
	}
	x, err := matrix.FromRows([][]float64{values})
	if err != nil {
		return err
	}
	y, err := net.Infer(x)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, y.String())
	return nil
}

func runShow(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("show", flag.ContinueOnError)
	fs.SetOutput(stdout)
	modelPath := fs.String("model", "model.json", "Path of the saved model")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	net, err := nn.Load(*modelPath)
	if err != nil {
		return err
	}
	fmt.Fprint(stdout, net.String())
	return nil
}

func parseInts(s string) ([]int, error) {
	var out []int
	for _, field := range splitList(s) {
		v, err := strconv.Atoi(field)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty list")
	}
	return out, nil
}

func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, field := range splitList(s) {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, errors.New("empty list")
	}
	return out, nil
}

func splitList(s string) []string {
	var fields []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
