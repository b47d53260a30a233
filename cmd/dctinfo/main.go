// Command dctinfo applies the unscaled DCT-II or DCT-III to a sample
// vector and prints the coefficients.
//
// Usage:
//
//	dctinfo [flags] [value ...]
//
// Values are read from the arguments; without arguments a ramp of -size
// samples is used.
//
// Examples:
//
//	dctinfo 1 2 3 4
//	dctinfo -inverse 10 -3.15 0 -0.22
//	dctinfo -size 16 -roundtrip
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-dct/dsp/dct"
)

func main() {
	size := flag.Int("size", 8, "vector length when no values are given")
	inverse := flag.Bool("inverse", false, "apply the DCT-III instead of the DCT-II")
	roundtrip := flag.Bool("roundtrip", false, "apply both transforms and report the recovery error")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dctinfo [flags] [value ...]\n\n")
		fmt.Fprintf(os.Stderr, "Applies the unscaled DCT-II (or DCT-III with -inverse) in place\n")
		fmt.Fprintf(os.Stderr, "and prints the input next to the result.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dctinfo 1 2 3 4\n")
		fmt.Fprintf(os.Stderr, "  dctinfo -inverse 10 -3.15 0 -0.22\n")
		fmt.Fprintf(os.Stderr, "  dctinfo -size 16 -roundtrip\n")
	}
	flag.Parse()

	input, err := parseValues(flag.Args(), *size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *roundtrip {
		runRoundTrip(input)
		return
	}

	result := make([]float32, len(input))
	copy(result, input)

	tr := dct.New()
	if *inverse {
		err = tr.InverseTransform(result)
	} else {
		err = tr.Transform(result)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	printTable(input, result, *inverse)
}

func parseValues(args []string, size int) ([]float32, error) {
	if len(args) == 0 {
		if size <= 0 {
			return nil, fmt.Errorf("size must be > 0: %d", size)
		}
		ramp := make([]float32, size)
		for i := range ramp {
			ramp[i] = float32(i + 1)
		}
		return ramp, nil
	}

	values := make([]float32, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q", arg)
		}
		values[i] = float32(v)
	}
	return values, nil
}

func runRoundTrip(input []float32) {
	v := make([]float32, len(input))
	copy(v, input)

	tr := dct.New()
	if err := tr.Transform(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	if err := tr.InverseTransform(v); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Undo the N/2 gain of the unscaled pair.
	scale := 2 / float32(len(v))
	maxErr := 0.0
	for i := range v {
		diff := float64(v[i]*scale - input[i])
		if diff < 0 {
			diff = -diff
		}
		if diff > maxErr {
			maxErr = diff
		}
	}

	fmt.Printf("N=%d round-trip max error: %.3g\n", len(input), maxErr)
}

func printTable(input, result []float32, inverse bool) {
	label := "DCT-II"
	if inverse {
		label = "DCT-III"
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "k\tInput\t%s\t\n", label)
	for i := range input {
		fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t\n", i, input[i], result[i])
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}
}
