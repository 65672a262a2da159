package threshold_finder

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"

	"bench_mate_go/growth_sim"
)

// ThresholdTimes returns, for every curve in the table, the earliest time at
// which the curve's value is >= fraction of that curve's own maximum. The
// maximum point itself always satisfies the threshold, so every non-empty
// series yields exactly one result.
//
// An empty series is a precondition violation and is reported as an error
// rather than a sentinel value.
func ThresholdTimes(table growth_sim.CurveTable, fraction float64) (map[string]float64, error) {
	results := make(map[string]float64, len(table.Names))

	for _, name := range table.Names {
		series := table.Series[name]
		if len(series) == 0 {
			return nil, fmt.Errorf("series %q is empty", name)
		}

		threshold := fraction * floats.Max(series)
		for i, value := range series {
			if value >= threshold {
				results[name] = table.Times[i]
				break
			}
		}
	}
	return results, nil
}

func Run(args []string) {
	fs := flag.NewFlagSet("threshold_finder", flag.ExitOnError)

	inFile := fs.String("in_file", "", "Input curve table CSV (as written by growth_sim)")
	fraction := fs.Float64("fraction", 0.8, "Fraction of each curve's maximum to detect")

	fs.Parse(args)

	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *inFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -in_file is required.")
		os.Exit(1)
	}
	if *fraction <= 0 || *fraction > 1 {
		fmt.Fprintln(os.Stderr, "Error: -fraction must be in (0, 1].")
		os.Exit(1)
	}

	f, err := os.Open(*inFile)
	if err != nil {
		fmt.Println("Error opening curve table:", err)
		os.Exit(1)
	}
	defer f.Close()

	table, err := growth_sim.ReadCurveTableCSV(f)
	if err != nil {
		fmt.Println("Error parsing curve table:", err)
		os.Exit(1)
	}

	times, err := ThresholdTimes(table, *fraction)
	if err != nil {
		fmt.Println("Error scanning curves:", err)
		os.Exit(1)
	}

	for _, name := range table.Names {
		fmt.Printf("%s reaches %.0f%% of max at time: %.2f\n", name, *fraction*100, times[name])
	}
}
