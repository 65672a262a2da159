package growth_sim

import (
	"flag"
	"fmt"
	"os"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	common "bench_mate_go/utils"
)

func Run(args []string) {
	fs := flag.NewFlagSet("growth_sim", flag.ExitOnError)

	curves := fs.Int("curves", 100, "Number of growth curves to generate")
	seed := fs.Int64("seed", 0, "Seed for RNG (0 = time-based)")
	outFile := fs.String("out_file", "", "Output CSV file (default: stdout)")
	plotFile := fs.String("plot_file", "", "Write an SVG line chart of the curves")
	head := fs.Int("head", 0, "Print the first N rows of the table")
	summary := fs.Bool("summary", false, "Print mean and peak population per curve")

	fs.Parse(args)

	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if *curves < 1 {
		fmt.Fprintln(os.Stderr, "Error: -curves must be at least 1.")
		os.Exit(1)
	}

	table := GenerateCurves(*curves, common.SeedSource(*seed))

	if *head > 0 {
		fmt.Print(table.Head(*head))
	}

	if *summary {
		for _, name := range table.Names {
			values := table.Series[name]
			fmt.Printf("%s\tmean=%.2f\tpeak=%.2f\n", name, stat.Mean(values, nil), floats.Max(values))
		}
	}

	if *plotFile != "" {
		svg, err := CurveLinePlotSVG(table)
		if err != nil {
			fmt.Println("Error rendering plot:", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*plotFile, []byte(svg), 0644); err != nil {
			fmt.Println("Error writing plot file:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote curve chart to %s\n", *plotFile)
	}

	switch {
	case *outFile != "":
		f, err := os.Create(*outFile)
		if err != nil {
			fmt.Println("Error creating output file:", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := table.WriteCSV(f); err != nil {
			fmt.Println("Error writing curve table:", err)
			os.Exit(1)
		}
		fmt.Printf("Wrote %d curves to %s\n", *curves, *outFile)
	case *head == 0 && !*summary && *plotFile == "":
		if err := table.WriteCSV(os.Stdout); err != nil {
			fmt.Println("Error writing curve table:", err)
			os.Exit(1)
		}
	}
}
