// Package demo chains the four calculations into one guided walkthrough:
// translate a random DNA sequence, simulate a few growth curves, report when
// each reaches 80% of its maximum, and compare two strings by padded Hamming
// distance.
package demo

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"bench_mate_go/growth_sim"
	"bench_mate_go/hamming_dist"
	"bench_mate_go/threshold_finder"
	"bench_mate_go/translator"
	common "bench_mate_go/utils"
)

const sampleDNALength = 45

func Run(args []string) {
	fs := flag.NewFlagSet("demo", flag.ExitOnError)

	seed := fs.Int64("seed", 0, "Seed for RNG (0 = time-based)")
	curves := fs.Int("curves", 3, "Number of growth curves in the walkthrough")
	plotFile := fs.String("plot_file", "", "Write the curve chart SVG to this file")

	fs.Parse(args)

	if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	src := common.SeedSource(*seed)
	rng := rand.New(src)

	fmt.Println("===== DNA TRANSLATION =====")
	dna := common.RandomDNA(sampleDNALength, rng)
	fmt.Println("DNA sequence:", dna)
	fmt.Println("Protein:", translator.Translate(dna))

	fmt.Println("\n===== POPULATION GROWTH CURVES =====")
	table := growth_sim.GenerateCurves(*curves, src)
	fmt.Println("First few rows of growth data:")
	fmt.Print(table.Head(5))

	if *plotFile != "" {
		svg, err := growth_sim.CurveLinePlotSVG(table)
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

	fmt.Println("\n===== TIME TO REACH 80% OF MAXIMUM =====")
	times, err := threshold_finder.ThresholdTimes(table, 0.8)
	if err != nil {
		fmt.Println("Error scanning curves:", err)
		os.Exit(1)
	}
	for _, name := range table.Names {
		fmt.Printf("%s reaches 80%% at time: %.2f\n", name, times[name])
	}

	fmt.Println("\n===== HAMMING DISTANCE =====")
	username1 := "biodata_user"
	username2 := "data_science"
	fmt.Println("String 1:", username1)
	fmt.Println("String 2:", username2)
	fmt.Println("Hamming distance:", hamming_dist.PaddedDistance(username1, username2))
}
