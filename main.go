package main

import (
	"fmt"
	"os"
	"strings"

	"bench_mate_go/benchmark"
	version_control "bench_mate_go/config"
	"bench_mate_go/demo"
	"bench_mate_go/growth_sim"
	"bench_mate_go/hamming_dist"
	"bench_mate_go/sanity_check"
	"bench_mate_go/threshold_finder"
	"bench_mate_go/translator"
)

// printCustomHelp formats a custom help menu
func printCustomHelp() {
	fmt.Println(`Bench Mate - Custom Help Menu
Usage:
  bench_mate <tool> [options]

Tools:
  translate		Translate DNA into protein (reduced genetic code)
  growth_sim		Simulate logistic population growth curves
  threshold_finder	Find when each curve reaches a fraction of its maximum
  hamming_dist		Padded Hamming distance between two strings
  demo			Guided walkthrough of all four calculations
  check			Run diagnostic test

Global Flags:
  -h, -help		Show this help message
  -v, -version		Show version information

Benchmarking:
  -benchmark		Must be used in association with a tool.
			Displays computational resource usage and
			pertinent operating system information
  `,
	)
	os.Exit(0)
}

func printVersion() {
	fmt.Println("Bench Mate - Version Information Menu")
	fmt.Println("Central Executable:")
	fmt.Printf("\tBench Mate:\t\t%s\n", version_control.Main_version)
	fmt.Printf("\nModular tools:\n")
	fmt.Printf("\tTranslator:\t\t%s\n", version_control.Translator)
	fmt.Printf("\tGrowth Simulator:\t%s\n", version_control.Growth_Sim)
	fmt.Printf("\tThreshold Finder:\t%s\n", version_control.Threshold_Finder)
	fmt.Printf("\tHamming Distance:\t%s\n", version_control.Hamming_Dist)
	fmt.Printf("\tDemo Walkthrough:\t%s\n", version_control.Demo)
	fmt.Printf("\tSanity Check:\t\t%s\n", version_control.Sanity_check)
	fmt.Printf("\tBenchmark:\t\t%s\n", version_control.Benchmark)

	fmt.Println("")

	os.Exit(0)
}

// Main controller
func main() {

	// If no arguments are given, show help
	if len(os.Args) < 2 {
		printCustomHelp()
	}

	// Scan for executible-specific help flags
	for _, arg := range os.Args[1:] {
		if len(os.Args) < 3 {
			if arg == "-h" || arg == "-help" {
				printCustomHelp()
			}
		}
	}

	// Version request
	for _, arg := range os.Args[1:] {
		if arg == "-v" || arg == "-version" {
			printVersion()
		}
	}

	toolName := os.Args[1]
	toolArgs := os.Args[2:]

	// Check for global -benchmark flag
	benchmarking := false
	var cleanedArgs []string
	for _, arg := range toolArgs {
		if arg == "-benchmark" {
			benchmarking = true
		} else {
			cleanedArgs = append(cleanedArgs, arg)
		}
	}

	// Tool execution wrapper
	run := func() {
		switch toolName {
		case "translate":
			translator.Run(cleanedArgs)
		case "growth_sim":
			growth_sim.Run(cleanedArgs)
		case "threshold_finder":
			threshold_finder.Run(cleanedArgs)
		case "hamming_dist":
			hamming_dist.Run(cleanedArgs)
		case "demo":
			demo.Run(cleanedArgs)
		case "check":
			sanity_check.Run(cleanedArgs)
		default:
			fmt.Printf("Unknown tool: %s\n", toolName)
			os.Exit(1)
		}
	}

	if benchmarking {
		label := fmt.Sprintf("bench_mate %s %s", toolName, strings.Join(cleanedArgs, " "))
		benchmark.Run(label, run)
	} else {
		run()
	}
}
