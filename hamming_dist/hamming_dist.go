package hamming_dist

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

// PaddedDistance counts the positions at which a and b differ, after
// right-padding the shorter string with spaces to the longer one's length.
// Padding means the distance is defined for any pair of strings: against an
// empty string it equals the other string's length. A real trailing space in
// the longer string matches its pad character, so it does not count as a
// mismatch.
func PaddedDistance(a, b string) int {
	if len(a) < len(b) {
		a += strings.Repeat(" ", len(b)-len(a))
	} else if len(b) < len(a) {
		b += strings.Repeat(" ", len(a)-len(b))
	}

	distance := 0
	for i := 0; i < len(a); i++ {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance
}

func Run(args []string) {
	fs := flag.NewFlagSet("hamming_dist", flag.ExitOnError)

	first := fs.String("a", "", "First string to compare")
	second := fs.String("b", "", "Second string to compare")

	fs.Parse(args)

	a, b := *first, *second
	// Two positional arguments work too: bench_mate hamming_dist s1 s2
	if a == "" && b == "" && len(fs.Args()) == 2 {
		a, b = fs.Arg(0), fs.Arg(1)
	} else if len(fs.Args()) > 0 {
		fmt.Printf("Unrecognized arguments: %v\n", fs.Args())
		fmt.Println("Use -h to view valid flags.")
		os.Exit(1)
	}

	if a == "" && b == "" {
		fmt.Fprintln(os.Stderr, "Provide two strings via -a and -b, or as two positional arguments.")
		os.Exit(1)
	}

	fmt.Println("String 1:", a)
	fmt.Println("String 2:", b)
	fmt.Println("Hamming distance:", PaddedDistance(a, b))
}
