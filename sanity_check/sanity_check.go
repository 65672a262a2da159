package sanity_check

import (
	"fmt"

	version_control "bench_mate_go/config" // Version control file
)

// Run performs a simple sanity check to ensure Bench Mate is
// running properly printing helpful message and version number.
func Run(args []string) {
	fmt.Printf("Successfully running Bench Mate! (%s)\n", version_control.Main_version)
}
