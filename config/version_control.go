package version_control

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executible
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark        = "v1.0.0"
	Translator       = "v1.1.0"
	Growth_Sim       = "v1.0.1"
	Threshold_Finder = "v1.0.0"
	Hamming_Dist     = "v1.0.0"
	Demo             = "v1.0.0"
	Sanity_check     = "v1.0.0"
)
