package generator

import "github.com/srcgen/srcgen/internal/format"

// DefaultOutputFile is the combined file name when SplitFiles is off.
const DefaultOutputFile = "Generated.cs"

// Options configures the generator behavior.
type Options struct {
	// MaxParallel is the max number of declarations emitted in parallel per tier (0 = default).
	MaxParallel int
	// SplitFiles writes one file per declaration instead of one combined file.
	SplitFiles bool
	// OutputFile names the combined file.
	OutputFile string
	// Format controls rendering of every emitted file.
	Format format.Options
}

// DefaultOptions returns default generator options.
func DefaultOptions() Options {
	return Options{
		MaxParallel: 0, // use runtime.NumCPU in generator
		OutputFile:  DefaultOutputFile,
		Format:      format.DefaultOptions(),
	}
}
