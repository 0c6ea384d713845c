// Package analysis measures CORDIC accuracy against the math package.
//
// The package includes:
//
//   - [Sweep]: per-angle errors over an evenly spaced range
//   - [Summarize]: max, mean and RMS error statistics
//   - [Convergence]: maximum error as a function of iteration count
//   - [Agreement]: largest disagreement between two pipelines
//
// # Example
//
//	samples, _ := analysis.Sweep(analysis.FactoryFor(cordic.Fixed, cfg), -1.5, 1.5, 301)
//	stats := analysis.Summarize(samples)
//	fmt.Println(stats.MaxSinErr)
package analysis
