// Package viz renders CORDIC traces and error studies in the terminal.
//
// The package provides:
//
//   - [TraceTable]: the per-iteration (x, y, z) state as a styled table
//   - [ResidualPlot], [ErrorPlot], [LevelsPlot]: asciigraph charts
//   - [Explorer]: an interactive Bubble Tea model for stepping through angles
//
// # Key Bindings
//
//	←/→   - Decrease/increase the angle
//	[/]   - Halve/double the angle increment
//	↑/↓   - Add/remove an iteration
//	Tab   - Cycle the numeric representation
//	0     - Reset the angle to zero
//	Q     - Quit
package viz
