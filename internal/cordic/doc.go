// Package cordic computes sine and cosine by CORDIC vector rotation.
//
// The rotation-mode recurrence turns the unit vector (1, 0) through a fixed
// schedule of elementary angles θ_i = atan(2^-i), choosing the direction of
// each step from the sign of the residual angle z. Every step uses only
// additions and power-of-two scaling; the accumulated gain is removed once at
// the end by multiplying with the [Table] scaling constant.
//
// Three numeric substrates run the same recurrence:
//
//   - [Float]: native float64 x, y and z
//   - [SignMagnitude]: sign-magnitude values over float64 magnitudes
//   - [Fixed]: sign-magnitude values over scaled uint64 magnitudes
//
// # Example
//
//	p, _ := cordic.New(cordic.Fixed, cordic.DefaultConfig())
//	p.AddObserver(cordic.ObserverFunc(func(s cordic.Step) { fmt.Println(s) }))
//	res, _ := p.Rotate(1.0)
//
// # Domain
//
// The recurrence converges for |angle| <= [Table.Convergence] (about 1.743
// rad for ten iterations). Angles outside that range are still rotated but the
// result is meaningless; set Config.ValidateRange to reject them. The fixed
// pipeline additionally needs |angle| < 2^(64-AngleBits).
//
// # Thread Safety
//
// Pipelines are NOT thread-safe once observers are attached, since observers
// usually accumulate state. A [Table] is immutable and may be shared.
package cordic
