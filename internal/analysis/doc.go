// Package analysis derives error measurements from paired trajectories.
//
// Every quantity compares a discretized method with the exact solution
// sampled at the same points:
//
//   - [GlobalError]: |exact − approx| at every sample
//   - [LocalError]: the first difference of the global error (signed)
//   - [StepErrors]: endpoint error as a function of 1/step
//   - [EstimateOrder]: slope of log(error) against log(1/step)
//
// # Telescoping
//
// Local errors sum back to the global error:
//
//	local := analysis.LocalError(global)
//	// local.Ys[0] + ... + local.Ys[i] == global.Ys[i]
//
// Nothing here is cached. Each call integrates from scratch.
package analysis
