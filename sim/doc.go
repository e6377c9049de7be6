// Package sim provides session plumbing shared by the process simulators.
//
// # Reading Guide
//
// Start with these two files:
//   - rng.go: SimulationKey and PartitionedRNG, the per-session random
//     engine handles every simulator draws from
//   - results.go: RunSummary, scalar outcome aggregation across repeated runs
//
// # Architecture
//
// The sim package owns the random-stream lifecycle; the simulators live in
// sub-packages and take an explicit *rand.Rand per call:
//   - sim/pointprocess/: Poisson streams (homogeneous, thinned, compound)
//   - sim/randomwalk/: simple ±1 random walks
//   - sim/markov/: finite-state Markov chains
//   - sim/brownian/: Brownian motion paths
//   - sim/montecarlo/: Monte Carlo estimators
//   - sim/queue/: processor-sharing queue and on-off fluid buffer
//
// Determinism contract: a session seeded with the same SimulationKey and
// executing the same call sequence reproduces every output exactly. The
// engine handle is the only mutable shared state; callers must not copy it
// or share it across goroutines.
package sim
