package sim

import (
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation session.
// Two sessions with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemPointProcess is the RNG subsystem for Poisson arrival
	// generation (homogeneous, thinned, compound). Uses the master seed
	// directly so that --seed reproduces the arrival stream on its own.
	SubsystemPointProcess = "pointprocess"

	// SubsystemRandomWalk is the RNG subsystem for random walk steps.
	SubsystemRandomWalk = "randomwalk"

	// SubsystemMarkov is the RNG subsystem for Markov chain transitions.
	SubsystemMarkov = "markov"

	// SubsystemBrownian is the RNG subsystem for Brownian increments.
	SubsystemBrownian = "brownian"

	// SubsystemMonteCarlo is the RNG subsystem for Monte Carlo estimators.
	SubsystemMonteCarlo = "montecarlo"

	// SubsystemQueue is the RNG subsystem for queueing simulations.
	SubsystemQueue = "queue"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG streams per subsystem.
// Each stream is a single mutable handle: every draw advances it
// monotonically, and sequential generator calls against the same stream
// continue where the previous call stopped. Streams are shared by pointer,
// never copied (a copy would replay the stream).
//
// Derivation formula:
//   - For SubsystemPointProcess: uses masterSeed directly
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine,
// or use one PartitionedRNG per goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemPointProcess {
		// The flagship process family answers to the master seed directly.
		derivedSeed = int64(p.key)
	} else {
		// All other subsystems: XOR with hash for isolation.
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
