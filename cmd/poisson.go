package cmd

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/stochastic-sim/stochastic-sim/sim"
	"github.com/stochastic-sim/stochastic-sim/sim/pointprocess"
)

var (
	rate           float64 // Constant arrival rate (events per time unit)
	horizon        float64 // Simulation horizon T
	dominatingRate float64 // Upper bound on the oscillating intensity
	jumpMin        float64 // Lower edge of the uniform jump distribution
	jumpMax        float64 // Upper edge of the uniform jump distribution
)

// oscillatingIntensity is the demonstration rate function
// lambda(t) = 2 + 2 sin(0.1 pi t), which oscillates between 0 and 4.
func oscillatingIntensity(t float64) float64 {
	return 2.0 + 2.0*math.Sin(0.1*math.Pi*t)
}

// poissonCmd simulates a homogeneous Poisson process
var poissonCmd = &cobra.Command{
	Use:   "poisson",
	Short: "Simulate a homogeneous Poisson process",
	Run: func(cmd *cobra.Command, args []string) {
		rng := sessionRNG().ForSubsystem(sim.SubsystemPointProcess)

		arrivals, err := pointprocess.Homogeneous(rate, horizon, rng)
		if err != nil {
			logrus.Fatalf("homogeneous simulation failed: %v", err)
		}
		fmt.Printf("Homogeneous Poisson (rate=%g, T=%g) generated %d arrivals.\n", rate, horizon, len(arrivals))
	},
}

// thinnedCmd simulates a non-homogeneous Poisson process by thinning
var thinnedCmd = &cobra.Command{
	Use:   "thinned",
	Short: "Simulate a non-homogeneous Poisson process (thinning)",
	Run: func(cmd *cobra.Command, args []string) {
		rng := sessionRNG().ForSubsystem(sim.SubsystemPointProcess)

		arrivals, err := pointprocess.Thinned(oscillatingIntensity, dominatingRate, horizon, rng)
		if err != nil {
			logrus.Fatalf("thinned simulation failed: %v", err)
		}
		fmt.Printf("Non-homogeneous Poisson (bound=%g, T=%g) generated %d arrivals.\n", dominatingRate, horizon, len(arrivals))
	},
}

// compoundCmd simulates a compound Poisson process with uniform jumps
var compoundCmd = &cobra.Command{
	Use:   "compound",
	Short: "Simulate a compound Poisson process with uniform jumps",
	Run: func(cmd *cobra.Command, args []string) {
		if jumpMax <= jumpMin {
			logrus.Fatalf("jump range [%g, %g) is empty", jumpMin, jumpMax)
		}
		rng := sessionRNG().ForSubsystem(sim.SubsystemPointProcess)
		uniformJump := func(r *rand.Rand) float64 {
			return jumpMin + (jumpMax-jumpMin)*r.Float64()
		}

		path, err := pointprocess.Compound(rate, horizon, rng, uniformJump)
		if err != nil {
			logrus.Fatalf("compound simulation failed: %v", err)
		}
		fmt.Printf("Compound Poisson process had %d jumps.\n", len(path))
		if v, ok := pointprocess.FinalValue(path); ok {
			fmt.Printf("Final value at time T=%g is %.4f\n", horizon, v)
		}
	},
}

func init() {
	for _, c := range []*cobra.Command{poissonCmd, thinnedCmd, compoundCmd} {
		c.Flags().Float64Var(&horizon, "horizon", 10.0, "Simulation horizon T")
	}
	poissonCmd.Flags().Float64Var(&rate, "rate", 1.0, "Constant arrival rate")
	compoundCmd.Flags().Float64Var(&rate, "rate", 1.0, "Constant arrival rate")
	thinnedCmd.Flags().Float64Var(&dominatingRate, "bound", 4.0, "Dominating rate for the oscillating intensity")
	compoundCmd.Flags().Float64Var(&jumpMin, "jump-min", 0.0, "Lower edge of the uniform jump distribution")
	compoundCmd.Flags().Float64Var(&jumpMax, "jump-max", 1.0, "Upper edge of the uniform jump distribution")

	rootCmd.AddCommand(poissonCmd)
	rootCmd.AddCommand(thinnedCmd)
	rootCmd.AddCommand(compoundCmd)
}
