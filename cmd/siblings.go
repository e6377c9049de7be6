package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/stochastic-sim/stochastic-sim/sim"
	"github.com/stochastic-sim/stochastic-sim/sim/brownian"
	"github.com/stochastic-sim/stochastic-sim/sim/markov"
	"github.com/stochastic-sim/stochastic-sim/sim/montecarlo"
	"github.com/stochastic-sim/stochastic-sim/sim/randomwalk"
)

var (
	stepProb   float64 // Probability of a +1 step in the random walk
	walkSteps  int     // Number of random walk steps
	chainSteps int     // Number of Markov chain transitions
	chainStart int     // Initial Markov chain state
	bmHorizon  float64 // Brownian motion time horizon
	bmSteps    int     // Brownian motion grid steps
	mcSamples  int     // Monte Carlo sample count
)

// demoTransitionMatrix is the 3-state example chain.
var demoTransitionMatrix = [][]float64{
	{0.2, 0.3, 0.5},
	{0.0, 0.3, 0.7},
	{0.5, 0.4, 0.1},
}

// walkCmd simulates a simple random walk
var walkCmd = &cobra.Command{
	Use:   "walk",
	Short: "Simulate a simple random walk",
	Run: func(cmd *cobra.Command, args []string) {
		rng := sessionRNG().ForSubsystem(sim.SubsystemRandomWalk)

		positions, err := randomwalk.Walk(stepProb, walkSteps, rng)
		if err != nil {
			logrus.Fatalf("random walk failed: %v", err)
		}
		fmt.Printf("Random walk (p=%g) over %d steps ended at position %d.\n",
			stepProb, walkSteps, positions[len(positions)-1])
	},
}

// markovCmd simulates the demo 3-state Markov chain
var markovCmd = &cobra.Command{
	Use:   "markov",
	Short: "Simulate the demo 3-state Markov chain",
	Run: func(cmd *cobra.Command, args []string) {
		rng := sessionRNG().ForSubsystem(sim.SubsystemMarkov)

		chain, err := markov.NewChain(demoTransitionMatrix)
		if err != nil {
			logrus.Fatalf("invalid transition matrix: %v", err)
		}
		states, err := chain.Simulate(chainStart, chainSteps, rng)
		if err != nil {
			logrus.Fatalf("markov simulation failed: %v", err)
		}

		fmt.Println("Simulated Markov chain states:")
		for i, s := range states {
			if i+1 < len(states) {
				fmt.Printf("%d -> ", s)
			} else {
				fmt.Printf("%d\n", s)
			}
		}
	},
}

// brownianCmd simulates standard Brownian motion
var brownianCmd = &cobra.Command{
	Use:   "brownian",
	Short: "Simulate 1D standard Brownian motion",
	Run: func(cmd *cobra.Command, args []string) {
		rng := sessionRNG().ForSubsystem(sim.SubsystemBrownian)

		_, values, err := brownian.Path1D(bmHorizon, bmSteps, rng)
		if err != nil {
			logrus.Fatalf("brownian simulation failed: %v", err)
		}
		fmt.Printf("Brownian motion over [0, %g] with %d steps ended at B(T)=%.4f.\n",
			bmHorizon, bmSteps, values[len(values)-1])
	},
}

// montecarloCmd estimates pi by Monte Carlo
var montecarloCmd = &cobra.Command{
	Use:   "montecarlo",
	Short: "Estimate pi by unit-circle Monte Carlo",
	Run: func(cmd *cobra.Command, args []string) {
		rng := sessionRNG().ForSubsystem(sim.SubsystemMonteCarlo)

		est, err := montecarlo.EstimatePi(mcSamples, rng)
		if err != nil {
			logrus.Fatalf("pi estimation failed: %v", err)
		}
		fmt.Printf("Estimated Pi = %.6f (%d samples)\n", est, mcSamples)
	},
}

func init() {
	walkCmd.Flags().Float64Var(&stepProb, "p", 0.5, "Probability of a +1 step")
	walkCmd.Flags().IntVar(&walkSteps, "steps", 100, "Number of steps")

	markovCmd.Flags().IntVar(&chainSteps, "steps", 20, "Number of transitions")
	markovCmd.Flags().IntVar(&chainStart, "start", 0, "Initial state")

	brownianCmd.Flags().Float64Var(&bmHorizon, "horizon", 8.0, "Time horizon T")
	brownianCmd.Flags().IntVar(&bmSteps, "steps", 1000, "Number of grid steps")

	montecarloCmd.Flags().IntVar(&mcSamples, "samples", 1000000, "Number of sample points")

	rootCmd.AddCommand(walkCmd)
	rootCmd.AddCommand(markovCmd)
	rootCmd.AddCommand(brownianCmd)
	rootCmd.AddCommand(montecarloCmd)
}
