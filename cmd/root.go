package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/stochastic-sim/stochastic-sim/sim"
)

var (
	seed     int64  // Seed for the simulation session
	logLevel string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "stochastic-sim",
	Short: "Simulators for stochastic processes: Poisson streams, random walks, Markov chains, Brownian motion, Monte Carlo estimators and queues",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// sessionRNG builds the per-session partitioned RNG from the --seed flag.
func sessionRNG() *sim.PartitionedRNG {
	return sim.NewPartitionedRNG(sim.NewSimulationKey(seed))
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up persistent CLI flags
func init() {
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 42, "Seed for the random engine session")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
}
