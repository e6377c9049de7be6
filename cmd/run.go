package cmd

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/stochastic-sim/stochastic-sim/sim"
	"github.com/stochastic-sim/stochastic-sim/sim/brownian"
	"github.com/stochastic-sim/stochastic-sim/sim/markov"
	"github.com/stochastic-sim/stochastic-sim/sim/montecarlo"
	"github.com/stochastic-sim/stochastic-sim/sim/pointprocess"
	"github.com/stochastic-sim/stochastic-sim/sim/randomwalk"
)

var scenarioPath string // Path to the scenario YAML file

// runCmd executes every process in a scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run all processes defined in a scenario file",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatal("no scenario file provided; use --scenario")
		}
		spec, err := LoadScenario(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to load scenario: %v", err)
		}

		logrus.Infof("Running scenario with seed=%d, %d process(es), %d run(s) each",
			spec.Seed, len(spec.Processes), spec.Runs)

		session := sim.NewPartitionedRNG(sim.NewSimulationKey(spec.Seed))
		for i := range spec.Processes {
			p := &spec.Processes[i]
			summary, err := runProcess(p, spec.Runs, session)
			if err != nil {
				logrus.Fatalf("process %d (%s) failed: %v", i, p.Kind, err)
			}
			summary.Print()
		}
	},
}

// runProcess executes one process spec the requested number of times,
// drawing from the session stream matching the process family, and
// collects the scalar outcome of each run.
func runProcess(p *ProcessSpec, runs int, session *sim.PartitionedRNG) (*sim.RunSummary, error) {
	var (
		outcome func(rng *rand.Rand) (float64, error)
		stream  string
		label   string
	)

	switch p.Kind {
	case "homogeneous":
		stream = sim.SubsystemPointProcess
		label = fmt.Sprintf("homogeneous arrivals (rate=%g, T=%g)", p.Rate, p.Horizon)
		outcome = func(rng *rand.Rand) (float64, error) {
			arrivals, err := pointprocess.Homogeneous(p.Rate, p.Horizon, rng)
			return float64(len(arrivals)), err
		}

	case "thinned":
		stream = sim.SubsystemPointProcess
		label = fmt.Sprintf("thinned arrivals (bound=%g, T=%g)", p.Bound, p.Horizon)
		if p.Intensity == nil {
			return nil, fmt.Errorf("thinned process requires an intensity spec")
		}
		intensity := p.Intensity.Func()
		outcome = func(rng *rand.Rand) (float64, error) {
			arrivals, err := pointprocess.Thinned(intensity, p.Bound, p.Horizon, rng)
			return float64(len(arrivals)), err
		}

	case "compound":
		stream = sim.SubsystemPointProcess
		label = fmt.Sprintf("compound final value (rate=%g, T=%g)", p.Rate, p.Horizon)
		jump, err := p.Jump.Sampler()
		if err != nil {
			return nil, err
		}
		outcome = func(rng *rand.Rand) (float64, error) {
			path, err := pointprocess.Compound(p.Rate, p.Horizon, rng, jump)
			if err != nil {
				return 0, err
			}
			v, _ := pointprocess.FinalValue(path)
			return v, nil
		}

	case "walk":
		stream = sim.SubsystemRandomWalk
		label = fmt.Sprintf("walk endpoint (p=%g, steps=%d)", p.P, p.Steps)
		outcome = func(rng *rand.Rand) (float64, error) {
			positions, err := randomwalk.Walk(p.P, p.Steps, rng)
			if err != nil {
				return 0, err
			}
			return float64(positions[len(positions)-1]), nil
		}

	case "markov":
		stream = sim.SubsystemMarkov
		label = fmt.Sprintf("markov final state (steps=%d)", p.Steps)
		chain, err := markov.NewChain(p.Matrix)
		if err != nil {
			return nil, err
		}
		outcome = func(rng *rand.Rand) (float64, error) {
			states, err := chain.Simulate(p.Start, p.Steps, rng)
			if err != nil {
				return 0, err
			}
			return float64(states[len(states)-1]), nil
		}

	case "brownian":
		stream = sim.SubsystemBrownian
		label = fmt.Sprintf("brownian terminal value (T=%g, steps=%d)", p.Horizon, p.Steps)
		outcome = func(rng *rand.Rand) (float64, error) {
			_, values, err := brownian.Path1D(p.Horizon, p.Steps, rng)
			if err != nil {
				return 0, err
			}
			return values[len(values)-1], nil
		}

	case "montecarlo-pi":
		stream = sim.SubsystemMonteCarlo
		label = fmt.Sprintf("pi estimate (samples=%d)", p.Samples)
		outcome = func(rng *rand.Rand) (float64, error) {
			return montecarlo.EstimatePi(p.Samples, rng)
		}

	default:
		return nil, fmt.Errorf("unknown kind %q", p.Kind)
	}

	rng := session.ForSubsystem(stream)
	summary := sim.NewRunSummary(label)
	for r := 0; r < runs; r++ {
		v, err := outcome(rng)
		if err != nil {
			return nil, err
		}
		summary.Record(v)
	}
	return summary, nil
}

func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "Path to the scenario YAML file")

	rootCmd.AddCommand(runCmd)
}
