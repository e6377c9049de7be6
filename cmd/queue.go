package cmd

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/stochastic-sim/stochastic-sim/sim"
	"github.com/stochastic-sim/stochastic-sim/sim/queue"
)

var (
	arrivalRate float64 // Customer arrival rate (lambda)
	serviceRate float64 // Base service rate (mu)
	psRunLength float64 // Processor-sharing simulation run length

	failureRate float64 // Machine 1 failure rate
	repairRate  float64 // Machine 1 repair rate
	produceRate float64 // Machine 1 production rate
	consumeRate float64 // Machine 2 consumption rate
	bufferSize  float64 // Buffer capacity K
	fluidLength float64 // Fluid model run length
)

// queueCmd simulates an M/M/1 processor-sharing queue
var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Simulate an M/M/1 processor-sharing queue",
	Run: func(cmd *cobra.Command, args []string) {
		rng := sessionRNG().ForSubsystem(sim.SubsystemQueue)

		ps := queue.ProcessorSharing{
			Interarrival: func(r *rand.Rand) float64 { return r.ExpFloat64() / arrivalRate },
			Service:      func(r *rand.Rand) float64 { return r.ExpFloat64() / serviceRate },
		}
		res, err := ps.Simulate(psRunLength, rng)
		if err != nil {
			logrus.Fatalf("queue simulation failed: %v", err)
		}

		fmt.Printf("Mean Queue Length = %.4f\n", res.MeanQueueLength())
		fmt.Printf("Mean Sojourn Time = %.4f\n", res.MeanSojournTime())
		fmt.Printf("Completed Customers = %d\n", res.Completed())
	},
}

// fluidCmd simulates the two-machine on-off fluid buffer
var fluidCmd = &cobra.Command{
	Use:   "fluid",
	Short: "Simulate the two-machine on-off fluid buffer model",
	Run: func(cmd *cobra.Command, args []string) {
		rng := sessionRNG().ForSubsystem(sim.SubsystemQueue)

		cfg := queue.FluidConfig{
			FailureRate: failureRate,
			RepairRate:  repairRate,
			ProduceRate: produceRate,
			ConsumeRate: consumeRate,
			BufferSize:  bufferSize,
		}
		res, err := queue.SimulateFluid(cfg, fluidLength, rng, false)
		if err != nil {
			logrus.Fatalf("fluid simulation failed: %v", err)
		}
		fmt.Printf("Estimated average production rate: %.3f\n", res.AvgProductionRate)
	},
}

func init() {
	queueCmd.Flags().Float64Var(&arrivalRate, "lambda", 0.7, "Arrival rate")
	queueCmd.Flags().Float64Var(&serviceRate, "mu", 0.9, "Service rate")
	queueCmd.Flags().Float64Var(&psRunLength, "run-length", 10000.0, "Simulation run length")

	fluidCmd.Flags().Float64Var(&failureRate, "failure-rate", 1.0, "Machine 1 failure rate")
	fluidCmd.Flags().Float64Var(&repairRate, "repair-rate", 1.0, "Machine 1 repair rate")
	fluidCmd.Flags().Float64Var(&produceRate, "produce-rate", 5.0, "Machine 1 production rate")
	fluidCmd.Flags().Float64Var(&consumeRate, "consume-rate", 2.0, "Machine 2 consumption rate")
	fluidCmd.Flags().Float64Var(&bufferSize, "buffer-size", 4.0, "Buffer capacity")
	fluidCmd.Flags().Float64Var(&fluidLength, "run-length", 200.0, "Simulation run length")

	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(fluidCmd)
}
