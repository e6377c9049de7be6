package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stochastic-sim/stochastic-sim/sim/pointprocess"
)

// ScenarioSpec is the top-level scenario configuration.
// Loaded from YAML via LoadScenario(path).
type ScenarioSpec struct {
	Version   string        `yaml:"version"`
	Seed      int64         `yaml:"seed"`
	Runs      int           `yaml:"runs,omitempty"` // repetitions per process, default 1
	Processes []ProcessSpec `yaml:"processes"`
}

// ProcessSpec describes one simulation to run. Kind selects the simulator;
// the remaining fields parameterize it and are ignored where not relevant.
type ProcessSpec struct {
	Kind      string         `yaml:"kind"`
	Rate      float64        `yaml:"rate,omitempty"`
	Horizon   float64        `yaml:"horizon,omitempty"`
	Bound     float64        `yaml:"bound,omitempty"`
	Intensity *IntensitySpec `yaml:"intensity,omitempty"`
	Jump      *JumpSpec      `yaml:"jump,omitempty"`
	Steps     int            `yaml:"steps,omitempty"`
	P         float64        `yaml:"p,omitempty"`
	Samples   int            `yaml:"samples,omitempty"`
	Matrix    [][]float64    `yaml:"matrix,omitempty"`
	Start     int            `yaml:"start,omitempty"`
}

// IntensitySpec parameterizes the sinusoidal intensity
// lambda(t) = base + amplitude * sin(2 pi t / period).
type IntensitySpec struct {
	Base      float64 `yaml:"base"`
	Amplitude float64 `yaml:"amplitude"`
	Period    float64 `yaml:"period"`
}

// Func returns the intensity as a callable.
func (s *IntensitySpec) Func() pointprocess.Intensity {
	return func(t float64) float64 {
		return s.Base + s.Amplitude*math.Sin(2*math.Pi*t/s.Period)
	}
}

// JumpSpec parameterizes a jump-size distribution.
type JumpSpec struct {
	Dist   string             `yaml:"dist"`
	Params map[string]float64 `yaml:"params,omitempty"`
}

// requireParam checks that all required keys exist in a params map.
func requireParam(params map[string]float64, keys ...string) error {
	for _, k := range keys {
		if _, ok := params[k]; !ok {
			return fmt.Errorf("jump distribution requires parameter %q", k)
		}
	}
	return nil
}

// Sampler builds the JumpSampler described by the spec.
func (s *JumpSpec) Sampler() (pointprocess.JumpSampler, error) {
	switch s.Dist {
	case "uniform":
		if err := requireParam(s.Params, "min", "max"); err != nil {
			return nil, err
		}
		min, max := s.Params["min"], s.Params["max"]
		if max <= min {
			return nil, fmt.Errorf("uniform jump range [%v, %v) is empty", min, max)
		}
		return func(r *rand.Rand) float64 {
			return min + (max-min)*r.Float64()
		}, nil

	case "normal":
		if err := requireParam(s.Params, "mean", "std_dev"); err != nil {
			return nil, err
		}
		mean, sd := s.Params["mean"], s.Params["std_dev"]
		if sd < 0 {
			return nil, fmt.Errorf("normal jump std_dev %v is negative", sd)
		}
		return func(r *rand.Rand) float64 {
			return r.NormFloat64()*sd + mean
		}, nil

	case "constant":
		if err := requireParam(s.Params, "value"); err != nil {
			return nil, err
		}
		v := s.Params["value"]
		return func(*rand.Rand) float64 { return v }, nil

	default:
		return nil, fmt.Errorf("unknown jump distribution %q", s.Dist)
	}
}

// scenarioKinds enumerates the supported process kinds.
var scenarioKinds = map[string]bool{
	"homogeneous":   true,
	"thinned":       true,
	"compound":      true,
	"walk":          true,
	"markov":        true,
	"brownian":      true,
	"montecarlo-pi": true,
}

// Validate checks the scenario for structural problems. Parameter-level
// validation is left to the simulators themselves.
func (s *ScenarioSpec) Validate() error {
	if s.Version != "" && s.Version != "1" {
		return fmt.Errorf("unsupported scenario version %q", s.Version)
	}
	if s.Runs < 0 {
		return fmt.Errorf("runs must be non-negative, got %d", s.Runs)
	}
	if len(s.Processes) == 0 {
		return fmt.Errorf("scenario defines no processes")
	}
	for i, p := range s.Processes {
		if !scenarioKinds[p.Kind] {
			return fmt.Errorf("process %d: unknown kind %q", i, p.Kind)
		}
		if p.Kind == "thinned" && p.Intensity == nil {
			return fmt.Errorf("process %d: thinned requires an intensity spec", i)
		}
		if p.Kind == "compound" && p.Jump == nil {
			return fmt.Errorf("process %d: compound requires a jump spec", i)
		}
	}
	return nil
}

// LoadScenario reads and validates a scenario YAML file.
func LoadScenario(path string) (*ScenarioSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	var spec ScenarioSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if spec.Runs == 0 {
		spec.Runs = 1
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &spec, nil
}
