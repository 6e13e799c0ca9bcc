package config

import (
	"fmt"
	"math/rand"

	"github.com/Altair59/Elevator-Simulator/internal/arrival"
	"github.com/Altair59/Elevator-Simulator/internal/dispatch"
	"github.com/Altair59/Elevator-Simulator/internal/schedule"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/Altair59/Elevator-Simulator/internal/simulation"
)

func (c Config) NewArrivalGenerator(rng *rand.Rand) (arrival.Generator, error) {
	switch c.Arrivals {
	case simconsts.RandomArrivals:
		generator, err := arrival.NewRandomArrivals(c.NumFloors, c.NumPeoplePerRound, rng)
		if err != nil {
			return nil, err
		}
		return generator, nil
	case simconsts.FileArrivals:
		s, err := schedule.Load(c.ArrivalFile)
		if err != nil {
			return nil, err
		}
		generator, err := arrival.NewScheduleArrivals(c.NumFloors, s)
		if err != nil {
			return nil, err
		}
		return generator, nil
	default:
		return nil, fmt.Errorf("%w: unknown arrivals %q", ErrInvalid, c.Arrivals)
	}
}

func (c Config) NewPolicy(rng *rand.Rand) (dispatch.Policy, error) {
	switch c.Algorithm {
	case simconsts.RandomAlgorithm:
		return dispatch.NewRandomPolicy(rng), nil
	case simconsts.PushyAlgorithm:
		return dispatch.NewPushyPolicy(), nil
	case simconsts.ShortSightedAlgorithm:
		return dispatch.NewShortSightedPolicy(), nil
	default:
		return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalid, c.Algorithm)
	}
}

// EngineConfig validates c and builds the simulation.Config for it. The
// generator and the policy share rng.
func (c Config) EngineConfig(rng *rand.Rand, visualizers ...simulation.Visualizer) (simulation.Config, error) {
	if err := c.Validate(); err != nil {
		return simulation.Config{}, err
	}

	generator, err := c.NewArrivalGenerator(rng)
	if err != nil {
		return simulation.Config{}, err
	}
	policy, err := c.NewPolicy(rng)
	if err != nil {
		return simulation.Config{}, err
	}

	return simulation.Config{
		NumFloors:        c.NumFloors,
		NumElevators:     c.NumElevators,
		ElevatorCapacity: c.ElevatorCapacity,
		Arrivals:         generator,
		Dispatcher:       policy,
		Visualizers:      visualizers,
	}, nil
}
