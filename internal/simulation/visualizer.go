package simulation

import (
	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

// Visualizer is told about everything that happens in a round, in the order
// it happens. Any error it returns stops the run.
type Visualizer interface {
	RenderHeader(round int) error
	ShowArrivals(arrivals entity.FloorQueues) error
	ShowDisembarking(person *entity.Person, elevator *entity.Elevator) error
	ShowBoarding(person *entity.Person, elevator *entity.Elevator) error
	ShowElevatorMoves(elevators []*entity.Elevator, directions []simconsts.Direction) error
}

// visualizers fans every hook out to each visualizer, stopping at the first error.
type visualizers []Visualizer

func (vs visualizers) RenderHeader(round int) error {
	for _, v := range vs {
		if err := v.RenderHeader(round); err != nil {
			return err
		}
	}
	return nil
}

func (vs visualizers) ShowArrivals(arrivals entity.FloorQueues) error {
	for _, v := range vs {
		if err := v.ShowArrivals(arrivals); err != nil {
			return err
		}
	}
	return nil
}

func (vs visualizers) ShowDisembarking(person *entity.Person, elevator *entity.Elevator) error {
	for _, v := range vs {
		if err := v.ShowDisembarking(person, elevator); err != nil {
			return err
		}
	}
	return nil
}

func (vs visualizers) ShowBoarding(person *entity.Person, elevator *entity.Elevator) error {
	for _, v := range vs {
		if err := v.ShowBoarding(person, elevator); err != nil {
			return err
		}
	}
	return nil
}

func (vs visualizers) ShowElevatorMoves(elevators []*entity.Elevator, directions []simconsts.Direction) error {
	for _, v := range vs {
		if err := v.ShowElevatorMoves(elevators, directions); err != nil {
			return err
		}
	}
	return nil
}
