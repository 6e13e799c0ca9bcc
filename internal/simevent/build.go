package simevent

import (
	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

// The constructors below take the arguments of the matching Visualizer hook
// and capture the entities as they are at the time of the call.

func RoundStart(round int) SimulationEvent {
	return RoundStartEvent{Round: round}.Wrap()
}

func Arrival(arrivals entity.FloorQueues) SimulationEvent {
	return SimulationEvent{Value: ArrivalEvent{Arrivals: arrivals.States()}}
}

func Disembark(person *entity.Person, elevator *entity.Elevator) SimulationEvent {
	return SimulationEvent{Value: DisembarkEvent{Person: person.State(), Elevator: elevator.State()}}
}

func Board(person *entity.Person, elevator *entity.Elevator) SimulationEvent {
	return SimulationEvent{Value: BoardEvent{Person: person.State(), Elevator: elevator.State()}}
}

func Move(elevators []*entity.Elevator, directions []simconsts.Direction) SimulationEvent {
	states := make([]entity.ElevatorState, len(elevators))
	for i, elevator := range elevators {
		states[i] = elevator.State()
	}
	return SimulationEvent{Value: MoveEvent{
		Elevators:  states,
		Directions: append([]simconsts.Direction(nil), directions...),
	}}
}
