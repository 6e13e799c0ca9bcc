package simevent

import (
	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/tiendc/go-deepcopy"
)

type SimulationEvent struct {
	//Golang doesnt support union types,
	//so we have to pass any of the below
	//structs
	Value any
}

type RoundStartEvent struct {
	Round int `json:"round"`
}

type ArrivalEvent struct {
	Arrivals map[int][]entity.PersonState `json:"arrivals"`
}

type DisembarkEvent struct {
	Person   entity.PersonState   `json:"person"`
	Elevator entity.ElevatorState `json:"elevator"`
}

type BoardEvent struct {
	Person   entity.PersonState   `json:"person"`
	Elevator entity.ElevatorState `json:"elevator"`
}

type MoveEvent struct {
	Elevators  []entity.ElevatorState `json:"elevators"`
	Directions []simconsts.Direction  `json:"directions"`
}

func (rse RoundStartEvent) Wrap() SimulationEvent {
	return SimulationEvent{Value: rse}
}

func (e *SimulationEvent) EventType() string {
	switch e.Value.(type) {
	case RoundStartEvent:
		return "RoundStartEvent"
	case ArrivalEvent:
		return "ArrivalEvent"
	case DisembarkEvent:
		return "DisembarkEvent"
	case BoardEvent:
		return "BoardEvent"
	case MoveEvent:
		return "MoveEvent"
	default:
		return "UnknownEvent"
	}
}

// Clone returns an event that shares no slices or maps with e.
func (e *SimulationEvent) Clone() (SimulationEvent, error) {
	switch value := e.Value.(type) {
	case RoundStartEvent:
		return cloneValue(value)
	case ArrivalEvent:
		return cloneValue(value)
	case DisembarkEvent:
		return cloneValue(value)
	case BoardEvent:
		return cloneValue(value)
	case MoveEvent:
		return cloneValue(value)
	default:
		return SimulationEvent{}, ErrUnknownEvent
	}
}

func cloneValue[T any](value T) (SimulationEvent, error) {
	var clone T
	if err := deepcopy.Copy(&clone, &value); err != nil {
		return SimulationEvent{}, err
	}
	return SimulationEvent{Value: clone}, nil
}
