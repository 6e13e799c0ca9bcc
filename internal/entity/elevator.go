package entity

import (
	"errors"
	"fmt"

	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

var ErrInvalidCapacity = errors.New("elevator capacity must be at least 1")

// Elevator holds at most capacity passengers, kept in boarding order.
type Elevator struct {
	id         int
	floor      int
	capacity   int
	passengers []*Person
}

// NewElevator returns an empty elevator parked on the ground floor.
func NewElevator(id int, capacity int) (*Elevator, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Elevator{
		id:         id,
		floor:      1,
		capacity:   capacity,
		passengers: make([]*Person, 0, capacity),
	}, nil
}

func (e *Elevator) ID() int             { return e.id }
func (e *Elevator) Floor() int          { return e.floor }
func (e *Elevator) Capacity() int       { return e.capacity }
func (e *Elevator) PassengerCount() int { return len(e.passengers) }

// Passengers returns the riders in boarding order. The slice is a copy.
func (e *Elevator) Passengers() []*Person {
	passengers := make([]*Person, len(e.passengers))
	copy(passengers, e.passengers)
	return passengers
}

// Board adds p unless the elevator is full.
func (e *Elevator) Board(p *Person) bool {
	if len(e.passengers) >= e.capacity {
		return false
	}
	e.passengers = append(e.passengers, p)
	return true
}

// Disembark removes every passenger whose target is the current floor.
// Both the leavers and the remaining riders keep their relative order.
func (e *Elevator) Disembark() []*Person {
	var leaving []*Person
	staying := e.passengers[:0]

	for _, passenger := range e.passengers {
		if passenger.target == e.floor {
			leaving = append(leaving, passenger)
		} else {
			staying = append(staying, passenger)
		}
	}
	for i := len(staying); i < len(e.passengers); i++ {
		e.passengers[i] = nil
	}
	e.passengers = staying

	return leaving
}

// Move shifts the elevator one floor in direction. Keeping the result inside
// the building is the caller's job.
func (e *Elevator) Move(direction simconsts.Direction) {
	e.floor += int(direction)
}

// Fullness is the share of seats taken, in [0, 1].
func (e *Elevator) Fullness() float64 {
	return float64(len(e.passengers)) / float64(e.capacity)
}

func (e *Elevator) State() ElevatorState {
	passengers := make([]PersonState, len(e.passengers))
	for i, passenger := range e.passengers {
		passengers[i] = passenger.State()
	}

	return ElevatorState{
		ID:         e.id,
		Floor:      e.floor,
		Capacity:   e.capacity,
		Passengers: passengers,
	}
}

func (e *Elevator) String() string {
	return fmt.Sprintf("Elevator-%d(floor %d, %d/%d)", e.id, e.floor, len(e.passengers), e.capacity)
}
