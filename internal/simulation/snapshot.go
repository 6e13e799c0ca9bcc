package simulation

import (
	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/tiendc/go-deepcopy"
)

// State is a detached picture of an engine after a completed round.
type State struct {
	Round     int                          `json:"round"`
	Elevators []entity.ElevatorState       `json:"elevators"`
	Waiting   map[int][]entity.PersonState `json:"waiting"`
	Arrived   int                          `json:"arrived"`
	Completed int                          `json:"completed"`
	WaitTimes []int                        `json:"wait_times"`
}

func (e *Engine) state() State {
	elevators := make([]entity.ElevatorState, len(e.elevators))
	for i, elevator := range e.elevators {
		elevators[i] = elevator.State()
	}

	summary := e.stats.Summary()
	return State{
		Round:     e.round,
		Elevators: elevators,
		Waiting:   e.waiting.States(),
		Arrived:   summary.TotalArrived,
		Completed: summary.TotalCompleted,
		WaitTimes: e.stats.WaitTimes(),
	}
}

// Snapshot returns a deep copy of the state at the end of the last completed
// round, or the initial state before any round ran. The copy shares nothing
// with the engine and may be handed to other goroutines.
func (e *Engine) Snapshot() (State, error) {
	var snapshot State
	if err := deepcopy.Copy(&snapshot, &e.snapshot); err != nil {
		return State{}, err
	}
	return snapshot, nil
}
