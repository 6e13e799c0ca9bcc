package simevent

import (
	"io"

	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/Altair59/Elevator-Simulator/internal/simulation"
)

var _ simulation.Visualizer = (*Recorder)(nil)

// Recorder keeps every event of a run in order.
type Recorder struct {
	events []SimulationEvent
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RenderHeader(round int) error {
	r.events = append(r.events, RoundStart(round))
	return nil
}

func (r *Recorder) ShowArrivals(arrivals entity.FloorQueues) error {
	r.events = append(r.events, Arrival(arrivals))
	return nil
}

func (r *Recorder) ShowDisembarking(person *entity.Person, elevator *entity.Elevator) error {
	r.events = append(r.events, Disembark(person, elevator))
	return nil
}

func (r *Recorder) ShowBoarding(person *entity.Person, elevator *entity.Elevator) error {
	r.events = append(r.events, Board(person, elevator))
	return nil
}

func (r *Recorder) ShowElevatorMoves(elevators []*entity.Elevator, directions []simconsts.Direction) error {
	r.events = append(r.events, Move(elevators, directions))
	return nil
}

// Events returns deep copies of the recorded events.
func (r *Recorder) Events() ([]SimulationEvent, error) {
	events := make([]SimulationEvent, len(r.events))
	for i := range r.events {
		clone, err := r.events[i].Clone()
		if err != nil {
			return nil, err
		}
		events[i] = clone
	}
	return events, nil
}

// WriteLines writes the recorded events to w, one encoded event per line.
func (r *Recorder) WriteLines(w io.Writer) error {
	events, err := r.Events()
	if err != nil {
		return err
	}

	for _, event := range events {
		data, err := Encode(event)
		if err != nil {
			return err
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return err
		}
	}
	return nil
}
