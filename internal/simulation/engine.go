package simulation

import (
	"errors"
	"fmt"

	"github.com/Altair59/Elevator-Simulator/internal/arrival"
	"github.com/Altair59/Elevator-Simulator/internal/dispatch"
	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/logger"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/Altair59/Elevator-Simulator/internal/simstats"
)

var Log = logger.GetLogger()

var (
	ErrInvalidConfig = errors.New("invalid simulation configuration")
	ErrAlreadyRun    = errors.New("simulation has already been run")
)

// Config describes the building and the strategies an Engine runs with.
type Config struct {
	NumFloors        int
	NumElevators     int
	ElevatorCapacity int
	Arrivals         arrival.Generator
	Dispatcher       dispatch.Policy
	Visualizers      []Visualizer
}

func (c Config) validate() error {
	switch {
	case c.NumFloors < simconsts.MIN_NUM_FLOORS:
		return fmt.Errorf("%w: %d floors, need at least %d", ErrInvalidConfig, c.NumFloors, simconsts.MIN_NUM_FLOORS)
	case c.NumElevators < 1:
		return fmt.Errorf("%w: %d elevators, need at least 1", ErrInvalidConfig, c.NumElevators)
	case c.ElevatorCapacity < 1:
		return fmt.Errorf("%w: elevator capacity %d, need at least 1", ErrInvalidConfig, c.ElevatorCapacity)
	case c.Arrivals == nil:
		return fmt.Errorf("%w: no arrival generator", ErrInvalidConfig)
	case c.Dispatcher == nil:
		return fmt.Errorf("%w: no dispatch policy", ErrInvalidConfig)
	}
	for i, v := range c.Visualizers {
		if v == nil {
			return fmt.Errorf("%w: visualizer %d is nil", ErrInvalidConfig, i)
		}
	}
	return nil
}

// Engine owns the elevators, the people waiting on each floor and the
// statistics of one simulation run.
type Engine struct {
	numFloors  int
	arrivals   arrival.Generator
	dispatcher dispatch.Policy
	visualizer visualizers

	elevators []*entity.Elevator
	waiting   entity.FloorQueues
	stats     *simstats.Recorder

	round    int
	started  bool
	snapshot State
}

// NewEngine builds a fleet of empty elevators on floor 1. Invalid settings
// return an error wrapping ErrInvalidConfig.
func NewEngine(config Config) (*Engine, error) {
	if err := config.validate(); err != nil {
		return nil, err
	}

	elevators := make([]*entity.Elevator, config.NumElevators)
	for i := range elevators {
		elevator, err := entity.NewElevator(i, config.ElevatorCapacity)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		elevators[i] = elevator
	}

	e := &Engine{
		numFloors:  config.NumFloors,
		arrivals:   config.Arrivals,
		dispatcher: config.Dispatcher,
		visualizer: append(visualizers(nil), config.Visualizers...),
		elevators:  elevators,
		waiting:    entity.NewFloorQueues(config.NumFloors),
		stats:      simstats.NewRecorder(),
	}
	e.snapshot = e.state()
	return e, nil
}

// Elevators returns the fleet in index order. The elevators are live.
func (e *Engine) Elevators() []*entity.Elevator {
	return append([]*entity.Elevator(nil), e.elevators...)
}

// Waiting returns a copy of the per-floor queues. The people are live.
func (e *Engine) Waiting() entity.FloorQueues {
	return e.waiting.Clone()
}

// Run plays numRounds rounds and summarises them. An engine can be run once.
func (e *Engine) Run(numRounds int) (simstats.Summary, error) {
	if numRounds < 1 {
		return simstats.Summary{}, fmt.Errorf("%w: %d rounds, need at least 1", ErrInvalidConfig, numRounds)
	}
	if e.started {
		return simstats.Summary{}, ErrAlreadyRun
	}
	e.started = true

	Log.Info().Msgf("Starting simulation: %d rounds, %d floors, %d elevators", numRounds, e.numFloors, len(e.elevators))

	for i := 0; i < numRounds; i++ {
		if err := e.runRound(i); err != nil {
			Log.Error().Msgf("Simulation stopped in round %d: %v", i, err)
			return simstats.Summary{}, err
		}
	}

	summary := e.stats.Summary()
	Log.Info().Msgf("Simulation finished: %v", summary)
	return summary, nil
}

func (e *Engine) runRound(round int) error {
	if err := e.visualizer.RenderHeader(round); err != nil {
		return fmt.Errorf("round %d: render header: %w", round, err)
	}
	if err := e.handleArrivals(round); err != nil {
		return fmt.Errorf("round %d: arrivals: %w", round, err)
	}
	if err := e.handleLeaving(); err != nil {
		return fmt.Errorf("round %d: leaving: %w", round, err)
	}
	if err := e.handleBoarding(); err != nil {
		return fmt.Errorf("round %d: boarding: %w", round, err)
	}
	if err := e.handleMoving(); err != nil {
		return fmt.Errorf("round %d: moving: %w", round, err)
	}
	e.updateWaitTimes()

	e.stats.RecordRound()
	e.round = round + 1
	e.snapshot = e.state()

	Log.Debug().Msgf("Round %d done: %d waiting, %d riding", round, e.waiting.Count(), e.riding())
	return nil
}

func (e *Engine) handleArrivals(round int) error {
	arrivals := e.arrivals.Generate(round)

	for _, floor := range arrivals.Floors() {
		if floor < simconsts.MIN_FLOOR || floor > e.numFloors {
			return fmt.Errorf("generator produced people on floor %d outside [%d, %d]", floor, simconsts.MIN_FLOOR, e.numFloors)
		}
	}
	for _, floor := range arrivals.Floors() {
		e.waiting.Append(floor, arrivals[floor]...)
	}
	e.stats.RecordArrivals(arrivals.Count())

	return e.visualizer.ShowArrivals(arrivals)
}

func (e *Engine) handleLeaving() error {
	for _, elevator := range e.elevators {
		for _, person := range elevator.Disembark() {
			e.stats.RecordCompletion(person.WaitTime())
			if err := e.visualizer.ShowDisembarking(person, elevator); err != nil {
				return err
			}
		}
	}
	return nil
}

// handleBoarding fills each elevator from the front of its floor's queue and
// stops at the first person who does not fit.
func (e *Engine) handleBoarding() error {
	for _, elevator := range e.elevators {
		floor := elevator.Floor()
		for len(e.waiting[floor]) > 0 {
			person := e.waiting[floor][0]
			if !elevator.Board(person) {
				break
			}
			e.waiting[floor] = e.waiting[floor][1:]
			if err := e.visualizer.ShowBoarding(person, elevator); err != nil {
				return err
			}
		}
	}
	return nil
}

func (e *Engine) handleMoving() error {
	directions := e.dispatcher.MoveElevators(e.Elevators(), e.waiting, e.numFloors)
	if len(directions) != len(e.elevators) {
		return fmt.Errorf("dispatch policy returned %d directions for %d elevators", len(directions), len(e.elevators))
	}
	return e.visualizer.ShowElevatorMoves(e.Elevators(), directions)
}

func (e *Engine) updateWaitTimes() {
	for _, floor := range e.waiting.Floors() {
		for _, person := range e.waiting[floor] {
			person.RecordWait()
		}
	}
	for _, elevator := range e.elevators {
		for _, passenger := range elevator.Passengers() {
			passenger.RecordWait()
		}
	}
}

func (e *Engine) riding() int {
	count := 0
	for _, elevator := range e.elevators {
		count += elevator.PassengerCount()
	}
	return count
}
