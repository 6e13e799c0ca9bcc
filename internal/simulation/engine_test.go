package simulation

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/Altair59/Elevator-Simulator/internal/arrival"
	"github.com/Altair59/Elevator-Simulator/internal/dispatch"
	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/logger"
	"github.com/Altair59/Elevator-Simulator/internal/schedule"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/Altair59/Elevator-Simulator/internal/simstats"
	"github.com/rs/zerolog"
)

// traceVisualizer records every hook call as a short string and can be told
// to fail on a given one.
type traceVisualizer struct {
	calls  []string
	failOn string
}

var errVisualizer = errors.New("visualizer failed")

func (tv *traceVisualizer) record(call string) error {
	tv.calls = append(tv.calls, call)
	if tv.failOn != "" && call == tv.failOn {
		return errVisualizer
	}
	return nil
}

func (tv *traceVisualizer) RenderHeader(round int) error {
	return tv.record(fmt.Sprintf("header %d", round))
}

func (tv *traceVisualizer) ShowArrivals(arrivals entity.FloorQueues) error {
	return tv.record(fmt.Sprintf("arrivals %d", arrivals.Count()))
}

func (tv *traceVisualizer) ShowDisembarking(person *entity.Person, elevator *entity.Elevator) error {
	return tv.record(fmt.Sprintf("leave %d->%d at %d", person.Start(), person.Target(), elevator.Floor()))
}

func (tv *traceVisualizer) ShowBoarding(person *entity.Person, elevator *entity.Elevator) error {
	return tv.record(fmt.Sprintf("board %d->%d at %d", person.Start(), person.Target(), elevator.Floor()))
}

func (tv *traceVisualizer) ShowElevatorMoves(elevators []*entity.Elevator, directions []simconsts.Direction) error {
	return tv.record(fmt.Sprintf("moves %v", directions))
}

// fixedPolicy always answers with the same directions and moves nothing.
type fixedPolicy struct {
	directions []simconsts.Direction
}

func (fp fixedPolicy) MoveElevators(elevators []*entity.Elevator, waiting entity.FloorQueues, maxFloor int) []simconsts.Direction {
	return fp.directions
}

// floorGenerator puts one person on an arbitrary floor in round 0.
type floorGenerator struct {
	floor int
}

func (fg floorGenerator) Generate(round int) entity.FloorQueues {
	if round != 0 {
		return entity.FloorQueues{}
	}
	return entity.FloorQueues{fg.floor: {entity.NewPerson(fg.floor, 1)}}
}

func newScheduleEngine(t *testing.T, numFloors int, numElevators int, capacity int, s schedule.Schedule, policy dispatch.Policy, vs ...Visualizer) *Engine {
	t.Helper()
	generator, err := arrival.NewScheduleArrivals(numFloors, s)
	if err != nil {
		t.Fatalf("NewScheduleArrivals() returned error %v", err)
	}
	engine, err := NewEngine(Config{
		NumFloors:        numFloors,
		NumElevators:     numElevators,
		ElevatorCapacity: capacity,
		Arrivals:         generator,
		Dispatcher:       policy,
		Visualizers:      vs,
	})
	if err != nil {
		t.Fatalf("NewEngine() returned error %v", err)
	}
	return engine
}

func TestNewEngineRejectsBadConfig(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	generator, _ := arrival.NewRandomArrivals(5, 1, rand.New(rand.NewSource(1)))
	policy := dispatch.NewPushyPolicy()
	valid := Config{NumFloors: 5, NumElevators: 2, ElevatorCapacity: 3, Arrivals: generator, Dispatcher: policy}

	tests := map[string]func(c *Config){
		"one floor":       func(c *Config) { c.NumFloors = 1 },
		"no elevators":    func(c *Config) { c.NumElevators = 0 },
		"zero capacity":   func(c *Config) { c.ElevatorCapacity = 0 },
		"no generator":    func(c *Config) { c.Arrivals = nil },
		"no policy":       func(c *Config) { c.Dispatcher = nil },
		"nil visualizer":  func(c *Config) { c.Visualizers = []Visualizer{nil} },
		"negative floors": func(c *Config) { c.NumFloors = -3 },
	}

	for name, modify := range tests {
		config := valid
		modify(&config)
		if _, err := NewEngine(config); !errors.Is(err, ErrInvalidConfig) {
			t.Errorf("%s: NewEngine() error = %v, expected %v", name, err, ErrInvalidConfig)
		}
	}

	engine, err := NewEngine(valid)
	if err != nil {
		t.Fatalf("NewEngine() returned error %v", err)
	}
	for i, elevator := range engine.Elevators() {
		if elevator.ID() != i || elevator.Floor() != 1 || elevator.Capacity() != 3 || elevator.PassengerCount() != 0 {
			t.Errorf("Elevators()[%d] = %v, expected an empty elevator on floor 1 with capacity 3", i, elevator)
		}
	}
	if waiting := engine.Waiting(); len(waiting) != 5 || waiting.Count() != 0 {
		t.Errorf("Waiting() = %v, expected 5 empty floors", waiting)
	}
}

func TestNearestTargetDeliversOnePerson(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	trace := &traceVisualizer{}
	engine := newScheduleEngine(t, 5, 1, 1,
		schedule.Schedule{0: {{Start: 1, Target: 3}}},
		dispatch.NewShortSightedPolicy(), trace)

	summary, err := engine.Run(5)
	if err != nil {
		t.Fatalf("Run(5) returned error %v", err)
	}

	expected := simstats.Summary{
		RoundsRun:      5,
		TotalArrived:   1,
		TotalCompleted: 1,
		MaxWait:        2,
		MinWait:        2,
		AvgWait:        2,
	}
	if summary != expected {
		t.Errorf("Run(5) = %+v, expected %+v", summary, expected)
	}

	expectedCalls := []string{
		"header 0", "arrivals 1", "board 1->3 at 1", "moves [Up]",
		"header 1", "arrivals 0", "moves [Up]",
		"header 2", "arrivals 0", "leave 1->3 at 3", "moves [Stay]",
		"header 3", "arrivals 0", "moves [Stay]",
		"header 4", "arrivals 0", "moves [Stay]",
	}
	assertCalls(t, trace.calls, expectedCalls)
}

func TestRunWithoutArrivals(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	generator, err := arrival.NewRandomArrivals(4, 0, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	engine, err := NewEngine(Config{
		NumFloors:        4,
		NumElevators:     2,
		ElevatorCapacity: 2,
		Arrivals:         generator,
		Dispatcher:       dispatch.NewRandomPolicy(rand.New(rand.NewSource(1))),
	})
	if err != nil {
		t.Fatal(err)
	}

	summary, err := engine.Run(3)
	if err != nil {
		t.Fatalf("Run(3) returned error %v", err)
	}

	expected := simstats.Summary{RoundsRun: 3, MaxWait: -1, MinWait: -1, AvgWait: -1}
	if summary != expected {
		t.Errorf("Run(3) = %+v, expected %+v", summary, expected)
	}
}

func TestPushyHeadsForLowestWaitingFloor(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	engine := newScheduleEngine(t, 5, 1, 1,
		schedule.Schedule{0: {{Start: 4, Target: 1}, {Start: 2, Target: 5}}},
		dispatch.NewPushyPolicy())

	// Park the elevator on floor 3, between the two waiting floors.
	engine.elevators[0].Move(simconsts.Up)
	engine.elevators[0].Move(simconsts.Up)

	if _, err := engine.Run(1); err != nil {
		t.Fatalf("Run(1) returned error %v", err)
	}
	if floor := engine.Elevators()[0].Floor(); floor != 2 {
		t.Errorf("Floor() = %d after one round, expected 2", floor)
	}
}

func TestBoardingStopsAtFirstFailure(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	engine := newScheduleEngine(t, 5, 1, 1,
		schedule.Schedule{0: {{Start: 1, Target: 3}, {Start: 1, Target: 2}}},
		fixedPolicy{directions: []simconsts.Direction{simconsts.Stay}})

	if _, err := engine.Run(1); err != nil {
		t.Fatalf("Run(1) returned error %v", err)
	}

	passengers := engine.Elevators()[0].Passengers()
	if len(passengers) != 1 || passengers[0].Target() != 3 {
		t.Fatalf("Passengers() = %v, expected only the person heading to 3", passengers)
	}
	waiting := engine.Waiting()[1]
	if len(waiting) != 1 || waiting[0].Target() != 2 {
		t.Fatalf("Waiting()[1] = %v, expected the person heading to 2", waiting)
	}
	if waiting[0].WaitTime() != 1 {
		t.Errorf("WaitTime() of the person left behind = %d, expected 1", waiting[0].WaitTime())
	}
	if passengers[0].WaitTime() != 1 {
		t.Errorf("WaitTime() of the passenger = %d, expected 1", passengers[0].WaitTime())
	}
}

func TestDisembarkingPrecedesBoarding(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	trace := &traceVisualizer{}
	engine := newScheduleEngine(t, 3, 1, 1,
		schedule.Schedule{
			0: {{Start: 1, Target: 2}},
			1: {{Start: 2, Target: 3}},
		},
		dispatch.NewPushyPolicy(), trace)

	if _, err := engine.Run(2); err != nil {
		t.Fatalf("Run(2) returned error %v", err)
	}

	expectedCalls := []string{
		"header 0", "arrivals 1", "board 1->2 at 1", "moves [Up]",
		"header 1", "arrivals 1", "leave 1->2 at 2", "board 2->3 at 2", "moves [Up]",
	}
	assertCalls(t, trace.calls, expectedCalls)
}

func TestEveryPersonHasOneOwner(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	const numFloors = 6
	generator, err := arrival.NewRandomArrivals(numFloors, 3, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatal(err)
	}
	engine, err := NewEngine(Config{
		NumFloors:        numFloors,
		NumElevators:     3,
		ElevatorCapacity: 2,
		Arrivals:         generator,
		Dispatcher:       dispatch.NewShortSightedPolicy(),
	})
	if err != nil {
		t.Fatal(err)
	}

	for round := 0; round < 40; round++ {
		if err := engine.runRound(round); err != nil {
			t.Fatalf("runRound(%d) returned error %v", round, err)
		}

		owners := make(map[int]int)
		for _, floor := range engine.waiting.Floors() {
			for _, person := range engine.waiting[floor] {
				owners[person.ID()]++
				if person.Start() != floor {
					t.Errorf("round %d: %v waiting on floor %d", round, person, floor)
				}
			}
		}
		for _, elevator := range engine.elevators {
			if elevator.PassengerCount() > elevator.Capacity() {
				t.Errorf("round %d: %v is over capacity", round, elevator)
			}
			if elevator.Floor() < 1 || elevator.Floor() > numFloors {
				t.Errorf("round %d: %v left the shaft", round, elevator)
			}
			for _, passenger := range elevator.Passengers() {
				owners[passenger.ID()]++
			}
		}
		for id, count := range owners {
			if count != 1 {
				t.Errorf("round %d: person %d is held %d times", round, id, count)
			}
		}

		summary := engine.stats.Summary()
		if summary.TotalArrived != summary.TotalCompleted+len(owners) {
			t.Errorf("round %d: %d arrived, %d completed, %d in the building", round, summary.TotalArrived, summary.TotalCompleted, len(owners))
		}
	}
}

func TestRunTwice(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	engine := newScheduleEngine(t, 3, 1, 1, schedule.Schedule{}, dispatch.NewPushyPolicy())

	if _, err := engine.Run(0); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Run(0) error = %v, expected %v", err, ErrInvalidConfig)
	}
	if _, err := engine.Run(1); err != nil {
		t.Fatalf("Run(1) returned error %v", err)
	}
	if _, err := engine.Run(1); !errors.Is(err, ErrAlreadyRun) {
		t.Errorf("second Run(1) error = %v, expected %v", err, ErrAlreadyRun)
	}
}

func TestVisualizerErrorStopsRun(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	first := &traceVisualizer{failOn: "board 1->3 at 1"}
	second := &traceVisualizer{}
	engine := newScheduleEngine(t, 5, 1, 1,
		schedule.Schedule{0: {{Start: 1, Target: 3}}},
		dispatch.NewShortSightedPolicy(), first, second)

	_, err := engine.Run(5)
	if !errors.Is(err, errVisualizer) {
		t.Fatalf("Run(5) error = %v, expected %v", err, errVisualizer)
	}
	if err.Error() != "round 0: boarding: visualizer failed" {
		t.Errorf("Run(5) error = %q, expected it to name the round and stage", err.Error())
	}
	assertCalls(t, second.calls, []string{"header 0", "arrivals 1"})
}

func TestRunRejectsBadPolicyOrGenerator(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)

	engine, err := NewEngine(Config{
		NumFloors:        4,
		NumElevators:     2,
		ElevatorCapacity: 1,
		Arrivals:         floorGenerator{floor: 9},
		Dispatcher:       dispatch.NewPushyPolicy(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := engine.Run(1); err == nil {
		t.Errorf("Run(1) with arrivals on floor 9 of 4 succeeded, expected an error")
	}

	engine, err = NewEngine(Config{
		NumFloors:        4,
		NumElevators:     2,
		ElevatorCapacity: 1,
		Arrivals:         floorGenerator{floor: 2},
		Dispatcher:       fixedPolicy{directions: []simconsts.Direction{simconsts.Stay}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := engine.Run(1); err == nil {
		t.Errorf("Run(1) with one direction for two elevators succeeded, expected an error")
	}
}

func TestSnapshot(t *testing.T) {
	_ = logger.GetLoggerConfigured(zerolog.Disabled)
	engine := newScheduleEngine(t, 5, 1, 2,
		schedule.Schedule{0: {{Start: 1, Target: 3}, {Start: 4, Target: 1}}},
		dispatch.NewShortSightedPolicy())

	initial, err := engine.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() returned error %v", err)
	}
	if initial.Round != 0 || len(initial.Elevators) != 1 || initial.Elevators[0].Floor != 1 {
		t.Errorf("Snapshot() before Run = %+v, expected round 0 with one elevator on floor 1", initial)
	}

	if _, err := engine.Run(2); err != nil {
		t.Fatalf("Run(2) returned error %v", err)
	}

	snapshot, err := engine.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() returned error %v", err)
	}
	if snapshot.Round != 2 || snapshot.Arrived != 2 || snapshot.Completed != 0 {
		t.Errorf("Snapshot() = %+v, expected round 2 with 2 arrived and none completed", snapshot)
	}
	if snapshot.Elevators[0].Floor != 3 || len(snapshot.Elevators[0].Passengers) != 1 {
		t.Errorf("Snapshot().Elevators[0] = %+v, expected floor 3 with one passenger", snapshot.Elevators[0])
	}
	if len(snapshot.Waiting[4]) != 1 || snapshot.Waiting[4][0].WaitTime != 2 {
		t.Errorf("Snapshot().Waiting[4] = %+v, expected one person who waited 2 rounds", snapshot.Waiting[4])
	}

	snapshot.Elevators[0].Passengers[0].WaitTime = 99
	snapshot.Waiting[4] = nil

	again, _ := engine.Snapshot()
	if again.Elevators[0].Passengers[0].WaitTime != 2 || len(again.Waiting[4]) != 1 {
		t.Errorf("changing a Snapshot() result altered the engine's copy: %+v", again)
	}
}

func assertCalls(t *testing.T, actual []string, expected []string) {
	t.Helper()
	if len(actual) != len(expected) {
		t.Fatalf("visualizer calls = %q, expected %q", actual, expected)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Errorf("visualizer call %d = %q, expected %q", i, actual[i], expected[i])
		}
	}
}
