package simview

import (
	"strings"

	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/Altair59/Elevator-Simulator/internal/simulation"
	"github.com/rs/zerolog"
)

var _ simulation.Visualizer = (*LogVisualizer)(nil)

// LogVisualizer writes one log line per hook.
type LogVisualizer struct {
	log *zerolog.Logger
}

func NewLogVisualizer(log *zerolog.Logger) *LogVisualizer {
	return &LogVisualizer{log: log}
}

func (lv *LogVisualizer) RenderHeader(round int) error {
	lv.log.Info().Int("round", round).Msgf("==== Round %d ====", round)
	return nil
}

func (lv *LogVisualizer) ShowArrivals(arrivals entity.FloorQueues) error {
	for _, floor := range arrivals.Floors() {
		people := arrivals[floor]
		if len(people) == 0 {
			continue
		}
		targets := make([]int, len(people))
		for i, person := range people {
			targets[i] = person.Target()
		}
		lv.log.Info().Int("floor", floor).Ints("targets", targets).Msgf("%d arrived on floor %d", len(people), floor)
	}
	return nil
}

func (lv *LogVisualizer) ShowDisembarking(person *entity.Person, elevator *entity.Elevator) error {
	lv.log.Info().
		Int("person", person.ID()).
		Int("elevator", elevator.ID()).
		Int("wait", person.WaitTime()).
		Str("mood", mood(person.AngerLevel())).
		Msgf("Person %d left elevator %d on floor %d", person.ID(), elevator.ID(), elevator.Floor())
	return nil
}

func (lv *LogVisualizer) ShowBoarding(person *entity.Person, elevator *entity.Elevator) error {
	lv.log.Info().
		Int("person", person.ID()).
		Int("elevator", elevator.ID()).
		Int("target", person.Target()).
		Str("mood", mood(person.AngerLevel())).
		Msgf("Person %d boarded elevator %d on floor %d", person.ID(), elevator.ID(), elevator.Floor())
	return nil
}

func (lv *LogVisualizer) ShowElevatorMoves(elevators []*entity.Elevator, directions []simconsts.Direction) error {
	moves := make([]string, len(elevators))
	for i, elevator := range elevators {
		moves[i] = elevator.String() + " " + directions[i].String()
	}
	lv.log.Info().Msgf("Moves: %s", strings.Join(moves, ", "))
	return nil
}

// mood renders an anger level as a bar, e.g. "##..." for level 2.
func mood(angerLevel int) string {
	angerLevel = max(0, min(angerLevel, simconsts.MAX_ANGER_LEVEL))
	return strings.Repeat("#", angerLevel) + strings.Repeat(".", simconsts.MAX_ANGER_LEVEL-angerLevel)
}
