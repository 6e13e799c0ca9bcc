package dispatch

import (
	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/logger"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

var Log = logger.GetLogger()

// Policy decides, once per round, where every elevator goes. It returns one
// direction per elevator in the same order and applies each move itself.
// A returned direction never takes an elevator outside [1, maxFloor].
type Policy interface {
	MoveElevators(elevators []*entity.Elevator, waiting entity.FloorQueues, maxFloor int) []simconsts.Direction
}

// MotionDirection is Stay when there is no target, Up when target is above
// current and Down otherwise. Equal floors therefore give Down.
func MotionDirection(current int, target int, ok bool) simconsts.Direction {
	if !ok {
		return simconsts.Stay
	}
	if current < target {
		return simconsts.Up
	}
	return simconsts.Down
}

// moveAll applies choose to each elevator in order, turning any illegal
// choice into Stay before moving.
func moveAll(elevators []*entity.Elevator, maxFloor int, choose func(*entity.Elevator) simconsts.Direction) []simconsts.Direction {
	directions := make([]simconsts.Direction, len(elevators))

	for i, elevator := range elevators {
		direction := choose(elevator)
		if !direction.Legal(elevator.Floor(), maxFloor) {
			Log.Warn().Msgf("%v cannot go %v from floor %d, staying", elevator, direction, elevator.Floor())
			direction = simconsts.Stay
		}
		elevator.Move(direction)
		directions[i] = direction
	}

	return directions
}

// lowestWaitingFloor scans floors upwards and returns the first with people.
func lowestWaitingFloor(waiting entity.FloorQueues) (int, bool) {
	for _, floor := range waiting.Floors() {
		if len(waiting[floor]) > 0 {
			return floor, true
		}
	}
	return 0, false
}
