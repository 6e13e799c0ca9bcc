package dispatch

import (
	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

// PushyPolicy heads for the lowest floor with someone waiting when empty,
// and for the first passenger's target otherwise.
type PushyPolicy struct{}

func NewPushyPolicy() *PushyPolicy {
	return &PushyPolicy{}
}

func (PushyPolicy) MoveElevators(elevators []*entity.Elevator, waiting entity.FloorQueues, maxFloor int) []simconsts.Direction {
	return moveAll(elevators, maxFloor, func(elevator *entity.Elevator) simconsts.Direction {
		if elevator.PassengerCount() == 0 {
			floor, ok := lowestWaitingFloor(waiting)
			return MotionDirection(elevator.Floor(), floor, ok)
		}
		return MotionDirection(elevator.Floor(), elevator.Passengers()[0].Target(), true)
	})
}
