package dispatch

import (
	"math"

	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

const noDistance = math.MaxInt32

// ShortSightedPolicy heads for the nearest floor with someone waiting when
// empty, and for the nearest passenger target otherwise. On equal distance
// the floor below wins.
type ShortSightedPolicy struct{}

func NewShortSightedPolicy() *ShortSightedPolicy {
	return &ShortSightedPolicy{}
}

func (ShortSightedPolicy) MoveElevators(elevators []*entity.Elevator, waiting entity.FloorQueues, maxFloor int) []simconsts.Direction {
	return moveAll(elevators, maxFloor, func(elevator *entity.Elevator) simconsts.Direction {
		var candidates []int
		if elevator.PassengerCount() == 0 {
			for _, floor := range waiting.Floors() {
				if len(waiting[floor]) > 0 {
					candidates = append(candidates, floor)
				}
			}
		} else {
			for _, passenger := range elevator.Passengers() {
				candidates = append(candidates, passenger.Target())
			}
		}

		floor, ok := nearest(elevator.Floor(), candidates)
		return MotionDirection(elevator.Floor(), floor, ok)
	})
}

// nearest keeps the smallest signed difference candidate-current, replacing it
// when a later candidate is strictly closer, or equally close and below.
func nearest(current int, candidates []int) (int, bool) {
	best := noDistance
	target := 0
	found := false

	for _, candidate := range candidates {
		difference := candidate - current
		if abs(difference) < abs(best) || (abs(difference) == abs(best) && difference < best) {
			best = difference
			target = candidate
			found = true
		}
	}

	return target, found
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
