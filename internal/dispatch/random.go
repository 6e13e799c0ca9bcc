package dispatch

import (
	"math/rand"

	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

// RandomPolicy sends each elevator Up, Down or nowhere with equal odds,
// drawing again until the move is legal.
type RandomPolicy struct {
	rng *rand.Rand
}

func NewRandomPolicy(rng *rand.Rand) *RandomPolicy {
	return &RandomPolicy{rng: rng}
}

func (rp *RandomPolicy) MoveElevators(elevators []*entity.Elevator, waiting entity.FloorQueues, maxFloor int) []simconsts.Direction {
	return moveAll(elevators, maxFloor, func(elevator *entity.Elevator) simconsts.Direction {
		for {
			direction := simconsts.Direction(rp.rng.Intn(3) - 1)
			if direction.Legal(elevator.Floor(), maxFloor) {
				return direction
			}
		}
	})
}
