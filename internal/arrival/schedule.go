package arrival

import (
	"fmt"

	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/schedule"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

// ScheduleArrivals replays a fixed schedule. Every person is created once,
// up front, so asking for the same round twice hands out the same people.
type ScheduleArrivals struct {
	rounds map[int]entity.FloorQueues
}

func NewScheduleArrivals(maxFloor int, s schedule.Schedule) (*ScheduleArrivals, error) {
	if maxFloor < simconsts.MIN_NUM_FLOORS {
		return nil, fmt.Errorf("%w: max floor %d is below %d", ErrInvalid, maxFloor, simconsts.MIN_NUM_FLOORS)
	}

	rounds := make(map[int]entity.FloorQueues, len(s))
	for round, pairs := range s {
		queues := make(entity.FloorQueues)
		for _, pair := range pairs {
			if err := checkPair(pair, maxFloor); err != nil {
				return nil, fmt.Errorf("%w: round %d: %v", ErrInvalid, round, err)
			}
			queues.Append(pair.Start, entity.NewPerson(pair.Start, pair.Target))
		}
		rounds[round] = queues
	}

	return &ScheduleArrivals{rounds: rounds}, nil
}

func checkPair(pair schedule.Pair, maxFloor int) error {
	for _, floor := range []int{pair.Start, pair.Target} {
		if floor < simconsts.MIN_FLOOR || floor > maxFloor {
			return fmt.Errorf("floor %d outside [%d, %d]", floor, simconsts.MIN_FLOOR, maxFloor)
		}
	}
	if pair.Start == pair.Target {
		return fmt.Errorf("start and target are both floor %d", pair.Start)
	}
	return nil
}

// Generate returns the people scheduled for round, or an empty map.
func (sa *ScheduleArrivals) Generate(round int) entity.FloorQueues {
	queues, ok := sa.rounds[round]
	if !ok {
		return entity.FloorQueues{}
	}
	return queues.Clone()
}
