package arrival

import (
	"fmt"
	"math/rand"

	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

// RandomArrivals creates numPeople people per round with uniformly drawn
// start and target floors.
type RandomArrivals struct {
	maxFloor  int
	numPeople int
	rng       *rand.Rand
}

// NewRandomArrivals takes numPeople == 0 to mean no people are generated.
func NewRandomArrivals(maxFloor int, numPeople int, rng *rand.Rand) (*RandomArrivals, error) {
	if maxFloor < simconsts.MIN_NUM_FLOORS {
		return nil, fmt.Errorf("%w: max floor %d is below %d", ErrInvalid, maxFloor, simconsts.MIN_NUM_FLOORS)
	}
	if numPeople < 0 {
		return nil, fmt.Errorf("%w: negative number of people %d", ErrInvalid, numPeople)
	}
	if rng == nil {
		return nil, fmt.Errorf("%w: no random source", ErrInvalid)
	}

	return &RandomArrivals{
		maxFloor:  maxFloor,
		numPeople: numPeople,
		rng:       rng,
	}, nil
}

func (ra *RandomArrivals) Generate(round int) entity.FloorQueues {
	arrivals := make(entity.FloorQueues)

	for i := 0; i < ra.numPeople; i++ {
		start := ra.randomFloor()
		target := ra.randomFloor()
		for target == start {
			target = ra.randomFloor()
		}
		arrivals.Append(start, entity.NewPerson(start, target))
	}

	Log.Trace().Msgf("Round %d: generated %d random arrivals", round, ra.numPeople)
	return arrivals
}

func (ra *RandomArrivals) randomFloor() int {
	return ra.rng.Intn(ra.maxFloor) + simconsts.MIN_FLOOR
}
