package arrival

import (
	"errors"

	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/logger"
)

var Log = logger.GetLogger()

var ErrInvalid = errors.New("invalid arrival generator configuration")

// Generator produces the people that appear at the start of a round, keyed by
// the floor they appear on. It must not touch the simulation's own state.
// Floors without arrivals may be left out.
type Generator interface {
	Generate(round int) entity.FloorQueues
}
