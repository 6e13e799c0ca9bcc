package simview

import (
	"errors"

	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/logger"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/Altair59/Elevator-Simulator/internal/simulation"
	"github.com/eiannone/keyboard"
)

var Log = logger.GetLogger()

var ErrQuit = errors.New("simulation stopped from keyboard")

var _ simulation.Visualizer = (*KeyStepper)(nil)

type KeyReader func() (rune, keyboard.Key, error)

// KeyStepper waits for a key press before every round and then passes each
// hook on to next. q, Esc or Ctrl-C stop the run.
type KeyStepper struct {
	next    simulation.Visualizer
	readKey KeyReader
}

func NewKeyStepper(next simulation.Visualizer) *KeyStepper {
	return NewKeyStepperWithReader(next, keyboard.GetSingleKey)
}

func NewKeyStepperWithReader(next simulation.Visualizer, readKey KeyReader) *KeyStepper {
	return &KeyStepper{
		next:    next,
		readKey: readKey,
	}
}

func (ks *KeyStepper) RenderHeader(round int) error {
	Log.Info().Msgf("Press any key for round %d, q to quit", round)

	char, key, err := ks.readKey()
	if err != nil {
		return err
	}
	if char == 'q' || char == 'Q' || key == keyboard.KeyCtrlC || key == keyboard.KeyEsc {
		return ErrQuit
	}

	if ks.next == nil {
		return nil
	}
	return ks.next.RenderHeader(round)
}

func (ks *KeyStepper) ShowArrivals(arrivals entity.FloorQueues) error {
	if ks.next == nil {
		return nil
	}
	return ks.next.ShowArrivals(arrivals)
}

func (ks *KeyStepper) ShowDisembarking(person *entity.Person, elevator *entity.Elevator) error {
	if ks.next == nil {
		return nil
	}
	return ks.next.ShowDisembarking(person, elevator)
}

func (ks *KeyStepper) ShowBoarding(person *entity.Person, elevator *entity.Elevator) error {
	if ks.next == nil {
		return nil
	}
	return ks.next.ShowBoarding(person, elevator)
}

func (ks *KeyStepper) ShowElevatorMoves(elevators []*entity.Elevator, directions []simconsts.Direction) error {
	if ks.next == nil {
		return nil
	}
	return ks.next.ShowElevatorMoves(elevators, directions)
}
