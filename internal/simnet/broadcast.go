package simnet

import (
	"errors"
	"fmt"
	"net"

	"github.com/Altair59/Elevator-Simulator/internal/entity"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/Altair59/Elevator-Simulator/internal/simevent"
	"github.com/Altair59/Elevator-Simulator/internal/simulation"
)

var ErrNotBroadcasting = errors.New("event broadcast is not started")

var _ simulation.Visualizer = (*EventBroadcast)(nil)

// EventBroadcast sends every simulation event as one UDP datagram. Sending
// happens inside the hook, so a failed write fails the round. Events too big
// for a datagram are logged and dropped.
type EventBroadcast struct {
	address      string       //host:port to send to
	broadcasting bool         //internal variable
	conn         *net.UDPConn //internal variable
}

func NewEventBroadcast(address string) *EventBroadcast {
	return &EventBroadcast{
		address:      address,
		broadcasting: false,
	}
}

func (eb *EventBroadcast) Start() error {
	if eb.broadcasting {
		return errors.New("event broadcast is already broadcasting")
	}

	udpAddress, err := net.ResolveUDPAddr("udp4", eb.address)
	if err != nil {
		return fmt.Errorf("error resolving UDP Address: %w", err)
	}

	eb.conn, err = net.DialUDP("udp4", nil, udpAddress)
	if err != nil {
		return fmt.Errorf("error creating UDP Socket: %w", err)
	}
	eb.broadcasting = true

	Log.Info().Msgf("Broadcasting simulation events to %s", eb.address)
	return nil
}

func (eb *EventBroadcast) Stop() error {
	if !eb.broadcasting {
		return ErrNotBroadcasting
	}
	eb.broadcasting = false

	Log.Info().Msgf("Stopping event broadcast...")
	return eb.conn.Close()
}

func (eb *EventBroadcast) send(event simevent.SimulationEvent) error {
	if !eb.broadcasting {
		return ErrNotBroadcasting
	}

	data, err := simevent.Encode(event)
	if err != nil {
		return err
	}
	if len(data) > MAX_DATAGRAM_LENGTH {
		Log.Warn().Msgf("Skipping %s: %d bytes do not fit in one datagram", event.EventType(), len(data))
		return nil
	}

	if _, err := eb.conn.Write(data); err != nil {
		return fmt.Errorf("error writing to UDP Socket: %w", err)
	}
	Log.Trace().Msgf("Sent Packet: %s", data)
	return nil
}

func (eb *EventBroadcast) RenderHeader(round int) error {
	return eb.send(simevent.RoundStart(round))
}

func (eb *EventBroadcast) ShowArrivals(arrivals entity.FloorQueues) error {
	return eb.send(simevent.Arrival(arrivals))
}

func (eb *EventBroadcast) ShowDisembarking(person *entity.Person, elevator *entity.Elevator) error {
	return eb.send(simevent.Disembark(person, elevator))
}

func (eb *EventBroadcast) ShowBoarding(person *entity.Person, elevator *entity.Elevator) error {
	return eb.send(simevent.Board(person, elevator))
}

func (eb *EventBroadcast) ShowElevatorMoves(elevators []*entity.Elevator, directions []simconsts.Direction) error {
	return eb.send(simevent.Move(elevators, directions))
}
