package simnet

import (
	"errors"
	"net"

	"github.com/Altair59/Elevator-Simulator/internal/simevent"
	"github.com/libp2p/go-reuseport"
)

// EventListen receives events sent by an EventBroadcast. The port is bound
// with SO_REUSEPORT so several listeners on one host all get the events.
type EventListen struct {
	Events chan simevent.SimulationEvent //decoded events, in arrival order

	address   string         //internal variable
	listening bool           //internal variable
	conn      net.PacketConn //internal variable
	stopCh    chan struct{}  //internal variable
}

func NewEventListen(address string) *EventListen {
	return &EventListen{
		Events:    make(chan simevent.SimulationEvent, EVENT_BUFFER_LENGTH),
		address:   address,
		listening: false,
	}
}

func (el *EventListen) Start() error {
	if el.listening {
		return errors.New("event listen is already listening")
	}

	conn, err := reuseport.ListenPacket("udp4", el.address)
	if err != nil {
		return err
	}
	el.conn = conn
	el.stopCh = make(chan struct{})
	el.listening = true

	go el.listen(conn, el.stopCh)

	Log.Info().Msgf("Listening for simulation events on %s", conn.LocalAddr())
	return nil
}

// Addr is the bound address, useful when listening on port 0.
func (el *EventListen) Addr() net.Addr {
	if el.conn == nil {
		return nil
	}
	return el.conn.LocalAddr()
}

func (el *EventListen) listen(conn net.PacketConn, stopCh chan struct{}) {
	listenBuffer := make([]byte, MAX_DATAGRAM_LENGTH)

	for {
		n, _, err := conn.ReadFrom(listenBuffer)
		if errors.Is(err, net.ErrClosed) {
			return
		}
		if err != nil {
			Log.Error().Msgf("Error reading UDP message: %v", err)
			continue
		}

		event, err := simevent.Decode(listenBuffer[:n])
		if err != nil {
			Log.Error().Msgf("Error decoding event: %v", err)
			continue
		}

		select {
		case el.Events <- event:
		case <-stopCh:
			return
		}
	}
}

func (el *EventListen) Stop() error {
	if !el.listening {
		return errors.New("cannot stop listening if event listen is not listening")
	}

	close(el.stopCh)
	el.listening = false

	Log.Info().Msgf("Stopping Listening task...")
	return el.conn.Close()
}
