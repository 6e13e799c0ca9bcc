package simevent

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrUnknownEvent = errors.New("unknown simulation event")

type envelope struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value"`
}

// Encode writes e as {"type": ..., "value": ...}.
func Encode(e SimulationEvent) ([]byte, error) {
	eventType := e.EventType()
	if eventType == "UnknownEvent" {
		return nil, fmt.Errorf("%w: %T", ErrUnknownEvent, e.Value)
	}

	value, err := json.Marshal(e.Value)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{Type: eventType, Value: value})
}

func Decode(data []byte) (SimulationEvent, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return SimulationEvent{}, err
	}

	switch env.Type {
	case "RoundStartEvent":
		return decodeValue[RoundStartEvent](env.Value)
	case "ArrivalEvent":
		return decodeValue[ArrivalEvent](env.Value)
	case "DisembarkEvent":
		return decodeValue[DisembarkEvent](env.Value)
	case "BoardEvent":
		return decodeValue[BoardEvent](env.Value)
	case "MoveEvent":
		return decodeValue[MoveEvent](env.Value)
	default:
		return SimulationEvent{}, fmt.Errorf("%w: type %q", ErrUnknownEvent, env.Type)
	}
}

func decodeValue[T any](data json.RawMessage) (SimulationEvent, error) {
	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		return SimulationEvent{}, err
	}
	return SimulationEvent{Value: value}, nil
}
