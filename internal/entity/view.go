package entity

// PersonView and ElevatorView are what a renderer may read. Nothing in them
// mutates the simulation.
type PersonView interface {
	ID() int
	Start() int
	Target() int
	WaitTime() int
	AngerLevel() int
}

type ElevatorView interface {
	ID() int
	Floor() int
	Capacity() int
	PassengerCount() int
	Fullness() float64
}

var (
	_ PersonView   = (*Person)(nil)
	_ ElevatorView = (*Elevator)(nil)
)

// PersonState is a detached copy of a Person at one instant.
type PersonState struct {
	ID         int `json:"id"`
	Start      int `json:"start"`
	Target     int `json:"target"`
	WaitTime   int `json:"wait_time"`
	AngerLevel int `json:"anger_level"`
}

type ElevatorState struct {
	ID         int           `json:"id"`
	Floor      int           `json:"floor"`
	Capacity   int           `json:"capacity"`
	Passengers []PersonState `json:"passengers"`
}
