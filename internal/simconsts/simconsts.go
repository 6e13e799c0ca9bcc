package simconsts

const (
	MIN_FLOOR       = 1
	MIN_NUM_FLOORS  = 2
	MAX_ANGER_LEVEL = 4
)

type Direction int

const (
	Down Direction = -1
	Stay Direction = 0
	Up   Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Stay:
		return "Stay"
	default:
		return "Undefined"
	}
}

// Valid reports whether d is one of Down, Stay or Up.
func (d Direction) Valid() bool {
	return d == Down || d == Stay || d == Up
}

// Legal reports whether moving from floor by d stays inside [MIN_FLOOR, maxFloor].
func (d Direction) Legal(floor int, maxFloor int) bool {
	next := floor + int(d)
	return d.Valid() && next >= MIN_FLOOR && next <= maxFloor
}

type Algorithm string

const (
	RandomAlgorithm       Algorithm = "random"
	PushyAlgorithm        Algorithm = "pushy"
	ShortSightedAlgorithm Algorithm = "short_sighted"
)

type ArrivalKind string

const (
	RandomArrivals ArrivalKind = "random"
	FileArrivals   ArrivalKind = "file"
)
