package entity

import (
	"fmt"
	"sync/atomic"
)

var lastPersonID atomic.Int64

// Person is a passenger. start and target are fixed at creation; waitTime
// counts every round spent waiting on a floor or riding an elevator.
type Person struct {
	id       int
	start    int
	target   int
	waitTime int
}

// NewPerson does not check start != target; generators are responsible for that.
func NewPerson(start int, target int) *Person {
	return &Person{
		id:     int(lastPersonID.Add(1)),
		start:  start,
		target: target,
	}
}

func (p *Person) ID() int       { return p.id }
func (p *Person) Start() int    { return p.start }
func (p *Person) Target() int   { return p.target }
func (p *Person) WaitTime() int { return p.waitTime }

func (p *Person) RecordWait() {
	p.waitTime++
}

// AngerLevel buckets the wait time: 0-2 -> 0, 3-4 -> 1, 5-6 -> 2, 7-8 -> 3, 9+ -> 4.
func (p *Person) AngerLevel() int {
	switch {
	case p.waitTime <= 2:
		return 0
	case p.waitTime <= 4:
		return 1
	case p.waitTime <= 6:
		return 2
	case p.waitTime <= 8:
		return 3
	default:
		return 4
	}
}

func (p *Person) State() PersonState {
	return PersonState{
		ID:         p.id,
		Start:      p.start,
		Target:     p.target,
		WaitTime:   p.waitTime,
		AngerLevel: p.AngerLevel(),
	}
}

func (p *Person) String() string {
	return fmt.Sprintf("Person-%d(%d->%d, waited %d)", p.id, p.start, p.target, p.waitTime)
}
