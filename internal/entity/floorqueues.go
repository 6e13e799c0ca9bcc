package entity

import "sort"

// FloorQueues maps a floor number to the people queued there, front first.
// The simulation's waiting registry and every arrival batch use this shape.
type FloorQueues map[int][]*Person

// NewFloorQueues has an empty queue for every floor in [1, maxFloor].
func NewFloorQueues(maxFloor int) FloorQueues {
	queues := make(FloorQueues, maxFloor)
	for floor := 1; floor <= maxFloor; floor++ {
		queues[floor] = []*Person{}
	}
	return queues
}

// Floors lists the floors present in ascending order.
func (fq FloorQueues) Floors() []int {
	floors := make([]int, 0, len(fq))
	for floor := range fq {
		floors = append(floors, floor)
	}
	sort.Ints(floors)
	return floors
}

func (fq FloorQueues) Count() int {
	count := 0
	for _, queue := range fq {
		count += len(queue)
	}
	return count
}

func (fq FloorQueues) Append(floor int, people ...*Person) {
	fq[floor] = append(fq[floor], people...)
}

// Clone copies the map and each queue slice; the people are shared.
func (fq FloorQueues) Clone() FloorQueues {
	clone := make(FloorQueues, len(fq))
	for floor, queue := range fq {
		clone[floor] = append([]*Person{}, queue...)
	}
	return clone
}

func (fq FloorQueues) States() map[int][]PersonState {
	states := make(map[int][]PersonState, len(fq))
	for floor, queue := range fq {
		people := make([]PersonState, len(queue))
		for i, person := range queue {
			people[i] = person.State()
		}
		states[floor] = people
	}
	return states
}
