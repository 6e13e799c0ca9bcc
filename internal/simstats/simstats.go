package simstats

import (
	"encoding/json"

	"github.com/Altair59/Elevator-Simulator/internal/logger"
)

var Log = logger.GetLogger()

// NO_COMPLETIONS stands in for every wait statistic when nobody finished.
const NO_COMPLETIONS = -1

type Summary struct {
	RoundsRun      int `json:"num_iterations"`
	TotalArrived   int `json:"total_people"`
	TotalCompleted int `json:"people_completed"`
	MaxWait        int `json:"max_time"`
	MinWait        int `json:"min_time"`
	AvgWait        int `json:"avg_time"`
}

func (s Summary) String() string {
	data, err := json.Marshal(s)
	if err != nil {
		Log.Error().Msg("Error Serialising Summary Object to JSON")
		return ""
	}
	return string(data)
}

// Recorder accumulates counters while a simulation runs.
type Recorder struct {
	roundsRun      int
	totalArrived   int
	totalCompleted int
	waitTimes      []int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) RecordArrivals(count int) {
	r.totalArrived += count
}

func (r *Recorder) RecordCompletion(waitTime int) {
	r.totalCompleted++
	r.waitTimes = append(r.waitTimes, waitTime)
}

func (r *Recorder) RecordRound() {
	r.roundsRun++
}

// WaitTimes returns a copy of the completed wait times in completion order.
func (r *Recorder) WaitTimes() []int {
	return append([]int(nil), r.waitTimes...)
}

// Summary reports max, min and floor-divided average wait. With no
// completions all three are NO_COMPLETIONS.
func (r *Recorder) Summary() Summary {
	waitTimes := r.waitTimes
	if len(waitTimes) == 0 {
		waitTimes = []int{NO_COMPLETIONS}
	}

	maxWait, minWait, sum := waitTimes[0], waitTimes[0], 0
	for _, wait := range waitTimes {
		maxWait = max(maxWait, wait)
		minWait = min(minWait, wait)
		sum += wait
	}

	return Summary{
		RoundsRun:      r.roundsRun,
		TotalArrived:   r.totalArrived,
		TotalCompleted: r.totalCompleted,
		MaxWait:        maxWait,
		MinWait:        minWait,
		AvgWait:        floorDiv(sum, len(waitTimes)),
	}
}

func floorDiv(a int, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
