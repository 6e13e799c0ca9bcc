package simmetadata

import (
	"encoding/json"

	"github.com/Altair59/Elevator-Simulator/internal/config"
	"github.com/Altair59/Elevator-Simulator/internal/logger"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/xyproto/randomstring"
)

var Log = logger.GetLogger()

const RUN_ID_DEFAULT_LEN = 10

type RunMetaData struct {
	SoftwareVersion  string                `json:"software_version"`
	RunID            string                `json:"run_id"`
	Algorithm        simconsts.Algorithm   `json:"algorithm"`
	Arrivals         simconsts.ArrivalKind `json:"arrivals"`
	NumFloors        int                   `json:"num_floors"`
	NumElevators     int                   `json:"num_elevators"`
	ElevatorCapacity int                   `json:"elevator_capacity"`
	Seed             int64                 `json:"seed"`
}

// New describes a run of c. An empty runID gets a random one.
func New(softwareVersion string, runID string, c config.Config) *RunMetaData {
	if runID == "" {
		runID = randomstring.EnglishFrequencyString(RUN_ID_DEFAULT_LEN) //this should be random enough
	}

	return &RunMetaData{
		SoftwareVersion:  softwareVersion,
		RunID:            runID,
		Algorithm:        c.Algorithm,
		Arrivals:         c.Arrivals,
		NumFloors:        c.NumFloors,
		NumElevators:     c.NumElevators,
		ElevatorCapacity: c.ElevatorCapacity,
		Seed:             c.Seed,
	}
}

func (runMetaData *RunMetaData) String() string {
	jsonData, err := json.Marshal(runMetaData)

	if err != nil {
		Log.Error().Msg("Error Serialising RunMetaData Object to JSON")
		return ""
	}
	return string(jsonData)
}
