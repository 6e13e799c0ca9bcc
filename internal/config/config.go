package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Altair59/Elevator-Simulator/internal/logger"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"gopkg.in/yaml.v3"
)

var Log = logger.GetLogger()

var ErrInvalid = errors.New("invalid configuration")

const DEFAULT_ARRIVAL_FILE = "configs/sample_arrivals.csv"

// Config is everything needed to set up and run one simulation. Relative
// paths are taken from the working directory.
type Config struct {
	NumFloors         int                   `yaml:"num_floors"`
	NumElevators      int                   `yaml:"num_elevators"`
	ElevatorCapacity  int                   `yaml:"elevator_capacity"`
	NumPeoplePerRound int                   `yaml:"num_people_per_round"`
	Arrivals          simconsts.ArrivalKind `yaml:"arrivals"`
	ArrivalFile       string                `yaml:"arrival_file"`
	Algorithm         simconsts.Algorithm   `yaml:"algorithm"`
	Rounds            int                   `yaml:"rounds"`
	Seed              int64                 `yaml:"seed"`
	Visualize         bool                  `yaml:"visualize"`
	Step              bool                  `yaml:"step"`
	BroadcastAddress  string                `yaml:"broadcast_address"`
	LogLevel          string                `yaml:"log_level"`
}

// Default is the small sample run: five floors, one single-seat elevator,
// replaying the bundled arrival file for twenty rounds.
func Default() Config {
	return Config{
		NumFloors:         5,
		NumElevators:      1,
		ElevatorCapacity:  1,
		NumPeoplePerRound: 2,
		Arrivals:          simconsts.FileArrivals,
		ArrivalFile:       DEFAULT_ARRIVAL_FILE,
		Algorithm:         simconsts.ShortSightedAlgorithm,
		Rounds:            20,
		LogLevel:          "info",
	}
}

// Load reads a YAML file on top of Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	c := Default()

	file, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	err = decoder.Decode(&c)
	if err != nil && !errors.Is(err, io.EOF) {
		return c, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}

	Log.Debug().Msgf("Loaded config %s", path)
	return c, nil
}

func (c Config) Validate() error {
	switch {
	case c.NumFloors < simconsts.MIN_NUM_FLOORS:
		return fmt.Errorf("%w: num_floors is %d, need at least %d", ErrInvalid, c.NumFloors, simconsts.MIN_NUM_FLOORS)
	case c.NumElevators < 1:
		return fmt.Errorf("%w: num_elevators is %d, need at least 1", ErrInvalid, c.NumElevators)
	case c.ElevatorCapacity < 1:
		return fmt.Errorf("%w: elevator_capacity is %d, need at least 1", ErrInvalid, c.ElevatorCapacity)
	case c.NumPeoplePerRound < 0:
		return fmt.Errorf("%w: num_people_per_round is %d", ErrInvalid, c.NumPeoplePerRound)
	case c.Rounds < 1:
		return fmt.Errorf("%w: rounds is %d, need at least 1", ErrInvalid, c.Rounds)
	}

	switch c.Arrivals {
	case simconsts.RandomArrivals:
	case simconsts.FileArrivals:
		if c.ArrivalFile == "" {
			return fmt.Errorf("%w: file arrivals need an arrival_file", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown arrivals %q", ErrInvalid, c.Arrivals)
	}

	switch c.Algorithm {
	case simconsts.RandomAlgorithm, simconsts.PushyAlgorithm, simconsts.ShortSightedAlgorithm:
	default:
		return fmt.Errorf("%w: unknown algorithm %q", ErrInvalid, c.Algorithm)
	}

	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level: %v", ErrInvalid, err)
	}
	return nil
}

func (c Config) String() string {
	data, err := yaml.Marshal(c)
	if err != nil {
		Log.Error().Msgf("Error serialising Config to YAML: %v", err)
		return ""
	}
	return string(data)
}
