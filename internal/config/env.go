package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
	"github.com/joho/godotenv"
)

const ENV_PREFIX = "ELEVSIM_"

// envSetters maps the suffix of each ELEVSIM_* variable to the field it sets.
var envSetters = map[string]func(c *Config, value string) error{
	"NUM_FLOORS":           intSetter(func(c *Config) *int { return &c.NumFloors }),
	"NUM_ELEVATORS":        intSetter(func(c *Config) *int { return &c.NumElevators }),
	"ELEVATOR_CAPACITY":    intSetter(func(c *Config) *int { return &c.ElevatorCapacity }),
	"NUM_PEOPLE_PER_ROUND": intSetter(func(c *Config) *int { return &c.NumPeoplePerRound }),
	"ROUNDS":               intSetter(func(c *Config) *int { return &c.Rounds }),
	"ARRIVALS": func(c *Config, value string) error {
		c.Arrivals = simconsts.ArrivalKind(value)
		return nil
	},
	"ARRIVAL_FILE": func(c *Config, value string) error {
		c.ArrivalFile = value
		return nil
	},
	"ALGORITHM": func(c *Config, value string) error {
		c.Algorithm = simconsts.Algorithm(value)
		return nil
	},
	"SEED": func(c *Config, value string) error {
		seed, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return err
		}
		c.Seed = seed
		return nil
	},
	"VISUALIZE": boolSetter(func(c *Config) *bool { return &c.Visualize }),
	"STEP":      boolSetter(func(c *Config) *bool { return &c.Step }),
	"BROADCAST_ADDRESS": func(c *Config, value string) error {
		c.BroadcastAddress = value
		return nil
	},
	"LOG_LEVEL": func(c *Config, value string) error {
		c.LogLevel = value
		return nil
	},
}

func intSetter(field func(c *Config) *int) func(c *Config, value string) error {
	return func(c *Config, value string) error {
		number, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		*field(c) = number
		return nil
	}
}

func boolSetter(field func(c *Config) *bool) func(c *Config, value string) error {
	return func(c *Config, value string) error {
		flag, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		*field(c) = flag
		return nil
	}
}

// ApplyEnvFile overrides fields from ELEVSIM_* entries in the .env file at
// path and then from the process environment, which wins. A missing file is
// skipped.
func (c *Config) ApplyEnvFile(path string) error {
	values := map[string]string{}

	if path != "" {
		envFile, err := godotenv.Read(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			Log.Debug().Msgf("No env file at %s", path)
		case err != nil:
			return fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
		default:
			values = envFile
		}
	}

	for suffix := range envSetters {
		if value, ok := os.LookupEnv(ENV_PREFIX + suffix); ok {
			values[ENV_PREFIX+suffix] = value
		}
	}

	for suffix, set := range envSetters {
		value, ok := values[ENV_PREFIX+suffix]
		if !ok {
			continue
		}
		if err := set(c, value); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, ENV_PREFIX, suffix, value, err)
		}
		Log.Debug().Msgf("Config %s%s set from environment", ENV_PREFIX, suffix)
	}
	return nil
}
