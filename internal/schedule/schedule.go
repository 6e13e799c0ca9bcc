package schedule

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Altair59/Elevator-Simulator/internal/logger"
)

var Log = logger.GetLogger()

var ErrMalformed = errors.New("malformed schedule")

// Pair is one scheduled person: the floor they appear on and where they go.
type Pair struct {
	Start  int `yaml:"start"`
	Target int `yaml:"target"`
}

// Schedule lists, per round, the people that arrive in that round in order.
type Schedule map[int][]Pair

func (s Schedule) Count() int {
	count := 0
	for _, pairs := range s {
		count += len(pairs)
	}
	return count
}

func (s Schedule) add(round int, pairs ...Pair) {
	s[round] = append(s[round], pairs...)
}

// Load reads a schedule file, choosing the decoder from its extension.
func Load(path string) (Schedule, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var s Schedule
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		s, err = ReadCSV(file)
	case ".yaml", ".yml":
		s, err = ReadYAML(file)
	default:
		return nil, fmt.Errorf("%w: unsupported file extension %q", ErrMalformed, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	Log.Debug().Msgf("Loaded schedule %s: %d rounds, %d people", path, len(s), s.Count())
	return s, nil
}
