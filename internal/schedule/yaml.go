package schedule

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

type yamlRound struct {
	Round  int    `yaml:"round"`
	People []Pair `yaml:"people"`
}

// ReadYAML decodes a list of rounds:
//
//	- round: 0
//	  people:
//	    - {start: 1, target: 4}
func ReadYAML(r io.Reader) (Schedule, error) {
	var rounds []yamlRound

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err := decoder.Decode(&rounds)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	s := make(Schedule)
	for i, entry := range rounds {
		if entry.Round < 0 {
			return nil, fmt.Errorf("%w: entry %d: negative round %d", ErrMalformed, i, entry.Round)
		}
		s.add(entry.Round, entry.People...)
	}
	return s, nil
}
