package schedule

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ReadCSV decodes records of the form round,start,target[,start,target...].
// A round listed on several lines collects the people of every line.
func ReadCSV(r io.Reader) (Schedule, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	s := make(Schedule)
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		line, _ := reader.FieldPos(0)

		values := make([]int, len(record))
		for i, field := range record {
			values[i], err = strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: field %d is not an integer: %q", ErrMalformed, line, i+1, field)
			}
		}

		round := values[0]
		if round < 0 {
			return nil, fmt.Errorf("%w: line %d: negative round %d", ErrMalformed, line, round)
		}
		people := values[1:]
		if len(people)%2 != 0 {
			return nil, fmt.Errorf("%w: line %d: start floor %d has no target", ErrMalformed, line, people[len(people)-1])
		}

		pairs := make([]Pair, 0, len(people)/2)
		for i := 0; i < len(people); i += 2 {
			pairs = append(pairs, Pair{Start: people[i], Target: people[i+1]})
		}
		s.add(round, pairs...)
	}

	return s, nil
}
