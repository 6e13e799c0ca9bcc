package logger

import (
	"sync"
	"testing"

	"github.com/rs/zerolog"
)

var waitGroup sync.WaitGroup

func loopGetLogger(t *testing.T, routineNum int) {
	defer waitGroup.Done()
	for i := 0; i < 1000; i++ {
		logger1 := GetLogger()
		if logger1 == nil {
			t.Errorf("GetLogger() = nil in goroutine %d, expected a non-nil logger", routineNum)
		}
	}
}

func TestGetLogger(t *testing.T) {
	if GetLogger() == nil {
		t.Errorf("GetLogger() = nil, expected a non-nil logger")
	}

	waitGroup.Add(2)
	go loopGetLogger(t, 1)
	go loopGetLogger(t, 2)
	waitGroup.Wait()
}

func TestGetLoggerConfiguredSetsLevel(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if GetLoggerConfigured(zerolog.WarnLevel) != GetLogger() {
		t.Errorf("GetLoggerConfigured() returned a different logger than GetLogger()")
	}
	if zerolog.GlobalLevel() != zerolog.WarnLevel {
		t.Errorf("GlobalLevel() = %v, expected %v", zerolog.GlobalLevel(), zerolog.WarnLevel)
	}
}

func TestParseLevel(t *testing.T) {
	levels := map[string]zerolog.Level{
		"":         zerolog.InfoLevel,
		"debug":    zerolog.DebugLevel,
		" WARN ":   zerolog.WarnLevel,
		"error":    zerolog.ErrorLevel,
		"disabled": zerolog.Disabled,
	}

	for name, expected := range levels {
		level, err := ParseLevel(name)
		if err != nil {
			t.Errorf("ParseLevel(%q) returned error %v", name, err)
			continue
		}
		if level != expected {
			t.Errorf("ParseLevel(%q) = %v, expected %v", name, level, expected)
		}
	}

	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("ParseLevel(\"loud\") returned nil error, expected an error")
	}
}
