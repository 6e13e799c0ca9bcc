package main

import (
	"encoding/json"
	"errors"
	"math/rand"
	"os"
	"time"

	"github.com/Altair59/Elevator-Simulator/internal/config"
	"github.com/Altair59/Elevator-Simulator/internal/logger"
	"github.com/Altair59/Elevator-Simulator/internal/simevent"
	"github.com/Altair59/Elevator-Simulator/internal/simmetadata"
	"github.com/Altair59/Elevator-Simulator/internal/simnet"
	"github.com/Altair59/Elevator-Simulator/internal/simstats"
	"github.com/Altair59/Elevator-Simulator/internal/simulation"
	"github.com/Altair59/Elevator-Simulator/internal/simutils"
	"github.com/Altair59/Elevator-Simulator/internal/simview"
	"github.com/rs/zerolog"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

type report struct {
	Metadata   *simmetadata.RunMetaData `json:"metadata"`
	Stats      simstats.Summary         `json:"stats"`
	FinalState simulation.State         `json:"final_state"`
}

func main() {
	cmdArgs := simutils.ProcessCmdArgs()

	err := run(cmdArgs)
	if errors.Is(err, simview.ErrQuit) {
		Logger.Warn().Msg("Simulation stopped before the last round")
		os.Exit(1)
	}
	if err != nil {
		Logger.Fatal().Msgf("Simulation failed: %v", err)
	}
}

func loadConfig(cmdArgs simutils.CmdArgs) (config.Config, error) {
	c := config.Default()
	if cmdArgs.ConfigPath != "" {
		var err error
		c, err = config.Load(cmdArgs.ConfigPath)
		if err != nil {
			return c, err
		}
	}
	if err := c.ApplyEnvFile(cmdArgs.EnvPath); err != nil {
		return c, err
	}
	cmdArgs.Apply(&c)

	return c, c.Validate()
}

func run(cmdArgs simutils.CmdArgs) error {
	c, err := loadConfig(cmdArgs)
	if err != nil {
		return err
	}

	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logger.GetLoggerConfigured(level)

	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
		Logger.Info().Msgf("No seed given, using %d", c.Seed)
	}
	rng := rand.New(rand.NewSource(c.Seed))

	var visualizers []simulation.Visualizer
	if c.Step {
		visualizers = append(visualizers, simview.NewKeyStepper(nil))
	}
	if c.Visualize {
		visualizers = append(visualizers, simview.NewLogVisualizer(Logger))
	}
	if c.BroadcastAddress != "" {
		broadcast := simnet.NewEventBroadcast(c.BroadcastAddress)
		if err := broadcast.Start(); err != nil {
			return err
		}
		defer broadcast.Stop()
		visualizers = append(visualizers, broadcast)
	}
	var recorder *simevent.Recorder
	if cmdArgs.RecordPath != "" {
		recorder = simevent.NewRecorder()
		visualizers = append(visualizers, recorder)
	}

	engineConfig, err := c.EngineConfig(rng, visualizers...)
	if err != nil {
		return err
	}
	engine, err := simulation.NewEngine(engineConfig)
	if err != nil {
		return err
	}

	metadata := simmetadata.New(simutils.GetGitHash(), cmdArgs.RunID, c)
	Logger.Info().Msgf("Run: %v", metadata.String())

	summary, err := engine.Run(c.Rounds)
	if err != nil {
		return err
	}
	finalState, err := engine.Snapshot()
	if err != nil {
		return err
	}

	if recorder != nil {
		if err := writeRecording(cmdArgs.RecordPath, recorder); err != nil {
			return err
		}
		Logger.Info().Msgf("Wrote round events to %s", cmdArgs.RecordPath)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(report{Metadata: metadata, Stats: summary, FinalState: finalState})
}

func writeRecording(path string, recorder *simevent.Recorder) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := recorder.WriteLines(file); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
