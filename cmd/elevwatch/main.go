package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/Altair59/Elevator-Simulator/internal/logger"
	"github.com/Altair59/Elevator-Simulator/internal/simevent"
	"github.com/Altair59/Elevator-Simulator/internal/simnet"
	"github.com/Altair59/Elevator-Simulator/internal/simutils"
	"github.com/rs/zerolog"
)

var Logger = logger.GetLoggerConfigured(zerolog.InfoLevel)

func main() {
	help := flag.Bool("help", false, "Show Help Window")
	version := flag.Bool("version", false, "Show Version")
	address := flag.String("listen", ":20017", "Address to receive simulation events on")
	logLevel := flag.String("log", "info", "Log level: trace, debug, info, warn, error")

	flag.Parse()

	if *version {
		fmt.Println("Version:", simutils.GetGitHash())
		os.Exit(0)
	}

	if *help {
		fmt.Println("Usage: ./elevwatch [OPTIONS]")
		fmt.Println("Prints the events broadcast by elevsim -broadcast")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		os.Exit(0)
	}

	level, err := logger.ParseLevel(*logLevel)
	if err != nil {
		Logger.Fatal().Msgf("Bad log level: %v", err)
	}
	logger.GetLoggerConfigured(level)

	listen := simnet.NewEventListen(*address)
	if err := listen.Start(); err != nil {
		Logger.Fatal().Msgf("Could not listen on %s: %v", *address, err)
	}
	defer listen.Stop()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case event := <-listen.Events:
			data, err := simevent.Encode(event)
			if err != nil {
				Logger.Error().Msgf("Could not encode %s: %v", event.EventType(), err)
				continue
			}
			Logger.Info().RawJSON("event", data).Msg(event.EventType())
		case <-interrupt:
			Logger.Info().Msg("Interrupted")
			return
		}
	}
}
