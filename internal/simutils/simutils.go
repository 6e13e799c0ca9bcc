package simutils

import (
	_ "embed"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/Altair59/Elevator-Simulator/internal/config"
	"github.com/Altair59/Elevator-Simulator/internal/simconsts"
)

//go:generate sh -c "printf %s $(git rev-parse HEAD) > githash.txt"
//go:embed githash.txt
var gitHash string

func GetGitHash() string {
	return gitHash
}

// CmdArgs holds the parsed command line. Only flags that were given
// override the configuration.
type CmdArgs struct {
	ConfigPath string
	EnvPath    string
	RunID      string
	RecordPath string
	Help       bool
	Version    bool

	rounds    int
	seed      int64
	algorithm string
	arrivals  string
	visualize bool
	step      bool
	broadcast string
	logLevel  string
	given     map[string]bool
}

func defineFlags(flags *flag.FlagSet, cmdArgs *CmdArgs) {
	flags.BoolVar(&cmdArgs.Help, "help", false, "Show Help Window")
	flags.BoolVar(&cmdArgs.Version, "version", false, "Show Version")
	flags.StringVar(&cmdArgs.ConfigPath, "config", "", "YAML configuration file. Defaults to the built-in sample run")
	flags.StringVar(&cmdArgs.EnvPath, "env", ".env", "File with ELEVSIM_* overrides. Skipped if missing")
	flags.StringVar(&cmdArgs.RunID, "id", "", "Set the identifier of the run. Defaults to random string")
	flags.StringVar(&cmdArgs.RecordPath, "record", "", "Write every round event to this file, one JSON object per line")
	flags.IntVar(&cmdArgs.rounds, "rounds", 0, "Number of rounds to simulate")
	flags.Int64Var(&cmdArgs.seed, "seed", 0, "Random seed. 0 picks one from the clock")
	flags.StringVar(&cmdArgs.algorithm, "algorithm", "", "Dispatch algorithm: random, pushy or short_sighted")
	flags.StringVar(&cmdArgs.arrivals, "arrivals", "", "Arrival generator: random or file")
	flags.BoolVar(&cmdArgs.visualize, "visualize", false, "Log every round")
	flags.BoolVar(&cmdArgs.step, "step", false, "Wait for a key press before every round")
	flags.StringVar(&cmdArgs.broadcast, "broadcast", "", "Send round events over UDP to host:port")
	flags.StringVar(&cmdArgs.logLevel, "log", "", "Log level: trace, debug, info, warn, error")
}

func ParseCmdArgs(name string, args []string, output io.Writer) (CmdArgs, error) {
	var cmdArgs CmdArgs
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.SetOutput(output)
	defineFlags(flags, &cmdArgs)

	if err := flags.Parse(args); err != nil {
		return cmdArgs, err
	}

	cmdArgs.given = make(map[string]bool)
	flags.Visit(func(f *flag.Flag) {
		cmdArgs.given[f.Name] = true
	})
	return cmdArgs, nil
}

// Apply copies every flag given on the command line into c.
func (cmdArgs CmdArgs) Apply(c *config.Config) {
	if cmdArgs.given["rounds"] {
		c.Rounds = cmdArgs.rounds
	}
	if cmdArgs.given["seed"] {
		c.Seed = cmdArgs.seed
	}
	if cmdArgs.given["algorithm"] {
		c.Algorithm = simconsts.Algorithm(cmdArgs.algorithm)
	}
	if cmdArgs.given["arrivals"] {
		c.Arrivals = simconsts.ArrivalKind(cmdArgs.arrivals)
	}
	if cmdArgs.given["visualize"] {
		c.Visualize = cmdArgs.visualize
	}
	if cmdArgs.given["step"] {
		c.Step = cmdArgs.step
	}
	if cmdArgs.given["broadcast"] {
		c.BroadcastAddress = cmdArgs.broadcast
	}
	if cmdArgs.given["log"] {
		c.LogLevel = cmdArgs.logLevel
	}
}

// ProcessCmdArgs parses os.Args and exits for -help and -version.
func ProcessCmdArgs() CmdArgs {
	cmdArgs, err := ParseCmdArgs(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		os.Exit(2)
	}

	if cmdArgs.Version {
		fmt.Println("Version:", GetGitHash())
		os.Exit(0)
	}

	if cmdArgs.Help {
		fmt.Println("Usage: ./elevsim [OPTIONS]")
		fmt.Println("Discrete-round elevator simulator")
		fmt.Println()
		fmt.Println("Options:")
		flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
		flags.SetOutput(os.Stdout)
		defineFlags(flags, &CmdArgs{})
		flags.PrintDefaults()
		fmt.Println()
		fmt.Println("Configuration is read from -config, then ELEVSIM_* variables, then flags.")
		os.Exit(0)
	}

	return cmdArgs
}
