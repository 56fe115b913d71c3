package app

import (
	"os"
	"runtime"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"go.uber.org/zap"
)

const (
	NUM_CPUS_FLAG = "cpus"
	VERBOSE_FLAG  = "v"
)

var (
	CPUs    int
	Verbose bool
)

func AppCommands() []*commander.Command {
	return []*commander.Command{
		ArgMaxCmd(),
		ViterbiCmd(),
		RareCmd(),
		TagEvalCmd(),
	}
}

func AllCommands() *commander.Command {
	cmd := &commander.Command{
		UsageLine:   os.Args[0] + " <command> [arguments]",
		Short:       "trigram HMM tagger",
		Subcommands: AppCommands(),
		Flag:        *flag.NewFlagSet("hmmtag", flag.ExitOnError),
	}
	for _, app := range cmd.Subcommands {
		app.Run = NewAppWrapCommand(app.Run)
		app.Flag.IntVar(&CPUs, NUM_CPUS_FLAG, 0, "Max CPUS to use (runtime.GOMAXPROCS); 0 = all")
		app.Flag.BoolVar(&Verbose, VERBOSE_FLAG, false, "Debug logging")
	}
	return cmd
}

func InitCommand(cmd *commander.Command, args []string) error {
	var err error
	if logger, err = NewLogger(Verbose); err != nil {
		return err
	}
	maxCPUs := runtime.NumCPU()
	if CPUs > maxCPUs {
		logger.Warn("Number of CPUs capped to all available", zap.Int("cpus", maxCPUs))
		CPUs = 0
	}
	if CPUs <= 0 {
		CPUs = maxCPUs
	}
	runtime.GOMAXPROCS(CPUs)
	return nil
}

func NewAppWrapCommand(f func(cmd *commander.Command, args []string) error) func(cmd *commander.Command, args []string) error {
	wrapped := func(cmd *commander.Command, args []string) error {
		if err := InitCommand(cmd, args); err != nil {
			return err
		}
		defer logger.Sync()
		err := f(cmd, args)
		if err != nil {
			logger.Error("Command failed", zap.String("command", cmd.Name()), zap.Error(err))
		}
		return err
	}

	return wrapped
}
