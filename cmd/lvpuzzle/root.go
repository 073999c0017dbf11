package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/lvpuzzle/fabric"
	"github.com/katalvlaran/lvpuzzle/frequency"
	"github.com/katalvlaran/lvpuzzle/guardlog"
	"github.com/katalvlaran/lvpuzzle/internal/config"
	"github.com/katalvlaran/lvpuzzle/internal/logging"
	"github.com/katalvlaran/lvpuzzle/inventory"
	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// app carries flag values and the state built in PersistentPreRunE.
type app struct {
	configPath string
	logLevel   string
	inputDir   string
	verbose    bool

	registry *puzzle.Registry
	cfg      *config.Config
	log      *zap.Logger
}

func newRegistry() (*puzzle.Registry, error) {
	return puzzle.NewRegistry(
		frequency.Solver{},
		inventory.Solver{},
		fabric.Solver{},
		guardlog.Solver{},
	)
}

func newRootCmd(stdout, stderr io.Writer) (*cobra.Command, error) {
	reg, err := newRegistry()
	if err != nil {
		return nil, err
	}
	a := &app{registry: reg}

	root := &cobra.Command{
		Use:   "lvpuzzle",
		Short: "Solve the chronal puzzles from their input files",
		Long: `lvpuzzle parses a puzzle input file and prints the answers.

Each day reads inputs/day<N>.txt unless a path is given on the command
line, set per day in the config file, or redirected with --input-dir.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd, stderr)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", config.DefaultPath, "config file (YAML)")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.StringVar(&a.inputDir, "input-dir", "", "directory holding day<N>.txt inputs")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging (same as --log-level=debug)")

	for _, s := range reg.Solvers() {
		root.AddCommand(a.dayCmd(s))
	}
	root.AddCommand(a.allCmd(), a.listCmd())

	return root, nil
}

// setup loads configuration and applies command-line overrides on top.
func (a *app) setup(cmd *cobra.Command, stderr io.Writer) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("input-dir") {
		cfg.InputDir = a.inputDir
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}

	log, err := logging.New(cfg.Logging.Level, cfg.Logging.Format, stderr)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	log.Debug("configuration loaded",
		zap.String("config", a.configPath),
		zap.String("input_dir", cfg.InputDir),
		zap.String("level", cfg.Logging.Level),
	)

	return nil
}

func printAnswers(w io.Writer, answers []puzzle.Answer) {
	for _, ans := range answers {
		fmt.Fprintln(w, ans)
	}
}
