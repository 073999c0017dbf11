package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvpuzzle/internal/runner"
	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// dayCmd runs a single solver; an optional argument replaces the
// configured input path.
func (a *app) dayCmd(s puzzle.Solver) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("day%d [input]", s.Day()),
		Short: s.Title(),
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := a.cfg.InputPath(s.Day())
			if len(args) == 1 {
				path = args[0]
			}
			res, err := runner.New(a.log).Run(cmd.Context(), s, path)
			if err != nil {
				return err
			}
			printAnswers(cmd.OutOrStdout(), res.Answers)
			return nil
		},
	}
}

// allCmd runs every registered day in order. Nothing is printed unless
// every day succeeds.
func (a *app) allCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run every registered day in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := runner.New(a.log).RunAll(cmd.Context(), a.registry.Solvers(), a.cfg.InputPath)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, res := range results {
				if i > 0 {
					fmt.Fprintln(w)
				}
				fmt.Fprintf(w, "Day %d: %s\n", res.Day, res.Title)
				printAnswers(w, res.Answers)
			}
			return nil
		},
	}
}

func (a *app) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered days and their default inputs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			for _, s := range a.registry.Solvers() {
				fmt.Fprintf(w, "day%d\t%s\t%s\n", s.Day(), s.Title(), a.cfg.InputPath(s.Day()))
			}
			return nil
		},
	}
}
