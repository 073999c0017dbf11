// Package runner drives registered solvers end to end: load the input,
// solve, and log the run. Each run gets its own run_id so interleaved
// diagnostics stay attributable.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvpuzzle/puzzle"
)

// maxParallelLoads bounds concurrent file reads in RunAll.
const maxParallelLoads = 4

// Result is the outcome of one successful solver run.
type Result struct {
	RunID   string
	Day     int
	Title   string
	Path    string
	Answers []puzzle.Answer
	Elapsed time.Duration
}

// Runner executes solvers. The zero value is not usable; call New.
type Runner struct {
	log  *zap.Logger
	load func(path string) (string, error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithLoader replaces puzzle.Load, e.g. to serve inputs from memory.
func WithLoader(load func(path string) (string, error)) Option {
	if load == nil {
		panic("runner: WithLoader(nil)")
	}
	return func(r *Runner) {
		r.load = load
	}
}

// New returns a Runner logging to log (nil means no logging).
func New(log *zap.Logger, opts ...Option) *Runner {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Runner{log: log, load: puzzle.Load}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run loads path and solves it with s.
func (r *Runner) Run(ctx context.Context, s puzzle.Solver, path string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	id, log := r.runLogger(s, path)
	start := time.Now()

	text, err := r.load(path)
	if err != nil {
		log.Error("load failed", zap.Error(err))
		return Result{}, fmt.Errorf("day %d: %w", s.Day(), err)
	}
	log.Debug("input loaded", zap.Int("bytes", len(text)))

	return r.solve(id, log, s, path, text, start)
}

// RunAll loads every input up front, in parallel, then solves the days
// one after another in the given order. Any failure aborts the whole batch
// and no results are returned.
func (r *Runner) RunAll(ctx context.Context, solvers []puzzle.Solver, pathFor func(day int) string) ([]Result, error) {
	texts := make([]string, len(solvers))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallelLoads)
	for i, s := range solvers {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := r.load(pathFor(s.Day()))
			if err != nil {
				return fmt.Errorf("day %d: %w", s.Day(), err)
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		r.log.Error("batch load failed", zap.Error(err))
		return nil, err
	}

	results := make([]Result, 0, len(solvers))
	for i, s := range solvers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path := pathFor(s.Day())
		id, log := r.runLogger(s, path)
		res, err := r.solve(id, log, s, path, texts[i], time.Now())
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

func (r *Runner) runLogger(s puzzle.Solver, path string) (string, *zap.Logger) {
	id := uuid.NewString()
	return id, r.log.With(
		zap.String("run_id", id),
		zap.Int("day", s.Day()),
		zap.String("path", path),
	)
}

func (r *Runner) solve(id string, log *zap.Logger, s puzzle.Solver, path, text string, start time.Time) (Result, error) {
	answers, err := s.Solve(text)
	if err != nil {
		log.Error("solve failed", zap.Error(err), zap.Int("exit_code", puzzle.ExitCode(err)))
		return Result{}, fmt.Errorf("day %d: %w", s.Day(), err)
	}
	elapsed := time.Since(start)
	log.Info("solved", zap.Int("answers", len(answers)), zap.Duration("elapsed", elapsed))

	return Result{
		RunID:   id,
		Day:     s.Day(),
		Title:   s.Title(),
		Path:    path,
		Answers: answers,
		Elapsed: elapsed,
	}, nil
}
