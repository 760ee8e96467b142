package adapters

import (
	"context"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/crillab/gophersat/solver"
	"github.com/rs/zerolog/log"

	"depsolve/internal/ports"
)

// GophersatOptimizer implements ports.OptimizerPort over
// github.com/crillab/gophersat/solver, the same pseudo-boolean solver
// library the packaging domain's own APT dependency graph uses.
// Minimize runs synchronously on gophersat's own goroutine and is raced
// against the caller's timeout: gophersat has no native cancellation
// hook, so a timeout expiry abandons the in-flight solve and reports
// "not ok" rather than blocking the caller past the wall-clock bound.
type GophersatOptimizer struct{}

// NewGophersatOptimizer constructs a GophersatOptimizer. It holds no
// state; every call to Minimize builds a fresh solver.Problem.
func NewGophersatOptimizer() GophersatOptimizer {
	return GophersatOptimizer{}
}

type solveOutcome struct {
	model ports.Model
	ok    bool
	err   error
}

func (GophersatOptimizer) Minimize(ctx context.Context, numVars int, clauses []ports.Clause, cost []ports.CostTerm, timeout time.Duration) (ports.Model, bool, error) {
	if numVars == 0 {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("optimizer received no variables to solve")
	}

	deadline, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	resultCh := make(chan solveOutcome, 1)
	go func() {
		resultCh <- runGophersat(numVars, clauses, cost)
	}()

	select {
	case outcome := <-resultCh:
		return outcome.model, outcome.ok, outcome.err
	case <-deadline.Done():
		log.Debug().Dur("timeout", timeout).Msg("optimizer timed out")
		return nil, false, nil
	}
}

func runGophersat(numVars int, clauses []ports.Clause, cost []ports.CostTerm) solveOutcome {
	raw := make([][]int, len(clauses))
	for i, clause := range clauses {
		raw[i] = []int(clause)
	}
	problem := solver.ParseSliceNb(raw, numVars)

	if len(cost) > 0 {
		lits := make([]solver.Lit, len(cost))
		weights := make([]int, len(cost))
		for i, term := range cost {
			lits[i] = solver.IntToLit(int32(term.Var)) //nolint:gosec // var ids are bounded by numVars
			weights[i] = term.Weight
		}
		problem.SetCostFunc(lits, weights)
	}

	sat := solver.New(problem)
	if sat.Minimize() < 0 {
		return solveOutcome{ok: false}
	}

	raw2 := sat.Model()
	model := make(ports.Model, len(raw2))
	copy(model, raw2)
	return solveOutcome{model: model, ok: true}
}
