package core

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"depsolve/internal/ports"
	"depsolve/internal/types"
)

// DefaultMaxLinearizeRetries bounds the cycle-escape re-solve loop so a
// pathological configuration cannot livelock the resolution.
const DefaultMaxLinearizeRetries = 8

// DefaultOptimizerTimeout is the wall-clock bound on a single optimizer
// invocation.
const DefaultOptimizerTimeout = 30 * time.Second

// ResolverCore orchestrates one resolution: compiling the constraint
// model, driving the optimizer, and linearizing the chosen end state
// into an ordered plan, escaping linearization cycles by pinning the
// witness and re-solving.
type ResolverCore struct {
	Optimizer  ports.OptimizerPort
	Weights    Weights
	Timeout    time.Duration
	MaxRetries int
}

// NewResolverCore constructs a ResolverCore over the given optimizer
// backend, using the default cost weights, timeout, and retry cap
// unless overridden on the returned value.
func NewResolverCore(optimizer ports.OptimizerPort, weights Weights) *ResolverCore {
	return &ResolverCore{
		Optimizer:  optimizer,
		Weights:    weights,
		Timeout:    DefaultOptimizerTimeout,
		MaxRetries: DefaultMaxLinearizeRetries,
	}
}

func (r *ResolverCore) timeout() time.Duration {
	if r.Timeout <= 0 {
		return DefaultOptimizerTimeout
	}
	return r.Timeout
}

func (r *ResolverCore) maxRetries() int {
	if r.MaxRetries <= 0 {
		return DefaultMaxLinearizeRetries
	}
	return r.MaxRetries
}

// Resolve computes the cost-minimal plan transforming initial into a
// state satisfying constraints, subject to the catalog's version,
// conflict, and dependency rules. All non-fatal conditions (UNSAT,
// timeout, exhausted linearization retries) degrade to the empty plan;
// only a malformed input reference escapes as an error, and that
// parsing happens upstream of this call.
func (r *ResolverCore) Resolve(ctx context.Context, cat *Catalog, initial []types.Reference, constraints []types.UserConstraint) []types.Command {
	compiled := Compile(cat, initial, constraints, r.Weights)
	formula := compiled.Formula

	retries := r.maxRetries()
	timeout := r.timeout()
	pinned := map[int]bool{}
	for attempt := 0; attempt < retries; attempt++ {
		model, ok, err := r.Optimizer.Minimize(ctx, formula.NumVars, applyPins(formula.Clauses, pinned), formula.Cost, timeout)
		if err != nil {
			log.Debug().Err(err).Msg("optimizer invocation failed")
			return []types.Command{}
		}
		if !ok {
			log.Debug().Int("attempt", attempt).Msg("optimizer reported unsatisfiable or timed out")
			return []types.Command{}
		}

		commands, err := Linearize(cat, model, compiled.ReverseDepends, initial)
		if err == nil {
			return commands
		}

		cycleErr, isCycle := err.(*cycleError)
		if !isCycle {
			log.Debug().Err(err).Msg("linearization failed for a non-cycle reason")
			return []types.Command{}
		}

		entry, found := cat.ByEncoding(cycleErr.witness)
		if !found {
			return []types.Command{}
		}
		pinned[entry.RefVar] = !model[entry.RefVar-1]
		log.Debug().Str("witness", cycleErr.witness).Int("attempt", attempt).Msg("pinning cycle witness and re-solving")
	}

	log.Debug().Int("retries", retries).Msg("exhausted linearization retries")
	return []types.Command{}
}

// applyPins appends a unit clause per pinned variable to the base
// clause set without mutating it.
func applyPins(base []ports.Clause, pins map[int]bool) []ports.Clause {
	if len(pins) == 0 {
		return base
	}
	out := make([]ports.Clause, 0, len(base)+len(pins))
	out = append(out, base...)
	for v, value := range pins {
		if value {
			out = append(out, ports.Clause{v})
		} else {
			out = append(out, ports.Clause{-v})
		}
	}
	return out
}
