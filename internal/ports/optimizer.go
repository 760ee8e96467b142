package ports

import (
	"context"
	"time"
)

// Clause is a disjunction of signed SAT literals: a positive entry n
// asserts variable n, a negative entry -n asserts its negation.
type Clause []int

// CostTerm contributes Weight to the objective whenever Var is true in
// the chosen model. The compiler encodes the cost expression's
// conditional (If/Else) structure ahead of time as up to two CostTerms
// per RepoPackage, one on a "newly installed" and one on a "removed"
// auxiliary variable (see compiler.go), so the optimizer itself only
// ever sees a flat weighted sum.
type CostTerm struct {
	Var    int
	Weight int
}

// Model is the chosen truth assignment, indexed by (var-1): Model[v-1]
// is the truth value of variable v.
type Model []bool

// OptimizerPort abstracts the external pseudo-boolean/ILP/SMT optimizer
// behind the capability set Design Notes §9 calls for: assert Boolean
// clauses, bind an integer-sum cost expression, minimize it, and check
// under a wall-clock time bound. Any backend meeting this contract is an
// acceptable implementation; the core never depends on a specific solver
// library.
type OptimizerPort interface {
	// Minimize asserts clauses over numVars Boolean variables, binds the
	// objective to the weighted sum of cost, and returns the
	// minimizing model. ok is false on UNSAT or on ctx expiring before a
	// model is found.
	Minimize(ctx context.Context, numVars int, clauses []Clause, cost []CostTerm, timeout time.Duration) (model Model, ok bool, err error)
}
