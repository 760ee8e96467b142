package core

import (
	"depsolve/internal/ports"
	"depsolve/internal/types"
)

// Formula is the fully compiled Boolean model plus cost expression ready
// to hand to an OptimizerPort: F_versions ∧ F_conflicts ∧ F_depends ∧
// F_goal ∧ F_init, together with the piecewise install/uninstall cost
// sum.
type Formula struct {
	NumVars int
	Clauses []ports.Clause
	Cost    []ports.CostTerm
}

// Weights configures the cost expression's per-unit coefficients, per
// the recognized options {install_weight, uninstall_weight}.
type Weights struct {
	Install   int
	Uninstall int
}

// DefaultWeights reproduces the reference cost policy: 1x size for
// installs, a flat 1,000,000 penalty for removals.
func DefaultWeights() Weights {
	return Weights{Install: 1, Uninstall: 1_000_000}
}

// CompileResult bundles the compiled Formula with the bookkeeping the
// linearizer needs afterward.
type CompileResult struct {
	Formula        Formula
	ReverseDepends map[string][]string
}

// Compile lowers a Catalog, an initial installed state, and a set of
// user constraints into a Formula, per the four independent
// sub-formulas F_versions/F_conflicts/F_depends/F_goal plus F_init and
// the cost expression.
func Compile(cat *Catalog, initial []types.Reference, constraints []types.UserConstraint, weights Weights) CompileResult {
	nextVar := cat.NumVars() + 1
	var clauses []ports.Clause
	var cost []ports.CostTerm

	clauses = append(clauses, versionClauses(cat, &nextVar)...)
	clauses = append(clauses, conflictClauses(cat)...)
	clauses = append(clauses, dependClauses(cat)...)

	initialSet := map[string]bool{}
	for _, ref := range initial {
		initialSet[types.Encoding(ref.Name, ref.Version)] = true
	}
	clauses = append(clauses, initClauses(cat, initialSet)...)
	clauses = append(clauses, goalClauses(cat, constraints)...)

	costClauses, costTerms := costExpression(cat, weights, &nextVar)
	clauses = append(clauses, costClauses...)
	cost = append(cost, costTerms...)

	return CompileResult{
		Formula: Formula{
			NumVars: nextVar - 1,
			Clauses: clauses,
			Cost:    cost,
		},
		ReverseDepends: buildReverseDepends(cat),
	}
}

// versionClauses asserts AtMost(ref(P_1)...ref(P_k), 1) per name, using
// the linear sequential-counter encoding rather than a pairwise
// expansion so the formula stays linear in the number of versions.
func versionClauses(cat *Catalog, nextVar *int) []ports.Clause {
	var clauses []ports.Clause
	for _, name := range cat.Names() {
		entries := cat.ByName(name)
		lits := make([]int, len(entries))
		for i, e := range entries {
			lits[i] = e.RefVar
		}
		encoded, fresh := atMostOneLinear(lits, *nextVar)
		clauses = append(clauses, encoded...)
		*nextVar += fresh
	}
	return clauses
}

// conflictClauses emits ref(P) ⇒ ¬(C_1 ∨ ... ∨ C_m) for every RepoPackage
// with non-empty conflicts, dropping conflicts whose match set is empty.
func conflictClauses(cat *Catalog) []ports.Clause {
	var clauses []ports.Clause
	for _, entry := range cat.Entries() {
		for _, conflict := range entry.Package.Conflicts {
			matches := cat.MatchVars(conflict)
			for _, q := range matches {
				clauses = append(clauses, ports.Clause{-entry.RefVar, -q})
			}
		}
	}
	return clauses
}

// dependClauses emits ref(P) ⇒ (d_1 ∧ ... ∧ d_n) for every RepoPackage
// with non-empty depends, dropping clauses whose alternative match set
// is empty (the dependency is unresolvable; see UnresolvableClause).
func dependClauses(cat *Catalog) []ports.Clause {
	var clauses []ports.Clause
	for _, entry := range cat.Entries() {
		for _, altClause := range entry.Package.Depends {
			var dj []int
			for _, alt := range altClause {
				dj = append(dj, cat.MatchVars(alt)...)
			}
			dj = uniqueInts(dj)
			if len(dj) == 0 {
				continue
			}
			clause := append(ports.Clause{-entry.RefVar}, dj...)
			clauses = append(clauses, clause)
		}
	}
	return clauses
}

// initClauses pins ref0(P) to the literal truth value "encoding(P) ∈
// initial" for every catalog entry.
func initClauses(cat *Catalog, initialSet map[string]bool) []ports.Clause {
	var clauses []ports.Clause
	for _, entry := range cat.Entries() {
		if initialSet[entry.Encoding] {
			clauses = append(clauses, ports.Clause{entry.Ref0Var})
		} else {
			clauses = append(clauses, ports.Clause{-entry.Ref0Var})
		}
	}
	return clauses
}

// goalClauses asserts M for INSTALL and ¬M for UNINSTALL, where M is
// the disjunction of ref-variables matching the constraint's reference.
// An INSTALL constraint whose reference resolves to nothing is encoded
// as an unsatisfiable empty clause, propagating UNSAT rather than being
// silently accepted; an UNINSTALL constraint that resolves to nothing
// emits no clause.
func goalClauses(cat *Catalog, constraints []types.UserConstraint) []ports.Clause {
	var clauses []ports.Clause
	for _, c := range constraints {
		matches := cat.MatchVars(c.Ref)
		switch c.Action {
		case types.Install:
			if len(matches) == 0 {
				clauses = append(clauses, ports.Clause{})
				continue
			}
			clauses = append(clauses, ports.Clause(matches))
		case types.Uninstall:
			for _, v := range matches {
				clauses = append(clauses, ports.Clause{-v})
			}
		}
	}
	return clauses
}

// costExpression defines, for every catalog entry, an auxiliary
// "newly installed" variable (ref ∧ ¬ref0) and an auxiliary "removed"
// variable (ref0 ∧ ¬ref), fully constrained by clauses, and returns one
// CostTerm per auxiliary so the optimizer sees a flat weighted sum.
func costExpression(cat *Catalog, weights Weights, nextVar *int) ([]ports.Clause, []ports.CostTerm) {
	var clauses []ports.Clause
	var terms []ports.CostTerm
	for _, entry := range cat.Entries() {
		ref := entry.RefVar
		ref0 := entry.Ref0Var

		instNew := *nextVar
		*nextVar++
		clauses = append(clauses,
			ports.Clause{-instNew, ref},
			ports.Clause{-instNew, -ref0},
			ports.Clause{-ref, ref0, instNew},
		)
		if weight := weights.Install * int(entry.Package.Size); weight != 0 {
			terms = append(terms, ports.CostTerm{Var: instNew, Weight: weight})
		}

		removed := *nextVar
		*nextVar++
		clauses = append(clauses,
			ports.Clause{-removed, ref0},
			ports.Clause{-removed, -ref},
			ports.Clause{-ref0, ref, removed},
		)
		if weights.Uninstall != 0 {
			terms = append(terms, ports.CostTerm{Var: removed, Weight: weights.Uninstall})
		}
	}
	return clauses, terms
}

// buildReverseDepends indexes, for every catalog entry e, the set of
// encodings that directly depend on e via some alternative of some
// clause. Used only by the linearizer.
func buildReverseDepends(cat *Catalog) map[string][]string {
	index := map[string][]string{}
	for _, entry := range cat.Entries() {
		for _, altClause := range entry.Package.Depends {
			for _, alt := range altClause {
				for _, q := range cat.Match(alt) {
					index[q.Encoding] = appendUnique(index[q.Encoding], entry.Encoding)
				}
			}
		}
	}
	return index
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

func uniqueInts(values []int) []int {
	seen := map[int]bool{}
	out := make([]int, 0, len(values))
	for _, v := range values {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
