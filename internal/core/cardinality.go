package core

import "depsolve/internal/ports"

// atMostOneLinear encodes "at most one of lits is true" using the
// sequential-counter construction instead of the pairwise expansion: it
// introduces n-1 auxiliary register variables s_1..s_{n-1} and asserts,
// for each i:
//
//	(-lits[i] | s_i)                 lits[i] true implies the register is set
//	(-s_{i-1} | s_i)                 the register stays set once set
//	(-lits[i] | -s_{i-1})             lits[i] true and the prior register set is forbidden
//
// This produces O(n) clauses and O(n) auxiliary variables rather than
// the pairwise encoding's O(n^2) clauses, at the cost of needing a
// variable allocator (nextVar) to mint the registers. freshVars reports
// how many new variables the encoding consumed so the caller can grow
// its variable count accordingly.
func atMostOneLinear(lits []int, nextVar int) (clauses []ports.Clause, freshVars int) {
	n := len(lits)
	if n <= 1 {
		return nil, 0
	}
	regs := make([]int, n-1)
	for i := range regs {
		regs[i] = nextVar + i
	}

	clauses = make([]ports.Clause, 0, 3*n)
	clauses = append(clauses, ports.Clause{-lits[0], regs[0]})
	for i := 1; i < n-1; i++ {
		clauses = append(clauses,
			ports.Clause{-lits[i], regs[i]},
			ports.Clause{-regs[i-1], regs[i]},
			ports.Clause{-lits[i], -regs[i-1]},
		)
	}
	clauses = append(clauses, ports.Clause{-lits[n-1], -regs[n-2]})

	return clauses, len(regs)
}
