package cnf

import (
	"fmt"
	"log/slog"
	"math"
)

// A clause is a disjunction of literals, stored as a plain slice while distributing.
type clause []Formula

// Distribute returns the CNF of the NNF formula f, with no clause budget.
// See (*Normalizer).Distribute.
func Distribute(f Formula) (Formula, error) {
	return defaultNormalizer.Distribute(f)
}

// Distribute returns the CNF of f, which must be in Negation Normal Form
// (see PushNegations), otherwise an error wrapping ErrUnsupportedShape is returned.
// The result is always a conjunction of disjunctions of literals, even when f
// is a single literal or a single clause.
//
// Disjunctions are distributed over conjunctions: a | (b & c) becomes (a | b) & (a | c).
// Since no new variable is introduced, the number of clauses can grow exponentially;
// if n was given a clause budget, an error wrapping ErrBudgetExceeded is returned
// as soon as it is known the result would not fit in it.
func (n *Normalizer) Distribute(f Formula) (Formula, error) {
	clauses, err := n.clauses(f)
	if err != nil {
		return nil, err
	}
	res := make(and, len(clauses))
	for i, c := range clauses {
		res[i] = or(c)
	}
	return res, nil
}

// clauses returns the list of clauses equivalent to f.
// An empty list is true, an empty clause is false.
func (n *Normalizer) clauses(f Formula) ([]clause, error) {
	switch f := f.(type) {
	case variable:
		return []clause{{f}}, nil
	case not:
		if !IsLiteral(f) {
			return nil, unsupported("distribution", f[0])
		}
		return []clause{{f}}, nil
	case and:
		var res []clause
		for _, sub := range f {
			cs, err := n.clauses(sub)
			if err != nil {
				return nil, err
			}
			res = append(res, cs...)
			if err := n.checkBudget(len(res)); err != nil {
				return nil, err
			}
		}
		return res, nil
	case or:
		return n.distributeOr(f)
	default:
		return nil, unsupported("distribution", f)
	}
}

// distributeOr computes the clauses of a disjunction.
// Operands that translate to a single clause (literals, disjunctions of literals)
// are merged into one list of literals, the singles. Each other operand brings a
// set of clauses, one of which must be picked for each generated clause.
// The result is thus the cartesian product of all those sets, each combination
// being prefixed by the singles.
func (n *Normalizer) distributeOr(o or) ([]clause, error) {
	var (
		singles   clause
		multiples [][]clause
	)
	for _, sub := range o {
		cs, err := n.clauses(sub)
		if err != nil {
			return nil, err
		}
		if len(cs) == 1 {
			singles = append(singles, cs[0]...)
		} else {
			multiples = append(multiples, cs)
		}
	}
	size, err := n.productSize(multiples)
	if err != nil {
		return nil, err
	}
	if size == 0 { // One of the operands is true, so is the disjunction
		return []clause{}, nil
	}
	res := make([]clause, 0, size)
	// idx is a mixed-radix counter: digit i ranges over the clauses of multiples[i].
	// The first digit varies fastest.
	idx := make([]int, len(multiples))
	for {
		width := len(singles)
		for i, m := range multiples {
			width += len(m[idx[i]])
		}
		c := make(clause, 0, width)
		c = append(c, cloneAll(singles)...)
		for i, m := range multiples {
			c = append(c, cloneAll(m[idx[i]])...)
		}
		res = append(res, c)
		i := 0
		for ; i < len(idx); i++ {
			idx[i]++
			if idx[i] < len(multiples[i]) {
				break
			}
			idx[i] = 0
		}
		if i == len(idx) {
			return res, nil
		}
	}
}

// productSize returns the number of combinations of the given clause sets,
// or an error if it is beyond the budget of n.
func (n *Normalizer) productSize(multiples [][]clause) (int, error) {
	size := 1
	for _, m := range multiples {
		if len(m) == 0 {
			return 0, nil
		}
	}
	limit := math.MaxInt
	if n.maxClauses > 0 {
		limit = n.maxClauses
	}
	for _, m := range multiples {
		if size > limit/len(m) {
			return 0, n.budgetError(fmt.Sprintf("more than %d", limit), limit)
		}
		size *= len(m)
	}
	return size, nil
}

func (n *Normalizer) checkBudget(nbClauses int) error {
	if n.maxClauses > 0 && nbClauses > n.maxClauses {
		return n.budgetError(fmt.Sprintf("%d", nbClauses), n.maxClauses)
	}
	return nil
}

// budgetError reports a distribution needing more than limit clauses.
// Without a budget, limit is the largest clause count an int can hold.
func (n *Normalizer) budgetError(nbClauses string, limit int) error {
	n.logger().Warn("CNF clause budget exceeded",
		slog.String("clauses", nbClauses),
		slog.Int("max_clauses", limit),
	)
	return fmt.Errorf("%w: %s clauses needed, at most %d allowed", ErrBudgetExceeded, nbClauses, limit)
}
