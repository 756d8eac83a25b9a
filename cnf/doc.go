// Package cnf translates generic propositional formulas into Conjunctive Normal Form.
//
// A CNF, or Conjunctive Normal Form, is a conjunction of clauses, each clause
// being a disjunction of potentially negated atoms. SAT solvers and many other
// tools expect their input in that shape, but writing it by hand is tedious and error-prone.
// This package provides a set of logical connectors to define formulas, and a
// Normalizer that rewrites them into an equivalent CNF in three passes:
//
//  1. implications and biconditionals are eliminated (a -> b becomes ~a | b),
//  2. negations are pushed down to the atoms using double negation and De Morgan's laws,
//  3. disjunctions are distributed over conjunctions until only an "and" of "or"s remains.
//
// For example, the formula
//
//	(p | q) <-> r
//
// is defined with the following code:
//
//	f := Iff(Or(Var("p"), Var("q")), Var("r"))
//
// and Normalize(f) returns the formula
//
//	((r OR ~(p)) AND (r OR ~(q)) AND (~(r) OR p OR q))
//
// Unlike the Tseitin encoding, the translation does not introduce new variables,
// so the result can be exponentially larger than the input. A Normalizer can be given
// a clause budget (see WithMaxClauses) to fail early with ErrBudgetExceeded
// rather than exhausting memory.
//
// No simplification is performed: repeated literals, repeated clauses and
// tautological clauses are kept as produced.
package cnf
