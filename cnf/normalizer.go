package cnf

import (
	"context"
	"fmt"
	"log/slog"
)

// A Normalizer translates formulas into CNF.
// Its zero value is usable and has no clause budget.
// A Normalizer is never modified once created, so it can be used concurrently.
type Normalizer struct {
	maxClauses int
	log        *slog.Logger
}

// An Option configures a Normalizer.
type Option func(*Normalizer)

// WithMaxClauses limits the number of clauses a Normalizer may generate.
// A value of 0 or less means no limit.
func WithMaxClauses(limit int) Option {
	return func(n *Normalizer) {
		n.maxClauses = limit
	}
}

// WithLogger sets the logger used to report progress. By default, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(n *Normalizer) {
		n.log = logger
	}
}

// NewNormalizer returns a Normalizer configured with the given options.
func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var defaultNormalizer = &Normalizer{}

// Normalize returns the CNF of f, with no clause budget.
// See (*Normalizer).Normalize.
func Normalize(f Formula) (Formula, error) {
	return defaultNormalizer.Normalize(f)
}

// Normalize returns a formula equivalent to f in Conjunctive Normal Form.
// The result is always a conjunction of disjunctions of literals: a single literal l
// is returned as And(Or(l)), a single clause c as And(c).
// f is left untouched and shares no node with the result.
//
// The returned error wraps ErrNilFormula if f contains a nil subformula,
// and ErrBudgetExceeded if the result would need more clauses than allowed.
func (n *Normalizer) Normalize(f Formula) (Formula, error) {
	if err := check(f); err != nil {
		return nil, fmt.Errorf("could not normalize formula: %w", err)
	}
	n.trace("normalizing formula", f)
	elim := EliminateConnectives(f)
	n.trace("connectives eliminated", elim)
	nnf, err := PushNegations(elim)
	if err != nil {
		return nil, fmt.Errorf("could not push negations: %w", err)
	}
	n.trace("negations pushed to atoms", nnf)
	res, err := n.Distribute(nnf)
	if err != nil {
		return nil, fmt.Errorf("could not distribute formula: %w", err)
	}
	n.trace("formula distributed", res)
	return res, nil
}

// trace logs the size of an intermediate formula.
// Sizes are only computed when debug logging is enabled.
func (n *Normalizer) trace(msg string, f Formula) {
	log := n.logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	attrs := []any{slog.Int("size", Size(f))}
	if a, ok := f.(and); ok && IsCNF(a) {
		attrs = append(attrs, slog.Int("clauses", len(a)))
	}
	log.Debug(msg, attrs...)
}

func (n *Normalizer) logger() *slog.Logger {
	if n.log == nil {
		return slog.Default()
	}
	return n.log
}
