package cnf

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedShape is returned when a pass is given a formula that
	// violates its precondition, e.g an implication after connective elimination.
	ErrUnsupportedShape = errors.New("unsupported formula shape")

	// ErrBudgetExceeded is returned when distributing a formula would
	// produce more clauses than the Normalizer allows.
	ErrBudgetExceeded = errors.New("clause budget exceeded")

	// ErrNilFormula is returned when a formula, or one of its subformulas, is nil.
	ErrNilFormula = errors.New("nil formula")
)

func unsupported(pass string, f Formula) error {
	if f == nil {
		return fmt.Errorf("%s pass: %w", pass, ErrNilFormula)
	}
	return fmt.Errorf("%w: %s node in %s pass", ErrUnsupportedShape, f.Kind(), pass)
}
