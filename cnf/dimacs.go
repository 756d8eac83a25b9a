package cnf

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"
)

// A Lit is a possibly negated atom, as found in the clauses of a CNF.
type Lit struct {
	Name    string
	Negated bool
}

func (l Lit) String() string {
	if l.Negated {
		return "~(" + l.Name + ")"
	}
	return l.Name
}

// Clauses returns the clauses of f, which must have the shape returned by
// Normalize (see IsCNF), otherwise an error wrapping ErrUnsupportedShape is returned.
func Clauses(f Formula) ([][]Lit, error) {
	if !IsCNF(f) {
		return nil, fmt.Errorf("%w: %s is not in conjunctive normal form", ErrUnsupportedShape, f)
	}
	a := f.(and)
	res := make([][]Lit, len(a))
	for i, sub := range a {
		o := sub.(or)
		res[i] = make([]Lit, len(o))
		for j, l := range o {
			switch l := l.(type) {
			case variable:
				res[i][j] = Lit{Name: l.name}
			case not:
				res[i][j] = Lit{Name: l[0].(variable).name, Negated: true}
			}
		}
	}
	return res, nil
}

// Dimacs writes the DIMACS CNF version of the formula on w, using no clause budget.
// See (*Normalizer).Dimacs.
func Dimacs(f Formula, w io.Writer) error {
	return defaultNormalizer.Dimacs(f, w)
}

// Dimacs normalizes f and writes its DIMACS CNF version on w.
// It is useful so as to feed it to any SAT solver.
// Variables are numbered from 1, in order of first appearance in the clauses.
// The original names of variables are associated with their DIMACS integer counterparts
// in comments, between the prolog and the set of clauses.
// For instance, if the variable "a" is associated with the index 1, there will be a comment line
// "c a=1".
func (n *Normalizer) Dimacs(f Formula, w io.Writer) error {
	norm, err := n.Normalize(f)
	if err != nil {
		return err
	}
	clauses, err := Clauses(norm)
	if err != nil {
		return err
	}
	vars := make(map[string]int)
	ints := make([][]int, len(clauses))
	for i, c := range clauses {
		ints[i] = make([]int, len(c))
		for j, l := range c {
			idx, ok := vars[l.Name]
			if !ok {
				idx = len(vars) + 1
				vars[l.Name] = idx
			}
			if l.Negated {
				idx = -idx
			}
			ints[i][j] = idx
		}
	}
	prefix := fmt.Sprintf("p cnf %d %d\n", len(vars), len(ints))
	if _, err := io.WriteString(w, prefix); err != nil {
		return fmt.Errorf("could not write DIMACS output: %w", err)
	}
	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		line := fmt.Sprintf("c %s=%d\n", name, vars[name])
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	for _, c := range ints {
		strClause := make([]string, len(c)+1)
		for i, lit := range c {
			strClause[i] = strconv.Itoa(lit)
		}
		strClause[len(c)] = "0"
		line := strings.Join(strClause, " ") + "\n"
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("could not write DIMACS output: %w", err)
		}
	}
	return nil
}
