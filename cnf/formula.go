package cnf

import (
	"fmt"
	"sort"
	"strings"
)

// A Formula is any kind of propositional formula, not necessarily in CNF.
// Formulas are immutable trees: no node is ever shared between two formulas
// built by this package, and no function of this package modifies its argument.
type Formula interface {
	// Kind returns the connective at the root of the formula.
	Kind() Kind
	// String returns a human-readable rendering of the formula.
	String() string
	// Eval returns the truth value of the formula under the given model.
	// It panics if the model lacks a binding for one of the atoms.
	Eval(model map[string]bool) bool
	clone() Formula
}

// Kind identifies the connective at the root of a Formula.
type Kind int

const (
	KindAtom Kind = iota
	KindNot
	KindImplies
	KindIff
	KindAnd
	KindOr
)

func (k Kind) String() string {
	switch k {
	case KindAtom:
		return "atom"
	case KindNot:
		return "not"
	case KindImplies:
		return "implies"
	case KindIff:
		return "iff"
	case KindAnd:
		return "and"
	case KindOr:
		return "or"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Var generates a named atom in a formula.
func Var(name string) Formula {
	return variable{name: name}
}

type variable struct {
	name string
}

func (v variable) Kind() Kind     { return KindAtom }
func (v variable) String() string { return v.name }
func (v variable) clone() Formula { return v }

func (v variable) Eval(model map[string]bool) bool {
	b, ok := model[v.name]
	if !ok {
		panic(fmt.Errorf("model lacks binding for variable %s", v.name))
	}
	return b
}

// Not represents a negation. It negates the given subformula.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) Kind() Kind { return KindNot }

func (n not) String() string {
	if grouped(n[0]) {
		return "~" + n[0].String()
	}
	return "~(" + n[0].String() + ")"
}

func (n not) Eval(model map[string]bool) bool {
	return !n[0].Eval(model)
}

func (n not) clone() Formula {
	return not{n[0].clone()}
}

// Implies indicates a subformula implies another one.
func Implies(f1, f2 Formula) Formula {
	return implies{f1, f2}
}

type implies [2]Formula

func (i implies) Kind() Kind { return KindImplies }

func (i implies) String() string {
	return "(" + i[0].String() + " -> " + i[1].String() + ")"
}

func (i implies) Eval(model map[string]bool) bool {
	return !i[0].Eval(model) || i[1].Eval(model)
}

func (i implies) clone() Formula {
	return implies{i[0].clone(), i[1].clone()}
}

// Iff indicates a subformula is equivalent to another one.
func Iff(f1, f2 Formula) Formula {
	return iff{f1, f2}
}

// Eq is an alias for Iff.
func Eq(f1, f2 Formula) Formula {
	return Iff(f1, f2)
}

type iff [2]Formula

func (i iff) Kind() Kind { return KindIff }

func (i iff) String() string {
	return "(" + i[0].String() + " <-> " + i[1].String() + ")"
}

func (i iff) Eval(model map[string]bool) bool {
	return i[0].Eval(model) == i[1].Eval(model)
}

func (i iff) clone() Formula {
	return iff{i[0].clone(), i[1].clone()}
}

// Xor indicates exactly one of the two given subformulas is true.
// Both subformulas appear twice in the result, so they are copied.
func Xor(f1, f2 Formula) Formula {
	return and{or{not{f1}, not{f2}}, or{f1.clone(), f2.clone()}}
}

// And generates a conjunction of subformulas.
// An empty conjunction is true.
func And(subs ...Formula) Formula {
	return and(subs)
}

type and []Formula

func (a and) Kind() Kind { return KindAnd }

func (a and) String() string {
	return join(a, " AND ", "⊤")
}

func (a and) Eval(model map[string]bool) bool {
	res := true
	for _, s := range a {
		// Every operand is evaluated so that missing bindings are always reported.
		res = s.Eval(model) && res
	}
	return res
}

func (a and) clone() Formula {
	return and(cloneAll(a))
}

// Or generates a disjunction of subformulas.
// An empty disjunction is false.
func Or(subs ...Formula) Formula {
	return or(subs)
}

type or []Formula

func (o or) Kind() Kind { return KindOr }

func (o or) String() string {
	return join(o, " OR ", "⊥")
}

func (o or) Eval(model map[string]bool) bool {
	res := false
	for _, s := range o {
		res = s.Eval(model) || res
	}
	return res
}

func (o or) clone() Formula {
	return or(cloneAll(o))
}

// join renders a n-ary connective. A single operand is rendered alone, and
// the identity element is rendered when there is no operand at all.
func join(subs []Formula, sep, identity string) string {
	switch len(subs) {
	case 0:
		return identity
	case 1:
		return subs[0].String()
	}
	strs := make([]string, len(subs))
	for i, f := range subs {
		strs[i] = f.String()
	}
	return "(" + strings.Join(strs, sep) + ")"
}

// grouped indicates whether the rendering of f is already parenthesized.
func grouped(f Formula) bool {
	switch f := f.(type) {
	case implies, iff:
		return true
	case and:
		return len(f) > 1
	case or:
		return len(f) > 1
	default:
		return false
	}
}

// Clone returns a deep copy of f.
func Clone(f Formula) Formula {
	return f.clone()
}

func cloneAll(fs []Formula) []Formula {
	res := make([]Formula, len(fs))
	for i, f := range fs {
		res[i] = f.clone()
	}
	return res
}

// Operands returns the direct subformulas of f, in order.
// The returned slice is a fresh copy; atoms have no operand.
func Operands(f Formula) []Formula {
	switch f := f.(type) {
	case not:
		return []Formula{f[0]}
	case implies:
		return []Formula{f[0], f[1]}
	case iff:
		return []Formula{f[0], f[1]}
	case and:
		return append([]Formula(nil), f...)
	case or:
		return append([]Formula(nil), f...)
	default:
		return nil
	}
}

// Name returns the name of the atom f, or the empty string if f is not an atom.
func Name(f Formula) string {
	if v, ok := f.(variable); ok {
		return v.name
	}
	return ""
}

// IsLiteral indicates whether f is an atom or the negation of an atom.
func IsLiteral(f Formula) bool {
	switch f := f.(type) {
	case variable:
		return true
	case not:
		_, ok := f[0].(variable)
		return ok
	default:
		return false
	}
}

// Vars returns the sorted names of all atoms appearing in f, without repetition.
func Vars(f Formula) []string {
	seen := make(map[string]struct{})
	collectVars(f, seen)
	res := make([]string, 0, len(seen))
	for name := range seen {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

func collectVars(f Formula, seen map[string]struct{}) {
	if v, ok := f.(variable); ok {
		seen[v.name] = struct{}{}
		return
	}
	for _, sub := range Operands(f) {
		collectVars(sub, seen)
	}
}

// Size returns the number of nodes in f.
func Size(f Formula) int {
	res := 1
	for _, sub := range Operands(f) {
		res += Size(sub)
	}
	return res
}

// IsNNF indicates whether f is in Negation Normal Form, i.e only contains
// atoms, conjunctions, disjunctions and negations of atoms.
func IsNNF(f Formula) bool {
	switch f := f.(type) {
	case variable:
		return true
	case not:
		return IsLiteral(f)
	case and:
		return allNNF(f)
	case or:
		return allNNF(f)
	default:
		return false
	}
}

func allNNF(fs []Formula) bool {
	for _, f := range fs {
		if !IsNNF(f) {
			return false
		}
	}
	return true
}

// IsCNF indicates whether f has the exact shape produced by a Normalizer:
// a conjunction whose operands are all disjunctions of literals.
func IsCNF(f Formula) bool {
	a, ok := f.(and)
	if !ok {
		return false
	}
	for _, sub := range a {
		o, ok := sub.(or)
		if !ok {
			return false
		}
		for _, l := range o {
			if !IsLiteral(l) {
				return false
			}
		}
	}
	return true
}

// check verifies f does not contain any nil subformula.
func check(f Formula) error {
	if f == nil {
		return ErrNilFormula
	}
	for i, sub := range Operands(f) {
		if err := check(sub); err != nil {
			return fmt.Errorf("operand %d of %s: %w", i, f.Kind(), err)
		}
	}
	return nil
}
