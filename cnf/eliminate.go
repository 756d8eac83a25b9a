package cnf

import "fmt"

// EliminateConnectives returns a formula equivalent to f that only contains
// atoms, negations, conjunctions and disjunctions.
//
//	a -> b   becomes  ~a | b
//	a <-> b  becomes  (~a | b) & (~b | a)
//
// f must not contain nil subformulas.
func EliminateConnectives(f Formula) Formula {
	switch f := f.(type) {
	case variable:
		return f
	case not:
		return not{EliminateConnectives(f[0])}
	case implies:
		return or{not{EliminateConnectives(f[0])}, EliminateConnectives(f[1])}
	case iff:
		l := EliminateConnectives(f[0])
		r := EliminateConnectives(f[1])
		return and{or{not{l.clone()}, r.clone()}, or{not{r}, l}}
	case and:
		return and(eliminateAll(f))
	case or:
		return or(eliminateAll(f))
	default:
		panic(fmt.Sprintf("invalid formula type %T", f))
	}
}

func eliminateAll(fs []Formula) []Formula {
	res := make([]Formula, len(fs))
	for i, f := range fs {
		res[i] = EliminateConnectives(f)
	}
	return res
}
