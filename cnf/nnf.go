package cnf

// PushNegations returns the Negation Normal Form of f: an equivalent formula
// where every negation applies directly to an atom.
// f must be free of implications and biconditionals (see EliminateConnectives),
// otherwise an error wrapping ErrUnsupportedShape is returned.
func PushNegations(f Formula) (Formula, error) {
	switch f := f.(type) {
	case variable:
		return f, nil
	case not:
		return negate(f[0])
	case and:
		subs, err := pushAll(f)
		if err != nil {
			return nil, err
		}
		return and(subs), nil
	case or:
		subs, err := pushAll(f)
		if err != nil {
			return nil, err
		}
		return or(subs), nil
	default:
		return nil, unsupported("negation", f)
	}
}

// negate returns the NNF of not{f}.
func negate(f Formula) (Formula, error) {
	switch f := f.(type) {
	case variable:
		return not{f}, nil
	case not: // ~~a == a
		return PushNegations(f[0])
	case and: // ~(a & b) == ~a | ~b
		subs, err := negateAll(f)
		if err != nil {
			return nil, err
		}
		return or(subs), nil
	case or: // ~(a | b) == ~a & ~b
		subs, err := negateAll(f)
		if err != nil {
			return nil, err
		}
		return and(subs), nil
	default:
		return nil, unsupported("negation", f)
	}
}

func pushAll(fs []Formula) ([]Formula, error) {
	res := make([]Formula, len(fs))
	for i, f := range fs {
		sub, err := PushNegations(f)
		if err != nil {
			return nil, err
		}
		res[i] = sub
	}
	return res, nil
}

func negateAll(fs []Formula) ([]Formula, error) {
	res := make([]Formula, len(fs))
	for i, f := range fs {
		sub, err := negate(f)
		if err != nil {
			return nil, err
		}
		res[i] = sub
	}
	return res, nil
}
