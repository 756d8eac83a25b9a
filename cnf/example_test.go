package cnf

import (
	"fmt"
	"os"
)

func ExampleNormalize() {
	f := Iff(Or(Var("p"), Var("q")), Var("r"))
	fmt.Println(f)
	res, err := Normalize(f)
	if err != nil {
		fmt.Printf("Could not normalize formula: %v", err)
		return
	}
	fmt.Println(res)
	// Output:
	// ((p OR q) <-> r)
	// ((r OR ~(p)) AND (r OR ~(q)) AND (~(r) OR p OR q))
}

func ExampleNormalize_doubleNegation() {
	res, _ := Normalize(Not(Not(Var("A"))))
	fmt.Println(res)
	// Output: A
}

func ExampleNormalizer_Normalize() {
	n := NewNormalizer(WithMaxClauses(8))
	f := Or(And(Var("a"), Var("b")), And(Var("c"), Var("d")), And(Var("e"), Var("f")), And(Var("g"), Var("h")))
	if _, err := n.Normalize(f); err != nil {
		fmt.Println(err)
	}
	// Output: could not distribute formula: clause budget exceeded: more than 8 clauses needed, at most 8 allowed
}

func ExampleDimacs() {
	f := Iff(Or(Var("p"), Var("q")), Var("r"))
	if err := Dimacs(f, os.Stdout); err != nil {
		fmt.Printf("Could not generate DIMACS file: %v", err)
	}
	// Output:
	// p cnf 3 3
	// c p=2
	// c q=3
	// c r=1
	// 1 -2 0
	// 1 -3 0
	// -1 2 3 0
}
