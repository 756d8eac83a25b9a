package cnf

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeYAML(t *testing.T) {
	const doc = `
iff:
  - or: [P, Q]
  - R
`
	f, err := DecodeYAML(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, "((P OR Q) <-> R)", f.String())

	f, err = DecodeYAML(strings.NewReader("implies:\n  - and: [P, {not: Q}]\n  - R\n"))
	require.NoError(t, err)
	assert.Equal(t, "((P AND ~(Q)) -> R)", f.String())

	f, err = DecodeYAML(strings.NewReader("and: []"))
	require.NoError(t, err)
	assert.Equal(t, "⊤", f.String())
}

func TestDecodeYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		msg  string
	}{
		{"empty document", "", "empty document"},
		{"unknown connective", "xor: [a, b]", `unknown connective "xor"`},
		{"missing operand", "implies: [a]", "implies expects 2 operands, found 1"},
		{"operands not a sequence", "and: a", "and expects a sequence of operands"},
		{"two connectives", "{and: [a], or: [b]}", "expected exactly one connective, found 2"},
		{"empty atom", "not: ''", "empty atom name"},
		{"invalid yaml", "and: [a", "could not decode formula"},
		{"alias", "and: [&a {or: [p, p]}, &b {and: [*a, *a]}, {and: [*b, *b]}]", "aliases are not supported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeYAML(strings.NewReader(tt.doc))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestDecodeYAMLSelfReference(t *testing.T) {
	_, err := DecodeYAML(strings.NewReader("&a {not: *a}\n"))
	assert.Error(t, err)
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	f := Iff(Or(Var("p"), Var("true")), And(Not(Var("r")), Implies(Var("p"), Or())))
	var buf bytes.Buffer
	require.NoError(t, EncodeYAML(f, &buf))
	assert.Contains(t, buf.String(), "iff:")
	decoded, err := DecodeYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, f.String(), decoded.String())

	assert.ErrorIs(t, EncodeYAML(Not(nil), &buf), ErrNilFormula)
}
